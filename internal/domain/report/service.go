package report

import "context"

type ReportService interface {
	GenerateTeacherReport(ctx context.Context, req *GenerateTeacherReportRequest, actorID *int64) (*TeacherReportResponse, error)
	History(ctx context.Context, limit, offset int) (*HistoryResponse, error)
	Export(ctx context.Context, actorID *int64) (*ExportResponse, error)
}

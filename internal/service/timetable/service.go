package timetable

import (
	"context"

	"github.com/homelesson/lms-backend-go/internal/domain/timetable"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
	"github.com/homelesson/lms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type TimetableServiceImpl struct {
	db            *database.DB
	timetableRepo timetable.TimetableRepository
}

func NewTimetableService(db *database.DB, timetableRepo timetable.TimetableRepository) timetable.TimetableService {
	return &TimetableServiceImpl{
		db:            db,
		timetableRepo: timetableRepo,
	}
}

func (s *TimetableServiceImpl) ByDay(ctx context.Context, day int) ([]timetable.EntryResponse, error) {
	entries, err := s.timetableRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	responses := make([]timetable.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, e.ToResponse())
	}

	return responses, nil
}

func (s *TimetableServiceImpl) Full(ctx context.Context) (map[int][]timetable.EntryResponse, error) {
	entries, err := s.timetableRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	grid := make(map[int][]timetable.EntryResponse)
	for _, e := range entries {
		grid[e.DayOfWeek] = append(grid[e.DayOfWeek], e.ToResponse())
	}

	return grid, nil
}

// Replace swaps out every day present in the batch inside one transaction,
// so a day is never left half-written.
func (s *TimetableServiceImpl) Replace(ctx context.Context, req timetable.ReplaceRequest) ([]timetable.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if len(req) == 0 {
		return []timetable.EntryResponse{}, nil
	}

	var saved []timetable.Entry
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.timetableRepo.DeleteByDays(txCtx, distinctDays(req)); err != nil {
			return err
		}

		for _, entry := range req {
			isBreak := entry.IsBreak != nil && *entry.IsBreak
			inserted, err := s.timetableRepo.Insert(txCtx, timetable.Entry{
				DayOfWeek:        entry.DayOfWeek,
				TimeSlot:         entry.TimeSlot,
				SubjectID:        entry.SubjectID,
				TeacherID:        entry.TeacherID,
				IsBreak:          isBreak,
				BreakDescription: entry.BreakDescription,
			})
			if err != nil {
				return err
			}
			saved = append(saved, inserted)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]timetable.EntryResponse, 0, len(saved))
	for _, e := range saved {
		responses = append(responses, e.ToResponse())
	}

	return responses, nil
}

func (s *TimetableServiceImpl) Statistics(ctx context.Context) (timetable.StatisticsResponse, error) {
	return s.timetableRepo.Statistics(ctx)
}

// distinctDays returns the unique days mentioned in the batch, in first
// occurrence order.
func distinctDays(req timetable.ReplaceRequest) []int {
	seen := make(map[int]bool)
	var days []int
	for _, entry := range req {
		if !seen[entry.DayOfWeek] {
			seen[entry.DayOfWeek] = true
			days = append(days, entry.DayOfWeek)
		}
	}
	return days
}

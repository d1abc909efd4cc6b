package teacher

import (
	"context"
	"time"

	"github.com/homelesson/lms-backend-go/internal/domain/teacher"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
)

type TeacherServiceImpl struct {
	db          *database.DB
	teacherRepo teacher.TeacherRepository
}

func NewTeacherService(db *database.DB, teacherRepo teacher.TeacherRepository) teacher.TeacherService {
	return &TeacherServiceImpl{
		db:          db,
		teacherRepo: teacherRepo,
	}
}

func (s *TeacherServiceImpl) List(ctx context.Context) ([]teacher.TeacherResponse, error) {
	teachers, err := s.teacherRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]teacher.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		responses = append(responses, t.ToResponse())
	}

	return responses, nil
}

func (s *TeacherServiceImpl) Get(ctx context.Context, id int64) (teacher.TeacherResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return t.ToResponse(), nil
}

func (s *TeacherServiceImpl) Create(ctx context.Context, req teacher.CreateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	created, err := s.teacherRepo.Create(ctx, teacher.Teacher{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		Subjects:           req.Subjects,
		TeachingAllowance:  req.TeachingAllowance,
		TransportAllowance: req.TransportAllowance,
		Status:             teacher.Status(req.Status),
		Notes:              req.Notes,
	})
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return created.ToResponse(), nil
}

func (s *TeacherServiceImpl) Update(ctx context.Context, req teacher.UpdateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	updated, err := s.teacherRepo.Update(ctx, req)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return updated.ToResponse(), nil
}

func (s *TeacherServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.teacherRepo.Delete(ctx, id)
}

func (s *TeacherServiceImpl) AttendanceSummary(ctx context.Context, id int64, week, year int) (teacher.AttendanceSummaryResponse, error) {
	if _, err := s.teacherRepo.GetByID(ctx, id); err != nil {
		return teacher.AttendanceSummaryResponse{}, err
	}

	if week == 0 || year == 0 {
		nowYear, nowWeek := time.Now().ISOWeek()
		if week == 0 {
			week = nowWeek
		}
		if year == 0 {
			year = nowYear
		}
	}

	return s.teacherRepo.AttendanceSummary(ctx, id, week, year)
}

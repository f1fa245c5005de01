package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
	"github.com/pocotu/sgf-backend-sub000/internal/repository"
)

var errMockDB = errors.New("mock: 数据库不可用")

// ── Mock GroupRepository ──

type mockGroupRepo struct {
	groups map[int]*model.Group
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{groups: make(map[int]*model.Group)}
}

func (m *mockGroupRepo) add(id int, name string) {
	m.groups[id] = &model.Group{GroupID: id, Name: name, IsActive: true}
}

func (m *mockGroupRepo) GetByID(_ context.Context, id int) (*model.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	rows []model.EnrollmentSnapshot
	err  error
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{}
}

func (m *mockEnrollmentRepo) enroll(studentID, groupID int, fullName, status string) {
	m.rows = append(m.rows, model.EnrollmentSnapshot{
		StudentID:    studentID,
		GroupID:      groupID,
		InternalCode: "COD" + fullName,
		FullName:     fullName,
		Modality:     "ORDINARIO",
		Status:       status,
	})
}

func (m *mockEnrollmentRepo) ListActive(_ context.Context, groupID *int) ([]model.EnrollmentSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []model.EnrollmentSnapshot
	for _, r := range m.rows {
		if r.Status != model.EnrollmentEnrolled {
			continue
		}
		if groupID != nil && r.GroupID != *groupID {
			continue
		}
		result = append(result, r)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].GroupID != result[j].GroupID {
			return result[i].GroupID < result[j].GroupID
		}
		return result[i].StudentID < result[j].StudentID
	})
	return result, nil
}

// ── Mock GradeRepository ──

type mockGradeRepo struct {
	rows []model.GradeRecord
	err  error
}

func newMockGradeRepo() *mockGradeRepo {
	return &mockGradeRepo{}
}

func (m *mockGradeRepo) Find(_ context.Context, filter repository.GradeFilter) ([]model.GradeRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []model.GradeRecord
	for _, r := range m.rows {
		if filter.StudentID != nil && r.StudentID != *filter.StudentID {
			continue
		}
		if filter.GroupID != nil && r.GroupID != *filter.GroupID {
			continue
		}
		if filter.EvaluationID != nil && r.EvaluationID != *filter.EvaluationID {
			continue
		}
		if filter.CourseID != nil && r.CourseID != *filter.CourseID {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	rows       []model.Attendance
	lastFilter repository.AttendanceFilter
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) Find(_ context.Context, filter repository.AttendanceFilter) ([]model.Attendance, error) {
	m.lastFilter = filter
	var result []model.Attendance
	for _, r := range m.rows {
		if filter.StudentID != nil && r.StudentID != *filter.StudentID {
			continue
		}
		if filter.GroupID != nil && r.GroupID != *filter.GroupID {
			continue
		}
		if filter.DateFrom != nil && r.ClassDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && r.ClassDate.After(*filter.DateTo) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// ── 聚合 ──

type mockRepos struct {
	group      *mockGroupRepo
	enrollment *mockEnrollmentRepo
	grade      *mockGradeRepo
	attendance *mockAttendanceRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		group:      newMockGroupRepo(),
		enrollment: newMockEnrollmentRepo(),
		grade:      newMockGradeRepo(),
		attendance: newMockAttendanceRepo(),
	}
	return &repository.Repository{
		Group:      m.group,
		Enrollment: m.enrollment,
		Grade:      m.grade,
		Attendance: m.attendance,
	}, m
}

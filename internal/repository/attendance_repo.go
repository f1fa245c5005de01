package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

// AttendanceFilter 出勤查询条件，日期区间为闭区间
type AttendanceFilter struct {
	StudentID *int
	GroupID   *int
	DateFrom  *time.Time
	DateTo    *time.Time
}

// AttendanceRepository 出勤数据访问接口（只读）
type AttendanceRepository interface {
	Find(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Find(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error) {
	var records []model.Attendance

	db := r.db.WithContext(ctx).Model(&model.Attendance{})
	if filter.StudentID != nil {
		db = db.Where("student_id = ?", *filter.StudentID)
	}
	if filter.GroupID != nil {
		db = db.Where("group_id = ?", *filter.GroupID)
	}
	if filter.DateFrom != nil {
		db = db.Where("class_date >= ?", filter.DateFrom.Format(time.DateOnly))
	}
	if filter.DateTo != nil {
		db = db.Where("class_date <= ?", filter.DateTo.Format(time.DateOnly))
	}

	err := db.Order("class_date ASC, student_id ASC").Find(&records).Error
	return records, err
}

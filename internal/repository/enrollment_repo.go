package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

// EnrollmentRepository 报名数据访问接口（只读）
type EnrollmentRepository interface {
	// ListActive 返回在读学生快照；groupID 为 nil 时返回全校在读学生
	ListActive(ctx context.Context, groupID *int) ([]model.EnrollmentSnapshot, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) ListActive(ctx context.Context, groupID *int) ([]model.EnrollmentSnapshot, error) {
	var rows []model.EnrollmentSnapshot

	db := r.db.WithContext(ctx).
		Table("enrollments en").
		Select(`en.student_id, en.group_id, s.internal_code,
			s.first_name || ' ' || s.last_name AS full_name,
			en.modality, en.status`).
		Joins("JOIN students s ON s.student_id = en.student_id").
		Where("en.status = ?", model.EnrollmentEnrolled)

	if groupID != nil {
		db = db.Where("en.group_id = ?", *groupID)
	}

	err := db.Order("en.group_id ASC, en.student_id ASC").Scan(&rows).Error
	return rows, err
}

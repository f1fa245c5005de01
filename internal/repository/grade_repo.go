package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

// GradeFilter 成绩查询条件，nil 字段表示不限
type GradeFilter struct {
	StudentID    *int
	GroupID      *int // 通过评测所属班级过滤
	EvaluationID *int
	CourseID     *int
}

// GradeRepository 成绩数据访问接口（只读）
type GradeRepository interface {
	Find(ctx context.Context, filter GradeFilter) ([]model.GradeRecord, error)
}

type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo 创建 GradeRepository 实例
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) Find(ctx context.Context, filter GradeFilter) ([]model.GradeRecord, error) {
	var rows []model.GradeRecord

	db := r.db.WithContext(ctx).
		Table("grades g").
		Select("g.student_id, g.course_id, g.evaluation_id, e.group_id, g.value, g.recorded_at").
		Joins("JOIN evaluations e ON e.evaluation_id = g.evaluation_id")

	if filter.StudentID != nil {
		db = db.Where("g.student_id = ?", *filter.StudentID)
	}
	if filter.GroupID != nil {
		db = db.Where("e.group_id = ?", *filter.GroupID)
	}
	if filter.EvaluationID != nil {
		db = db.Where("g.evaluation_id = ?", *filter.EvaluationID)
	}
	if filter.CourseID != nil {
		db = db.Where("g.course_id = ?", *filter.CourseID)
	}

	err := db.Order("g.student_id ASC, g.course_id ASC, g.evaluation_id ASC").
		Scan(&rows).Error
	return rows, err
}

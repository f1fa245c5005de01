package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Grade 成绩表，对应 grades
// 创建后不可修改；(evaluation_id, student_id, course_id) 唯一
type Grade struct {
	GradeID      int             `gorm:"primaryKey;autoIncrement"                  json:"grade_id"`
	EvaluationID int             `gorm:"not null;uniqueIndex:uq_grade"             json:"evaluation_id"`
	StudentID    int             `gorm:"not null;uniqueIndex:uq_grade;index"       json:"student_id"`
	CourseID     int             `gorm:"not null;uniqueIndex:uq_grade"             json:"course_id"`
	Value        decimal.Decimal `gorm:"type:numeric(4,2);not null"                json:"value"` // 0-20
	RecordedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"        json:"recorded_at"`

	// 关联
	Evaluation *Evaluation `gorm:"foreignKey:EvaluationID;references:EvaluationID" json:"evaluation,omitempty"`
}

// TableName 指定表名
func (Grade) TableName() string { return "grades" }

// GradeRecord 成绩读模型，group_id 来自所属评测
type GradeRecord struct {
	StudentID    int
	CourseID     int
	EvaluationID int
	GroupID      int
	Value        decimal.Decimal
	RecordedAt   time.Time
}

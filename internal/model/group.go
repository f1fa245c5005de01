package model

// Group 班级/教学组表，对应 class_groups
type Group struct {
	GroupID  int    `gorm:"primaryKey;autoIncrement"    json:"group_id"`
	Name     string `gorm:"type:varchar(100);not null"  json:"name"`
	Period   string `gorm:"type:varchar(20);not null"   json:"period"` // 如 2026-I
	Modality string `gorm:"type:varchar(20);not null"   json:"modality"`
	IsActive bool   `gorm:"not null;default:true"       json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Group) TableName() string { return "class_groups" }

// Course 课程表，对应 courses
type Course struct {
	CourseID int    `gorm:"primaryKey;autoIncrement"          json:"course_id"`
	Code     string `gorm:"type:varchar(20);not null;unique"  json:"code"`
	Name     string `gorm:"type:varchar(150);not null"        json:"name"`
	BaseModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// Evaluation 评测（月考、期中等），对应 evaluations，成绩通过评测归属到班级
type Evaluation struct {
	EvaluationID int    `gorm:"primaryKey;autoIncrement"    json:"evaluation_id"`
	GroupID      int    `gorm:"not null;index"              json:"group_id"`
	Name         string `gorm:"type:varchar(100);not null"  json:"name"`
	BaseModel

	// 关联
	Group *Group `gorm:"foreignKey:GroupID;references:GroupID" json:"group,omitempty"`
}

// TableName 指定表名
func (Evaluation) TableName() string { return "evaluations" }

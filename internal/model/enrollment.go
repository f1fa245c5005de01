package model

// 报名状态
const (
	EnrollmentEnrolled  = "ENROLLED"
	EnrollmentWithdrawn = "WITHDRAWN"
)

// Enrollment 报名表，对应 enrollments
type Enrollment struct {
	EnrollmentID int    `gorm:"primaryKey;autoIncrement"                     json:"enrollment_id"`
	StudentID    int    `gorm:"not null;uniqueIndex:uq_enrollment"           json:"student_id"`
	GroupID      int    `gorm:"not null;uniqueIndex:uq_enrollment;index"     json:"group_id"`
	Modality     string `gorm:"type:varchar(20);not null"                    json:"modality"`
	Status       string `gorm:"type:varchar(20);not null;default:'ENROLLED'" json:"status"` // ENROLLED | WITHDRAWN
	BaseModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Group   *Group   `gorm:"foreignKey:GroupID;references:GroupID"     json:"group,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

// EnrollmentSnapshot 在读学生快照（报名 + 学生身份信息），非持久化投影
type EnrollmentSnapshot struct {
	StudentID    int
	GroupID      int
	InternalCode string
	FullName     string
	Modality     string
	Status       string
}

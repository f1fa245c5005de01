package model

import "time"

// 出勤状态
const (
	AttendancePresent = "PRESENT"
	AttendanceLate    = "LATE"
	AttendanceAbsent  = "ABSENT"
)

// Attendance 出勤记录表，对应 attendances
// (student_id, group_id, class_date) 唯一
type Attendance struct {
	AttendanceID int        `gorm:"primaryKey;autoIncrement"                json:"attendance_id"`
	StudentID    int        `gorm:"not null;uniqueIndex:uq_attendance"      json:"student_id"`
	GroupID      int        `gorm:"not null;uniqueIndex:uq_attendance"      json:"group_id"`
	ClassDate    time.Time  `gorm:"type:date;not null;uniqueIndex:uq_attendance" json:"class_date"`
	Status       string     `gorm:"type:varchar(10);not null"               json:"status"` // PRESENT | LATE | ABSENT
	RecordedTime *time.Time `json:"recorded_time,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }

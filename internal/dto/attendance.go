package dto

// ── 出勤统计模块 DTO ──

// DateRangeQuery 日期区间（闭区间），格式 "2026-03-01"，均可为空
type DateRangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// StudentAttendanceQuery 学生出勤汇总查询参数
type StudentAttendanceQuery struct {
	GroupID int `form:"group_id" binding:"required,min=1"`
	DateRangeQuery
}

// AttendanceSummaryResponse 学生出勤汇总
type AttendanceSummaryResponse struct {
	StudentID            int     `json:"student_id"`
	GroupID              int     `json:"group_id"`
	TotalClasses         int     `json:"total_classes"`
	Present              int     `json:"present"`
	Late                 int     `json:"late"`
	Absent               int     `json:"absent"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// DailyAttendanceResponse 按上课日期的出勤汇总
type DailyAttendanceResponse struct {
	ClassDate            string  `json:"class_date"`
	TotalStudents        int     `json:"total_students"`
	Present              int     `json:"present"`
	Late                 int     `json:"late"`
	Absent               int     `json:"absent"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

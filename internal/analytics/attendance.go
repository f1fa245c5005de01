package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

// AttendanceSummary 单个学生在某班级的出勤汇总
type AttendanceSummary struct {
	StudentID            int
	GroupID              int
	TotalClasses         int
	Present              int
	Late                 int
	Absent               int
	AttendancePercentage decimal.Decimal
}

// DailyAttendance 某一上课日期的全班出勤汇总
type DailyAttendance struct {
	ClassDate            time.Time
	TotalStudents        int
	Present              int
	Late                 int
	Absent               int
	AttendancePercentage decimal.Decimal
}

type attendanceCounter struct {
	total, present, late, absent int
}

func (c *attendanceCounter) add(status string) {
	c.total++
	switch status {
	case model.AttendancePresent:
		c.present++
	case model.AttendanceLate:
		c.late++
	case model.AttendanceAbsent:
		c.absent++
	}
}

// 迟到算作出勤
func (c *attendanceCounter) percentage() decimal.Decimal {
	return Percentage(c.present+c.late, c.total)
}

// SummarizeStudent 汇总单个学生的出勤；records 需已按学生与班级过滤
// 无记录时返回全 0 汇总
func SummarizeStudent(studentID, groupID int, records []model.Attendance) AttendanceSummary {
	var c attendanceCounter
	for _, r := range records {
		if r.StudentID != studentID || r.GroupID != groupID {
			continue
		}
		c.add(r.Status)
	}
	return c.summary(studentID, groupID)
}

// SummarizeByStudent 按学生分组汇总班级出勤，结果按 studentID 升序
// 只有至少一条记录的学生才会出现
func SummarizeByStudent(groupID int, records []model.Attendance) []AttendanceSummary {
	counters := make(map[int]*attendanceCounter)
	for _, r := range records {
		if r.GroupID != groupID {
			continue
		}
		c, ok := counters[r.StudentID]
		if !ok {
			c = &attendanceCounter{}
			counters[r.StudentID] = c
		}
		c.add(r.Status)
	}

	ids := make([]int, 0, len(counters))
	for id := range counters {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]AttendanceSummary, 0, len(ids))
	for _, id := range ids {
		result = append(result, counters[id].summary(id, groupID))
	}
	return result
}

// SummarizeByDate 按上课日期汇总，结果按日期升序
func SummarizeByDate(records []model.Attendance) []DailyAttendance {
	counters := make(map[string]*attendanceCounter)
	dates := make(map[string]time.Time)
	for _, r := range records {
		key := r.ClassDate.Format(time.DateOnly)
		c, ok := counters[key]
		if !ok {
			c = &attendanceCounter{}
			counters[key] = c
			dates[key] = r.ClassDate
		}
		c.add(r.Status)
	}

	keys := make([]string, 0, len(counters))
	for k := range counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]DailyAttendance, 0, len(keys))
	for _, k := range keys {
		c := counters[k]
		result = append(result, DailyAttendance{
			ClassDate:            dates[k],
			TotalStudents:        c.total,
			Present:              c.present,
			Late:                 c.late,
			Absent:               c.absent,
			AttendancePercentage: c.percentage(),
		})
	}
	return result
}

func (c *attendanceCounter) summary(studentID, groupID int) AttendanceSummary {
	return AttendanceSummary{
		StudentID:            studentID,
		GroupID:              groupID,
		TotalClasses:         c.total,
		Present:              c.present,
		Late:                 c.late,
		Absent:               c.absent,
		AttendancePercentage: c.percentage(),
	}
}

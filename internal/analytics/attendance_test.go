package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

func record(studentID, groupID int, day int, status string) model.Attendance {
	return model.Attendance{
		StudentID: studentID,
		GroupID:   groupID,
		ClassDate: time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestSummarizeStudent(t *testing.T) {
	records := []model.Attendance{
		record(1, 1, 2, model.AttendancePresent),
		record(1, 1, 3, model.AttendanceLate),
		record(1, 1, 4, model.AttendanceAbsent),
	}

	s := SummarizeStudent(1, 1, records)
	assert.Equal(t, 3, s.TotalClasses)
	assert.Equal(t, 1, s.Present)
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, 1, s.Absent)
	assert.True(t, dec("66.67").Equal(s.AttendancePercentage), s.AttendancePercentage.String())
}

func TestSummarizeStudent_NoRecords(t *testing.T) {
	s := SummarizeStudent(1, 1, nil)
	assert.Equal(t, 1, s.StudentID)
	assert.Equal(t, 1, s.GroupID)
	assert.Zero(t, s.TotalClasses)
	assert.True(t, s.AttendancePercentage.IsZero())
}

func TestSummarizeStudent_Monotonic(t *testing.T) {
	base := []model.Attendance{
		record(1, 1, 2, model.AttendancePresent),
		record(1, 1, 3, model.AttendanceAbsent),
		record(1, 1, 4, model.AttendanceLate),
	}
	before := SummarizeStudent(1, 1, base).AttendancePercentage

	for _, status := range []string{model.AttendancePresent, model.AttendanceLate} {
		after := SummarizeStudent(1, 1, append(append([]model.Attendance{}, base...), record(1, 1, 5, status))).AttendancePercentage
		assert.True(t, after.GreaterThanOrEqual(before), "%s: %s < %s", status, after, before)
	}

	after := SummarizeStudent(1, 1, append(append([]model.Attendance{}, base...), record(1, 1, 5, model.AttendanceAbsent))).AttendancePercentage
	assert.True(t, after.LessThanOrEqual(before))
}

func TestSummarizeByStudent_OrderedByStudentID(t *testing.T) {
	records := []model.Attendance{
		record(9, 1, 2, model.AttendancePresent),
		record(3, 1, 2, model.AttendanceAbsent),
		record(9, 1, 3, model.AttendanceAbsent),
		record(5, 2, 2, model.AttendancePresent), // 其他班级
	}

	result := SummarizeByStudent(1, records)
	require.Len(t, result, 2)
	assert.Equal(t, 3, result[0].StudentID)
	assert.True(t, result[0].AttendancePercentage.IsZero())
	assert.Equal(t, 9, result[1].StudentID)
	assert.Equal(t, 2, result[1].TotalClasses)
	assert.True(t, dec("50").Equal(result[1].AttendancePercentage))
}

func TestSummarizeByDate(t *testing.T) {
	records := []model.Attendance{
		record(1, 1, 4, model.AttendancePresent),
		record(2, 1, 4, model.AttendanceAbsent),
		record(1, 1, 2, model.AttendanceLate),
	}

	days := SummarizeByDate(records)
	require.Len(t, days, 2)
	assert.Equal(t, 2, days[0].ClassDate.Day())
	assert.True(t, dec("100").Equal(days[0].AttendancePercentage))
	assert.Equal(t, 4, days[1].ClassDate.Day())
	assert.Equal(t, 2, days[1].TotalStudents)
	assert.True(t, dec("50").Equal(days[1].AttendancePercentage))
}

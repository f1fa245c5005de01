package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

// Entry 排名中的一行（每次请求即时计算，不缓存）
type Entry struct {
	StudentID     int
	InternalCode  string
	FullName      string
	Modality      string
	Average       decimal.Decimal
	TotalGrades   int
	CoursesPassed int
	CoursesFailed int
	MinGrade      decimal.Decimal
	MaxGrade      decimal.Decimal
	Position      int
}

// Statistics 排名整体统计
type Statistics struct {
	StudentCount int
	GroupAverage decimal.Decimal
	BestAverage  decimal.Decimal
	WorstAverage decimal.Decimal
	PassedCount  int
	FailedCount  int
	PassRate     decimal.Decimal
}

// Standing 单个学生在排名中的位置
type Standing struct {
	Entry
	TotalStudents       int
	Percentile          decimal.Decimal
	DifferenceFromFirst decimal.Decimal
}

// BuildRanking 根据在读学生与其成绩生成有序排名
//
//   - members 中同一 studentID 重复出现时只取第一条（全校排名时学生可能在多个班）
//   - 没有任何成绩的学生不进入排名
//   - 按平均分降序，同分按 FullName 升序（逐字节比较），再按 studentID 升序
//   - 名次采用标准竞赛排名（1,1,3），与 SQL RANK() 一致
func BuildRanking(members []model.EnrollmentSnapshot, gradesByStudent map[int][]model.GradeRecord, passing decimal.Decimal) []Entry {
	seen := make(map[int]struct{}, len(members))
	entries := make([]Entry, 0, len(members))

	for _, m := range members {
		if _, dup := seen[m.StudentID]; dup {
			continue
		}
		seen[m.StudentID] = struct{}{}

		grades := gradesByStudent[m.StudentID]
		avg, ok := Average(grades)
		if !ok {
			continue
		}
		passed, failed := CountCourses(grades, passing)
		minGrade, maxGrade := MinMax(grades)

		entries = append(entries, Entry{
			StudentID:     m.StudentID,
			InternalCode:  m.InternalCode,
			FullName:      m.FullName,
			Modality:      m.Modality,
			Average:       avg,
			TotalGrades:   len(grades),
			CoursesPassed: passed,
			CoursesFailed: failed,
			MinGrade:      minGrade,
			MaxGrade:      maxGrade,
		})
	}

	SortEntries(entries)
	AssignPositions(entries)
	return entries
}

// SortEntries 排名排序规则，排名与单人查询共用
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Average.Equal(b.Average) {
			return a.Average.GreaterThan(b.Average)
		}
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		return a.StudentID < b.StudentID
	})
}

// AssignPositions 为已排序的条目分配名次
// 平均分相同则名次相同，下一个不同分数的名次 = 已排条目数 + 1
func AssignPositions(entries []Entry) {
	for i := range entries {
		if i > 0 && entries[i].Average.Equal(entries[i-1].Average) {
			entries[i].Position = entries[i-1].Position
			continue
		}
		entries[i].Position = i + 1
	}
}

// ComputeStatistics 计算排名统计，空排名返回全 0
func ComputeStatistics(entries []Entry, passing decimal.Decimal) Statistics {
	stats := Statistics{
		GroupAverage: decimal.Zero,
		BestAverage:  decimal.Zero,
		WorstAverage: decimal.Zero,
		PassRate:     decimal.Zero,
	}
	if len(entries) == 0 {
		return stats
	}

	sum := decimal.Zero
	best, worst := entries[0].Average, entries[0].Average
	for _, e := range entries {
		sum = sum.Add(e.Average)
		if e.Average.GreaterThan(best) {
			best = e.Average
		}
		if e.Average.LessThan(worst) {
			worst = e.Average
		}
		if e.Average.GreaterThanOrEqual(passing) {
			stats.PassedCount++
		} else {
			stats.FailedCount++
		}
	}

	stats.StudentCount = len(entries)
	stats.GroupAverage = Round2(sum.Div(decimal.NewFromInt(int64(len(entries)))))
	stats.BestAverage = best
	stats.WorstAverage = worst
	stats.PassRate = Percentage(stats.PassedCount, stats.StudentCount)
	return stats
}

// Locate 在排名中查找学生位置，未进入排名时 ok=false
func Locate(entries []Entry, studentID int) (Standing, bool) {
	for _, e := range entries {
		if e.StudentID != studentID {
			continue
		}
		total := len(entries)
		return Standing{
			Entry:               e,
			TotalStudents:       total,
			Percentile:          Percentage(total-e.Position+1, total),
			DifferenceFromFirst: Round2(entries[0].Average.Sub(e.Average)),
		}, true
	}
	return Standing{}, false
}

package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

// CountCourses 按课程统计通过/未通过数量
//
// 以课程为单位：同一课程的所有成绩先求平均，平均分 >= passing 记为通过，
// 否则记为未通过。没有成绩的课程不计入任何一侧，
// 因此 passed + failed 恒等于有成绩的不同课程数。
func CountCourses(grades []model.GradeRecord, passing decimal.Decimal) (passed, failed int) {
	type acc struct {
		sum   decimal.Decimal
		count int64
	}
	byCourse := make(map[int]*acc)
	for _, g := range grades {
		a, ok := byCourse[g.CourseID]
		if !ok {
			a = &acc{sum: decimal.Zero}
			byCourse[g.CourseID] = a
		}
		a.sum = a.sum.Add(g.Value)
		a.count++
	}

	for _, a := range byCourse {
		if a.sum.Div(decimal.NewFromInt(a.count)).GreaterThanOrEqual(passing) {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

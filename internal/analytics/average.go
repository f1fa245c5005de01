package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

// Average 计算成绩算术平均值（两位小数）
// 没有成绩时 ok=false，表示"无平均分"而不是错误
func Average(grades []model.GradeRecord) (avg decimal.Decimal, ok bool) {
	if len(grades) == 0 {
		return decimal.Zero, false
	}
	sum := decimal.Zero
	for _, g := range grades {
		sum = sum.Add(g.Value)
	}
	return Round2(sum.Div(decimal.NewFromInt(int64(len(grades))))), true
}

// MinMax 返回最低分与最高分，空集合返回 0, 0
func MinMax(grades []model.GradeRecord) (minGrade, maxGrade decimal.Decimal) {
	if len(grades) == 0 {
		return decimal.Zero, decimal.Zero
	}
	minGrade, maxGrade = grades[0].Value, grades[0].Value
	for _, g := range grades[1:] {
		if g.Value.LessThan(minGrade) {
			minGrade = g.Value
		}
		if g.Value.GreaterThan(maxGrade) {
			maxGrade = g.Value
		}
	}
	return minGrade, maxGrade
}

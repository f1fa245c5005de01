package analytics

import "github.com/shopspring/decimal"

// Scale 对外输出统一保留的小数位数
const Scale = 2

var hundred = decimal.NewFromInt(100)

// DefaultPassingGrade 默认及格线（20 分制，含 11 分）
var DefaultPassingGrade = decimal.NewFromInt(11)

// Round2 四舍五入到两位小数
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Percentage 计算 part/total×100，total 为 0 时返回 0
func Percentage(part, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return Round2(decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(total))))
}

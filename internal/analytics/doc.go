// Package analytics 成绩排名与出勤汇总的纯计算逻辑。
//
// 本包不访问数据库也不持有状态：调用方（service 层）负责按范围取数，
// 这里只对已取回的记录做分组、排序、并列名次与百分比推导。
// 所有平均分、百分比统一保留两位小数（四舍五入），分母为 0 时结果为 0。
package analytics

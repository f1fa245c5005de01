package dto

// ── 排名模块 DTO ──

// RankingQuery 排名查询参数
// group_id 为空表示全校排名；evaluation_id 为空表示按班级（或全部）成绩计算
type RankingQuery struct {
	GroupID      *int `form:"group_id"      binding:"omitempty,min=1"`
	EvaluationID *int `form:"evaluation_id" binding:"omitempty,min=1"`
}

// RankingEntryResponse 排名条目
type RankingEntryResponse struct {
	StudentID     int      `json:"student_id"`
	InternalCode  string   `json:"internal_code"`
	FullName      string   `json:"full_name"`
	Modality      string   `json:"modality"`
	Average       *float64 `json:"average"`
	TotalGrades   int      `json:"total_grades"`
	CoursesPassed int      `json:"courses_passed"`
	CoursesFailed int      `json:"courses_failed"`
	MinGrade      float64  `json:"min_grade"`
	MaxGrade      float64  `json:"max_grade"`
	Position      int      `json:"position"`
}

// GroupStatisticsResponse 班级统计
type GroupStatisticsResponse struct {
	StudentCount int     `json:"student_count"`
	GroupAverage float64 `json:"group_average"`
	BestAverage  float64 `json:"best_average"`
	WorstAverage float64 `json:"worst_average"`
	PassedCount  int     `json:"passed_count"`
	FailedCount  int     `json:"failed_count"`
	PassRate     float64 `json:"pass_rate"`
}

// GroupRankingResponse 班级（或全校）排名响应
type GroupRankingResponse struct {
	GroupID      *int                    `json:"group_id"`
	EvaluationID *int                    `json:"evaluation_id"`
	Statistics   GroupStatisticsResponse `json:"statistics"`
	Ranking      []RankingEntryResponse  `json:"ranking"`
}

// StudentPositionResponse 单个学生排名位置
type StudentPositionResponse struct {
	RankingEntryResponse
	TotalStudents       int     `json:"total_students"`
	Percentile          float64 `json:"percentile"`
	DifferenceFromFirst float64 `json:"difference_from_first"`
}

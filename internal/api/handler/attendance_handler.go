package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pocotu/sgf-backend-sub000/internal/dto"
	"github.com/pocotu/sgf-backend-sub000/internal/service"
	"github.com/pocotu/sgf-backend-sub000/pkg/response"
)

// AttendanceHandler 出勤统计 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// GetStudentSummary 学生在某班级的出勤汇总
// GET /api/v1/attendance/students/:id?group_id=1&from=2026-03-01&to=2026-06-30
func (h *AttendanceHandler) GetStudentSummary(c *gin.Context) {
	studentID, ok := MustParseID(c, "id")
	if !ok {
		return
	}
	if !MustAccessStudent(c, studentID) {
		return
	}

	var q dto.StudentAttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.attendanceSvc.SummaryByStudent(c.Request.Context(), studentID, q.GroupID, &q.DateRangeQuery)
	if err != nil {
		handleRankingError(c, err)
		return
	}

	response.OK(c, result)
}

// GetGroupSummary 班级内每名学生的出勤汇总
// GET /api/v1/attendance/groups/:id?from=&to=
func (h *AttendanceHandler) GetGroupSummary(c *gin.Context) {
	groupID, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, err := h.attendanceSvc.SummaryByGroup(c.Request.Context(), groupID, &q)
	if err != nil {
		handleRankingError(c, err)
		return
	}

	response.OK(c, dto.ListResponse{List: list, Total: len(list)})
}

// GetGroupDaily 班级按上课日期的出勤汇总
// GET /api/v1/attendance/groups/:id/daily?from=&to=
func (h *AttendanceHandler) GetGroupDaily(c *gin.Context) {
	groupID, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, err := h.attendanceSvc.DailyByGroup(c.Request.Context(), groupID, &q)
	if err != nil {
		handleRankingError(c, err)
		return
	}

	response.OK(c, dto.ListResponse{List: list, Total: len(list)})
}

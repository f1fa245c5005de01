package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pocotu/sgf-backend-sub000/internal/dto"
	"github.com/pocotu/sgf-backend-sub000/internal/service"
	"github.com/pocotu/sgf-backend-sub000/pkg/response"
)

// RankingHandler 排名模块 HTTP 处理器
type RankingHandler struct {
	rankingSvc service.RankingService
}

// NewRankingHandler 创建 RankingHandler
func NewRankingHandler(rankingSvc service.RankingService) *RankingHandler {
	return &RankingHandler{rankingSvc: rankingSvc}
}

// GetGroupRanking 获取班级（或全校）排名及统计
// GET /api/v1/rankings?group_id=1&evaluation_id=2
func (h *RankingHandler) GetGroupRanking(c *gin.Context) {
	var q dto.RankingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.rankingSvc.GetGroupRanking(c.Request.Context(), q.GroupID, q.EvaluationID)
	if err != nil {
		handleRankingError(c, err)
		return
	}

	response.OK(c, result)
}

// GetStudentPosition 获取学生在排名中的位置
// GET /api/v1/rankings/students/:id?group_id=1&evaluation_id=2
func (h *RankingHandler) GetStudentPosition(c *gin.Context) {
	studentID, ok := MustParseID(c, "id")
	if !ok {
		return
	}
	if !MustAccessStudent(c, studentID) {
		return
	}

	var q dto.RankingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.rankingSvc.GetStudentPosition(c.Request.Context(), studentID, q.GroupID, q.EvaluationID)
	if err != nil {
		handleRankingError(c, err)
		return
	}

	response.OK(c, result)
}

// handleRankingError 排名与出勤模块共用的错误映射
func handleRankingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 20001, "班级不存在")
	case errors.Is(err, service.ErrNoRankingData):
		response.NotFound(c, 20002, "暂无排名数据")
	case errors.Is(err, service.ErrInvalidDateRange):
		response.BadRequest(c, 20003, "日期区间无效")
	default:
		response.InternalError(c)
	}
}

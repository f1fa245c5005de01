package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/pocotu/sgf-backend-sub000/internal/dto"
	"github.com/pocotu/sgf-backend-sub000/internal/service"
	"github.com/pocotu/sgf-backend-sub000/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRanking 导出排名
// GET /api/v1/export/rankings?group_id=1&evaluation_id=2
func (h *ExportHandler) ExportRanking(c *gin.Context) {
	var q dto.RankingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	buf, filename, err := h.exportSvc.ExportGroupRanking(c.Request.Context(), q.GroupID, q.EvaluationID)
	if err != nil {
		handleExportError(c, err)
		return
	}

	writeXLSX(c, buf, filename)
}

// ExportGroupAttendance 导出班级出勤汇总
// GET /api/v1/export/attendance/groups/:id?from=&to=
func (h *ExportHandler) ExportGroupAttendance(c *gin.Context) {
	groupID, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	buf, filename, err := h.exportSvc.ExportGroupAttendance(c.Request.Context(), groupID, &q)
	if err != nil {
		handleExportError(c, err)
		return
	}

	writeXLSX(c, buf, filename)
}

// writeXLSX 设置下载响应头
func writeXLSX(c *gin.Context, buf *bytes.Buffer, filename string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func handleExportError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrExportGenerateFail) {
		response.InternalError(c)
		return
	}
	handleRankingError(c, err)
}

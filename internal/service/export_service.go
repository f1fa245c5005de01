package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pocotu/sgf-backend-sub000/config"
	"github.com/pocotu/sgf-backend-sub000/internal/dto"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

const (
	sheetRanking    = "Ranking"
	sheetStatistics = "Statistics"
	sheetAttendance = "Attendance"

	defaultFilenamePrefix = "sgf"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 数据完全复用 RankingService / AttendanceService 的结果，导出与接口返回一致
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportGroupRanking 导出排名与统计（两个 Sheet）
	ExportGroupRanking(ctx context.Context, groupID, evaluationID *int) (*bytes.Buffer, string, error)
	// ExportGroupAttendance 导出班级出勤汇总
	ExportGroupAttendance(ctx context.Context, groupID int, rng *dto.DateRangeQuery) (*bytes.Buffer, string, error)
}

type exportService struct {
	ranking    RankingService
	attendance AttendanceService
	prefix     string
	logger     *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.ExportConfig, ranking RankingService, attendance AttendanceService, logger *zap.Logger) ExportService {
	prefix := defaultFilenamePrefix
	if cfg != nil && cfg.FilenamePrefix != "" {
		prefix = cfg.FilenamePrefix
	}
	return &exportService{ranking: ranking, attendance: attendance, prefix: prefix, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportGroupRanking
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Ranking"：名次 | 学号 | 姓名 | 类型 | 平均分 | 成绩数 | 通过课程 | 未通过课程 | 最低 | 最高
//   - Sheet "Statistics"：指标 | 数值

func (s *exportService) ExportGroupRanking(ctx context.Context, groupID, evaluationID *int) (*bytes.Buffer, string, error) {
	data, err := s.ranking.GetGroupRanking(ctx, groupID, evaluationID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(sheetRanking)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle := newHeaderStyle(f)

	headers := []string{"Posición", "Código", "Estudiante", "Modalidad", "Promedio",
		"Notas", "Cursos aprobados", "Cursos desaprobados", "Nota mínima", "Nota máxima"}
	writeHeader(f, sheetRanking, headers, headerStyle)
	f.SetColWidth(sheetRanking, "C", "C", 32)

	row := 2
	for _, e := range data.Ranking {
		values := []any{e.Position, e.InternalCode, e.FullName, e.Modality, deref(e.Average),
			e.TotalGrades, e.CoursesPassed, e.CoursesFailed, e.MinGrade, e.MaxGrade}
		for i, v := range values {
			f.SetCellValue(sheetRanking, cell(colName(i), row), v)
		}
		row++
	}

	f.NewSheet(sheetStatistics)
	writeHeader(f, sheetStatistics, []string{"Indicador", "Valor"}, headerStyle)
	f.SetColWidth(sheetStatistics, "A", "A", 24)
	st := data.Statistics
	stats := []struct {
		label string
		value any
	}{
		{"Estudiantes", st.StudentCount},
		{"Promedio del grupo", st.GroupAverage},
		{"Mejor promedio", st.BestAverage},
		{"Peor promedio", st.WorstAverage},
		{"Aprobados", st.PassedCount},
		{"Desaprobados", st.FailedCount},
		{"Tasa de aprobación (%)", st.PassRate},
	}
	for i, item := range stats {
		f.SetCellValue(sheetStatistics, cell("A", i+2), item.label)
		f.SetCellValue(sheetStatistics, cell("B", i+2), item.value)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	scope := "all"
	switch {
	case evaluationID != nil:
		scope = fmt.Sprintf("evaluation_%d", *evaluationID)
	case groupID != nil:
		scope = fmt.Sprintf("group_%d", *groupID)
	}
	return buf, s.filename("ranking", scope), nil
}

// ═══════════════════════════════════════════════════════════
// ExportGroupAttendance
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportGroupAttendance(ctx context.Context, groupID int, rng *dto.DateRangeQuery) (*bytes.Buffer, string, error) {
	rows, err := s.attendance.SummaryByGroup(ctx, groupID, rng)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(sheetAttendance)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	writeHeader(f, sheetAttendance,
		[]string{"Estudiante ID", "Clases", "Presente", "Tarde", "Falta", "Asistencia (%)"},
		newHeaderStyle(f))

	for i, a := range rows {
		r := i + 2
		f.SetCellValue(sheetAttendance, cell("A", r), a.StudentID)
		f.SetCellValue(sheetAttendance, cell("B", r), a.TotalClasses)
		f.SetCellValue(sheetAttendance, cell("C", r), a.Present)
		f.SetCellValue(sheetAttendance, cell("D", r), a.Late)
		f.SetCellValue(sheetAttendance, cell("E", r), a.Absent)
		f.SetCellValue(sheetAttendance, cell("F", r), a.AttendancePercentage)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Int("group_id", groupID), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, s.filename("attendance", fmt.Sprintf("group_%d", groupID)), nil
}

// ── 辅助函数 ──

func (s *exportService) filename(kind, scope string) string {
	return fmt.Sprintf("%s_%s_%s_%s.xlsx", s.prefix, kind, scope, time.Now().Format("20060102"))
}

func newHeaderStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	return style
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		f.SetCellValue(sheet, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheet, "A1", cell(colName(len(headers)-1), 1), style)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

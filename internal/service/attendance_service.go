package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pocotu/sgf-backend-sub000/config"
	"github.com/pocotu/sgf-backend-sub000/internal/analytics"
	"github.com/pocotu/sgf-backend-sub000/internal/dto"
	"github.com/pocotu/sgf-backend-sub000/internal/repository"
)

// ── 出勤统计模块业务错误 ──

var (
	ErrInvalidDateRange = errors.New("日期区间无效")
)

const defaultMaxDateSpanDays = 366

// AttendanceService 出勤统计业务接口
// 纯读取 + 汇总，无副作用；没有记录时返回全 0 结果而非错误
type AttendanceService interface {
	SummaryByStudent(ctx context.Context, studentID, groupID int, rng *dto.DateRangeQuery) (*dto.AttendanceSummaryResponse, error)
	SummaryByGroup(ctx context.Context, groupID int, rng *dto.DateRangeQuery) ([]dto.AttendanceSummaryResponse, error)
	DailyByGroup(ctx context.Context, groupID int, rng *dto.DateRangeQuery) ([]dto.DailyAttendanceResponse, error)
}

type attendanceService struct {
	repo        *repository.Repository
	maxSpanDays int
	logger      *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(cfg *config.RankingConfig, repo *repository.Repository, logger *zap.Logger) AttendanceService {
	maxSpan := defaultMaxDateSpanDays
	if cfg != nil && cfg.MaxDateSpanDays > 0 {
		maxSpan = cfg.MaxDateSpanDays
	}
	return &attendanceService{repo: repo, maxSpanDays: maxSpan, logger: logger}
}

// ────────────────────── SummaryByStudent ──────────────────────

func (s *attendanceService) SummaryByStudent(ctx context.Context, studentID, groupID int, rng *dto.DateRangeQuery) (*dto.AttendanceSummaryResponse, error) {
	filter, err := s.buildFilter(rng)
	if err != nil {
		return nil, err
	}
	filter.StudentID = &studentID
	filter.GroupID = &groupID

	records, err := s.repo.Attendance.Find(ctx, filter)
	if err != nil {
		s.logger.Error("查询出勤记录失败", zap.Int("student_id", studentID), zap.Int("group_id", groupID), zap.Error(err))
		return nil, err
	}

	summary := analytics.SummarizeStudent(studentID, groupID, records)
	resp := toAttendanceSummaryResponse(&summary)
	return &resp, nil
}

// ────────────────────── SummaryByGroup ──────────────────────

func (s *attendanceService) SummaryByGroup(ctx context.Context, groupID int, rng *dto.DateRangeQuery) ([]dto.AttendanceSummaryResponse, error) {
	filter, err := s.buildFilter(rng)
	if err != nil {
		return nil, err
	}
	if err := ensureGroup(ctx, s.repo, s.logger, groupID); err != nil {
		return nil, err
	}
	filter.GroupID = &groupID

	records, err := s.repo.Attendance.Find(ctx, filter)
	if err != nil {
		s.logger.Error("查询班级出勤记录失败", zap.Int("group_id", groupID), zap.Error(err))
		return nil, err
	}

	summaries := analytics.SummarizeByStudent(groupID, records)
	result := make([]dto.AttendanceSummaryResponse, 0, len(summaries))
	for i := range summaries {
		result = append(result, toAttendanceSummaryResponse(&summaries[i]))
	}
	return result, nil
}

// ────────────────────── DailyByGroup ──────────────────────

func (s *attendanceService) DailyByGroup(ctx context.Context, groupID int, rng *dto.DateRangeQuery) ([]dto.DailyAttendanceResponse, error) {
	filter, err := s.buildFilter(rng)
	if err != nil {
		return nil, err
	}
	if err := ensureGroup(ctx, s.repo, s.logger, groupID); err != nil {
		return nil, err
	}
	filter.GroupID = &groupID

	records, err := s.repo.Attendance.Find(ctx, filter)
	if err != nil {
		s.logger.Error("查询班级出勤记录失败", zap.Int("group_id", groupID), zap.Error(err))
		return nil, err
	}

	days := analytics.SummarizeByDate(records)
	result := make([]dto.DailyAttendanceResponse, 0, len(days))
	for _, d := range days {
		result = append(result, dto.DailyAttendanceResponse{
			ClassDate:            d.ClassDate.Format("2006-01-02"),
			TotalStudents:        d.TotalStudents,
			Present:              d.Present,
			Late:                 d.Late,
			Absent:               d.Absent,
			AttendancePercentage: d.AttendancePercentage.InexactFloat64(),
		})
	}
	return result, nil
}

// ── 内部辅助方法 ──

// buildFilter 解析日期区间：格式错误、起始晚于结束或跨度超限均返回 ErrInvalidDateRange
func (s *attendanceService) buildFilter(rng *dto.DateRangeQuery) (repository.AttendanceFilter, error) {
	var filter repository.AttendanceFilter
	if rng == nil {
		return filter, nil
	}

	if rng.From != "" {
		from, err := time.Parse("2006-01-02", rng.From)
		if err != nil {
			return filter, ErrInvalidDateRange
		}
		filter.DateFrom = &from
	}
	if rng.To != "" {
		to, err := time.Parse("2006-01-02", rng.To)
		if err != nil {
			return filter, ErrInvalidDateRange
		}
		filter.DateTo = &to
	}

	if filter.DateFrom != nil && filter.DateTo != nil {
		if filter.DateFrom.After(*filter.DateTo) {
			return filter, ErrInvalidDateRange
		}
		if filter.DateTo.Sub(*filter.DateFrom) > time.Duration(s.maxSpanDays)*24*time.Hour {
			return filter, ErrInvalidDateRange
		}
	}
	return filter, nil
}

func toAttendanceSummaryResponse(a *analytics.AttendanceSummary) dto.AttendanceSummaryResponse {
	return dto.AttendanceSummaryResponse{
		StudentID:            a.StudentID,
		GroupID:              a.GroupID,
		TotalClasses:         a.TotalClasses,
		Present:              a.Present,
		Late:                 a.Late,
		Absent:               a.Absent,
		AttendancePercentage: a.AttendancePercentage.InexactFloat64(),
	}
}

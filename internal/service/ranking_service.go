package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/pocotu/sgf-backend-sub000/config"
	"github.com/pocotu/sgf-backend-sub000/internal/analytics"
	"github.com/pocotu/sgf-backend-sub000/internal/dto"
	"github.com/pocotu/sgf-backend-sub000/internal/model"
	"github.com/pocotu/sgf-backend-sub000/internal/repository"
)

// ── 排名模块业务错误 ──

var (
	ErrGroupNotFound = errors.New("班级不存在")
	ErrNoRankingData = errors.New("暂无排名数据：学生未在读或没有成绩")
)

// RankingService 成绩排名业务接口
//
// 设计说明：
//   - 排名每次请求实时计算，不做缓存，保证反映最新成绩
//   - 班级排名与单人位置查询共用同一套排序与名次规则（analytics.BuildRanking）
//   - 成绩范围：指定 evaluationID 时按评测，否则指定 groupID 时按班级，否则全部成绩
type RankingService interface {
	GetGroupRanking(ctx context.Context, groupID, evaluationID *int) (*dto.GroupRankingResponse, error)
	GetStudentPosition(ctx context.Context, studentID int, groupID, evaluationID *int) (*dto.StudentPositionResponse, error)
}

type rankingService struct {
	repo    *repository.Repository
	passing decimal.Decimal
	logger  *zap.Logger
}

// NewRankingService 创建 RankingService 实例
func NewRankingService(cfg *config.RankingConfig, repo *repository.Repository, logger *zap.Logger) RankingService {
	passing := analytics.DefaultPassingGrade
	if cfg != nil && cfg.PassingGrade > 0 {
		passing = decimal.NewFromFloat(cfg.PassingGrade)
	}
	return &rankingService{repo: repo, passing: passing, logger: logger}
}

// ────────────────────── GetGroupRanking ──────────────────────

func (s *rankingService) GetGroupRanking(ctx context.Context, groupID, evaluationID *int) (*dto.GroupRankingResponse, error) {
	entries, err := s.buildRanking(ctx, groupID, evaluationID)
	if err != nil {
		return nil, err
	}

	stats := analytics.ComputeStatistics(entries, s.passing)

	ranking := make([]dto.RankingEntryResponse, 0, len(entries))
	for i := range entries {
		ranking = append(ranking, toRankingEntryResponse(&entries[i]))
	}

	return &dto.GroupRankingResponse{
		GroupID:      groupID,
		EvaluationID: evaluationID,
		Statistics:   toStatisticsResponse(&stats),
		Ranking:      ranking,
	}, nil
}

// ────────────────────── GetStudentPosition ──────────────────────

func (s *rankingService) GetStudentPosition(ctx context.Context, studentID int, groupID, evaluationID *int) (*dto.StudentPositionResponse, error) {
	entries, err := s.buildRanking(ctx, groupID, evaluationID)
	if err != nil {
		return nil, err
	}

	standing, ok := analytics.Locate(entries, studentID)
	if !ok {
		return nil, ErrNoRankingData
	}

	return &dto.StudentPositionResponse{
		RankingEntryResponse: toRankingEntryResponse(&standing.Entry),
		TotalStudents:        standing.TotalStudents,
		Percentile:           standing.Percentile.InexactFloat64(),
		DifferenceFromFirst:  standing.DifferenceFromFirst.InexactFloat64(),
	}, nil
}

// ── 内部辅助方法 ──

// buildRanking 拉取在读学生与范围内成绩并生成排名
// 两次读取互不依赖，并发执行
func (s *rankingService) buildRanking(ctx context.Context, groupID, evaluationID *int) ([]analytics.Entry, error) {
	if groupID != nil {
		if err := ensureGroup(ctx, s.repo, s.logger, *groupID); err != nil {
			return nil, err
		}
	}

	filter := repository.GradeFilter{EvaluationID: evaluationID}
	if evaluationID == nil {
		filter.GroupID = groupID
	}

	var (
		members []model.EnrollmentSnapshot
		grades  []model.GradeRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.repo.Enrollment.ListActive(gctx, groupID)
		return err
	})
	g.Go(func() error {
		var err error
		grades, err = s.repo.Grade.Find(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("查询排名数据失败", zapIntPtr("group_id", groupID), zapIntPtr("evaluation_id", evaluationID), zap.Error(err))
		return nil, err
	}

	byStudent := make(map[int][]model.GradeRecord, len(members))
	for _, gr := range grades {
		byStudent[gr.StudentID] = append(byStudent[gr.StudentID], gr)
	}

	return analytics.BuildRanking(members, byStudent, s.passing), nil
}

// ensureGroup 班级不存在时返回 ErrGroupNotFound
func ensureGroup(ctx context.Context, repo *repository.Repository, logger *zap.Logger, groupID int) error {
	if _, err := repo.Group.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		logger.Error("查询班级失败", zap.Int("group_id", groupID), zap.Error(err))
		return err
	}
	return nil
}

func toRankingEntryResponse(e *analytics.Entry) dto.RankingEntryResponse {
	avg := e.Average.InexactFloat64()
	return dto.RankingEntryResponse{
		StudentID:     e.StudentID,
		InternalCode:  e.InternalCode,
		FullName:      e.FullName,
		Modality:      e.Modality,
		Average:       &avg,
		TotalGrades:   e.TotalGrades,
		CoursesPassed: e.CoursesPassed,
		CoursesFailed: e.CoursesFailed,
		MinGrade:      e.MinGrade.InexactFloat64(),
		MaxGrade:      e.MaxGrade.InexactFloat64(),
		Position:      e.Position,
	}
}

func toStatisticsResponse(st *analytics.Statistics) dto.GroupStatisticsResponse {
	return dto.GroupStatisticsResponse{
		StudentCount: st.StudentCount,
		GroupAverage: st.GroupAverage.InexactFloat64(),
		BestAverage:  st.BestAverage.InexactFloat64(),
		WorstAverage: st.WorstAverage.InexactFloat64(),
		PassedCount:  st.PassedCount,
		FailedCount:  st.FailedCount,
		PassRate:     st.PassRate.InexactFloat64(),
	}
}

func zapIntPtr(key string, v *int) zap.Field {
	if v == nil {
		return zap.Skip()
	}
	return zap.Int(key, *v)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pocotu/sgf-backend-sub000/config"
	"github.com/pocotu/sgf-backend-sub000/internal/model"
	"github.com/pocotu/sgf-backend-sub000/internal/repository"
)

// ── 测试辅助 ──

func setupTestRankingService() (RankingService, *mockRepos) {
	repo, mocks := newMockRepository()
	cfg := &config.RankingConfig{PassingGrade: 11}
	return NewRankingService(cfg, repo, zap.NewNop()), mocks
}

func addGrade(m *mockRepos, studentID, courseID, evaluationID, groupID int, value string) {
	m.grade.rows = append(m.grade.rows, model.GradeRecord{
		StudentID:    studentID,
		CourseID:     courseID,
		EvaluationID: evaluationID,
		GroupID:      groupID,
		Value:        decimal.RequireFromString(value),
	})
}

// seedGroupOne 班级 1：García 18、Pérez 18、López 15，Ríos 已退学
func seedGroupOne(m *mockRepos) {
	m.group.add(1, "Ingenierías A")
	m.enrollment.enroll(1, 1, "Pérez", model.EnrollmentEnrolled)
	m.enrollment.enroll(2, 1, "García", model.EnrollmentEnrolled)
	m.enrollment.enroll(3, 1, "López", model.EnrollmentEnrolled)
	m.enrollment.enroll(4, 1, "Ríos", model.EnrollmentWithdrawn)

	addGrade(m, 1, 100, 10, 1, "18")
	addGrade(m, 2, 100, 10, 1, "18")
	addGrade(m, 3, 100, 10, 1, "15")
	addGrade(m, 4, 100, 10, 1, "20")
}

func intPtr(v int) *int { return &v }

// ── GetGroupRanking 测试 ──

func TestRankingService_GetGroupRanking_Success(t *testing.T) {
	svc, m := setupTestRankingService()
	seedGroupOne(m)

	result, err := svc.GetGroupRanking(context.Background(), intPtr(1), nil)
	if err != nil {
		t.Fatalf("GetGroupRanking 应成功: %v", err)
	}
	if len(result.Ranking) != 3 {
		t.Fatalf("期望 3 名学生（退学学生不参与），实际=%d", len(result.Ranking))
	}

	wantNames := []string{"García", "Pérez", "López"}
	wantPos := []int{1, 1, 3}
	for i, e := range result.Ranking {
		if e.FullName != wantNames[i] || e.Position != wantPos[i] {
			t.Errorf("第%d条期望 %s/%d，实际 %s/%d", i, wantNames[i], wantPos[i], e.FullName, e.Position)
		}
	}

	st := result.Statistics
	if st.StudentCount != 3 {
		t.Errorf("期望 StudentCount=3，实际=%d", st.StudentCount)
	}
	if st.GroupAverage != 17 {
		t.Errorf("期望 GroupAverage=17，实际=%v", st.GroupAverage)
	}
	if st.BestAverage != 18 || st.WorstAverage != 15 {
		t.Errorf("期望 Best=18 Worst=15，实际 %v/%v", st.BestAverage, st.WorstAverage)
	}
	if st.PassRate != 100 {
		t.Errorf("期望 PassRate=100，实际=%v", st.PassRate)
	}
	if result.GroupID == nil || *result.GroupID != 1 {
		t.Error("响应应回显 group_id")
	}
}

func TestRankingService_GetGroupRanking_GroupNotFound(t *testing.T) {
	svc, _ := setupTestRankingService()

	_, err := svc.GetGroupRanking(context.Background(), intPtr(99), nil)
	if !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("期望 ErrGroupNotFound，实际: %v", err)
	}
}

func TestRankingService_GetGroupRanking_EmptyGroup(t *testing.T) {
	svc, m := setupTestRankingService()
	m.group.add(2, "Sin notas")
	m.enrollment.enroll(7, 2, "Ana", model.EnrollmentEnrolled)

	result, err := svc.GetGroupRanking(context.Background(), intPtr(2), nil)
	if err != nil {
		t.Fatalf("空班级不应报错: %v", err)
	}
	if len(result.Ranking) != 0 {
		t.Errorf("期望空排名，实际=%d", len(result.Ranking))
	}
	if result.Statistics.StudentCount != 0 || result.Statistics.PassRate != 0 {
		t.Errorf("期望全 0 统计，实际=%+v", result.Statistics)
	}
}

func TestRankingService_GetGroupRanking_ByEvaluation(t *testing.T) {
	svc, m := setupTestRankingService()
	seedGroupOne(m)
	// 评测 11 只有 López 有成绩
	addGrade(m, 3, 100, 11, 1, "19")

	result, err := svc.GetGroupRanking(context.Background(), intPtr(1), intPtr(11))
	if err != nil {
		t.Fatalf("GetGroupRanking 应成功: %v", err)
	}
	if len(result.Ranking) != 1 {
		t.Fatalf("期望 1 名学生，实际=%d", len(result.Ranking))
	}
	if got := *result.Ranking[0].Average; got != 19 {
		t.Errorf("期望 Average=19，实际=%v", got)
	}
}

func TestRankingService_GetGroupRanking_Global(t *testing.T) {
	svc, m := setupTestRankingService()
	seedGroupOne(m)
	m.group.add(2, "Biomédicas")
	m.enrollment.enroll(5, 2, "Zapata", model.EnrollmentEnrolled)
	addGrade(m, 5, 200, 20, 2, "20")

	result, err := svc.GetGroupRanking(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("全校排名应成功: %v", err)
	}
	if len(result.Ranking) != 4 {
		t.Fatalf("期望 4 名学生，实际=%d", len(result.Ranking))
	}
	if result.Ranking[0].FullName != "Zapata" || result.Ranking[0].Position != 1 {
		t.Errorf("期望 Zapata 第 1，实际 %s/%d", result.Ranking[0].FullName, result.Ranking[0].Position)
	}
	if result.GroupID != nil {
		t.Error("全校排名 group_id 应为空")
	}
}

func TestRankingService_GetGroupRanking_RepoError(t *testing.T) {
	svc, m := setupTestRankingService()
	seedGroupOne(m)
	m.grade.err = errMockDB

	_, err := svc.GetGroupRanking(context.Background(), intPtr(1), nil)
	if !errors.Is(err, errMockDB) {
		t.Errorf("期望透传仓储错误，实际: %v", err)
	}
}

// ── GetStudentPosition 测试 ──

func TestRankingService_GetStudentPosition_Success(t *testing.T) {
	svc, m := setupTestRankingService()
	seedGroupOne(m)

	result, err := svc.GetStudentPosition(context.Background(), 3, intPtr(1), nil)
	if err != nil {
		t.Fatalf("GetStudentPosition 应成功: %v", err)
	}
	if result.Position != 3 {
		t.Errorf("期望 Position=3，实际=%d", result.Position)
	}
	if result.TotalStudents != 3 {
		t.Errorf("期望 TotalStudents=3，实际=%d", result.TotalStudents)
	}
	if result.Percentile != 33.33 {
		t.Errorf("期望 Percentile=33.33，实际=%v", result.Percentile)
	}
	if result.DifferenceFromFirst != 3 {
		t.Errorf("期望 DifferenceFromFirst=3，实际=%v", result.DifferenceFromFirst)
	}
}

func TestRankingService_GetStudentPosition_MatchesGroupRanking(t *testing.T) {
	svc, m := setupTestRankingService()
	seedGroupOne(m)
	ctx := context.Background()

	ranking, err := svc.GetGroupRanking(ctx, intPtr(1), nil)
	if err != nil {
		t.Fatalf("GetGroupRanking 应成功: %v", err)
	}
	for _, e := range ranking.Ranking {
		pos, err := svc.GetStudentPosition(ctx, e.StudentID, intPtr(1), nil)
		if err != nil {
			t.Fatalf("GetStudentPosition(%d) 应成功: %v", e.StudentID, err)
		}
		if pos.Position != e.Position {
			t.Errorf("学生 %d 名次不一致: %d vs %d", e.StudentID, pos.Position, e.Position)
		}
	}
}

func TestRankingService_GetStudentPosition_NoData(t *testing.T) {
	svc, m := setupTestRankingService()
	seedGroupOne(m)

	// 已退学学生
	_, err := svc.GetStudentPosition(context.Background(), 4, intPtr(1), nil)
	if !errors.Is(err, ErrNoRankingData) {
		t.Errorf("期望 ErrNoRankingData，实际: %v", err)
	}

	// 不存在的学生
	_, err = svc.GetStudentPosition(context.Background(), 404, intPtr(1), nil)
	if !errors.Is(err, ErrNoRankingData) {
		t.Errorf("期望 ErrNoRankingData，实际: %v", err)
	}
}

func TestRankingService_DefaultPassingGrade(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewRankingService(&config.RankingConfig{}, repo, zap.NewNop())
	m.group.add(1, "A")
	m.enrollment.enroll(1, 1, "Ana", model.EnrollmentEnrolled)
	addGrade(m, 1, 100, 10, 1, "11")

	result, err := svc.GetGroupRanking(context.Background(), intPtr(1), nil)
	if err != nil {
		t.Fatalf("GetGroupRanking 应成功: %v", err)
	}
	if result.Statistics.PassedCount != 1 {
		t.Errorf("11 分应视为及格，PassedCount=%d", result.Statistics.PassedCount)
	}
	if result.Ranking[0].CoursesPassed != 1 {
		t.Errorf("期望 CoursesPassed=1，实际=%d", result.Ranking[0].CoursesPassed)
	}
}

// 编译期校验 mock 满足接口
var (
	_ repository.GroupRepository      = (*mockGroupRepo)(nil)
	_ repository.EnrollmentRepository = (*mockEnrollmentRepo)(nil)
	_ repository.GradeRepository      = (*mockGradeRepo)(nil)
	_ repository.AttendanceRepository = (*mockAttendanceRepo)(nil)
)

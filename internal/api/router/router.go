package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pocotu/sgf-backend-sub000/config"
	"github.com/pocotu/sgf-backend-sub000/internal/api/handler"
	"github.com/pocotu/sgf-backend-sub000/internal/api/middleware"
	"github.com/pocotu/sgf-backend-sub000/pkg/jwt"
	"github.com/pocotu/sgf-backend-sub000/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rdb, cfg.Server.RateLimit, cfg.Server.RateWindowDuration()))
	v1.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		staff := middleware.RoleAuth("admin", "teacher")

		// 排名模块
		rankings := v1.Group("/rankings")
		{
			rankings.GET("", staff, h.Ranking.GetGroupRanking)
			rankings.GET("/students/:id", h.Ranking.GetStudentPosition) // 学生仅限本人（Handler 层鉴权）
		}

		// 出勤统计模块
		attendance := v1.Group("/attendance")
		{
			attendance.GET("/students/:id", h.Attendance.GetStudentSummary)
			attendance.GET("/groups/:id", staff, h.Attendance.GetGroupSummary)
			attendance.GET("/groups/:id/daily", staff, h.Attendance.GetGroupDaily)
		}

		// 导出模块
		export := v1.Group("/export", staff)
		{
			export.GET("/rankings", h.Export.ExportRanking)
			export.GET("/attendance/groups/:id", h.Export.ExportGroupAttendance)
		}
	}

	return r
}

// report 命令行工具：在终端打印班级排名或出勤汇总
//
//	report ranking   -group 3 [-evaluation 7]
//	report attendance -group 3 [-from 2026-03-01 -to 2026-06-30] [-daily]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pocotu/sgf-backend-sub000/config"
	"github.com/pocotu/sgf-backend-sub000/internal/dto"
	"github.com/pocotu/sgf-backend-sub000/internal/repository"
	"github.com/pocotu/sgf-backend-sub000/internal/service"
	"github.com/pocotu/sgf-backend-sub000/pkg/database"
	applogger "github.com/pocotu/sgf-backend-sub000/pkg/logger"
)

func usage() {
	fmt.Fprintln(os.Stderr, "用法:")
	fmt.Fprintln(os.Stderr, "  report ranking    -group <id> [-evaluation <id>] [-config <path>]")
	fmt.Fprintln(os.Stderr, "  report attendance -group <id> [-from YYYY-MM-DD] [-to YYYY-MM-DD] [-daily] [-config <path>]")
}

func main() {
	// .env 不存在时仅依赖环境变量与配置文件
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		color.Red("读取 .env 失败: %v", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "ranking":
		err = runRanking(os.Args[2:])
	case "attendance":
		err = runAttendance(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		color.Red("执行失败: %v", err)
		os.Exit(1)
	}
}

// bootstrap 加载配置并组装 Service
func bootstrap(configPath string) (*service.Service, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	// CLI 默认只输出警告以上日志，避免干扰表格
	logCfg := cfg.Log
	logCfg.Format = "console"
	if logCfg.Level != "debug" {
		logCfg.Level = "warn"
	}
	logger, err := applogger.NewLogger(&logCfg)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.NewDB(&cfg.Database, logCfg.Level, logger)
	if err != nil {
		logger.Error("数据库连接失败", zap.String("host", cfg.Database.Host), zap.Error(err))
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		logger.Sync()
	}
	return service.NewService(cfg, repository.NewRepository(db), logger), cleanup, nil
}

func runRanking(args []string) error {
	fsFlags := flag.NewFlagSet("ranking", flag.ExitOnError)
	group := fsFlags.Int("group", 0, "班级 ID（0 表示全校）")
	evaluation := fsFlags.Int("evaluation", 0, "评测 ID（0 表示全部评测）")
	configPath := fsFlags.String("config", "", "配置文件路径")
	fsFlags.Parse(args)

	svc, cleanup, err := bootstrap(*configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := svc.Ranking.GetGroupRanking(ctx, optionalID(*group), optionalID(*evaluation))
	if err != nil {
		return err
	}

	renderRanking(os.Stdout, result)
	return nil
}

func runAttendance(args []string) error {
	fsFlags := flag.NewFlagSet("attendance", flag.ExitOnError)
	group := fsFlags.Int("group", 0, "班级 ID")
	from := fsFlags.String("from", "", "起始日期 YYYY-MM-DD")
	to := fsFlags.String("to", "", "结束日期 YYYY-MM-DD")
	daily := fsFlags.Bool("daily", false, "按上课日期汇总")
	configPath := fsFlags.String("config", "", "配置文件路径")
	fsFlags.Parse(args)

	if *group <= 0 {
		return errors.New("-group 必须为正整数")
	}

	svc, cleanup, err := bootstrap(*configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rng := &dto.DateRangeQuery{From: *from, To: *to}
	if *daily {
		days, err := svc.Attendance.DailyByGroup(ctx, *group, rng)
		if err != nil {
			return err
		}
		renderDaily(os.Stdout, *group, days)
		return nil
	}

	rows, err := svc.Attendance.SummaryByGroup(ctx, *group, rng)
	if err != nil {
		return err
	}
	renderAttendance(os.Stdout, *group, rows)
	return nil
}

func optionalID(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

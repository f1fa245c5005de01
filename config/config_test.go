package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("SGF_AUTH_JWT_SECRET", "env-secret-at-least-16")
	t.Setenv("SGF_RANKING_PASSING_GRADE", "12.5")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望 port=9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "env-secret-at-least-16" {
		t.Errorf("环境变量未生效: %s", cfg.Auth.JWTSecret)
	}
	if cfg.Ranking.PassingGrade != 12.5 {
		t.Errorf("期望 passing_grade=12.5，实际=%v", cfg.Ranking.PassingGrade)
	}
	if cfg.Ranking.MaxDateSpanDays != 366 {
		t.Errorf("期望默认 max_date_span_days=366，实际=%d", cfg.Ranking.MaxDateSpanDays)
	}
	if cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("期望默认 access_token_ttl=15m，实际=%v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Export.FilenamePrefix != "sgf" {
		t.Errorf("期望默认 filename_prefix=sgf，实际=%s", cfg.Export.FilenamePrefix)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 8080},
			Auth:    AuthConfig{JWTSecret: "0123456789abcdef"},
			Ranking: RankingConfig{PassingGrade: 11, MaxDateSpanDays: 366},
		}
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("合法配置校验失败: %v", err)
	}

	cases := map[string]func(c *Config){
		"空密钥":     func(c *Config) { c.Auth.JWTSecret = "" },
		"密钥过短":    func(c *Config) { c.Auth.JWTSecret = "short" },
		"端口越界":    func(c *Config) { c.Server.Port = 70000 },
		"及格线越界":   func(c *Config) { c.Ranking.PassingGrade = 21 },
		"日期跨度非正数": func(c *Config) { c.Ranking.MaxDateSpanDays = 0 },
	}
	for name, mutate := range cases {
		c := valid()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: 期望校验失败", name)
		}
	}
}

func TestRateWindowDuration(t *testing.T) {
	s := ServerConfig{RateWindow: "30s"}
	if s.RateWindowDuration() != 30*time.Second {
		t.Errorf("期望 30s，实际=%v", s.RateWindowDuration())
	}
	s.RateWindow = "bogus"
	if s.RateWindowDuration() != time.Minute {
		t.Errorf("非法值应回退为 1m，实际=%v", s.RateWindowDuration())
	}
}

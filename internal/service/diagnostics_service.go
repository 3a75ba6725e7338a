package service

import (
	"context"
	"sync/atomic"
	"time"

	"story_learning_backend/internal/config"
	"story_learning_backend/internal/util"
	"story_learning_backend/pkg/store"
)

type DiagnosticsService struct {
	Store store.DocumentStore
	cfg   atomic.Pointer[config.Config]
}

func NewDiagnosticsService(s store.DocumentStore, cfg *config.Config) *DiagnosticsService {
	svc := &DiagnosticsService{Store: s}
	svc.cfg.Store(cfg)
	return svc
}

// UpdateConfig 配置热更回调，报告内容跟随最新配置
func (s *DiagnosticsService) UpdateConfig(cfg *config.Config) {
	s.cfg.Store(cfg)
}

// swagger:model DiagnosticsReport
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Check 连通性自检。任何子检查失败都只体现为对应字段里的说明文字，
// 本方法自身永不报错；连接串与库名只报告是否配置，不回显取值。
func (s *DiagnosticsService) Check(ctx context.Context) *DiagnosticsReport {
	report := &DiagnosticsReport{
		Backend:          "Running",
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	cfg := s.cfg.Load()
	report.DatabaseURL = setOrNot(cfg.Store.URI)
	report.DatabaseName = setOrNot(cfg.Store.Database)

	if s.Store == nil {
		return report
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.Store.Ping(pingCtx); err != nil {
		report.Database = "Error: " + truncate(err.Error())
		return report
	}

	report.Database = "Connected"
	report.ConnectionStatus = "Connected"

	names, err := s.Store.ListCollectionNames(pingCtx)
	if err != nil {
		report.Database = "Connected but Error: " + truncate(err.Error())
		return report
	}

	if len(names) > 10 {
		names = names[:10]
	}
	report.Collections = names
	report.Database = "Connected & Working"

	return report
}

func setOrNot(value string) string {
	if value != "" {
		return "Set"
	}
	return "Not Set"
}

func truncate(msg string) string {
	if len(msg) > util.DiagnosticErrorLimit {
		return msg[:util.DiagnosticErrorLimit]
	}
	return msg
}

package diagnostics

import (
	"context"
	"database/sql"
	"time"

	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/storage/db"
)

const (
	statusRunning        = "✅ Running"
	statusNotAvailable   = "❌ Not Available"
	statusNotInitialized = "⚠️  Available but not initialized"
	statusWorking        = "✅ Connected & Working"
	statusErrorPrefix    = "⚠️  Connected but Error: "
	statusSet            = "✅ Set"
	statusNotSet         = "❌ Not Set"

	maxTables    = 10
	maxErrorText = 50
)

// Report is the payload of the diagnostic endpoint.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Service inspects backend and database availability.
type Service struct {
	Cfg         config.Config
	DB          *sql.DB
	PingTimeout time.Duration
}

// NewService constructs a Service. database is nil when no connection exists.
func NewService(cfg config.Config, database *sql.DB) *Service {
	return &Service{Cfg: cfg, DB: database, PingTimeout: 2 * time.Second}
}

// Status reports backend and database health. It never fails; problems are
// described in the report itself.
func (s *Service) Status(ctx context.Context) Report {
	report := Report{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		DatabaseURL:      setOrNot(s.Cfg.DatabaseURL),
		DatabaseName:     setOrNot(s.Cfg.DatabaseName),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.DB == nil {
		if s.Cfg.DatabaseURL != "" {
			report.Database = statusNotInitialized
		}
		return report
	}

	report.Database = statusNotInitialized
	pingCtx, cancel := context.WithTimeout(ctx, s.PingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		report.Database = statusErrorPrefix + truncate(err.Error(), maxErrorText)
		return report
	}
	report.ConnectionStatus = "Connected"

	tables, err := db.ListTables(ctx, s.DB, maxTables)
	if err != nil {
		report.Database = statusErrorPrefix + truncate(err.Error(), maxErrorText)
		return report
	}
	report.Database = statusWorking
	report.Collections = tables
	return report
}

func setOrNot(v string) string {
	if v != "" {
		return statusSet
	}
	return statusNotSet
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

package cmd

import (
	"fmt"

	"github.com/Iron-Ham/taskboard/internal/config"
	"github.com/Iron-Ham/taskboard/internal/dashboard"
	"github.com/Iron-Ham/taskboard/internal/logging"
	"github.com/Iron-Ham/taskboard/internal/seed"
	"github.com/Iron-Ham/taskboard/internal/store"
	"github.com/Iron-Ham/taskboard/internal/views"
)

// runtime is everything a command needs, built from the active config.
type runtime struct {
	cfg     *config.Config
	logger  *logging.Logger
	svc     *dashboard.Service
	roster  []string
	cleanup func()
}

// bootstrap loads the config, opens the log and seeds a fresh store.
// Callers must call cleanup when done.
func bootstrap() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLoggerWithRotation(cfg.Logging.LogDir(), cfg.Logging.Level, logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open log: %w", err)
		}
	}

	ds, err := seed.Load(cfg.Dashboard.SeedFile)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	logger.Info("dataset loaded",
		"seed_file", cfg.Dashboard.SeedFile,
		"projects", len(ds.Projects),
	)

	st := store.New(ds.Projects, store.WithLogger(logger))
	svc := dashboard.NewService(st,
		dashboard.WithLogger(logger),
		dashboard.WithReminderWindow(cfg.Dashboard.ReminderWindowDays),
	)

	return &runtime{
		cfg:    cfg,
		logger: logger,
		svc:    svc,
		roster: ds.Assignees,
		cleanup: func() {
			_ = logger.Close()
		},
	}, nil
}

// defaultFilter is the filter configured for the list and the dashboard.
func (rt *runtime) defaultFilter() views.Filter {
	f, err := views.ParseFilter("", rt.cfg.Dashboard.DefaultStatus, rt.cfg.Dashboard.DefaultPriority)
	if err != nil {
		return views.NewFilter()
	}
	return f
}

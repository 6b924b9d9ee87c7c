package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"coffee-verifier/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// PendingSweeper is the part of the status resolver the sweeper drives.
type PendingSweeper interface {
	SweepPending(ctx context.Context, limit int) (*commands.SweepReport, error)
}

type SweeperConfig struct {
	Schedule   string
	BatchSize  int
	RunTimeout time.Duration
}

// Sweeper periodically resolves requests nobody polled past the force window,
// so no request stays pending forever.
type Sweeper struct {
	cron     *cron.Cron
	resolver PendingSweeper
	cfg      SweeperConfig
	mu       sync.Mutex
	running  bool
}

func NewSweeper(resolver PendingSweeper, cfg SweeperConfig) *Sweeper {
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 30 * time.Second
	}
	logger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn))
	return &Sweeper{
		cron: cron.New(cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		)),
		resolver: resolver,
		cfg:      cfg,
	}
}

func (s *Sweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("sweeper already running")
	}

	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.RunOnce); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()
	s.running = true
	slog.Info("pending request sweeper started", "schedule", s.cfg.Schedule, "batch_size", s.cfg.BatchSize)
	return nil
}

func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("pending request sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce performs one sweep pass.
func (s *Sweeper) RunOnce() {
	runID := uuid.New()
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RunTimeout)
	defer cancel()

	started := time.Now()
	report, err := s.resolver.SweepPending(ctx, s.cfg.BatchSize)
	if err != nil {
		slog.Error("pending request sweep failed", "run_id", runID.String(), "error", err.Error())
		return
	}
	if report.Scanned == 0 {
		return
	}
	slog.Info("pending request sweep finished",
		"run_id", runID.String(),
		"scanned", report.Scanned,
		"resolved", report.Resolved,
		"failed", report.Failed,
		"duration_ms", time.Since(started).Milliseconds())
}

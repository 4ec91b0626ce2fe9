package main

import (
	"log/slog"
	"os"

	"github.com/vango-dev/ripple/internal/config"
	"github.com/vango-dev/ripple/internal/errors"
	"github.com/vango-dev/ripple/pkg/docs"
	"github.com/vango-dev/ripple/pkg/metrics"
	"github.com/vango-dev/ripple/pkg/sched"
)

// env is one runtime stack built from a config: logger, metrics, warning
// channel, scheduler and document runtime over a shared host.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	warner  *errors.Warner
	sched   *sched.Scheduler
	runtime *docs.Runtime
}

func loadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

func newLogger(cfg *config.Config) *slog.Logger {
	return cfg.Log.NewLogger(os.Stderr)
}

func newEnv(cfg *config.Config, logger *slog.Logger, host sched.Host) *env {
	m := metrics.New()
	w := errors.NewWarner(logger, errors.WarnerConfig{
		Rate:   cfg.Warnings.Rate,
		Burst:  cfg.Warnings.Burst,
		OnWarn: m.Warning,
	})
	errors.SetDefaultWarner(w)

	s := sched.New(host,
		sched.WithBudget(cfg.Scheduler.Budget.Std()),
		sched.WithLogger(logger),
		sched.WithMetrics(m),
	)
	rt := docs.NewRuntime(s,
		docs.WithLogger(logger),
		docs.WithMetrics(m),
		docs.WithWarner(w),
		docs.WithAnimations(cfg.Animations.Enabled),
	)
	return &env{
		cfg:     cfg,
		logger:  rt.Logger(),
		metrics: m,
		warner:  w,
		sched:   s,
		runtime: rt,
	}
}

func newLoop(cfg *config.Config, logger *slog.Logger) *sched.Loop {
	return sched.NewLoop(
		sched.WithLoopLogger(logger),
		sched.WithFrameInterval(cfg.Frames.Interval.Std()),
	)
}

// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tomtom215/forkful/internal/logging"
)

// defaultRefreshTimeout bounds a single refresh run.
const defaultRefreshTimeout = 30 * time.Second

// Refresher reloads a cache from its source. *cache.CategoryCache satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// CategoryRefresherService warms the category cache at startup and then
// reloads it on a cron schedule. Failed runs are logged and retried at the
// next tick; the service itself only stops when its context is canceled.
type CategoryRefresherService struct {
	refresher Refresher
	schedule  cron.Schedule
	spec      string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewCategoryRefresherService parses spec, a standard five-field cron
// expression or a descriptor such as "@every 5m".
func NewCategoryRefresherService(refresher Refresher, spec string, timeout time.Duration) (*CategoryRefresherService, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	return &CategoryRefresherService{
		refresher: refresher,
		schedule:  schedule,
		spec:      spec,
		timeout:   timeout,
		logger:    logging.WithComponent("category-refresher"),
	}, nil
}

// Serve implements suture.Service.
func (s *CategoryRefresherService) Serve(ctx context.Context) error {
	s.refresh(ctx)

	c := cron.New(
		cron.WithLogger(cronLogger{s.logger}),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{s.logger})),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() { s.refresh(ctx) }))
	c.Start()

	s.logger.Info().Str("schedule", s.spec).Msg("Category refresh scheduled")

	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}

func (s *CategoryRefresherService) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.refresher.Refresh(runCtx); err != nil {
		s.logger.Warn().Err(err).Msg("Category refresh failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("Category cache refreshed")
}

// String implements fmt.Stringer.
func (s *CategoryRefresherService) String() string {
	return "category-refresher"
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*CategoryRefresherService)(nil)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("refresh called without a deadline")
	}
	return r.err
}

func TestNewCategoryRefresherService_Schedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec    string
		wantErr bool
	}{
		{"*/5 * * * *", false},
		{"@every 1m", false},
		{"@hourly", false},
		{"", true},
		{"every five minutes", true},
		{"* * * * * * *", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			_, err := NewCategoryRefresherService(&countingRefresher{}, tt.spec, 0)
			if (err != nil) != tt.wantErr {
				t.Errorf("spec %q: err = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestCategoryRefresherService_Serve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"refresh succeeds", nil},
		{"refresh keeps failing", errors.New("database locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			refresher := &countingRefresher{err: tt.err}
			svc, err := NewCategoryRefresherService(refresher, "@every 1s", time.Second)
			if err != nil {
				t.Fatalf("NewCategoryRefresherService: %v", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() { errCh <- svc.Serve(ctx) }()

			// one warm-up run plus at least one scheduled run
			deadline := time.Now().Add(5 * time.Second)
			for refresher.calls.Load() < 2 && time.Now().Before(deadline) {
				time.Sleep(20 * time.Millisecond)
			}
			cancel()

			if n := refresher.calls.Load(); n < 2 {
				t.Errorf("expected at least 2 refreshes, got %d", n)
			}
			select {
			case err := <-errCh:
				if !errors.Is(err, context.Canceled) {
					t.Errorf("expected context.Canceled, got %v", err)
				}
			case <-time.After(3 * time.Second):
				t.Fatal("Serve did not return after cancel")
			}
		})
	}
}

func TestCategoryRefresherService_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	refresher := &countingRefresher{}
	svc, err := NewCategoryRefresherService(refresher, "@hourly", 0)
	if err != nil {
		t.Fatalf("NewCategoryRefresherService: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if n := refresher.calls.Load(); n != 0 {
		t.Errorf("expected no refresh after cancel, got %d", n)
	}
	if svc.timeout != defaultRefreshTimeout {
		t.Errorf("expected default timeout, got %v", svc.timeout)
	}
}

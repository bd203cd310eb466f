// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/forkful/internal/logging"
	"github.com/tomtom215/forkful/internal/metrics"
)

// newBreaker builds the store's circuit breaker:
//   - 3 trial requests in half-open state
//   - counts reset every minute while closed
//   - 30 seconds open before trying half-open
//   - opens at a 60% failure rate over at least 10 requests
//
// Not-found results and caller cancellations count as successes so that a
// burst of bad IDs or dropped clients never opens the circuit.
func newBreaker(name string) *gobreaker.CircuitBreaker[interface{}] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrRestaurantNotFound) ||
				errors.Is(err, ErrUserNotFound) ||
				errors.Is(err, context.Canceled)
		},
	})
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// execute runs fn through the circuit breaker and records query metrics.
// Breaker rejections are returned wrapped in ErrUnavailable.
func execute[T any](db *DB, operation, table string, fn func() (T, error)) (T, error) {
	start := time.Now()
	result, err := db.breaker.Execute(func() (interface{}, error) {
		return fn()
	})
	metrics.RecordDBQuery(operation, table, time.Since(start), err)

	var zero T
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(db.breaker.Name(), "rejected").Inc()
			return zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(db.breaker.Name(), "failure").Inc()
		return zero, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(db.breaker.Name(), "success").Inc()

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// exec is execute for operations without a result value.
func exec(db *DB, operation, table string, fn func() error) error {
	_, err := execute(db, operation, table, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package main

import (
	"testing"

	"github.com/tomtom215/forkful/internal/config"
)

func TestEnsureJWTSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		secret      string
		environment string
		wantErr     bool
		wantSame    bool
	}{
		{"configured secret kept", "configured-secret", "production", false, true},
		{"generated in development", "", "development", false, false},
		{"required in production", "", "production", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{}
			cfg.Security.JWTSecret = tt.secret
			cfg.Server.Environment = tt.environment

			err := ensureJWTSecret(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.wantSame && cfg.Security.JWTSecret != tt.secret {
				t.Errorf("secret changed to %q", cfg.Security.JWTSecret)
			}
			if !tt.wantSame && len(cfg.Security.JWTSecret) < 32 {
				t.Errorf("generated secret too short: %d", len(cfg.Security.JWTSecret))
			}
		})
	}
}

// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/forkful/internal/config"
)

const testSecret = "this_is_a_very_long_secret_key_for_testing_purposes_12345"

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	manager, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      testSecret,
		SessionTimeout: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return manager
}

func TestNewJWTManager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         *config.SecurityConfig
		wantErr     bool
		wantTimeout time.Duration
	}{
		{
			name:        "valid secret",
			cfg:         &config.SecurityConfig{JWTSecret: testSecret, SessionTimeout: 2 * time.Hour},
			wantTimeout: 2 * time.Hour,
		},
		{
			name:        "default timeout",
			cfg:         &config.SecurityConfig{JWTSecret: testSecret},
			wantTimeout: 24 * time.Hour,
		},
		{
			name:    "empty secret",
			cfg:     &config.SecurityConfig{SessionTimeout: time.Hour},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			manager, err := NewJWTManager(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("NewJWTManager() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewJWTManager() unexpected error = %v", err)
			}
			if manager.Timeout() != tt.wantTimeout {
				t.Errorf("Timeout() = %v, want %v", manager.Timeout(), tt.wantTimeout)
			}
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()
	manager := newTestManager(t)

	token, err := manager.GenerateToken(42, "user1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID() error = %v", err)
	}
	if id != 42 {
		t.Errorf("UserID() = %d, want 42", id)
	}
	if claims.Name != "user1" {
		t.Errorf("Name = %q, want %q", claims.Name, "user1")
	}
}

func TestValidateToken_Rejects(t *testing.T) {
	t.Parallel()
	manager := newTestManager(t)

	other, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      "a_completely_different_secret_of_sufficient_length",
		SessionTimeout: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	foreign, err := other.GenerateToken(1, "")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	expiredManager := newTestManager(t)
	expiredManager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredManager.GenerateToken(1, "")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString(none) error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not.a.token"},
		{"empty", ""},
		{"wrong secret", foreign},
		{"expired", expired},
		{"alg none", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := manager.ValidateToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestClaims_UserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		subject string
		want    int64
		wantErr bool
	}{
		{"7", 7, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
	}

	for _, tt := range tests {
		c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}
		got, err := c.UserID()
		if (err != nil) != tt.wantErr {
			t.Errorf("UserID(%q) error = %v, wantErr %v", tt.subject, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("UserID(%q) = %d, want %d", tt.subject, got, tt.want)
		}
	}
}

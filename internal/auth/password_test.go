// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package auth

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("12345678")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "12345678" {
		t.Fatal("HashPassword() returned the plain password")
	}

	if err := CheckPassword(hash, "12345678"); err != nil {
		t.Errorf("CheckPassword(correct) error = %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword(wrong) error = %v, want ErrInvalidCredentials", err)
	}
	if err := CheckPassword("not-a-hash", "12345678"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword(bad hash) error = %v, want ErrInvalidCredentials", err)
	}
}

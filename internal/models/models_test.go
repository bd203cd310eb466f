// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package models

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantLen int
	}{
		{"empty", "", 0},
		{"short", "Cozy noodle bar", 15},
		{"exactly limit", strings.Repeat("a", 50), 50},
		{"over limit", strings.Repeat("b", 120), 50},
		{"multi-byte", strings.Repeat("餐", 60), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TruncateDescription(tt.input)
			if n := utf8.RuneCountInString(got); n != tt.wantLen {
				t.Errorf("TruncateDescription() rune count = %d, want %d", n, tt.wantLen)
			}
			if !utf8.ValidString(got) {
				t.Errorf("TruncateDescription() produced invalid UTF-8: %q", got)
			}
			if !strings.HasPrefix(tt.input, got) {
				t.Errorf("TruncateDescription() = %q is not a prefix of input", got)
			}
		})
	}
}

func TestViewer(t *testing.T) {
	t.Parallel()

	var anon Viewer
	if !anon.IsAnonymous() {
		t.Error("zero Viewer should be anonymous")
	}
	if anon.HasFavorited(1) || anon.HasLiked(1) {
		t.Error("anonymous viewer should have no favorites or likes")
	}

	v := NewViewer(3, []int64{1, 2}, []int64{2})
	if v.IsAnonymous() {
		t.Error("viewer with user ID should not be anonymous")
	}
	if !v.HasFavorited(1) || !v.HasFavorited(2) || v.HasFavorited(3) {
		t.Errorf("unexpected favorites: %v", v.Favorites)
	}
	if v.HasLiked(1) || !v.HasLiked(2) {
		t.Errorf("unexpected likes: %v", v.Likes)
	}
}

// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package validation

import (
	"errors"
	"strings"
	"testing"
)

type listRequest struct {
	CategoryID int64 `query:"categoryId" validate:"min=0"`
	Page       int   `query:"page" validate:"min=1"`
	Limit      int   `query:"limit" validate:"min=1,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  interface{}
	}{
		{"list defaults", &listRequest{Page: 1, Limit: 9}},
		{"list with category", &listRequest{CategoryID: 3, Page: 2, Limit: 100}},
		{"login", &loginRequest{Email: "root@example.com", Password: "12345678"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := Validate(tt.req); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       interface{}
		wantField string
		wantRule  string
		wantMsg   string
	}{
		{"page below one", &listRequest{Page: 0, Limit: 9}, "page", "min", "page must be 1 or greater"},
		{"limit too large", &listRequest{Page: 1, Limit: 500}, "limit", "max", "limit must be at most 100 restaurants"},
		{"negative category", &listRequest{CategoryID: -1, Page: 1, Limit: 9}, "categoryId", "min",
			"categoryId must be a category id, or 0 for all categories"},
		{"bad email", &loginRequest{Email: "root", Password: "12345678"}, "email", "email",
			"email must be a valid email address"},
		{"short password", &loginRequest{Email: "root@example.com", Password: "123"}, "password", "min",
			"password must be at least 8 characters"},
		{"long password", &loginRequest{Email: "root@example.com", Password: strings.Repeat("x", 73)}, "password", "max",
			"password must be at most 72 characters"},
		{"missing password", &loginRequest{Email: "root@example.com"}, "password", "required",
			"password is required to sign in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var verrs Errors
			if err := Validate(tt.req); !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v, want Errors", err)
			}
			if len(verrs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(verrs), verrs)
			}
			got := verrs[0]
			if got.Field != tt.wantField || got.Rule != tt.wantRule {
				t.Errorf("got %s.%s, want %s.%s", got.Field, got.Rule, tt.wantField, tt.wantRule)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestErrors_Details(t *testing.T) {
	t.Parallel()

	var single Errors
	if !errors.As(Validate(&listRequest{Page: 0, Limit: 9}), &single) {
		t.Fatal("expected Errors for one bad field")
	}
	if fe, ok := single.Details().(FieldError); !ok || fe.Field != "page" {
		t.Errorf("Details() = %#v, want the page FieldError", single.Details())
	}

	var multi Errors
	if !errors.As(Validate(&loginRequest{}), &multi) {
		t.Fatal("expected Errors for an empty login")
	}
	if len(multi) != 2 {
		t.Fatalf("got %d errors, want 2", len(multi))
	}
	if msg := multi.Message(); !strings.Contains(msg, "email") || !strings.Contains(msg, "password") {
		t.Errorf("Message() = %q, want both fields mentioned", msg)
	}
	details, ok := multi.Details().(map[string]interface{})
	if !ok {
		t.Fatalf("Details() = %#v, want a map", multi.Details())
	}
	if fields, ok := details["fields"].([]FieldError); !ok || len(fields) != 2 {
		t.Errorf("Details()[fields] = %#v, want two entries", details["fields"])
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	t.Parallel()

	err := Validate(42)
	if err == nil {
		t.Fatal("Validate(42) = nil, want error")
	}
	var verrs Errors
	if errors.As(err, &verrs) {
		t.Errorf("Validate(42) returned field errors %v, want a usage error", verrs)
	}
}

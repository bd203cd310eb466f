// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule, reported under the name the client used.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors is every rule a request broke, in struct field order.
type Errors []FieldError

func (e Errors) Error() string {
	return e.Message()
}

// Message joins the field messages into one line for the error envelope.
func (e Errors) Message() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Details is the envelope's error.details payload: the single failure, or
// all of them under "fields".
func (e Errors) Details() interface{} {
	if len(e) == 1 {
		return e[0]
	}
	return map[string]interface{}{"fields": []FieldError(e)}
}

var instance = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	return v
})

// Validate checks req's validate tags. It returns nil, an Errors value, or
// a wrapped error when req is not a struct pointer.
func Validate(req interface{}) error {
	err := instance().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("cannot validate %T: %w", req, err)
	}

	out := make(Errors, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		}
	}
	return out
}

// fieldName reports fields by their json or query tag.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// fieldMessages holds wording for the request fields of the restaurant API,
// keyed by "field.rule". %s is the rule parameter.
var fieldMessages = map[string]string{
	"categoryId.min":    "categoryId must be a category id, or 0 for all categories",
	"page.min":          "page must be %s or greater",
	"limit.min":         "limit must be at least %s",
	"limit.max":         "limit must be at most %s restaurants",
	"email.required":    "email is required to sign in",
	"password.required": "password is required to sign in",
	"password.max":      "password must be at most %s characters",
}

func message(fe validator.FieldError) string {
	if tmpl, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		if strings.Contains(tmpl, "%s") {
			return fmt.Sprintf(tmpl, fe.Param())
		}
		return tmpl
	}

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}

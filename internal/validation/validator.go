// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package validation wraps go-playground/validator with a shared instance,
// the custom tags used by API request types, and translation of field
// errors into the VALIDATION_ERROR envelope.
//
// Field names in messages come from the json tag, so a failure on
//
//	ChannelID string `json:"channelId" validate:"required,channelid"`
//
// reads "channelId must contain only letters, digits, '.', '_' or '-'".
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var channelIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// FieldError describes one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// RequestValidationError collects every failed rule for a request.
type RequestValidationError struct {
	Fields []FieldError
}

// Error joins the per-field messages.
func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// Details returns the error detail payload for API responses.
func (ve *RequestValidationError) Details() map[string]interface{} {
	if len(ve.Fields) == 1 {
		f := ve.Fields[0]
		return map[string]interface{}{"field": f.Field, "tag": f.Tag}
	}
	return map[string]interface{}{"fields": ve.Fields}
}

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)

		// Registration only fails on empty tags or nil funcs.
		_ = v.RegisterValidation("channelid", func(fl validator.FieldLevel) bool {
			return channelIDPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("iana_tz", func(fl validator.FieldLevel) bool {
			_, err := time.LoadLocation(fl.Field().String())
			return err == nil
		})

		validate = v
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// ValidateStruct validates s and returns nil or a *RequestValidationError.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Fields: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	out := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe),
		}
	}
	return &RequestValidationError{Fields: out}
}

var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	"channelid": "%s must contain only letters, digits, '.', '_' or '-'",
	"iana_tz":   "%s must be a valid IANA time zone",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	if tmpl, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := errorMessageWithParam[fe.Tag()]; ok {
		msg := fmt.Sprintf(tmpl, field, fe.Param())
		if fe.Kind() == reflect.String && (fe.Tag() == "min" || fe.Tag() == "max") {
			msg += " characters"
		}
		return msg
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

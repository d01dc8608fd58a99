// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/moodplay/internal/catalog"
)

// CodeValidationError is the API error code for every validation failure.
const CodeValidationError = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is a single field failure.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the json name of the failing field.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Param returns the tag parameter, e.g. "20" for "max=20".
func (e *ValidationError) Param() string {
	return e.param
}

// Value returns the rejected value.
func (e *ValidationError) Value() interface{} {
	return e.value
}

func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError collects the field failures of one request.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual failures.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// APIError mirrors models.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the failures into a VALIDATION_ERROR payload. A single
// failure carries field, tag and value details; several failures are listed
// under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	if len(ve.errors) == 0 {
		return &APIError{Code: CodeValidationError, Message: "Validation failed"}
	}

	if len(ve.errors) == 1 {
		err := ve.errors[0]
		return &APIError{
			Code:    CodeValidationError,
			Message: err.message,
			Details: map[string]interface{}{
				"field": err.field,
				"tag":   err.tag,
				"value": err.value,
			},
		}
	}

	fields := make([]map[string]interface{}, len(ve.errors))
	messages := make([]string, 0, len(ve.errors))
	for i, err := range ve.errors {
		fields[i] = map[string]interface{}{
			"field":   err.field,
			"tag":     err.tag,
			"message": err.message,
		}
		messages = append(messages, err.message)
	}
	return &APIError{
		Code:    CodeValidationError,
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// Merge appends the failures of other. Either side may be nil; the result
// is nil only when both are.
func (ve *RequestValidationError) Merge(other *RequestValidationError) *RequestValidationError {
	switch {
	case other == nil:
		return ve
	case ve == nil:
		return other
	}
	merged := make([]ValidationError, 0, len(ve.errors)+len(other.errors))
	merged = append(merged, ve.errors...)
	merged = append(merged, other.errors...)
	return &RequestValidationError{errors: merged}
}

// GetValidator returns the shared validator, registering the custom tags on
// first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation("catalog_domain", validateCatalogDomain)
		_ = validate.RegisterValidation("item_id", validateItemID)
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
	}
	return name
}

func validateCatalogDomain(fl validator.FieldLevel) bool {
	_, ok := catalog.ParseDomain(fl.Field().String())
	return ok
}

func validateItemID(fl validator.FieldLevel) bool {
	prefix, id, found := strings.Cut(fl.Field().String(), "_")
	if !found || id == "" {
		return false
	}
	_, ok := catalog.ParseDomain(prefix)
	return ok
}

// ValidateStruct validates s and returns nil or the collected failures.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fe := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: translateError(fe),
		}
	}
	return &RequestValidationError{errors: fieldErrors}
}

// OneOf checks value against a set of allowed values known only at runtime.
// It returns nil when value is allowed.
func OneOf[T comparable](field string, value T, allowed []T) *RequestValidationError {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return fieldError(field, "oneof", joinValues(allowed), value,
		fmt.Sprintf("%s must be one of: %s", field, joinValues(allowed)))
}

// EachOneOf checks every element of values with OneOf. The field name of a
// failure is field[i].
func EachOneOf[T comparable](field string, values, allowed []T) *RequestValidationError {
	var out *RequestValidationError
	for i, v := range values {
		out = out.Merge(OneOf(fmt.Sprintf("%s[%d]", field, i), v, allowed))
	}
	return out
}

// Between checks lo <= value <= hi for bounds known only at runtime.
func Between(field string, value, lo, hi int) *RequestValidationError {
	if value >= lo && value <= hi {
		return nil
	}
	return fieldError(field, "between", fmt.Sprintf("%d %d", lo, hi), value,
		fmt.Sprintf("%s must be between %d and %d", field, lo, hi))
}

// Integer parses raw as a base 10 integer, reporting a failure for field.
func Integer(field, raw string) (int, *RequestValidationError) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fieldError(field, "integer", "", raw, field+" must be an integer")
	}
	return n, nil
}

// Required reports a missing value for field.
func Required(field string) *RequestValidationError {
	return fieldError(field, "required", "", nil, field+" is required")
}

func fieldError(field, tag, param string, value interface{}, message string) *RequestValidationError {
	return &RequestValidationError{errors: []ValidationError{{
		field:   field,
		tag:     tag,
		param:   param,
		value:   value,
		message: message,
	}}}
}

func joinValues[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

var errorMessageTemplates = map[string]string{
	"required":       "%s is required",
	"catalog_domain": "%s must be one of: workout recipe course",
	"item_id":        "%s must look like {domain}_{id}",
	"uuid":           "%s must be a valid UUID",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}
	return translateMinMax(fe, field, tag, param)
}

// translateMinMax words min/max by kind: characters for strings, items for
// slices, plain numbers otherwise.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	unit := ""
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch tag {
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

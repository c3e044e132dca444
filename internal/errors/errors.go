// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeEmptyUnitName indicates a unit registered without a name
	TypeEmptyUnitName Type = "EMPTY_UNIT_NAME"

	// TypeEmptyAlias indicates a unit registered with an empty alias
	TypeEmptyAlias Type = "EMPTY_ALIAS"

	// TypeDuplicateUnit indicates a canonical name registered twice
	TypeDuplicateUnit Type = "DUPLICATE_UNIT"

	// TypeDuplicateAlias indicates an alias already taken by a unit
	TypeDuplicateAlias Type = "DUPLICATE_ALIAS"

	// TypeUnitNotFound indicates a token that resolves to no unit
	TypeUnitNotFound Type = "UNIT_NOT_FOUND"

	// TypeConversionRateZero indicates a non-invertible zero scale
	TypeConversionRateZero Type = "CONVERSION_RATE_ZERO"

	// TypeConversionRateBothValues indicates an edge mixing scale and offset
	TypeConversionRateBothValues Type = "CONVERSION_RATE_BOTH_VALUES"

	// TypeConversionPathNotFound indicates disconnected units
	TypeConversionPathNotFound Type = "CONVERSION_PATH_NOT_FOUND"

	// TypeMissingConversionFactor indicates a search edge absent from the edge table
	TypeMissingConversionFactor Type = "MISSING_CONVERSION_FACTOR"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"
)

// Sentinels for errors.Is matching. Only the Type is compared.
var (
	ErrEmptyUnitName            = New(TypeEmptyUnitName, "unit name cannot be empty")
	ErrEmptyAlias               = New(TypeEmptyAlias, "unit alias cannot be empty")
	ErrDuplicateUnit            = New(TypeDuplicateUnit, "unit already exists")
	ErrDuplicateAlias           = New(TypeDuplicateAlias, "alias already exists")
	ErrUnitNotFound             = New(TypeUnitNotFound, "unit not found")
	ErrConversionRateZero       = New(TypeConversionRateZero, "conversion rate cannot be 0")
	ErrConversionRateBothValues = New(TypeConversionRateBothValues, "conversion rule mixes scale and offset")
	ErrConversionPathNotFound   = New(TypeConversionPathNotFound, "no conversion path found")
	ErrMissingConversionFactor  = New(TypeMissingConversionFactor, "conversion factor missing in the graph")
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Type == t {
			return true
		}
		err = e.Cause
	}
	return false
}

// TypeOf returns the type of the outermost *Error in the chain
func TypeOf(err error) (Type, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type, true
	}
	return "", false
}

// EmptyUnitName creates an empty unit name error
func EmptyUnitName() *Error {
	return New(TypeEmptyUnitName, "unit name cannot be empty")
}

// EmptyAlias creates an empty alias error
func EmptyAlias(unit string) *Error {
	return New(TypeEmptyAlias, "unit alias cannot be empty").WithContext("unit", unit)
}

// DuplicateUnit creates a duplicate unit error
func DuplicateUnit(name string) *Error {
	return Newf(TypeDuplicateUnit, "unit %s already exists", name).WithContext("unit", name)
}

// DuplicateAlias creates a duplicate alias error
func DuplicateAlias(alias string) *Error {
	return Newf(TypeDuplicateAlias, "alias %s already exists", alias).WithContext("alias", alias)
}

// UnitNotFound creates a unit not found error
func UnitNotFound(token string) *Error {
	return Newf(TypeUnitNotFound, "cannot find unit %s", token).WithContext("unit", token)
}

// ConversionRateZero creates a zero rate error
func ConversionRateZero() *Error {
	return New(TypeConversionRateZero, "conversion rate cannot be 0")
}

// ConversionRateBothValues creates a mixed scale and offset error
func ConversionRateBothValues(scale, offset float64) *Error {
	return New(TypeConversionRateBothValues,
		"one of the conversion rates must be unchanged (1 for scale, 0 for offset)").
		WithContext("scale", scale).
		WithContext("offset", offset)
}

// ConversionPathNotFound creates a path not found error
func ConversionPathNotFound(from, to string) *Error {
	return Newf(TypeConversionPathNotFound, "no conversion path found from '%s' to '%s'", from, to).
		WithContext("from", from).
		WithContext("to", to)
}

// MissingConversionFactor creates a missing factor error
func MissingConversionFactor(from, to string) *Error {
	return New(TypeMissingConversionFactor, "conversion factor missing in the graph").
		WithContext("from", from).
		WithContext("to", to)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

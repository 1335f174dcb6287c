package sdlrpc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrShape is returned when a value does not match the declared kind of
	// its key, including enums from the wrong catalog and structs built from
	// a different descriptor.
	ErrShape = errors.New("value does not match declared kind")

	// ErrUnknownKey is returned when a key is not part of the descriptor. It
	// signals a declaration bug rather than bad data.
	ErrUnknownKey = errors.New("key is not declared")

	// ErrEnvelopeMismatch is returned when decoded bytes belong to a
	// different function or message type than the decoding message.
	ErrEnvelopeMismatch = errors.New("envelope mismatch")

	// ErrMissingMandatory is reported by Validate for each absent mandatory
	// key.
	ErrMissingMandatory = errors.New("mandatory parameter missing")

	// ErrUnknownEnum is returned for unrecognized enum wire values when the
	// codec uses EnumReject.
	ErrUnknownEnum = errors.New("unrecognized enum value")

	// ErrUnknownCatalog is returned when a field refers to a catalog the
	// codec was not given.
	ErrUnknownCatalog = errors.New("unknown enum catalog")

	// ErrDescriptorInvalid is raised while building malformed descriptors.
	ErrDescriptorInvalid = errors.New("descriptor is invalid")

	// ErrFormat is returned for unknown wire format names.
	ErrFormat = errors.New("unknown format")

	// ErrSchema is reported for wire parameters that fail JSON Schema
	// validation.
	ErrSchema = errors.New("parameters do not match schema")

	// ErrPatch is returned when a patch cannot be decoded or applied.
	ErrPatch = errors.New("unable to apply patch")
)

// ErrorDetailer returns error details for reports & debugging.
type ErrorDetailer interface {
	ErrorDetail() *ErrorDetail
}

// ErrorDetail provides details about a specific error.
type ErrorDetail struct {
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Value    any    `json:"value,omitempty" yaml:"value,omitempty"`

	err error
}

// NewErrorDetail creates a detail that unwraps to err.
func NewErrorDetail(err error, location string, value any, msg string) *ErrorDetail {
	return &ErrorDetail{Message: msg, Location: location, Value: value, err: err}
}

// Error returns the error message / satisfies the `error` interface.
func (e *ErrorDetail) Error() string {
	if e.Location == "" && e.Value == nil {
		return e.Message
	}
	if e.Value == nil {
		return fmt.Sprintf("%s (%s)", e.Message, e.Location)
	}
	return fmt.Sprintf("%s (%s: %v)", e.Message, e.Location, e.Value)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *ErrorDetail) Unwrap() error {
	return e.err
}

// ErrorDetail satisfies the `ErrorDetailer` interface.
func (e *ErrorDetail) ErrorDetail() *ErrorDetail {
	return e
}

// ErrorModel aggregates several details, e.g. every missing mandatory key
// found by one Validate call.
type ErrorModel struct {
	Title  string         `json:"title,omitempty" yaml:"title,omitempty"`
	Detail string         `json:"detail,omitempty" yaml:"detail,omitempty"`
	Errors []*ErrorDetail `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func (e *ErrorModel) Error() string {
	if len(e.Errors) == 0 {
		return e.Detail
	}
	parts := make([]string, len(e.Errors))
	for i, d := range e.Errors {
		parts[i] = d.Error()
	}
	return e.Detail + ": " + strings.Join(parts, "; ")
}

// Add appends err, keeping its details if it has any.
func (e *ErrorModel) Add(err error) {
	if converted, ok := err.(ErrorDetailer); ok {
		e.Errors = append(e.Errors, converted.ErrorDetail())
		return
	}

	e.Errors = append(e.Errors, &ErrorDetail{Message: err.Error(), err: err})
}

// Unwrap returns every detail so errors.Is matches any contained sentinel.
func (e *ErrorModel) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, d := range e.Errors {
		errs[i] = d
	}
	return errs
}

// OrNil returns nil when no details were added.
func (e *ErrorModel) OrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

func joinLocation(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Package toolerr defines the failure taxonomy shared by every toolbox operation.
//
// Operations never let these errors escape as Go errors to the caller; the
// report package turns them into single-line "Error ..." reports.
package toolerr

import (
	"fmt"
	"strings"
)

// FetchError reports a network failure, timeout, or non-2xx response.
type FetchError struct {
	URL    string
	Status int    // 0 when no response was received
	Reason string // status text when Status != 0
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		reason := e.Reason
		if reason == "" {
			reason = fmt.Sprintf("%d", e.Status)
		}
		return fmt.Sprintf("fetch %s: status %s", e.URL, reason)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports malformed JSON or markup beyond recovery.
type ParseError struct {
	Subject string // "JSON", "markup"
	Detail  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid %s - %s", e.Subject, e.Detail)
}

// UnsupportedFormatError reports an unknown enum value for an algorithm,
// operation, format, or analysis type.
type UnsupportedFormatError struct {
	Field   string // "operation", "algorithm", "source format", ...
	Value   string
	Allowed []string
	Unknown bool // phrase as "Unknown <field>" rather than "Unsupported <field>"
}

func (e *UnsupportedFormatError) Error() string {
	verb := "Unsupported"
	if e.Unknown {
		verb = "Unknown"
	}
	msg := fmt.Sprintf("%s %s '%s'", verb, e.Field, e.Value)
	if len(e.Allowed) > 0 {
		msg += ". Available: " + strings.Join(e.Allowed, ", ")
	}
	return msg
}

// FormatError reports a data shape mismatch.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

// DecodeError reports invalid encoded input.
type DecodeError struct {
	Encoding string // "Base64", "URL"
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Invalid %s data - %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MissingParamError reports an absent or empty required parameter.
type MissingParamError struct {
	Name string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("%s parameter required", e.Name)
}

// ResponseError reports an upstream API answer that lacks the expected data.
type ResponseError struct {
	Source string // "weather service", "IP lookup", ...
	Msg    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

// Unsupported is a shorthand constructor for UnsupportedFormatError.
func Unsupported(field, value string, allowed ...string) error {
	return &UnsupportedFormatError{Field: field, Value: value, Allowed: allowed}
}

// Unknown builds an UnsupportedFormatError for unrecognised operation names.
func Unknown(field, value string, allowed ...string) error {
	return &UnsupportedFormatError{Field: field, Value: value, Allowed: allowed, Unknown: true}
}

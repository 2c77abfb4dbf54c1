// Package report builds the text reports returned by every toolbox operation.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

// RuleWidth is the width of the separator printed under report headings.
const RuleWidth = 50

// Rule returns the heading separator line.
func Rule() string {
	return strings.Repeat("=", RuleWidth)
}

// Report is an ordered sequence of display lines.
type Report struct {
	lines []string
}

// New starts a report with a heading followed by a rule.
func New(heading string) *Report {
	return &Report{lines: []string{heading, Rule()}}
}

// Plain starts a report without a heading.
func Plain() *Report {
	return &Report{}
}

// Linef appends a formatted line.
func (r *Report) Linef(format string, args ...any) *Report {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
	return r
}

// Add appends lines verbatim.
func (r *Report) Add(lines ...string) *Report {
	r.lines = append(r.lines, lines...)
	return r
}

// Blank appends an empty line.
func (r *Report) Blank() *Report {
	r.lines = append(r.lines, "")
	return r
}

// Lines returns a copy of the report lines.
func (r *Report) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// String joins the lines with newlines.
func (r *Report) String() string {
	return strings.Join(r.lines, "\n")
}

// Failure renders err as a single-line error report.
//
// Input problems (unsupported values, shape mismatches, invalid JSON or
// encodings, missing parameters) render as "Error: <cause>"; everything else
// names the failing action: "Error extracting text: <cause>".
func Failure(action string, err error) string {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	if IsInputError(err) {
		return "Error: " + msg
	}
	return fmt.Sprintf("Error %s: %s", action, msg)
}

// IsInputError reports whether err was caused by the caller's input rather
// than by the environment.
func IsInputError(err error) bool {
	var (
		parseErr       *toolerr.ParseError
		unsupportedErr *toolerr.UnsupportedFormatError
		formatErr      *toolerr.FormatError
		decodeErr      *toolerr.DecodeError
		missingErr     *toolerr.MissingParamError
	)
	return errors.As(err, &parseErr) ||
		errors.As(err, &unsupportedErr) ||
		errors.As(err, &formatErr) ||
		errors.As(err, &decodeErr) ||
		errors.As(err, &missingErr)
}

// ErrorKind classifies err for metrics labels.
func ErrorKind(err error) string {
	var (
		fetchErr       *toolerr.FetchError
		parseErr       *toolerr.ParseError
		unsupportedErr *toolerr.UnsupportedFormatError
		formatErr      *toolerr.FormatError
		decodeErr      *toolerr.DecodeError
		missingErr     *toolerr.MissingParamError
		responseErr    *toolerr.ResponseError
	)
	switch {
	case errors.As(err, &fetchErr):
		return "fetch"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &unsupportedErr):
		return "unsupported_format"
	case errors.As(err, &formatErr):
		return "format"
	case errors.As(err, &decodeErr):
		return "decode"
	case errors.As(err, &missingErr):
		return "missing_param"
	case errors.As(err, &responseErr):
		return "response"
	default:
		return "internal"
	}
}

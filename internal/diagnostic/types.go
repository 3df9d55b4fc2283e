package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"valuecast/bind"
	"valuecast/internal/common"
)

// Diagnostics collects the outcomes of one or more bind attempts.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single report item.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is the failure code tag, empty for non-binding reports.
	Code string
	// Message is the human-readable description.
	Message string
	// Destination names the destination type this relates to (if any).
	Destination string
	// Path locates the item inside nested members and elements (if any).
	Path string
	// Suggestions are near-miss member names or other potential fixes.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddBindError records a binding failure, lifting the code, path and
// suggestions out of a *bind.Error when the error is one.
func (d *Diagnostics) AddBindError(destination string, err error) {
	var be *bind.Error
	if !errors.As(err, &be) {
		d.AddError("", err.Error(), destination, "")
		return
	}

	d.Errors = append(d.Errors, Diagnostic{
		Severity:    Error,
		Code:        be.Code.String(),
		Message:     be.Message(),
		Destination: destination,
		Path:        strings.Join(be.Path, "."),
		Suggestions: be.Suggestions,
	})
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, destination, path string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    Error,
		Code:        code,
		Message:     message,
		Destination: destination,
		Path:        path,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, destination, path string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    Warning,
		Code:        code,
		Message:     message,
		Destination: destination,
		Path:        path,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, destination, path string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:    Info,
		Code:        code,
		Message:     message,
		Destination: destination,
		Path:        path,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Destination != "" {
		prefix = append(prefix, "["+d.Destination+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

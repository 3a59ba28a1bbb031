package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Codes of the findings reported by the analyzer and the generator.
const (
	CodeDuplicateName     = "duplicate_name"
	CodeNearDuplicate     = "near_duplicate"
	CodeUnsupportedType   = "unsupported_type"
	CodeMultiNameSpec     = "multi_name_spec"
	CodeBlankVariable     = "blank_variable"
	CodeMisplaced         = "misplaced_directive"
	CodeMultipleDirective = "multiple_directives"
	CodeEmptyDirective    = "empty_directive"
	CodeExcluded          = "excluded"
	CodeNoBindings        = "no_bindings"
)

// Diagnostics holds everything reported for one package.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding, one of the Code constants.
	Code    string
	Message string
	// Package is the import path the finding belongs to.
	Package string
	// Variable names the variable or struct field involved, if any.
	Variable string
	// Pos is the source position, zero when unknown.
	Pos token.Position
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func (d *Diagnostics) add(sev Severity, code, message, pkg, variable string, pos token.Position) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Package:  pkg,
		Variable: variable,
		Pos:      pos,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, pkg, variable string, pos token.Position) {
	d.add(SeverityError, code, message, pkg, variable, pos)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, pkg, variable string, pos token.Position) {
	d.add(SeverityWarning, code, message, pkg, variable, pos)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, pkg, variable string, pos token.Position) {
	d.add(SeverityInfo, code, message, pkg, variable, pos)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends other's findings to d.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats the finding as "pos: [pkg] variable: [code] message".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos.IsValid() {
		prefix = append(prefix, d.Pos.String()+":")
	}

	if d.Package != "" {
		prefix = append(prefix, "["+d.Package+"]")
	}

	if d.Variable != "" {
		prefix = append(prefix, d.Variable)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

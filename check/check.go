// Copyright © 2025 The pyvet authors

// Package check implements the rule-evaluation core of pyvet.
//
// The checker is modeled after go vet: each rule is an independent check
// that examines a parsed file and reports diagnostics. What sets it apart
// is the two-phase evaluation protocol. A rule may carry an immediate
// predicate, invoked on each statement node during a single traversal, and
// a deferred predicate, invoked once per resolved binding after the whole
// file has been resolved. Syntactic facts (statement kinds, literal module
// spellings) are available immediately; qualified origin paths only exist
// once binding resolution completes, so checks that need them run deferred.
//
// Predicates are pure functions of their inputs. They never fail: malformed
// or partially resolved input is treated as "no match", never as an error,
// so one odd statement cannot abort analysis of a file.
package check

import (
	"encoding/json"
	"fmt"

	"github.com/tjkuson/pyvet/semantic"
	"github.com/tjkuson/pyvet/syntax"
)

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	severityUnset Severity = iota // unexported zero sentinel for default detection
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as a JSON string.
// An unset severity (zero value) is marshaled as "warning".
func (s Severity) MarshalJSON() ([]byte, error) {
	if s == severityUnset {
		return json.Marshal("warning")
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes a severity from a JSON string.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity: %q", str)
	}
	return nil
}

// Status records whether a rule has a working implementation.
type Status int

const (
	// StatusStable rules are dispatched normally.
	StatusStable Status = iota

	// StatusStub rules are registered by identifier only. They appear in
	// rule listings but are never invoked, so reserving an identifier for
	// an unimplemented check cannot affect analysis.
	StatusStub
)

func (s Status) String() string {
	switch s {
	case StatusStable:
		return "stable"
	case StatusStub:
		return "stub"
	default:
		return "unknown"
	}
}

// Rule defines a single check.
//
// A rule registers under one identifier and may supply a predicate for
// either or both evaluation phases. Immediate and deferred predicates of
// the same rule cooperate: when both fire on the same statement, the
// deferred result supersedes the immediate one (see Pass.Supersede), so a
// statement never carries two diagnostics from one rule.
type Rule struct {
	// Name is a short identifier for this check (e.g. "while-loop").
	Name string

	// Doc is a human-readable description. The first line is a short summary.
	Doc string

	// Severity is the default severity for diagnostics from this rule.
	Severity Severity

	// Status marks unimplemented rules. Stub rules are never dispatched.
	Status Status

	// Node is the immediate-phase predicate, invoked on every statement
	// during traversal. It should call pass.Report for each finding.
	// Nil when the rule has no immediate phase.
	Node func(pass *Pass, node *syntax.Node)

	// Binding is the deferred-phase predicate, invoked on every resolved
	// binding after traversal completes. Nil when the rule has no deferred
	// phase.
	Binding func(pass *Pass, binding *semantic.Binding)
}

// Config carries per-rule settings. A Config is built once before a run and
// only read by predicates.
type Config struct {
	// BannedFrom lists module names whose members must not be imported
	// directly. Deferred prefix matching tries entries in this order and
	// stops at the first match.
	BannedFrom []string

	// Disabled lists rule names excluded from the run. Checked once by the
	// checker before dispatch, never inside predicates.
	Disabled []string
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	// Pos is the source location of the problem.
	Pos Position `json:"pos"`

	// End is the end of the problem's source span, when known.
	End Position `json:"end,omitempty"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`

	// Rule is the name of the check that found this problem.
	Rule string `json:"rule"`

	// Severity is the severity level of the diagnostic.
	Severity Severity `json:"severity"`

	// Notes are optional hint text lines for the user.
	Notes []string `json:"notes,omitempty"`
}

// Position identifies a location in source code.
type Position struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col,omitempty"`
}

// String returns the position in file:line format.
func (p Position) String() string {
	if p.Line == 0 {
		return p.File
	}
	if p.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// String returns the diagnostic in go vet style: file:line: message (rule)
// with optional note lines appended.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s: %s (%s)", d.Pos, d.Message, d.Rule)
	for _, n := range d.Notes {
		s += "\n  = note: " + n
	}
	return s
}

// Pass provides context to running predicates and collects their findings
// for one file. Both phases of a run share a single pass, so diagnostics
// keep their insertion order across phases.
type Pass struct {
	// File is the source file being analyzed.
	File *syntax.File

	// Config holds the per-rule settings for this run.
	Config *Config

	// rule is the check currently being dispatched.
	rule *Rule

	diagnostics []Diagnostic
}

// Report records a diagnostic finding.
func (p *Pass) Report(d Diagnostic) {
	p.diagnostics = append(p.diagnostics, p.fill(d))
}

// ReportWithNotes records a diagnostic with additional hint text.
func (p *Pass) ReportWithNotes(d Diagnostic, notes ...string) {
	d.Notes = append(d.Notes, notes...)
	p.Report(d)
}

// Reportf is a convenience for reporting a diagnostic at a source range.
func (p *Pass) Reportf(at syntax.Range, format string, args ...interface{}) {
	p.Report(p.diagnosticAt(at, format, args...))
}

// Supersede records a diagnostic, replacing an earlier diagnostic from the
// same rule at the same position if one exists. Deferred predicates whose
// immediate-phase counterpart may already have fired on the statement use
// this instead of Report; replacement happens in place so the diagnostic
// keeps the position it was first inserted at.
func (p *Pass) Supersede(at syntax.Range, format string, args ...interface{}) {
	d := p.diagnosticAt(at, format, args...)
	for i := range p.diagnostics {
		if p.diagnostics[i].Rule == d.Rule && p.diagnostics[i].Pos == d.Pos {
			p.diagnostics[i] = d
			return
		}
	}
	p.diagnostics = append(p.diagnostics, d)
}

func (p *Pass) diagnosticAt(at syntax.Range, format string, args ...interface{}) Diagnostic {
	d := Diagnostic{Message: fmt.Sprintf(format, args...)}
	if at.IsValid() {
		d.Pos = Position{Line: at.Start.Line, Col: at.Start.Col}
		d.End = Position{Line: at.End.Line, Col: at.End.Col}
	}
	return p.fill(d)
}

func (p *Pass) fill(d Diagnostic) Diagnostic {
	d.Rule = p.rule.Name
	if d.Severity == severityUnset {
		d.Severity = p.rule.Severity
	}
	if d.Pos.File == "" && p.File != nil {
		d.Pos.File = p.File.Name
		if d.End.Line > 0 {
			d.End.File = p.File.Name
		}
	}
	return d
}

// Copyright © 2025 The pyvet authors

package check

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tjkuson/pyvet/semantic"
	"github.com/tjkuson/pyvet/syntax"
)

// Checker runs a set of rules over parsed files.
type Checker struct {
	Rules  []*Rule
	Config *Config
}

// NewChecker returns a checker running the default rules with the given
// configuration. A nil config behaves like the zero Config.
func NewChecker(cfg *Config) *Checker {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Checker{Rules: DefaultRules(), Config: cfg}
}

// File analyzes a single parsed file against its binding table and returns
// all diagnostics in insertion order.
//
// The immediate phase runs every node predicate during one depth-first
// traversal of the statement tree. Only after traversal completes does the
// deferred phase run every binding predicate over the resolved bindings.
// Diagnostic order is the order predicates reported them, never re-sorted
// by position, so callers can rely on a stable order across runs.
//
// semantics may be nil when no binding table is available; deferred
// predicates are then skipped.
func (c *Checker) File(file *syntax.File, semantics *semantic.Result) ([]Diagnostic, error) {
	if err := validateRules(c.Rules); err != nil {
		return nil, fmt.Errorf("%s: %w", file.Name, err)
	}

	cfg := c.Config
	if cfg == nil {
		cfg = &Config{}
	}

	// Enabled/disabled is decided once, before dispatch.
	var nodeRules, bindingRules []*Rule
	disabled := make(map[string]bool, len(cfg.Disabled))
	for _, name := range cfg.Disabled {
		disabled[name] = true
	}
	for _, r := range c.Rules {
		if r.Status != StatusStable || disabled[r.Name] {
			continue
		}
		if r.Node != nil {
			nodeRules = append(nodeRules, r)
		}
		if r.Binding != nil {
			bindingRules = append(bindingRules, r)
		}
	}

	pass := &Pass{File: file, Config: cfg}

	// Immediate phase: one traversal, every node predicate per statement.
	syntax.Walk(file.Stmts, func(node *syntax.Node, _ *syntax.Node, _ int) {
		for _, r := range nodeRules {
			pass.rule = r
			r.Node(pass, node)
		}
	})

	// Deferred phase: bindings are only complete once traversal finished.
	if semantics != nil {
		for _, b := range semantics.Bindings {
			for _, r := range bindingRules {
				pass.rule = r
				r.Binding(pass, b)
			}
		}
	}

	return filterSuppressed(pass.diagnostics, file.NoQA), nil
}

// filterSuppressed removes diagnostics on lines with noqa directives.
func filterSuppressed(diags []Diagnostic, noqa []syntax.NoQA) []Diagnostic {
	if len(noqa) == 0 {
		return diags
	}
	lines := make(map[int][]string, len(noqa))
	for _, n := range noqa {
		// A directive with no rule list suppresses everything on the line.
		if len(n.Rules) == 0 {
			lines[n.Line] = nil
			continue
		}
		if existing, ok := lines[n.Line]; !ok || existing != nil {
			lines[n.Line] = append(existing, n.Rules...)
		}
	}

	var filtered []Diagnostic
	for _, d := range diags {
		rules, ok := lines[d.Pos.Line]
		if !ok {
			filtered = append(filtered, d)
			continue
		}
		if rules == nil {
			continue
		}
		suppressed := false
		for _, name := range rules {
			if strings.TrimSpace(name) == d.Rule {
				suppressed = true
				break
			}
		}
		if !suppressed {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// FormatText writes diagnostics in go vet text format.
func FormatText(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String()) //nolint:errcheck // best-effort output to writer
	}
}

// FormatJSON writes diagnostics as JSON.
func FormatJSON(w io.Writer, diags []Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}

// Copyright © 2025 The pyvet authors

package check

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultRules returns the built-in set of checks in registration order.
// The order is stable: it determines immediate-phase dispatch order on each
// statement and therefore the insertion order of diagnostics.
func DefaultRules() []*Rule {
	return []*Rule{
		RuleWhileLoop,
		RuleBannedImportFrom,
		RulePrivateImport,
		RuleDocstringArgOrder,
	}
}

// RuleNames returns a sorted list of all default rule names.
func RuleNames() []string {
	rules := DefaultRules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	sort.Strings(names)
	return names
}

// RuleDoc returns a formatted documentation string for all rules.
func RuleDoc() string {
	var b strings.Builder
	for _, r := range DefaultRules() {
		fmt.Fprintf(&b, "  %s", r.Name)
		if r.Status == StatusStub {
			b.WriteString(" (stub)")
		}
		b.WriteString("\n")
		lines := strings.Split(r.Doc, "\n")
		fmt.Fprintf(&b, "    %s\n\n", lines[0])
	}
	return b.String()
}

// validateRules checks registry invariants: every rule has a name, no two
// rules share one, and stub rules carry no predicates that could be
// dispatched by mistake.
func validateRules(rules []*Rule) error {
	seen := make(map[string]bool)
	for _, r := range rules {
		if r.Name == "" {
			return fmt.Errorf("rule with empty name")
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate rule name: %s", r.Name)
		}
		seen[r.Name] = true
		if r.Status == StatusStub && (r.Node != nil || r.Binding != nil) {
			return fmt.Errorf("stub rule %s has a predicate", r.Name)
		}
	}
	return nil
}

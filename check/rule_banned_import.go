// Copyright © 2025 The pyvet authors

package check

import (
	"strings"

	"github.com/tjkuson/pyvet/semantic"
	"github.com/tjkuson/pyvet/syntax"
)

// RuleBannedImportFrom flags member imports from modules the configuration
// says should be imported whole (from pandas import Series, when the
// convention is import pandas as pd).
//
// The rule runs in both phases. The immediate predicate matches the module
// name exactly as spelled in the source, which is cheap and catches the
// common case during traversal. The deferred predicate matches configured
// entries as segment-aligned prefixes of the binding's resolved qualified
// path, which catches origins that only resolution reveals (re-exports,
// relative imports). When both fire on one statement the deferred result
// supersedes the immediate one, keeping its insertion position, so a
// statement carries at most one diagnostic from this rule. The deferred
// message names the full qualified path.
var RuleBannedImportFrom = &Rule{
	Name:     "banned-import-from",
	Doc:      "Flag member imports from modules configured as import-whole.\n\nSome modules are conventionally imported whole and aliased (import pandas as pd) rather than having members imported directly (from pandas import Series). Configure the banned-from list to enforce the convention.",
	Severity: SeverityWarning,
	Node:     bannedImportFromNode,
	Binding:  bannedImportFromBinding,
}

// bannedImportFromNode matches the literal module spelling against the
// banned list. Exact match only: prefix matching belongs to the deferred
// phase, where the resolved path is known.
func bannedImportFromNode(pass *Pass, node *syntax.Node) {
	if node.Kind != syntax.KindImportFrom || node.Module == "" {
		return
	}
	for _, banned := range pass.Config.BannedFrom {
		if node.Module == banned {
			pass.Reportf(node.Range, "members of `%s` should not be imported explicitly", node.Module)
			return
		}
	}
}

// bannedImportFromBinding matches banned entries against the binding's
// qualified origin path. The first matching entry wins; a binding never
// yields more than one diagnostic even when several entries match.
func bannedImportFromBinding(pass *Pass, binding *semantic.Binding) {
	if binding.Kind != semantic.BindFromImport || binding.Stmt == nil {
		return
	}
	qualified := binding.QualifiedName()
	if qualified == "" {
		return
	}
	for _, banned := range pass.Config.BannedFrom {
		if !hasSegmentPrefix(qualified, banned) {
			continue
		}
		// Anchor at the introducing statement, not the binding's own token.
		pass.Supersede(binding.Stmt.Range, "members of `%s` should not be imported explicitly", qualified)
		return
	}
}

// hasSegmentPrefix reports whether prefix matches leading path segments of
// qualified. The match must end at a separator or at the end of the string:
// "pandas" matches "pandas.core" but not "pandasql".
func hasSegmentPrefix(qualified, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(qualified, prefix) {
		return false
	}
	return len(qualified) == len(prefix) || qualified[len(prefix)] == '.'
}

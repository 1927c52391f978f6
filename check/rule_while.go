// Copyright © 2025 The pyvet authors

package check

import "github.com/tjkuson/pyvet/syntax"

// RuleWhileLoop flags every `while` loop. Loops intended to run forever
// (event loops, listeners) are the usual false positives; the rule exists
// for codebases that prefer `for` loops and suppress the exceptions.
var RuleWhileLoop = &Rule{
	Name:     "while-loop",
	Doc:      "Flag `while` loops.\n\n`while` loops are prone to infinite-loop mistakes and can usually be rewritten as `for` loops over a range or an iterator. Suppress with a noqa directive for loops that are intended to run indefinitely.",
	Severity: SeverityWarning,
	Node: func(pass *Pass, node *syntax.Node) {
		if node.Kind != syntax.KindWhile {
			return
		}
		// Anchor at the loop header, not the full body.
		pass.Reportf(node.HeaderRange(), "used a `while` loop")
	},
}

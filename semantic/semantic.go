// Copyright © 2025 The pyvet authors

// Package semantic defines the resolved-binding model for a checked file.
//
// Bindings are the post-traversal view of a file: each name introduced by an
// import or assignment, with its fully qualified origin known. The binding
// table is built once per file, after the statement tree is complete, and is
// read-only to the checker. Deferred rule predicates run against it.
package semantic

import (
	"strings"

	"github.com/tjkuson/pyvet/syntax"
)

// BindingKind classifies how a binding was introduced.
type BindingKind int

const (
	BindImport     BindingKind = iota // import x, import x.y as z
	BindFromImport                    // from x import y
	BindAssignment                    // x = ...
)

func (k BindingKind) String() string {
	switch k {
	case BindImport:
		return "import"
	case BindFromImport:
		return "from-import"
	case BindAssignment:
		return "assignment"
	default:
		return "unknown"
	}
}

// Binding is one resolved name in a file.
type Binding struct {
	// Name is the local name the binding introduces.
	Name string

	// Kind classifies the introducing statement.
	Kind BindingKind

	// Origin holds the qualified origin path segments, in order. Empty for
	// bindings with no external origin (assignments) and for imports whose
	// origin could not be resolved.
	Origin []string

	// Stmt is the statement that introduced the binding. Diagnostics about
	// the binding anchor here, not at the binding's own token.
	Stmt *syntax.Node
}

// QualifiedName joins the origin path with dots. The join is case-sensitive
// and preserves every segment as-is; an empty origin yields "".
func (b *Binding) QualifiedName() string {
	return strings.Join(b.Origin, ".")
}

// Result is the finalized binding table for one file.
type Result struct {
	Bindings []*Binding
}

// Copyright © 2025 The pyvet authors

package semantic

import (
	"strings"

	"github.com/tjkuson/pyvet/syntax"
)

// Resolve builds the binding table for a file from its statement tree.
//
// This is a structural resolver: it records every name introduced by import,
// import-from, and assignment statements and computes qualified origin paths,
// including relative imports resolved against the file's package path. It
// does not follow re-exports across files; a front end with a full semantic
// model can hand the checker its own Result instead.
func Resolve(file *syntax.File) *Result {
	r := &Result{}
	syntax.Walk(file.Stmts, func(node *syntax.Node, _ *syntax.Node, _ int) {
		switch node.Kind {
		case syntax.KindImport:
			for _, a := range node.Names {
				r.Bindings = append(r.Bindings, &Binding{
					Name:   a.LocalName(),
					Kind:   BindImport,
					Origin: splitModule(a.Name),
					Stmt:   node,
				})
			}
		case syntax.KindImportFrom:
			base := originBase(file, node)
			for _, a := range node.Names {
				var origin []string
				if base != nil {
					origin = append(append([]string(nil), base...), a.Name)
				}
				r.Bindings = append(r.Bindings, &Binding{
					Name:   a.LocalName(),
					Kind:   BindFromImport,
					Origin: origin,
					Stmt:   node,
				})
			}
		case syntax.KindAssign:
			for _, a := range node.Names {
				r.Bindings = append(r.Bindings, &Binding{
					Name: a.LocalName(),
					Kind: BindAssignment,
					Stmt: node,
				})
			}
		}
	})
	return r
}

// originBase computes the qualified path of the module an import-from
// statement imports from. Returns nil when the origin cannot be resolved
// (a relative import reaching above the file's package root).
func originBase(file *syntax.File, node *syntax.Node) []string {
	if node.Level == 0 {
		return splitModule(node.Module)
	}
	// Relative import: each level strips one trailing segment from the
	// file's own module path, starting with the module itself.
	if len(file.Package) < node.Level {
		return nil
	}
	base := append([]string(nil), file.Package[:len(file.Package)-node.Level]...)
	return append(base, splitModule(node.Module)...)
}

func splitModule(module string) []string {
	if module == "" {
		return nil
	}
	return strings.Split(module, ".")
}

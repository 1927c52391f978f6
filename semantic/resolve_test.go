// Copyright © 2025 The pyvet authors

package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjkuson/pyvet/syntax"
)

func stmt(kind syntax.Kind, module string, level int, names ...syntax.Alias) *syntax.Node {
	return &syntax.Node{
		Kind:   kind,
		Range:  syntax.Range{Start: syntax.Position{Line: 1, Col: 1}, End: syntax.Position{Line: 1, Col: 40}},
		Module: module,
		Level:  level,
		Names:  names,
	}
}

func TestResolve_Import(t *testing.T) {
	// import pandas.core as pc
	node := stmt(syntax.KindImport, "", 0, syntax.Alias{Name: "pandas.core", AsName: "pc"})
	r := Resolve(&syntax.File{Name: "a.py", Stmts: []*syntax.Node{node}})

	require.Len(t, r.Bindings, 1)
	b := r.Bindings[0]
	assert.Equal(t, "pc", b.Name)
	assert.Equal(t, BindImport, b.Kind)
	assert.Equal(t, []string{"pandas", "core"}, b.Origin)
	assert.Equal(t, "pandas.core", b.QualifiedName())
	assert.Same(t, node, b.Stmt)
}

func TestResolve_FromImport(t *testing.T) {
	// from pandas import Series, DataFrame as DF
	node := stmt(syntax.KindImportFrom, "pandas", 0,
		syntax.Alias{Name: "Series"},
		syntax.Alias{Name: "DataFrame", AsName: "DF"},
	)
	r := Resolve(&syntax.File{Name: "a.py", Stmts: []*syntax.Node{node}})

	require.Len(t, r.Bindings, 2)
	assert.Equal(t, "Series", r.Bindings[0].Name)
	assert.Equal(t, BindFromImport, r.Bindings[0].Kind)
	assert.Equal(t, "pandas.Series", r.Bindings[0].QualifiedName())
	assert.Equal(t, "DF", r.Bindings[1].Name)
	assert.Equal(t, "pandas.DataFrame", r.Bindings[1].QualifiedName())
	assert.Same(t, node, r.Bindings[1].Stmt)
}

func TestResolve_RelativeImport(t *testing.T) {
	// from . import frame, in pandas/io/parsers.py
	node := stmt(syntax.KindImportFrom, "", 1, syntax.Alias{Name: "frame"})
	file := &syntax.File{
		Name:    "pandas/io/parsers.py",
		Package: []string{"pandas", "io", "parsers"},
		Stmts:   []*syntax.Node{node},
	}
	r := Resolve(file)

	require.Len(t, r.Bindings, 1)
	assert.Equal(t, "pandas.io.frame", r.Bindings[0].QualifiedName())
}

func TestResolve_RelativeImportWithModule(t *testing.T) {
	// from ..core import series, in pandas/io/parsers.py
	node := stmt(syntax.KindImportFrom, "core", 2, syntax.Alias{Name: "series"})
	file := &syntax.File{
		Package: []string{"pandas", "io", "parsers"},
		Stmts:   []*syntax.Node{node},
	}
	r := Resolve(file)

	require.Len(t, r.Bindings, 1)
	assert.Equal(t, "pandas.core.series", r.Bindings[0].QualifiedName())
}

func TestResolve_RelativeImportAbovePackageRoot(t *testing.T) {
	// A relative import reaching above the package root has no resolvable
	// origin; the binding is still recorded with an empty origin.
	node := stmt(syntax.KindImportFrom, "", 3, syntax.Alias{Name: "helper"})
	file := &syntax.File{
		Package: []string{"pkg", "mod"},
		Stmts:   []*syntax.Node{node},
	}
	r := Resolve(file)

	require.Len(t, r.Bindings, 1)
	assert.Empty(t, r.Bindings[0].Origin)
	assert.Equal(t, "", r.Bindings[0].QualifiedName())
}

func TestResolve_Assignment(t *testing.T) {
	node := stmt(syntax.KindAssign, "", 0, syntax.Alias{Name: "x"})
	r := Resolve(&syntax.File{Stmts: []*syntax.Node{node}})

	require.Len(t, r.Bindings, 1)
	assert.Equal(t, "x", r.Bindings[0].Name)
	assert.Equal(t, BindAssignment, r.Bindings[0].Kind)
	assert.Empty(t, r.Bindings[0].Origin)
}

func TestResolve_NestedImports(t *testing.T) {
	inner := stmt(syntax.KindImportFrom, "json", 0, syntax.Alias{Name: "loads"})
	outer := &syntax.Node{Kind: syntax.KindFunctionDef, Body: []*syntax.Node{inner}}
	r := Resolve(&syntax.File{Stmts: []*syntax.Node{outer}})

	require.Len(t, r.Bindings, 1)
	assert.Equal(t, "json.loads", r.Bindings[0].QualifiedName())
}

func TestQualifiedName_PreservesSegments(t *testing.T) {
	// The join is case-sensitive and never collapses segments.
	b := &Binding{Origin: []string{"Foo", "", "bar"}}
	assert.Equal(t, "Foo..bar", b.QualifiedName())
}

func TestBindingKind_String(t *testing.T) {
	assert.Equal(t, "import", BindImport.String())
	assert.Equal(t, "from-import", BindFromImport.String())
	assert.Equal(t, "assignment", BindAssignment.String())
}

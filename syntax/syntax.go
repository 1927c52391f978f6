// Copyright © 2025 The pyvet authors

// Package syntax defines the parsed representation of a Python source file
// consumed by the checker.
//
// pyvet does not parse Python itself. An external front end parses source
// text and hands over a statement tree in the wire format decoded by this
// package. Nodes are read-only once decoded: the checker borrows them for
// the duration of one file's analysis and never mutates them.
package syntax

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates statement nodes.
type Kind int

const (
	KindUnknown Kind = iota
	KindWhile
	KindFor
	KindIf
	KindFunctionDef
	KindClassDef
	KindAssign
	KindImport
	KindImportFrom
	KindExpr
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindWhile:       "while",
	KindFor:         "for",
	KindIf:          "if",
	KindFunctionDef: "function-def",
	KindClassDef:    "class-def",
	KindAssign:      "assign",
	KindImport:      "import",
	KindImportFrom:  "import-from",
	KindExpr:        "expr",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON serializes the kind as its string tag.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON deserializes a kind from its string tag. Unrecognized tags
// decode as KindUnknown rather than failing: a newer front end may emit
// statement kinds this version does not check.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	for kind, name := range kindNames {
		if name == str {
			*k = kind
			return nil
		}
	}
	*k = KindUnknown
	return nil
}

// Position identifies a point in source code. Line and Col are 1-based.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col,omitempty"`
}

// String returns the position in line:col format.
func (p Position) String() string {
	if p.Col > 0 {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%d", p.Line)
}

// IsValid reports whether the position refers to an actual source location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Range is a half-open span of source code from Start up to End.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsValid reports whether the range refers to an actual source span.
func (r Range) IsValid() bool {
	return r.Start.IsValid()
}

// Contains reports whether other lies within r. End positions with a zero
// column compare by line only.
func (r Range) Contains(other Range) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	if other.Start.Line < r.Start.Line || other.End.Line > r.End.Line {
		return false
	}
	if other.Start.Line == r.Start.Line && r.Start.Col > 0 && other.Start.Col > 0 && other.Start.Col < r.Start.Col {
		return false
	}
	if other.End.Line == r.End.Line && r.End.Col > 0 && other.End.Col > 0 && other.End.Col > r.End.Col {
		return false
	}
	return true
}

// Alias is one imported name within an import statement, with its optional
// local rebinding (import x as y).
type Alias struct {
	// Name is the imported name as written in the source.
	Name string `json:"name"`

	// AsName is the local rebinding, or "" when the name is not aliased.
	AsName string `json:"asname,omitempty"`

	// Range spans this alias only, not the whole statement.
	Range Range `json:"range"`
}

// LocalName returns the name the alias binds in the importing file.
func (a Alias) LocalName() string {
	if a.AsName != "" {
		return a.AsName
	}
	return a.Name
}

// Node is a single statement in the parsed tree.
//
// Discriminant-specific fields are only populated for the kinds that carry
// them: Module, Level, and Names for import statements, Body for compound
// statements. Unused fields hold their zero values.
type Node struct {
	Kind Kind `json:"kind"`

	// Range spans the full statement including any body.
	Range Range `json:"range"`

	// Header spans only the introducing keyword/header of a compound
	// statement (e.g. "while cond:" without the loop body). Zero when the
	// front end did not record a separate header span.
	Header Range `json:"header,omitempty"`

	// Module is the source module of an import-from statement, or "" for
	// a bare relative import (from . import x).
	Module string `json:"module,omitempty"`

	// Level is the relative-import level: the number of leading dots in an
	// import-from statement. Zero means an absolute import.
	Level int `json:"level,omitempty"`

	// Names lists the imported aliases of an import or import-from statement.
	Names []Alias `json:"names,omitempty"`

	// Body holds nested statements of a compound statement.
	Body []*Node `json:"body,omitempty"`
}

// HeaderRange returns the statement's identifying range: the recorded header
// span when present, otherwise the full statement range.
func (n *Node) HeaderRange() Range {
	if n.Header.IsValid() {
		return n.Header
	}
	return n.Range
}

// NoQA records a suppression comment on a source line. An empty Rules list
// suppresses all rules on that line.
type NoQA struct {
	Line  int      `json:"line"`
	Rules []string `json:"rules,omitempty"`
}

// File is one parsed source file: the unit handed over by the front end and
// analyzed by the checker.
type File struct {
	// Name is the source path, used in diagnostic positions.
	Name string `json:"file"`

	// Package holds the dotted module path segments of the file within its
	// package (e.g. ["pkg", "sub", "mod"] for pkg/sub/mod.py). Empty when
	// the file is not part of a package; rules that exempt same-package
	// imports skip that exemption.
	Package []string `json:"package,omitempty"`

	// Stmts are the top-level statements.
	Stmts []*Node `json:"stmts"`

	// NoQA lists per-line suppression directives found by the front end.
	NoQA []NoQA `json:"noqa,omitempty"`
}

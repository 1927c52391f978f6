// Copyright © 2025 The pyvet authors

package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjkuson/pyvet/syntax"
)

func TestWhileLoop_Positive(t *testing.T) {
	diags := checkFile(t, []*Rule{RuleWhileLoop}, nil, mkFile(mkWhile(3)))
	require.Len(t, diags, 1)
	assert.Equal(t, "used a `while` loop", diags[0].Message)
	assertDiagOnLine(t, diags, 3, "while")
}

func TestWhileLoop_AnchorsAtHeader(t *testing.T) {
	// The diagnostic must span the loop header, not the multi-line body.
	node := mkWhile(3)
	diags := checkFile(t, []*Rule{RuleWhileLoop}, nil, mkFile(node))
	require.Len(t, diags, 1)
	assert.Equal(t, node.Header.Start.Line, diags[0].Pos.Line)
	assert.Equal(t, node.Header.End.Line, diags[0].End.Line)
	assert.Equal(t, node.Header.End.Col, diags[0].End.Col)
}

func TestWhileLoop_HeaderFallsBackToRange(t *testing.T) {
	node := &syntax.Node{Kind: syntax.KindWhile, Range: mkRange(7, 1, 20)}
	diags := checkFile(t, []*Rule{RuleWhileLoop}, nil, mkFile(node))
	require.Len(t, diags, 1)
	assert.Equal(t, 7, diags[0].Pos.Line)
}

func TestWhileLoop_Nested(t *testing.T) {
	outer := mkWhile(1)
	outer.Body = []*syntax.Node{mkWhile(2)}
	diags := checkFile(t, []*Rule{RuleWhileLoop}, nil, mkFile(outer))
	require.Len(t, diags, 2)
	assertDiagOnLine(t, diags, 1, "while")
	assertDiagOnLine(t, diags, 2, "while")
}

func TestWhileLoop_Negative_OtherStatements(t *testing.T) {
	file := mkFile(
		&syntax.Node{Kind: syntax.KindFor, Range: mkRange(1, 1, 20)},
		&syntax.Node{Kind: syntax.KindIf, Range: mkRange(2, 1, 20)},
		&syntax.Node{Kind: syntax.KindAssign, Range: mkRange(3, 1, 20)},
	)
	assertNoDiags(t, checkFile(t, []*Rule{RuleWhileLoop}, nil, file))
}

func TestWhileLoop_Idempotent(t *testing.T) {
	file := mkFile(mkWhile(3))
	first := checkFile(t, []*Rule{RuleWhileLoop}, nil, file)
	second := checkFile(t, []*Rule{RuleWhileLoop}, nil, file)
	assert.Equal(t, first, second)
}

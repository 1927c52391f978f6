// Copyright © 2025 The pyvet authors

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalk_DepthAndParent(t *testing.T) {
	inner := &Node{Kind: KindAssign}
	loop := &Node{Kind: KindWhile, Body: []*Node{inner}}
	stmts := []*Node{loop, {Kind: KindExpr}}

	type visit struct {
		kind   Kind
		parent *Node
		depth  int
	}
	var visits []visit
	Walk(stmts, func(node *Node, parent *Node, depth int) {
		visits = append(visits, visit{node.Kind, parent, depth})
	})

	assert.Equal(t, []visit{
		{KindWhile, nil, 0},
		{KindAssign, loop, 1},
		{KindExpr, nil, 0},
	}, visits)
}

func TestWalk_NilNodeSkipped(t *testing.T) {
	count := 0
	Walk([]*Node{nil, {Kind: KindExpr}}, func(*Node, *Node, int) { count++ })
	assert.Equal(t, 1, count)
}

func TestWalkStmts_KindFilter(t *testing.T) {
	stmts := []*Node{
		{Kind: KindImport},
		{Kind: KindWhile, Body: []*Node{{Kind: KindImportFrom}}},
	}
	var kinds []Kind
	WalkStmts(stmts, func(node *Node, _ int) {
		kinds = append(kinds, node.Kind)
	}, KindImport, KindImportFrom)
	assert.Equal(t, []Kind{KindImport, KindImportFrom}, kinds)
}

func TestWalkStmts_NoFilterVisitsAll(t *testing.T) {
	stmts := []*Node{{Kind: KindWhile, Body: []*Node{{Kind: KindAssign}}}}
	count := 0
	WalkStmts(stmts, func(*Node, int) { count++ })
	assert.Equal(t, 2, count)
}

// Copyright © 2025 The pyvet authors

package syntax

// Walk calls fn for every statement in the tree, depth-first.
// parent is nil for top-level statements.
func Walk(stmts []*Node, fn func(node *Node, parent *Node, depth int)) {
	for _, stmt := range stmts {
		walkNode(stmt, nil, 0, fn)
	}
}

func walkNode(node *Node, parent *Node, depth int, fn func(*Node, *Node, int)) {
	if node == nil {
		return
	}
	fn(node, parent, depth)
	for _, child := range node.Body {
		walkNode(child, node, depth+1, fn)
	}
}

// WalkStmts calls fn for every statement of the given kinds. With no kinds
// it visits every statement.
func WalkStmts(stmts []*Node, fn func(node *Node, depth int), kinds ...Kind) {
	Walk(stmts, func(node *Node, _ *Node, depth int) {
		if len(kinds) == 0 {
			fn(node, depth)
			return
		}
		for _, k := range kinds {
			if node.Kind == k {
				fn(node, depth)
				return
			}
		}
	})
}

package main

import (
	"github.com/expr-lang/expr/ast"
)

// ColumnRefsVisitor collects the variable names an expression reads. Function names
// are skipped.
type ColumnRefsVisitor struct {
	names   []string
	callees map[string]bool
	seen    map[string]bool
}

func NewColumnRefsVisitor() *ColumnRefsVisitor {
	return &ColumnRefsVisitor{
		names:   make([]string, 0),
		callees: map[string]bool{},
		seen:    map[string]bool{},
	}
}

func (v *ColumnRefsVisitor) Visit(node *ast.Node) {
	var ok bool
	var callNode *ast.CallNode
	var identifierNode *ast.IdentifierNode

	if callNode, ok = (*node).(*ast.CallNode); ok && callNode.Callee != nil {
		if identifierNode, ok = callNode.Callee.(*ast.IdentifierNode); ok {
			v.callees[identifierNode.Value] = true
		}
		return
	}

	if identifierNode, ok = (*node).(*ast.IdentifierNode); ok && !v.seen[identifierNode.Value] {
		v.seen[identifierNode.Value] = true
		v.names = append(v.names, identifierNode.Value)
	}
}

// Names returns the collected identifiers in order of first appearance.
func (v *ColumnRefsVisitor) Names() []string {
	names := make([]string, 0, len(v.names))
	for _, name := range v.names {
		if !v.callees[name] {
			names = append(names, name)
		}
	}
	return names
}

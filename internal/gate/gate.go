// Package gate implements gate-modifier chain stacking (spec §4.6):
// wrapping a gate call (or another modifier) with ctrl/negctrl/inv/pow/
// gphase while preserving insertion order, so that `ctrl @ inv @ U(...)`
// and `inv @ ctrl @ U(...)` mangle to distinct symbols even though they
// may denote the same operation (spec §4.6, §8 invariant 7). Grounded on
// original_source/include/qasm/AST/ASTGates.h's modifier-target
// discriminated union, expressed in Go as ast.ModifierTarget.
package gate

import (
	"github.com/openqasm/qe-qasm-sub003/internal/ast"
)

// Chain is a sequence of modifiers applied to a base gate call,
// outermost-applied-last: Control, NegControl, Inverse and Power each wrap
// the current head, so the modifier applied last becomes the outermost
// node and the mangler can walk Target links outward-in to reproduce the
// written sequence.
type Chain struct {
	base *ast.GateCallExpr
	head ast.Node // outermost modifier, or base's GateCallExpr if empty
}

// NewChain starts a modifier chain rooted at a bare gate call.
func NewChain(base *ast.GateCallExpr) *Chain {
	return &Chain{base: base, head: base}
}

func (c *Chain) targetOf(head ast.Node) ast.ModifierTarget {
	if gc, ok := head.(*ast.GateCallExpr); ok {
		return ast.ModifierTarget{Kind: ast.TypeGateCall, GateCall: gc}
	}
	return ast.ModifierTarget{Kind: head.AstType(), Modifier: head}
}

// Control applies `ctrl` around the current head of the chain.
func (c *Chain) Control(loc ast.Location) *Chain {
	c.head = ast.NewGateControl(c.targetOf(c.head), loc)
	return c
}

// NegControl applies `negctrl` around the current head of the chain.
func (c *Chain) NegControl(loc ast.Location) *Chain {
	c.head = ast.NewGateNegControl(c.targetOf(c.head), loc)
	return c
}

// Inverse applies `inv` around the current head of the chain.
func (c *Chain) Inverse(loc ast.Location) *Chain {
	c.head = ast.NewGateInverse(c.targetOf(c.head), loc)
	return c
}

// Power applies `pow(exponent)` around the current head of the chain.
func (c *Chain) Power(exponent ast.Expression, loc ast.Location) *Chain {
	c.head = ast.NewGatePower(exponent, c.targetOf(c.head), loc)
	return c
}

// GPhase applies a standalone `gphase(angle)` term. A gphase term carries
// no further target of its own — it terminates the chain, matching spec
// §4.6's listing of gphase-expression as one of the leaf target kinds
// rather than a wrapper.
func (c *Chain) GPhase(angle ast.Expression, loc ast.Location) *Chain {
	c.head = ast.NewGPhaseExpression(angle, loc)
	return c
}

// Head returns the outermost node of the chain — what callers attach to
// the statement/expression position the gate call originally occupied.
func (c *Chain) Head() ast.Node { return c.head }

// Depth returns how many modifiers have been stacked (0 for a bare call).
func (c *Chain) Depth() int {
	n := 0
	cur := c.head
	for {
		switch m := cur.(type) {
		case *ast.GateControl:
			n++
			cur = resolveModifierNode(m.Target)
		case *ast.GateNegControl:
			n++
			cur = resolveModifierNode(m.Target)
		case *ast.GateInverse:
			n++
			cur = resolveModifierNode(m.Target)
		case *ast.GatePower:
			n++
			cur = resolveModifierNode(m.Target)
		default:
			return n
		}
		if cur == nil {
			return n
		}
	}
}

func resolveModifierNode(t ast.ModifierTarget) ast.Node {
	switch {
	case t.GateCall != nil:
		return t.GateCall
	case t.Modifier != nil:
		return t.Modifier
	case t.GPhase != nil:
		return t.GPhase
	default:
		return nil
	}
}

// Walk visits every modifier node from outermost to the base call,
// calling visit(node) for each, including the base call itself.
func Walk(head ast.Node, visit func(ast.Node)) {
	cur := head
	for cur != nil {
		visit(cur)
		switch m := cur.(type) {
		case *ast.GateControl:
			cur = resolveModifierNode(m.Target)
		case *ast.GateNegControl:
			cur = resolveModifierNode(m.Target)
		case *ast.GateInverse:
			cur = resolveModifierNode(m.Target)
		case *ast.GatePower:
			cur = resolveModifierNode(m.Target)
		default:
			return
		}
	}
}

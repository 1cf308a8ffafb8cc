package validator

import (
	"testing"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/context"
	"github.com/openqasm/qe-qasm-sub003/internal/diag"
	"github.com/openqasm/qe-qasm-sub003/internal/symtab"
)

func newBinary(left ast.Expression, op ast.Op, right ast.Expression) *ast.BinaryOpExpr {
	return ast.NewBinaryOpExpr(left, op, right, false, ast.Location{})
}

func TestValidateBinaryOpArithmeticWidensToWider(t *testing.T) {
	e := diag.NewCollectingEmitter()
	v := New(e, symtab.New())

	left := ast.NewIntLiteral(1, 32, ast.Location{})
	right := ast.NewDoubleLiteral(2.5, ast.Location{})
	b := newBinary(left, ast.OpAdd, right)

	got := v.ValidateBinaryOp(b)
	if got != ast.TypeDouble {
		t.Errorf("int + double = %s, want Double", got)
	}
	if e.HasErrors() {
		t.Error("legal arithmetic op unexpectedly emitted a diagnostic")
	}
}

func TestValidateBinaryOpRejectsIncompatibleComparison(t *testing.T) {
	e := diag.NewCollectingEmitter()
	v := New(e, symtab.New())

	left := ast.NewStringLiteral("a", ast.Location{})
	right := ast.NewIntLiteral(1, 32, ast.Location{})
	b := newBinary(left, ast.OpLt, right)

	got := v.ValidateBinaryOp(b)
	if got != ast.TypeExpressionError {
		t.Errorf("string < int = %s, want TypeExpressionError", got)
	}
	if !e.HasErrors() {
		t.Error("illegal comparison did not emit a diagnostic")
	}
}

func TestValidateBinaryOpModRequiresIntegers(t *testing.T) {
	e := diag.NewCollectingEmitter()
	v := New(e, symtab.New())

	left := ast.NewIntLiteral(7, 32, ast.Location{})
	right := ast.NewDoubleLiteral(2.0, ast.Location{})
	b := newBinary(left, ast.OpMod, right)

	if got := v.ValidateBinaryOp(b); got != ast.TypeExpressionError {
		t.Errorf("int %% double = %s, want TypeExpressionError (mod is integers only)", got)
	}
}

func TestValidateBinaryOpBitwiseOnAngleWarnsButSucceeds(t *testing.T) {
	e := diag.NewCollectingEmitter()
	v := New(e, symtab.New())

	angle := ast.NewIdentifier("theta", 32, ast.TypeAngle, ast.ScopeGlobal, nil, ast.Location{})
	mask := ast.NewIntLiteral(1, 32, ast.Location{})
	b := newBinary(angle, ast.OpBitAnd, mask)

	got := v.ValidateBinaryOp(b)
	if got != ast.TypeAngle {
		t.Fatalf("angle & int = %s, want Angle", got)
	}
	diags := e.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != diag.KindAngleBitwiseWarning || diags[0].Level != diag.Warning {
		t.Errorf("diagnostics = %v, want exactly one KindAngleBitwiseWarning at Warning level", diags)
	}
}

func TestValidateUnaryOpRejectsBangOnUnparenthesizedBinaryOp(t *testing.T) {
	e := diag.NewCollectingEmitter()
	v := New(e, symtab.New())

	inner := newBinary(ast.NewIntLiteral(1, 32, ast.Location{}), ast.OpLt, ast.NewIntLiteral(2, 32, ast.Location{}))
	inner.HasParens = false
	u := ast.NewUnaryOpExpr(ast.OpNot, inner, false, false, ast.Location{})

	if got := v.ValidateUnaryOp(u); got != ast.TypeExpressionError {
		t.Errorf("!(a < b) without parens = %s, want TypeExpressionError", got)
	}
}

func TestValidateUnaryOpAcceptsBangOnParenthesizedBinaryOp(t *testing.T) {
	e := diag.NewCollectingEmitter()
	v := New(e, symtab.New())

	inner := newBinary(ast.NewIntLiteral(1, 32, ast.Location{}), ast.OpLt, ast.NewIntLiteral(2, 32, ast.Location{}))
	inner.HasParens = true
	inner.ResultType = ast.TypeBool
	u := ast.NewUnaryOpExpr(ast.OpNot, inner, false, false, ast.Location{})

	if got := v.ValidateUnaryOp(u); got != ast.TypeBool {
		t.Errorf("!(a < b) with parens = %s, want Bool", got)
	}
}

func TestCanBeAssignedToRejectsReservedAngleNames(t *testing.T) {
	v := New(diag.NewCollectingEmitter(), symtab.New())
	pi := ast.NewIdentifier("pi", 64, ast.TypeAngle, ast.ScopeGlobal, nil, ast.Location{})

	ok, reason := v.CanBeAssignedTo(pi)
	if ok {
		t.Fatal("assignment to \"pi\" was accepted, want rejection")
	}
	if reason != "AssignmentToReserved" {
		t.Errorf("reason = %q, want AssignmentToReserved", reason)
	}
}

func TestCanBeAssignedToRejectsQubits(t *testing.T) {
	v := New(diag.NewCollectingEmitter(), symtab.New())
	q := ast.NewIdentifier("q", 0, ast.TypeQubit, ast.ScopeGlobal, nil, ast.Location{})

	if ok, _ := v.CanBeAssignedTo(q); ok {
		t.Fatal("assignment to a qubit was accepted, want rejection")
	}
}

func TestCanBeAssignedToIndexedReferenceInBounds(t *testing.T) {
	v := New(diag.NewCollectingEmitter(), symtab.New())
	ctx := context.NewTracker().Current()
	b := ast.NewIdentifier("b", 8, ast.TypeBitset, ast.ScopeGlobal, ctx, ast.Location{})

	ref := ast.NewIdentifierRef(b, 3, ast.TypeBitset, ast.Location{})
	if ok, reason := v.CanBeAssignedTo(ref); !ok {
		t.Fatalf("b[3] on an 8-bit bitset rejected: %s", reason)
	}
}

func TestCanBeAssignedToIndexedReferenceOutOfBounds(t *testing.T) {
	v := New(diag.NewCollectingEmitter(), symtab.New())
	ctx := context.NewTracker().Current()
	b := ast.NewIdentifier("b", 8, ast.TypeBitset, ast.ScopeGlobal, ctx, ast.Location{})

	ref := ast.NewIdentifierRef(b, 9, ast.TypeBitset, ast.Location{})
	ok, reason := v.CanBeAssignedTo(ref)
	if ok {
		t.Fatal("b[9] on an 8-bit bitset was accepted, want OutOfBoundsIndex")
	}
	if reason != "OutOfBoundsIndex" {
		t.Errorf("reason = %q, want OutOfBoundsIndex", reason)
	}
}

func TestEffectiveTypeResolvesThroughCastsAndOps(t *testing.T) {
	v := New(diag.NewCollectingEmitter(), symtab.New())

	cast := ast.NewCastExpr(ast.NewIntLiteral(1, 32, ast.Location{}), ast.TypeInt, ast.TypeAngle, 32, ast.Location{})
	if got := v.EffectiveType(cast); got != ast.TypeAngle {
		t.Errorf("EffectiveType(cast to angle) = %s, want Angle", got)
	}

	b := newBinary(ast.NewIntLiteral(1, 32, ast.Location{}), ast.OpAdd, ast.NewIntLiteral(2, 32, ast.Location{}))
	b.ResultType = ast.TypeInt
	op := ast.NewOperandNode(0, b, ast.Location{})
	if got := v.EffectiveType(op); got != ast.TypeInt {
		t.Errorf("EffectiveType(operand wrapping binary op) = %s, want Int", got)
	}
}

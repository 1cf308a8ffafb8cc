package ast

import (
	"testing"

	"github.com/openqasm/qe-qasm-sub003/internal/context"
)

func TestIsQubitTypeExcludesScalars(t *testing.T) {
	if !IsQubitType(TypeQubit) || !IsQubitType(TypeQubitContainer) {
		t.Error("IsQubitType false for a quantum type")
	}
	if IsQubitType(TypeInt) {
		t.Error("IsQubitType(TypeInt) = true, want false")
	}
}

func TestIsAssignableExcludesQubitsEvenThoughCallerMustAlsoCheck(t *testing.T) {
	// IsAssignable itself only encodes the classical-type table; spec §4.4
	// requires callers to additionally check !IsQubitType. Qubit types were
	// never added to the table in the first place, so this should already
	// read false without an extra check, but that does not relieve callers
	// of the explicit check documented on IsAssignable.
	if IsAssignable(TypeQubit) {
		t.Error("IsAssignable(TypeQubit) = true, want false")
	}
	if !IsAssignable(TypeInt) {
		t.Error("IsAssignable(TypeInt) = false, want true")
	}
}

func TestIsIntegerTypeIncludesBitset(t *testing.T) {
	if !IsIntegerType(TypeBitset) {
		t.Error("IsIntegerType(TypeBitset) = false, want true (bitsets participate in integer arithmetic)")
	}
	if IsIntegerType(TypeFloat) {
		t.Error("IsIntegerType(TypeFloat) = true, want false")
	}
}

func TestAstTypeStringIsStableAndNamed(t *testing.T) {
	if TypeGateDeclaration.String() != "GateDeclaration" {
		t.Errorf("TypeGateDeclaration.String() = %q, want %q", TypeGateDeclaration.String(), "GateDeclaration")
	}
	if AstType(99999).String() != "Unknown" {
		t.Error("an unrecognized AstType did not stringify as \"Unknown\"")
	}
}

func TestIsErrorIdentifiesOnlyErrorMarkers(t *testing.T) {
	errorTypes := []AstType{TypeExpressionError, TypeStatementError, TypeBadCast, TypeBadImplicitConversion, TypeSyntaxError, TypeIdentifierError}
	for _, et := range errorTypes {
		if !et.IsError() {
			t.Errorf("%s.IsError() = false, want true", et)
		}
	}
	if TypeInt.IsError() {
		t.Error("TypeInt.IsError() = true, want false")
	}
}

func TestNewIdentifierParsesTrailingIndexSyntax(t *testing.T) {
	id := NewIdentifier("q[3]", 0, TypeQubit, ScopeLocal, nil, Location{})
	if !id.IsIndexed {
		t.Fatal("NewIdentifier(\"q[3]\") did not set IsIndexed")
	}
	if !id.HasNumericIndex || id.NumericIndex != 3 {
		t.Errorf("numeric index = (%v, %d), want (true, 3)", id.HasNumericIndex, id.NumericIndex)
	}

	ref := NewIdentifier("r[i]", 0, TypeQubit, ScopeLocal, nil, Location{})
	if ref.HasNumericIndex {
		t.Error("NewIdentifier(\"r[i]\") set HasNumericIndex for a non-numeric subscript")
	}
	if ref.IndexIdentifier != "i" {
		t.Errorf("IndexIdentifier = %q, want \"i\"", ref.IndexIdentifier)
	}
}

func TestNewIdentifierLeavesPlainNameUnindexed(t *testing.T) {
	id := NewIdentifier("theta", 64, TypeAngle, ScopeGlobal, nil, Location{})
	if id.IsIndexed {
		t.Error("a plain name without brackets was marked IsIndexed")
	}
}

func TestSetBinaryOpAndSetUnaryOpAreMutuallyExclusive(t *testing.T) {
	id := NewIdentifier("x", 32, TypeInt, ScopeLocal, nil, Location{})
	b := NewBinaryOpExpr(NewIntLiteral(1, 32, Location{}), OpAdd, NewIntLiteral(2, 32, Location{}), false, Location{})
	id.SetBinaryOp(b)
	if !id.IsComputed() || id.BinaryOp != b {
		t.Fatal("SetBinaryOp did not mark the identifier as computed with the given expression")
	}

	u := NewUnaryOpExpr(OpSub, NewIntLiteral(1, 32, Location{}), false, false, Location{})
	id.SetUnaryOp(u)
	if id.BinaryOp != nil {
		t.Error("SetUnaryOp did not clear a previously-set BinaryOp")
	}
	if id.UnaryOp != u {
		t.Error("SetUnaryOp did not record the unary expression")
	}
}

func TestIdentifierRefStringReflectsNumericOrExprIndex(t *testing.T) {
	ctx := context.NewTracker().Current()
	base := NewIdentifier("b", 8, TypeBitset, ScopeGlobal, ctx, Location{})

	numeric := NewIdentifierRef(base, 2, TypeBitset, Location{})
	if got, want := numeric.String(), "b[2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	idx := NewIdentifier("i", 32, TypeInt, ScopeLocal, ctx, Location{})
	exprRef := NewIdentifierRefExpr(base, idx, TypeBitset, Location{})
	if got, want := exprRef.String(), "b[i]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAddReferenceIsRetrievableFromReferencesMap(t *testing.T) {
	ctx := context.NewTracker().Current()
	base := NewIdentifier("q", 0, TypeQubitContainer, ScopeGlobal, ctx, Location{})
	ref := NewIdentifierRef(base, 0, TypeQubit, Location{})

	base.AddReference(0, ref)
	if base.References[0] != ref {
		t.Error("AddReference did not make the ref retrievable by its index")
	}
}

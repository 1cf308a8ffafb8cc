package builder

import (
	"testing"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/context"
	"github.com/openqasm/qe-qasm-sub003/internal/diag"
)

func TestNewSeedsGlobalContextWithReservedNames(t *testing.T) {
	e := diag.NewCollectingEmitter()
	s := New(e)

	id, err := s.CreateIdentifier("pi", 64, ast.TypeAngle, ast.Location{})
	if err != nil {
		t.Fatalf("CreateIdentifier(\"pi\") error: %v", err)
	}
	if !id.Interned() {
		t.Error("\"pi\" was not returned as an interned identifier")
	}
}

func TestCreateIdentifierRegistersAndMangles(t *testing.T) {
	e := diag.NewCollectingEmitter()
	s := New(e)

	id, err := s.CreateIdentifier("x", 32, ast.TypeInt, ast.Location{})
	if err != nil {
		t.Fatalf("CreateIdentifier error: %v", err)
	}
	if id.MangledName == "" {
		t.Error("CreateIdentifier left MangledName empty")
	}
	if id.SymbolTableEntry == nil {
		t.Error("CreateIdentifier did not register a symbol table entry")
	}
}

func TestCreateIdentifierRedeclarationReturnsError(t *testing.T) {
	e := diag.NewCollectingEmitter()
	s := New(e)

	if _, err := s.CreateIdentifier("x", 32, ast.TypeInt, ast.Location{}); err != nil {
		t.Fatalf("first CreateIdentifier(\"x\") error: %v", err)
	}
	if _, err := s.CreateIdentifier("x", 32, ast.TypeInt, ast.Location{}); err == nil {
		t.Error("redeclaring \"x\" in the same scope did not return an error")
	}
	if !e.HasErrors() {
		t.Error("redeclaration did not emit a diagnostic")
	}
}

func TestCreateGateDeclarationRedeclarationCarriesStatementError(t *testing.T) {
	e := diag.NewCollectingEmitter()
	s := New(e)

	s.CreateGateDeclaration("h", nil, nil, nil, ast.Location{})
	decl := s.CreateGateDeclaration("h", nil, nil, nil, ast.Location{})
	if decl.Err == nil {
		t.Error("redeclaring gate \"h\" did not attach a StatementError")
	}
}

func TestCastOrConvertDispatchesImplicitVsExplicit(t *testing.T) {
	e := diag.NewCollectingEmitter()
	s := New(e)

	lit := ast.NewIntLiteral(1, 32, ast.Location{})
	implicit := s.CastOrConvert(lit, ast.TypeMPComplex, 128, true, ast.Location{})
	if implicit.AstType() != ast.TypeBadImplicitConversion {
		t.Errorf("implicit int->mp-complex = %s, want BadImplicitConversion", implicit.AstType())
	}

	explicit := s.CastOrConvert(lit, ast.TypeBool, 1, false, ast.Location{})
	if explicit.AstType() != ast.TypeCast {
		t.Errorf("explicit int->bool cast = %s, want Cast", explicit.AstType())
	}
}

func TestNewGateChainAndMangleCallDistinguishModifierOrder(t *testing.T) {
	e := diag.NewCollectingEmitter()
	s := New(e)

	u, err := s.CreateIdentifier("U", 0, ast.TypeGateDeclaration, ast.Location{})
	if err != nil {
		t.Fatalf("CreateIdentifier(\"U\") error: %v", err)
	}
	base := ast.NewGateCallExpr(u, nil, nil, ast.Location{})

	ctrlThenInv := s.NewGateChain(base).Control(ast.Location{}).Inverse(ast.Location{})
	invThenCtrl := s.NewGateChain(base).Inverse(ast.Location{}).Control(ast.Location{})

	m1 := s.MangleCall(ctrlThenInv.Head())
	m2 := s.MangleCall(invThenCtrl.Head())
	if m1 == m2 {
		t.Errorf("ctrl@inv@U and inv@ctrl@U mangled identically: %q", m1)
	}
}

func TestPushAndPopContextRoundTrip(t *testing.T) {
	e := diag.NewCollectingEmitter()
	s := New(e)

	before := s.Contexts.Current()
	s.PushContext(context.KindBlock)
	if s.Contexts.Current() == before {
		t.Fatal("PushContext did not change the current context")
	}
	if err := s.PopContext(); err != nil {
		t.Fatalf("PopContext error: %v", err)
	}
	if s.Contexts.Current() != before {
		t.Error("PopContext did not restore the prior context")
	}
}

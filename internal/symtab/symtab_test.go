package symtab

import (
	"testing"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/context"
)

func newIdent(name string, symType ast.AstType, bits int, ctx *context.Context) *ast.Identifier {
	return ast.NewIdentifier(name, bits, symType, ast.ScopeLocal, ctx, ast.Location{})
}

func TestRegisterSameContextDuplicateIsRedeclaration(t *testing.T) {
	tr := context.NewTracker()
	table := New()
	ctx := tr.Current()

	a := newIdent("x", ast.TypeInt, 32, ctx)
	if _, err := table.Register(a, ctx); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	b := newIdent("x", ast.TypeInt, 32, ctx)
	_, err := table.Register(b, ctx)
	if err == nil {
		t.Fatal("second Register in the same context succeeded, want Redeclaration error")
	}
	re, ok := err.(*RegisterError)
	if !ok || re.Kind != ErrRedeclaration {
		t.Fatalf("error = %v, want a RegisterError{Kind: ErrRedeclaration}", err)
	}
}

func TestGateNeverRedeclaresAnywhere(t *testing.T) {
	tr := context.NewTracker()
	table := New()
	global := tr.Current()

	g1 := newIdent("h", ast.TypeGateDeclaration, 0, global)
	if _, err := table.Register(g1, global); err != nil {
		t.Fatalf("first gate Register error: %v", err)
	}

	nested := tr.Push(context.KindGate)
	g2 := newIdent("h", ast.TypeGateDeclaration, 0, nested)
	_, err := table.Register(g2, nested)
	if err == nil {
		t.Fatal("redeclaring gate \"h\" in a nested context succeeded, want ShadowsGlobal error")
	}
	if re, ok := err.(*RegisterError); !ok || re.Kind != ErrShadowsGlobal {
		t.Fatalf("error = %v, want ShadowsGlobal", err)
	}
}

func TestAngleDistinguishedByBitWidth(t *testing.T) {
	tr := context.NewTracker()
	table := New()
	ctx := tr.Current()

	a32 := newIdent("theta", ast.TypeAngle, 32, ctx)
	if _, err := table.Register(a32, ctx); err != nil {
		t.Fatalf("Register(theta:32) error: %v", err)
	}

	a64 := newIdent("theta", ast.TypeAngle, 64, ctx)
	if _, err := table.Register(a64, ctx); err != nil {
		t.Fatalf("Register(theta:64) after theta:32 should succeed (distinct width), got error: %v", err)
	}

	dup := newIdent("theta", ast.TypeAngle, 32, ctx)
	if _, err := table.Register(dup, ctx); err == nil {
		t.Fatal("registering a second theta:32 succeeded, want DuplicateDefinition error")
	}
}

func TestRedeclarationAcrossNestedContextsShadows(t *testing.T) {
	tr := context.NewTracker()
	table := New()
	global := tr.Current()

	outer := newIdent("n", ast.TypeInt, 32, global)
	if _, err := table.Register(outer, global); err != nil {
		t.Fatalf("Register(outer) error: %v", err)
	}

	inner := tr.Push(context.KindBlock)
	shadow := newIdent("n", ast.TypeInt, 32, inner)
	if _, err := table.Register(shadow, inner); err != nil {
		t.Fatalf("Register(shadow) error: %v", err)
	}
	if !shadow.IsRedeclaration {
		t.Error("shadow.IsRedeclaration = false, want true")
	}
	if shadow.Predecessor != outer {
		t.Errorf("shadow.Predecessor = %v, want the outer identifier", shadow.Predecessor)
	}
}

func TestLookupWalksAncestorChain(t *testing.T) {
	tr := context.NewTracker()
	table := New()
	global := tr.Current()

	id := newIdent("g", ast.TypeInt, 32, global)
	if _, err := table.Register(id, global); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	nested := tr.Push(context.KindFor)
	entry, ok := table.Lookup(nested, "g")
	if !ok {
		t.Fatal("Lookup from a nested context failed to find a global declaration")
	}
	if entry.Identifier != id {
		t.Error("Lookup returned a different identifier than registered")
	}

	if _, ok := table.Lookup(nested, "nonexistent"); ok {
		t.Error("Lookup found an entry for a name that was never registered")
	}
}

func TestEraseLocalRefusesDoNotDelete(t *testing.T) {
	tr := context.NewTracker()
	table := New()
	ctx := tr.Current()

	id := newIdent("pi", ast.TypeAngle, 64, ctx)
	entry, err := table.Register(id, ctx)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	entry.DoNotDelete = true

	if err := table.EraseLocal(ctx, "pi"); err == nil {
		t.Fatal("EraseLocal removed a DoNotDelete entry, want an error")
	}
}

func TestSortedNamesIsDeterministic(t *testing.T) {
	tr := context.NewTracker()
	table := New()
	ctx := tr.Current()

	for _, n := range []string{"zed", "alpha", "mu"} {
		id := newIdent(n, ast.TypeInt, 32, ctx)
		if _, err := table.Register(id, ctx); err != nil {
			t.Fatalf("Register(%q) error: %v", n, err)
		}
	}

	first := table.SortedNames(ctx)
	second := table.SortedNames(ctx)
	if len(first) != 3 {
		t.Fatalf("SortedNames returned %d names, want 3", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("SortedNames is not stable across calls: %v vs %v", first, second)
		}
	}
}

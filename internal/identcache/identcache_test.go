package identcache

import (
	"testing"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/context"
	"github.com/openqasm/qe-qasm-sub003/internal/symtab"
)

func TestSeedRegistersReservedAnglesAndBuiltinGates(t *testing.T) {
	tr := context.NewTracker()
	r := New()
	r.Seed(tr.Global(), symtab.New())

	pi := r.CreateIdentifier("pi", 64, ast.TypeAngle, tr.Current(), ast.Location{})
	if !pi.Interned() {
		t.Error("pi was not returned as an interned identifier after Seed")
	}

	u := r.CreateIdentifier("U", 0, ast.TypeGateDeclaration, tr.Current(), ast.Location{})
	if !u.Interned() {
		t.Error("the built-in gate U was not returned as interned after Seed")
	}
}

// TestSeedRegistersPiInSymbolTable covers spec scenario 1: lookup of pi
// at global scope right after init returns an entry with type=angle,
// bits=64, a value, and do_not_delete=true.
func TestSeedRegistersPiInSymbolTable(t *testing.T) {
	tr := context.NewTracker()
	symbols := symtab.New()
	r := New()
	r.Seed(tr.Global(), symbols)

	entry, ok := symbols.LookupGlobal("pi")
	if !ok {
		t.Fatal("LookupGlobal(\"pi\") found nothing after Seed")
	}
	if entry.ValueType != ast.TypeAngle {
		t.Errorf("pi entry ValueType = %s, want Angle", entry.ValueType)
	}
	if entry.Identifier.Bits != 64 {
		t.Errorf("pi entry bits = %d, want 64", entry.Identifier.Bits)
	}
	if entry.Value == nil {
		t.Error("pi entry has no value")
	}
	if !entry.DoNotDelete {
		t.Error("pi entry DoNotDelete = false, want true")
	}

	angleEntry, ok := symbols.FindAngle("pi", 64)
	if !ok || angleEntry != entry {
		t.Error("FindAngle(\"pi\", 64) did not return the same seeded entry")
	}

	if err := symbols.EraseLocal(tr.Global(), "pi"); err == nil {
		t.Error("EraseLocal removed the DoNotDelete \"pi\" entry, want an error")
	}
}

func TestSeedRegistersBuiltinGateInSymbolTable(t *testing.T) {
	tr := context.NewTracker()
	symbols := symtab.New()
	r := New()
	r.Seed(tr.Global(), symbols)

	entry, ok := symbols.FindGate("CX")
	if !ok {
		t.Fatal("FindGate(\"CX\") found nothing after Seed")
	}
	if !entry.DoNotDelete {
		t.Error("CX entry DoNotDelete = false, want true")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	tr := context.NewTracker()
	r := New()
	symbols := symtab.New()
	r.Seed(tr.Global(), symbols)
	first := r.CreateIdentifier("pi", 64, ast.TypeAngle, tr.Current(), ast.Location{})
	r.Seed(tr.Global(), symbols)
	second := r.CreateIdentifier("pi", 64, ast.TypeAngle, tr.Current(), ast.Location{})
	if first != second {
		t.Error("calling Seed twice produced a different interned \"pi\" identifier")
	}
}

func TestCreateIdentifierBuildsHeapIdentifierForNonSingleton(t *testing.T) {
	tr := context.NewTracker()
	r := New()
	ctx := tr.Current()

	id := r.CreateIdentifier("x", 32, ast.TypeInt, ctx, ast.Location{})
	if id.Interned() {
		t.Error("a fresh user declaration was reported as interned")
	}
	if !ctx.HasLocal("x") {
		t.Error("CreateIdentifier did not register the name with its context")
	}
}

func TestFindOrCreateIndexedIdentifierReusesSameSubscript(t *testing.T) {
	base := ast.NewIdentifier("q", 0, ast.TypeQubitContainer, ast.ScopeGlobal, nil, ast.Location{})
	r := New()

	first := r.FindOrCreateIndexedIdentifier(base, 2, ast.TypeQubit, ast.Location{})
	second := r.FindOrCreateIndexedIdentifier(base, 2, ast.TypeQubit, ast.Location{})
	if first != second {
		t.Error("FindOrCreateIndexedIdentifier built a new ref for a repeated subscript on the same base")
	}

	third := r.FindOrCreateIndexedIdentifier(base, 3, ast.TypeQubit, ast.Location{})
	if third == first {
		t.Error("FindOrCreateIndexedIdentifier reused a ref across different subscripts")
	}
}

func TestCloneRejectsNonInternedIdentifiers(t *testing.T) {
	r := New()
	heap := ast.NewIdentifier("x", 32, ast.TypeInt, ast.ScopeGlobal, nil, ast.Location{})

	if _, err := r.Clone(heap, ast.Location{}); err != ErrIllegalClone {
		t.Errorf("Clone(heap identifier) error = %v, want ErrIllegalClone", err)
	}
}

func TestCloneAcceptsInternedIdentifiers(t *testing.T) {
	tr := context.NewTracker()
	r := New()
	r.Seed(tr.Global(), symtab.New())
	pi := r.CreateIdentifier("pi", 64, ast.TypeAngle, tr.Current(), ast.Location{})

	clone, err := r.Clone(pi, ast.Location{})
	if err != nil {
		t.Fatalf("Clone(pi) error: %v", err)
	}
	if clone == pi {
		t.Error("Clone returned the same pointer instead of a copy")
	}
	if clone.Name != pi.Name {
		t.Errorf("clone.Name = %q, want %q", clone.Name, pi.Name)
	}
}

func TestRecognizeAngleSubtypeAcceptsAsciiAndGreekForms(t *testing.T) {
	tests := []struct {
		ascii, greek string
	}{
		{"theta", "θ"},
		{"phi", "φ"},
		{"lambda", "λ"},
	}
	for _, tt := range tests {
		a, ok := RecognizeAngleSubtype(tt.ascii)
		if !ok {
			t.Fatalf("RecognizeAngleSubtype(%q) not recognized", tt.ascii)
		}
		g, ok := RecognizeAngleSubtype(tt.greek)
		if !ok {
			t.Fatalf("RecognizeAngleSubtype(%q) not recognized", tt.greek)
		}
		if a != g {
			t.Errorf("%q and %q resolved to different subtypes: %v vs %v", tt.ascii, tt.greek, a, g)
		}
	}
}

func TestRecognizeAngleSubtypeRejectsUnknownName(t *testing.T) {
	if _, ok := RecognizeAngleSubtype("notagreekletter"); ok {
		t.Error("RecognizeAngleSubtype accepted a name that is not one of the 24 reserved subtypes")
	}
}

// Package identcache implements the static-data identifier registry: the
// process-wide singletons seeded at init (reserved angles pi/tau/euler and
// built-in gates U/CX/CCX; built-in type names are not seeded) plus the
// create_identifier / find_or_create_indexed_identifier factory pair
// (spec §4.3). Grounded on go-dws/internal/interp's global builtin-symbol
// table (seeded once, looked up by name across the whole run) generalized
// to this frontend's interned-vs-heap identifier distinction.
package identcache

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/context"
	"github.com/openqasm/qe-qasm-sub003/internal/symtab"
)

// ErrIllegalClone is returned by Clone when the target identifier is not
// one of the interned static-data singletons (spec §4.3: "Cloning an
// identifier is restricted to identifiers residing in the static-data
// singletons... Attempting to clone an arbitrary heap identifier fails
// with IllegalClone").
var ErrIllegalClone = fmt.Errorf("identcache: IllegalClone")

// greekAngleNames maps both the ASCII spelling and the UTF-8 Greek letter
// to the angle subtype it denotes (spec §4.3: "Twenty-four angle-subtype
// names are recognized by Greek letter (ASCII theta, phi, lambda, …, or
// UTF-8 θ, φ, λ)"). Greek letters are stored NFC-normalized so composed
// and decomposed input forms compare equal — the one piece of this
// frontend that genuinely needs a Unicode-aware string library rather
// than byte equality, which is why it is the one place identcache reaches
// for golang.org/x/text/unicode/norm.
var greekAngleNames = map[string]ast.AngleSubtype{
	"theta":   ast.AngleTheta,
	"θ":       ast.AngleTheta,
	"phi":     ast.AnglePhi,
	"φ":       ast.AnglePhi,
	"lambda":  ast.AngleLambda,
	"λ":       ast.AngleLambda,
	"pi":      ast.AnglePi,
	"π":       ast.AnglePi,
	"tau":     ast.AngleTau,
	"τ":       ast.AngleTau,
	"euler":   ast.AngleEuler,
	"ε":       ast.AngleEuler,
	"alpha":   ast.AngleAlpha,
	"α":       ast.AngleAlpha,
	"beta":    ast.AngleBeta,
	"β":       ast.AngleBeta,
	"gamma":   ast.AngleGamma,
	"γ":       ast.AngleGamma,
	"delta":   ast.AngleDelta,
	"δ":       ast.AngleDelta,
	"epsilon": ast.AngleEpsilon,
	"ζ":       ast.AngleZeta,
	"zeta":    ast.AngleZeta,
	"eta":     ast.AngleEta,
	"η":       ast.AngleEta,
	"iota":    ast.AngleIota,
	"ι":       ast.AngleIota,
	"kappa":   ast.AngleKappa,
	"κ":       ast.AngleKappa,
	"mu":      ast.AngleMu,
	"μ":       ast.AngleMu,
	"nu":      ast.AngleNu,
	"ν":       ast.AngleNu,
	"xi":      ast.AngleXi,
	"ξ":       ast.AngleXi,
	"omicron": ast.AngleOmicron,
	"ο":       ast.AngleOmicron,
	"rho":     ast.AngleRho,
	"ρ":       ast.AngleRho,
	"sigma":   ast.AngleSigma,
	"σ":       ast.AngleSigma,
	"upsilon": ast.AngleUpsilon,
	"υ":       ast.AngleUpsilon,
	"chi":     ast.AngleChi,
	"χ":       ast.AngleChi,
	"psi":     ast.AnglePsi,
	"ψ":       ast.AnglePsi,
	"omega":   ast.AngleOmega,
	"ω":       ast.AngleOmega,
}

// RecognizeAngleSubtype reports the reserved Greek-letter angle subtype a
// name denotes, normalizing to NFC first so a precomposed or decomposed
// UTF-8 spelling of the same letter matches identically.
func RecognizeAngleSubtype(name string) (ast.AngleSubtype, bool) {
	normalized := norm.NFC.String(strings.ToLower(name))
	sub, ok := greekAngleNames[normalized]
	return sub, ok
}

// Registry is the static-data singleton registry plus the
// create_identifier/find_or_create_indexed_identifier factory functions;
// the symbol table and context are passed in per call, not held.
type Registry struct {
	interned map[string]*ast.Identifier // keyed by "name/type/bits"
	seeded   bool
}

// New returns an empty Registry; call Seed once before use.
func New() *Registry {
	return &Registry{interned: make(map[string]*ast.Identifier)}
}

// Seed registers the reserved angle constants and built-in gate names in
// the Global context, matching spec §5's "init phase seeds them with
// reserved names like π, τ, euler and the built-in U / CX gates". Each
// singleton is both interned here (so CreateIdentifier/Clone return the
// shared instance) and registered into symbols with its fixed mp-decimal
// value and do_not_delete set, per spec §8 scenario 1 ("lookup of pi at
// global scope right after init returns an entry with type=angle,
// bits=64, value=mp-decimal π, do_not_delete=true").
func (r *Registry) Seed(global *context.Context, symbols *symtab.Table) {
	if r.seeded {
		return
	}
	r.seeded = true

	loc := ast.Location{}

	seedAngle := func(name string, sub ast.AngleSubtype, value *big.Float) {
		id := ast.NewIdentifier(name, 64, ast.TypeAngle, ast.ScopeGlobal, global, loc)
		id.MarkInterned()
		r.intern(id)
		literal := ast.NewAngleLiteral(value, 64, sub, loc)
		symbols.RegisterSingleton(id, literal, global)
	}
	seedAngle("pi", ast.AnglePi, big.NewFloat(3.14159265358979323846))
	seedAngle("tau", ast.AngleTau, big.NewFloat(6.28318530717958647693))
	seedAngle("euler", ast.AngleEuler, big.NewFloat(2.71828182845904523536))

	seedGate := func(name string, qubits int) {
		id := ast.NewIdentifier(name, 0, ast.TypeGateDeclaration, ast.ScopeGlobal, global, loc)
		id.MarkInterned()
		r.intern(id)
		decl := ast.NewGateDeclaration(id, nil, make([]ast.GateQubitParam, qubits), nil, loc)
		symbols.RegisterSingleton(id, decl, global)
	}
	seedGate("U", 1)
	seedGate("CX", 2)
	seedGate("CCX", 3)
}

func (r *Registry) key(name string, symType ast.AstType, bits int) string {
	return fmt.Sprintf("%s/%d/%d", name, symType, bits)
}

func (r *Registry) intern(id *ast.Identifier) {
	r.interned[r.key(id.Name, id.SymbolType, id.Bits)] = id
}

// CreateIdentifier returns the existing interned identifier matching
// (name, bits, type) if one exists; otherwise it builds and returns a new
// (non-interned, heap) identifier in ctx, per spec §4.3.
func (r *Registry) CreateIdentifier(name string, bits int, symType ast.AstType, ctx *context.Context, loc ast.Location) *ast.Identifier {
	if id, ok := r.interned[r.key(name, symType, bits)]; ok {
		return id
	}
	id := ast.NewIdentifier(name, bits, symType, ast.ScopeLocal, ctx, loc)
	ctx.Register(name)
	return id
}

// FindOrCreateIndexedIdentifier builds (or reuses, for a repeated
// subscript on the same base) the subscripted IdentifierRef naming
// base[index], per spec §4.3. The reference is recorded in
// base.References only; no symbol-table entry is created for it.
func (r *Registry) FindOrCreateIndexedIdentifier(base *ast.Identifier, numericIndex int, elemType ast.AstType, loc ast.Location) *ast.IdentifierRef {
	if ref, ok := base.References[numericIndex]; ok {
		return ref
	}
	ref := ast.NewIdentifierRef(base, numericIndex, elemType, loc)
	base.AddReference(numericIndex, ref)
	return ref
}

// Clone duplicates an interned identifier. Cloning any identifier that is
// not one of the static-data singletons is rejected with ErrIllegalClone.
func (r *Registry) Clone(id *ast.Identifier, loc ast.Location) (*ast.Identifier, error) {
	if !id.Interned() {
		return nil, ErrIllegalClone
	}
	clone := *id
	clone.SymbolTableEntry = nil
	clone.References = make(map[int]*ast.IdentifierRef)
	return &clone, nil
}

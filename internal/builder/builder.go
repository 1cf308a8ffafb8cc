// Package builder implements the frontend session façade (spec §4.8): the
// single entry point a driver (parser actions, or the demo in cmd/qasmfront)
// calls to build AST nodes correctly wired into the context tracker, symbol
// table, identifier registry, and mangler together, rather than juggling
// those four collaborators by hand at every call site.
//
// Grounded on go-dws/internal/interp's Interpreter struct, which bundles a
// parser, a symbol table, and a bytecode emitter behind one façade type so
// callers drive a single object end to end; generalized here to bundle the
// frontend's four semantic collaborators behind create_X factory methods
// that never panic. A registration failure is emitted as a diagnostic and
// returned as an error value; CreateGateDeclaration also attaches it to the
// returned declaration as a StatementError, while the other create_X
// methods return no tagged error node.
package builder

import (
	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/context"
	"github.com/openqasm/qe-qasm-sub003/internal/convert"
	"github.com/openqasm/qe-qasm-sub003/internal/diag"
	"github.com/openqasm/qe-qasm-sub003/internal/gate"
	"github.com/openqasm/qe-qasm-sub003/internal/identcache"
	"github.com/openqasm/qe-qasm-sub003/internal/mangle"
	"github.com/openqasm/qe-qasm-sub003/internal/symtab"
	"github.com/openqasm/qe-qasm-sub003/internal/validator"
)

// Session bundles one frontend run's context tracker, symbol table,
// identifier cache, converter, and validator, and exposes the create_X
// builder façade over them.
type Session struct {
	Contexts  *context.Tracker
	Symbols   *symtab.Table
	Idents    *identcache.Registry
	Emitter   diag.KindEmitter
	Convert   *convert.Converter
	Validate  *validator.Validator
}

// New returns a Session with a fresh Global context, an empty symbol
// table, and the static-data singletons seeded into Global.
func New(e diag.Emitter) *Session {
	contexts := context.NewTracker()
	symbols := symtab.New()
	idents := identcache.New()
	idents.Seed(contexts.Global(), symbols)

	return &Session{
		Contexts: contexts,
		Symbols:  symbols,
		Idents:   idents,
		Emitter:  diag.AsKindEmitter(e),
		Convert:  convert.New(e),
		Validate: validator.New(e, symbols),
	}
}

// CreateIdentifier allocates (or reuses an interned) identifier, registers
// it in the current context's symbol table, and mangles its name, per
// spec §4.8's "create_identifier: allocate, set context, register, mangle".
// On a registration failure it still returns the identifier (with
// SymbolTableEntry left unset) plus the *symtab.RegisterError so callers
// can emit a diagnostic and attach it to a StatementError node themselves.
// An interned singleton is returned as is, without a second registration:
// Seed already registered it.
func (s *Session) CreateIdentifier(name string, bits int, symType ast.AstType, loc ast.Location) (*ast.Identifier, error) {
	ctx := s.Contexts.Current()
	id := s.Idents.CreateIdentifier(name, bits, symType, ctx, loc)
	if id.Interned() {
		return id, nil
	}

	id.MangledName = mangle.MangleIdentifier(id, s.Contexts.InCalibrationContext())

	if _, err := s.Symbols.Register(id, ctx); err != nil {
		s.Emitter.EmitKind(registerErrorKind(err), loc, err.Error(), diag.Error)
		return id, err
	}
	return id, nil
}

func registerErrorKind(err error) diag.Kind {
	re, ok := err.(*symtab.RegisterError)
	if !ok {
		return diag.KindInternal
	}
	switch re.Kind {
	case symtab.ErrDuplicateDefinition:
		return diag.KindDuplicateDefinition
	case symtab.ErrRedeclaration:
		return diag.KindRedeclaration
	case symtab.ErrShadowsGlobal:
		return diag.KindShadowsGlobal
	default:
		return diag.KindInternal
	}
}

// CreateIndexedIdentifier builds (or reuses) the IdentifierRef naming
// base[numericIndex], per spec §4.8.
func (s *Session) CreateIndexedIdentifier(base *ast.Identifier, numericIndex int, elemType ast.AstType, loc ast.Location) *ast.IdentifierRef {
	return s.Idents.FindOrCreateIndexedIdentifier(base, numericIndex, elemType, loc)
}

// PushContext enters a new lexical scope of the given kind.
func (s *Session) PushContext(kind context.Kind) *context.Context {
	return s.Contexts.Push(kind)
}

// PopContext leaves the current lexical scope.
func (s *Session) PopContext() error {
	return s.Contexts.Pop()
}

// CreateGateDeclaration registers name as a gate (or rejects a redeclaration
// as a GateDeclaration carrying a StatementError, per spec §8 scenario 2)
// and returns the declaration node.
func (s *Session) CreateGateDeclaration(name string, angleParams []ast.GateAngleParam, qubitParams []ast.GateQubitParam, body ast.Statement, loc ast.Location) *ast.GateDeclaration {
	id, err := s.CreateIdentifier(name, 0, ast.TypeGateDeclaration, loc)
	if err == nil && id.Interned() {
		// A built-in gate name is already defined by Seed.
		err = &symtab.RegisterError{Kind: symtab.ErrShadowsGlobal, Name: name, Msg: "a definition already exists"}
		s.Emitter.EmitKind(diag.KindShadowsGlobal, loc, err.Error(), diag.Error)
	}
	decl := ast.NewGateDeclaration(id, angleParams, qubitParams, body, loc)
	if err != nil {
		decl.Err = ast.NewStatementError(err.Error(), decl, loc)
	}
	return decl
}

// CreateFunctionDeclaration registers name as a function and returns the
// declaration node.
func (s *Session) CreateFunctionDeclaration(name string, params []ast.Param, ret ast.AstType, body ast.Statement, loc ast.Location) (*ast.FunctionDeclaration, error) {
	id, err := s.CreateIdentifier(name, 0, ast.TypeFunctionDeclaration, loc)
	decl := ast.NewFunctionDeclaration(id, params, ret, body, loc)
	return decl, err
}

// CreateKernelDeclaration registers name as an externally-implemented
// kernel function.
func (s *Session) CreateKernelDeclaration(name string, params []ast.Param, ret ast.AstType, loc ast.Location) (*ast.KernelDeclaration, error) {
	id, err := s.CreateIdentifier(name, 0, ast.TypeKernelDeclaration, loc)
	decl := ast.NewKernelDeclaration(id, params, ret, loc)
	return decl, err
}

// CreateDefcalDeclaration registers a defcal specialization in its
// base-name group (spec §4.2: defcal groups collect specializations sharing
// a base name, keyed by mangled name).
func (s *Session) CreateDefcalDeclaration(baseName string, angleParams []ast.GateAngleParam, qubitParams []ast.GateQubitParam, body ast.Statement, loc ast.Location) (*ast.DefcalDeclaration, error) {
	id, err := s.CreateIdentifier(baseName, 0, ast.TypeDefcalDeclaration, loc)
	decl := ast.NewDefcalDeclaration(id, angleParams, qubitParams, body, loc)
	if entry, ok := id.SymbolTableEntry.(*symtab.Entry); ok {
		s.Symbols.RegisterDefcal(baseName, id.MangledName, entry)
	}
	return decl, err
}

// CastOrConvert builds either an explicit cast (spec §4.5) or, when
// isImplicit, an implicit conversion node, delegating legality to
// internal/convert.
func (s *Session) CastOrConvert(from ast.Expression, toType ast.AstType, bits int, isImplicit bool, loc ast.Location) ast.Expression {
	fromType := s.Validate.EffectiveType(from)
	if isImplicit {
		return s.Convert.Implicit(from, fromType, toType, bits, loc)
	}
	return s.Convert.Cast(from, fromType, toType, bits, loc)
}

// NewGateChain starts a modifier chain over a bare gate call, letting
// callers stack ctrl/negctrl/inv/pow/gphase through internal/gate while
// the session remains the one place that creates identifiers and checks
// types.
func (s *Session) NewGateChain(call *ast.GateCallExpr) *gate.Chain {
	return gate.NewChain(call)
}

// MangleCall produces the signature-shape mangled symbol for a gate's
// modifier chain: each wrapper contributes its own declaration token
// before the wrapped node's, so two chains applying the same modifiers in
// a different order (ctrl @ inv @ U vs. inv @ ctrl @ U) walk in different
// sequence and mangle to distinct strings (spec §4.6, §8 invariant 7).
func (s *Session) MangleCall(head ast.Node) string {
	m := mangle.New().Start(s.Contexts.InCalibrationContext())
	gate.Walk(head, func(n ast.Node) {
		switch gc := n.(type) {
		case *ast.GateControl:
			m.DeclToken(ast.TypeGateControl)
		case *ast.GateNegControl:
			m.DeclToken(ast.TypeGateNegControl)
		case *ast.GateInverse:
			m.DeclToken(ast.TypeGateInverse)
		case *ast.GatePower:
			m.DeclToken(ast.TypeGatePower)
		case *ast.GPhaseExpression:
			m.DeclToken(ast.TypeGPhaseExpression)
		case *ast.GateCallExpr:
			m.CallStart().Identifier(gc.Callee.SymbolType, gc.Callee.Bits, gc.Callee.Name).CallEnd()
		}
	})
	return m.End().String()
}

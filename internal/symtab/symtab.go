// Package symtab implements the symbol table and declaration-context-aware
// registration rules: one global map, one local map per context, and the
// specialized sub-tables for gates, defcals, qubits, and angles. The
// scoping shape follows go-dws/internal/semantic.SymbolTable's outer-chain
// lookup, generalized so contexts are tracked by identity (internal/context)
// rather than by a single parent pointer per table.
package symtab

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/context"
)

// ErrKind distinguishes the name-resolution error taxonomy named in spec §7.
type ErrKind string

const (
	ErrDuplicateDefinition ErrKind = "DuplicateDefinition"
	ErrRedeclaration       ErrKind = "Redeclaration"
	ErrShadowsGlobal       ErrKind = "ShadowsGlobal"
	ErrUnknownIdentifier   ErrKind = "UnknownIdentifier"
	ErrOutOfScope          ErrKind = "OutOfScope"
	ErrAssignmentToReserved ErrKind = "AssignmentToReserved"
)

// RegisterError reports why register() rejected an identifier.
type RegisterError struct {
	Kind ErrKind
	Name string
	Msg  string
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("symtab: %s %q: %s", e.Kind, e.Name, e.Msg)
}

// ErrEntryNotFound is returned by lookups that find nothing.
var ErrEntryNotFound = errors.New("symtab: entry not found")

// Entry is one symbol-table row: `{identifier, value_type, value, scope,
// context, do_not_delete}` (spec §3). Value is a tagged union over every
// node kind in the original frontend; here it is simply the ast.Node the
// entry currently wraps, since ast.Node is already the closed-tag
// interface every node kind satisfies.
type Entry struct {
	Identifier *ast.Identifier
	ValueType  ast.AstType
	Value      ast.Node
	Scope      ast.SymbolScope
	Context    *context.Context

	// DoNotDelete protects reserved angles (π, τ, euler) and built-in
	// gates (U, CX, CCX) from EraseLocal / replacement — a supplemented
	// feature not named by the distilled spec but present throughout the
	// original C++ symbol table (ASTSymbolTable::do_not_delete entries for
	// static-data singletons).
	DoNotDelete bool
}

// DefcalGroup collects every specialization sharing a base defcal name
// (spec §4.2: "a defcal group collects all specializations sharing a base
// name"), keyed by each specialization's mangled name.
type DefcalGroup struct {
	Name            string
	specializations map[string]*Entry
}

// Specializations returns every entry in the group, sorted by mangled
// name.
func (g *DefcalGroup) Specializations() []*Entry {
	names := make([]string, 0, len(g.specializations))
	for n := range g.specializations {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Entry, 0, len(names))
	for _, n := range names {
		out = append(out, g.specializations[n])
	}
	return out
}

// angleKey distinguishes angle-typed entries by (name, bits): spec §4.2.1
// rule 4, "an angle with the same name but different bit-width is a
// distinct symbol".
type angleKey struct {
	name string
	bits int
}

// Table is the symbol table for one frontend session. Zero value is not
// usable; construct with New.
type Table struct {
	global map[string]*Entry
	local  map[int]map[string]*Entry // context index -> name -> entry

	gates   map[string]*Entry
	defcals map[string]*DefcalGroup
	qubits  map[string]*Entry
	angles  map[angleKey]*Entry

	collator *collate.Collator
}

// New returns an empty Table ready for registration.
func New() *Table {
	return &Table{
		global:   make(map[string]*Entry),
		local:    make(map[int]map[string]*Entry),
		gates:    make(map[string]*Entry),
		defcals:  make(map[string]*DefcalGroup),
		qubits:   make(map[string]*Entry),
		angles:   make(map[angleKey]*Entry),
		collator: collate.New(language.Und),
	}
}

func (t *Table) localMap(ctx *context.Context) map[string]*Entry {
	m, ok := t.local[ctx.Index]
	if !ok {
		m = make(map[string]*Entry)
		t.local[ctx.Index] = m
	}
	return m
}

// Register inserts id into the table under ctx, applying the
// redeclaration rules of spec §4.2.1. On success it sets
// id.SymbolTableEntry to the new Entry (spec invariant 2: "e.identifier.
// symbol_table_entry == e") and returns the entry.
func (t *Table) Register(id *ast.Identifier, ctx *context.Context) (*Entry, error) {
	name := id.Name
	admitsRedeclaration := !neverRedeclares(id.SymbolType)

	// Rule 3: gates, functions, defcals, qubits never redeclare — a
	// second definition anywhere is ShadowsGlobal.
	if neverRedeclares(id.SymbolType) {
		if existing := t.findNoScope(id.SymbolType, name); existing != nil {
			return nil, &RegisterError{Kind: ErrShadowsGlobal, Name: name, Msg: "a definition already exists"}
		}
	}

	// Rule 4: angles are keyed by (name, bits); same width is a duplicate.
	if id.SymbolType == ast.TypeAngle {
		key := angleKey{name: name, bits: id.Bits}
		if _, ok := t.angles[key]; ok {
			return nil, &RegisterError{Kind: ErrDuplicateDefinition, Name: name, Msg: "angle of this width already declared"}
		}
	}

	local := t.localMap(ctx)

	// Rule 2: a prior entry in the exact same context is a hard error,
	// except an angle of another width, which rule 4 makes a distinct
	// symbol (the name maps then hold the newest width; FindAngle reaches
	// each one).
	if prior, ok := local[name]; ok {
		otherWidthAngle := id.SymbolType == ast.TypeAngle && prior.ValueType == ast.TypeAngle && prior.Identifier.Bits != id.Bits
		if !otherWidthAngle {
			return nil, &RegisterError{Kind: ErrRedeclaration, Name: name, Msg: "already declared in this context"}
		}
	}

	// Rule 1: a prior entry at a dominating (ancestor) context shadows,
	// when the type admits it.
	if ctx.Kind != context.KindGlobal {
		if prior := t.findInAncestors(ctx, name); prior != nil && admitsRedeclaration {
			id.Predecessor = prior.Identifier
			id.IsRedeclaration = true
		}
	}

	entry := &Entry{Identifier: id, ValueType: id.SymbolType, Scope: id.SymbolScope, Context: ctx}
	id.SymbolTableEntry = entry

	local[name] = entry
	if ctx.Kind == context.KindGlobal {
		t.global[name] = entry
	}

	switch {
	case ast.IsQubitType(id.SymbolType):
		t.qubits[name] = entry
	case id.SymbolType == ast.TypeAngle:
		t.angles[angleKey{name: name, bits: id.Bits}] = entry
	case id.SymbolType == ast.TypeGateDeclaration:
		t.gates[name] = entry
	}

	return entry, nil
}

// RegisterSingleton inserts a process-wide static-data singleton (a
// reserved angle constant or a built-in gate) directly into ctx's local
// map and the global map, bypassing the ordinary redeclaration rules
// since these are seeded exactly once at init, and marks the entry
// DoNotDelete so EraseLocal refuses to remove it (spec §4.3 "init phase
// seeds them with reserved names like π, τ, euler and the built-in
// U / CX gates"; SPEC_FULL supplemented feature #1).
func (t *Table) RegisterSingleton(id *ast.Identifier, value ast.Node, ctx *context.Context) *Entry {
	name := id.Name
	entry := &Entry{
		Identifier:  id,
		ValueType:   id.SymbolType,
		Value:       value,
		Scope:       id.SymbolScope,
		Context:     ctx,
		DoNotDelete: true,
	}
	id.SymbolTableEntry = entry

	t.localMap(ctx)[name] = entry
	t.global[name] = entry

	switch {
	case ast.IsQubitType(id.SymbolType):
		t.qubits[name] = entry
	case id.SymbolType == ast.TypeAngle:
		t.angles[angleKey{name: name, bits: id.Bits}] = entry
	case id.SymbolType == ast.TypeGateDeclaration:
		t.gates[name] = entry
	}
	return entry
}

// RegisterDefcal adds a specialization entry to the named defcal group,
// creating the group if it does not yet exist.
func (t *Table) RegisterDefcal(groupName, mangledName string, entry *Entry) {
	g, ok := t.defcals[groupName]
	if !ok {
		g = &DefcalGroup{Name: groupName, specializations: make(map[string]*Entry)}
		t.defcals[groupName] = g
	}
	g.specializations[mangledName] = entry
}

func neverRedeclares(t ast.AstType) bool {
	switch t {
	case ast.TypeGateDeclaration, ast.TypeFunctionDeclaration, ast.TypeDefcalDeclaration:
		return true
	default:
		return ast.IsQubitType(t)
	}
}

func (t *Table) findNoScope(symType ast.AstType, name string) *Entry {
	switch {
	case ast.IsQubitType(symType):
		return t.qubits[name]
	case symType == ast.TypeGateDeclaration:
		return t.gates[name]
	default:
		return t.global[name]
	}
}

func (t *Table) findInAncestors(ctx *context.Context, name string) *Entry {
	for cur := ctx; cur != nil; cur = cur.Parent {
		if m, ok := t.local[cur.Index]; ok {
			if e, ok := m[name]; ok {
				return e
			}
		}
	}
	return nil
}

// Lookup searches ctx's context upward to Global for name, matching spec
// §4.1's "Symbol-table lookups are ordered by context stack from innermost
// to Global" ordering guarantee.
func (t *Table) Lookup(ctx *context.Context, name string) (*Entry, bool) {
	e := t.findInAncestors(ctx, name)
	return e, e != nil
}

// LookupGlobal searches only the global map.
func (t *Table) LookupGlobal(name string) (*Entry, bool) {
	e, ok := t.global[name]
	return e, ok
}

// LookupLocal searches only ctx's own local map, not its ancestors.
func (t *Table) LookupLocal(ctx *context.Context, name string) (*Entry, bool) {
	e, ok := t.localMap(ctx)[name]
	return e, ok
}

// FindQubit looks up a registered qubit/qubit-container by name.
func (t *Table) FindQubit(name string) (*Entry, bool) {
	e, ok := t.qubits[name]
	return e, ok
}

// FindAngle looks up a registered angle by (name, bits).
func (t *Table) FindAngle(name string, bits int) (*Entry, bool) {
	e, ok := t.angles[angleKey{name: name, bits: bits}]
	return e, ok
}

// FindGate looks up a registered gate declaration by name.
func (t *Table) FindGate(name string) (*Entry, bool) {
	e, ok := t.gates[name]
	return e, ok
}

// FindDefcal looks up a defcal group by base name.
func (t *Table) FindDefcal(name string) (*DefcalGroup, bool) {
	g, ok := t.defcals[name]
	return g, ok
}

// EraseLocal removes name from ctx's local map, used when a definition
// moves to a nested context (spec §4.2 "erase_local"). It refuses to
// remove DoNotDelete entries.
func (t *Table) EraseLocal(ctx *context.Context, name string) error {
	m := t.localMap(ctx)
	e, ok := m[name]
	if !ok {
		return ErrEntryNotFound
	}
	if e.DoNotDelete {
		return fmt.Errorf("symtab: %q is protected from deletion", name)
	}
	delete(m, name)
	return nil
}

// SortedNames returns every name registered in ctx's local map, collated
// using a locale-aware ordering (grounded on go-dws's use of
// golang.org/x/text/collate for natural-order string comparison) so
// diagnostic/debug dumps are deterministic and human-sensible rather than
// dependent on Go's raw byte ordering for names containing Unicode
// (Greek-letter angle subtypes, combining marks after NFC normalization).
func (t *Table) SortedNames(ctx *context.Context) []string {
	m := t.localMap(ctx)
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	t.collator.SortStrings(names)
	return names
}

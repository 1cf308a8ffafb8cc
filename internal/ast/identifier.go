package ast

import (
	"strconv"
	"strings"

	"github.com/openqasm/qe-qasm-sub003/internal/context"
)

// SymbolScope classifies where an identifier was declared, per spec §3.
type SymbolScope int

const (
	ScopeGlobal SymbolScope = iota
	ScopeLocal
	ScopeExtern
)

func (s SymbolScope) String() string {
	switch s {
	case ScopeGlobal:
		return "Global"
	case ScopeLocal:
		return "Local"
	case ScopeExtern:
		return "Extern"
	default:
		return "Unknown"
	}
}

// computedKind discriminates the union described in spec §3: "evaluation_type
// + union {binary_op | unary_op} for identifiers that refer to a computed
// value". Go has no true union, so Identifier carries a kind tag plus two
// nilable fields, with the invariant that at most one is non-nil and it
// matches Kind.
type computedKind int

const (
	computedNone computedKind = iota
	computedBinaryOp
	computedUnaryOp
)

// Identifier is the central entity of the data model (spec §3). It is
// itself an Expression so it can appear directly in expression position
// (a bare name reference), following go-dws/internal/ast.Identifier's
// shape (Token + Value + Type) generalized with the richer field set the
// spec requires (mangled/polymorphic names, scope, indexing, shadowing).
type Identifier struct {
	baseNode

	Name                string
	MangledName         string
	MangledLiteralName  string
	PolymorphicName     string

	Bits int

	SymbolType     AstType
	PolymorphicType AstType
	SymbolScope    SymbolScope

	DeclarationContext *context.Context

	// SymbolTableEntry is a weak back-pointer to the symtab.Entry that owns
	// this identifier. It is typed as `any` to avoid a package cycle
	// (symtab depends on ast, not the reverse); callers type-assert to
	// their own entry type. The table, not the identifier, owns the entry.
	SymbolTableEntry any

	IsIndexed       bool
	NumericIndex    int
	HasNumericIndex bool
	IndexIdentifier string

	computedKind computedKind
	EvaluationType AstType
	BinaryOp       *BinaryOpExpr
	UnaryOp        *UnaryOpExpr

	Predecessor     *Identifier
	IsRedeclaration bool

	IsInductionVariable bool
	IsGateLocal         bool
	IsNoQubit           bool
	IsComplexPart       bool

	// IsConst marks a const-declared scalar entity, checked by
	// CanBeAssignedTo. Array const-ness is deliberately not modeled here;
	// see the open-question note on that lvalue check.
	IsConst bool

	References map[int]*IdentifierRef

	// interned marks identifiers living in the static-data singleton
	// registry (the reserved angles and built-in gates that
	// identcache.Seed plants). Only these may be
	// cloned; see spec §4.3 "Cloning an identifier is restricted...".
	interned bool
}

func (i *Identifier) expressionNode() {}

func (i *Identifier) String() string { return i.Name }

// NewIdentifier constructs an Identifier and parses any trailing
// "[index]" syntax out of name, exactly as the original frontend's
// ASTIdentifierNode constructor does (SetIndexIdentifier/SetNumericIndex).
func NewIdentifier(name string, bits int, symType AstType, scope SymbolScope, ctx *context.Context, loc Location) *Identifier {
	id := &Identifier{
		baseNode:        baseNode{Type: TypeIdentifier, Loc: loc},
		Name:            name,
		PolymorphicName: name,
		Bits:            bits,
		SymbolType:      symType,
		PolymorphicType: TypeUndefined,
		SymbolScope:     scope,
		DeclarationContext: ctx,
		EvaluationType:  TypeUndefined,
		References:      make(map[int]*IdentifierRef),
	}
	id.parseIndexSyntax()
	return id
}

func (i *Identifier) parseIndexSyntax() {
	lb := strings.LastIndexByte(i.Name, '[')
	rb := strings.LastIndexByte(i.Name, ']')
	if lb < 0 || rb < 0 || rb < lb {
		return
	}
	inner := i.Name[lb+1 : rb]
	if inner == "" {
		return
	}
	i.IsIndexed = true
	if n, err := strconv.Atoi(inner); err == nil {
		i.NumericIndex = n
		i.HasNumericIndex = true
	} else {
		i.IndexIdentifier = inner
	}
}

// SetBinaryOp retypes the identifier as referring to a computed binary-op
// value (spec §3's union). Setting one clears the other.
func (i *Identifier) SetBinaryOp(b *BinaryOpExpr) {
	i.computedKind = computedBinaryOp
	i.BinaryOp = b
	i.UnaryOp = nil
}

// SetUnaryOp is the unary-op analogue of SetBinaryOp.
func (i *Identifier) SetUnaryOp(u *UnaryOpExpr) {
	i.computedKind = computedUnaryOp
	i.UnaryOp = u
	i.BinaryOp = nil
}

// IsComputed reports whether this identifier refers to a computed value
// rather than a plain declaration.
func (i *Identifier) IsComputed() bool { return i.computedKind != computedNone }

// Interned reports whether this identifier lives in the static-data
// singleton registry and may therefore be cloned (spec §4.3).
func (i *Identifier) Interned() bool { return i.interned }

// MarkInterned is called only by the identifier registry (internal/identcache)
// when seeding the static-data singletons at init.
func (i *Identifier) MarkInterned() { i.interned = true }

// AddReference records a use-site reference to this identifier, keyed by
// reference index (spec §3 "references: mapping from reference-index to
// an IdentifierRef").
func (i *Identifier) AddReference(index int, ref *IdentifierRef) {
	if i.References == nil {
		i.References = make(map[int]*IdentifierRef)
	}
	i.References[index] = ref
}

// IdentifierRef is an identifier-with-subscript: a use of an array,
// bitset, or angle-component element. Its ReferenceType is computed once
// from the base identifier's array/element type and the subscript chain
// (spec §3 "IdentifierRef").
type IdentifierRef struct {
	baseNode

	Base  *Identifier
	Index Expression // nil for a plain (non-computed) numeric index

	NumericIndex    int
	HasNumericIndex bool

	ReferenceType AstType
}

func (r *IdentifierRef) expressionNode() {}

func (r *IdentifierRef) String() string {
	if r.HasNumericIndex {
		return r.Base.Name + "[" + strconv.Itoa(r.NumericIndex) + "]"
	}
	if r.Index != nil {
		return r.Base.Name + "[" + r.Index.String() + "]"
	}
	return r.Base.Name + "[]"
}

// NewIdentifierRef builds a subscripted reference with a literal numeric
// index and resolves ReferenceType from the element type of the array
// being indexed (the caller supplies the element type: computing it from
// an arbitrary array node is the builder's job, not the ref's).
func NewIdentifierRef(base *Identifier, numericIndex int, elemType AstType, loc Location) *IdentifierRef {
	return &IdentifierRef{
		baseNode:        baseNode{Type: TypeIdentifierRef, Loc: loc},
		Base:            base,
		NumericIndex:    numericIndex,
		HasNumericIndex: true,
		ReferenceType:   elemType,
	}
}

// NewIdentifierRefExpr builds a subscripted reference whose index is a
// general expression (not a literal), e.g. `a[i]`.
func NewIdentifierRefExpr(base *Identifier, index Expression, elemType AstType, loc Location) *IdentifierRef {
	return &IdentifierRef{
		baseNode:      baseNode{Type: TypeIdentifierRef, Loc: loc},
		Base:          base,
		Index:         index,
		ReferenceType: elemType,
	}
}

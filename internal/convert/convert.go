// Package convert implements the cast and implicit-conversion machinery of
// spec §4.5: the legal-conversion matrix and the constructors that either
// build a converted-value node or a tagged bad-cast/bad-implicit-conversion
// node carrying a diagnostic. Grounded on original_source's
// ASTCastExpr.cpp, which dispatches per from-type through a
// CastTo{Bool,Int,Float,...} switch; the matrix itself is encoded here as
// a table rather than a type switch per conversion pair, since (per spec
// invariant 4) legality is "a constant function of (T, U) alone".
package convert

import (
	"fmt"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/diag"
	"github.com/openqasm/qe-qasm-sub003/internal/mangle"
)

// category buckets AstType into the matrix's row/column classes (spec
// §4.5's table header: bool, int/uint, float/double, mp-int, mp-dec,
// mp-complex, bitset, angle).
type category int

const (
	catBool category = iota
	catInt
	catFloat
	catMPInt
	catMPDec
	catMPComplex
	catBitset
	catAngle
	catNone
)

func classify(t ast.AstType) category {
	switch t {
	case ast.TypeBool:
		return catBool
	case ast.TypeInt, ast.TypeUInt:
		return catInt
	case ast.TypeFloat, ast.TypeDouble, ast.TypeLongDouble:
		return catFloat
	case ast.TypeMPInteger, ast.TypeMPUInteger:
		return catMPInt
	case ast.TypeMPDecimal:
		return catMPDec
	case ast.TypeMPComplex:
		return catMPComplex
	case ast.TypeBitset:
		return catBitset
	case ast.TypeAngle:
		return catAngle
	default:
		return catNone
	}
}

// legalMatrix encodes spec §4.5's table verbatim: legalMatrix[from][to].
var legalMatrix = map[category]map[category]bool{
	catBool: {catBool: true, catInt: true, catFloat: true, catMPInt: true, catMPDec: true, catBitset: true, catAngle: true},
	catInt:  {catBool: true, catInt: true, catFloat: true, catMPInt: true, catMPDec: true, catBitset: true, catAngle: true},
	catFloat: {catBool: true, catInt: true, catFloat: true, catMPInt: true, catMPDec: true, catMPComplex: true, catBitset: true, catAngle: true},
	catMPInt: {catBool: true, catInt: true, catFloat: true, catMPInt: true, catMPDec: true, catBitset: true, catAngle: true},
	catMPDec: {catBool: true, catInt: true, catFloat: true, catMPInt: true, catMPDec: true, catMPComplex: true, catBitset: true, catAngle: true},
	catMPComplex: {catMPComplex: true},
	catBitset: {catBool: true, catInt: true, catFloat: true, catMPInt: true, catMPDec: true, catBitset: true, catAngle: true},
	catAngle: {catInt: true, catFloat: true, catBitset: true, catAngle: true},
}

// IsLegalConversion reports whether from may convert to to, per the
// matrix alone (spec invariant 4: depends only on the type pair).
//
// Binary-op/unary-op sources are expected to already be resolved to their
// evaluated type by the caller (internal/validator.EffectiveType) before
// reaching here; likewise the frame/complex pseudo-field accessors
// (frame.phase, frame.freq, complex.creal, complex.cimag) are resolved to
// angle/mp-dec via AccessorResultType before a matrix lookup, per spec
// §4.5's "identifier (frame.phase / ...) | treat as angle / mp-dec / ..."
// row.
func IsLegalConversion(from, to ast.AstType) bool {
	row, ok := legalMatrix[classify(from)]
	if !ok {
		return false
	}
	return row[classify(to)]
}

// AccessorKind names the frame/complex pseudo-field accessors spec §4.5
// calls out as a special source-type row.
type AccessorKind int

const (
	AccessorFramePhase AccessorKind = iota
	AccessorFrameFreq
	AccessorComplexReal
	AccessorComplexImag
)

// AccessorResultType returns the type the matrix treats an accessor as
// originating from.
func AccessorResultType(a AccessorKind) ast.AstType {
	switch a {
	case AccessorFramePhase:
		return ast.TypeAngle
	case AccessorFrameFreq, AccessorComplexReal, AccessorComplexImag:
		return ast.TypeMPDecimal
	default:
		return ast.TypeUndefined
	}
}

// Converter builds cast and implicit-conversion nodes, emitting
// diagnostics through e when a conversion is illegal.
type Converter struct {
	emitter diag.KindEmitter
}

// New returns a Converter reporting through e.
func New(e diag.Emitter) *Converter {
	return &Converter{emitter: diag.AsKindEmitter(e)}
}

// Cast builds an explicit cast node for from_expr→to_type (as the parser
// does for a written cast expression). An illegal combination yields a
// BadCast node instead, per spec §4.5.
func (c *Converter) Cast(from ast.Expression, fromType, toType ast.AstType, bits int, loc ast.Location) ast.Expression {
	if !IsLegalConversion(fromType, toType) {
		msg := fmt.Sprintf("no legal cast from %s to %s", fromType, toType)
		c.emitter.EmitKind(diag.KindBadCast, loc, msg, diag.Error)
		return ast.NewBadCast(fromType, toType, from, msg, loc)
	}
	node := ast.NewCastExpr(from, fromType, toType, bits, loc)
	node.MangledName = mangle.New().Start(false).Cast(fromType, toType, exprBits(from, fromType), bits).String()
	return node
}

// Implicit builds an implicit-conversion node wherever the validator needs
// one (argument passing, return values, assignments, operator coercion).
// An illegal combination yields a BadImplicitConversion node.
func (c *Converter) Implicit(from ast.Expression, fromType, toType ast.AstType, bits int, loc ast.Location) ast.Expression {
	if fromType == toType {
		return from
	}
	if !IsLegalConversion(fromType, toType) {
		msg := fmt.Sprintf("cannot implicitly convert %s to %s", fromType, toType)
		c.emitter.EmitKind(diag.KindBadImplicitConversion, loc, msg, diag.Error)
		return ast.NewBadImplicitConversion(fromType, toType, from, msg, loc)
	}
	node := ast.NewImplicitConversionExpr(from, fromType, toType, bits, loc)
	node.MangledName = mangle.New().Start(false).ImplicitConversion(fromType, toType, exprBits(from, fromType), bits).String()
	return node
}

// exprBits recovers the bit width of from's own literal type for the
// conversion-mangling token (spec §8 scenario 3: the implicit conversion
// of "angle[32] a = 0.5;" mangles the source float's width, not just the
// target angle's). Literals that carry no explicit Bits field (bool,
// float, double, long double, string, cbit) fall back to the type's
// natural default width.
func exprBits(from ast.Expression, fromType ast.AstType) int {
	switch n := from.(type) {
	case *ast.IntLiteral:
		return n.Bits
	case *ast.MPIntegerLiteral:
		return n.Bits
	case *ast.MPDecimalLiteral:
		return n.Bits
	case *ast.MPComplexLiteral:
		return n.Bits
	case *ast.AngleLiteral:
		return n.Bits
	}
	return defaultBits(fromType)
}

// defaultBits gives the natural bit width for a type whose literal node
// carries none explicitly, per original_source's fixed-width float/double
// representation.
func defaultBits(t ast.AstType) int {
	switch t {
	case ast.TypeFloat:
		return 32
	case ast.TypeDouble:
		return 64
	case ast.TypeLongDouble:
		return 128
	case ast.TypeInt, ast.TypeUInt:
		return 32
	case ast.TypeBool:
		return 1
	default:
		return 0
	}
}

// Package validator implements the expression validator/evaluator (spec
// §4.4): the sole place that assigns or checks types for expression nodes
// and emits type-error diagnostics. Grounded on go-dws/internal/semantic's
// type-checking visitor (one function per node kind, emitting through a
// shared diagnostic sink) generalized to this frontend's operator-legality
// tables and lvalue rules.
package validator

import (
	"fmt"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/diag"
	"github.com/openqasm/qe-qasm-sub003/internal/symtab"
)

// Validator resolves and checks the static type of expression nodes,
// emitting diagnostics through e and consulting table for identifier
// types.
type Validator struct {
	emitter diag.KindEmitter
	table   *symtab.Table
}

// New returns a Validator reporting through e and resolving identifiers
// through table.
func New(e diag.Emitter, table *symtab.Table) *Validator {
	return &Validator{emitter: diag.AsKindEmitter(e), table: table}
}

// EffectiveType resolves the effective static type of expr (spec §4.4
// step 1): identifiers consult the symbol table, operator/operand
// wrappers unwrap, casts use their `to` type, and binary/unary ops
// recurse.
func (v *Validator) EffectiveType(expr ast.Expression) ast.AstType {
	switch n := expr.(type) {
	case *ast.Identifier:
		if n.IsComputed() {
			if n.BinaryOp != nil {
				return v.EffectiveType(n.BinaryOp)
			}
			if n.UnaryOp != nil {
				return v.EffectiveType(n.UnaryOp)
			}
		}
		return n.SymbolType
	case *ast.IdentifierRef:
		return n.ReferenceType
	case *ast.OperatorNode:
		return v.EffectiveType(n.Target)
	case *ast.OperandNode:
		return v.EffectiveType(n.Value)
	case *ast.CastExpr:
		return n.ToType
	case *ast.ImplicitConversionExpr:
		return n.ToType
	case *ast.BinaryOpExpr:
		return n.ResultType
	case *ast.UnaryOpExpr:
		return n.ResultType
	case *ast.BoolLiteral:
		return ast.TypeBool
	case *ast.IntLiteral:
		return ast.TypeInt
	case *ast.FloatLiteral:
		return ast.TypeFloat
	case *ast.DoubleLiteral:
		return ast.TypeDouble
	case *ast.LongDoubleLiteral:
		return ast.TypeLongDouble
	case *ast.StringLiteral:
		return ast.TypeStringType
	case *ast.MPIntegerLiteral:
		return ast.TypeMPInteger
	case *ast.MPDecimalLiteral:
		return ast.TypeMPDecimal
	case *ast.MPComplexLiteral:
		return ast.TypeMPComplex
	case *ast.AngleLiteral:
		return ast.TypeAngle
	case *ast.CBitLiteral:
		return ast.TypeBitset
	case *ast.FunctionCallExpr:
		return n.ResultType
	case *ast.KernelCallExpr:
		return n.ResultType
	default:
		return ast.TypeUndefined
	}
}

// numericTypes participates in logical (&&/||) and the numeric side of
// comparisons.
var numericTypes = map[ast.AstType]bool{
	ast.TypeBool: true, ast.TypeInt: true, ast.TypeUInt: true,
	ast.TypeFloat: true, ast.TypeDouble: true, ast.TypeLongDouble: true,
	ast.TypeMPInteger: true, ast.TypeMPUInteger: true, ast.TypeMPDecimal: true,
	ast.TypeAngle: true, ast.TypeBitset: true,
}

// ValidateBinaryOp types l op r per spec §4.4 step 2, recording the
// result type on b when legal or rewriting its ResultType to the
// error-type sentinel and emitting TypeMismatch when not.
func (v *Validator) ValidateBinaryOp(b *ast.BinaryOpExpr) ast.AstType {
	lt := v.EffectiveType(b.Left)
	rt := v.EffectiveType(b.Right)

	result, ok := v.legalBinary(b.Op, lt, rt)
	if !ok {
		v.emitter.EmitKind(diag.KindTypeMismatch, b.Pos(),
			fmt.Sprintf("operator %s not legal between %s and %s", b.Op, lt, rt), diag.Error)
		b.ResultType = ast.TypeExpressionError
		return b.ResultType
	}
	b.ResultType = result
	return result
}

func (v *Validator) legalBinary(op ast.Op, lt, rt ast.AstType) (ast.AstType, bool) {
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		return v.arithmeticResult(lt, rt)
	case ast.OpMod:
		if ast.IsIntegerType(lt) && ast.IsIntegerType(rt) {
			return widerOf(lt, rt), true
		}
		return ast.TypeUndefined, false
	case ast.OpPow:
		return v.powResult(lt, rt)
	case ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		if numericTypes[lt] && numericTypes[rt] {
			return ast.TypeBool, true
		}
		if lt == rt {
			return ast.TypeBool, true
		}
		return ast.TypeUndefined, false
	case ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor, ast.OpShl, ast.OpShr:
		if ast.IsIntegerType(lt) && ast.IsIntegerType(rt) {
			return widerOf(lt, rt), true
		}
		// angle-on-integer is permitted with a soft warning (spec §4.4
		// step 2, bitwise row) rather than rejected outright.
		if (lt == ast.TypeAngle && ast.IsIntegerType(rt)) || (rt == ast.TypeAngle && ast.IsIntegerType(lt)) {
			v.emitter.EmitKind(diag.KindAngleBitwiseWarning, ast.Location{},
				"bitwise operator applied to an angle operand", diag.Warning)
			return ast.TypeAngle, true
		}
		return ast.TypeUndefined, false
	case ast.OpAnd, ast.OpOr:
		if numericTypes[lt] && numericTypes[rt] {
			return ast.TypeBool, true
		}
		return ast.TypeUndefined, false
	case ast.OpAssign:
		return v.assignResult(lt, rt)
	default:
		return ast.TypeUndefined, false
	}
}

func (v *Validator) arithmeticResult(lt, rt ast.AstType) (ast.AstType, bool) {
	if lt == ast.TypeMPComplex || rt == ast.TypeMPComplex {
		if (lt == ast.TypeMPComplex || numericTypes[lt]) && (rt == ast.TypeMPComplex || numericTypes[rt]) {
			return ast.TypeMPComplex, true
		}
		return ast.TypeUndefined, false
	}
	if lt == ast.TypeAngle || rt == ast.TypeAngle {
		if (lt == ast.TypeAngle || numericTypes[lt]) && (rt == ast.TypeAngle || numericTypes[rt]) {
			return ast.TypeAngle, true
		}
		return ast.TypeUndefined, false
	}
	if numericTypes[lt] && numericTypes[rt] {
		return widerOf(lt, rt), true
	}
	return ast.TypeUndefined, false
}

func (v *Validator) powResult(lt, rt ast.AstType) (ast.AstType, bool) {
	if ast.IsIntegerType(lt) && ast.IsIntegerType(rt) {
		return widerOf(lt, rt), true
	}
	if isFloatLike(lt) && isFloatLike(rt) {
		return widerOf(lt, rt), true
	}
	if lt == ast.TypeMPComplex && rt == ast.TypeMPComplex {
		return ast.TypeMPComplex, true
	}
	if numericTypes[lt] && numericTypes[rt] {
		return widerOf(lt, rt), true
	}
	return ast.TypeUndefined, false
}

func (v *Validator) assignResult(lt, rt ast.AstType) (ast.AstType, bool) {
	if !ast.IsAssignable(lt) || ast.IsQubitType(lt) {
		return ast.TypeUndefined, false
	}
	switch {
	case ast.IsIntegerType(lt):
		if ast.IsIntegerType(rt) || isFloatLike(rt) {
			return lt, true
		}
	case lt == ast.TypeMPComplex:
		if rt == ast.TypeMPComplex || numericTypes[rt] {
			return lt, true
		}
	case lt == ast.TypeAngle:
		if rt == ast.TypeAngle || numericTypes[rt] {
			return lt, true
		}
	default:
		if lt == rt || numericTypes[lt] && numericTypes[rt] {
			return lt, true
		}
	}
	return ast.TypeUndefined, false
}

func isFloatLike(t ast.AstType) bool {
	return t == ast.TypeFloat || t == ast.TypeDouble || t == ast.TypeLongDouble || t == ast.TypeMPDecimal
}

// widerOf returns the wider/common of two numeric types, preferring
// higher-precision kinds; falls back to lt when no clear ordering applies
// (spec invariant 5: the result "is one of l's or r's type, or the agreed
// wider of the two").
func widerOf(lt, rt ast.AstType) ast.AstType {
	rank := func(t ast.AstType) int {
		switch t {
		case ast.TypeBool:
			return 0
		case ast.TypeInt, ast.TypeUInt:
			return 1
		case ast.TypeBitset:
			return 1
		case ast.TypeMPInteger, ast.TypeMPUInteger:
			return 2
		case ast.TypeFloat:
			return 3
		case ast.TypeDouble:
			return 4
		case ast.TypeLongDouble:
			return 5
		case ast.TypeMPDecimal:
			return 6
		case ast.TypeAngle:
			return 7
		case ast.TypeMPComplex:
			return 8
		default:
			return -1
		}
	}
	if rank(rt) > rank(lt) {
		return rt
	}
	return lt
}

// ValidateUnaryOp types a unary op per spec §4.4: `!x` is rejected when x
// is itself a compound binary-op expression without parentheses, since it
// would silently become an integer constant expression on the left.
func (v *Validator) ValidateUnaryOp(u *ast.UnaryOpExpr) ast.AstType {
	if u.Op == ast.OpNot {
		if b, ok := u.Expr.(*ast.BinaryOpExpr); ok && !b.HasParens {
			v.emitter.EmitKind(diag.KindTypeMismatch, u.Pos(),
				"'!' applied to an unparenthesized compound expression", diag.Error)
			u.ResultType = ast.TypeExpressionError
			return u.ResultType
		}
	}
	et := v.EffectiveType(u.Expr)
	switch u.Op {
	case ast.OpNot:
		if numericTypes[et] {
			u.ResultType = ast.TypeBool
		} else {
			u.ResultType = ast.TypeExpressionError
		}
	case ast.OpBitNot:
		if ast.IsIntegerType(et) {
			u.ResultType = et
		} else {
			u.ResultType = ast.TypeExpressionError
		}
	case ast.OpSub, ast.OpAdd:
		if numericTypes[et] {
			u.ResultType = et
		} else {
			u.ResultType = ast.TypeExpressionError
		}
	default:
		u.ResultType = et
	}
	if u.ResultType == ast.TypeExpressionError {
		v.emitter.EmitKind(diag.KindTypeMismatch, u.Pos(),
			fmt.Sprintf("operator %s not legal on %s", u.Op, et), diag.Error)
	}
	return u.ResultType
}

// CanBeAssignedTo implements spec §4.4's can_be_assigned_to lvalue check:
// unwraps to a named identifier or an indexed reference, verifies the
// target is mutable, not a reserved angle, not const, and (for an indexed
// reference) that the index is in bounds.
func (v *Validator) CanBeAssignedTo(expr ast.Expression) (bool, string) {
	switch n := expr.(type) {
	case *ast.Identifier:
		if isReservedAngleName(n.Name) {
			return false, "AssignmentToReserved"
		}
		if n.IsConst {
			return false, "AssignmentToConst"
		}
		if !ast.IsAssignable(n.SymbolType) || ast.IsQubitType(n.SymbolType) {
			return false, "NotAnLvalue"
		}
		return true, ""
	case *ast.IdentifierRef:
		if n.HasNumericIndex && n.Base.Bits > 0 && n.NumericIndex >= n.Base.Bits {
			return false, "OutOfBoundsIndex"
		}
		// Array/element const-ness is not checked here: the source's own
		// const handling on arrays takes inconsistent paths (some variants
		// consult the element's const bit, some the array's), so this is
		// left as an open question rather than guessed at.
		if !ast.IsAssignable(n.ReferenceType) || ast.IsQubitType(n.ReferenceType) {
			return false, "NotAnLvalue"
		}
		return true, ""
	default:
		return false, "NotAnLvalue"
	}
}

func isReservedAngleName(name string) bool {
	switch name {
	case "pi", "π", "tau", "τ", "euler", "ε":
		return true
	default:
		return false
	}
}

package ast

// This file is the Go analogue of the original frontend's type-predicate
// switches (ASTTypeEnums.cpp-adjacent helpers in the C++ source): closed
// table lookups keyed by AstType, rather than ad-hoc type switches
// repeated at every call site. Spec §3 names these as the predicates most
// of the rest of the system relies on: is_integer_type, is_scalar_type,
// is_qubit_type, is_array_type, is_assignable, is_returning.

var integerTypes = map[AstType]bool{
	TypeInt:        true,
	TypeUInt:       true,
	TypeMPInteger:  true,
	TypeMPUInteger: true,
	TypeBitset:     true, // a bitset participates in integer arithmetic per spec §4.4
}

// IsIntegerType reports whether t is one of the integer-like scalar types.
func IsIntegerType(t AstType) bool { return integerTypes[t] }

var scalarTypes = map[AstType]bool{
	TypeBool:       true,
	TypeInt:        true,
	TypeUInt:       true,
	TypeFloat:      true,
	TypeDouble:     true,
	TypeLongDouble: true,
	TypeChar:       true,
	TypeMPInteger:  true,
	TypeMPUInteger: true,
	TypeMPDecimal:  true,
	TypeAngle:      true,
	TypeBitset:     true,
	TypeDuration:   true,
	TypeStretch:    true,
	TypeLength:     true,
}

// IsScalarType reports whether t is a non-composite classical type.
func IsScalarType(t AstType) bool { return scalarTypes[t] }

var qubitTypes = map[AstType]bool{
	TypeQubit:               true,
	TypeQubitContainer:      true,
	TypeQubitContainerAlias: true,
	TypeBoundQubit:          true,
}

// IsQubitType reports whether t names a quantum entity.
func IsQubitType(t AstType) bool { return qubitTypes[t] }

var arrayTypes = map[AstType]bool{
	TypeCBitArray:      true,
	TypeQubitArray:     true,
	TypeBoolArray:      true,
	TypeIntArray:       true,
	TypeMPIntegerArray: true,
	TypeFloatArray:     true,
	TypeMPDecimalArray: true,
	TypeMPComplexArray: true,
	TypeAngleArray:     true,
	TypeDurationArray:  true,
	TypeFrameArray:     true,
	TypePortArray:      true,
	TypeWaveformArray:  true,
}

// IsArrayType reports whether t is one of the per-element-type array
// variants named in spec §3.
func IsArrayType(t AstType) bool { return arrayTypes[t] }

// assignableTypes holds every type that can appear as the target of a
// lvalue assignment. Qubits are explicitly excluded: spec §4.4 requires
// rejecting "the left side must satisfy is_assignable and not be a qubit".
var assignableTypes = map[AstType]bool{
	TypeBool:           true,
	TypeInt:            true,
	TypeUInt:           true,
	TypeFloat:          true,
	TypeDouble:         true,
	TypeLongDouble:     true,
	TypeChar:           true,
	TypeStringType:     true,
	TypeMPInteger:      true,
	TypeMPUInteger:     true,
	TypeMPDecimal:      true,
	TypeMPComplex:      true,
	TypeAngle:          true,
	TypeBitset:         true,
	TypeCBitArray:      true,
	TypeBoolArray:      true,
	TypeIntArray:       true,
	TypeMPIntegerArray: true,
	TypeFloatArray:     true,
	TypeMPDecimalArray: true,
	TypeMPComplexArray: true,
	TypeAngleArray:     true,
}

// IsAssignable reports whether t can be the static type of an lvalue.
// Qubit types are never assignable regardless of this table — callers
// must additionally check !IsQubitType(t), matching spec §4.4's
// can_be_assigned_to rule ("not be a qubit").
func IsAssignable(t AstType) bool { return assignableTypes[t] }

var returningTypes = map[AstType]bool{
	TypeBlock:            true,
	TypeIfStatement:      true,
	TypeSwitchStatement:  true,
	TypeForStatement:     true,
	TypeWhileStatement:   true,
	TypeDoWhileStatement: true,
}

// IsReturning reports whether a statement of type t can, on some control
// path, terminate with a return — used by the (future) control-flow
// completeness checks a downstream pass may run; modeled here because the
// predicate is itself part of the closed AstType table, even though this
// frontend does not implement the completeness check itself.
func IsReturning(t AstType) bool { return returningTypes[t] }

// IsComplexLike reports whether t participates in complex arithmetic.
func IsComplexLike(t AstType) bool { return t == TypeMPComplex }

// IsAngleLike reports whether t is the angle scalar type.
func IsAngleLike(t AstType) bool { return t == TypeAngle }

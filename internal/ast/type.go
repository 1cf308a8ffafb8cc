// Package ast defines the closed set of OpenQASM 3 AST node variants, the
// identifier/symbol-adjacent data each node carries, and the predicate
// tables the rest of the frontend keys off a node's AstType tag.
//
// The shape of each node (an interface satisfied by small structs, a
// String()/Pos() pair for debugging and diagnostics) follows
// CWBudde/go-dws's ast package; the enumeration itself — a single closed
// AstType naming every node kind, including error markers — follows the
// original C++ frontend's ASTType (openqasm/qe-qasm, ASTTypeEnums.cpp).
package ast

// AstType is the single closed enumeration naming every kind of node the
// frontend can produce: scalar and composite classical types, quantum
// types, expression kinds, statement kinds, modifier kinds, and error
// markers. Every node carries exactly one AstType; most cross-cutting
// predicates (IsIntegerType, IsScalarType, ...) are table lookups keyed by
// it rather than type switches scattered through the codebase.
type AstType int

const (
	TypeUndefined AstType = iota

	// Scalar classical types.
	TypeBool
	TypeInt
	TypeUInt
	TypeFloat
	TypeDouble
	TypeLongDouble
	TypeChar
	TypeStringType

	// Arbitrary-precision classical types.
	TypeMPInteger
	TypeMPUInteger
	TypeMPDecimal
	TypeMPComplex

	// Angle and bitset.
	TypeAngle
	TypeBitset

	// Duration / timing.
	TypeDuration
	TypeStretch
	TypeLength

	// Quantum types.
	TypeQubit
	TypeQubitContainer
	TypeQubitContainerAlias
	TypeCBitRegister
	TypeBoundQubit

	// OpenPulse entities (frame/port/waveform), named in spec §3 array list.
	TypeFrame
	TypePort
	TypeWaveform

	// Arrays, one tag per element type (spec §3 "Arrays").
	TypeCBitArray
	TypeQubitArray
	TypeBoolArray
	TypeIntArray
	TypeMPIntegerArray
	TypeFloatArray
	TypeMPDecimalArray
	TypeMPComplexArray
	TypeAngleArray
	TypeDurationArray
	TypeFrameArray
	TypePortArray
	TypeWaveformArray

	// Identifier & reference nodes.
	TypeIdentifier
	TypeIdentifierRef

	// Literals.
	TypeBoolLiteral
	TypeIntLiteral
	TypeFloatLiteral
	TypeDoubleLiteral
	TypeLongDoubleLiteral
	TypeStringLiteral
	TypeMPIntegerLiteral
	TypeMPDecimalLiteral
	TypeMPComplexLiteral
	TypeAngleLiteral
	TypeCBitLiteral

	// Expression kinds.
	TypeOperatorNode
	TypeOperandNode
	TypeBinaryOp
	TypeUnaryOp
	TypeCast
	TypeImplicitConversion
	TypeFunctionCall
	TypeGateCall
	TypeKernelCall
	TypeDefcalCall

	// Gate modifiers (spec §4.6).
	TypeGateControl
	TypeGateNegControl
	TypeGateInverse
	TypeGatePower
	TypeGPhaseExpression

	// Declarations.
	TypeFunctionDeclaration
	TypeGateDeclaration
	TypeKernelDeclaration
	TypeDefcalDeclaration

	// Statements.
	TypeBlock
	TypeIfStatement
	TypeElseStatement
	TypeSwitchStatement
	TypeCaseStatement
	TypeForStatement
	TypeWhileStatement
	TypeDoWhileStatement
	TypeBoxStatement
	TypeDelayStatement
	TypeResetStatement
	TypeMeasureStatement
	TypeBarrierStatement
	TypePragmaStatement
	TypeAnnotationStatement

	// Error markers (spec §7).
	TypeExpressionError
	TypeStatementError
	TypeBadCast
	TypeBadImplicitConversion
	TypeSyntaxError
	TypeIdentifierError
)

var typeNames = map[AstType]string{
	TypeUndefined:             "Undefined",
	TypeBool:                  "Bool",
	TypeInt:                   "Int",
	TypeUInt:                  "UInt",
	TypeFloat:                 "Float",
	TypeDouble:                "Double",
	TypeLongDouble:            "LongDouble",
	TypeChar:                  "Char",
	TypeStringType:            "String",
	TypeMPInteger:             "MPInteger",
	TypeMPUInteger:            "MPUInteger",
	TypeMPDecimal:             "MPDecimal",
	TypeMPComplex:             "MPComplex",
	TypeAngle:                 "Angle",
	TypeBitset:                "Bitset",
	TypeDuration:              "Duration",
	TypeStretch:               "Stretch",
	TypeLength:                "Length",
	TypeQubit:                 "Qubit",
	TypeQubitContainer:        "QubitContainer",
	TypeQubitContainerAlias:   "QubitContainerAlias",
	TypeCBitRegister:          "CBitRegister",
	TypeBoundQubit:            "BoundQubit",
	TypeFrame:                 "Frame",
	TypePort:                  "Port",
	TypeWaveform:              "Waveform",
	TypeCBitArray:             "CBitArray",
	TypeQubitArray:            "QubitArray",
	TypeBoolArray:             "BoolArray",
	TypeIntArray:              "IntArray",
	TypeMPIntegerArray:        "MPIntegerArray",
	TypeFloatArray:            "FloatArray",
	TypeMPDecimalArray:        "MPDecimalArray",
	TypeMPComplexArray:        "MPComplexArray",
	TypeAngleArray:            "AngleArray",
	TypeDurationArray:         "DurationArray",
	TypeFrameArray:            "FrameArray",
	TypePortArray:             "PortArray",
	TypeWaveformArray:         "WaveformArray",
	TypeIdentifier:            "Identifier",
	TypeIdentifierRef:         "IdentifierRef",
	TypeBoolLiteral:           "BoolLiteral",
	TypeIntLiteral:            "IntLiteral",
	TypeFloatLiteral:          "FloatLiteral",
	TypeDoubleLiteral:         "DoubleLiteral",
	TypeLongDoubleLiteral:     "LongDoubleLiteral",
	TypeStringLiteral:         "StringLiteral",
	TypeMPIntegerLiteral:      "MPIntegerLiteral",
	TypeMPDecimalLiteral:      "MPDecimalLiteral",
	TypeMPComplexLiteral:      "MPComplexLiteral",
	TypeAngleLiteral:          "AngleLiteral",
	TypeCBitLiteral:           "CBitLiteral",
	TypeOperatorNode:          "OperatorNode",
	TypeOperandNode:           "OperandNode",
	TypeBinaryOp:              "BinaryOp",
	TypeUnaryOp:               "UnaryOp",
	TypeCast:                  "Cast",
	TypeImplicitConversion:    "ImplicitConversion",
	TypeFunctionCall:          "FunctionCall",
	TypeGateCall:              "GateCall",
	TypeKernelCall:            "KernelCall",
	TypeDefcalCall:            "DefcalCall",
	TypeGateControl:           "GateControl",
	TypeGateNegControl:        "GateNegControl",
	TypeGateInverse:           "GateInverse",
	TypeGatePower:             "GatePower",
	TypeGPhaseExpression:      "GPhaseExpression",
	TypeFunctionDeclaration:   "FunctionDeclaration",
	TypeGateDeclaration:       "GateDeclaration",
	TypeKernelDeclaration:     "KernelDeclaration",
	TypeDefcalDeclaration:     "DefcalDeclaration",
	TypeBlock:                 "Block",
	TypeIfStatement:           "IfStatement",
	TypeElseStatement:         "ElseStatement",
	TypeSwitchStatement:       "SwitchStatement",
	TypeCaseStatement:         "CaseStatement",
	TypeForStatement:          "ForStatement",
	TypeWhileStatement:        "WhileStatement",
	TypeDoWhileStatement:      "DoWhileStatement",
	TypeBoxStatement:          "BoxStatement",
	TypeDelayStatement:        "DelayStatement",
	TypeResetStatement:        "ResetStatement",
	TypeMeasureStatement:      "MeasureStatement",
	TypeBarrierStatement:      "BarrierStatement",
	TypePragmaStatement:       "PragmaStatement",
	TypeAnnotationStatement:   "AnnotationStatement",
	TypeExpressionError:       "ExpressionError",
	TypeStatementError:        "StatementError",
	TypeBadCast:               "BadCast",
	TypeBadImplicitConversion: "BadImplicitConversion",
	TypeSyntaxError:           "SyntaxError",
	TypeIdentifierError:       "IdentifierError",
}

// String renders the AstType the way PrintTypeEnum renders ASTType in the
// original frontend: a short, stable, human-readable name used in
// diagnostics and mangled-name debugging output.
func (t AstType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// IsError reports whether t is one of the error-marker variants (spec §7).
func (t AstType) IsError() bool {
	switch t {
	case TypeExpressionError, TypeStatementError, TypeBadCast, TypeBadImplicitConversion,
		TypeSyntaxError, TypeIdentifierError:
		return true
	default:
		return false
	}
}

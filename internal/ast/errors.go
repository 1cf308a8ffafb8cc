package ast

// This file holds the error-tagged node variants named in spec §7: rather
// than raising exceptions, every construction site that detects a semantic
// failure produces one of these in the position the well-formed node would
// have occupied, so a caller can keep walking the tree and the diagnostic
// is attached to the node itself.

// ExpressionError stands in for an expression that failed validation.
type ExpressionError struct {
	baseNode
	Message string
	Source  Expression // the offending subexpression, when available
}

func (e *ExpressionError) expressionNode() {}
func (e *ExpressionError) String() string  { return "<expression error: " + e.Message + ">" }

func NewExpressionError(message string, source Expression, loc Location) *ExpressionError {
	return &ExpressionError{baseNode: baseNode{Type: TypeExpressionError, Loc: loc}, Message: message, Source: source}
}

// StatementError stands in for a statement that failed validation (for
// example a rejected gate/function redeclaration, spec §8 scenario 2).
type StatementError struct {
	baseNode
	Message string
	Source  Statement
}

func (e *StatementError) statementNode() {}
func (e *StatementError) String() string { return "<statement error: " + e.Message + ">" }

func NewStatementError(message string, source Statement, loc Location) *StatementError {
	return &StatementError{baseNode: baseNode{Type: TypeStatementError, Loc: loc}, Message: message, Source: source}
}

// BadCast stands in for an explicit cast the conversion matrix rejects.
type BadCast struct {
	baseNode
	Message  string
	FromType AstType
	ToType   AstType
	Source   Expression
}

func (e *BadCast) expressionNode() {}
func (e *BadCast) String() string {
	return "<bad cast " + e.FromType.String() + "->" + e.ToType.String() + ": " + e.Message + ">"
}

func NewBadCast(fromType, toType AstType, source Expression, message string, loc Location) *BadCast {
	return &BadCast{baseNode: baseNode{Type: TypeBadCast, Loc: loc}, Message: message, FromType: fromType, ToType: toType, Source: source}
}

// BadImplicitConversion stands in for a value that needed an implicit
// conversion the matrix does not permit (argument binding, assignment,
// operator coercion).
type BadImplicitConversion struct {
	baseNode
	Message  string
	FromType AstType
	ToType   AstType
	Source   Expression
}

func (e *BadImplicitConversion) expressionNode() {}
func (e *BadImplicitConversion) String() string {
	return "<bad implicit conversion " + e.FromType.String() + "->" + e.ToType.String() + ": " + e.Message + ">"
}

func NewBadImplicitConversion(fromType, toType AstType, source Expression, message string, loc Location) *BadImplicitConversion {
	return &BadImplicitConversion{baseNode: baseNode{Type: TypeBadImplicitConversion, Loc: loc}, Message: message, FromType: fromType, ToType: toType, Source: source}
}

// SyntaxError is a marker node for a construct that the (external) parser
// flagged but that still needs a place in the tree to carry its position
// and message through to the diagnostic emitter.
type SyntaxError struct {
	baseNode
	Message string
}

func (e *SyntaxError) statementNode()  {}
func (e *SyntaxError) expressionNode() {}
func (e *SyntaxError) String() string  { return "<syntax error: " + e.Message + ">" }

func NewSyntaxError(message string, loc Location) *SyntaxError {
	return &SyntaxError{baseNode: baseNode{Type: TypeSyntaxError, Loc: loc}, Message: message}
}

// IdentifierError stands in for an identifier reference that failed
// lookup or redeclaration checking (undeclared name, illegal shadow,
// illegal clone of a non-interned identifier).
type IdentifierError struct {
	baseNode
	Message string
	Name    string
}

func (e *IdentifierError) expressionNode() {}
func (e *IdentifierError) String() string  { return "<identifier error " + e.Name + ": " + e.Message + ">" }

func NewIdentifierError(name, message string, loc Location) *IdentifierError {
	return &IdentifierError{baseNode: baseNode{Type: TypeIdentifierError, Loc: loc}, Message: message, Name: name}
}

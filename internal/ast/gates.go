package ast

// This file covers the declaration kinds (function/gate/kernel/defcal) and
// the gate-modifier node types named in spec §3/§4.6. The modifier chain
// itself — stacking ctrl/negctrl/inv/pow/gphase and keeping insertion
// order — is built by internal/gate, which operates on these node types.

// Param is one formal parameter of a function/gate/kernel/defcal.
type Param struct {
	Name string
	Type AstType
	Bits int
}

// FunctionDeclaration declares a classical function.
type FunctionDeclaration struct {
	baseNode
	Name       *Identifier
	Params     []Param
	ReturnType AstType
	Body       Statement
}

func (f *FunctionDeclaration) statementNode() {}
func (f *FunctionDeclaration) String() string { return "def " + f.Name.Name + "(...)" }

func NewFunctionDeclaration(name *Identifier, params []Param, ret AstType, body Statement, loc Location) *FunctionDeclaration {
	return &FunctionDeclaration{baseNode: baseNode{Type: TypeFunctionDeclaration, Loc: loc}, Name: name, Params: params, ReturnType: ret, Body: body}
}

// GateAngleParam and GateQubitParam distinguish the two parameter lists a
// gate declaration carries: the angle (classical) parameter list and the
// qubit parameter list, per spec §4.6.
type GateAngleParam struct {
	Name *Identifier
	Bits int
}

type GateQubitParam struct {
	Name *Identifier
}

// GateDeclaration declares a (possibly built-in) gate.
type GateDeclaration struct {
	baseNode
	Name        *Identifier
	AngleParams []GateAngleParam
	QubitParams []GateQubitParam
	Body        Statement
	IsBuiltin   bool
	// Err is non-nil when this declaration is a rejected redeclaration of a
	// gate (spec §8 scenario 2: "second node is a GateDeclaration::Error").
	Err *StatementError
}

func (g *GateDeclaration) statementNode() {}
func (g *GateDeclaration) String() string { return "gate " + g.Name.Name + "(...) ..." }

func NewGateDeclaration(name *Identifier, angleParams []GateAngleParam, qubitParams []GateQubitParam, body Statement, loc Location) *GateDeclaration {
	return &GateDeclaration{baseNode: baseNode{Type: TypeGateDeclaration, Loc: loc}, Name: name, AngleParams: angleParams, QubitParams: qubitParams, Body: body}
}

// KernelDeclaration declares an externally-implemented kernel function.
type KernelDeclaration struct {
	baseNode
	Name       *Identifier
	Params     []Param
	ReturnType AstType
}

func (k *KernelDeclaration) statementNode() {}
func (k *KernelDeclaration) String() string { return "kernel " + k.Name.Name + "(...)" }

func NewKernelDeclaration(name *Identifier, params []Param, ret AstType, loc Location) *KernelDeclaration {
	return &KernelDeclaration{baseNode: baseNode{Type: TypeKernelDeclaration, Loc: loc}, Name: name, Params: params, ReturnType: ret}
}

// DefcalDeclaration declares a calibration specialization of a gate or
// measurement for specific hardware qubits. Specializations sharing a
// base Name form a defcal group (spec §4.2 "defcals" sub-table).
type DefcalDeclaration struct {
	baseNode
	Name        *Identifier
	AngleParams []GateAngleParam
	QubitParams []GateQubitParam
	Body        Statement
}

func (d *DefcalDeclaration) statementNode() {}
func (d *DefcalDeclaration) String() string { return "defcal " + d.Name.Name + "(...) ..." }

func NewDefcalDeclaration(name *Identifier, angleParams []GateAngleParam, qubitParams []GateQubitParam, body Statement, loc Location) *DefcalDeclaration {
	return &DefcalDeclaration{baseNode: baseNode{Type: TypeDefcalDeclaration, Loc: loc}, Name: name, AngleParams: angleParams, QubitParams: qubitParams, Body: body}
}

// ModifierTarget discriminates what a gate modifier wraps: another
// modifier (forming a chain), a gate call, a gate-qubit-op, or a gphase
// expression. Modeled as an explicit tagged union (Design Notes §9:
// "Tagged-pointer unions ... replace with explicit enum variants") rather
// than an interface, since only these four shapes are legal.
type ModifierTarget struct {
	Kind     AstType // one of TypeGateCall, TypeGateControl, TypeGateNegControl, TypeGateInverse, TypeGatePower, TypeGPhaseExpression
	GateCall *GateCallExpr
	Modifier Node // *GateControl | *GateNegControl | *GateInverse | *GatePower | *GPhaseExpression
	GPhase   *GPhaseExpression
}

// GateControl is the `ctrl` modifier.
type GateControl struct {
	baseNode
	Target ModifierTarget
}

func (g *GateControl) statementNode() {}
func (g *GateControl) expressionNode() {}
func (g *GateControl) String() string { return "ctrl @ " + modifierTargetString(g.Target) }

func NewGateControl(target ModifierTarget, loc Location) *GateControl {
	return &GateControl{baseNode: baseNode{Type: TypeGateControl, Loc: loc}, Target: target}
}

// GateNegControl is the `negctrl` modifier.
type GateNegControl struct {
	baseNode
	Target ModifierTarget
}

func (g *GateNegControl) statementNode() {}
func (g *GateNegControl) expressionNode() {}
func (g *GateNegControl) String() string { return "negctrl @ " + modifierTargetString(g.Target) }

func NewGateNegControl(target ModifierTarget, loc Location) *GateNegControl {
	return &GateNegControl{baseNode: baseNode{Type: TypeGateNegControl, Loc: loc}, Target: target}
}

// GateInverse is the `inv` modifier.
type GateInverse struct {
	baseNode
	Target ModifierTarget
}

func (g *GateInverse) statementNode() {}
func (g *GateInverse) expressionNode() {}
func (g *GateInverse) String() string { return "inv @ " + modifierTargetString(g.Target) }

func NewGateInverse(target ModifierTarget, loc Location) *GateInverse {
	return &GateInverse{baseNode: baseNode{Type: TypeGateInverse, Loc: loc}, Target: target}
}

// GatePower is the `pow(k)` modifier.
type GatePower struct {
	baseNode
	Exponent Expression
	Target   ModifierTarget
}

func (g *GatePower) statementNode() {}
func (g *GatePower) expressionNode() {}
func (g *GatePower) String() string {
	return "pow(" + g.Exponent.String() + ") @ " + modifierTargetString(g.Target)
}

func NewGatePower(exponent Expression, target ModifierTarget, loc Location) *GatePower {
	return &GatePower{baseNode: baseNode{Type: TypeGatePower, Loc: loc}, Exponent: exponent, Target: target}
}

// GPhaseExpression is the `gphase(θ)` modifier/expression.
type GPhaseExpression struct {
	baseNode
	Angle Expression
}

func (g *GPhaseExpression) statementNode() {}
func (g *GPhaseExpression) expressionNode() {}
func (g *GPhaseExpression) String() string { return "gphase(" + g.Angle.String() + ")" }

func NewGPhaseExpression(angle Expression, loc Location) *GPhaseExpression {
	return &GPhaseExpression{baseNode: baseNode{Type: TypeGPhaseExpression, Loc: loc}, Angle: angle}
}

func modifierTargetString(t ModifierTarget) string {
	switch {
	case t.GateCall != nil:
		return t.GateCall.String()
	case t.Modifier != nil:
		return t.Modifier.String()
	case t.GPhase != nil:
		return t.GPhase.String()
	default:
		return "<empty modifier target>"
	}
}

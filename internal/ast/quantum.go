package ast

import "strings"

// Qubit is a single qubit, optionally hardware-bound via a leading `$`
// (spec §3, §6 "Qubit naming conventions").
type Qubit struct {
	baseNode
	Name       string
	HWBound    bool
}

func (q *Qubit) expressionNode() {}
func (q *Qubit) String() string  { return q.Name }

// NewQubit builds a Qubit node, recognizing a leading `$` as a
// hardware-bound literal physical qubit name.
func NewQubit(name string, loc Location) *Qubit {
	return &Qubit{baseNode: baseNode{Type: TypeQubit, Loc: loc}, Name: name, HWBound: strings.HasPrefix(name, "$")}
}

// QubitContainer is a register of N individually addressable qubits.
type QubitContainer struct {
	baseNode
	Name string
	Size int
}

func (q *QubitContainer) expressionNode() {}
func (q *QubitContainer) String() string  { return q.Name }

func NewQubitContainer(name string, size int, loc Location) *QubitContainer {
	return &QubitContainer{baseNode: baseNode{Type: TypeQubitContainer, Loc: loc}, Name: name, Size: size}
}

// AliasKind classifies the form of a QubitContainerAlias (spec §3:
// "rebind, index range, or concatenation").
type AliasKind int

const (
	AliasRebind AliasKind = iota
	AliasIndexRange
	AliasConcatenation
)

func (k AliasKind) String() string {
	switch k {
	case AliasRebind:
		return "Rebind"
	case AliasIndexRange:
		return "IndexRange"
	case AliasConcatenation:
		return "Concatenation"
	default:
		return "Unknown"
	}
}

// QubitContainerAlias rebinds a name to a concrete qubit-container element
// or range, or concatenates multiple containers. Alias identifiers may
// begin with `%` per spec §6.
type QubitContainerAlias struct {
	baseNode
	Name    string
	Kind    AliasKind
	Sources []*QubitContainer
	RangeLo int
	RangeHi int
}

func (a *QubitContainerAlias) expressionNode() {}
func (a *QubitContainerAlias) String() string  { return a.Name }

func NewQubitContainerAlias(name string, kind AliasKind, sources []*QubitContainer, loc Location) *QubitContainerAlias {
	return &QubitContainerAlias{
		baseNode: baseNode{Type: TypeQubitContainerAlias, Loc: loc},
		Name:     name,
		Kind:     kind,
		Sources:  sources,
	}
}

// CBitRegister is a classical-bit register (a named bitset).
type CBitRegister struct {
	baseNode
	Name string
	Bits int
}

func (c *CBitRegister) expressionNode() {}
func (c *CBitRegister) String() string  { return c.Name }

func NewCBitRegister(name string, bits int, loc Location) *CBitRegister {
	return &CBitRegister{baseNode: baseNode{Type: TypeCBitRegister, Loc: loc}, Name: name, Bits: bits}
}

// Frame, Port, Waveform are OpenPulse entities named in spec §3's array
// list; the frontend tracks them only as named, typed handles — pulse
// scheduling itself is out of scope (spec §1 Non-goals).
type Frame struct {
	baseNode
	Name string
}

func (f *Frame) expressionNode() {}
func (f *Frame) String() string  { return f.Name }

func NewFrame(name string, loc Location) *Frame {
	return &Frame{baseNode: baseNode{Type: TypeFrame, Loc: loc}, Name: name}
}

type Port struct {
	baseNode
	Name string
}

func (p *Port) expressionNode() {}
func (p *Port) String() string  { return p.Name }

func NewPort(name string, loc Location) *Port {
	return &Port{baseNode: baseNode{Type: TypePort, Loc: loc}, Name: name}
}

type Waveform struct {
	baseNode
	Name string
}

func (w *Waveform) expressionNode() {}
func (w *Waveform) String() string  { return w.Name }

func NewWaveform(name string, loc Location) *Waveform {
	return &Waveform{baseNode: baseNode{Type: TypeWaveform, Loc: loc}, Name: name}
}

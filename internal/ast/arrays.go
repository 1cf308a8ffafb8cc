package ast

// This file defines one array node per element type, per spec §3
// ("Arrays. One array node per element type"). Each stores its length,
// element width, and an element vector of the appropriate Go type —
// mirroring go-dws/internal/ast/arrays.go's per-kind array structs rather
// than a single generic Array[T] (the spec's closed-AstType model wants
// each variant independently taggable).

// ArrayBase factors the fields every array node shares.
type ArrayBase struct {
	baseNode
	Length      int
	ElementBits int
}

// CBitArray is an array of classical-bit registers.
type CBitArray struct {
	ArrayBase
	Elements []*CBitRegister
}

func (a *CBitArray) expressionNode() {}
func (a *CBitArray) String() string  { return "cbit[]" }

func NewCBitArray(length, elemBits int, loc Location) *CBitArray {
	return &CBitArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeCBitArray, Loc: loc}, Length: length, ElementBits: elemBits}}
}

// QubitArray is an array of qubit containers.
type QubitArray struct {
	ArrayBase
	Elements []*QubitContainer
}

func (a *QubitArray) expressionNode() {}
func (a *QubitArray) String() string  { return "qubit[]" }

func NewQubitArray(length int, loc Location) *QubitArray {
	return &QubitArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeQubitArray, Loc: loc}, Length: length}}
}

// BoolArray is an array of booleans.
type BoolArray struct {
	ArrayBase
	Elements []bool
}

func (a *BoolArray) expressionNode() {}
func (a *BoolArray) String() string  { return "bool[]" }

func NewBoolArray(length int, loc Location) *BoolArray {
	return &BoolArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeBoolArray, Loc: loc}, Length: length}}
}

// IntArray is an array of fixed-width integers.
type IntArray struct {
	ArrayBase
	Elements []int64
}

func (a *IntArray) expressionNode() {}
func (a *IntArray) String() string  { return "int[]" }

func NewIntArray(length, elemBits int, loc Location) *IntArray {
	return &IntArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeIntArray, Loc: loc}, Length: length, ElementBits: elemBits}}
}

// MPIntegerArray is an array of arbitrary-precision integers.
type MPIntegerArray struct {
	ArrayBase
	Elements []*MPIntegerLiteral
}

func (a *MPIntegerArray) expressionNode() {}
func (a *MPIntegerArray) String() string  { return "mpint[]" }

func NewMPIntegerArray(length, elemBits int, loc Location) *MPIntegerArray {
	return &MPIntegerArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeMPIntegerArray, Loc: loc}, Length: length, ElementBits: elemBits}}
}

// FloatArray is an array of floats.
type FloatArray struct {
	ArrayBase
	Elements []float64
}

func (a *FloatArray) expressionNode() {}
func (a *FloatArray) String() string  { return "float[]" }

func NewFloatArray(length, elemBits int, loc Location) *FloatArray {
	return &FloatArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeFloatArray, Loc: loc}, Length: length, ElementBits: elemBits}}
}

// MPDecimalArray is an array of arbitrary-precision decimals.
type MPDecimalArray struct {
	ArrayBase
	Elements []*MPDecimalLiteral
}

func (a *MPDecimalArray) expressionNode() {}
func (a *MPDecimalArray) String() string  { return "mpdec[]" }

func NewMPDecimalArray(length, elemBits int, loc Location) *MPDecimalArray {
	return &MPDecimalArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeMPDecimalArray, Loc: loc}, Length: length, ElementBits: elemBits}}
}

// MPComplexArray is an array of arbitrary-precision complex values.
type MPComplexArray struct {
	ArrayBase
	Elements []*MPComplexLiteral
}

func (a *MPComplexArray) expressionNode() {}
func (a *MPComplexArray) String() string  { return "mpcomplex[]" }

func NewMPComplexArray(length, elemBits int, loc Location) *MPComplexArray {
	return &MPComplexArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeMPComplexArray, Loc: loc}, Length: length, ElementBits: elemBits}}
}

// AngleArray is an array of angles.
type AngleArray struct {
	ArrayBase
	Elements []*AngleLiteral
}

func (a *AngleArray) expressionNode() {}
func (a *AngleArray) String() string  { return "angle[]" }

func NewAngleArray(length, elemBits int, loc Location) *AngleArray {
	return &AngleArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeAngleArray, Loc: loc}, Length: length, ElementBits: elemBits}}
}

// DurationArray, FrameArray, PortArray, WaveformArray round out the
// per-element-type array list named in spec §3.
type DurationArray struct {
	ArrayBase
	Elements []float64
}

func (a *DurationArray) expressionNode() {}
func (a *DurationArray) String() string  { return "duration[]" }

func NewDurationArray(length int, loc Location) *DurationArray {
	return &DurationArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeDurationArray, Loc: loc}, Length: length}}
}

type FrameArray struct {
	ArrayBase
	Elements []*Frame
}

func (a *FrameArray) expressionNode() {}
func (a *FrameArray) String() string  { return "frame[]" }

func NewFrameArray(length int, loc Location) *FrameArray {
	return &FrameArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeFrameArray, Loc: loc}, Length: length}}
}

type PortArray struct {
	ArrayBase
	Elements []*Port
}

func (a *PortArray) expressionNode() {}
func (a *PortArray) String() string  { return "port[]" }

func NewPortArray(length int, loc Location) *PortArray {
	return &PortArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypePortArray, Loc: loc}, Length: length}}
}

type WaveformArray struct {
	ArrayBase
	Elements []*Waveform
}

func (a *WaveformArray) expressionNode() {}
func (a *WaveformArray) String() string  { return "waveform[]" }

func NewWaveformArray(length int, loc Location) *WaveformArray {
	return &WaveformArray{ArrayBase: ArrayBase{baseNode: baseNode{Type: TypeWaveformArray, Loc: loc}, Length: length}}
}

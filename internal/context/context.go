// Package context implements the declaration-context tracker (spec §4.1):
// a stack of lexical scopes identified by a monotonically increasing
// index, each able to answer "am I inside a gate/defcal/calibration
// context" without the caller walking the stack by hand.
//
// Grounded on the original frontend's ASTDeclarationContextTracker
// (referenced throughout original_source/include/qasm/AST/ASTIdentifier.h)
// and, for the push/pop stack shape, on go-dws's scope-nesting pattern in
// internal/semantic.SymbolTable (outer *SymbolTable chain) generalized
// into an explicit stack with context identity rather than implicit
// parent-walking.
package context

import "errors"

// Kind names what kind of lexical construct a Context represents.
type Kind int

const (
	KindGlobal Kind = iota
	KindFunction
	KindGate
	KindDefcal
	KindKernel
	KindIf
	KindElse
	KindFor
	KindWhile
	KindDoWhile
	KindSwitch
	KindCase
	KindBox
	KindCal
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindGlobal:
		return "Global"
	case KindFunction:
		return "Function"
	case KindGate:
		return "Gate"
	case KindDefcal:
		return "Defcal"
	case KindKernel:
		return "Kernel"
	case KindIf:
		return "If"
	case KindElse:
		return "Else"
	case KindFor:
		return "For"
	case KindWhile:
		return "While"
	case KindDoWhile:
		return "DoWhile"
	case KindSwitch:
		return "Switch"
	case KindCase:
		return "Case"
	case KindBox:
		return "Box"
	case KindCal:
		return "Cal"
	case KindBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// State is a Context's lifecycle state.
type State int

const (
	Alive State = iota
	Dead
)

func (s State) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

// Context is one node of the declaration-context tree: a lexical scope
// with a parent pointer, a unique creation-order index, a Kind tag, and a
// lifecycle State. Contexts also hold the set of identifier names
// registered in them (registration is symmetric: moving an identifier to
// a new context must unregister it from the old one — see Register /
// Unregister).
type Context struct {
	Index  int
	Kind   Kind
	Parent *Context
	State  State

	registered map[string]bool
}

func newContext(index int, kind Kind, parent *Context) *Context {
	return &Context{
		Index:      index,
		Kind:       kind,
		Parent:     parent,
		State:      Alive,
		registered: make(map[string]bool),
	}
}

// Register marks name as declared directly in c. Symmetric with
// Unregister: a caller moving a declaration to a different context must
// call Unregister on the old context itself.
func (c *Context) Register(name string) {
	c.registered[name] = true
}

// Unregister removes name from c's registration set.
func (c *Context) Unregister(name string) {
	delete(c.registered, name)
}

// HasLocal reports whether name was registered directly in c (not an
// ancestor).
func (c *Context) HasLocal(name string) bool {
	return c.registered[name]
}

// ErrContextUnderflow is returned by Tracker.Pop when the stack holds only
// the Global context (or is empty), matching spec §4.1 and §7's
// ContextUnderflow structural error.
var ErrContextUnderflow = errors.New("context: pop called with no context to pop")

// Tracker maintains the stack of declaration contexts for one frontend
// session. NewTracker creates Global at index 0; Global is never popped.
type Tracker struct {
	stack   []*Context
	nextIdx int
}

// NewTracker returns a Tracker with the Global context already pushed.
func NewTracker() *Tracker {
	t := &Tracker{}
	global := newContext(0, KindGlobal, nil)
	t.nextIdx = 1
	t.stack = []*Context{global}
	return t
}

// Push creates a new child of the current top context, assigns it the
// next monotonically increasing index, marks it Alive, and makes it the
// new current context.
func (t *Tracker) Push(kind Kind) *Context {
	c := newContext(t.nextIdx, kind, t.Current())
	t.nextIdx++
	t.stack = append(t.stack, c)
	return c
}

// Pop marks the top context Dead and pops it. Symbols declared within it
// remain referenceable (the Context itself is not destroyed, only marked
// Dead and detached from the live stack) so later diagnostics can still
// report on them, but they stop being candidates for lookup. Popping the
// Global context (or an empty stack) is a ContextUnderflow.
func (t *Tracker) Pop() error {
	if len(t.stack) <= 1 {
		return ErrContextUnderflow
	}
	top := t.stack[len(t.stack)-1]
	top.State = Dead
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

// Current returns the top of the stack, or nil if the tracker was never
// initialized via NewTracker.
func (t *Tracker) Current() *Context {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// Global returns the root Global context (index 0).
func (t *Tracker) Global() *Context {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[0]
}

// Depth returns the number of contexts currently on the stack.
func (t *Tracker) Depth() int { return len(t.stack) }

// inContext reports whether any context currently on the stack has kind k.
func (t *Tracker) inContext(k Kind) bool {
	for _, c := range t.stack {
		if c.Kind == k {
			return true
		}
	}
	return false
}

// InCalibrationContext reports whether the Cal context kind is anywhere on
// the current stack.
func (t *Tracker) InCalibrationContext() bool { return t.inContext(KindCal) }

// InGateContext reports whether the Gate context kind is anywhere on the
// current stack.
func (t *Tracker) InGateContext() bool { return t.inContext(KindGate) }

// InDefcalContext reports whether the Defcal context kind is anywhere on
// the current stack.
func (t *Tracker) InDefcalContext() bool { return t.inContext(KindDefcal) }

// Dominates reports whether ancestor is c itself or a proper ancestor of
// c, i.e. whether a declaration in ancestor is visible from c. Used by
// symtab's redeclaration rules (spec §4.2.1, "dominating context").
func Dominates(ancestor, c *Context) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

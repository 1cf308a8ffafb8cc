// Package diag provides the diagnostic emitter interface the frontend
// reports through, plus a default collecting implementation used by tests
// and the CLI. The frontend never panics on a recoverable condition: every
// builder/validator operation emits exactly one diagnostic here and
// returns an error-tagged AST node instead of unwinding.
package diag

import (
	"fmt"
	"strings"

	"github.com/openqasm/qe-qasm-sub003/internal/token"
)

// Level mirrors the three severities named in spec §6.
type Level int

const (
	Warning Level = iota
	Error
	ICE
)

func (l Level) String() string {
	switch l {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case ICE:
		return "ICE"
	default:
		return "unknown"
	}
}

// Kind classifies a diagnostic the way SemanticErrorType classifies
// go-dws's semantic errors — a closed string enum for structured handling
// by downstream tooling, distinct from the free-form message.
type Kind string

const (
	KindSyntaxError             Kind = "syntax_error"
	KindUnknownIdentifier       Kind = "unknown_identifier"
	KindOutOfScope              Kind = "out_of_scope"
	KindDuplicateDefinition     Kind = "duplicate_definition"
	KindRedeclaration           Kind = "redeclaration"
	KindShadowsGlobal           Kind = "shadows_global"
	KindAssignmentToReserved    Kind = "assignment_to_reserved"
	KindTypeMismatch            Kind = "type_mismatch"
	KindBadCast                 Kind = "bad_cast"
	KindBadImplicitConversion   Kind = "bad_implicit_conversion"
	KindNotAnLvalue             Kind = "not_an_lvalue"
	KindOutOfBoundsIndex        Kind = "out_of_bounds_index"
	KindMissingSymbolTableEntry Kind = "missing_symbol_table_entry"
	KindInvalidModifierTarget   Kind = "invalid_modifier_target"
	KindContextUnderflow        Kind = "context_underflow"
	KindIllegalClone            Kind = "illegal_clone"
	KindAngleBitwiseWarning     Kind = "angle_bitwise_warning"
	KindInternal                Kind = "internal_compiler_error"
)

// Diagnostic is one reported condition.
type Diagnostic struct {
	Kind    Kind
	Level   Level
	Message string
	Pos     token.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at %s [%s]", d.Level, d.Message, d.Pos, d.Kind)
}

// Emitter is the narrow external collaborator named in spec §6:
// emit(location, message, level). The frontend never constructs its own
// sink; callers supply one (or use CollectingEmitter for tests/CLI use).
type Emitter interface {
	Emit(pos token.Position, message string, level Level)
}

// CollectingEmitter is the default in-package Emitter: it buffers every
// diagnostic in order of emission and classifies them by Kind for callers
// that want structured access, grounded on go-dws's AnalysisError /
// CompilerError pairing (free-text message + structured wrapper).
type CollectingEmitter struct {
	diags []Diagnostic
}

// NewCollectingEmitter returns an empty emitter.
func NewCollectingEmitter() *CollectingEmitter {
	return &CollectingEmitter{}
}

func (c *CollectingEmitter) Emit(pos token.Position, message string, level Level) {
	c.diags = append(c.diags, Diagnostic{Kind: KindInternal, Level: level, Message: message, Pos: pos})
}

// EmitKind emits with a structured Kind, used internally by the frontend's
// own packages (symtab, validator, convert, builder) so callers can filter
// diagnostics programmatically, not just by message substring.
func (c *CollectingEmitter) EmitKind(kind Kind, pos token.Position, message string, level Level) {
	c.diags = append(c.diags, Diagnostic{Kind: kind, Level: level, Message: message, Pos: pos})
}

// Diagnostics returns every diagnostic collected so far, in emission order.
func (c *CollectingEmitter) Diagnostics() []Diagnostic {
	return c.diags
}

// HasErrors reports whether any Error or ICE diagnostic was emitted.
func (c *CollectingEmitter) HasErrors() bool {
	for _, d := range c.diags {
		if d.Level == Error || d.Level == ICE {
			return true
		}
	}
	return false
}

// Format renders every collected diagnostic as a human-readable block,
// one per line, in the style of go-dws's errors.FormatErrors.
func (c *CollectingEmitter) Format() string {
	if len(c.diags) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d diagnostic(s):\n", len(c.diags))
	for i, d := range c.diags {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, d.String())
	}
	return sb.String()
}

// KindEmitter is the interface internal frontend packages depend on — a
// superset of Emitter that also carries the structured Kind. Any Emitter
// can be adapted via KindAdapter if it only implements the narrow
// interface named in spec §6.
type KindEmitter interface {
	Emitter
	EmitKind(kind Kind, pos token.Position, message string, level Level)
}

// KindAdapter wraps a plain Emitter so frontend-internal code can always
// call EmitKind; the Kind is dropped (folded into the message) for emitters
// that don't understand it.
type KindAdapter struct {
	Emitter
}

func (a KindAdapter) EmitKind(kind Kind, pos token.Position, message string, level Level) {
	a.Emitter.Emit(pos, fmt.Sprintf("[%s] %s", kind, message), level)
}

// AsKindEmitter returns e unchanged if it already implements KindEmitter,
// otherwise wraps it in a KindAdapter.
func AsKindEmitter(e Emitter) KindEmitter {
	if ke, ok := e.(KindEmitter); ok {
		return ke
	}
	return KindAdapter{Emitter: e}
}

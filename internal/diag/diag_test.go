package diag

import (
	"strings"
	"testing"

	"github.com/openqasm/qe-qasm-sub003/internal/token"
)

func TestCollectingEmitterAccumulatesInOrder(t *testing.T) {
	e := NewCollectingEmitter()
	e.Emit(token.Position{Line: 1, Column: 1}, "first", Warning)
	e.EmitKind(KindTypeMismatch, token.Position{Line: 2, Column: 3}, "second", Error)

	diags := e.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("Diagnostics() returned %d entries, want 2", len(diags))
	}
	if diags[0].Message != "first" || diags[1].Message != "second" {
		t.Errorf("diagnostics out of emission order: %v", diags)
	}
	if diags[1].Kind != KindTypeMismatch {
		t.Errorf("diags[1].Kind = %s, want KindTypeMismatch", diags[1].Kind)
	}
}

func TestHasErrorsIgnoresWarnings(t *testing.T) {
	e := NewCollectingEmitter()
	e.Emit(token.Position{}, "just a warning", Warning)
	if e.HasErrors() {
		t.Error("HasErrors() = true after only a Warning-level diagnostic")
	}
	e.Emit(token.Position{}, "now an error", Error)
	if !e.HasErrors() {
		t.Error("HasErrors() = false after an Error-level diagnostic")
	}
}

func TestFormatRendersEveryDiagnostic(t *testing.T) {
	e := NewCollectingEmitter()
	e.Emit(token.Position{Line: 5, Column: 1}, "boom", ICE)
	out := e.Format()
	if !strings.Contains(out, "boom") || !strings.Contains(out, "5:1") {
		t.Errorf("Format() = %q, want it to mention the message and position", out)
	}
}

func TestAsKindEmitterPassesThroughExistingKindEmitter(t *testing.T) {
	e := NewCollectingEmitter()
	if AsKindEmitter(e) != KindEmitter(e) {
		t.Error("AsKindEmitter wrapped an emitter that already implements KindEmitter")
	}
}

// plainEmitter implements only the narrow spec §6 Emitter interface, not
// KindEmitter, to exercise the KindAdapter fallback path.
type plainEmitter struct {
	messages []string
}

func (p *plainEmitter) Emit(pos token.Position, message string, level Level) {
	p.messages = append(p.messages, message)
}

func TestAsKindEmitterWrapsPlainEmitter(t *testing.T) {
	p := &plainEmitter{}
	ke := AsKindEmitter(p)
	ke.EmitKind(KindRedeclaration, token.Position{}, "oops", Error)
	if len(p.messages) != 1 || !strings.Contains(p.messages[0], "oops") {
		t.Errorf("plain emitter received = %v, want one message containing \"oops\"", p.messages)
	}
	if !strings.Contains(p.messages[0], string(KindRedeclaration)) {
		t.Errorf("KindAdapter did not fold the Kind into the message: %q", p.messages[0])
	}
}

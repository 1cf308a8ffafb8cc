package symtab

import (
	"fmt"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/context"
)

// canHaveLocalScope mirrors spec §4.2.2's can_have_local_scope predicate:
// only symbols that are themselves nameable local declarations transfer
// into the enclosing function/gate/defcal's private symbol map.
func canHaveLocalScope(t ast.AstType) bool {
	switch t {
	case ast.TypeAngle, ast.TypeQubitContainer, ast.TypeBitset,
		ast.TypeInt, ast.TypeUInt, ast.TypeFloat, ast.TypeDouble,
		ast.TypeBool, ast.TypeMPInteger, ast.TypeMPUInteger, ast.TypeMPDecimal, ast.TypeMPComplex:
		return true
	default:
		return false
	}
}

// TransferParams moves every eligible symbol declared in body into the
// private symbol map of the enclosing function/gate/defcal named owner
// (spec §4.2.2), expanding angle/qubit-container/bitset declarations into
// their synthetic per-component entries. The private map is itself a
// Table local map keyed by a synthetic owner context — callers supply the
// context that identifies "owner's private map" (ownerCtx), distinct from
// body (the context the symbols were actually declared in).
func (t *Table) TransferParams(body, ownerCtx *context.Context) {
	dst := t.localMap(ownerCtx)
	for name, e := range t.localMap(body) {
		if !canHaveLocalScope(e.ValueType) {
			continue
		}
		dst[name] = e

		switch e.ValueType {
		case ast.TypeAngle:
			for i := 0; i < 3; i++ {
				compName := fmt.Sprintf("%s[%d]", name, i)
				dst[compName] = syntheticComponentEntry(e, compName)
			}
		case ast.TypeQubitContainer:
			if qc, ok := e.Value.(*ast.QubitContainer); ok {
				for i := 0; i < qc.Size; i++ {
					idxName := fmt.Sprintf("%s[%d]", name, i)
					aliasName := fmt.Sprintf("%%%s:%d", name, i)
					dst[idxName] = syntheticComponentEntry(e, idxName)
					dst[aliasName] = syntheticComponentEntry(e, aliasName)
				}
			}
		case ast.TypeBitset:
			for i := 0; i < e.Identifier.Bits; i++ {
				bitName := fmt.Sprintf("%s[%d]", name, i)
				dst[bitName] = syntheticComponentEntry(e, bitName)
			}
		}
	}
}

// syntheticComponentEntry builds the synthetic per-component entry
// (a[0], q[i], %q:i, b[i]): a copy of its parent's entry, identifier
// included; only the map key it is stored under carries its own surface
// name.
func syntheticComponentEntry(parent *Entry, name string) *Entry {
	return &Entry{
		Identifier:  parent.Identifier,
		ValueType:   parent.ValueType,
		Value:       parent.Value,
		Scope:       parent.Scope,
		Context:     parent.Context,
		DoNotDelete: parent.DoNotDelete,
	}
}

// WarnInductionShadow implements spec §4.2.1 rule 5: inspects the loop
// body's local declarations for names matching the induction variable and
// reports true (the caller emits the ShadowsInduction-style warning)
// rather than rejecting registration outright.
func (t *Table) WarnInductionShadow(body *context.Context, inductionName string) bool {
	_, shadowed := t.localMap(body)[inductionName]
	return shadowed
}

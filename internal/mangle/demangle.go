package mangle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
)

// Demangled is the decoded description of a mangled identifier: name,
// type, and bit-width (spec §4.7's "decorated description"). Signature
// demangling (params/args/return/modifier chain) builds on top of this
// via DemangledCall.
type Demangled struct {
	Name          string
	Type          ast.AstType
	Bits          int
	InCalibration bool
}

// ErrMalformed is returned when a string is not a well-formed mangled
// name for this grammar.
type ErrMalformed struct{ Reason string }

func (e *ErrMalformed) Error() string { return "mangle: malformed mangled name: " + e.Reason }

// scanner walks a mangled string left to right; every Parse* helper
// advances pos and returns an error on malformed input, mirroring
// original_source's ASTDemangler::Parse* family but as a simple
// hand-written scanner over a Go string rather than a regex/const-char*
// state machine.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) expect(tok string) error {
	if !strings.HasPrefix(sc.s[sc.pos:], tok) {
		return &ErrMalformed{Reason: fmt.Sprintf("expected %q at offset %d", tok, sc.pos)}
	}
	sc.pos += len(tok)
	return nil
}

func (sc *scanner) readInt() (int, error) {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
	}
	if sc.pos == start {
		return 0, &ErrMalformed{Reason: fmt.Sprintf("expected digits at offset %d", start)}
	}
	n, err := strconv.Atoi(sc.s[start:sc.pos])
	if err != nil {
		return 0, &ErrMalformed{Reason: err.Error()}
	}
	return n, nil
}

// readTypeToken reads the longest type token recognized at the current
// position. Longer tokens ("Mi", "Mu", "Md", "Mc", "DL", "Qc") are tried
// before their single-letter prefixes so e.g. "Mi" is not mistaken for an
// unrecognized "M" followed by "i".
func (sc *scanner) readTypeToken() (ast.AstType, bool, error) {
	// Try 2-char tokens first.
	if sc.pos+2 <= len(sc.s) {
		if t, ok := tokenTypes[sc.s[sc.pos:sc.pos+2]]; ok {
			sc.pos += 2
			return t, sizedTypes[t], nil
		}
	}
	if sc.pos+1 <= len(sc.s) {
		if t, ok := tokenTypes[sc.s[sc.pos:sc.pos+1]]; ok {
			sc.pos++
			return t, sizedTypes[t], nil
		}
	}
	return ast.TypeUndefined, false, &ErrMalformed{Reason: fmt.Sprintf("unrecognized type token at offset %d", sc.pos)}
}

// readTyped reads one Tn.../Tk... typed-identifier token, inverse of
// Mangler.writeTyped.
func (sc *scanner) readTyped() (ast.AstType, int, string, error) {
	sized := strings.HasPrefix(sc.s[sc.pos:], "Tk")
	plain := strings.HasPrefix(sc.s[sc.pos:], "Tn")
	if !sized && !plain {
		return ast.TypeUndefined, 0, "", &ErrMalformed{Reason: fmt.Sprintf("expected Tn/Tk at offset %d", sc.pos)}
	}
	sc.pos += 2

	t, isSized, err := sc.readTypeToken()
	if err != nil {
		return ast.TypeUndefined, 0, "", err
	}

	bits := 0
	if sized {
		if !isSized {
			return ast.TypeUndefined, 0, "", &ErrMalformed{Reason: "Tk token names a non-sized type"}
		}
		b, err := sc.readInt()
		if err != nil {
			return ast.TypeUndefined, 0, "", err
		}
		bits = b
		if err := sc.expect("_"); err != nil {
			return ast.TypeUndefined, 0, "", err
		}
	}

	nameLen, err := sc.readInt()
	if err != nil {
		return ast.TypeUndefined, 0, "", err
	}
	if sc.pos+nameLen > len(sc.s) {
		return ast.TypeUndefined, 0, "", &ErrMalformed{Reason: "name length exceeds remaining input"}
	}
	name := sc.s[sc.pos : sc.pos+nameLen]
	sc.pos += nameLen

	return t, bits, name, nil
}

// peek returns the next n bytes at the current position without
// consuming them (fewer than n at end of input).
func (sc *scanner) peek(n int) string {
	limit := sc.pos + n
	if limit > len(sc.s) {
		limit = len(sc.s)
	}
	return sc.s[sc.pos:limit]
}

// readIndexedTypedEntry inverts FuncParam/FuncArg/GateParam/KernelParam/
// KernelArg/DefcalParam/DefcalArg: marker, index, "_", a Tn/Tk typed
// token, then the trailing CallEnd-style "E".
func (sc *scanner) readIndexedTypedEntry(marker string) (CallEntry, error) {
	if err := sc.expect(marker); err != nil {
		return CallEntry{}, err
	}
	idx, err := sc.readInt()
	if err != nil {
		return CallEntry{}, err
	}
	if err := sc.expect("_"); err != nil {
		return CallEntry{}, err
	}
	t, bits, name, err := sc.readTyped()
	if err != nil {
		return CallEntry{}, err
	}
	if err := sc.expect(endExpr); err != nil {
		return CallEntry{}, err
	}
	return CallEntry{Index: idx, Type: t, Bits: bits, Name: name}, nil
}

// readIndexedNameEntry inverts GateArg/QubitTarget, which carry a bare
// name rather than a typed token: marker, index, "_", a length-prefixed
// name, then the trailing "E".
func (sc *scanner) readIndexedNameEntry(marker string) (int, string, error) {
	if err := sc.expect(marker); err != nil {
		return 0, "", err
	}
	idx, err := sc.readInt()
	if err != nil {
		return 0, "", err
	}
	if err := sc.expect("_"); err != nil {
		return 0, "", err
	}
	nameLen, err := sc.readInt()
	if err != nil {
		return 0, "", err
	}
	if sc.pos+nameLen > len(sc.s) {
		return 0, "", &ErrMalformed{Reason: "name length exceeds remaining input"}
	}
	name := sc.s[sc.pos : sc.pos+nameLen]
	sc.pos += nameLen
	if err := sc.expect(endExpr); err != nil {
		return 0, "", err
	}
	return idx, name, nil
}

// readReturnEntry inverts FuncReturn: "Fr", a Tn/Tk typed token with an
// empty name, then the trailing "E".
func (sc *scanner) readReturnEntry() (*Demangled, error) {
	if err := sc.expect("Fr"); err != nil {
		return nil, err
	}
	t, bits, name, err := sc.readTyped()
	if err != nil {
		return nil, err
	}
	if err := sc.expect(endExpr); err != nil {
		return nil, err
	}
	return &Demangled{Name: name, Type: t, Bits: bits}, nil
}

// CallEntryKind identifies which marker produced a CallEntry.
type CallEntryKind int

const (
	EntryFuncParam CallEntryKind = iota
	EntryFuncArg
	EntryGateParam
	EntryGateArg
	EntryKernelParam
	EntryKernelArg
	EntryDefcalParam
	EntryDefcalArg
	EntryQubitTarget
)

// callEntryMarkers maps a call body's two-letter marker to the kind of
// entry it introduces. "Gp" here always means GateParam, never the
// gphase modifier token: by the time the scanner is reading entries it
// has already consumed "cl", and the gphase token only ever appears in
// the outer modifier-chain loop before "cl" is seen, so the two uses of
// "Gp" are disambiguated by parse position rather than content.
var callEntryMarkers = map[string]CallEntryKind{
	"Fp": EntryFuncParam,
	"Fa": EntryFuncArg,
	"Gp": EntryGateParam,
	"Ga": EntryGateArg,
	"Kp": EntryKernelParam,
	"Ka": EntryKernelArg,
	"Dp": EntryDefcalParam,
	"Da": EntryDefcalArg,
	"Qt": EntryQubitTarget,
}

// nameOnlyEntries are the entry kinds written without a type token
// (GateArg/QubitTarget just bind a qubit name).
var nameOnlyEntries = map[CallEntryKind]bool{
	EntryGateArg:      true,
	EntryQubitTarget:  true,
}

// CallEntry is one parsed parameter/argument/qubit-target entry found
// inside a mangled call body.
type CallEntry struct {
	Kind  CallEntryKind
	Index int
	Type  ast.AstType
	Bits  int
	Name  string
}

// DemangledCall is the decoded description of a mangled call's modifier
// chain and signature shape (spec §4.7: "parse this regular structure
// back into a decorated description (name, type, bits, params, args,
// return, modifier chain)"). Modifiers is recorded in the order the
// mangled string presents them — outermost-applied first, matching spec
// §8 invariant 7's requirement that demangling `ctrl @ inv @ G` yields
// modifiers `[ctrl, inv]` in that order.
type DemangledCall struct {
	InCalibration bool
	Modifiers     []ast.AstType
	GPhase        bool
	Callee        *Demangled
	Entries       []CallEntry
	Return        *Demangled
}

// DemangleCall inverts internal/builder's MangleCall and, more generally,
// any mangled string built from a modifier-chain prefix followed by a
// `cl...E` call body containing Fp/Fa/Gp/Ga/Kp/Ka/Dp/Da/Qt/Fr entries —
// the inverse the package comment and Demangled's doc comment promise
// (spec §4.7).
func DemangleCall(mangled string) (*DemangledCall, error) {
	sc := &scanner{s: mangled}
	if err := sc.expect(startToken); err != nil {
		return nil, err
	}

	dc := &DemangledCall{}
	if strings.HasPrefix(sc.s[sc.pos:], calMarker) {
		dc.InCalibration = true
		sc.pos += len(calMarker)
	}

	for {
		switch sc.peek(2) {
		case "Ct":
			sc.pos += 2
			dc.Modifiers = append(dc.Modifiers, ast.TypeGateControl)
			continue
		case "Nc":
			sc.pos += 2
			dc.Modifiers = append(dc.Modifiers, ast.TypeGateNegControl)
			continue
		case "In":
			sc.pos += 2
			dc.Modifiers = append(dc.Modifiers, ast.TypeGateInverse)
			continue
		case "Pw":
			sc.pos += 2
			dc.Modifiers = append(dc.Modifiers, ast.TypeGatePower)
			continue
		case "Gp":
			sc.pos += 2
			dc.GPhase = true
		case "cl":
			sc.pos += 2
		default:
			return nil, &ErrMalformed{Reason: fmt.Sprintf("expected a modifier or call token at offset %d", sc.pos)}
		}
		break
	}

	if !dc.GPhase {
		t, bits, name, err := sc.readTyped()
		if err != nil {
			return nil, err
		}
		dc.Callee = &Demangled{Name: name, Type: t, Bits: bits, InCalibration: dc.InCalibration}

		for {
			marker := sc.peek(2)
			if marker == "Fr" {
				ret, err := sc.readReturnEntry()
				if err != nil {
					return nil, err
				}
				dc.Return = ret
				continue
			}
			kind, ok := callEntryMarkers[marker]
			if !ok {
				break
			}
			if nameOnlyEntries[kind] {
				idx, name, err := sc.readIndexedNameEntry(marker)
				if err != nil {
					return nil, err
				}
				dc.Entries = append(dc.Entries, CallEntry{Kind: kind, Index: idx, Name: name})
				continue
			}
			entry, err := sc.readIndexedTypedEntry(marker)
			if err != nil {
				return nil, err
			}
			entry.Kind = kind
			dc.Entries = append(dc.Entries, entry)
		}

		if err := sc.expect(endExpr); err != nil {
			return nil, err
		}
	}

	if err := sc.expect(end); err != nil {
		return nil, err
	}
	if sc.pos != len(sc.s) {
		return nil, &ErrMalformed{Reason: "trailing data after end token"}
	}
	return dc, nil
}

// DemangleIdentifier inverts MangleIdentifier, recovering the original
// (name, symbol_type, bits) tuple (spec invariant 3).
func DemangleIdentifier(mangled string) (*Demangled, error) {
	sc := &scanner{s: mangled}
	if err := sc.expect(startToken); err != nil {
		return nil, err
	}
	inCal := false
	if strings.HasPrefix(sc.s[sc.pos:], calMarker) {
		inCal = true
		sc.pos += len(calMarker)
	}

	t, bits, name, err := sc.readTyped()
	if err != nil {
		return nil, err
	}

	if err := sc.expect(end); err != nil {
		return nil, err
	}
	if sc.pos != len(sc.s) {
		return nil, &ErrMalformed{Reason: "trailing data after end token"}
	}

	return &Demangled{Name: name, Type: t, Bits: bits, InCalibration: inCal}, nil
}

package context

import "testing"

func TestNewTrackerStartsAtGlobal(t *testing.T) {
	tr := NewTracker()
	if tr.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", tr.Depth())
	}
	if tr.Current().Kind != KindGlobal {
		t.Fatalf("Current().Kind = %s, want Global", tr.Current().Kind)
	}
	if tr.Global() != tr.Current() {
		t.Fatalf("Global() != Current() at the root")
	}
}

func TestPushPopNesting(t *testing.T) {
	tr := NewTracker()
	gate := tr.Push(KindGate)
	if tr.Depth() != 2 {
		t.Fatalf("Depth() after one push = %d, want 2", tr.Depth())
	}
	block := tr.Push(KindBlock)
	if block.Parent != gate {
		t.Fatalf("nested Block's parent = %v, want the Gate context", block.Parent)
	}

	if err := tr.Pop(); err != nil {
		t.Fatalf("Pop() error: %v", err)
	}
	if tr.Current() != gate {
		t.Fatalf("Current() after popping Block = %v, want Gate", tr.Current())
	}
}

func TestPopUnderflowsAtGlobal(t *testing.T) {
	tr := NewTracker()
	if err := tr.Pop(); err != ErrContextUnderflow {
		t.Fatalf("Pop() at Global = %v, want ErrContextUnderflow", err)
	}
}

func TestInContextPredicates(t *testing.T) {
	tr := NewTracker()
	tr.Push(KindGate)
	tr.Push(KindIf)

	if !tr.InGateContext() {
		t.Error("InGateContext() = false inside gate > if, want true")
	}
	if tr.InDefcalContext() {
		t.Error("InDefcalContext() = true, want false")
	}
	if tr.InCalibrationContext() {
		t.Error("InCalibrationContext() = true, want false")
	}
}

func TestDominates(t *testing.T) {
	tr := NewTracker()
	global := tr.Current()
	gate := tr.Push(KindGate)
	block := tr.Push(KindBlock)

	if !Dominates(global, block) {
		t.Error("Dominates(global, block) = false, want true")
	}
	if !Dominates(gate, block) {
		t.Error("Dominates(gate, block) = false, want true")
	}
	if Dominates(block, gate) {
		t.Error("Dominates(block, gate) = true, want false")
	}
}

func TestRegisterUnregisterIsSymmetric(t *testing.T) {
	tr := NewTracker()
	ctx := tr.Push(KindFunction)
	ctx.Register("x")
	if !ctx.HasLocal("x") {
		t.Fatal("HasLocal(\"x\") = false right after Register")
	}
	ctx.Unregister("x")
	if ctx.HasLocal("x") {
		t.Fatal("HasLocal(\"x\") = true after Unregister")
	}
}

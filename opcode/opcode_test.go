package opcode

import "testing"

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

func TestLookupDefinedVsUndefined(t *testing.T) {
	assert(t, IsDefined(Nop), "nop should be defined")
	assert(t, IsDefined(ReturnVoid), "return-void should be defined")
	assert(t, !IsDefined(Opcode(0x3e)), "0x3e is an UNUSED slot in the original table")
	assert(t, !IsDefined(Opcode(0xff)), "0xff is an UNUSED slot in the original table")
}

func TestDecodeMove12x(t *testing.T) {
	// move v1, v2 -> opcode 0x01 in low byte, vA=1 (lo nibble), vB=2 (hi nibble) in high byte
	insns := []CodeUnit{0x2101}
	d, err := Decode(insns, 0)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, d.Op == Move, "expected Move, got %v", d.Op)
	assert(t, d.VA == 1, "expected vA=1, got %d", d.VA)
	assert(t, d.VB == 2, "expected vB=2, got %d", d.VB)
}

func TestDecodeConst4Negative(t *testing.T) {
	// const/4 vA, #-1 : opcode 0x12, vA in low nibble of high byte, B in high nibble (signed 4-bit)
	insns := []CodeUnit{0xf012}
	d, err := Decode(insns, 0)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, d.Op == Const4, "expected Const4, got %v", d.Op)
	assert(t, d.VA == 0, "expected vA=0, got %d", d.VA)
	assert(t, int32(d.VB) == -1, "expected vB=-1, got %d", int32(d.VB))
}

func TestDecodeInvokeVirtual35c(t *testing.T) {
	// invoke-virtual {v1, v2}, method@0x1234 : argCount=2 in high nibble, G reg in low nibble
	insns := []CodeUnit{0x216e, 0x1234, 0x0021}
	d, err := Decode(insns, 0)
	assert(t, err == nil, "unexpected error: %v", err)
	assert(t, d.Op == InvokeVirtual, "expected InvokeVirtual, got %v", d.Op)
	assert(t, d.VA == 2, "expected argCount=2, got %d", d.VA)
	assert(t, d.VB == 0x1234, "expected method index 0x1234, got 0x%x", d.VB)
	assert(t, d.Arg[0] == 1, "expected arg0=1, got %d", d.Arg[0])
	assert(t, d.Arg[1] == 2, "expected arg1=2, got %d", d.Arg[1])
}

func TestInstrOrTableWidthUndefinedOpcode(t *testing.T) {
	insns := []CodeUnit{0x00ff}
	w := InstrOrTableWidth(insns, 0)
	assert(t, w == 0, "undefined opcode should report width 0, got %d", w)
}

func TestPackedSwitchWidth(t *testing.T) {
	// packed-switch-data, size=2: width = 4 + 2*2 = 8
	insns := make([]CodeUnit, 8)
	insns[0] = PackedSwitchSignature
	insns[1] = 2
	w := InstrOrTableWidth(insns, 0)
	assert(t, w == 8, "expected width 8, got %d", w)
}

func TestArrayDataWidth(t *testing.T) {
	// element width 1, size 3: byteCount=3, ceil(3/2)=2, total width=6
	insns := make([]CodeUnit, 6)
	insns[0] = ArrayDataSignature
	insns[1] = 1
	insns[2] = 3
	insns[3] = 0
	w := InstrOrTableWidth(insns, 0)
	assert(t, w == 6, "expected width 6, got %d", w)
}

func TestFlagGCPoint(t *testing.T) {
	assert(t, Lookup(Throw).Flags.GCPoint(), "throw should be a GC point")
	assert(t, Lookup(InvokeVirtual).Flags.GCPoint(), "invoke-virtual should be a GC point")
	assert(t, !Lookup(Move).Flags.GCPoint(), "move should not be a GC point")
	assert(t, Lookup(Goto).Flags.IsGoto(), "goto should report IsGoto")
	assert(t, !Lookup(IfEq).Flags.IsGoto(), "if-eq is conditional, not a pure goto")
}

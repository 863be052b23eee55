package verifyflow

import (
	"dvmverify/opcode"
	"dvmverify/regtype"
)

// StaticResult is the output of the static checker: the populated flags
// array and the uninitialized-instance map, ready for the data-flow pass.
type StaticResult struct {
	Flags  InsnFlags
	Uninit *regtype.Map
	// HandlerCatchTypes maps a handler's entry address to every catch type
	// (across possibly several enclosing try blocks) that can transfer
	// control there, used by move-exception to compute the type it
	// delivers. A nil/absent CatchAll entry is represented by appending
	// regtype.ClassHandle(0) as a sentinel for "any throwable".
	HandlerCatchTypes map[int][]regtype.ClassHandle
}

// ComputeWidths is phase 1: walk the instruction stream
// exactly once computing each instruction's width and marking opcode-start
// addresses, without interpreting operands. Data-table payloads
// (packed-switch, sparse-switch, fill-array-data) are recognized by their
// pseudo-opcode signature and sized accordingly.
func ComputeWidths(m *Method) (InsnFlags, error) {
	flags := NewInsnFlags(m.InsnsSize())
	addr := 0
	for addr < len(m.Code) {
		w := int(opcode.InstrOrTableWidth(m.Code, addr))
		if w <= 0 {
			return nil, fail(addr, ErrGeneric, "unrecognized instruction or zero-width opcode 0x%04x", m.Code[addr])
		}
		if addr+w > len(m.Code) {
			return nil, fail(addr, ErrGeneric, "instruction width %d runs past end of code (size %d)", w, len(m.Code))
		}
		flags.SetOpcodeStart(addr)
		flags.SetWidth(addr, w)
		addr += w
	}
	return flags, nil
}

// MarkTryRegions is phase 2a: flag every code unit covered by a try block,
// and every handler entry address as a branch target.
// Handler addresses must land on an opcode-start address computed by
// phase 1; anything else is a malformed try-catch table.
func MarkTryRegions(m *Method, flags InsnFlags) (map[int][]regtype.ClassHandle, error) {
	catchTypes := make(map[int][]regtype.ClassHandle)
	for _, t := range m.Tries {
		if t.StartAddr < 0 || t.EndAddr > len(m.Code) || t.StartAddr >= t.EndAddr {
			return nil, fail(t.StartAddr, ErrGeneric, "malformed try range [0x%04x,0x%04x)", t.StartAddr, t.EndAddr)
		}
		if !flags.OpcodeStart(t.StartAddr) {
			return nil, fail(t.StartAddr, ErrGeneric, "try block does not start on an instruction boundary")
		}
		for addr := t.StartAddr; addr < t.EndAddr; addr++ {
			flags.SetInTry(addr)
		}
		for _, h := range t.Handlers {
			if h.Addr < 0 || h.Addr >= len(m.Code) || !flags.OpcodeStart(h.Addr) {
				return nil, fail(h.Addr, ErrGeneric, "exception handler does not land on an instruction boundary")
			}
			flags.SetBranchTarget(h.Addr)
			if h.CatchAll {
				catchTypes[h.Addr] = append(catchTypes[h.Addr], regtype.ClassHandle(0))
			} else {
				catchTypes[h.Addr] = append(catchTypes[h.Addr], h.CatchType)
			}
		}
	}
	return catchTypes, nil
}

// MarkGCPoints sets the GCPoint flag bit at every opcode-start address
// whose decoded flags include a GC point, the register-map prerequisite:
// throw, switch, branch, return, and invoke instructions.
func MarkGCPoints(m *Method, flags InsnFlags) error {
	for addr := 0; addr < len(m.Code); {
		if !flags.OpcodeStart(addr) {
			addr++
			continue
		}
		w := flags.Width(addr)
		op := opcode.Opcode(m.Code[addr] & 0xff)
		if opcode.IsDefined(op) {
			info := opcode.Lookup(op)
			if info.Flags.GCPoint() {
				flags.SetGCPoint(addr)
			}
		}
		addr += w
	}
	return nil
}

// ValidateBranchesAndSwitches is phase 2b / "Phase C" operand sanity:
// decode every instruction once to confirm branch and
// switch targets land on opcode-start addresses inside the method, and
// that packed/sparse-switch and fill-array-data payload tables are
// well-formed and correctly aligned relative to their owning instruction.
// It also builds the uninitialized-instance map by registering one slot
// per new-instance site in address order, and marks every branch target
// (explicit goto/if/switch destinations) in flags.
func ValidateBranchesAndSwitches(m *Method, flags InsnFlags) (*regtype.Map, error) {
	newInstanceCount := 0
	for addr := 0; addr < len(m.Code); addr++ {
		if flags.OpcodeStart(addr) {
			op := opcode.Opcode(m.Code[addr] & 0xff)
			if op == opcode.NewInstance {
				newInstanceCount++
			}
		}
	}
	uninit := regtype.NewMap(newInstanceCount, m.IsConstructor())

	for addr := 0; addr < len(m.Code); {
		if !flags.OpcodeStart(addr) {
			addr++
			continue
		}
		w := flags.Width(addr)
		di, err := opcode.Decode(m.Code, addr)
		if err != nil {
			return nil, fail(addr, ErrGeneric, "decode failed: %v", err)
		}

		if di.Op == opcode.NewInstance {
			uninit.Add(addr)
		}

		if offset, ok := branchOffsetOf(di); ok {
			if isGotoFamily(di.Op) && offset == 0 {
				return nil, fail(addr, ErrGeneric, "goto with zero offset forms an infinite no-op loop")
			}
			target64 := int64(addr) + int64(offset)
			if target64 != int64(int32(target64)) {
				return nil, fail(addr, ErrGeneric, "branch offset %d overflows a 32-bit address from 0x%04x", offset, addr)
			}
			target := int(target64)
			if err := checkTarget(m, flags, addr, target); err != nil {
				return nil, err
			}
			flags.SetBranchTarget(target)
		}
		if di.Op == opcode.PackedSwitch || di.Op == opcode.SparseSwitch || di.Op == opcode.FillArrayData {
			if tableAddr := addr + int(int32(di.VB)); tableAddr%2 != 0 {
				return nil, fail(addr, ErrGeneric, "payload table at 0x%04x is not 32-bit aligned", tableAddr)
			}
		}
		switch di.Op {
		case opcode.PackedSwitch:
			if err := validateSwitchTable(m, flags, addr, int32(di.VB), true); err != nil {
				return nil, err
			}
		case opcode.SparseSwitch:
			if err := validateSwitchTable(m, flags, addr, int32(di.VB), false); err != nil {
				return nil, err
			}
		case opcode.FillArrayData:
			if err := validateArrayData(m, addr, int32(di.VB)); err != nil {
				return nil, err
			}
		}
		addr += w
	}
	return uninit, nil
}

// branchOffsetOf returns the signed code-unit offset a branch-family
// instruction carries, following dvmGetBranchTarget's distinction between
// the unconditional goto encodings (signed offset in VA for 10t/20t/30t)
// and the one- and two-register if-test encodings (VB for 21t, VC for 22t).
func branchOffsetOf(di opcode.DecodedInstruction) (int32, bool) {
	info := opcode.Lookup(di.Op)
	if info.Flags&opcode.CanBranch == 0 {
		return 0, false
	}
	switch info.Format {
	case opcode.Fmt10t, opcode.Fmt20t, opcode.Fmt30t:
		return int32(di.VA), true
	case opcode.Fmt21t:
		return int32(di.VB), true
	case opcode.Fmt22t:
		return int32(di.VC), true
	default:
		return 0, false
	}
}

// isGotoFamily reports whether op is one of the unconditional goto
// encodings, the only branch family for which a zero offset is meaningless
// (an if-test or switch never targets itself this way).
func isGotoFamily(op opcode.Opcode) bool {
	switch op {
	case opcode.Goto, opcode.Goto16, opcode.Goto32:
		return true
	}
	return false
}

func checkTarget(m *Method, flags InsnFlags, from, target int) error {
	if target < 0 || target >= len(m.Code) {
		return fail(from, ErrGeneric, "branch target 0x%04x out of range", target)
	}
	if !flags.OpcodeStart(target) {
		return fail(from, ErrGeneric, "branch target 0x%04x is not an instruction boundary", target)
	}
	return nil
}

func validateSwitchTable(m *Method, flags InsnFlags, addr int, relOffset int32, packed bool) error {
	tableAddr := addr + int(relOffset)
	if tableAddr < 0 || tableAddr >= len(m.Code) {
		return fail(addr, ErrGeneric, "switch table offset out of range")
	}
	kind := opcode.PeekDataPayload(m.Code, tableAddr)
	if packed && kind != opcode.PackedSwitchPayload {
		return fail(addr, ErrGeneric, "expected packed-switch payload at table address")
	}
	if !packed && kind != opcode.SparseSwitchPayload {
		return fail(addr, ErrGeneric, "expected sparse-switch payload at table address")
	}
	if packed {
		_, targets := opcode.PackedSwitchEntries(m.Code, tableAddr)
		for _, t := range targets {
			if err := checkTarget(m, flags, addr, addr+int(t)); err != nil {
				return err
			}
			flags.SetBranchTarget(addr + int(t))
		}
	} else {
		entries := opcode.SparseSwitchEntries(m.Code, tableAddr)
		for i, e := range entries {
			if i > 0 && e.Key <= entries[i-1].Key {
				return fail(addr, ErrGeneric, "sparse-switch keys are not strictly ascending")
			}
			if err := checkTarget(m, flags, addr, addr+int(e.Target)); err != nil {
				return err
			}
			flags.SetBranchTarget(addr + int(e.Target))
		}
	}
	return nil
}

func validateArrayData(m *Method, addr int, relOffset int32) error {
	tableAddr := addr + int(relOffset)
	if tableAddr < 0 || tableAddr >= len(m.Code) {
		return fail(addr, ErrGeneric, "fill-array-data offset out of range")
	}
	kind := opcode.PeekDataPayload(m.Code, tableAddr)
	if kind != opcode.ArrayDataPayload {
		return fail(addr, ErrGeneric, "expected array-data payload at table address")
	}
	return nil
}

// RunStaticChecks runs phases 1 and 2 in sequence, producing the inputs
// phase 3 needs. A Hard-mode caller should treat any returned error as a
// fatal rejection of the method; there is no soft-failure path through the
// static checker. Soft failures are restricted to resolution failures
// discovered during phase 3.
func RunStaticChecks(m *Method) (*StaticResult, error) {
	flags, err := ComputeWidths(m)
	if err != nil {
		logStaticRejection(m.ID, "widths", err)
		return nil, err
	}
	catchTypes, err := MarkTryRegions(m, flags)
	if err != nil {
		logStaticRejection(m.ID, "try-regions", err)
		return nil, err
	}
	if err := MarkGCPoints(m, flags); err != nil {
		logStaticRejection(m.ID, "gc-points", err)
		return nil, err
	}
	uninit, err := ValidateBranchesAndSwitches(m, flags)
	if err != nil {
		logStaticRejection(m.ID, "branches-switches", err)
		return nil, err
	}
	return &StaticResult{Flags: flags, Uninit: uninit, HandlerCatchTypes: catchTypes}, nil
}

func logStaticRejection(methodID, phase string, err error) {
	addr := -1
	if ve, ok := err.(*VerifyError); ok {
		addr = ve.Addr
	}
	logRejection(methodID, phase, addr, err)
}

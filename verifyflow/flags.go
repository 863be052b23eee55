package verifyflow

// InsnFlags is a parallel array, one entry per code unit, carrying the
// per-address bookkeeping the static checker and data-flow verifier share.
// Grounded on CodeVerify.h's InsnFlags: width packed into the low 16 bits of
// a 32-bit word, with a handful of high bits used as independent booleans.
type InsnFlags []uint32

const (
	widthMask      = 0x0000ffff
	flagInTry      = 1 << 16
	flagBranchTarget = 1 << 17
	flagGCPoint    = 1 << 18
	flagVisited    = 1 << 19
	flagChanged    = 1 << 20
	flagOpcodeStart = 1 << 21 // marks the first code unit of a real instruction
)

// NewInsnFlags allocates a flags array sized to insnsSize code units.
func NewInsnFlags(insnsSize int) InsnFlags {
	return make(InsnFlags, insnsSize)
}

func (f InsnFlags) Width(addr int) int { return int(f[addr] & widthMask) }

func (f InsnFlags) SetWidth(addr int, w int) {
	f[addr] = (f[addr] &^ widthMask) | (uint32(w) & widthMask)
}

func (f InsnFlags) InTry(addr int) bool      { return f[addr]&flagInTry != 0 }
func (f InsnFlags) SetInTry(addr int)        { f[addr] |= flagInTry }
func (f InsnFlags) BranchTarget(addr int) bool { return f[addr]&flagBranchTarget != 0 }
func (f InsnFlags) SetBranchTarget(addr int) { f[addr] |= flagBranchTarget }
func (f InsnFlags) GCPoint(addr int) bool    { return f[addr]&flagGCPoint != 0 }
func (f InsnFlags) SetGCPoint(addr int)      { f[addr] |= flagGCPoint }
func (f InsnFlags) Visited(addr int) bool    { return f[addr]&flagVisited != 0 }
func (f InsnFlags) SetVisited(addr int)      { f[addr] |= flagVisited }
func (f InsnFlags) Changed(addr int) bool    { return f[addr]&flagChanged != 0 }
func (f InsnFlags) SetChanged(addr int)      { f[addr] |= flagChanged }
func (f InsnFlags) ClearChanged(addr int)    { f[addr] &^= flagChanged }
func (f InsnFlags) OpcodeStart(addr int) bool { return f[addr]&flagOpcodeStart != 0 }
func (f InsnFlags) SetOpcodeStart(addr int)  { f[addr] |= flagOpcodeStart }

// NeedsRegisterLine reports whether addr requires a saved register line:
// every branch target, plus (when requested) every GC point or, in
// all-addresses debug mode, every instruction.
func (f InsnFlags) NeedsRegisterLine(addr int, opts Options) bool {
	if opts.TrackAllAddresses {
		return true
	}
	if f.BranchTarget(addr) {
		return true
	}
	if opts.GenerateRegisterMap && f.GCPoint(addr) {
		return true
	}
	return false
}

// Package opcode holds the per-opcode width, format, and control-flow flag
// tables, plus the instruction decoder built on top of them.
//
// The tables are keyed by opcode (0-255), matching libdex/InstrUtils.h's
// three parallel arrays (gDexOpcodeInfo.{widths,formats,flags}). Opcode
// values and names are taken from libdex/OpCodeNames.c so that a fixture
// built against this table lines up with the original numbering. Opcode
// slots the original marks "UNUSED", or that belong to SMP-volatile field
// variants this verifier doesn't model, are left at their zero value and
// are rejected by the static checker exactly like any other undefined
// opcode.
package opcode

// Opcode identifies one Dalvik-style instruction.
type Opcode byte

// Format describes the operand layout of an instruction, named after the
// original format letters (kFmt10x, kFmt22c, kFmt35c, ...).
type Format byte

const (
	Fmt00x Format = iota // unknown/undefined
	Fmt10x               // op
	Fmt12x               // op vA, vB
	Fmt11n               // op vA, #+B
	Fmt11x               // op vAA
	Fmt10t               // op +AA (branch)
	Fmt20t               // op +AAAA (branch)
	Fmt22x               // op vAA, vBBBB
	Fmt21t               // op vAA, +BBBB (branch)
	Fmt21s               // op vAA, #+BBBB
	Fmt21h               // op vAA, #+BBBB0000[0000]
	Fmt21c               // op vAA, thing@BBBB
	Fmt23x               // op vAA, vBB, vCC
	Fmt22b               // op vAA, vBB, #+CC
	Fmt22t               // op vA, vB, +CCCC (branch)
	Fmt22s               // op vA, vB, #+CCCC
	Fmt22c               // op vA, vB, thing@CCCC
	Fmt30t               // op +AAAAAAAA (branch)
	Fmt32x               // op vAAAA, vBBBB
	Fmt31i               // op vAA, #+BBBBBBBB
	Fmt31t               // op vAA, +BBBBBBBB (switch/array-data payload ref)
	Fmt31c               // op vAA, string@BBBBBBBB
	Fmt35c               // op {vC,vD,vE,vF,vG}, thing@BBBB
	Fmt3rc               // op {vCCCC..v(CCCC+AA-1)}, thing@BBBB
	Fmt51l               // op vAA, #+BBBBBBBBBBBBBBBB
	FmtPackedSwitch      // packed-switch data payload
	FmtSparseSwitch      // sparse-switch data payload
	FmtArrayData         // array-data payload
)

// IndexType is the kind of constant-pool-style index an operand refers to,
// mirroring libdex/InstrUtils.h's InstructionIndexType.
type IndexType byte

const (
	IndexUnknown IndexType = iota
	IndexNone
	IndexVaries // throw-verification-error: depends on the encoded sub-kind
	IndexTypeRef
	IndexStringRef
	IndexMethodRef
	IndexFieldRef
	IndexInlineMethod
	IndexVtableOffset
	IndexFieldOffset
)

// Flag is a bitmask of control-flow properties an opcode can carry.
type Flag uint16

const (
	CanBranch   Flag = 1 << iota // has a relative branch target operand
	CanContinue                  // falls through to the next instruction
	CanSwitch                    // dispatches via a packed/sparse switch table
	CanThrow                     // may raise an exception at runtime
	CanReturn                    // ends the method
	IsInvoke                     // an invoke-* family instruction
)

// GCPoint reports whether an instruction with these flags is a place the
// interpreter may yield to garbage collection.
func (f Flag) GCPoint() bool {
	return f&(CanThrow|CanSwitch|CanBranch|CanReturn|IsInvoke) != 0
}

// IsGoto mirrors dexIsGoto: true for an unconditional branch (branches,
// never falls through).
func (f Flag) IsGoto() bool {
	return f&(CanBranch|CanContinue) == CanBranch
}

// Info is the static, per-opcode row shared by the width/format/flags
// tables.
type Info struct {
	Width uint16 // code units, 0 = undefined opcode
	Format
	IndexType
	Flags Flag
}

// table is the opcode -> Info map, populated by init() from opcodeRows.
var table [256]Info

// Lookup returns the static info for op. Width 0 means "undefined opcode".
func Lookup(op Opcode) Info {
	return table[op]
}

// IsDefined reports whether op has a non-zero width, i.e. is a real
// instruction and not a hole in the opcode space.
func IsDefined(op Opcode) bool {
	return table[op].Width != 0
}

// Name returns the instruction mnemonic recorded for op in the mnemonic
// table, or "unknown" when op has no entry there. The table covers only a
// subset of the defined opcodes (the /from16 and /16 move forms, the
// comparisons, and most arithmetic opcodes have no entry), so "unknown"
// does not by itself mean op is undefined.
func Name(op Opcode) string {
	n, ok := names[op]
	if !ok {
		return "unknown"
	}
	return n
}

func init() {
	for _, r := range opcodeRows {
		table[r.op] = Info{Width: r.width, Format: r.format, IndexType: r.index, Flags: r.flags}
	}
}

type opcodeRow struct {
	op     Opcode
	width  uint16
	format Format
	index  IndexType
	flags  Flag
}

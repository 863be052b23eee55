package opcode

import "fmt"

// DecodedInstruction is the decoded form of one code-unit stream position,
// mirroring libdex/InstrUtils.h's DecodedInstruction: an opcode, three
// operand slots, a 64-bit wide operand, and up to five argument registers
// for the variable-arity invoke/filled-new-array forms.
type DecodedInstruction struct {
	Op   Opcode
	VA   uint32
	VB   uint32
	VBWide uint64 // only meaningful for Fmt51l
	VC   uint32
	Arg  [5]uint32 // vC..vG for 35c; unused for 3rc (see RangeFirstReg/RangeArgCount)

	Width uint16 // code units consumed, from the opcode table
}

// CodeUnit is one 16-bit word of the instruction stream.
type CodeUnit = uint16

// ErrUndefinedOpcode is returned by Decode when the opcode byte has no
// table entry (width 0).
var ErrUndefinedOpcode = fmt.Errorf("undefined opcode")

// signExtend16 sign-extends a 16-bit value held in a uint32.
func signExtend16(v uint32) int32 { return int32(int16(v)) }

// Decode decodes the instruction starting at insns[pc]. pc and the slice
// are in code-unit (2-byte) units. It does not skip switch/array-data
// payload tables; callers check PeekDataPayload first (see width.go).
func Decode(insns []CodeUnit, pc int) (DecodedInstruction, error) {
	first := insns[pc]
	op := Opcode(first & 0xff)
	info := Lookup(op)
	if info.Width == 0 {
		return DecodedInstruction{}, fmt.Errorf("%w: 0x%02x at %d", ErrUndefinedOpcode, op, pc)
	}

	d := DecodedInstruction{Op: op, Width: info.Width}
	hi8 := uint32(first >> 8)

	switch info.Format {
	case Fmt10x:
		// no operands
	case Fmt12x:
		d.VA = uint32(hi8 & 0x0f)
		d.VB = uint32(hi8 >> 4)
	case Fmt11n:
		d.VA = uint32(hi8 & 0x0f)
		d.VB = uint32(signExtend4(uint16(hi8 >> 4)))
	case Fmt11x:
		d.VA = hi8
	case Fmt10t:
		d.VA = uint32(int32(int8(hi8))) // +AA signed branch offset, stashed in VA
	case Fmt20t:
		d.VA = uint32(int32(int16(insns[pc+1])))
	case Fmt22x:
		d.VA = hi8
		d.VB = uint32(insns[pc+1])
	case Fmt21t:
		d.VA = hi8
		d.VB = uint32(int32(int16(insns[pc+1])))
	case Fmt21s:
		d.VA = hi8
		d.VB = uint32(int32(int16(insns[pc+1])))
	case Fmt21h:
		d.VA = hi8
		d.VB = uint32(insns[pc+1])
	case Fmt21c:
		d.VA = hi8
		d.VB = uint32(insns[pc+1])
	case Fmt23x:
		d.VA = hi8
		second := insns[pc+1]
		d.VB = uint32(second & 0xff)
		d.VC = uint32(second >> 8)
	case Fmt22b:
		d.VA = hi8
		second := insns[pc+1]
		d.VB = uint32(second & 0xff)
		d.VC = uint32(int32(int8(second >> 8)))
	case Fmt22t:
		d.VA = uint32(hi8 & 0x0f)
		d.VB = uint32(hi8 >> 4)
		d.VC = uint32(int32(int16(insns[pc+1])))
	case Fmt22s:
		d.VA = uint32(hi8 & 0x0f)
		d.VB = uint32(hi8 >> 4)
		d.VC = uint32(int32(int16(insns[pc+1])))
	case Fmt22c:
		d.VA = uint32(hi8 & 0x0f)
		d.VB = uint32(hi8 >> 4)
		d.VC = uint32(insns[pc+1])
	case Fmt30t:
		d.VA = uint32(insns[pc+1]) | uint32(insns[pc+2])<<16
	case Fmt32x:
		d.VA = uint32(insns[pc+1])
		d.VB = uint32(insns[pc+2])
	case Fmt31i:
		d.VA = hi8
		d.VB = uint32(insns[pc+1]) | uint32(insns[pc+2])<<16
	case Fmt31t:
		d.VA = hi8
		d.VB = uint32(insns[pc+1]) | uint32(insns[pc+2])<<16
	case Fmt31c:
		d.VA = hi8
		d.VB = uint32(insns[pc+1]) | uint32(insns[pc+2])<<16
	case Fmt35c:
		argCount := uint32(hi8 >> 4)
		d.VA = argCount
		d.VB = uint32(insns[pc+1]) // method/type index
		regs := insns[pc+2]
		g := uint32(hi8 & 0x0f)
		d.Arg[0] = uint32(regs & 0x0f)
		d.Arg[1] = uint32((regs >> 4) & 0x0f)
		d.Arg[2] = uint32((regs >> 8) & 0x0f)
		d.Arg[3] = uint32((regs >> 12) & 0x0f)
		d.Arg[4] = g
	case Fmt3rc:
		count := hi8
		d.VA = uint32(count)
		d.VB = uint32(insns[pc+1])
		d.VC = uint32(insns[pc+2]) // first register in the range
	case Fmt51l:
		d.VA = hi8
		lo := uint64(insns[pc+1]) | uint64(insns[pc+2])<<16
		hi := uint64(insns[pc+3]) | uint64(insns[pc+4])<<16
		d.VBWide = lo | hi<<32
	default:
		return DecodedInstruction{}, fmt.Errorf("opcode 0x%02x has no decodable format", op)
	}

	return d, nil
}

func signExtend4(v uint16) int32 {
	v &= 0x0f
	if v&0x08 != 0 {
		return int32(v) - 16
	}
	return int32(v)
}

// RangeArgCount returns the number of registers covered by a Fmt3rc
// instruction (filled-new-array/range, invoke-*/range, execute-inline/range).
func (d DecodedInstruction) RangeArgCount() uint32 { return d.VA }

// RangeFirstReg returns the first register of a Fmt3rc register range.
func (d DecodedInstruction) RangeFirstReg() uint32 { return d.VC }

package regtype

// the1nr range covers the category-1 numeric kinds a value can be checked
// against (Float, Zero, One, Boolean, PosByte, Byte, PosShort, Short, Char,
// Integer), mirroring kRegType1nrSTART..kRegType1nrEND.
const (
	kind1nrStart = Float
	kind1nrEnd   = Integer
)

// convTab1nr answers "can a register holding srcType be used somewhere
// that declares checkType", transcribed from the original's canConvertTo1nr
// convTab. Row = srcType, column = checkType, both offset by kind1nrStart.
var convTab1nr = [int(kind1nrEnd-kind1nrStart) + 1][int(kind1nrEnd-kind1nrStart) + 1]bool{
	/* F */ {true, false, false, false, false, false, false, false, false, true},
	/* 0 */ {true, true, false, true, true, true, true, true, true, true},
	/* 1 */ {true, false, true, true, true, true, true, true, true, true},
	/* Z */ {true, false, false, true, true, true, true, true, true, true},
	/* b */ {true, false, false, false, true, true, true, true, true, true},
	/* B */ {true, false, false, false, false, true, false, true, false, true},
	/* s */ {true, false, false, false, false, false, true, true, true, true},
	/* S */ {true, false, false, false, false, false, false, true, false, true},
	/* C */ {true, false, false, false, false, false, false, false, true, true},
	/* I */ {true, false, false, false, false, false, false, false, false, true},
}

// CanConvertTo1nr reports whether a register holding src may be used where
// check (a category-1 non-reference kind) is declared. check must be in
// [Float, Integer]; callers only invoke this for checking against a known
// non-reference instruction operand kind.
func CanConvertTo1nr(src, check Kind) bool {
	if check < kind1nrStart || check > kind1nrEnd {
		return false
	}
	if src < kind1nrStart || src > kind1nrEnd {
		return false
	}
	return convTab1nr[src-kind1nrStart][check-kind1nrStart]
}

// CanConvertTo2 reports whether src and check are compatible category-2
// numeric kinds: Dalvik treats long and double as interchangeable at the
// register level (only the arithmetic opcode distinguishes them).
func CanConvertTo2(src, check Kind) bool {
	isLoHalf := func(k Kind) bool { return k == LongLo || k == DoubleLo }
	return isLoHalf(src) && isLoHalf(check)
}

// TightestLiteral classifies a 32-bit constant into the narrowest lattice
// kind that can hold it, matching CodeVerify.c's const-handling rules:
// 0 -> Zero, 1 -> One, else progressively wider signed/unsigned ranges.
func TightestLiteral(v int32) Kind {
	switch {
	case v == 0:
		return Zero
	case v == 1:
		return One
	case v >= 0 && v <= 0x7f:
		return PosByte
	case v >= -0x80 && v <= 0x7f:
		return Byte
	case v >= 0 && v <= 0x7fff:
		return PosShort
	case v >= -0x8000 && v <= 0x7fff:
		return Short
	case v >= 0 && v <= 0xffff:
		return Char
	default:
		return Integer
	}
}

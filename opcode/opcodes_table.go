package opcode

// Opcode constants. Values and mnemonics follow libdex/OpCodeNames.c; the
// "+" and "^" prefixed optimized/internal mnemonics from that table
// (quickened forms, throw-verification-error) are kept without the prefix
// since this table is the canonical one consumers see.
const (
	Nop               Opcode = 0x00
	Move              Opcode = 0x01
	MoveFrom16        Opcode = 0x02
	Move16            Opcode = 0x03
	MoveWide          Opcode = 0x04
	MoveWideFrom16    Opcode = 0x05
	MoveWide16        Opcode = 0x06
	MoveObject        Opcode = 0x07
	MoveObjectFrom16  Opcode = 0x08
	MoveObject16      Opcode = 0x09
	MoveResult        Opcode = 0x0a
	MoveResultWide    Opcode = 0x0b
	MoveResultObject  Opcode = 0x0c
	MoveException     Opcode = 0x0d
	ReturnVoid        Opcode = 0x0e
	Return            Opcode = 0x0f
	ReturnWide        Opcode = 0x10
	ReturnObject      Opcode = 0x11
	Const4            Opcode = 0x12
	Const16           Opcode = 0x13
	Const             Opcode = 0x14
	ConstHigh16       Opcode = 0x15
	ConstWide16       Opcode = 0x16
	ConstWide32       Opcode = 0x17
	ConstWide         Opcode = 0x18
	ConstWideHigh16   Opcode = 0x19
	ConstString       Opcode = 0x1a
	ConstStringJumbo  Opcode = 0x1b
	ConstClass        Opcode = 0x1c
	MonitorEnter      Opcode = 0x1d
	MonitorExit       Opcode = 0x1e
	CheckCast         Opcode = 0x1f
	InstanceOf        Opcode = 0x20
	ArrayLength       Opcode = 0x21
	NewInstance       Opcode = 0x22
	NewArray          Opcode = 0x23
	FilledNewArray    Opcode = 0x24
	FilledNewArrayRng Opcode = 0x25
	FillArrayData     Opcode = 0x26
	Throw             Opcode = 0x27
	Goto              Opcode = 0x28
	Goto16            Opcode = 0x29
	Goto32            Opcode = 0x2a
	PackedSwitch      Opcode = 0x2b
	SparseSwitch      Opcode = 0x2c
	CmplFloat         Opcode = 0x2d
	CmpgFloat         Opcode = 0x2e
	CmplDouble        Opcode = 0x2f
	CmpgDouble        Opcode = 0x30
	CmpLong           Opcode = 0x31
	IfEq              Opcode = 0x32
	IfNe              Opcode = 0x33
	IfLt              Opcode = 0x34
	IfGe              Opcode = 0x35
	IfGt              Opcode = 0x36
	IfLe              Opcode = 0x37
	IfEqz             Opcode = 0x38
	IfNez             Opcode = 0x39
	IfLtz             Opcode = 0x3a
	IfGez             Opcode = 0x3b
	IfGtz             Opcode = 0x3c
	IfLez             Opcode = 0x3d

	Aget        Opcode = 0x44
	AgetWide    Opcode = 0x45
	AgetObject  Opcode = 0x46
	AgetBoolean Opcode = 0x47
	AgetByte    Opcode = 0x48
	AgetChar    Opcode = 0x49
	AgetShort   Opcode = 0x4a
	Aput        Opcode = 0x4b
	AputWide    Opcode = 0x4c
	AputObject  Opcode = 0x4d
	AputBoolean Opcode = 0x4e
	AputByte    Opcode = 0x4f
	AputChar    Opcode = 0x50
	AputShort   Opcode = 0x51

	Iget        Opcode = 0x52
	IgetWide    Opcode = 0x53
	IgetObject  Opcode = 0x54
	IgetBoolean Opcode = 0x55
	IgetByte    Opcode = 0x56
	IgetChar    Opcode = 0x57
	IgetShort   Opcode = 0x58
	Iput        Opcode = 0x59
	IputWide    Opcode = 0x5a
	IputObject  Opcode = 0x5b
	IputBoolean Opcode = 0x5c
	IputByte    Opcode = 0x5d
	IputChar    Opcode = 0x5e
	IputShort   Opcode = 0x5f

	Sget        Opcode = 0x60
	SgetWide    Opcode = 0x61
	SgetObject  Opcode = 0x62
	SgetBoolean Opcode = 0x63
	SgetByte    Opcode = 0x64
	SgetChar    Opcode = 0x65
	SgetShort   Opcode = 0x66
	Sput        Opcode = 0x67
	SputWide    Opcode = 0x68
	SputObject  Opcode = 0x69
	SputBoolean Opcode = 0x6a
	SputByte    Opcode = 0x6b
	SputChar    Opcode = 0x6c
	SputShort   Opcode = 0x6d

	InvokeVirtual      Opcode = 0x6e
	InvokeSuper        Opcode = 0x6f
	InvokeDirect       Opcode = 0x70
	InvokeStatic       Opcode = 0x71
	InvokeInterface    Opcode = 0x72
	InvokeVirtualRange Opcode = 0x74
	InvokeSuperRange   Opcode = 0x75
	InvokeDirectRange  Opcode = 0x76
	InvokeStaticRange  Opcode = 0x77
	InvokeInterfaceRng Opcode = 0x78

	NegInt        Opcode = 0x7b
	NotInt        Opcode = 0x7c
	NegLong       Opcode = 0x7d
	NotLong       Opcode = 0x7e
	NegFloat      Opcode = 0x7f
	NegDouble     Opcode = 0x80
	IntToLong     Opcode = 0x81
	IntToFloat    Opcode = 0x82
	IntToDouble   Opcode = 0x83
	LongToInt     Opcode = 0x84
	LongToFloat   Opcode = 0x85
	LongToDouble  Opcode = 0x86
	FloatToInt    Opcode = 0x87
	FloatToLong   Opcode = 0x88
	FloatToDouble Opcode = 0x89
	DoubleToInt   Opcode = 0x8a
	DoubleToLong  Opcode = 0x8b
	DoubleToFloat Opcode = 0x8c
	IntToByte     Opcode = 0x8d
	IntToChar     Opcode = 0x8e
	IntToShort    Opcode = 0x8f

	AddInt  Opcode = 0x90
	SubInt  Opcode = 0x91
	MulInt  Opcode = 0x92
	DivInt  Opcode = 0x93
	RemInt  Opcode = 0x94
	AndInt  Opcode = 0x95
	OrInt   Opcode = 0x96
	XorInt  Opcode = 0x97
	ShlInt  Opcode = 0x98
	ShrInt  Opcode = 0x99
	UshrInt Opcode = 0x9a

	AddLong  Opcode = 0x9b
	SubLong  Opcode = 0x9c
	MulLong  Opcode = 0x9d
	DivLong  Opcode = 0x9e
	RemLong  Opcode = 0x9f
	AndLong  Opcode = 0xa0
	OrLong   Opcode = 0xa1
	XorLong  Opcode = 0xa2
	ShlLong  Opcode = 0xa3
	ShrLong  Opcode = 0xa4
	UshrLong Opcode = 0xa5

	AddFloat  Opcode = 0xa6
	SubFloat  Opcode = 0xa7
	MulFloat  Opcode = 0xa8
	DivFloat  Opcode = 0xa9
	RemFloat  Opcode = 0xaa
	AddDouble Opcode = 0xab
	SubDouble Opcode = 0xac
	MulDouble Opcode = 0xad
	DivDouble Opcode = 0xae
	RemDouble Opcode = 0xaf

	AddInt2Addr  Opcode = 0xb0
	SubInt2Addr  Opcode = 0xb1
	MulInt2Addr  Opcode = 0xb2
	DivInt2Addr  Opcode = 0xb3
	RemInt2Addr  Opcode = 0xb4
	AndInt2Addr  Opcode = 0xb5
	OrInt2Addr   Opcode = 0xb6
	XorInt2Addr  Opcode = 0xb7
	ShlInt2Addr  Opcode = 0xb8
	ShrInt2Addr  Opcode = 0xb9
	UshrInt2Addr Opcode = 0xba

	AddLong2Addr  Opcode = 0xbb
	SubLong2Addr  Opcode = 0xbc
	MulLong2Addr  Opcode = 0xbd
	DivLong2Addr  Opcode = 0xbe
	RemLong2Addr  Opcode = 0xbf
	AndLong2Addr  Opcode = 0xc0
	OrLong2Addr   Opcode = 0xc1
	XorLong2Addr  Opcode = 0xc2
	ShlLong2Addr  Opcode = 0xc3
	ShrLong2Addr  Opcode = 0xc4
	UshrLong2Addr Opcode = 0xc5

	AddFloat2Addr  Opcode = 0xc6
	SubFloat2Addr  Opcode = 0xc7
	MulFloat2Addr  Opcode = 0xc8
	DivFloat2Addr  Opcode = 0xc9
	RemFloat2Addr  Opcode = 0xca
	AddDouble2Addr Opcode = 0xcb
	SubDouble2Addr Opcode = 0xcc
	MulDouble2Addr Opcode = 0xcd
	DivDouble2Addr Opcode = 0xce
	RemDouble2Addr Opcode = 0xcf

	AddIntLit16 Opcode = 0xd0
	RsubInt     Opcode = 0xd1
	MulIntLit16 Opcode = 0xd2
	DivIntLit16 Opcode = 0xd3
	RemIntLit16 Opcode = 0xd4
	AndIntLit16 Opcode = 0xd5
	OrIntLit16  Opcode = 0xd6
	XorIntLit16 Opcode = 0xd7

	AddIntLit8 Opcode = 0xd8
	RsubIntLit Opcode = 0xd9
	MulIntLit8 Opcode = 0xda
	DivIntLit8 Opcode = 0xdb
	RemIntLit8 Opcode = 0xdc
	AndIntLit8 Opcode = 0xdd
	OrIntLit8  Opcode = 0xde
	XorIntLit8 Opcode = 0xdf
	ShlIntLit8 Opcode = 0xe0
	ShrIntLit8 Opcode = 0xe1
	UshrIntLit8 Opcode = 0xe2

	ThrowVerificationError Opcode = 0xed
	ExecuteInline          Opcode = 0xee
	ExecuteInlineRange     Opcode = 0xef
	InvokeDirectEmpty      Opcode = 0xf0
	IgetQuick              Opcode = 0xf2
	IgetWideQuick          Opcode = 0xf3
	IgetObjectQuick        Opcode = 0xf4
	IputQuick              Opcode = 0xf5
	IputWideQuick          Opcode = 0xf6
	IputObjectQuick        Opcode = 0xf7
	InvokeVirtualQuick     Opcode = 0xf8
	InvokeVirtualQuickRng  Opcode = 0xf9
	InvokeSuperQuick       Opcode = 0xfa
	InvokeSuperQuickRng    Opcode = 0xfb
)

var names = map[Opcode]string{}

var opcodeRows = []opcodeRow{
	{Nop, 1, Fmt10x, IndexNone, CanContinue},
	{Move, 1, Fmt12x, IndexNone, CanContinue},
	{MoveFrom16, 2, Fmt22x, IndexNone, CanContinue},
	{Move16, 3, Fmt32x, IndexNone, CanContinue},
	{MoveWide, 1, Fmt12x, IndexNone, CanContinue},
	{MoveWideFrom16, 2, Fmt22x, IndexNone, CanContinue},
	{MoveWide16, 3, Fmt32x, IndexNone, CanContinue},
	{MoveObject, 1, Fmt12x, IndexNone, CanContinue},
	{MoveObjectFrom16, 2, Fmt22x, IndexNone, CanContinue},
	{MoveObject16, 3, Fmt32x, IndexNone, CanContinue},
	{MoveResult, 1, Fmt11x, IndexNone, CanContinue},
	{MoveResultWide, 1, Fmt11x, IndexNone, CanContinue},
	{MoveResultObject, 1, Fmt11x, IndexNone, CanContinue},
	{MoveException, 1, Fmt11x, IndexNone, CanContinue},
	{ReturnVoid, 1, Fmt10x, IndexNone, CanReturn},
	{Return, 1, Fmt11x, IndexNone, CanReturn},
	{ReturnWide, 1, Fmt11x, IndexNone, CanReturn},
	{ReturnObject, 1, Fmt11x, IndexNone, CanReturn},
	{Const4, 1, Fmt11n, IndexNone, CanContinue},
	{Const16, 2, Fmt21s, IndexNone, CanContinue},
	{Const, 3, Fmt31i, IndexNone, CanContinue},
	{ConstHigh16, 2, Fmt21h, IndexNone, CanContinue},
	{ConstWide16, 2, Fmt21s, IndexNone, CanContinue},
	{ConstWide32, 3, Fmt31i, IndexNone, CanContinue},
	{ConstWide, 5, Fmt51l, IndexNone, CanContinue},
	{ConstWideHigh16, 2, Fmt21h, IndexNone, CanContinue},
	{ConstString, 2, Fmt21c, IndexStringRef, CanContinue},
	{ConstStringJumbo, 3, Fmt31c, IndexStringRef, CanContinue},
	{ConstClass, 2, Fmt21c, IndexTypeRef, CanContinue},
	{MonitorEnter, 1, Fmt11x, IndexNone, CanContinue | CanThrow},
	{MonitorExit, 1, Fmt11x, IndexNone, CanContinue | CanThrow},
	{CheckCast, 2, Fmt21c, IndexTypeRef, CanContinue | CanThrow},
	{InstanceOf, 2, Fmt22c, IndexTypeRef, CanContinue | CanThrow},
	{ArrayLength, 1, Fmt12x, IndexNone, CanContinue | CanThrow},
	{NewInstance, 2, Fmt21c, IndexTypeRef, CanContinue | CanThrow},
	{NewArray, 2, Fmt22c, IndexTypeRef, CanContinue | CanThrow},
	{FilledNewArray, 3, Fmt35c, IndexTypeRef, CanContinue | CanThrow},
	{FilledNewArrayRng, 3, Fmt3rc, IndexTypeRef, CanContinue | CanThrow},
	{FillArrayData, 3, Fmt31t, IndexNone, CanContinue | CanThrow},
	{Throw, 1, Fmt11x, IndexNone, CanThrow},
	{Goto, 1, Fmt10t, IndexNone, CanBranch},
	{Goto16, 2, Fmt20t, IndexNone, CanBranch},
	{Goto32, 3, Fmt30t, IndexNone, CanBranch},
	{PackedSwitch, 3, Fmt31t, IndexNone, CanContinue | CanSwitch},
	{SparseSwitch, 3, Fmt31t, IndexNone, CanContinue | CanSwitch},
	{CmplFloat, 2, Fmt23x, IndexNone, CanContinue},
	{CmpgFloat, 2, Fmt23x, IndexNone, CanContinue},
	{CmplDouble, 2, Fmt23x, IndexNone, CanContinue},
	{CmpgDouble, 2, Fmt23x, IndexNone, CanContinue},
	{CmpLong, 2, Fmt23x, IndexNone, CanContinue},
	{IfEq, 2, Fmt22t, IndexNone, CanContinue | CanBranch},
	{IfNe, 2, Fmt22t, IndexNone, CanContinue | CanBranch},
	{IfLt, 2, Fmt22t, IndexNone, CanContinue | CanBranch},
	{IfGe, 2, Fmt22t, IndexNone, CanContinue | CanBranch},
	{IfGt, 2, Fmt22t, IndexNone, CanContinue | CanBranch},
	{IfLe, 2, Fmt22t, IndexNone, CanContinue | CanBranch},
	{IfEqz, 2, Fmt21t, IndexNone, CanContinue | CanBranch},
	{IfNez, 2, Fmt21t, IndexNone, CanContinue | CanBranch},
	{IfLtz, 2, Fmt21t, IndexNone, CanContinue | CanBranch},
	{IfGez, 2, Fmt21t, IndexNone, CanContinue | CanBranch},
	{IfGtz, 2, Fmt21t, IndexNone, CanContinue | CanBranch},
	{IfLez, 2, Fmt21t, IndexNone, CanContinue | CanBranch},

	{Aget, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AgetWide, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AgetObject, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AgetBoolean, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AgetByte, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AgetChar, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AgetShort, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{Aput, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AputWide, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AputObject, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AputBoolean, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AputByte, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AputChar, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AputShort, 2, Fmt23x, IndexNone, CanContinue | CanThrow},

	{Iget, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IgetWide, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IgetObject, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IgetBoolean, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IgetByte, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IgetChar, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IgetShort, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{Iput, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IputWide, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IputObject, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IputBoolean, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IputByte, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IputChar, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},
	{IputShort, 2, Fmt22c, IndexFieldRef, CanContinue | CanThrow},

	{Sget, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SgetWide, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SgetObject, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SgetBoolean, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SgetByte, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SgetChar, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SgetShort, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{Sput, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SputWide, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SputObject, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SputBoolean, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SputByte, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SputChar, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},
	{SputShort, 2, Fmt21c, IndexFieldRef, CanContinue | CanThrow},

	{InvokeVirtual, 3, Fmt35c, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeSuper, 3, Fmt35c, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeDirect, 3, Fmt35c, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeStatic, 3, Fmt35c, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeInterface, 3, Fmt35c, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeVirtualRange, 3, Fmt3rc, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeSuperRange, 3, Fmt3rc, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeDirectRange, 3, Fmt3rc, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeStaticRange, 3, Fmt3rc, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{InvokeInterfaceRng, 3, Fmt3rc, IndexMethodRef, CanContinue | CanThrow | IsInvoke},

	{NegInt, 1, Fmt12x, IndexNone, CanContinue},
	{NotInt, 1, Fmt12x, IndexNone, CanContinue},
	{NegLong, 1, Fmt12x, IndexNone, CanContinue},
	{NotLong, 1, Fmt12x, IndexNone, CanContinue},
	{NegFloat, 1, Fmt12x, IndexNone, CanContinue},
	{NegDouble, 1, Fmt12x, IndexNone, CanContinue},
	{IntToLong, 1, Fmt12x, IndexNone, CanContinue},
	{IntToFloat, 1, Fmt12x, IndexNone, CanContinue},
	{IntToDouble, 1, Fmt12x, IndexNone, CanContinue},
	{LongToInt, 1, Fmt12x, IndexNone, CanContinue},
	{LongToFloat, 1, Fmt12x, IndexNone, CanContinue},
	{LongToDouble, 1, Fmt12x, IndexNone, CanContinue},
	{FloatToInt, 1, Fmt12x, IndexNone, CanContinue},
	{FloatToLong, 1, Fmt12x, IndexNone, CanContinue},
	{FloatToDouble, 1, Fmt12x, IndexNone, CanContinue},
	{DoubleToInt, 1, Fmt12x, IndexNone, CanContinue},
	{DoubleToLong, 1, Fmt12x, IndexNone, CanContinue},
	{DoubleToFloat, 1, Fmt12x, IndexNone, CanContinue},
	{IntToByte, 1, Fmt12x, IndexNone, CanContinue},
	{IntToChar, 1, Fmt12x, IndexNone, CanContinue},
	{IntToShort, 1, Fmt12x, IndexNone, CanContinue},

	{AddInt, 2, Fmt23x, IndexNone, CanContinue},
	{SubInt, 2, Fmt23x, IndexNone, CanContinue},
	{MulInt, 2, Fmt23x, IndexNone, CanContinue},
	{DivInt, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{RemInt, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AndInt, 2, Fmt23x, IndexNone, CanContinue},
	{OrInt, 2, Fmt23x, IndexNone, CanContinue},
	{XorInt, 2, Fmt23x, IndexNone, CanContinue},
	{ShlInt, 2, Fmt23x, IndexNone, CanContinue},
	{ShrInt, 2, Fmt23x, IndexNone, CanContinue},
	{UshrInt, 2, Fmt23x, IndexNone, CanContinue},

	{AddLong, 2, Fmt23x, IndexNone, CanContinue},
	{SubLong, 2, Fmt23x, IndexNone, CanContinue},
	{MulLong, 2, Fmt23x, IndexNone, CanContinue},
	{DivLong, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{RemLong, 2, Fmt23x, IndexNone, CanContinue | CanThrow},
	{AndLong, 2, Fmt23x, IndexNone, CanContinue},
	{OrLong, 2, Fmt23x, IndexNone, CanContinue},
	{XorLong, 2, Fmt23x, IndexNone, CanContinue},
	{ShlLong, 2, Fmt23x, IndexNone, CanContinue},
	{ShrLong, 2, Fmt23x, IndexNone, CanContinue},
	{UshrLong, 2, Fmt23x, IndexNone, CanContinue},

	{AddFloat, 2, Fmt23x, IndexNone, CanContinue},
	{SubFloat, 2, Fmt23x, IndexNone, CanContinue},
	{MulFloat, 2, Fmt23x, IndexNone, CanContinue},
	{DivFloat, 2, Fmt23x, IndexNone, CanContinue},
	{RemFloat, 2, Fmt23x, IndexNone, CanContinue},
	{AddDouble, 2, Fmt23x, IndexNone, CanContinue},
	{SubDouble, 2, Fmt23x, IndexNone, CanContinue},
	{MulDouble, 2, Fmt23x, IndexNone, CanContinue},
	{DivDouble, 2, Fmt23x, IndexNone, CanContinue},
	{RemDouble, 2, Fmt23x, IndexNone, CanContinue},

	{AddInt2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{SubInt2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{MulInt2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{DivInt2Addr, 1, Fmt12x, IndexNone, CanContinue | CanThrow},
	{RemInt2Addr, 1, Fmt12x, IndexNone, CanContinue | CanThrow},
	{AndInt2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{OrInt2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{XorInt2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{ShlInt2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{ShrInt2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{UshrInt2Addr, 1, Fmt12x, IndexNone, CanContinue},

	{AddLong2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{SubLong2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{MulLong2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{DivLong2Addr, 1, Fmt12x, IndexNone, CanContinue | CanThrow},
	{RemLong2Addr, 1, Fmt12x, IndexNone, CanContinue | CanThrow},
	{AndLong2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{OrLong2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{XorLong2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{ShlLong2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{ShrLong2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{UshrLong2Addr, 1, Fmt12x, IndexNone, CanContinue},

	{AddFloat2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{SubFloat2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{MulFloat2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{DivFloat2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{RemFloat2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{AddDouble2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{SubDouble2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{MulDouble2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{DivDouble2Addr, 1, Fmt12x, IndexNone, CanContinue},
	{RemDouble2Addr, 1, Fmt12x, IndexNone, CanContinue},

	{AddIntLit16, 2, Fmt22s, IndexNone, CanContinue},
	{RsubInt, 2, Fmt22s, IndexNone, CanContinue},
	{MulIntLit16, 2, Fmt22s, IndexNone, CanContinue},
	{DivIntLit16, 2, Fmt22s, IndexNone, CanContinue | CanThrow},
	{RemIntLit16, 2, Fmt22s, IndexNone, CanContinue | CanThrow},
	{AndIntLit16, 2, Fmt22s, IndexNone, CanContinue},
	{OrIntLit16, 2, Fmt22s, IndexNone, CanContinue},
	{XorIntLit16, 2, Fmt22s, IndexNone, CanContinue},

	{AddIntLit8, 2, Fmt22b, IndexNone, CanContinue},
	{RsubIntLit, 2, Fmt22b, IndexNone, CanContinue},
	{MulIntLit8, 2, Fmt22b, IndexNone, CanContinue},
	{DivIntLit8, 2, Fmt22b, IndexNone, CanContinue | CanThrow},
	{RemIntLit8, 2, Fmt22b, IndexNone, CanContinue | CanThrow},
	{AndIntLit8, 2, Fmt22b, IndexNone, CanContinue},
	{OrIntLit8, 2, Fmt22b, IndexNone, CanContinue},
	{XorIntLit8, 2, Fmt22b, IndexNone, CanContinue},
	{ShlIntLit8, 2, Fmt22b, IndexNone, CanContinue},
	{ShrIntLit8, 2, Fmt22b, IndexNone, CanContinue},
	{UshrIntLit8, 2, Fmt22b, IndexNone, CanContinue},

	{ThrowVerificationError, 2, Fmt20bcLike, IndexVaries, CanThrow},
	{ExecuteInline, 3, Fmt35c, IndexInlineMethod, CanContinue | CanThrow},
	{ExecuteInlineRange, 3, Fmt3rc, IndexInlineMethod, CanContinue | CanThrow},
	{InvokeDirectEmpty, 3, Fmt35c, IndexMethodRef, CanContinue | CanThrow | IsInvoke},
	{IgetQuick, 2, Fmt22c, IndexFieldOffset, CanContinue | CanThrow},
	{IgetWideQuick, 2, Fmt22c, IndexFieldOffset, CanContinue | CanThrow},
	{IgetObjectQuick, 2, Fmt22c, IndexFieldOffset, CanContinue | CanThrow},
	{IputQuick, 2, Fmt22c, IndexFieldOffset, CanContinue | CanThrow},
	{IputWideQuick, 2, Fmt22c, IndexFieldOffset, CanContinue | CanThrow},
	{IputObjectQuick, 2, Fmt22c, IndexFieldOffset, CanContinue | CanThrow},
	{InvokeVirtualQuick, 3, Fmt35c, IndexVtableOffset, CanContinue | CanThrow | IsInvoke},
	{InvokeVirtualQuickRng, 3, Fmt3rc, IndexVtableOffset, CanContinue | CanThrow | IsInvoke},
	{InvokeSuperQuick, 3, Fmt35c, IndexVtableOffset, CanContinue | CanThrow | IsInvoke},
	{InvokeSuperQuickRng, 3, Fmt3rc, IndexVtableOffset, CanContinue | CanThrow | IsInvoke},
}

// Fmt20bcLike is the layout used by throw-verification-error: vAA holds the
// failure sub-kind in its low 6 bits and the reference kind in its top 2
// bits, BBBB holds the reference index. It behaves
// like kFmt21c for width/decode purposes.
const Fmt20bcLike = Fmt21c

func init() {
	mnemonics := map[Opcode]string{
		Nop: "nop", Move: "move", MoveWide: "move-wide", MoveObject: "move-object",
		MoveResult: "move-result", MoveResultWide: "move-result-wide", MoveResultObject: "move-result-object",
		MoveException: "move-exception", ReturnVoid: "return-void", Return: "return",
		ReturnWide: "return-wide", ReturnObject: "return-object", Const4: "const/4",
		Const16: "const/16", Const: "const", ConstHigh16: "const/high16",
		ConstWide16: "const-wide/16", ConstWide32: "const-wide/32", ConstWide: "const-wide",
		ConstWideHigh16: "const-wide/high16", ConstString: "const-string",
		ConstStringJumbo: "const-string/jumbo", ConstClass: "const-class",
		MonitorEnter: "monitor-enter", MonitorExit: "monitor-exit", CheckCast: "check-cast",
		InstanceOf: "instance-of", ArrayLength: "array-length", NewInstance: "new-instance",
		NewArray: "new-array", FilledNewArray: "filled-new-array",
		FilledNewArrayRng: "filled-new-array/range", FillArrayData: "fill-array-data",
		Throw: "throw", Goto: "goto", Goto16: "goto/16", Goto32: "goto/32",
		PackedSwitch: "packed-switch", SparseSwitch: "sparse-switch",
		IfEq: "if-eq", IfNe: "if-ne", IfLt: "if-lt", IfGe: "if-ge", IfGt: "if-gt", IfLe: "if-le",
		IfEqz: "if-eqz", IfNez: "if-nez", IfLtz: "if-ltz", IfGez: "if-gez", IfGtz: "if-gtz", IfLez: "if-lez",
		Aget: "aget", AgetWide: "aget-wide", AgetObject: "aget-object", AgetBoolean: "aget-boolean",
		AgetByte: "aget-byte", AgetChar: "aget-char", AgetShort: "aget-short",
		Aput: "aput", AputWide: "aput-wide", AputObject: "aput-object", AputBoolean: "aput-boolean",
		AputByte: "aput-byte", AputChar: "aput-char", AputShort: "aput-short",
		Iget: "iget", IgetWide: "iget-wide", IgetObject: "iget-object", IgetBoolean: "iget-boolean",
		IgetByte: "iget-byte", IgetChar: "iget-char", IgetShort: "iget-short",
		Iput: "iput", IputWide: "iput-wide", IputObject: "iput-object", IputBoolean: "iput-boolean",
		IputByte: "iput-byte", IputChar: "iput-char", IputShort: "iput-short",
		Sget: "sget", SgetWide: "sget-wide", SgetObject: "sget-object", SgetBoolean: "sget-boolean",
		SgetByte: "sget-byte", SgetChar: "sget-char", SgetShort: "sget-short",
		Sput: "sput", SputWide: "sput-wide", SputObject: "sput-object", SputBoolean: "sput-boolean",
		SputByte: "sput-byte", SputChar: "sput-char", SputShort: "sput-short",
		InvokeVirtual: "invoke-virtual", InvokeSuper: "invoke-super", InvokeDirect: "invoke-direct",
		InvokeStatic: "invoke-static", InvokeInterface: "invoke-interface",
		InvokeVirtualRange: "invoke-virtual/range", InvokeSuperRange: "invoke-super/range",
		InvokeDirectRange: "invoke-direct/range", InvokeStaticRange: "invoke-static/range",
		InvokeInterfaceRng: "invoke-interface/range",
		NegInt:             "neg-int", ThrowVerificationError: "throw-verification-error",
		ExecuteInline: "execute-inline", ExecuteInlineRange: "execute-inline/range",
		InvokeDirectEmpty: "invoke-direct-empty", IgetQuick: "iget-quick",
		IgetWideQuick: "iget-wide-quick", IgetObjectQuick: "iget-object-quick",
		IputQuick: "iput-quick", IputWideQuick: "iput-wide-quick", IputObjectQuick: "iput-object-quick",
		InvokeVirtualQuick: "invoke-virtual-quick", InvokeVirtualQuickRng: "invoke-virtual-quick/range",
		InvokeSuperQuick: "invoke-super-quick", InvokeSuperQuickRng: "invoke-super-quick/range",
	}
	for op, n := range mnemonics {
		names[op] = n
	}
}

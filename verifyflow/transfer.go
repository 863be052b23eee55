package verifyflow

import (
	"dvmverify/opcode"
	"dvmverify/regtype"
	"dvmverify/resolver"
)

// pendingResult carries the return type of the most recently verified
// invoke-family instruction across to a following move-result* instruction.
// It is verifier-wide state rather than part of RegisterLine, so it is not
// merged at joins; it is replaced by the next invoke or filled-new-array and
// cleared by the move-result* that consumes it.
type pendingResult struct {
	valid bool
	typ   regtype.RegType
}

// step applies addr's instruction to line in place and returns it as the
// post-state. A non-nil error is a hard structural/type-safety rejection;
// a non-nil SoftFailure is a resolution miss the caller may downgrade to
// a quickening rewrite in Soft mode.
func (v *verifier) step(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	op := di.Op
	switch {
	case op == opcode.Nop:
		// no-op
	case isMove(op):
		return v.stepMove(addr, di, line)
	case isConst(op):
		return v.stepConst(addr, di, line)
	case op == opcode.MonitorEnter:
		if !line.Get(int(di.VA)).IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "monitor-enter on non-reference register")
		}
		line.PushMonitor(addr)
	case op == opcode.MonitorExit:
		if !line.Get(int(di.VA)).IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "monitor-exit on non-reference register")
		}
		if !line.PopMonitor() {
			return nil, nil, fail(addr, ErrGeneric, "monitor-exit without matching monitor-enter")
		}
	case op == opcode.CheckCast:
		return v.stepCheckCast(addr, di, line)
	case op == opcode.InstanceOf:
		return v.stepInstanceOf(addr, di, line)
	case op == opcode.ArrayLength:
		if !line.Get(int(di.VB)).IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "array-length on non-reference register")
		}
		line.Set(int(di.VA), regtype.Primitive(regtype.Integer))
	case op == opcode.NewInstance:
		return v.stepNewInstance(addr, di, line)
	case op == opcode.NewArray:
		return v.stepNewArray(addr, di, line)
	case op == opcode.FilledNewArray || op == opcode.FilledNewArrayRng:
		class, ok := v.res.ClassOf(di.VB)
		if !ok {
			return line, &SoftFailure{Addr: addr, Kind: ErrNoClass, Ref: RefClass, Msg: "unresolved filled-new-array type"}, nil
		}
		v.pending = pendingResult{valid: true, typ: regtype.Init(class)}
	case op == opcode.FillArrayData:
		if !line.Get(int(di.VA)).IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "fill-array-data on non-reference register")
		}
	case op == opcode.Throw:
		if !line.Get(int(di.VA)).IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "throw on non-reference register")
		}
	case isGotoOrSwitch(op):
		// no register effect
	case isCmp(op):
		v.stepCmp(di, line)
	case isIfTest(op):
		return v.stepIfTest(addr, di, line)
	case isAget(op):
		return v.stepAget(addr, di, line)
	case isAput(op):
		return v.stepAput(addr, di, line)
	case isIget(op):
		return v.stepIget(addr, di, line)
	case isIput(op):
		return v.stepIput(addr, di, line)
	case isSget(op):
		return v.stepSget(addr, di, line)
	case isSput(op):
		return v.stepSput(addr, di, line)
	case op >= opcode.ThrowVerificationError:
		return nil, nil, fail(addr, ErrGeneric, "quickened opcode 0x%02x (%s) is not accepted by the data-flow pass", byte(op), opcode.Name(op))
	case isInvoke(op):
		return v.stepInvoke(addr, di, line)
	case isReturn(op):
		return v.stepReturn(addr, di, line)
	case isUnary(op):
		v.stepUnary(di, line)
	case isBinary(op):
		v.stepBinary(di, line)
	case op == opcode.MoveException:
		line.Set(int(di.VA), v.exceptionTypeAt(addr))
	default:
		return nil, nil, fail(addr, ErrGeneric, "unhandled opcode 0x%02x (%s) in data-flow pass", byte(op), opcode.Name(op))
	}
	return line, nil, nil
}

func isMove(op opcode.Opcode) bool {
	switch op {
	case opcode.Move, opcode.MoveFrom16, opcode.Move16,
		opcode.MoveWide, opcode.MoveWideFrom16, opcode.MoveWide16,
		opcode.MoveObject, opcode.MoveObjectFrom16, opcode.MoveObject16,
		opcode.MoveResult, opcode.MoveResultWide, opcode.MoveResultObject:
		return true
	}
	return false
}

func (v *verifier) stepMove(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	switch di.Op {
	case opcode.MoveResult, opcode.MoveResultWide, opcode.MoveResultObject:
		if !v.pending.valid {
			return nil, nil, fail(addr, ErrGeneric, "move-result without a preceding invoke")
		}
		line.Set(int(di.VA), v.pending.typ)
		v.pending = pendingResult{}
		return line, nil, nil
	}
	var src int
	switch opcode.Lookup(di.Op).Format {
	case opcode.Fmt12x:
		src = int(di.VB)
	default:
		src = int(di.VB)
	}
	t := line.Get(src)
	switch di.Op {
	case opcode.MoveWide, opcode.MoveWideFrom16, opcode.MoveWide16:
		if !t.IsCategory2() {
			return nil, nil, fail(addr, ErrGeneric, "move-wide source is not a category-2 value")
		}
	case opcode.MoveObject, opcode.MoveObjectFrom16, opcode.MoveObject16:
		if !t.IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "move-object source is not a reference")
		}
	default:
		if t.IsCategory2() || t.IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "move source is a wide or reference value")
		}
	}
	line.Set(int(di.VA), t)
	return line, nil, nil
}

func isConst(op opcode.Opcode) bool {
	switch op {
	case opcode.Const4, opcode.Const16, opcode.Const, opcode.ConstHigh16,
		opcode.ConstWide16, opcode.ConstWide32, opcode.ConstWide, opcode.ConstWideHigh16,
		opcode.ConstString, opcode.ConstStringJumbo, opcode.ConstClass:
		return true
	}
	return false
}

func (v *verifier) stepConst(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	switch di.Op {
	case opcode.Const4, opcode.Const16:
		line.Set(int(di.VA), regtype.Primitive(regtype.TightestLiteral(int32(di.VB))))
	case opcode.ConstHigh16:
		line.Set(int(di.VA), regtype.Primitive(regtype.TightestLiteral(int32(di.VB<<16))))
	case opcode.Const:
		line.Set(int(di.VA), regtype.Primitive(regtype.TightestLiteral(int32(di.VB))))
	case opcode.ConstWide16, opcode.ConstWide32, opcode.ConstWideHigh16, opcode.ConstWide:
		line.Set(int(di.VA), regtype.Primitive(regtype.LongLo))
	case opcode.ConstString, opcode.ConstStringJumbo:
		line.Set(int(di.VA), v.res.MustStringClass())
	case opcode.ConstClass:
		class, ok := v.res.ClassOf(di.VB)
		if !ok {
			return line, &SoftFailure{Addr: addr, Kind: ErrNoClass, Ref: RefClass, Msg: "unresolved type in const-class"}, nil
		}
		_ = class
		line.Set(int(di.VA), v.res.MustClassClass())
	}
	return line, nil, nil
}

func (v *verifier) stepCheckCast(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	if !line.Get(int(di.VA)).IsReference() {
		return nil, nil, fail(addr, ErrGeneric, "check-cast on non-reference register")
	}
	class, ok := v.res.ClassOf(di.VB)
	if !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoClass, Ref: RefClass, Msg: "unresolved check-cast type"}, nil
	}
	line.Set(int(di.VA), regtype.Init(class))
	return line, nil, nil
}

func (v *verifier) stepInstanceOf(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	if !line.Get(int(di.VB)).IsReference() {
		return nil, nil, fail(addr, ErrGeneric, "instance-of on non-reference register")
	}
	if _, ok := v.res.ClassOf(di.VC); !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoClass, Ref: RefClass, Msg: "unresolved instance-of type"}, nil
	}
	line.Set(int(di.VA), regtype.Primitive(regtype.Boolean))
	return line, nil, nil
}

func (v *verifier) stepNewInstance(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	class, ok := v.res.ClassOf(di.VB)
	if !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoClass, Ref: RefClass, Msg: "unresolved new-instance type"}, nil
	}
	slot := v.uninit.SlotForAddr(addr)
	if slot < 0 {
		return nil, nil, fail(addr, ErrGeneric, "new-instance address missing from uninitialized-instance map")
	}
	v.uninit.SetClass(slot, class)
	v.conflictOutSite(line, slot)
	line.Set(int(di.VA), regtype.UninitAt(slot))
	return line, nil, nil
}

// conflictOutSite forces every register still holding an uninitialized
// reference from site to Conflict. A new-instance re-executed on a loop
// back-edge reuses the same site; without this, a register that kept the
// prior iteration's uninitialized value could alias the freshly allocated
// one and escape the loop still uninitialized.
func (v *verifier) conflictOutSite(line *RegisterLine, site regtype.SiteIndex) {
	for i := range line.Regs {
		if line.Regs[i].Kind() == regtype.UninitRef && line.Regs[i].Site() == site {
			line.Regs[i] = regtype.Primitive(regtype.Conflict)
		}
	}
}

func (v *verifier) stepNewArray(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	if !regtype.CanConvertTo1nr(line.Get(int(di.VB)).Kind(), regtype.Integer) {
		return nil, nil, fail(addr, ErrGeneric, "new-array size operand is not an int")
	}
	class, ok := v.res.ClassOf(di.VC)
	if !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoClass, Ref: RefClass, Msg: "unresolved new-array type"}, nil
	}
	line.Set(int(di.VA), regtype.Init(class))
	return line, nil, nil
}

func isGotoOrSwitch(op opcode.Opcode) bool {
	switch op {
	case opcode.Goto, opcode.Goto16, opcode.Goto32, opcode.PackedSwitch, opcode.SparseSwitch:
		return true
	}
	return false
}

func isCmp(op opcode.Opcode) bool {
	switch op {
	case opcode.CmplFloat, opcode.CmpgFloat, opcode.CmplDouble, opcode.CmpgDouble, opcode.CmpLong:
		return true
	}
	return false
}

func (v *verifier) stepCmp(di opcode.DecodedInstruction, line *RegisterLine) {
	line.Set(int(di.VA), regtype.Primitive(regtype.Byte))
}

func isIfTest(op opcode.Opcode) bool {
	return op >= opcode.IfEq && op <= opcode.IfLez
}

func (v *verifier) stepIfTest(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	// Operand category checking only; the branch itself is handled by
	// propagate via branchOffsetOf.
	if di.Op >= opcode.IfEq && di.Op <= opcode.IfLe {
		a, b := line.Get(int(di.VA)), line.Get(int(di.VB))
		if a.IsReference() != b.IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "if-test compares a reference with a non-reference")
		}
	}
	return line, nil, nil
}

func isAget(op opcode.Opcode) bool { return op >= opcode.Aget && op <= opcode.AgetShort }
func isAput(op opcode.Opcode) bool { return op >= opcode.Aput && op <= opcode.AputShort }

var agetResultKind = map[opcode.Opcode]regtype.Kind{
	opcode.Aget:        regtype.Integer,
	opcode.AgetBoolean: regtype.Boolean,
	opcode.AgetByte:    regtype.Byte,
	opcode.AgetChar:    regtype.Char,
	opcode.AgetShort:   regtype.Short,
}

func (v *verifier) stepAget(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	arr := line.Get(int(di.VB))
	if !arr.IsReference() {
		return nil, nil, fail(addr, ErrGeneric, "aget on non-reference array register")
	}
	idx := line.Get(int(di.VC))
	if !regtype.CanConvertTo1nr(idx.Kind(), regtype.Integer) {
		return nil, nil, fail(addr, ErrGeneric, "array index is not an int")
	}
	switch di.Op {
	case opcode.AgetWide:
		line.Set(int(di.VA), regtype.Primitive(regtype.LongLo))
	case opcode.AgetObject:
		elem := v.elementTypeOf(arr)
		line.Set(int(di.VA), elem)
	default:
		line.Set(int(di.VA), regtype.Primitive(agetResultKind[di.Op]))
	}
	return line, nil, nil
}

func (v *verifier) stepAput(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	arr := line.Get(int(di.VB))
	if !arr.IsReference() {
		return nil, nil, fail(addr, ErrGeneric, "aput on non-reference array register")
	}
	idx := line.Get(int(di.VC))
	if !regtype.CanConvertTo1nr(idx.Kind(), regtype.Integer) {
		return nil, nil, fail(addr, ErrGeneric, "array index is not an int")
	}
	val := line.Get(int(di.VA))
	switch di.Op {
	case opcode.AputWide:
		if !val.IsCategory2() {
			return nil, nil, fail(addr, ErrGeneric, "aput-wide value is not a category-2 type")
		}
	case opcode.AputObject:
		if !val.IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "aput-object value is not a reference")
		}
	}
	return line, nil, nil
}

func isIget(op opcode.Opcode) bool { return op >= opcode.Iget && op <= opcode.IgetShort }
func isIput(op opcode.Opcode) bool { return op >= opcode.Iput && op <= opcode.IputShort }

func (v *verifier) stepIget(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	obj := line.Get(int(di.VB))
	if !obj.IsReference() {
		return nil, nil, fail(addr, ErrGeneric, "iget on non-reference register")
	}
	fr, ok := v.res.ResolveInstanceField(v.m.DeclaringClass, di.VC)
	if !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoField, Ref: RefField, Msg: "unresolved instance field"}, nil
	}
	line.Set(int(di.VA), v.typeOfField(fr))
	return line, nil, nil
}

// typeOfField converts a resolved field's shorty (and, for reference
// types, its declared class) into the RegType a get of that field
// produces.
func (v *verifier) typeOfField(fr resolver.FieldRef) regtype.RegType {
	switch fr.TypeShorty {
	case 'Z', 'B', 'C', 'S', 'I':
		return regtype.Primitive(regtype.Integer)
	case 'F':
		return regtype.Primitive(regtype.Float)
	case 'J':
		return regtype.Primitive(regtype.LongLo)
	case 'D':
		return regtype.Primitive(regtype.DoubleLo)
	default:
		if fr.TypeClass == 0 {
			return regtype.Primitive(regtype.Unknown)
		}
		return regtype.Init(fr.TypeClass)
	}
}

func (v *verifier) stepIput(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	obj := line.Get(int(di.VB))
	if !obj.IsReference() {
		return nil, nil, fail(addr, ErrGeneric, "iput on non-reference register")
	}
	_, ok := v.res.ResolveInstanceField(v.m.DeclaringClass, di.VC)
	if !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoField, Ref: RefField, Msg: "unresolved instance field"}, nil
	}
	return line, nil, nil
}

func isSget(op opcode.Opcode) bool { return op >= opcode.Sget && op <= opcode.SgetShort }
func isSput(op opcode.Opcode) bool { return op >= opcode.Sput && op <= opcode.SputShort }

func (v *verifier) stepSget(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	fr, ok := v.res.ResolveStaticField(v.m.DeclaringClass, di.VB)
	if !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoField, Ref: RefField, Msg: "unresolved static field"}, nil
	}
	line.Set(int(di.VA), v.typeOfField(fr))
	return line, nil, nil
}

func (v *verifier) stepSput(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	_, ok := v.res.ResolveStaticField(v.m.DeclaringClass, di.VB)
	if !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoField, Ref: RefField, Msg: "unresolved static field"}, nil
	}
	return line, nil, nil
}

func isInvoke(op opcode.Opcode) bool {
	info := opcode.Lookup(op)
	return info.Flags&opcode.IsInvoke != 0
}

func isInvokeSuper(op opcode.Opcode) bool {
	return op == opcode.InvokeSuper || op == opcode.InvokeSuperRange
}

func isInvokeDirect(op opcode.Opcode) bool {
	return op == opcode.InvokeDirect || op == opcode.InvokeDirectRange
}

func (v *verifier) stepInvoke(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	ref := di.VB
	var resolved resolver.MethodRef
	var ok bool
	switch {
	case di.Op == opcode.InvokeInterface || di.Op == opcode.InvokeInterfaceRng:
		resolved, ok = v.res.ResolveInterfaceMethod(v.m.DeclaringClass, ref)
	case isInvokeSuper(di.Op):
		// invoke-super dispatches against the declaring class's superclass
		// vtable, not the referring class's own method table.
		resolved, ok = v.res.ResolveMethod(v.m.SuperClass, ref)
	default:
		resolved, ok = v.res.ResolveMethod(v.m.DeclaringClass, ref)
	}
	if !ok {
		return line, &SoftFailure{Addr: addr, Kind: ErrNoMethod, Ref: RefMethod, Msg: "unresolved method"}, nil
	}

	argRegs := v.invokeArgRegs(di)
	if !resolved.Static {
		if len(argRegs) == 0 {
			return nil, nil, fail(addr, ErrGeneric, "invoke missing implicit this argument")
		}
		this := line.Get(argRegs[0])
		if this.Kind() == regtype.UninitRef {
			// An uninitialized receiver may only be initialized by its own
			// constructor, and only when reached through invoke-direct: an
			// invoke-virtual, invoke-super, invoke-static, or
			// invoke-interface dispatch can never be the call that
			// initializes "this".
			if !isInvokeDirect(di.Op) || !resolved.Constructor {
				return nil, nil, fail(addr, ErrGeneric, "invoke on an uninitialized reference")
			}
			v.initializeSite(line, this.Site())
		} else if !this.IsReference() {
			return nil, nil, fail(addr, ErrGeneric, "invoke 'this' argument is not a reference")
		}
		argRegs = argRegs[1:]
	}
	next := 0
	for i, want := range resolved.ParamShorty {
		if next >= len(argRegs) || !v.shortyAccepts(want, line.Get(argRegs[next])) {
			return nil, nil, fail(addr, ErrGeneric, "invoke argument %d does not match parameter type", i)
		}
		next++
		if want == 'J' || want == 'D' {
			next++ // a wide value occupies two argument registers
		}
	}
	if next != len(argRegs) {
		return nil, nil, fail(addr, ErrGeneric, "invoke argument count does not match resolved prototype")
	}

	if resolved.ReturnShorty == 'V' {
		v.pending = pendingResult{}
	} else {
		v.pending = pendingResult{valid: true, typ: typeFromShorty(resolved.ReturnShorty, resolved.ReturnClass)}
	}
	return line, nil, nil
}

// invokeArgRegs lists a 35c or 3rc invoke's argument registers in order,
// one entry per register (a category-2 value contributes two entries);
// the 3rc range is expanded here from its first register and count.
func (v *verifier) invokeArgRegs(di opcode.DecodedInstruction) []int {
	info := opcode.Lookup(di.Op)
	if info.Format == opcode.Fmt3rc {
		n := int(di.RangeArgCount())
		first := int(di.RangeFirstReg())
		regs := make([]int, n)
		for i := 0; i < n; i++ {
			regs[i] = first + i
		}
		return regs
	}
	n := int(di.VA)
	regs := make([]int, n)
	for i := 0; i < n; i++ {
		regs[i] = int(di.Arg[i])
	}
	return regs
}

func (v *verifier) initializeSite(line *RegisterLine, site regtype.SiteIndex) {
	class := v.uninit.ClassAt(site)
	for i := range line.Regs {
		if line.Regs[i].Kind() == regtype.UninitRef && line.Regs[i].Site() == site {
			line.Regs[i] = regtype.Init(class)
		}
	}
}

func (v *verifier) shortyAccepts(shorty byte, got regtype.RegType) bool {
	switch shorty {
	case 'Z', 'B', 'C', 'S', 'I':
		return regtype.CanConvertTo1nr(got.Kind(), regtype.Integer)
	case 'F':
		return regtype.CanConvertTo1nr(got.Kind(), regtype.Float)
	case 'J', 'D':
		return got.IsCategory2()
	default:
		return got.IsReference()
	}
}

func isReturn(op opcode.Opcode) bool {
	switch op {
	case opcode.ReturnVoid, opcode.Return, opcode.ReturnWide, opcode.ReturnObject:
		return true
	}
	return false
}

func (v *verifier) stepReturn(addr int, di opcode.DecodedInstruction, line *RegisterLine) (*RegisterLine, *SoftFailure, error) {
	want := v.m.Proto.ReturnShorty
	switch di.Op {
	case opcode.ReturnVoid:
		if want != 'V' {
			return nil, nil, fail(addr, ErrGeneric, "return-void in a non-void method")
		}
	default:
		got := line.Get(int(di.VA))
		if !v.shortyAccepts(want, got) {
			return nil, nil, fail(addr, ErrGeneric, "return value does not match method return type")
		}
	}
	return line, nil, nil
}

func isUnary(op opcode.Opcode) bool { return op >= opcode.NegInt && op <= opcode.IntToShort }

func (v *verifier) stepUnary(di opcode.DecodedInstruction, line *RegisterLine) {
	var out regtype.Kind
	switch di.Op {
	case opcode.NegInt, opcode.NotInt, opcode.LongToInt, opcode.FloatToInt, opcode.DoubleToInt:
		out = regtype.Integer
	case opcode.NegLong, opcode.NotLong, opcode.IntToLong, opcode.FloatToLong, opcode.DoubleToLong:
		out = regtype.LongLo
	case opcode.NegFloat, opcode.IntToFloat, opcode.LongToFloat, opcode.DoubleToFloat:
		out = regtype.Float
	case opcode.NegDouble, opcode.IntToDouble, opcode.LongToDouble, opcode.FloatToDouble:
		out = regtype.DoubleLo
	case opcode.IntToByte:
		out = regtype.Byte
	case opcode.IntToChar:
		out = regtype.Char
	case opcode.IntToShort:
		out = regtype.Short
	}
	line.Set(int(di.VA), regtype.Primitive(out))
}

func isBinary(op opcode.Opcode) bool {
	return (op >= opcode.AddInt && op <= opcode.RemDouble2Addr) ||
		(op >= opcode.AddIntLit16 && op <= opcode.UshrIntLit8)
}

func (v *verifier) stepBinary(di opcode.DecodedInstruction, line *RegisterLine) {
	dest, kind := binaryDest(di)
	line.Set(dest, regtype.Primitive(kind))
}

// binaryDest returns the destination register and result kind of a
// binary-arithmetic family instruction, covering the 23x (three-register),
// 12x (2addr), 22s (lit16), and 22b (lit8) encodings.
func binaryDest(di opcode.DecodedInstruction) (int, regtype.Kind) {
	op := di.Op
	is2Addr := op >= opcode.AddInt2Addr && op <= opcode.RemDouble2Addr
	isLit := op >= opcode.AddIntLit16 && op <= opcode.UshrIntLit8
	var reg int
	if is2Addr || isLit {
		reg = int(di.VA)
	} else {
		reg = int(di.VA)
	}
	switch {
	case isLit:
		return reg, regtype.Integer
	case op >= opcode.AddInt && op <= opcode.UshrInt, op >= opcode.AddInt2Addr && op <= opcode.UshrInt2Addr:
		return reg, regtype.Integer
	case op >= opcode.AddLong && op <= opcode.UshrLong, op >= opcode.AddLong2Addr && op <= opcode.UshrLong2Addr:
		return reg, regtype.LongLo
	case op >= opcode.AddFloat && op <= opcode.RemFloat, op >= opcode.AddFloat2Addr && op <= opcode.RemFloat2Addr:
		return reg, regtype.Float
	case op >= opcode.AddDouble && op <= opcode.RemDouble, op >= opcode.AddDouble2Addr && op <= opcode.RemDouble2Addr:
		return reg, regtype.DoubleLo
	}
	return reg, regtype.Conflict
}

// elementTypeOf returns the best-known element type of an array reference
// for aget-object: Unknown if the array's class cannot be determined
// statically (e.g. it is Zero, the null constant).
func (v *verifier) elementTypeOf(arr regtype.RegType) regtype.RegType {
	if arr.Kind() != regtype.InitRef {
		return regtype.Primitive(regtype.Unknown)
	}
	elem, ok := v.res.ArrayElementClass(arr.Class())
	if !ok {
		return regtype.Primitive(regtype.Unknown)
	}
	return regtype.Init(elem)
}

// exceptionTypeAt computes the type move-exception delivers at a handler
// entry address: the common superclass across every catch clause that can
// reach this address, defaulting to the resolver's Throwable class when
// any of them is a catch-all.
func (v *verifier) exceptionTypeAt(addr int) regtype.RegType {
	types := v.catch[addr]
	if len(types) == 0 {
		return regtype.Primitive(regtype.Conflict)
	}
	result := types[0]
	isCatchAll := result == 0
	for _, t := range types[1:] {
		if t == 0 {
			isCatchAll = true
			continue
		}
		if result == 0 {
			result = t
			continue
		}
		result = v.res.FindCommonSuperclass(result, t)
	}
	if isCatchAll || result == 0 {
		return v.res.MustThrowableClass()
	}
	return regtype.Init(result)
}

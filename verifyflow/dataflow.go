package verifyflow

import (
	"dvmverify/opcode"
	"dvmverify/regtype"
	"dvmverify/resolver"
)

// Result is the outcome of a successful (or soft-recovered) phase 3 run:
// the saved register line at every tracked address, ready for register-map
// generation, plus any soft failures the caller should turn into
// throw-verification-error rewrites.
type Result struct {
	Lines        map[int]*RegisterLine
	SoftFailures []*SoftFailure
	Uninit       *regtype.Map
}

// Verify runs the phase 3 fixed-point data-flow verifier over m, using
// static as the phase 1/2 output and res to resolve classes/fields/methods
// encountered along the way.
func Verify(m *Method, static *StaticResult, res resolver.Resolver, opts Options) (*Result, error) {
	v := &verifier{
		m:      m,
		flags:  static.Flags,
		uninit: static.Uninit,
		catch:  static.HandlerCatchTypes,
		res:    res,
		opts:   opts,
		saved:  make(map[int]*RegisterLine),
	}
	return v.run()
}

type verifier struct {
	m      *Method
	flags  InsnFlags
	uninit *regtype.Map
	catch  map[int][]regtype.ClassHandle
	res    resolver.Resolver
	opts   Options

	saved   map[int]*RegisterLine
	work    []int
	soft    []*SoftFailure
	pending pendingResult
}

func (v *verifier) run() (*Result, error) {
	entry := v.entryLine()
	v.saved[0] = entry.Clone()
	v.work = append(v.work, 0)

	for len(v.work) > 0 {
		addr := v.work[len(v.work)-1]
		v.work = v.work[:len(v.work)-1]
		if !v.flags.OpcodeStart(addr) {
			err := fail(addr, ErrGeneric, "work-list address is not an instruction boundary")
			logRejection(v.m.ID, "data-flow", addr, err)
			return nil, err
		}

		line := v.saved[addr].Clone()
		di, err := opcode.Decode(v.m.Code, addr)
		if err != nil {
			decodeErr := fail(addr, ErrGeneric, "decode failed: %v", err)
			logRejection(v.m.ID, "data-flow", addr, decodeErr)
			return nil, decodeErr
		}
		preLine := line.Clone()

		next, softFail, err := v.step(addr, di, line)
		if err != nil {
			logRejection(v.m.ID, "data-flow", addr, err)
			return nil, err
		}
		if softFail != nil {
			v.soft = append(v.soft, softFail)
			logSoftFailure(v.m.ID, softFail)
			if v.opts.Mode == Hard {
				hardErr := fail(addr, softFail.Kind, "%s", softFail.Msg)
				logRejection(v.m.ID, "data-flow", addr, hardErr)
				return nil, hardErr
			}
		}

		v.flags.SetVisited(addr)

		if err := v.propagate(addr, di, next, preLine); err != nil {
			return nil, err
		}
	}

	if err := v.checkDeadCode(); err != nil {
		addr := -1
		if ve, ok := err.(*VerifyError); ok {
			addr = ve.Addr
		}
		logRejection(v.m.ID, "dead-code", addr, err)
		return nil, err
	}

	return &Result{Lines: v.saved, SoftFailures: v.soft, Uninit: v.uninit}, nil
}

// entryLine builds the register state at address 0: incoming arguments
// occupy the high registers (registersSize - insSize .. registersSize-1),
// a non-static method's "this" is an uninitialized reference at
// uninitialized-map slot ThisArgSlot (whose class is set to
// DeclaringClass) if the method is a constructor, InitRef(DeclaringClass)
// otherwise, and every other register starts Unknown.
func (v *verifier) entryLine() *RegisterLine {
	l := NewRegisterLine(v.m.RegistersSize)
	firstIn := v.m.RegistersSize - v.m.InsSize
	reg := firstIn

	if !v.m.Access.Has(AccStatic) {
		if v.m.IsConstructor() {
			v.uninit.SetClass(regtype.ThisArgSlot, v.m.DeclaringClass)
			l.Set(reg, regtype.UninitAt(regtype.ThisArgSlot))
		} else {
			l.Set(reg, regtype.Init(v.m.DeclaringClass))
		}
		reg++
	}
	for i, shorty := range v.m.Proto.ParamShorty {
		var class regtype.ClassHandle
		if i < len(v.m.Proto.ParamClasses) {
			class = v.m.Proto.ParamClasses[i]
		}
		t := typeFromShorty(shorty, class)
		l.Set(reg, t)
		if t.IsCategory2() {
			reg += 2
		} else {
			reg++
		}
	}
	return l
}

// typeFromShorty converts a shorty letter into the RegType a parameter or
// return value of that type carries. class supplies the declared
// reference class for 'L'/'[' shorty letters; a zero handle yields Zero
// (the null-compatible bottom), which still merges safely with any
// reference type encountered along every path before first use.
func typeFromShorty(c byte, class regtype.ClassHandle) regtype.RegType {
	switch c {
	case 'Z', 'B', 'C', 'S', 'I':
		return regtype.Primitive(regtype.Integer)
	case 'F':
		return regtype.Primitive(regtype.Float)
	case 'J':
		return regtype.Primitive(regtype.LongLo)
	case 'D':
		return regtype.Primitive(regtype.DoubleLo)
	default: // 'L', '[' and anything else: reference-typed
		if class == 0 {
			return regtype.Primitive(regtype.Zero)
		}
		return regtype.Init(class)
	}
}

// checkDeadCode walks every opcode-start address once the work-list has
// reached its fixed point and rejects any that the data-flow pass never
// visited. A data-table payload (packed-switch, sparse-switch,
// fill-array-data) is marked as an opcode-start address by ComputeWidths
// but is never executed, so it is recognized by its signature and skipped.
func (v *verifier) checkDeadCode() error {
	for addr := 0; addr < len(v.m.Code); addr++ {
		if !v.flags.OpcodeStart(addr) {
			continue
		}
		if opcode.PeekDataPayload(v.m.Code, addr) != opcode.NotDataPayload {
			continue
		}
		if !v.flags.Visited(addr) {
			return fail(addr, ErrGeneric, "unreachable instruction at 0x%04x", addr)
		}
	}
	return nil
}

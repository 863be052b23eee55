package verifyflow

import (
	"testing"

	"dvmverify/opcode"
	"dvmverify/regtype"
	"dvmverify/resolver"
)

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

// addMethod builds "static int add(int,int) { v0 = v0+v1; return v0; }":
// add-int v0, v0, v1 (Fmt23x), return v0 (Fmt11x).
func addMethod() *Method {
	code := []opcode.CodeUnit{
		0x0090, // add-int vAA=0, op=0x90
		0x0100, // vBB=0, vCC=1
		0x000f, // return vAA=0, op=0x0f
	}
	return &Method{
		ID:            "LTest;.add(II)I",
		RegistersSize: 2,
		InsSize:       2,
		OutsSize:      0,
		Code:          code,
		Proto:         Proto{ParamShorty: []byte("II"), ReturnShorty: 'I'},
		Access:        AccStatic,
	}
}

func TestStaticChecksOnAddMethod(t *testing.T) {
	m := addMethod()
	static, err := RunStaticChecks(m)
	assert(t, err == nil, "unexpected static-check error: %v", err)
	assert(t, static.Flags.OpcodeStart(0), "addr 0 should be an opcode start")
	assert(t, static.Flags.OpcodeStart(2), "addr 2 should be an opcode start")
	assert(t, static.Flags.Width(0) == 2, "add-int width should be 2, got %d", static.Flags.Width(0))
	assert(t, static.Flags.GCPoint(2), "return should be a GC point")
}

func TestVerifyAddMethodSucceeds(t *testing.T) {
	m := addMethod()
	static, err := RunStaticChecks(m)
	assert(t, err == nil, "static checks failed: %v", err)

	res := resolver.NewFake()
	result, err := Verify(m, static, res, Options{Mode: Hard})
	assert(t, err == nil, "verification failed: %v", err)
	assert(t, len(result.SoftFailures) == 0, "expected no soft failures, got %d", len(result.SoftFailures))

	entry := result.Lines[0]
	assert(t, entry.Get(0).Kind() == regtype.Integer, "v0 should start Integer, got %v", entry.Get(0).Kind())
	assert(t, entry.Get(1).Kind() == regtype.Integer, "v1 should start Integer, got %v", entry.Get(1).Kind())
}

// badMethod has a branch (if-eqz) with a target outside the method.
func badMethod() *Method {
	code := []opcode.CodeUnit{
		0x0038 | (0 << 8), // if-eqz v0, +offset (Fmt21t): vAA=0
		0x00ff,            // a wildly out-of-range branch offset
	}
	return &Method{
		ID:            "LTest;.bad(I)V",
		RegistersSize: 1,
		InsSize:       1,
		OutsSize:      0,
		Code:          code,
		Proto:         Proto{ParamShorty: []byte("I"), ReturnShorty: 'V'},
		Access:        AccStatic,
	}
}

func TestStaticChecksRejectsOutOfRangeBranch(t *testing.T) {
	m := badMethod()
	_, err := RunStaticChecks(m)
	assert(t, err != nil, "expected an out-of-range branch target to be rejected")
}

// gotoZeroMethod is a single goto instruction with a zero offset: it
// branches to itself and can never reach any other code.
func gotoZeroMethod() *Method {
	code := []opcode.CodeUnit{0x0028} // goto +0
	return &Method{
		ID:     "LTest;.spin()V",
		Code:   code,
		Proto:  Proto{ReturnShorty: 'V'},
		Access: AccStatic,
	}
}

func TestStaticChecksRejectsZeroOffsetGoto(t *testing.T) {
	m := gotoZeroMethod()
	_, err := RunStaticChecks(m)
	assert(t, err != nil, "expected a zero-offset goto to be rejected")
}

// deadCodeMethod follows a return-void with a second, unreachable
// return-void: nothing branches to address 1 and control can never fall
// through a return, so the work-list fixed point never visits it.
func deadCodeMethod() *Method {
	code := []opcode.CodeUnit{0x000e, 0x000e}
	return &Method{
		ID:     "LTest;.unreachable()V",
		Code:   code,
		Proto:  Proto{ReturnShorty: 'V'},
		Access: AccStatic,
	}
}

func TestVerifyRejectsDeadCode(t *testing.T) {
	m := deadCodeMethod()
	static, err := RunStaticChecks(m)
	assert(t, err == nil, "static checks failed: %v", err)

	res := resolver.NewFake()
	_, err = Verify(m, static, res, Options{Mode: Hard})
	assert(t, err != nil, "expected unreachable code to be rejected")
}

// newInstanceInitMethod exercises the new-instance / invoke-direct
// constructor-init transition in a static method: new-instance v0,
// invoke-direct {v0} <init>, return-void.
func newInstanceInitMethod() (*Method, *resolver.Fake) {
	const declClass = regtype.ClassHandle(10)
	code := []opcode.CodeUnit{
		0x0022 | (0 << 8), // new-instance v0, type@0001 (Fmt21c): vAA=0
		0x0001,
		0x1070 | 0, // invoke-direct {v0}, meth@0002 (Fmt35c): argCount=1 (hi nibble), regA=0 in low nibble of 3rd byte combo... built below
		0x0002,
		0x0000,
		0x000e, // return-void
	}
	// Fmt35c first unit: high byte holds argCount in its high nibble and
	// register vG in its low nibble (unused when argCount==1); low byte is
	// the opcode. InvokeDirect = 0x70.
	code[2] = uint16(0x70) | (1 << 12)

	fake := resolver.NewFake()
	fake.ClassByTypeIdx[1] = declClass
	fake.Methods[2] = resolver.MethodRef{
		DeclaringClass: declClass,
		ParamShorty:    nil,
		ReturnShorty:   'V',
		Constructor:    true,
	}

	return &Method{
		ID:             "LTest;.make()V",
		DeclaringClass: declClass,
		RegistersSize:  1,
		InsSize:        0,
		OutsSize:       1,
		Code:           code,
		Proto:          Proto{ReturnShorty: 'V'},
		Access:         AccStatic,
	}, fake
}

// TestStepNewInstanceConflictsOutAliasedRegisters exercises scenario S5:
// a new-instance site revisited on a loop back-edge must force every other
// register still holding the prior iteration's uninitialized reference to
// the same site into Conflict, so it cannot alias the freshly (re)allocated
// uninitialized instance.
func TestStepNewInstanceConflictsOutAliasedRegisters(t *testing.T) {
	const declClass = regtype.ClassHandle(7)
	fake := resolver.NewFake()
	fake.ClassByTypeIdx[1] = declClass

	uninit := regtype.NewMap(1, false)
	site := uninit.Add(0)

	v := &verifier{
		m:      &Method{ID: "LTest;.loop()V", DeclaringClass: declClass},
		uninit: uninit,
		res:    fake,
	}
	di := opcode.DecodedInstruction{Op: opcode.NewInstance, VA: 0, VB: 1}

	line := NewRegisterLine(3)
	next, soft, err := v.stepNewInstance(0, di, line)
	assert(t, err == nil && soft == nil, "first new-instance step failed: %v / %v", err, soft)
	assert(t, next.Get(0).Kind() == regtype.UninitRef, "v0 should be an uninitialized reference")
	assert(t, next.Get(0).Site() == site, "v0 should carry the registered site")

	// Simulate a back-edge: v1 aliases the first iteration's uninitialized
	// reference (as if copied there by move-object before the loop repeats).
	aliased := next.Clone()
	aliased.Set(1, regtype.UninitAt(site))

	reentered, soft, err := v.stepNewInstance(0, di, aliased)
	assert(t, err == nil && soft == nil, "second new-instance step failed: %v / %v", err, soft)
	assert(t, reentered.Get(0).Kind() == regtype.UninitRef, "v0 should be freshly uninitialized again")
	assert(t, reentered.Get(1).Kind() == regtype.Conflict, "aliased v1 should be forced to Conflict, got %v", reentered.Get(1).Kind())
}

func TestVerifyInitializesNewInstanceReference(t *testing.T) {
	m, fake := newInstanceInitMethod()
	static, err := RunStaticChecks(m)
	assert(t, err == nil, "static checks failed: %v", err)
	assert(t, static.Uninit.Len() == 1, "expected one new-instance site, got %d", static.Uninit.Len())

	result, err := Verify(m, static, fake, Options{Mode: Hard})
	assert(t, err == nil, "verification failed: %v", err)
	assert(t, len(result.Lines) > 0, "expected at least one tracked line")
}

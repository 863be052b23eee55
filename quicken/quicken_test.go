package quicken

import (
	"testing"

	"dvmverify/opcode"
	"dvmverify/regtype"
	"dvmverify/resolver"
	"dvmverify/verifyflow"
)

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

// igetMethod builds "iget v0, v0, field@3" on an already-allocated object
// in v0, so quickening can rewrite it in place.
func igetMethod() (*verifyflow.Method, resolver.Resolver) {
	const declClass = regtype.ClassHandle(5)
	code := []opcode.CodeUnit{
		uint16(opcode.Iget) | (0<<8 | 0<<12), // vA=0, vB=0 packed into hi8 nibbles
		0x0003,                               // field index
		uint16(opcode.ReturnVoid),
	}
	fake := resolver.NewFake()
	fake.Fields[3] = resolver.FieldRef{DeclaringClass: declClass, TypeShorty: 'I'}

	m := &verifyflow.Method{
		ID:             "LTest;.get()V",
		DeclaringClass: declClass,
		RegistersSize:  1,
		InsSize:        1,
		Code:           code,
		Proto:          verifyflow.Proto{ParamShorty: []byte("L"), ReturnShorty: 'V'},
		Access:         verifyflow.AccStatic,
	}
	return m, fake
}

func TestQuickenIget(t *testing.T) {
	m, res := igetMethod()
	opts := Options{QuickenFieldAccess: true}
	err := Quicken(m, res, nil, opts)
	assert(t, err == nil, "quicken failed: %v", err)

	gotOp := opcode.Opcode(m.Code[0] & 0xff)
	assert(t, gotOp == opcode.IgetQuick, "expected iget-quick, got 0x%02x", gotOp)
}

func TestRewriteSoftFailureEncodesThrowVerificationError(t *testing.T) {
	m := &verifyflow.Method{
		Code: []opcode.CodeUnit{
			uint16(opcode.ConstString), 0x0001,
		},
	}
	sf := &verifyflow.SoftFailure{Addr: 0, Kind: verifyflow.ErrNoClass, Ref: verifyflow.RefClass, Msg: "unresolved"}
	err := rewriteSoftFailure(m.Code, sf)
	assert(t, err == nil, "rewrite failed: %v", err)

	gotOp := opcode.Opcode(m.Code[0] & 0xff)
	assert(t, gotOp == opcode.ThrowVerificationError, "expected throw-verification-error, got 0x%02x", gotOp)
}

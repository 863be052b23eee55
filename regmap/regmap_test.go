package regmap

import (
	"testing"

	"dvmverify/resolver"
	"dvmverify/verifyflow"
)

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

// addMethod mirrors verifyflow's own fixture: static int add(int,int).
func addMethod() *verifyflow.Method {
	code := []uint16{0x0090, 0x0100, 0x000f}
	return &verifyflow.Method{
		ID:            "LTest;.add(II)I",
		RegistersSize: 2,
		InsSize:       2,
		Code:          code,
		Proto:         verifyflow.Proto{ParamShorty: []byte("II"), ReturnShorty: 'I'},
		Access:        verifyflow.AccStatic,
	}
}

func TestGenerateAndSelfCheck(t *testing.T) {
	m := addMethod()
	static, err := verifyflow.RunStaticChecks(m)
	assert(t, err == nil, "static checks failed: %v", err)

	res := resolver.NewFake()
	result, err := verifyflow.Verify(m, static, res, verifyflow.Options{Mode: verifyflow.Hard, GenerateRegisterMap: true})
	assert(t, err == nil, "verify failed: %v", err)

	mp, err := Generate(m, static.Flags, result)
	assert(t, err == nil, "generate failed: %v", err)
	assert(t, len(mp.Entries) == 1, "expected one GC-point entry (return), got %d", len(mp.Entries))
	assert(t, mp.Entries[0].Addr == 2, "expected the GC point at the return instruction (addr 2), got 0x%04x", mp.Entries[0].Addr)
	assert(t, mp.Format == FormatCompact8, "expected compact8 format for a tiny method, got %v", mp.Format)

	err = SelfCheck(mp, result)
	assert(t, err == nil, "self-check failed: %v", err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	mp := &Map{
		Format:        FormatCompact8,
		RegisterWidth: 1,
		Entries: []Entry{
			{Addr: 3, Bits: []byte{0x05}},
			{Addr: 7, Bits: []byte{0x00}},
		},
	}
	decoded, err := Decode(mp.Encode())
	assert(t, err == nil, "decode failed: %v", err)
	assert(t, len(decoded.Entries) == 2, "expected 2 entries, got %d", len(decoded.Entries))
	assert(t, decoded.Entries[0].Addr == 3 && decoded.Entries[0].Bits[0] == 0x05, "entry 0 mismatch: %+v", decoded.Entries[0])
	assert(t, decoded.Entries[1].Addr == 7 && decoded.Entries[1].Bits[0] == 0x00, "entry 1 mismatch: %+v", decoded.Entries[1])
}

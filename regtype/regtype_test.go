package regtype

import "testing"

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

// primitiveKinds lists every Kind the merge table is indexed by.
func primitiveKinds() []Kind {
	ks := make([]Kind, 0, numPrimitiveKinds)
	for k := Kind(0); k < numPrimitiveKinds; k++ {
		ks = append(ks, k)
	}
	return ks
}

func TestMergeSymmetry(t *testing.T) {
	for _, a := range primitiveKinds() {
		for _, b := range primitiveKinds() {
			ab := Merge(Primitive(a), Primitive(b), nil)
			ba := Merge(Primitive(b), Primitive(a), nil)
			assert(t, Equal(ab, ba), "merge(%v,%v)=%v but merge(%v,%v)=%v", a, b, ab, b, a, ba)
		}
	}
}

func TestMergeIdempotence(t *testing.T) {
	for _, a := range primitiveKinds() {
		aa := Merge(Primitive(a), Primitive(a), nil)
		assert(t, Equal(aa, Primitive(a)), "merge(%v,%v) = %v, want %v", a, a, aa, a)
	}
}

func TestUninitPseudoOnlyMergesWithSelf(t *testing.T) {
	for _, b := range primitiveKinds() {
		got := Merge(Primitive(Uninit), Primitive(b), nil)
		if b == Uninit {
			assert(t, got.Kind() == Uninit, "Uninit merged with itself should stay Uninit, got %v", got.Kind())
		} else {
			assert(t, got.Kind() == Conflict, "Uninit merged with %v should be Conflict, got %v", b, got.Kind())
		}
	}
}

func TestZeroIsReferenceBottom(t *testing.T) {
	ref := Init(ClassHandle(42))
	merged := Merge(ref, Primitive(Zero), nil)
	assert(t, merged.Kind() == InitRef && merged.Class() == 42, "Zero should merge to the reference, got %v", merged)
}

func TestUninitRefMergesOnlyWithMatchingSite(t *testing.T) {
	a := UninitAt(3)
	same := Merge(a, UninitAt(3), nil)
	assert(t, same.Kind() == UninitRef && same.Site() == 3, "same-site uninit merge should stay uninit, got %v", same)

	diff := Merge(a, UninitAt(4), nil)
	assert(t, diff.Kind() == Conflict, "different-site uninit merge should conflict, got %v", diff)
}

type fixedSuper struct{ result ClassHandle }

func (f fixedSuper) FindCommonSuperclass(a, b ClassHandle) ClassHandle { return f.result }

func TestDistinctInitRefsMergeViaSuperclassFinder(t *testing.T) {
	a := Init(1)
	b := Init(2)
	got := Merge(a, b, fixedSuper{result: 99})
	assert(t, got.Kind() == InitRef && got.Class() == 99, "expected common superclass 99, got %v", got)
}

func TestReferencePrimitiveMergeConflicts(t *testing.T) {
	got := Merge(Init(1), Primitive(Integer), nil)
	assert(t, got.Kind() == Conflict, "reference merged with non-zero primitive must conflict, got %v", got.Kind())
}

func TestTightestLiteral(t *testing.T) {
	cases := []struct {
		v    int32
		want Kind
	}{
		{0, Zero}, {1, One}, {2, PosByte}, {-1, Byte},
		{300, PosShort}, {-300, Short}, {70000, Integer},
	}
	for _, c := range cases {
		got := TightestLiteral(c.v)
		assert(t, got == c.want, "TightestLiteral(%d) = %v, want %v", c.v, got, c.want)
	}
}

func TestCanConvertTo1nr(t *testing.T) {
	assert(t, CanConvertTo1nr(Zero, Integer), "zero should convert to integer")
	assert(t, CanConvertTo1nr(PosByte, Short), "pos-byte should convert to short")
	assert(t, !CanConvertTo1nr(Short, Byte), "short should not convert to byte")
	assert(t, CanConvertTo1nr(Float, Integer), "float converts to integer (int/float interchange)")
}

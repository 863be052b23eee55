package resolver

import "dvmverify/regtype"

// ClassDef is one entry of a Fake resolver's class table: enough shape to
// drive assignability and common-superclass queries in tests without a
// real class loader.
type ClassDef struct {
	Name       string
	Super      regtype.ClassHandle
	Interfaces []regtype.ClassHandle
	Interface  bool
	ElemClass  regtype.ClassHandle // non-zero if this class is an array type
}

// Fake is an in-memory Resolver for tests: classes, fields, and methods
// are pre-registered by the test and looked up directly, with no access
// checking beyond what the registered FieldRef/MethodRef already encodes.
type Fake struct {
	Classes map[regtype.ClassHandle]ClassDef
	Fields  map[uint32]FieldRef
	Methods map[uint32]MethodRef
	// ClassByTypeIdx maps a type index (as used by const-class, check-cast,
	// new-instance, etc.) to the class handle it resolves to.
	ClassByTypeIdx map[uint32]regtype.ClassHandle

	// StringClass, ClassClass, and ThrowableClass back the three
	// well-known-class accessors; a test populates whichever ones its
	// scenario exercises.
	StringClass    regtype.ClassHandle
	ClassClass     regtype.ClassHandle
	ThrowableClass regtype.ClassHandle
}

// NewFake builds an empty Fake resolver ready for a test to populate.
func NewFake() *Fake {
	return &Fake{
		Classes:        make(map[regtype.ClassHandle]ClassDef),
		Fields:         make(map[uint32]FieldRef),
		Methods:        make(map[uint32]MethodRef),
		ClassByTypeIdx: make(map[uint32]regtype.ClassHandle),
	}
}

func (f *Fake) ResolveClass(_ regtype.ClassHandle, typeIdx uint32) (regtype.ClassHandle, bool) {
	c, ok := f.ClassByTypeIdx[typeIdx]
	return c, ok
}

func (f *Fake) ClassOf(typeIdx uint32) (regtype.ClassHandle, bool) {
	c, ok := f.ClassByTypeIdx[typeIdx]
	return c, ok
}

func (f *Fake) ResolveInstanceField(_ regtype.ClassHandle, fieldIdx uint32) (FieldRef, bool) {
	fr, ok := f.Fields[fieldIdx]
	return fr, ok && !fr.Static
}

func (f *Fake) ResolveStaticField(_ regtype.ClassHandle, fieldIdx uint32) (FieldRef, bool) {
	fr, ok := f.Fields[fieldIdx]
	return fr, ok && fr.Static
}

func (f *Fake) ResolveMethod(_ regtype.ClassHandle, methodIdx uint32) (MethodRef, bool) {
	mr, ok := f.Methods[methodIdx]
	return mr, ok
}

func (f *Fake) ResolveInterfaceMethod(_ regtype.ClassHandle, methodIdx uint32) (MethodRef, bool) {
	mr, ok := f.Methods[methodIdx]
	return mr, ok
}

func (f *Fake) FindCommonSuperclass(a, b regtype.ClassHandle) regtype.ClassHandle {
	ancestorsOf := func(c regtype.ClassHandle) []regtype.ClassHandle {
		var chain []regtype.ClassHandle
		for c != 0 {
			chain = append(chain, c)
			c = f.Classes[c].Super
		}
		return chain
	}
	aChain := ancestorsOf(a)
	bSet := make(map[regtype.ClassHandle]bool)
	for c := b; c != 0; c = f.Classes[c].Super {
		bSet[c] = true
	}
	for _, c := range aChain {
		if bSet[c] {
			return c
		}
	}
	return 0 // java.lang.Object's handle, by convention 0 is never a real class in tests
}

func (f *Fake) IsInterface(class regtype.ClassHandle) bool {
	return f.Classes[class].Interface
}

func (f *Fake) ArrayElementClass(class regtype.ClassHandle) (regtype.ClassHandle, bool) {
	def, ok := f.Classes[class]
	if !ok || def.ElemClass == 0 {
		return 0, false
	}
	return def.ElemClass, true
}

func (f *Fake) MustStringClass() regtype.RegType    { return regtype.Init(f.StringClass) }
func (f *Fake) MustClassClass() regtype.RegType     { return regtype.Init(f.ClassClass) }
func (f *Fake) MustThrowableClass() regtype.RegType { return regtype.Init(f.ThrowableClass) }

func (f *Fake) IsAssignable(sub, super regtype.ClassHandle) bool {
	if sub == super {
		return true
	}
	for c := sub; c != 0; c = f.Classes[c].Super {
		if c == super {
			return true
		}
		for _, iface := range f.Classes[c].Interfaces {
			if f.interfaceAssignable(iface, super) {
				return true
			}
		}
	}
	return false
}

func (f *Fake) interfaceAssignable(iface, super regtype.ClassHandle) bool {
	if iface == super {
		return true
	}
	for _, parent := range f.Classes[iface].Interfaces {
		if f.interfaceAssignable(parent, super) {
			return true
		}
	}
	return false
}

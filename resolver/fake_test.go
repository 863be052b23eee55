package resolver

import (
	"testing"

	"dvmverify/regtype"
)

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

func TestFindCommonSuperclass(t *testing.T) {
	f := NewFake()
	const (
		object regtype.ClassHandle = 1
		animal regtype.ClassHandle = 2
		dog    regtype.ClassHandle = 3
		cat    regtype.ClassHandle = 4
	)
	f.Classes[object] = ClassDef{Name: "Object"}
	f.Classes[animal] = ClassDef{Name: "Animal", Super: object}
	f.Classes[dog] = ClassDef{Name: "Dog", Super: animal}
	f.Classes[cat] = ClassDef{Name: "Cat", Super: animal}

	got := f.FindCommonSuperclass(dog, cat)
	assert(t, got == animal, "expected Animal, got %v", got)

	got = f.FindCommonSuperclass(dog, dog)
	assert(t, got == dog, "self-merge should return itself, got %v", got)
}

func TestIsAssignableThroughInterface(t *testing.T) {
	f := NewFake()
	const (
		object     regtype.ClassHandle = 1
		comparable regtype.ClassHandle = 2
		thing      regtype.ClassHandle = 3
	)
	f.Classes[object] = ClassDef{Name: "Object"}
	f.Classes[comparable] = ClassDef{Name: "Comparable", Interface: true}
	f.Classes[thing] = ClassDef{Name: "Thing", Super: object, Interfaces: []regtype.ClassHandle{comparable}}

	assert(t, f.IsAssignable(thing, comparable), "Thing should be assignable to Comparable")
	assert(t, f.IsAssignable(thing, object), "Thing should be assignable to Object")
	assert(t, !f.IsAssignable(object, thing), "Object should not be assignable to Thing")
}

func TestArrayElementClass(t *testing.T) {
	f := NewFake()
	const (
		intClass      regtype.ClassHandle = 1
		intArrayClass regtype.ClassHandle = 2
	)
	f.Classes[intArrayClass] = ClassDef{Name: "[I", ElemClass: intClass}
	elem, ok := f.ArrayElementClass(intArrayClass)
	assert(t, ok && elem == intClass, "expected element class %v, got %v ok=%v", intClass, elem, ok)

	_, ok = f.ArrayElementClass(intClass)
	assert(t, !ok, "non-array class should report ok=false")
}

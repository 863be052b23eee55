// Package resolver defines the external collaborator contracts the
// verifier consults during data-flow analysis and quickening: class,
// field, and method resolution plus common-superclass lookup.
// Only the contracts matter here; no resolver implementation talks to a
// real class loader; production callers supply their own.
package resolver

import "dvmverify/regtype"

// FieldRef identifies a resolved field: its declaring class, its type
// shorty, and whether it is static.
type FieldRef struct {
	DeclaringClass regtype.ClassHandle
	TypeShorty     byte
	// TypeClass is the field's declared reference class, meaningful only
	// when TypeShorty is 'L' or '['.
	TypeClass regtype.ClassHandle
	Static    bool
	Public    bool
	Private   bool
	Protected bool
}

// MethodRef identifies a resolved method: its declaring class, prototype
// shorty string (params then return, Dalvik convention), and access bits
// the verifier needs for visibility checks.
type MethodRef struct {
	DeclaringClass regtype.ClassHandle
	ParamShorty    []byte
	// ParamClasses carries the declared class for each reference-typed
	// ('L' or '[') entry of ParamShorty, 0 for every other entry.
	ParamClasses []regtype.ClassHandle
	ReturnShorty byte
	// ReturnClass carries the declared return class when ReturnShorty is
	// 'L' or '[', 0 otherwise.
	ReturnClass regtype.ClassHandle
	Static      bool
	Private     bool
	Protected   bool
	Public      bool
	Constructor bool
	Abstract    bool
	Final       bool
}

// Resolver is the full set of external collaborators the data-flow
// verifier and quickening optimizer call into. A resolution miss (class,
// field, or method not found) is reported through the bool return, never
// a panic or Go error: callers translate a false into the appropriate
// FailureKind and RefKind for a soft or hard failure.
type Resolver interface {
	// ResolveClass resolves a type index to a class handle as seen from
	// referrer (for access-check purposes).
	ResolveClass(referrer regtype.ClassHandle, typeIdx uint32) (regtype.ClassHandle, bool)

	// ResolveInstanceField resolves an instance field reference.
	ResolveInstanceField(referrer regtype.ClassHandle, fieldIdx uint32) (FieldRef, bool)

	// ResolveStaticField resolves a static field reference.
	ResolveStaticField(referrer regtype.ClassHandle, fieldIdx uint32) (FieldRef, bool)

	// ResolveMethod resolves a virtual/direct/static method reference.
	ResolveMethod(referrer regtype.ClassHandle, methodIdx uint32) (MethodRef, bool)

	// ResolveInterfaceMethod resolves an interface method reference.
	ResolveInterfaceMethod(referrer regtype.ClassHandle, methodIdx uint32) (MethodRef, bool)

	// FindCommonSuperclass returns the nearest common ancestor of a and b,
	// satisfying regtype.SuperclassFinder.
	FindCommonSuperclass(a, b regtype.ClassHandle) regtype.ClassHandle

	// ClassOf returns the class an already-resolved type index denotes,
	// without the referrer-relative access check ResolveClass performs
	// (used when decoding a const-class or instance-of operand whose
	// target need not be instantiable).
	ClassOf(typeIdx uint32) (regtype.ClassHandle, bool)

	// IsAssignable reports whether a value of class sub can be used where
	// super is expected (sub == super or sub is a subtype of super,
	// including interface implementation).
	IsAssignable(sub, super regtype.ClassHandle) bool

	// IsInterface reports whether class is an interface type.
	IsInterface(class regtype.ClassHandle) bool

	// ArrayElementClass returns the element type of an array class, or
	// false if class is not an array type.
	ArrayElementClass(class regtype.ClassHandle) (regtype.ClassHandle, bool)

	// MustStringClass, MustClassClass, and MustThrowableClass return the
	// well-known java.lang.String, java.lang.Class, and java.lang.Throwable
	// handles. Every well-formed DEX file's bootstrap classpath guarantees
	// these resolve, so callers treat them as infallible rather than
	// threading a bool through every const-string/const-class/
	// move-exception transfer.
	MustStringClass() regtype.RegType
	MustClassClass() regtype.RegType
	MustThrowableClass() regtype.RegType
}

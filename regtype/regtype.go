// Package regtype implements the abstract register-type lattice the
// data-flow verifier tracks: a small closed set of primitive types plus
// encoded reference variants, a symmetric merge table over the primitive
// subset, and the uninitialized-instance map that gives uninitialized
// references their site identity.
package regtype

import "fmt"

// Kind is the closed set of primitive lattice values plus the two
// reference-carrying tags. Order matches the original's RegType enum;
// merges over the primitive subset are a table lookup on this range
// (see mergeTable in merge.go).
type Kind uint8

const (
	Unknown Kind = iota
	Uninit       // the special pseudo-value: merges only with itself
	Conflict
	Float
	Zero
	One
	Boolean
	PosByte
	Byte
	PosShort
	Short
	Char
	Integer
	LongLo
	LongHi
	DoubleLo
	DoubleHi

	numPrimitiveKinds // sentinel, not a real kind

	// Reference tags. These never appear in the merge table directly;
	// RegType.Kind() projects a reference RegType down to one of these two
	// before a lookup, and merge.go special-cases them.
	InitRef
	UninitRef
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Uninit:
		return "uninit-pseudo"
	case Conflict:
		return "conflict"
	case Float:
		return "float"
	case Zero:
		return "zero"
	case One:
		return "one"
	case Boolean:
		return "boolean"
	case PosByte:
		return "pos-byte"
	case Byte:
		return "byte"
	case PosShort:
		return "pos-short"
	case Short:
		return "short"
	case Char:
		return "char"
	case Integer:
		return "integer"
	case LongLo:
		return "long-lo"
	case LongHi:
		return "long-hi"
	case DoubleLo:
		return "double-lo"
	case DoubleHi:
		return "double-hi"
	case InitRef:
		return "init-ref"
	case UninitRef:
		return "uninit-ref"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ClassHandle is an arena index into the resolver's already-loaded class
// pool, not a pointer. The zero value is never a valid handle.
type ClassHandle uint32

// SiteIndex is an index into an UninitMap's entry list.
type SiteIndex int32

// RegType is one register's abstract type. It is a tagged variant, not a
// raw integer: Kind says which case is active, and Class/Site are only
// meaningful for the two reference kinds, rather than the original's
// "stuff a pointer into the integer" encoding.
type RegType struct {
	kind  Kind
	class ClassHandle // meaningful iff kind == InitRef
	site  SiteIndex   // meaningful iff kind == UninitRef
}

// Primitive constructs a RegType for a non-reference Kind. Panics if k is a
// reference kind; use Init/UninitAt for those.
func Primitive(k Kind) RegType {
	if k == InitRef || k == UninitRef {
		panic("regtype: Primitive called with a reference kind")
	}
	return RegType{kind: k}
}

// Init constructs an initialized reference to the given class.
func Init(class ClassHandle) RegType {
	return RegType{kind: InitRef, class: class}
}

// UninitAt constructs an uninitialized reference tied to uninitialized-map
// slot idx.
func UninitAt(idx SiteIndex) RegType {
	return RegType{kind: UninitRef, site: idx}
}

// Kind reports the tag of r.
func (r RegType) Kind() Kind { return r.kind }

// Class returns the class handle of an initialized reference. Only valid
// when r.Kind() == InitRef.
func (r RegType) Class() ClassHandle { return r.class }

// Site returns the uninitialized-map slot of an uninitialized reference.
// Only valid when r.Kind() == UninitRef.
func (r RegType) Site() SiteIndex { return r.site }

// IsReference reports whether r is any kind of reference: an initialized
// class reference, an uninitialized reference, or Zero (the universal null
// constant, which is reference-compatible). Mirrors the original's
// regTypeIsReference, which folds Zero in for exactly this reason.
func (r RegType) IsReference() bool {
	return r.kind == InitRef || r.kind == UninitRef || r.kind == Zero
}

// IsCategory2 reports whether r is one half of a 64-bit pair
// (long/double lo or hi half).
func (r RegType) IsCategory2() bool {
	switch r.kind {
	case LongLo, LongHi, DoubleLo, DoubleHi:
		return true
	default:
		return false
	}
}

func (r RegType) String() string {
	switch r.kind {
	case InitRef:
		return fmt.Sprintf("ref(class=%d)", r.class)
	case UninitRef:
		return fmt.Sprintf("uninit-ref(site=%d)", r.site)
	default:
		return r.kind.String()
	}
}

// Equal reports whether two RegType values describe the identical register
// state (same kind, and same class/site when that matters).
func Equal(a, b RegType) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case InitRef:
		return a.class == b.class
	case UninitRef:
		return a.site == b.site
	default:
		return true
	}
}

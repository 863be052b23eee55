package regtype

// SuperclassFinder resolves the common superclass of two initialized
// reference types during a merge. Grounded on VerifySubs.c's
// dvmFindCommonSuperclass, but kept as a tiny interface rather than a
// direct dependency so regtype never imports the resolver package.
type SuperclassFinder interface {
	FindCommonSuperclass(a, b ClassHandle) ClassHandle
}

// mergeTable is the symmetric merge table over the primitive Kind range
// (Unknown..DoubleHi), transcribed row-for-row from the original's
// gDvmMergeTab. Row/column order is the Kind iota order declared above,
// which mirrors the original's _,U,X,F,0,1,Z,b,B,s,S,C,I,J,j,D,d ordering
// exactly.
var mergeTable = [numPrimitiveKinds][numPrimitiveKinds]Kind{
	/* Unknown  */ {Unknown, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict},
	/* Uninit   */ {Conflict, Uninit, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict},
	/* Conflict */ {Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict},
	/* Float    */ {Conflict, Conflict, Conflict, Float, Float, Float, Float, Float, Float, Float, Float, Float, Float, Conflict, Conflict, Conflict, Conflict},
	/* Zero     */ {Conflict, Conflict, Conflict, Float, Zero, Boolean, Boolean, PosByte, Byte, PosShort, Short, Char, Integer, Conflict, Conflict, Conflict, Conflict},
	/* One      */ {Conflict, Conflict, Conflict, Float, Boolean, One, Boolean, PosByte, Byte, PosShort, Short, Char, Integer, Conflict, Conflict, Conflict, Conflict},
	/* Boolean  */ {Conflict, Conflict, Conflict, Float, Boolean, Boolean, Boolean, PosByte, Byte, PosShort, Short, Char, Integer, Conflict, Conflict, Conflict, Conflict},
	/* PosByte  */ {Conflict, Conflict, Conflict, Float, PosByte, PosByte, PosByte, PosByte, Byte, PosShort, Short, Char, Integer, Conflict, Conflict, Conflict, Conflict},
	/* Byte     */ {Conflict, Conflict, Conflict, Float, Byte, Byte, Byte, Byte, Byte, Short, Short, Integer, Integer, Conflict, Conflict, Conflict, Conflict},
	/* PosShort */ {Conflict, Conflict, Conflict, Float, PosShort, PosShort, PosShort, PosShort, Short, PosShort, Short, Char, Integer, Conflict, Conflict, Conflict, Conflict},
	/* Short    */ {Conflict, Conflict, Conflict, Float, Short, Short, Short, Short, Short, Short, Short, Integer, Integer, Conflict, Conflict, Conflict, Conflict},
	/* Char     */ {Conflict, Conflict, Conflict, Float, Char, Char, Char, Char, Integer, Char, Integer, Char, Integer, Conflict, Conflict, Conflict, Conflict},
	/* Integer  */ {Conflict, Conflict, Conflict, Float, Integer, Integer, Integer, Integer, Integer, Integer, Integer, Integer, Integer, Conflict, Conflict, Conflict, Conflict},
	/* LongLo   */ {Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, LongLo, Conflict, LongLo, Conflict},
	/* LongHi   */ {Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, LongHi, Conflict, LongHi},
	/* DoubleLo */ {Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, LongLo, Conflict, DoubleLo, Conflict},
	/* DoubleHi */ {Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, Conflict, LongHi, Conflict, DoubleHi},
}

// Merge computes the lattice join of a and b. super is consulted only
// when both sides are distinct initialized references; it may be nil if
// the caller already knows that case cannot arise (e.g. in pure-primitive
// unit tests).
func Merge(a, b RegType, super SuperclassFinder) RegType {
	aRef := a.kind == InitRef || a.kind == UninitRef
	bRef := b.kind == InitRef || b.kind == UninitRef

	switch {
	case aRef && bRef:
		return mergeRefs(a, b, super)
	case aRef && b.kind == Zero:
		return a
	case bRef && a.kind == Zero:
		return b
	case aRef || bRef:
		// A reference merged with any non-Zero primitive is unsound.
		return Primitive(Conflict)
	default:
		return Primitive(mergeTable[a.kind][b.kind])
	}
}

func mergeRefs(a, b RegType, super SuperclassFinder) RegType {
	if a.kind == UninitRef || b.kind == UninitRef {
		if a.kind == UninitRef && b.kind == UninitRef && a.site == b.site {
			return a
		}
		return Primitive(Conflict)
	}
	// Both InitRef.
	if a.class == b.class {
		return a
	}
	if super == nil {
		return Primitive(Conflict)
	}
	return Init(super.FindCommonSuperclass(a.class, b.class))
}

// Changed reports whether merging old and next (the result of Merge)
// produced a different value than old held before, the signal the
// data-flow work-list uses to decide whether to mark an address changed.
func Changed(old, next RegType) bool {
	return !Equal(old, next)
}

// Package verifyflow implements phases 1-3 of the verifier: the
// instruction-flag array, the static checker (widths, try regions, operand
// sanity), and the data-flow abstract interpreter that performs fixed-point
// register-type inference.
package verifyflow

import (
	"dvmverify/opcode"
	"dvmverify/regtype"
)

// AccessFlags mirrors the subset of a method's access flags the verifier
// inspects.
type AccessFlags uint32

const (
	AccStatic AccessFlags = 1 << iota
	AccAbstract
	AccNative
	AccConstructor
)

func (a AccessFlags) Has(f AccessFlags) bool { return a&f != 0 }

// TryItem is one entry of a method's try-catch table.
type TryItem struct {
	StartAddr int // inclusive, code-unit offset
	EndAddr   int // exclusive
	Handlers  []Handler
}

// Handler is one catch handler within a TryItem.
type Handler struct {
	Addr      int // code-unit offset of the handler's first instruction
	CatchType regtype.ClassHandle
	CatchAll  bool // Java's `finally`-style catch-all
}

// Proto is a method prototype: parameter and return type shorty codes.
// Shorty letters follow Dalvik convention: V void, Z boolean, B byte,
// S short, C char, I int, J long, F float, D double, L reference.
//
// ParamClasses and ReturnClass carry the resolved class for any
// reference-typed ('L' or '[') entry of ParamShorty/ReturnShorty (0
// otherwise); the shorty alone collapses every reference type to 'L' and
// loses the declared class a precise InitRef entry needs.
type Proto struct {
	ParamShorty  []byte
	ParamClasses []regtype.ClassHandle
	ReturnShorty byte
	ReturnClass  regtype.ClassHandle
}

// Method is the contract a method under verification presents.
// Everything the verifier needs from class loading,
// DEX parsing, and linking is exposed through this struct plus the
// resolver interfaces in package resolver; nothing else is consumed.
type Method struct {
	ID string // for diagnostics only: "Lcom/foo/Bar;.baz(I)V"

	DeclaringClass regtype.ClassHandle
	SuperClass     regtype.ClassHandle // 0 if DeclaringClass is java.lang.Object

	RegistersSize int
	InsSize       int // incoming arguments, including "this"
	OutsSize      int // max invoke argument count

	Code  []opcode.CodeUnit
	Tries []TryItem

	Proto  Proto
	Access AccessFlags
}

// IsConstructor reports whether this method is an instance initializer
// (access flag ACC_CONSTRUCTOR and non-static).
func (m *Method) IsConstructor() bool {
	return m.Access.Has(AccConstructor) && !m.Access.Has(AccStatic)
}

// InsnsSize returns the code length in code units.
func (m *Method) InsnsSize() int { return len(m.Code) }

// Mode selects how a ResolutionFailure is handled.
type Mode int

const (
	// Hard mode: any resolution failure is a fatal reject.
	Hard Mode = iota
	// Soft mode: a resolution failure rewrites the offending instruction
	// to throw-verification-error and verification continues.
	Soft
)

// Options bundles the explicit parameters threaded through verify/optimize
// instead of the original's global flags.
type Options struct {
	Mode Mode
	// AllowOptimized is not consulted by the data-flow pass: quickened
	// opcodes are rejected whether or not it is set.
	AllowOptimized bool
	// TrackAllAddresses and GenerateRegisterMap are read only by
	// InsnFlags.NeedsRegisterLine (every instruction address, or GC points
	// in addition to branch targets). Verify does not consult them: it
	// keeps a register line at every reachable address either way.
	TrackAllAddresses   bool
	GenerateRegisterMap bool
}

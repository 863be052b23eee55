package verifyflow

import "fmt"

// FailureKind classifies a verification failure the way the original's
// VerifyError enum does: a handful of named categories, each with a
// distinct quickening/soft-failure treatment.
type FailureKind int

const (
	NoError FailureKind = iota
	ErrGeneric
	ErrNoClass
	ErrNoField
	ErrNoMethod
	ErrAccessClass
	ErrAccessField
	ErrAccessMethod
	ErrClassChange // incompatible class change, e.g. interface/class mismatch
	ErrInstantiation
)

func (k FailureKind) String() string {
	switch k {
	case NoError:
		return "NoError"
	case ErrGeneric:
		return "Generic"
	case ErrNoClass:
		return "NoClass"
	case ErrNoField:
		return "NoField"
	case ErrNoMethod:
		return "NoMethod"
	case ErrAccessClass:
		return "AccessClass"
	case ErrAccessField:
		return "AccessField"
	case ErrAccessMethod:
		return "AccessMethod"
	case ErrClassChange:
		return "ClassChange"
	case ErrInstantiation:
		return "Instantiation"
	default:
		return "Unknown"
	}
}

// VerifyError is a fatal, Hard-mode verification rejection: the method as a
// whole is unverifiable and must not run.
type VerifyError struct {
	Addr int
	Kind FailureKind
	Msg  string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verify failure at 0x%04x (%s): %s", e.Addr, e.Kind, e.Msg)
}

func fail(addr int, kind FailureKind, format string, args ...any) error {
	return &VerifyError{Addr: addr, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// SoftFailure is a recoverable, address-scoped failure: in Soft mode, the
// caller rewrites the instruction at Addr to throw-verification-error
// instead of aborting the whole method.
type SoftFailure struct {
	Addr int
	Kind FailureKind
	Ref  RefKind
	Msg  string
}

func (e *SoftFailure) Error() string {
	return fmt.Sprintf("soft failure at 0x%04x (%s/%s): %s", e.Addr, e.Kind, e.Ref, e.Msg)
}

// RefKind identifies what kind of reference a soft failure's
// throw-verification-error replacement instruction should carry in its
// high byte.
type RefKind int

const (
	RefNone RefKind = iota
	RefClass
	RefField
	RefMethod
)

func (r RefKind) String() string {
	switch r {
	case RefClass:
		return "Class"
	case RefField:
		return "Field"
	case RefMethod:
		return "Method"
	default:
		return "None"
	}
}

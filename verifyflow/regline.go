package verifyflow

import "dvmverify/regtype"

// RegisterLine is the abstract machine state at one program point: one
// RegType per virtual register plus a monitor-nesting stack. Grounded on
// CodeVerify.c's RegisterLine, but the monitor stack is a plain slice
// instead of a fixed-size bitset-backed array since Go slices already grow
// safely.
type RegisterLine struct {
	Regs         []regtype.RegType
	MonitorStack []int // addresses of currently-held monitor-enter instructions
}

// NewRegisterLine allocates a line of size registers, all Unknown.
func NewRegisterLine(size int) *RegisterLine {
	regs := make([]regtype.RegType, size)
	for i := range regs {
		regs[i] = regtype.Primitive(regtype.Unknown)
	}
	return &RegisterLine{Regs: regs}
}

// Clone deep-copies a line (the work-list keeps one saved line per tracked
// address; the "working" line a transfer function mutates must never alias
// a saved one).
func (l *RegisterLine) Clone() *RegisterLine {
	regs := make([]regtype.RegType, len(l.Regs))
	copy(regs, l.Regs)
	var mon []int
	if len(l.MonitorStack) > 0 {
		mon = make([]int, len(l.MonitorStack))
		copy(mon, l.MonitorStack)
	}
	return &RegisterLine{Regs: regs, MonitorStack: mon}
}

// CopyFrom overwrites l's contents with src's (used to install a saved
// line as the new working line without reallocating).
func (l *RegisterLine) CopyFrom(src *RegisterLine) {
	copy(l.Regs, src.Regs)
	if len(src.MonitorStack) == 0 {
		l.MonitorStack = l.MonitorStack[:0]
	} else {
		l.MonitorStack = append(l.MonitorStack[:0], src.MonitorStack...)
	}
}

// Get returns the type of register reg, or Conflict if reg is out of range
// (a condition the static checker should already have rejected).
func (l *RegisterLine) Get(reg int) regtype.RegType {
	if reg < 0 || reg >= len(l.Regs) {
		return regtype.Primitive(regtype.Conflict)
	}
	return l.Regs[reg]
}

// Set installs t into register reg. A LongLo/DoubleLo value also writes
// the matching LongHi/DoubleHi into reg+1, so a later category-1 read of
// either half is caught.
func (l *RegisterLine) Set(reg int, t regtype.RegType) {
	l.Regs[reg] = t
	if t.IsCategory2() && reg+1 < len(l.Regs) {
		// The high half just became part of this wide value; it is not
		// independently readable until overwritten by another Set.
		hi := regtype.Primitive(regtype.Conflict)
		if t.Kind() == regtype.LongLo {
			hi = regtype.Primitive(regtype.LongHi)
		} else if t.Kind() == regtype.DoubleLo {
			hi = regtype.Primitive(regtype.DoubleHi)
		}
		l.Regs[reg+1] = hi
	}
}

// MergeInto merges src into l in place, following the merge-at-join-points
// rule. Returns true if any register (or the monitor stack) changed, the
// signal the work-list uses to requeue successors.
func MergeInto(l, src *RegisterLine, super regtype.SuperclassFinder) bool {
	changed := false
	for i := range l.Regs {
		merged := regtype.Merge(l.Regs[i], src.Regs[i], super)
		if regtype.Changed(l.Regs[i], merged) {
			changed = true
		}
		l.Regs[i] = merged
	}
	if !sameMonitorStack(l.MonitorStack, src.MonitorStack) {
		// A monitor-nesting mismatch across a join is itself a static
		// verification failure (unbalanced monitorenter/monitorexit);
		// the data-flow verifier checks this explicitly rather than
		// relying on the merge to signal it silently.
		changed = true
	}
	return changed
}

func sameMonitorStack(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// PushMonitor records a monitor-enter at addr.
func (l *RegisterLine) PushMonitor(addr int) {
	l.MonitorStack = append(l.MonitorStack, addr)
}

// PopMonitor removes the innermost monitor-enter, returning false if the
// stack was already empty (an unbalanced monitorexit).
func (l *RegisterLine) PopMonitor() bool {
	if len(l.MonitorStack) == 0 {
		return false
	}
	l.MonitorStack = l.MonitorStack[:len(l.MonitorStack)-1]
	return true
}

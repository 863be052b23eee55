package regtype

import "fmt"

// ThisArgAddr and ThisArgSlot identify the implicit "this" uninitialized
// site of a constructor, matching the original's kUninitThisArgAddr /
// kUninitThisArgSlot sentinels.
const (
	ThisArgAddr = -1
	ThisArgSlot = 0
)

// UninitEntry is one row of the uninitialized-instance map: the address of
// the new-instance site (or ThisArgAddr for a constructor's "this") and
// the class being constructed there.
type UninitEntry struct {
	Addr  int
	Class ClassHandle
}

// Map is the ordered uninitialized-instance map: one entry per new-instance
// site plus, for a constructor, a reserved slot 0 for "this". The class slot
// is filled on first verification pass and never changes thereafter.
type Map struct {
	entries []UninitEntry
}

// NewMap allocates a map with room for newInstanceCount new-instance sites
// plus (if isConstructor) a reserved slot 0 for the implicit "this".
func NewMap(newInstanceCount int, isConstructor bool) *Map {
	m := &Map{entries: make([]UninitEntry, 0, newInstanceCount+1)}
	if isConstructor {
		m.entries = append(m.entries, UninitEntry{Addr: ThisArgAddr})
	}
	return m
}

// Add registers a new-instance site at addr, returning its slot index.
// Addresses must be added in the order new-instance instructions are
// encountered during the static-check pass.
func (m *Map) Add(addr int) SiteIndex {
	m.entries = append(m.entries, UninitEntry{Addr: addr})
	return SiteIndex(len(m.entries) - 1)
}

// SetClass assigns the class constructed at map slot idx. The class slot
// fills once and never changes after; calling this twice with a different
// class is a bug in the caller and panics rather than silently reconciling.
func (m *Map) SetClass(idx SiteIndex, class ClassHandle) {
	e := &m.entries[idx]
	if e.Class != 0 && e.Class != class {
		panic(fmt.Sprintf("regtype: uninit map slot %d class reassigned %d -> %d", idx, e.Class, class))
	}
	e.Class = class
}

// ClassAt returns the class associated with uninitialized-map slot idx.
func (m *Map) ClassAt(idx SiteIndex) ClassHandle {
	return m.entries[idx].Class
}

// AddrAt returns the new-instance instruction address (or ThisArgAddr) of
// slot idx.
func (m *Map) AddrAt(idx SiteIndex) int {
	return m.entries[idx].Addr
}

// Len returns the number of entries in the map.
func (m *Map) Len() int { return len(m.entries) }

// SlotForAddr finds the slot index for a given new-instance address, or -1
// if none is registered. A negative result means the caller passed an
// address the static checker never recorded.
func (m *Map) SlotForAddr(addr int) SiteIndex {
	for i, e := range m.entries {
		if e.Addr == addr {
			return SiteIndex(i)
		}
	}
	return -1
}

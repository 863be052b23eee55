// Package regmap builds and encodes the per-method register map: a table,
// keyed by GC-point address, of which registers hold a reference at that
// point. Grounded on RegisterMap.c's dvmGenerateRegisterMap/
// dvmRegisterMapAddToDex family. A self-check
// re-decodes the emitted bytes and compares them against the verifier's
// in-memory result before handing the map back to the caller.
package regmap

import (
	"bytes"
	"fmt"

	"dvmverify/opcode"
	"dvmverify/regtype"
	"dvmverify/verifyflow"
)

// Format selects the on-disk entry-address width. FormatNone marks a
// method the generator was not asked to produce a map for (verification
// still ran); this carries the original's kRegMapFormatNone /
// kRegMapFormatCompact8/16 distinction as an explicit enum rather than a
// derived flag. FormatDifferential is reserved for an optional
// runtime-only decoding scheme and is never emitted by this package.
// The values are the on-disk format byte: 1 none, 2 compact8,
// 3 compact16, 4 differential.
type Format byte

const (
	FormatNone Format = iota + 1
	FormatCompact8
	FormatCompact16
	FormatDifferential
)

// Map is one method's generated register map, ready for Encode or direct
// in-memory lookup.
type Map struct {
	Format        Format
	RegisterWidth int // bytes per entry's bit-vector, ceil(registersSize/8)
	Entries       []Entry
}

// Entry is one GC-point address and its reference bit-vector (bit i set
// iff register i holds a reference at this address).
type Entry struct {
	Addr int
	Bits []byte
}

// Generate walks result's saved lines at every GC-point address flagged
// during the static pass and builds the reference bit-vector for each.
func Generate(m *verifyflow.Method, flags verifyflow.InsnFlags, result *verifyflow.Result) (*Map, error) {
	width := (m.RegistersSize + 7) / 8
	format := FormatCompact16
	if m.InsnsSize() < 256 {
		format = FormatCompact8
	}

	mp := &Map{Format: format, RegisterWidth: width}

	addr := 0
	for addr < len(m.Code) {
		w := int(opcode.InstrOrTableWidth(m.Code, addr))
		if w <= 0 {
			break
		}
		if flags.GCPoint(addr) {
			line, ok := result.Lines[addr]
			if !ok {
				return nil, fmt.Errorf("regmap: GC point 0x%04x has no saved register line", addr)
			}
			mp.Entries = append(mp.Entries, Entry{Addr: addr, Bits: bitsFor(line, width)})
		}
		addr += w
	}
	return mp, nil
}

func bitsFor(line *verifyflow.RegisterLine, width int) []byte {
	bits := make([]byte, width)
	for i, r := range line.Regs {
		if isReferenceForMap(r) {
			bits[i/8] |= 1 << uint(i%8)
		}
	}
	return bits
}

// isReferenceForMap applies the register map's bit rule: 1 for an
// initialized reference, an uninitialized reference, or the never-assigned
// Uninit
// pseudo-value; 0 for every numeric kind, Unknown, Conflict, and Zero.
// The null constant is GC-irrelevant on its own, unlike regtype.RegType's
// broader IsReference, which folds Zero in for assignability purposes.
func isReferenceForMap(r regtype.RegType) bool {
	switch r.Kind() {
	case regtype.InitRef, regtype.UninitRef, regtype.Uninit:
		return true
	default:
		return false
	}
}

// Encode serializes mp to its wire format: a header (format byte,
// register-width byte, little-endian uint16 entry count) followed
// by one record per entry (1 or 2 little-endian address bytes per
// Format, then RegisterWidth bitmap bytes).
func (mp *Map) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteByte(byte(mp.Format))
	buf.WriteByte(byte(mp.RegisterWidth))
	writeUint16(&buf, uint16(len(mp.Entries)))
	for _, e := range mp.Entries {
		switch mp.Format {
		case FormatCompact8:
			buf.WriteByte(byte(e.Addr))
		default:
			writeUint16(&buf, uint16(e.Addr))
		}
		buf.Write(e.Bits)
	}
	return buf.Bytes()
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
}

// Decode parses the bytes Encode produced back into a Map.
func Decode(data []byte) (*Map, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("regmap: header truncated (%d bytes)", len(data))
	}
	format := Format(data[0])
	width := int(data[1])
	count := int(data[2]) | int(data[3])<<8
	data = data[4:]

	addrWidth := 2
	if format == FormatCompact8 {
		addrWidth = 1
	}
	entrySize := addrWidth + width
	mp := &Map{Format: format, RegisterWidth: width}
	for i := 0; i < count; i++ {
		if len(data) < entrySize {
			return nil, fmt.Errorf("regmap: entry %d truncated", i)
		}
		var addr int
		if addrWidth == 1 {
			addr = int(data[0])
		} else {
			addr = int(data[0]) | int(data[1])<<8
		}
		bits := make([]byte, width)
		copy(bits, data[addrWidth:entrySize])
		mp.Entries = append(mp.Entries, Entry{Addr: addr, Bits: bits})
		data = data[entrySize:]
	}
	return mp, nil
}

// SelfCheck re-decodes mp's encoded form and compares every entry against
// result's in-memory register lines before a generated map is trusted.
// A mismatch returns an error describing the
// first divergent address rather than silently returning a bad map.
func SelfCheck(mp *Map, result *verifyflow.Result) error {
	decoded, err := Decode(mp.Encode())
	if err != nil {
		return fmt.Errorf("regmap: self-check decode failed: %w", err)
	}
	if len(decoded.Entries) != len(mp.Entries) {
		return fmt.Errorf("regmap: self-check entry count mismatch: got %d, want %d", len(decoded.Entries), len(mp.Entries))
	}
	for i, e := range decoded.Entries {
		want := mp.Entries[i]
		if e.Addr != want.Addr {
			return fmt.Errorf("regmap: self-check address mismatch at entry %d: got 0x%04x, want 0x%04x", i, e.Addr, want.Addr)
		}
		if !bytes.Equal(e.Bits, want.Bits) {
			return fmt.Errorf("regmap: self-check bit-vector mismatch at address 0x%04x", e.Addr)
		}
		line, ok := result.Lines[e.Addr]
		if !ok {
			return fmt.Errorf("regmap: self-check found no live register line for address 0x%04x", e.Addr)
		}
		if !bytes.Equal(bitsFor(line, mp.RegisterWidth), e.Bits) {
			return fmt.Errorf("regmap: self-check diverges from verifier state at address 0x%04x", e.Addr)
		}
	}
	return nil
}

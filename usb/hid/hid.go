// Package hid models USB HID report descriptors as a tree of typed items and
// encodes them to the exact byte stream the HID 1.11 grammar requires.
//
// A report descriptor is a byte-coded DSL of "short items" (1-byte header plus
// 0/1/2/4 data bytes). Building the descriptor from typed items instead of
// literal byte tables keeps the item tags, data widths and collection nesting
// correct by construction.
package hid

import "fmt"

// ItemType is the HID short item "type" field.
// Main=0, Global=1, Local=2, Reserved=3.
type ItemType uint8

const (
	ItemTypeMain     ItemType = 0
	ItemTypeGlobal   ItemType = 1
	ItemTypeLocal    ItemType = 2
	ItemTypeReserved ItemType = 3
)

// Item is one node of a report descriptor.
type Item interface {
	encode(w *writer) error
}

// Descriptor is a complete HID report descriptor (descriptor type 0x22).
type Descriptor struct {
	Items []Item
}

// Bytes encodes the descriptor. Encoding is deterministic: the same item tree
// always yields the same byte sequence.
func (d Descriptor) Bytes() ([]byte, error) {
	w := &writer{}
	for _, it := range d.Items {
		if it == nil {
			return nil, fmt.Errorf("hid: nil item")
		}
		if err := it.encode(w); err != nil {
			return nil, err
		}
	}
	return w.buf, nil
}

type writer struct {
	buf []byte
}

// short appends one short item. data must be 0, 1, 2 or 4 bytes.
func (w *writer) short(tag uint8, typ ItemType, data []byte) error {
	var sizeCode uint8
	switch len(data) {
	case 0:
		sizeCode = 0
	case 1:
		sizeCode = 1
	case 2:
		sizeCode = 2
	case 4:
		sizeCode = 3
	default:
		return fmt.Errorf("hid: short item data must be 0/1/2/4 bytes, got %d", len(data))
	}
	w.buf = append(w.buf, (tag<<4)|(uint8(typ)<<2)|sizeCode)
	w.buf = append(w.buf, data...)
	return nil
}

// unsigned returns the minimal 1/2/4-byte little-endian encoding of v.
func unsigned(v uint32) []byte {
	switch {
	case v <= 0xFF:
		return []byte{uint8(v)}
	case v <= 0xFFFF:
		return []byte{uint8(v), uint8(v >> 8)}
	default:
		return []byte{uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)}
	}
}

// signed returns the minimal 1/2/4-byte little-endian two's complement
// encoding of v.
func signed(v int32) []byte {
	switch {
	case v >= -128 && v <= 127:
		return []byte{uint8(v)}
	case v >= -32768 && v <= 32767:
		u := uint16(int16(v))
		return []byte{uint8(u), uint8(u >> 8)}
	default:
		u := uint32(v)
		return []byte{uint8(u), uint8(u >> 8), uint8(u >> 16), uint8(u >> 24)}
	}
}

// Raw is an escape hatch for vendor-defined or otherwise unmodeled short
// items. Data must have length 0, 1, 2 or 4.
type Raw struct {
	Type ItemType
	Tag  uint8
	Data []byte
}

func (r Raw) encode(w *writer) error {
	return w.short(r.Tag, r.Type, r.Data)
}

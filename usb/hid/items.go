package hid

// Global items.

// UsagePage sets the current usage page (tag 0x0).
type UsagePage struct{ Page uint16 }

func (u UsagePage) encode(w *writer) error {
	return w.short(0x0, ItemTypeGlobal, unsigned(uint32(u.Page)))
}

// LogicalMinimum sets the logical minimum (tag 0x1).
type LogicalMinimum struct{ Min int32 }

func (l LogicalMinimum) encode(w *writer) error {
	return w.short(0x1, ItemTypeGlobal, signed(l.Min))
}

// LogicalMaximum sets the logical maximum (tag 0x2).
type LogicalMaximum struct{ Max int32 }

func (l LogicalMaximum) encode(w *writer) error {
	return w.short(0x2, ItemTypeGlobal, signed(l.Max))
}

// PhysicalMinimum sets the physical minimum (tag 0x3).
type PhysicalMinimum struct{ Min int32 }

func (p PhysicalMinimum) encode(w *writer) error {
	return w.short(0x3, ItemTypeGlobal, signed(p.Min))
}

// PhysicalMaximum sets the physical maximum (tag 0x4).
type PhysicalMaximum struct{ Max int32 }

func (p PhysicalMaximum) encode(w *writer) error {
	return w.short(0x4, ItemTypeGlobal, signed(p.Max))
}

// Unit sets the unit (tag 0x6). The value is the nibble-coded unit word from
// the HID spec, e.g. UnitRotationDegrees for angular position.
type Unit struct{ Unit uint32 }

func (u Unit) encode(w *writer) error {
	return w.short(0x6, ItemTypeGlobal, unsigned(u.Unit))
}

// ReportSize sets the report field size in bits (tag 0x7).
type ReportSize struct{ Bits uint8 }

func (r ReportSize) encode(w *writer) error {
	return w.short(0x7, ItemTypeGlobal, []byte{r.Bits})
}

// ReportID sets the report ID (tag 0x8).
type ReportID struct{ ID uint8 }

func (r ReportID) encode(w *writer) error {
	return w.short(0x8, ItemTypeGlobal, []byte{r.ID})
}

// ReportCount sets the report field count (tag 0x9).
type ReportCount struct{ Count uint16 }

func (r ReportCount) encode(w *writer) error {
	return w.short(0x9, ItemTypeGlobal, unsigned(uint32(r.Count)))
}

// Local items.

// Usage sets the current usage (tag 0x0).
type Usage struct{ Usage uint16 }

func (u Usage) encode(w *writer) error {
	return w.short(0x0, ItemTypeLocal, unsigned(uint32(u.Usage)))
}

// UsageMinimum sets the usage minimum (tag 0x1).
type UsageMinimum struct{ Min uint16 }

func (u UsageMinimum) encode(w *writer) error {
	return w.short(0x1, ItemTypeLocal, unsigned(uint32(u.Min)))
}

// UsageMaximum sets the usage maximum (tag 0x2).
type UsageMaximum struct{ Max uint16 }

func (u UsageMaximum) encode(w *writer) error {
	return w.short(0x2, ItemTypeLocal, unsigned(uint32(u.Max)))
}

// Main items.

// Collection opens a collection (tag 0xA), encodes its children and closes it
// with End Collection (tag 0xC).
type Collection struct {
	Kind  CollectionKind
	Items []Item
}

func (c Collection) encode(w *writer) error {
	if err := w.short(0xA, ItemTypeMain, []byte{uint8(c.Kind)}); err != nil {
		return err
	}
	for _, it := range c.Items {
		if err := it.encode(w); err != nil {
			return err
		}
	}
	return w.short(0xC, ItemTypeMain, nil)
}

// Input encodes an Input main item (tag 0x8).
type Input struct{ Flags MainFlags }

func (i Input) encode(w *writer) error {
	return w.short(0x8, ItemTypeMain, []byte{uint8(i.Flags)})
}

// Output encodes an Output main item (tag 0x9).
type Output struct{ Flags MainFlags }

func (o Output) encode(w *writer) error {
	return w.short(0x9, ItemTypeMain, []byte{uint8(o.Flags)})
}

// Feature encodes a Feature main item (tag 0xB).
type Feature struct{ Flags MainFlags }

func (f Feature) encode(w *writer) error {
	return w.short(0xB, ItemTypeMain, []byte{uint8(f.Flags)})
}

package joystick

import (
	"fmt"
	"io"
)

// WriterTransport sinks descriptor and report bytes into an io.Writer, either
// as hex lines (one report per line, human-readable) or as raw bytes. It
// exists for the diagnostic console and examples, where the real USB
// transport is out of reach; embedders supply their own Transport.
type WriterTransport struct {
	W io.Writer
	// Hex selects hex-line framing instead of raw bytes.
	Hex bool
}

// RegisterDescriptor writes the descriptor once, hex-framed when Hex is set
// and omitted entirely for raw sinks (a raw byte stream carries reports
// only).
func (t *WriterTransport) RegisterDescriptor(desc []byte) error {
	if !t.Hex {
		return nil
	}
	if _, err := fmt.Fprintf(t.W, "descriptor % x\n", desc); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}
	return nil
}

// Send writes one report.
func (t *WriterTransport) Send(report []byte) error {
	var err error
	if t.Hex {
		_, err = fmt.Fprintf(t.W, "report % x\n", report)
	} else {
		_, err = t.W.Write(report)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

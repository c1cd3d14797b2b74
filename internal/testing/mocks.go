// Package testing provides shared test doubles for joystick transports and
// input sources.
package testing

import "bytes"

// RecordingTransport captures the registered descriptor and every sent
// report, and can be made to fail on demand.
type RecordingTransport struct {
	Descriptor []byte
	Sent       [][]byte

	// FailSend, when non-nil, is returned by Send without recording.
	FailSend error
	// FailRegister, when non-nil, is returned by RegisterDescriptor.
	FailRegister error
}

func (t *RecordingTransport) RegisterDescriptor(desc []byte) error {
	if t.FailRegister != nil {
		return t.FailRegister
	}
	t.Descriptor = bytes.Clone(desc)
	return nil
}

func (t *RecordingTransport) Send(report []byte) error {
	if t.FailSend != nil {
		return t.FailSend
	}
	t.Sent = append(t.Sent, bytes.Clone(report))
	return nil
}

// Last returns the most recently sent report, or nil.
func (t *RecordingTransport) Last() []byte {
	if len(t.Sent) == 0 {
		return nil
	}
	return t.Sent[len(t.Sent)-1]
}

// ScriptedDigital replays a fixed sequence of raw digital reads, repeating
// the final value once the script runs out.
type ScriptedDigital struct {
	Values []bool
	i      int
}

func (s *ScriptedDigital) Read() bool {
	if len(s.Values) == 0 {
		return false
	}
	v := s.Values[min(s.i, len(s.Values)-1)]
	s.i++
	return v
}

// ScriptedAnalog replays a fixed sequence of raw samples, repeating the final
// value once the script runs out.
type ScriptedAnalog struct {
	Values []int
	i      int
}

func (s *ScriptedAnalog) Read() int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[min(s.i, len(s.Values)-1)]
	s.i++
	return v
}

package brd

import (
	"fmt"
	"io"
)

// Contact is one (element, pad) endpoint of a signal.
type Contact struct {
	Element *Element
	Pad     string
}

// Signal is an electrical net: an ordered chain of contacts plus the
// zero-width connector wires derived between consecutive contacts.
// Contact order is caller-controlled and meaningful — it decides which
// physical segments get drawn, even though any order means the same
// net electrically.
type Signal struct {
	Name           string
	Layer          int
	AirwiresHidden bool

	contacts []Contact
}

// NewSignal creates a signal over at least two contacts. Pad names are
// not checked here; a dangling reference surfaces on first geometry
// access.
func NewSignal(name string, layer int, contacts ...Contact) (*Signal, error) {
	if len(contacts) < 2 {
		return nil, fmt.Errorf("%w: signal %q needs at least two contacts, got %d", ErrInvalidArgument, name, len(contacts))
	}
	return &Signal{Name: name, Layer: layer, contacts: contacts}, nil
}

// Contacts returns the contact chain in order.
func (s *Signal) Contacts() []Contact { return s.contacts }

// WriteXML emits one contactref per contact, then one zero-width wire
// per adjacent pair on the signal layer. k contacts produce k-1 wires.
func (s *Signal) WriteXML(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<signal name=\"%s\" airwireshidden=\"%s\">\n", s.Name, yesNo(s.AirwiresHidden)); err != nil {
		return err
	}
	for _, c := range s.contacts {
		if _, err := fmt.Fprintf(w, "<contactref element=\"%s\" pad=\"%s\"/>\n", c.Element.Name, c.Pad); err != nil {
			return err
		}
	}
	for i := 1; i < len(s.contacts); i++ {
		x1, y1, err := s.contacts[i-1].Element.PadPosition(s.contacts[i-1].Pad)
		if err != nil {
			return fmt.Errorf("signal %q: %w", s.Name, err)
		}
		x2, y2, err := s.contacts[i].Element.PadPosition(s.contacts[i].Pad)
		if err != nil {
			return fmt.Errorf("signal %q: %w", s.Name, err)
		}
		if _, err := fmt.Fprintf(w, "<wire x1=\"%.5f\" y1=\"%.5f\" x2=\"%.5f\" y2=\"%.5f\" width=\"0\" layer=\"%d\"/>\n",
			x1, y1, x2, y2, s.Layer); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</signal>\n")
	return err
}

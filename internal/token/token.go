// Package token defines the persisted ramp format: named families of
// step-keyed hex colours, serialised with a stable key order.
package token

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/jmylchreest/tonal/internal/ramp"
)

// Entry is one step of a family: its label and displayable hex value.
type Entry struct {
	Label int
	Hex   string
}

// Family is one named ramp, index-aligned with ramp.Labels.
type Family struct {
	Name  string
	Steps [ramp.StepCount]string
}

// NewFamily renders a generated ramp into a named token family.
func NewFamily(name string, r ramp.Ramp) Family {
	f := Family{Name: name}
	for i, sample := range r {
		f.Steps[i] = sample.Hex()
	}
	return f
}

// Entries returns the family's steps in ascending label order.
func (f Family) Entries() []Entry {
	entries := make([]Entry, ramp.StepCount)
	for i, label := range ramp.Labels() {
		entries[i] = Entry{Label: label, Hex: f.Steps[i]}
	}
	return entries
}

// Set is the persisted token document. Families keep the order they
// were added in; callers wanting name order sort before adding.
type Set struct {
	Families []Family
}

// Add appends a family to the set.
func (s *Set) Add(f Family) {
	s.Families = append(s.Families, f)
}

// MarshalJSON writes each family as an object with all 13 step keys
// present in ascending label order. encoding/json sorts object keys
// lexically, which would put "100" before "50", so the document is
// written by hand.
func (s Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for fi, f := range s.Families {
		if fi > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteByte('{')
		for i, e := range f.Entries() {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(`"` + strconv.Itoa(e.Label) + `":`)
			hex, err := json.Marshal(e.Hex)
			if err != nil {
				return nil, err
			}
			buf.Write(hex)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Indent renders the set as indented JSON for file output.
func (s Set) Indent() ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

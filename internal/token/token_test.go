package token

import (
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/ramp"
)

func testRamp() ramp.Ramp {
	var r ramp.Ramp
	for i := range r {
		r[i] = colour.ToSample(float64(10*i), 50, float64(95-6*i))
	}
	return r
}

func TestNewFamily(t *testing.T) {
	r := testRamp()
	f := NewFamily("primary", r)

	if f.Name != "primary" {
		t.Errorf("Name = %q, want %q", f.Name, "primary")
	}
	for i := range r {
		if f.Steps[i] != r[i].Hex() {
			t.Errorf("Steps[%d] = %q, want %q", i, f.Steps[i], r[i].Hex())
		}
	}
}

func TestEntriesAscendingLabels(t *testing.T) {
	f := NewFamily("primary", testRamp())
	entries := f.Entries()

	if len(entries) != ramp.StepCount {
		t.Fatalf("len(entries) = %d, want %d", len(entries), ramp.StepCount)
	}
	for i, label := range ramp.Labels() {
		if entries[i].Label != label {
			t.Errorf("entries[%d].Label = %d, want %d", i, entries[i].Label, label)
		}
		if entries[i].Hex != f.Steps[i] {
			t.Errorf("entries[%d].Hex = %q, want %q", i, entries[i].Hex, f.Steps[i])
		}
	}
}

func TestSetMarshalStepOrder(t *testing.T) {
	f := Family{Name: "accent"}
	for i := range f.Steps {
		f.Steps[i] = "#abcdef"
	}
	var set Set
	set.Add(f)

	got, err := set.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	want := `{"accent":{` +
		`"50":"#abcdef","100":"#abcdef","150":"#abcdef","200":"#abcdef",` +
		`"300":"#abcdef","400":"#abcdef","500":"#abcdef","600":"#abcdef",` +
		`"700":"#abcdef","800":"#abcdef","850":"#abcdef","900":"#abcdef",` +
		`"950":"#abcdef"}}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestSetMarshalKeepsFamilyOrder(t *testing.T) {
	// "zeta" added first must serialise first even though "alpha"
	// sorts before it.
	var set Set
	set.Add(NewFamily("zeta", testRamp()))
	set.Add(NewFamily("alpha", testRamp()))

	got, err := set.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	zeta := strings.Index(string(got), `"zeta"`)
	alpha := strings.Index(string(got), `"alpha"`)
	if zeta < 0 || alpha < 0 {
		t.Fatalf("marshalled set missing a family: %s", got)
	}
	if zeta > alpha {
		t.Errorf("families reordered: zeta at %d, alpha at %d", zeta, alpha)
	}
}

func TestIndentPreservesOrder(t *testing.T) {
	var set Set
	set.Add(NewFamily("primary", testRamp()))

	got, err := set.Indent()
	if err != nil {
		t.Fatalf("Indent() error = %v", err)
	}

	text := string(got)
	if !strings.HasSuffix(text, "}\n") {
		t.Errorf("Indent() output does not end with newline: %q", text[len(text)-4:])
	}
	i50 := strings.Index(text, `"50"`)
	i100 := strings.Index(text, `"100"`)
	i950 := strings.Index(text, `"950"`)
	if i50 < 0 || i100 < 0 || i950 < 0 {
		t.Fatalf("Indent() output missing step keys:\n%s", text)
	}
	if !(i50 < i100 && i100 < i950) {
		t.Errorf("step keys out of order: 50 at %d, 100 at %d, 950 at %d", i50, i100, i950)
	}
}

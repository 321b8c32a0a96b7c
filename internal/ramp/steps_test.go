package ramp

import "testing"

func TestLabelsOrdered(t *testing.T) {
	labels := Labels()

	if len(labels) != StepCount {
		t.Fatalf("Labels() has %d entries, want %d", len(labels), StepCount)
	}
	for i := 1; i < len(labels); i++ {
		if labels[i] <= labels[i-1] {
			t.Errorf("Labels()[%d] = %d, not greater than %d", i, labels[i], labels[i-1])
		}
	}
	if labels[PivotIndex] != PivotLabel {
		t.Errorf("Labels()[%d] = %d, want %d", PivotIndex, labels[PivotIndex], PivotLabel)
	}
}

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name      string
		label     int
		wantIndex int
		wantOK    bool
	}{
		{name: "lightest", label: 50, wantIndex: 0, wantOK: true},
		{name: "pivot", label: 500, wantIndex: 6, wantOK: true},
		{name: "uneven upper run", label: 850, wantIndex: 10, wantOK: true},
		{name: "darkest", label: 950, wantIndex: 12, wantOK: true},
		{name: "unknown label", label: 250, wantIndex: 0, wantOK: false},
		{name: "negative", label: -50, wantIndex: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IndexOf(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("IndexOf(%d) ok = %v, want %v", tt.label, ok, tt.wantOK)
			}
			if ok && got != tt.wantIndex {
				t.Errorf("IndexOf(%d) = %d, want %d", tt.label, got, tt.wantIndex)
			}
		})
	}
}

func TestLabelAtRoundTrip(t *testing.T) {
	for i := 0; i < StepCount; i++ {
		label := LabelAt(i)
		got, ok := IndexOf(label)
		if !ok || got != i {
			t.Errorf("IndexOf(LabelAt(%d)) = %d, %v, want %d, true", i, got, ok, i)
		}
	}
}

func TestHalves(t *testing.T) {
	for i := 0; i < StepCount; i++ {
		switch {
		case i < PivotIndex:
			if !IsTint(i) || IsShade(i) {
				t.Errorf("index %d should be a tint", i)
			}
		case i == PivotIndex:
			if IsTint(i) || IsShade(i) {
				t.Errorf("index %d is the pivot, neither tint nor shade", i)
			}
		default:
			if IsTint(i) || !IsShade(i) {
				t.Errorf("index %d should be a shade", i)
			}
		}
	}

	if lo, hi := TintHalf.Bounds(); lo != 0 || hi != PivotIndex {
		t.Errorf("TintHalf.Bounds() = %d..%d, want 0..%d", lo, hi, PivotIndex)
	}
	if lo, hi := ShadeHalf.Bounds(); lo != PivotIndex || hi != LastIndex {
		t.Errorf("ShadeHalf.Bounds() = %d..%d, want %d..%d", lo, hi, PivotIndex, LastIndex)
	}
}

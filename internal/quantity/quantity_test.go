package quantity

import (
	"math"
	"testing"
)

func TestUnitConversion(t *testing.T) {
	tests := []struct {
		value float64
		unit  Unit
		gyr   float64
	}{
		{1.0, Gyr, 1.0},
		{1000.0, Myr, 1.0},
		{150.0, Myr, 0.15},
		{1e9, Yr, 1.0},
		{6.0, Gyr, 6.0},
	}

	for _, tt := range tests {
		q := New(tt.value, tt.unit)
		if got := q.Gyrs(); math.Abs(got-tt.gyr) > 1e-12 {
			t.Errorf("New(%g, %v).Gyrs() = %g, want %g", tt.value, tt.unit, got, tt.gyr)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	q := New(1.5, Gyr)
	if got := q.In(Myr); math.Abs(got-1500) > 1e-9 {
		t.Errorf("In(Myr) = %g, want 1500", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := New(1, Gyr)
	b := New(500, Myr)

	if got := a.Add(b).Gyrs(); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("Add = %g, want 1.5", got)
	}
	if got := a.Sub(b).Gyrs(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Sub = %g, want 0.5", got)
	}
	if got := a.Scale(3).Gyrs(); got != 3 {
		t.Errorf("Scale = %g, want 3", got)
	}
	if got := a.Div(b); math.Abs(got-2) > 1e-12 {
		t.Errorf("Div = %g, want 2", got)
	}
}

func TestZeroIsAbsent(t *testing.T) {
	var q Quantity
	if !q.IsZero() {
		t.Error("zero Quantity should report IsZero")
	}
	if New(0.1, Myr).IsZero() {
		t.Error("non-zero Quantity should not report IsZero")
	}
}

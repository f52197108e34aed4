package chem

import (
	"math"
	"testing"

	"github.com/san-kum/onezone/internal/quantity"
	"github.com/san-kum/onezone/internal/series"
)

var grid = series.Series{0.1, 1, 5, 10, 20}

func TestRecomputeOnlyOnChange(t *testing.T) {
	m := New(Defaults())

	m.FeH(grid)
	m.OH(grid)
	m.FeH(grid)
	if rc := m.Recalcs(); rc.Timescales != 1 || rc.Equilibrium != 1 || rc.Solar != 1 {
		t.Errorf("unchanged parameters recomputed: %+v", rc)
	}

	m.Eta = 1.0
	m.FeH(grid)
	m.FeH(grid)
	if rc := m.Recalcs(); rc.Timescales != 2 || rc.Equilibrium != 2 {
		t.Errorf("eta change should recompute the cascade exactly once: %+v", rc)
	}
	if rc := m.Recalcs(); rc.Solar != 1 {
		t.Errorf("eta change must not recompute solar offsets: %+v", rc)
	}

	m.SolarFe = 7.5
	m.FeH(grid)
	if rc := m.Recalcs(); rc.Solar != 2 || rc.Timescales != 2 || rc.Equilibrium != 2 {
		t.Errorf("solar change should only rerun the solar pass: %+v", rc)
	}
}

func TestGuardInheritedByDerivedQueries(t *testing.T) {
	// Derivatives and DFs are built from abundance queries, so they pick up
	// parameter changes without their own guard.
	m := New(Defaults())
	before := m.FeHRate(series.Series{5})[0]

	m.MCCFe = 0.002
	after := m.FeHRate(series.Series{5})[0]
	if before == after {
		t.Error("rate query did not observe the parameter change")
	}
}

func TestSecondIaDegenerateCollapse(t *testing.T) {
	single := New(Defaults())

	split := New(Defaults())
	split.TauIa2 = quantity.New(5, quantity.Gyr)
	split.FracIa2 = 0

	ts := series.Linspace(0.05, 12, 60)
	fe1 := single.FeH(ts)
	fe2 := split.FeH(ts)
	o1 := single.OH(ts)
	o2 := split.OH(ts)

	for i := range ts {
		if math.Abs(fe1[i]-fe2[i]) > 1e-12 {
			t.Fatalf("[Fe/H] at t=%g: %.15f vs %.15f", ts[i], fe1[i], fe2[i])
		}
		if o1[i] != o2[i] && !(math.IsNaN(o1[i]) && math.IsNaN(o2[i])) {
			t.Fatalf("[O/H] at t=%g: %v vs %v", ts[i], o1[i], o2[i])
		}
	}
}

func TestTwoComponentSplitsEquilibrium(t *testing.T) {
	p := Defaults()
	p.TauIa2 = quantity.New(5, quantity.Gyr)
	m := New(p)
	m.refresh()

	if m.eq.zFeIa2 <= 0 {
		t.Error("second-component equilibrium constant should be positive")
	}
	// The prompt component is scaled down by the transferred fraction.
	single := New(Defaults())
	single.refresh()
	want := single.eq.zFeIa * (1 - p.FracIa2)
	if math.Abs(m.eq.zFeIa-want) > 1e-15 {
		t.Errorf("prompt component = %g, want %g", m.eq.zFeIa, want)
	}
}

func TestResetRoundTrip(t *testing.T) {
	p := Defaults()
	p.Eta = 1.8
	m := New(p)

	before := m.FeH(grid.Clone())

	m.Eta = 0.5
	m.TauSFH = quantity.New(4, quantity.Gyr)
	m.SolarFe = 7.0
	m.FeH(grid.Clone())

	m.ResetToInitial()
	after := m.FeH(grid.Clone())

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("reset_to_initial output differs at t=%g: %v vs %v", grid[i], before[i], after[i])
		}
	}

	m.ResetToDefault()
	if m.Eta != 2.5 {
		t.Errorf("reset_to_default eta = %g, want 2.5", m.Eta)
	}
	def := New(Defaults()).FeH(grid.Clone())
	got := m.FeH(grid.Clone())
	for i := range def {
		if def[i] != got[i] {
			t.Fatalf("reset_to_default output differs at t=%g", grid[i])
		}
	}
}

func TestFeHEndToEnd(t *testing.T) {
	m := New(Defaults())
	ten := quantity.New(10, quantity.Gyr)

	a := m.FeHAt(ten)
	b := m.FeHAt(ten)
	if a != b {
		t.Errorf("repeated query not idempotent: %v vs %v", a, b)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		t.Fatalf("Fe_H(10 Gyr) = %v, want finite", a)
	}

	late := m.FeHAt(quantity.New(1e6, quantity.Gyr))
	if !(a < late) {
		t.Errorf("Fe_H(10 Gyr) = %v should be below the equilibrium value %v", a, late)
	}

	track := m.FeH(grid.Clone())
	for i := 1; i < len(track); i++ {
		if track[i] < track[i-1] {
			t.Errorf("[Fe/H] decreased from t=%g to t=%g: %v -> %v",
				grid[i-1], grid[i], track[i-1], track[i])
		}
	}
}

func TestUnitInvariance(t *testing.T) {
	a := New(Defaults())

	p := Defaults()
	p.TauSFE = quantity.New(1000, quantity.Myr)
	p.TauSFH = quantity.New(6e9, quantity.Yr)
	p.MinDtIa = quantity.New(150, quantity.Myr)
	b := New(p)

	ts := series.Linspace(0.2, 12, 40)
	fa := a.FeH(ts)
	fb := b.FeH(ts)
	for i := range ts {
		if math.Abs(fa[i]-fb[i]) > 1e-12 {
			t.Fatalf("unit choice changed output at t=%g: %v vs %v", ts[i], fa[i], fb[i])
		}
	}

	if rc := b.Recalcs(); rc.Timescales != 1 {
		t.Errorf("expected a single derivation pass, got %+v", rc)
	}
}

func TestDistributionFunctions(t *testing.T) {
	m := New(Defaults())

	// Achievable [O/Fe] range under defaults is roughly (-0.05, 0.42).
	xs := series.Linspace(-0.03, 0.35, 25)
	df := m.OFeDF(xs)
	for i, v := range df {
		if v < 0 {
			t.Errorf("O_Fe_DF(%g) = %g, want >= 0 inside the achievable range", xs[i], v)
		}
	}

	// Outside the achievable range the inversion fails and the density is
	// exactly zero, not an error.
	if got := m.OFeDFAt(3.0); got != 0 {
		t.Errorf("O_Fe_DF far outside range = %g, want 0", got)
	}
	if got := m.FeHDFAt(2.5); got != 0 {
		t.Errorf("Fe_H_DF far outside range = %g, want 0", got)
	}

	// [Fe/H] rises with time, so its DF is positive where achievable.
	if got := m.FeHDFAt(-0.3); got <= 0 {
		t.Errorf("Fe_H_DF(-0.3) = %g, want > 0", got)
	}
}

func TestRateMatchesTrackSlope(t *testing.T) {
	m := New(Defaults())

	// Central-difference reference with a coarser step.
	const h = 1e-4
	tt := 3.0
	want := (m.fehAt(tt+h) - m.fehAt(tt-h)) / (2 * h)
	got := m.FeHRate(series.Series{tt})[0]
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("FeHRate(3) = %g, reference slope %g", got, want)
	}
}

func TestDegenerateConfigurationPropagates(t *testing.T) {
	// 1+eta-r == 0 is not validated; the artifact must reach the caller.
	p := Defaults()
	p.Eta = -0.6
	p.R = 0.4
	m := New(p)

	out := m.FeH(series.Series{1})
	if out.IsFinite() {
		t.Errorf("degenerate 1+eta-r should produce a non-finite result, got %v", out[0])
	}
}

package chem

import (
	"math"

	"github.com/san-kum/onezone/internal/quantity"
	"github.com/san-kum/onezone/internal/series"
	"github.com/san-kum/onezone/internal/solve"
)

// rateStep is the forward-difference step of the time derivatives, in Gyr.
const rateStep = 1e-8

// Root-finding bracket for inverting abundance tracks, in Gyr.
const (
	invertMin = 1e-8
	invertMax = 12.5
)

// OH returns the [O/H] abundance at each time (Gyr since star-formation
// onset).
func (m *OneZone) OH(t series.Series) series.Series {
	m.refresh()
	z := m.massFraction(t, m.eq.zOCC, m.eq.zOIa, m.eq.zOIa2)
	for i, v := range z {
		z[i] = math.Log10(v) - m.solar.logZO
	}
	return z
}

// FeH returns the [Fe/H] abundance at each time (Gyr).
func (m *OneZone) FeH(t series.Series) series.Series {
	m.refresh()
	z := m.massFraction(t, m.eq.zFeCC, m.eq.zFeIa, m.eq.zFeIa2)
	for i, v := range z {
		z[i] = math.Log10(v) - m.solar.logZFe
	}
	return z
}

// OFe returns the [O/Fe] ratio at each time (Gyr).
func (m *OneZone) OFe(t series.Series) series.Series {
	return m.OH(t).Sub(m.FeH(t))
}

// massFraction sums the enrichment channels in equilibrium-constant units.
// Derived state must be current.
func (m *OneZone) massFraction(t series.Series, ccEq, iaEq, iaEq2 float64) series.Series {
	z := m.evolCC(t)
	ia := m.evolIa(t, m.ts.tauDepIa, m.ts.tauIaSFH)
	for i := range z {
		z[i] = ccEq*z[i] + iaEq*ia[i]
	}
	if _, ok := m.SecondIa(); ok {
		ia2 := m.evolIa(t, m.ts.tauDepIa2, m.ts.tauIaSFH2)
		for i := range z {
			z[i] += iaEq2 * ia2[i]
		}
	}
	return z
}

// OHAt evaluates [O/H] at a single time.
func (m *OneZone) OHAt(t quantity.Quantity) float64 { return m.ohAt(t.In(quantity.Gyr)) }

// FeHAt evaluates [Fe/H] at a single time.
func (m *OneZone) FeHAt(t quantity.Quantity) float64 { return m.fehAt(t.In(quantity.Gyr)) }

// OFeAt evaluates [O/Fe] at a single time.
func (m *OneZone) OFeAt(t quantity.Quantity) float64 { return m.ofeAt(t.In(quantity.Gyr)) }

func (m *OneZone) ohAt(t float64) float64  { return m.OH(series.Series{t})[0] }
func (m *OneZone) fehAt(t float64) float64 { return m.FeH(series.Series{t})[0] }
func (m *OneZone) ofeAt(t float64) float64 { return m.OFe(series.Series{t})[0] }

// OHRate returns d[O/H]/dt in dex/Gyr at each time (Gyr), by forward finite
// difference. The truncation error scales with the fixed step.
func (m *OneZone) OHRate(t series.Series) series.Series { return m.rate(t, m.OH) }

// FeHRate returns d[Fe/H]/dt in dex/Gyr at each time (Gyr).
func (m *OneZone) FeHRate(t series.Series) series.Series { return m.rate(t, m.FeH) }

// OFeRate returns d[O/Fe]/dt in dex/Gyr at each time (Gyr).
func (m *OneZone) OFeRate(t series.Series) series.Series { return m.rate(t, m.OFe) }

// OHRateAt evaluates d[O/H]/dt at a single time.
func (m *OneZone) OHRateAt(t quantity.Quantity) float64 {
	return m.rateAt(t.In(quantity.Gyr), m.ohAt)
}

// FeHRateAt evaluates d[Fe/H]/dt at a single time.
func (m *OneZone) FeHRateAt(t quantity.Quantity) float64 {
	return m.rateAt(t.In(quantity.Gyr), m.fehAt)
}

// OFeRateAt evaluates d[O/Fe]/dt at a single time.
func (m *OneZone) OFeRateAt(t quantity.Quantity) float64 {
	return m.rateAt(t.In(quantity.Gyr), m.ofeAt)
}

func (m *OneZone) rate(t series.Series, f func(series.Series) series.Series) series.Series {
	hi := f(t.Shift(rateStep))
	lo := f(t)
	for i := range hi {
		hi[i] = (hi[i] - lo[i]) / rateStep
	}
	return hi
}

func (m *OneZone) rateAt(t float64, f func(float64) float64) float64 {
	return (f(t+rateStep) - f(t)) / rateStep
}

// timeOf inverts f, finding the time in (invertMin, invertMax) Gyr at which
// f(t) = x. Returns NaN when no such time exists in the bracket.
func (m *OneZone) timeOf(x float64, f func(float64) float64) float64 {
	t, err := solve.Brent(func(t float64) float64 { return x - f(t) }, invertMin, invertMax)
	if err != nil {
		return math.NaN()
	}
	return t
}

// df is the abundance distribution function: the star-formation-rate weight
// at the time the track reaches x, over the track's rate of change there (the
// time-to-abundance Jacobian). Zero when x is never reached.
func (m *OneZone) df(x float64, f func(float64) float64) float64 {
	t := m.timeOf(x, f)
	if math.IsNaN(t) {
		return 0
	}
	tauSFH := m.TauSFH.In(quantity.Gyr)
	w := math.Exp(-t / tauSFH)
	if !m.expSFH() {
		w *= t
	}
	return w / m.rateAt(t, f)
}

// OHDF returns the [O/H] distribution function at each abundance value.
func (m *OneZone) OHDF(xs series.Series) series.Series {
	out := series.Zeros(len(xs))
	for i, x := range xs {
		out[i] = m.OHDFAt(x)
	}
	return out
}

// FeHDF returns the [Fe/H] distribution function at each abundance value.
func (m *OneZone) FeHDF(xs series.Series) series.Series {
	out := series.Zeros(len(xs))
	for i, x := range xs {
		out[i] = m.FeHDFAt(x)
	}
	return out
}

// OFeDF returns the [O/Fe] distribution function at each abundance value.
func (m *OneZone) OFeDF(xs series.Series) series.Series {
	out := series.Zeros(len(xs))
	for i, x := range xs {
		out[i] = m.OFeDFAt(x)
	}
	return out
}

// OHDFAt evaluates the [O/H] distribution function at one abundance value.
func (m *OneZone) OHDFAt(x float64) float64 { return m.df(x, m.ohAt) }

// FeHDFAt evaluates the [Fe/H] distribution function at one abundance value.
func (m *OneZone) FeHDFAt(x float64) float64 { return m.df(x, m.fehAt) }

// OFeDFAt evaluates the [O/Fe] distribution function at one abundance value.
// The sign is flipped: [O/Fe] decreases with time in the usual regime, so the
// Jacobian is negative and the flip keeps the density positive.
func (m *OneZone) OFeDFAt(x float64) float64 { return -m.df(x, m.ofeAt) }

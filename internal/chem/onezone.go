package chem

import (
	"math"

	"github.com/san-kum/onezone/internal/quantity"
)

// OneZone is a one-zone chemical-evolution model instance. The embedded
// Params are the live parameters: assign to them directly between queries
// and the next query recomputes whatever derived state the change touched.
type OneZone struct {
	Params

	initial Params

	ts    timescales
	eq    equilibrium
	solar solarOffsets

	lastPhysical fingerprint
	lastSolar    fingerprint

	recalcs Recalcs
}

// timescales are the effective timescales of the evolution formulas, in Gyr.
// Always recomputed together in one pass.
type timescales struct {
	tauDep    float64 // gas depletion
	tauDepSFH float64
	tauDepIa  float64
	tauIaSFH  float64
	// Second Ia component, valid only while the component is enabled.
	tauDepIa2 float64
	tauIaSFH2 float64
}

// equilibrium holds the asymptotic abundance-by-mass normalizations per
// enrichment channel. Valid only for the timescales computed in the same
// pass.
type equilibrium struct {
	zOCC  float64
	zOIa  float64
	zFeCC float64
	zFeIa float64
	// Second Ia component.
	zOIa2  float64
	zFeIa2 float64
}

type solarOffsets struct {
	logZO  float64
	logZFe float64
}

// Recalcs counts derivation passes, for verifying that queries only
// recompute after an actual parameter change.
type Recalcs struct {
	Timescales  int
	Equilibrium int
	Solar       int
}

// New returns a model with the given parameters. The supplied set is also
// snapshotted for ResetToInitial.
func New(p Params) *OneZone {
	return &OneZone{Params: p, initial: p}
}

// ResetToInitial restores the parameters supplied at construction.
func (m *OneZone) ResetToInitial() { m.Params = m.initial }

// ResetToDefault restores the library-wide defaults, regardless of what was
// supplied at construction.
func (m *OneZone) ResetToDefault() { m.Params = Defaults() }

// Recalcs returns a snapshot of the recomputation counters.
func (m *OneZone) Recalcs() Recalcs { return m.recalcs }

// refresh brings the derived state in line with the current parameters.
// Called at the top of every abundance query; a no-op when nothing changed.
// The physical and solar guards are independent.
func (m *OneZone) refresh() {
	if fp := physicalFingerprint(m.Params); !fp.equal(m.lastPhysical) {
		m.deriveTimescales()
		m.calcEquilibrium()
		m.lastPhysical = fp
	}
	if fp := solarFingerprint(m.Params); !fp.equal(m.lastSolar) {
		m.calcSolar()
		m.lastSolar = fp
	}
}

func (m *OneZone) deriveTimescales() {
	tauSFE := m.TauSFE.In(quantity.Gyr)
	tauSFH := m.TauSFH.In(quantity.Gyr)
	tauIa := m.TauIa.In(quantity.Gyr)

	// 1+eta-r <= 0 is not caught here: the Inf/NaN propagates to the
	// query result, matching the historical behavior.
	m.ts.tauDep = tauSFE / (1 + m.Eta - m.R)
	m.ts.tauDepSFH = 1 / (1/m.ts.tauDep - 1/tauSFH)
	m.ts.tauDepIa = 1 / (1/m.ts.tauDep - 1/tauIa)
	m.ts.tauIaSFH = 1 / (1/tauIa - 1/tauSFH)

	if sec, ok := m.SecondIa(); ok {
		tauIa2 := sec.TauIa.In(quantity.Gyr)
		m.ts.tauDepIa2 = 1 / (1/m.ts.tauDep - 1/tauIa2)
		m.ts.tauIaSFH2 = 1 / (1/tauIa2 - 1/tauSFH)
	}
	m.recalcs.Timescales++
}

func (m *OneZone) calcEquilibrium() {
	tauSFE := m.TauSFE.In(quantity.Gyr)
	tauSFH := m.TauSFH.In(quantity.Gyr)
	tauIa := m.TauIa.In(quantity.Gyr)
	minDt := m.MinDtIa.In(quantity.Gyr)

	cc := m.ts.tauDepSFH / tauSFE
	ia := cc * m.ts.tauIaSFH / tauIa * math.Exp(minDt/tauSFH)

	m.eq.zOCC = m.MCCO * cc
	m.eq.zFeCC = m.MCCFe * cc
	m.eq.zOIa = m.MIaO * ia
	m.eq.zFeIa = m.MIaFe * ia
	m.eq.zOIa2 = 0
	m.eq.zFeIa2 = 0

	if sec, ok := m.SecondIa(); ok {
		m.eq.zOIa *= 1 - sec.Frac
		m.eq.zFeIa *= 1 - sec.Frac
		ia2 := cc * m.ts.tauIaSFH2 / sec.TauIa.In(quantity.Gyr) * math.Exp(minDt/tauSFH)
		m.eq.zOIa2 = sec.Frac * m.MIaO * ia2
		m.eq.zFeIa2 = sec.Frac * m.MIaFe * ia2
	}
	m.recalcs.Equilibrium++
}

// calcSolar converts the 12+log10(X/H) references to log-mass-fraction
// offsets. The constants are the empirical offsets between the two scales.
func (m *OneZone) calcSolar() {
	m.solar.logZO = -2.25 + m.SolarO - 8.69
	m.solar.logZFe = -2.93 + m.SolarFe - 7.47
	m.recalcs.Solar++
}

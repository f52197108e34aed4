package chem

import (
	"math"

	"github.com/san-kum/onezone/internal/quantity"
	"github.com/san-kum/onezone/internal/series"
)

// evolCC is the fractional approach to the core-collapse equilibrium at each
// time (Gyr since star-formation onset). The linear-exponential branch is
// singular at t=0; callers must keep t > 0 on that branch.
func (m *OneZone) evolCC(t series.Series) series.Series {
	out := series.Zeros(len(t))
	if m.expSFH() {
		for i, ti := range t {
			out[i] = 1 - math.Exp(-ti/m.ts.tauDepSFH)
		}
		return out
	}
	for i, ti := range t {
		out[i] = 1 - m.ts.tauDepSFH/ti*(1-math.Exp(-ti/m.ts.tauDepSFH))
	}
	return out
}

// evolIa is the fractional approach to equilibrium for one Ia component with
// the given effective timescales (Gyr). Entries with t <= min_dt_Ia are
// exactly zero: no SNe Ia have had time to occur, and the formula is never
// evaluated there.
func (m *OneZone) evolIa(t series.Series, tauDepIa, tauIaSFH float64) series.Series {
	out := series.Zeros(len(t))
	minDt := m.MinDtIa.In(quantity.Gyr)
	tauDepSFH := m.ts.tauDepSFH
	exp := m.expSFH()

	for i, ti := range t {
		dt := ti - minDt
		if dt <= 0 {
			continue
		}
		if exp {
			out[i] = 1 - math.Exp(-dt/tauDepSFH) -
				tauDepIa/tauDepSFH*
					(math.Exp(-dt/tauIaSFH)-math.Exp(-dt/tauDepSFH))
		} else {
			out[i] = tauIaSFH / ti *
				(dt/tauIaSFH +
					tauDepIa/tauDepSFH*math.Exp(-dt/tauIaSFH) +
					(1+tauDepSFH/tauIaSFH-tauDepIa/tauDepSFH)*math.Exp(-dt/tauDepSFH) -
					(1 + tauDepSFH/tauIaSFH))
		}
	}
	return out
}

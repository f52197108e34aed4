package chem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/onezone/internal/quantity"
)

// Star-formation-history tags.
const (
	SFHExp    = "exp"
	SFHLinExp = "linexp"
)

// Params is the full user-settable parameter set of a one-zone model.
// Fields may be assigned freely between queries; no validation happens at
// assignment time, and invalid combinations surface as Inf/NaN in query
// results.
type Params struct {
	// Eta is the outflow mass-loading factor as a fraction of the SFR.
	Eta float64
	// TauSFE is the star-formation efficiency timescale.
	TauSFE quantity.Quantity
	// TauSFH is the star-formation-history decay timescale.
	TauSFH quantity.Quantity
	// TauIa is the SNe Ia exponential delay-time-distribution timescale.
	TauIa quantity.Quantity
	// MinDtIa is the minimum delay before any SNe Ia occur.
	MinDtIa quantity.Quantity
	// SFH selects the star-formation history: "exp" or "linexp".
	// Matching is case-insensitive; anything that is not "exp" takes the
	// linear-exponential branch.
	SFH string
	// MCCO and MCCFe are the oxygen and iron mass fractions returned by
	// core-collapse SNe per unit stellar mass formed.
	MCCO  float64
	MCCFe float64
	// MIaO and MIaFe are the same for SNe Ia.
	MIaO  float64
	MIaFe float64
	// R is the recycling fraction returned at birth abundances.
	R float64
	// TauIa2 is the delay timescale of an optional second Ia component.
	// The zero Quantity disables the component entirely.
	TauIa2 quantity.Quantity
	// FracIa2 is the fraction of Ia events in the second component.
	FracIa2 float64
	// SolarO and SolarFe are solar reference abundances on the
	// 12 + log10(X/H) number-density scale.
	SolarO  float64
	SolarFe float64
}

// Defaults returns the library-wide default parameter set. The returned
// value is a fresh copy; instances never alias shared state.
func Defaults() Params {
	return Params{
		Eta:     2.5,
		TauSFE:  quantity.New(1, quantity.Gyr),
		TauSFH:  quantity.New(6, quantity.Gyr),
		TauIa:   quantity.New(1.5, quantity.Gyr),
		MinDtIa: quantity.New(150, quantity.Myr),
		SFH:     SFHExp,
		MCCO:    0.015,
		MCCFe:   0.0012,
		MIaO:    0.0,
		MIaFe:   0.0017,
		R:       0.4,
		FracIa2: 0.522,
		SolarO:  8.69,
		SolarFe: 7.47,
	}
}

// SecondIa is the enabled state of the optional second Ia component.
type SecondIa struct {
	TauIa quantity.Quantity
	Frac  float64
}

// SecondIa reports whether the second Ia component is enabled and, if so,
// its timescale and event fraction.
func (p Params) SecondIa() (SecondIa, bool) {
	if p.TauIa2.IsZero() {
		return SecondIa{}, false
	}
	return SecondIa{TauIa: p.TauIa2, Frac: p.FracIa2}, true
}

func (p Params) expSFH() bool { return strings.EqualFold(p.SFH, SFHExp) }

// Validate checks the parts of the parameter set that queries never check
// themselves. It is an opt-in strictness layer: the query path deliberately
// keeps the historical fall-through of unknown SFH tags to the
// linear-exponential branch.
func (p Params) Validate() error {
	if !strings.EqualFold(p.SFH, SFHExp) && !strings.EqualFold(p.SFH, SFHLinExp) {
		return fmt.Errorf("%w: %q", ErrInvalidSFH, p.SFH)
	}
	return nil
}

// String lists all parameters sorted by name, one per line.
func (p Params) String() string {
	tau2 := "none"
	if sec, ok := p.SecondIa(); ok {
		tau2 = sec.TauIa.String()
	}
	entries := map[string]string{
		"eta":       fmt.Sprintf("%v", p.Eta),
		"tau_SFE":   p.TauSFE.String(),
		"tau_SFH":   p.TauSFH.String(),
		"tau_Ia":    p.TauIa.String(),
		"min_dt_Ia": p.MinDtIa.String(),
		"sfh":       p.SFH,
		"mCC_O":     fmt.Sprintf("%v", p.MCCO),
		"mCC_Fe":    fmt.Sprintf("%v", p.MCCFe),
		"mIa_O":     fmt.Sprintf("%v", p.MIaO),
		"mIa_Fe":    fmt.Sprintf("%v", p.MIaFe),
		"r":         fmt.Sprintf("%v", p.R),
		"tau_Ia_2":  tau2,
		"frac_Ia_2": fmt.Sprintf("%v", p.FracIa2),
		"solar_O":   fmt.Sprintf("%v", p.SolarO),
		"solar_Fe":  fmt.Sprintf("%v", p.SolarFe),
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-10s:\t%s", name, entries[name])
	}
	return b.String()
}

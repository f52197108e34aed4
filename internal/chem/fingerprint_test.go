package chem

import (
	"testing"

	"github.com/san-kum/onezone/internal/quantity"
)

func TestFingerprintDeterministic(t *testing.T) {
	a := physicalFingerprint(Defaults())
	b := physicalFingerprint(Defaults())
	if !a.equal(b) {
		t.Error("identical parameters must fingerprint identically")
	}
}

func TestFingerprintUnitInvariant(t *testing.T) {
	p := Defaults()
	q := Defaults()
	q.TauSFE = quantity.New(1000, quantity.Myr)
	q.TauSFH = quantity.New(6e9, quantity.Yr)
	q.MinDtIa = quantity.New(0.15, quantity.Gyr)

	if !physicalFingerprint(p).equal(physicalFingerprint(q)) {
		t.Error("equivalent quantities in different units must fingerprint identically")
	}
}

func TestFingerprintCoversPhysicalParams(t *testing.T) {
	base := physicalFingerprint(Defaults())

	mutations := []struct {
		name   string
		mutate func(*Params)
	}{
		{"eta", func(p *Params) { p.Eta = 2.6 }},
		{"tau_SFE", func(p *Params) { p.TauSFE = quantity.New(2, quantity.Gyr) }},
		{"tau_SFH", func(p *Params) { p.TauSFH = quantity.New(5, quantity.Gyr) }},
		{"tau_Ia", func(p *Params) { p.TauIa = quantity.New(1, quantity.Gyr) }},
		{"min_dt_Ia", func(p *Params) { p.MinDtIa = quantity.New(100, quantity.Myr) }},
		{"mCC_O", func(p *Params) { p.MCCO = 0.016 }},
		{"mCC_Fe", func(p *Params) { p.MCCFe = 0.0013 }},
		{"mIa_O", func(p *Params) { p.MIaO = 0.001 }},
		{"mIa_Fe", func(p *Params) { p.MIaFe = 0.0018 }},
		{"r", func(p *Params) { p.R = 0.3 }},
		{"tau_Ia_2", func(p *Params) { p.TauIa2 = quantity.New(5, quantity.Gyr) }},
	}

	for _, tt := range mutations {
		p := Defaults()
		tt.mutate(&p)
		if physicalFingerprint(p).equal(base) {
			t.Errorf("changing %s did not change the physical fingerprint", tt.name)
		}
	}
}

func TestFingerprintIgnoresSolarAndSFH(t *testing.T) {
	base := physicalFingerprint(Defaults())

	p := Defaults()
	p.SolarO = 8.8
	p.SolarFe = 7.3
	p.SFH = SFHLinExp
	if !physicalFingerprint(p).equal(base) {
		t.Error("solar references and the SFH tag must not affect the physical fingerprint")
	}

	if solarFingerprint(p).equal(solarFingerprint(Defaults())) {
		t.Error("solar fingerprint must cover the solar references")
	}
}

func TestFingerprintFracIa2CoveredWhileDisabled(t *testing.T) {
	// frac_Ia_2 is hashed even with the component disabled, matching the
	// fixed-list contract.
	p := Defaults()
	p.FracIa2 = 0.3
	if physicalFingerprint(p).equal(physicalFingerprint(Defaults())) {
		t.Error("frac_Ia_2 change not detected")
	}
}

func TestFingerprintSentinel(t *testing.T) {
	var unset fingerprint
	if unset.equal(unset) {
		t.Error("the unset sentinel must compare unequal to everything")
	}
	if unset.equal(physicalFingerprint(Defaults())) {
		t.Error("the unset sentinel must not match a real fingerprint")
	}
}

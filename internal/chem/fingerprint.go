package chem

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/san-kum/onezone/internal/quantity"
)

// fingerprint identifies a parameter configuration. The zero value is the
// "never computed" sentinel and compares unequal to everything, including
// itself, so the first query always recomputes.
type fingerprint struct {
	sum   uint64
	valid bool
}

func (f fingerprint) equal(o fingerprint) bool {
	return f.valid && o.valid && f.sum == o.sum
}

func hashFloats(values []float64) fingerprint {
	h := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
		_, _ = h.Write([]byte{0})
	}
	return fingerprint{sum: h.Sum64(), valid: true}
}

// physicalFingerprint covers every parameter the timescale/equilibrium
// cascade depends on. Times are converted to Gyr first so equivalent
// quantities in different units fingerprint identically. The SFH tag is not
// covered: it only selects an evolution branch at query time and derives
// nothing.
func physicalFingerprint(p Params) fingerprint {
	tauIa2 := 0.0
	if sec, ok := p.SecondIa(); ok {
		tauIa2 = sec.TauIa.In(quantity.Gyr)
	}
	return hashFloats([]float64{
		p.Eta,
		p.TauSFE.In(quantity.Gyr),
		p.TauSFH.In(quantity.Gyr),
		p.TauIa.In(quantity.Gyr),
		p.MinDtIa.In(quantity.Gyr),
		p.MCCO,
		p.MCCFe,
		p.MIaO,
		p.MIaFe,
		p.R,
		tauIa2,
		p.FracIa2,
	})
}

func solarFingerprint(p Params) fingerprint {
	return hashFloats([]float64{p.SolarO, p.SolarFe})
}

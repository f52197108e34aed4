// Package chem implements a closed-form one-zone galactic chemical-evolution
// model following the analytical formalism of Weinberg, Andrews & Freudenburg
// (2017): a leaky-box gas reservoir with instantaneous mixing, prompt
// core-collapse enrichment, and exponentially delayed Type-Ia enrichment
// (optionally a two-timescale Ia mixture approximating a power-law delay-time
// distribution).
//
// # The model
//
// A [OneZone] holds a mutable [Params] set and exposes abundance tracks
// ([OneZone.OH], [OneZone.FeH], [OneZone.OFe]), their time derivatives, and
// the implied abundance distribution functions. Derived state (effective
// timescales, equilibrium abundances, solar offsets) is recomputed lazily:
// every query fingerprints the current parameters and reruns the derivation
// cascade only when a covered parameter actually changed.
//
//	m := chem.New(chem.Defaults())
//	feh := m.FeH(series.Linspace(0.1, 12, 100)) // times in Gyr
//	m.Eta = 1.0                                  // mutate freely between queries
//	feh2 := m.FeH(series.Linspace(0.1, 12, 100)) // recomputes once, then caches
//
// # Degenerate configurations
//
// Parameter combinations that make the formulas singular (1+eta-r <= 0,
// tau_SFH == tau_Ia, the linear-exponential history at t=0) are not validated
// eagerly; they surface as Inf/NaN in the returned values. The opt-in
// [Params.Validate] rejects malformed star-formation-history tags.
//
// # Thread safety
//
// OneZone instances are not safe for concurrent use. The fingerprint/derived
// state pair is unprotected; use one instance per goroutine.
package chem

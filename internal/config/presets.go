package config

import "sort"

// Preset pairs a named parameter variation with a short description for
// listings.
type Preset struct {
	Description string
	Apply       func(*Config)
}

var Presets = map[string]Preset{
	"fiducial": {
		Description: "default leaky-box model, exponential SFH",
		Apply:       func(*Config) {},
	},
	"powerlaw-ia": {
		Description: "two-component Ia mixture approximating a t^-1.1 delay distribution",
		Apply: func(c *Config) {
			c.TauIa = 0.5
			c.TauIa2 = 5.0
			c.FracIa2 = 0.522
		},
	},
	"linexp": {
		Description: "linear-exponential star-formation history",
		Apply: func(c *Config) {
			c.SFH = "linexp"
		},
	},
	"closed-box": {
		Description: "no outflow (eta = 0)",
		Apply: func(c *Config) {
			c.Eta = 0
		},
	},
}

// GetPreset returns the named preset applied on top of the defaults, or nil
// if the name is unknown.
func GetPreset(name string) *Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	preset.Apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

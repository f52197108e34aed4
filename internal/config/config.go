package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/onezone/internal/chem"
	"github.com/san-kum/onezone/internal/quantity"
)

// Config is the on-disk description of a model run: the full parameter set
// (timescales in Gyr) plus the evaluation grid. Missing fields keep their
// defaults when loading.
type Config struct {
	Eta     float64 `yaml:"eta"`
	TauSFE  float64 `yaml:"tau_sfe_gyr"`
	TauSFH  float64 `yaml:"tau_sfh_gyr"`
	TauIa   float64 `yaml:"tau_ia_gyr"`
	MinDtIa float64 `yaml:"min_dt_ia_gyr"`
	SFH     string  `yaml:"sfh"`
	MCCO    float64 `yaml:"mcc_o"`
	MCCFe   float64 `yaml:"mcc_fe"`
	MIaO    float64 `yaml:"mia_o"`
	MIaFe   float64 `yaml:"mia_fe"`
	R       float64 `yaml:"r"`
	// TauIa2 of zero disables the second Ia component.
	TauIa2  float64 `yaml:"tau_ia_2_gyr"`
	FracIa2 float64 `yaml:"frac_ia_2"`
	SolarO  float64 `yaml:"solar_o"`
	SolarFe float64 `yaml:"solar_fe"`

	Grid GridConfig `yaml:"grid"`
}

// GridConfig is the time grid the CLI evaluates tracks on, in Gyr.
type GridConfig struct {
	Start  float64 `yaml:"start_gyr"`
	End    float64 `yaml:"end_gyr"`
	Points int     `yaml:"points"`
}

func DefaultConfig() *Config {
	p := chem.Defaults()
	return &Config{
		Eta:     p.Eta,
		TauSFE:  p.TauSFE.In(quantity.Gyr),
		TauSFH:  p.TauSFH.In(quantity.Gyr),
		TauIa:   p.TauIa.In(quantity.Gyr),
		MinDtIa: p.MinDtIa.In(quantity.Gyr),
		SFH:     p.SFH,
		MCCO:    p.MCCO,
		MCCFe:   p.MCCFe,
		MIaO:    p.MIaO,
		MIaFe:   p.MIaFe,
		R:       p.R,
		FracIa2: p.FracIa2,
		SolarO:  p.SolarO,
		SolarFe: p.SolarFe,
		Grid:    GridConfig{Start: 0.05, End: 12.5, Points: 250},
	}
}

// Params converts the config to a validated model parameter set.
func (c *Config) Params() (chem.Params, error) {
	p := chem.Params{
		Eta:     c.Eta,
		TauSFE:  quantity.New(c.TauSFE, quantity.Gyr),
		TauSFH:  quantity.New(c.TauSFH, quantity.Gyr),
		TauIa:   quantity.New(c.TauIa, quantity.Gyr),
		MinDtIa: quantity.New(c.MinDtIa, quantity.Gyr),
		SFH:     c.SFH,
		MCCO:    c.MCCO,
		MCCFe:   c.MCCFe,
		MIaO:    c.MIaO,
		MIaFe:   c.MIaFe,
		R:       c.R,
		TauIa2:  quantity.New(c.TauIa2, quantity.Gyr),
		FracIa2: c.FracIa2,
		SolarO:  c.SolarO,
		SolarFe: c.SolarFe,
	}
	if err := p.Validate(); err != nil {
		return chem.Params{}, err
	}
	return p, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

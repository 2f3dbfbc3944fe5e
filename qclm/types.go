/*
Package qclm implements the QCLM/MSDM multi-site-directed mutagenesis
engine: given a template sequence and a set of mutation sites, it groups
adjacent sites into site sequences, designs a degenerate-codon primer pair
covering each site sequence, scores every split of sites into site
sequences, and returns the best-scoring split.
*/
package qclm

import (
	"github.com/bebop/mutmaker/degeneracy"
	"github.com/bebop/mutmaker/thermo"
)

// Config bounds and weights the primer search, degeneracy search and
// scoring.
type Config struct {
	TargetTemp    float64
	HalfTempRange float64

	MinPrimerSize   int
	MaxPrimerSize   int
	MinThreeEndSize int

	MinGCContent float64
	MaxGCContent float64

	TemperatureWeight            float64
	GCContentWeight              float64
	LengthWeight                 float64
	ThreeEndSizeWeight           float64
	HairpinTemperatureWeight     float64
	PrimerDimerTemperatureWeight float64
	UsePrimer3                   bool

	NonOverlappingPrimers bool
	FrequencyThreshold    float64
	MaxSplitGroupSize     int

	Degeneracy        degeneracy.Config
	TemperatureConfig thermo.Config
}

// WithDefaults fills zero-valued fields with reasonable QCLM defaults.
func (c Config) WithDefaults() Config {
	if c.TargetTemp == 0 {
		c.TargetTemp = 78
	}
	if c.HalfTempRange == 0 {
		c.HalfTempRange = 2
	}
	if c.MinPrimerSize == 0 {
		c.MinPrimerSize = 25
	}
	if c.MaxPrimerSize == 0 {
		c.MaxPrimerSize = 45
	}
	if c.MinThreeEndSize == 0 {
		c.MinThreeEndSize = 10
	}
	if c.MaxGCContent == 0 {
		c.MaxGCContent = 80
	}
	if c.TemperatureWeight == 0 {
		c.TemperatureWeight = 1
	}
	if c.GCContentWeight == 0 {
		c.GCContentWeight = 1
	}
	if c.LengthWeight == 0 {
		c.LengthWeight = 0.1
	}
	if c.ThreeEndSizeWeight == 0 {
		c.ThreeEndSizeWeight = 0.1
	}
	if c.HairpinTemperatureWeight == 0 {
		c.HairpinTemperatureWeight = 1
	}
	if c.PrimerDimerTemperatureWeight == 0 {
		c.PrimerDimerTemperatureWeight = 1
	}
	if c.MaxSplitGroupSize == 0 {
		c.MaxSplitGroupSize = 3
	}
	return c
}

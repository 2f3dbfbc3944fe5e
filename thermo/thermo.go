/*
Package thermo evaluates duplex, hairpin, homodimer and heterodimer melting
temperatures for short DNA sequences, in the nearest-neighbor, GC-empirical,
Wallace and NEB-like flavors used across the SSM, QCLM and PAS design
engines.

Every evaluation is memoized: a Calculator is expected to be called many
thousands of times over the same handful of candidate primer sequences
while an engine searches, so results are rounded to a fixed precision and
cached by a compact hash of their input rather than recomputed or keyed by
the raw (potentially long) sequence string.
*/
package thermo

import (
	"fmt"
	"math"
	"strings"
)

// CalculationType selects which melting-temperature model a Calculator
// uses for DuplexTm.
type CalculationType string

// The four calculation types carried over from the original tool.
const (
	Wallace CalculationType = "wallace"
	GC      CalculationType = "gc"
	NN      CalculationType = "nn"
	NEBLike CalculationType = "neb_like"
)

// Config holds the reaction conditions a Calculator evaluates melting
// temperatures under.
type Config struct {
	CalculationType        CalculationType `json:"calculation_type"`
	PrimerConcentration    float64         `json:"primer_concentration"`    // molar
	SaltConcentration      float64         `json:"salt_concentration"`      // molar, monovalent cation (Na+/K+)
	MagnesiumConcentration float64         `json:"magnesium_concentration"` // molar
	DNTPConcentration      float64         `json:"dntp_concentration"`      // molar
	MinArmLength           int             `json:"min_arm_length"`          // shortest self/cross-complementary run counted as a structure
	RoundPrecision          int            `json:"round_precision"`
}

// WithDefaults fills in zero-valued fields with the defaults the original
// tool ships (500nM primer, 50mM monovalent salt, no Mg2+/dNTP correction,
// nearest-neighbor calculation, 7-base minimum hairpin/dimer arm, 2 decimal
// places of cached precision).
func (c Config) WithDefaults() Config {
	if c.CalculationType == "" {
		c.CalculationType = NN
	}
	if c.PrimerConcentration == 0 {
		c.PrimerConcentration = 500e-9
	}
	if c.SaltConcentration == 0 {
		c.SaltConcentration = 50e-3
	}
	if c.MinArmLength == 0 {
		c.MinArmLength = 7
	}
	if c.RoundPrecision == 0 {
		c.RoundPrecision = 2
	}
	return c
}

// Calculator evaluates melting temperatures for a fixed set of reaction
// conditions, caching every result it computes.
type Calculator struct {
	config Config
	cache  *cache
}

// NewCalculator builds a Calculator for the given (defaulted) config.
func NewCalculator(config Config) *Calculator {
	return &Calculator{config: config.WithDefaults(), cache: newCache()}
}

// DuplexTm returns the melting temperature of seq annealed to its perfect
// complement, dispatching to the configured calculation model.
func (c *Calculator) DuplexTm(seq string) (float64, error) {
	if seq == "" {
		return 0, fmt.Errorf("thermo: sequence must not be empty")
	}
	return c.cache.singleton(seq, func() float64 {
		return c.round(c.duplexTm(strings.ToUpper(seq)))
	}), nil
}

func (c *Calculator) duplexTm(seq string) float64 {
	switch c.config.CalculationType {
	case Wallace:
		return wallaceTm(seq)
	case GC:
		return gcTm(seq, c.config.SaltConcentration)
	case NEBLike:
		Tm, _, _ := santaLucia(seq, c.config.PrimerConcentration, c.config.SaltConcentration, c.config.MagnesiumConcentration)
		return nebLikeOffset(Tm)
	default: // NN
		Tm, _, _ := santaLucia(seq, c.config.PrimerConcentration, c.config.SaltConcentration, c.config.MagnesiumConcentration)
		return Tm
	}
}

func (c *Calculator) round(tm float64) float64 {
	scale := math.Pow(10, float64(c.config.RoundPrecision))
	return math.Round(tm*scale) / scale
}

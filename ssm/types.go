/*
Package ssm implements the site-saturation mutagenesis engine: given a
template sequence and a set of codon positions to saturate, it designs one
overlapping forward/reverse primer pair per site. The site lies inside the
pair's shared overlap, and each primer is grown outward from the overlap
until the stretch between the site and its 3' end clears that direction's
melting-temperature threshold. Primers are returned as offsets and
lengths into the template; no codon is substituted into them.
*/
package ssm

import "github.com/bebop/mutmaker/thermo"

// Site is a single codon position to saturate.
type Site struct {
	Position int
	Length   int // always 3 for a codon, kept explicit to mirror the original's generality
}

// Config bounds and weights the primer search and scoring.
type Config struct {
	MinFiveEndSize  int
	MinThreeEndSize int
	MinOverlapSize  int
	MaxOverlapSize  int
	MaxPrimerSize   int
	MinPrimerSize   int

	OverlapTemp          float64
	HalfTempRange        float64
	ThreeEndTempRange    float64
	ForwardTempThreshold float64
	ReverseTempThreshold float64

	MinGCContent float64
	MaxGCContent float64

	ThreeEndTempWeight           float64
	OverlapTempWeight            float64
	ThreeEndSizeWeight           float64
	GCContentWeight              float64
	HairpinTemperatureWeight     float64
	PrimerDimerTemperatureWeight float64
	ComputeHairpinHomodimer      bool

	TemperatureConfig thermo.Config
}

// WithDefaults fills zero-valued fields with the original tool's defaults.
func (c Config) WithDefaults() Config {
	if c.MinFiveEndSize == 0 {
		c.MinFiveEndSize = 4
	}
	if c.MinThreeEndSize == 0 {
		c.MinThreeEndSize = 6
	}
	if c.MinOverlapSize == 0 {
		c.MinOverlapSize = 15
	}
	if c.MaxOverlapSize == 0 {
		c.MaxOverlapSize = 35
	}
	if c.MaxPrimerSize == 0 {
		c.MaxPrimerSize = 60
	}
	if c.MinPrimerSize == 0 {
		c.MinPrimerSize = 25
	}
	if c.OverlapTemp == 0 {
		c.OverlapTemp = 65
	}
	if c.HalfTempRange == 0 {
		c.HalfTempRange = 2.5
	}
	if c.ThreeEndTempRange == 0 {
		c.ThreeEndTempRange = 5
	}
	if c.ForwardTempThreshold == 0 {
		c.ForwardTempThreshold = 50
	}
	if c.ReverseTempThreshold == 0 {
		c.ReverseTempThreshold = 50
	}
	if c.MaxGCContent == 0 {
		c.MaxGCContent = 65
	}
	if c.ThreeEndTempWeight == 0 {
		c.ThreeEndTempWeight = 1
	}
	if c.OverlapTempWeight == 0 {
		c.OverlapTempWeight = 1
	}
	if c.ThreeEndSizeWeight == 0 {
		c.ThreeEndSizeWeight = 0.1
	}
	if c.GCContentWeight == 0 {
		c.GCContentWeight = 1
	}
	if c.HairpinTemperatureWeight == 0 {
		c.HairpinTemperatureWeight = 1
	}
	if c.PrimerDimerTemperatureWeight == 0 {
		c.PrimerDimerTemperatureWeight = 1
	}
	return c
}

// PrimerSpec is an offset/length/3'-end-size/3'-end-temp tuple describing
// one candidate primer or overlap.
type PrimerSpec struct {
	Offset        int
	Length        int
	ThreeEndSize  int
	ThreeEndTemp  float64
}

// FlankingSequences are the neighboring fragment's terminal primers, used
// to score heterodimer formation across a fragment boundary. Either may
// be empty when the site sits at the end of the design.
type FlankingSequences struct {
	ForwardFlank string
	ReverseFlank string
}

// GrownSolution is one fully grown forward/reverse primer pair (plus the
// shared overlap) for every requested site.
type GrownSolution struct {
	Overlaps   []PrimerSpec
	FwPrimers  []PrimerSpec
	RwPrimers  []PrimerSpec
	FwTemp     float64
	RwTemp     float64
	OverlapTemp float64
}

// Request is a full SSM design request.
type Request struct {
	Sequence string
	Sites    []Site
	Config   Config
	Flanks   FlankingSequences
}

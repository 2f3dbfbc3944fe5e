/*
Package pas implements the PCR-based accurate gene synthesis fragmenter:
given a full gene sequence and the codon positions that must stay intact
(mutation sites reserved for a later assembly step; with no mutation
sites, fragment ends are not tied to codon boundaries), it splits the gene into a chain
of overlapping fragments suitable for synthesis as annealed, PCR-extended
oligo pairs, picking fragment lengths and overlap positions via a bounded
backtracking search.
*/
package pas

import (
	"time"

	"github.com/bebop/mutmaker/sitesplit"
	"github.com/bebop/mutmaker/thermo"
)

// Config bounds and weights the fragment search.
type Config struct {
	MinOligoSize int
	MaxOligoSize int
	OptOligoSize int

	MinOverlapLength int
	MaxOverlapLength int
	OptOverlapLength int

	MinOverlapTemp float64
	MaxOverlapTemp float64
	OptOverlapTemp float64

	// TempRangeSize bounds how far above the swept threshold T (see
	// TempThresholdStep) an overlap's melting temperature may sit: for a
	// given T, Run only accepts overlaps with Tm in [T, T+TempRangeSize].
	TempRangeSize float64
	// TempThresholdStep is the increment Run sweeps T by, from
	// MinOverlapTemp up to MaxOverlapTemp, keeping the minimum-score
	// complete solution across the whole sweep.
	TempThresholdStep float64

	MinGCContent float64
	MaxGCContent float64

	LengthWeight            float64
	HairpinHomodimerWeight  float64
	SafeTempDifference      float64
	ComputeHairpinHomodimer bool

	// FrequencyThreshold filters which synonymous codons Phase 4's oligo
	// mixture may draw from, same meaning as qclm.Config's field of the
	// same name.
	FrequencyThreshold float64
	// AvoidedMotifs are IUPAC-degenerate sequence motifs, checked on both
	// strands, that no synthesized oligo may contain.
	AvoidedMotifs []string
	// MixtureRetries bounds how many times Phase 4 redraws an oligo
	// combination that matched an avoided motif before giving up on that
	// fragment.
	MixtureRetries int

	TemperatureConfig thermo.Config
	Budget            time.Duration
}

// WithDefaults fills zero-valued fields with the original tool's defaults.
func (c Config) WithDefaults() Config {
	if c.MinOligoSize == 0 {
		c.MinOligoSize = 40
	}
	if c.MaxOligoSize == 0 {
		c.MaxOligoSize = 90
	}
	if c.OptOligoSize == 0 {
		c.OptOligoSize = 56
	}
	if c.MinOverlapLength == 0 {
		c.MinOverlapLength = 15
	}
	if c.MaxOverlapLength == 0 {
		c.MaxOverlapLength = 25
	}
	if c.OptOverlapLength == 0 {
		c.OptOverlapLength = 21
	}
	if c.MinOverlapTemp == 0 {
		c.MinOverlapTemp = 50
	}
	if c.MaxOverlapTemp == 0 {
		c.MaxOverlapTemp = 65
	}
	if c.OptOverlapTemp == 0 {
		c.OptOverlapTemp = 56
	}
	if c.TempRangeSize == 0 {
		c.TempRangeSize = 5
	}
	if c.TempThresholdStep == 0 {
		c.TempThresholdStep = 1
	}
	if c.MixtureRetries == 0 {
		c.MixtureRetries = 250
	}
	if c.MaxGCContent == 0 {
		c.MaxGCContent = 60
	}
	if c.MinGCContent == 0 {
		c.MinGCContent = 40
	}
	if c.LengthWeight == 0 {
		c.LengthWeight = 1
	}
	if c.HairpinHomodimerWeight == 0 {
		c.HairpinHomodimerWeight = 2
	}
	if c.SafeTempDifference == 0 {
		c.SafeTempDifference = 10
	}
	if c.Budget == 0 {
		c.Budget = 5 * time.Second
	}
	return c
}

// Fragment is one segment of the chain covering the gene, together with
// the overlap it shares with the next fragment (empty for the last
// fragment in the chain).
type Fragment struct {
	Start int // inclusive, 0-based offset into the gene
	End   int // exclusive

	Overlap     string
	OverlapTemp float64

	// Oligos is this fragment's synthesized mixture: one entry per
	// distinct combination of mutated-site codons, reverse-complemented
	// together with the rest of the fragment when ReverseComplemented is
	// set. Populated by Run's Phase 4 mixture step.
	Oligos              []Oligo
	ReverseComplemented bool
}

// Sequence returns the fragment's own bases (not including what only the
// next fragment's overlap contributes). If f.ReverseComplemented is set,
// callers that want the strand actually synthesized should use Oligos
// instead: Sequence always returns the forward-strand slice of gene.
func (f Fragment) Sequence(gene string) string {
	return gene[f.Start:f.End]
}

// Oligo is one concrete sequence in a fragment's synthesis mixture,
// together with the molar fraction it contributes to that mixture. A
// fragment's Oligos sum to a MixRatio of 1.
type Oligo struct {
	Sequence string
	MixRatio float64
}

// MutationRequest is a single requested substitution together with the
// fraction of the final oligo mixture it should occupy at its codon;
// the remaining fraction at that codon goes to the wild-type residue.
type MutationRequest struct {
	sitesplit.AminoMutation
	Frequency float64
}

// Solution is a complete chain of fragments covering a gene end to end.
type Solution struct {
	Fragments []Fragment
	Score     float64
}

package reversetranslate

import (
	"math/rand"
	"regexp"
	"time"

	"github.com/bebop/mutmaker/checks"
	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/engine"
)

// Translator draws randomized coding sequences for a fixed codon usage
// table and avoided-motif set.
type Translator struct {
	table  *codonusage.Table
	motifs *regexp.Regexp
	config Config
}

// NewTranslator compiles cfg.AvoidedMotifs (checked on both strands) and
// returns a Translator bound to table.
func NewTranslator(table *codonusage.Table, cfg Config) (*Translator, error) {
	cfg = cfg.WithDefaults()
	motifs, err := checks.PatternsToRegexp(cfg.AvoidedMotifs, true)
	if err != nil {
		return nil, engine.Wrap(engine.Validation, err)
	}
	return &Translator{table: table, motifs: motifs, config: cfg}, nil
}

// generateDNA draws one frequency-weighted codon per residue of amino.
func (t *Translator) generateDNA(rng *rand.Rand, amino string) (string, error) {
	dna := make([]byte, 0, len(amino)*3)
	for _, residue := range amino {
		codon, err := t.table.ChooseWeightedCodon(rng, string(residue), t.config.FrequencyThreshold)
		if err != nil {
			return "", err
		}
		dna = append(dna, codon...)
	}
	return string(dna), nil
}

// Translate repeatedly draws a randomized coding sequence for amino,
// keeping the best-scoring draw that satisfies the GC window and avoided
// motifs, until N consecutive draws fail to improve on the best score by
// at least Epsilon, or the wall-clock budget is exhausted.
func (t *Translator) Translate(rng *rand.Rand, amino string) (string, error) {
	if amino == "" {
		return "", nil
	}

	deadline := time.Now().Add(t.config.Budget)
	bestScore := -1.0
	bestDNA := ""
	sinceImprovement := 0

	for {
		if time.Now().After(deadline) {
			break
		}

		dna, err := t.generateDNA(rng, amino)
		if err != nil {
			return "", err
		}

		if gcErr(dna, t.config.MinGCContent, t.config.MaxGCContent) > 0 {
			continue
		}
		if t.motifs != nil && t.motifs.MatchString(dna) {
			continue
		}

		score, err := caiScore(dna, t.table)
		if err != nil {
			return "", err
		}

		if score > bestScore+t.config.Epsilon {
			bestScore, bestDNA = score, dna
			sinceImprovement = 0
		} else {
			sinceImprovement++
		}

		if bestDNA != "" && sinceImprovement >= t.config.N {
			break
		}
	}

	if bestDNA == "" {
		return "", engine.Wrapf(engine.Exhausted, "reversetranslate: could not find a reverse translation satisfying the configured GC window and avoided motifs within the time budget")
	}
	return bestDNA, nil
}

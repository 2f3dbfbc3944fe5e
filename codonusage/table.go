/*
Package codonusage holds per-organism codon usage tables: for each amino
acid, the synonymous codons that encode it and their relative usage
frequency. It never reads a codon-usage reference file itself - callers
decode one however they like (embedded JSON, a call to an external
service, a hand-built table in a test) and hand codonusage.NewTable an
already-parsed map.
*/
package codonusage

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	weightedrand "github.com/mroth/weightedrand"
)

// Triplet is a single concrete codon together with its relative usage
// frequency within its amino acid's synonymous codon set.
type Triplet struct {
	Codon     string
	Frequency float64
}

// Table is a shared-by-reference codon usage table for one organism. Its
// codon data does not change after NewTable returns; the weighted choosers
// ChooseWeightedCodon builds are cached in it under a mutex, so it is safe
// for concurrent use.
type Table struct {
	aminoToCodons    map[string][]Triplet
	codonToAmino     map[string]string
	codonToFrequency map[string]float64

	mu       sync.Mutex
	choosers map[string]weightedrand.Chooser
}

// NewTable builds a Table from a map of amino-acid letter to its weighted
// synonymous codons.
func NewTable(aminoToCodons map[string][]Triplet) (*Table, error) {
	if len(aminoToCodons) == 0 {
		return nil, fmt.Errorf("codonusage: amino-to-codon table must not be empty")
	}
	codonToAmino := make(map[string]string)
	codonToFrequency := make(map[string]float64)
	for amino, triplets := range aminoToCodons {
		if len(triplets) == 0 {
			return nil, fmt.Errorf("codonusage: amino acid %q has no codons", amino)
		}
		for _, t := range triplets {
			if len(t.Codon) != 3 {
				return nil, fmt.Errorf("codonusage: codon %q for amino acid %q is not a triplet", t.Codon, amino)
			}
			codonToAmino[t.Codon] = amino
			codonToFrequency[t.Codon] = t.Frequency
		}
	}
	return &Table{
		aminoToCodons:    aminoToCodons,
		codonToAmino:     codonToAmino,
		codonToFrequency: codonToFrequency,
		choosers:         make(map[string]weightedrand.Chooser),
	}, nil
}

// AminoFor returns the amino acid a concrete codon translates to under
// this table, and false if the codon is unknown (e.g. a stop codon, which
// this table does not carry an entry for).
func (t *Table) AminoFor(codon string) (string, bool) {
	amino, ok := t.codonToAmino[codon]
	return amino, ok
}

// FrequencyOf returns the relative usage frequency of a concrete codon,
// and false if the codon is unknown to this table.
func (t *Table) FrequencyOf(codon string) (float64, bool) {
	freq, ok := t.codonToFrequency[codon]
	return freq, ok
}

// TripletsForAmino returns amino's synonymous codons whose frequency is at
// least frequencyThreshold, sorted by descending frequency.
func (t *Table) TripletsForAmino(amino string, frequencyThreshold float64) ([]Triplet, error) {
	all, ok := t.aminoToCodons[amino]
	if !ok {
		return nil, fmt.Errorf("codonusage: unknown amino acid %q", amino)
	}
	filtered := make([]Triplet, 0, len(all))
	for _, t := range all {
		if t.Frequency >= frequencyThreshold {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("codonusage: no codons for amino acid %q survive frequency threshold %v", amino, frequencyThreshold)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Frequency > filtered[j].Frequency })
	return filtered, nil
}

// TripletsForAminos returns the flat union, across every amino acid in
// aminos, of its codons surviving frequencyThreshold.
func (t *Table) TripletsForAminos(aminos []string, frequencyThreshold float64) ([]Triplet, error) {
	var out []Triplet
	for _, amino := range aminos {
		triplets, err := t.TripletsForAmino(amino, frequencyThreshold)
		if err != nil {
			return nil, err
		}
		out = append(out, triplets...)
	}
	return out, nil
}

// ChooseWeightedCodon draws a random codon for amino, weighted by usage
// frequency among codons surviving frequencyThreshold. rng must not be
// nil: callers own their random source so no engine carries hidden
// package-level RNG state.
func (t *Table) ChooseWeightedCodon(rng *rand.Rand, amino string, frequencyThreshold float64) (string, error) {
	triplets, err := t.TripletsForAmino(amino, frequencyThreshold)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s|%v", amino, frequencyThreshold)
	t.mu.Lock()
	chooser, ok := t.choosers[key]
	if !ok {
		choices := make([]weightedrand.Choice, len(triplets))
		for i, triplet := range triplets {
			weight := int(triplet.Frequency * 1e6)
			if weight < 1 {
				weight = 1
			}
			choices[i] = weightedrand.Choice{Item: triplet.Codon, Weight: weight}
		}
		var buildErr error
		chooser, buildErr = weightedrand.NewChooser(choices...)
		if buildErr != nil {
			t.mu.Unlock()
			return "", fmt.Errorf("codonusage: building chooser for %q: %w", amino, buildErr)
		}
		t.choosers[key] = chooser
	}
	t.mu.Unlock()

	return chooser.PickSource(rng).(string), nil
}

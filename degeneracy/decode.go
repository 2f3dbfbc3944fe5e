/*
Package degeneracy implements the degenerate-codon algebra's set-cover
engine: given a set of amino acids a mutation site must be able to
produce, find a small set of degenerate codons (IUPAC triplets) whose
concrete expansions together decode to exactly that amino acid set, using
as few distinct degenerate codons as possible and preferring common
codons within each one.
*/
package degeneracy

import (
	"sort"

	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/sequence"
)

// Decode expands a (possibly degenerate) codon to the sorted, deduplicated
// set of amino acids its concrete triplets translate to under table.
// Concrete triplets that are stop codons or otherwise unknown to table are
// silently skipped, matching the original tool's forgiving translation.
func Decode(codon string, table *codonusage.Table) ([]string, error) {
	concrete, err := sequence.ExpandCodon(codon)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var aminos []string
	for _, triplet := range concrete {
		amino, ok := table.AminoFor(triplet)
		if !ok {
			continue
		}
		if !seen[amino] {
			seen[amino] = true
			aminos = append(aminos, amino)
		}
	}
	sort.Strings(aminos)
	return aminos, nil
}

// frequencyProduct computes the product of table frequencies over every
// concrete codon a degenerate codon expands to - the tie-break score used
// to prefer the "most natural" of several equally-minimal degenerate
// unions.
func frequencyProduct(codon string, table *codonusage.Table) (float64, error) {
	concrete, err := sequence.ExpandCodon(codon)
	if err != nil {
		return 0, err
	}
	product := 1.0
	for _, triplet := range concrete {
		freq, ok := table.FrequencyOf(triplet)
		if !ok {
			freq = 0
		}
		product *= freq
	}
	return product, nil
}

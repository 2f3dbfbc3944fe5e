package main

import "github.com/bebop/mutmaker/codonusage"

// codonTriplet is the JSON shape for one entry of a codon usage table
// supplied on the command line: a codon and its relative frequency among
// synonymous codons for the same amino acid.
type codonTriplet struct {
	Codon     string  `json:"codon"`
	Frequency float64 `json:"frequency"`
}

func buildCodonTable(usage map[string][]codonTriplet) (*codonusage.Table, error) {
	aminoToCodons := make(map[string][]codonusage.Triplet, len(usage))
	for amino, triplets := range usage {
		converted := make([]codonusage.Triplet, 0, len(triplets))
		for _, t := range triplets {
			converted = append(converted, codonusage.Triplet{Codon: t.Codon, Frequency: t.Frequency})
		}
		aminoToCodons[amino] = converted
	}
	return codonusage.NewTable(aminoToCodons)
}

package reversetranslate

import (
	"math"

	"github.com/bebop/mutmaker/checks"
	"github.com/bebop/mutmaker/codonusage"
)

// caiScore is the geometric mean, across every codon in dna, of that
// codon's frequency relative to the most frequent synonymous codon for
// the same amino acid: 1.0 for a sequence built entirely from the most
// common codon per residue, trending toward 0 the more rare codons it
// uses.
func caiScore(dna string, table *codonusage.Table) (float64, error) {
	maxFrequency := make(map[string]float64)
	logSum := 0.0
	count := 0

	for i := 0; i+3 <= len(dna); i += 3 {
		codon := dna[i : i+3]
		amino, ok := table.AminoFor(codon)
		if !ok {
			continue
		}
		max, ok := maxFrequency[amino]
		if !ok {
			triplets, err := table.TripletsForAmino(amino, 0)
			if err != nil {
				return 0, err
			}
			for _, t := range triplets {
				if t.Frequency > max {
					max = t.Frequency
				}
			}
			maxFrequency[amino] = max
		}
		freq, ok := table.FrequencyOf(codon)
		if !ok || max == 0 {
			continue
		}
		logSum += math.Log(freq / max)
		count++
	}

	if count == 0 {
		return 0, nil
	}
	return math.Exp(logSum / float64(count)), nil
}

// gcErr is 0 when dna's GC content falls within [minGC, maxGC], and the
// fractional distance beyond the nearest boundary otherwise.
func gcErr(dna string, minGC, maxGC float64) float64 {
	gc := checks.GcContent(dna)
	if gc < minGC {
		return minGC - gc
	}
	if gc > maxGC {
		return gc - maxGC
	}
	return 0
}

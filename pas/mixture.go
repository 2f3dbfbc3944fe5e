package pas

import (
	"math/rand"
	"regexp"
	"sort"

	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/engine"
	"github.com/bebop/mutmaker/sitesplit"
	"github.com/bebop/mutmaker/transform"
)

// siteOption is one candidate codon for a single mutated site within a
// fragment's oligo mixture, and the fraction of the mixture it occupies.
type siteOption struct {
	position int
	codon    string
	ratio    float64
}

// drawSiteOptions builds one siteOption per requested substitution at
// site that still carries a positive frequency, drawing a concrete codon
// per target amino acid from table, plus a wild-type entry for whatever
// frequency the requests leave uncovered.
func drawSiteOptions(rng *rand.Rand, table *codonusage.Table, site *sitesplit.MutationSite, freqByAmino map[string]float64, frequencyThreshold float64) ([]siteOption, error) {
	wildCodon, err := table.ChooseWeightedCodon(rng, site.OldAmino, frequencyThreshold)
	if err != nil {
		return nil, err
	}

	requested := 0.0
	options := make([]siteOption, 0, len(freqByAmino)+1)
	for _, amino := range site.NewAminos {
		freq, ok := freqByAmino[amino]
		if !ok || freq <= 0 {
			continue
		}
		codon := wildCodon
		if amino != site.OldAmino {
			codon, err = table.ChooseWeightedCodon(rng, amino, frequencyThreshold)
			if err != nil {
				return nil, err
			}
		}
		options = append(options, siteOption{position: site.Position, codon: codon, ratio: freq})
		requested += freq
	}

	if residual := 1 - requested; residual > 1e-9 {
		options = append(options, siteOption{position: site.Position, codon: wildCodon, ratio: residual})
	}
	if len(options) == 0 {
		options = append(options, siteOption{position: site.Position, codon: wildCodon, ratio: 1})
	}
	return options, nil
}

// cartesianMix expands one candidate-option slice per site into every
// combination across sites, multiplying ratios together as it goes.
func cartesianMix(perSite [][]siteOption) [][]siteOption {
	combos := [][]siteOption{nil}
	for _, options := range perSite {
		next := make([][]siteOption, 0, len(combos)*len(options))
		for _, combo := range combos {
			for _, opt := range options {
				next = append(next, append(append([]siteOption(nil), combo...), opt))
			}
		}
		combos = next
	}
	return combos
}

// buildOligos generates fragment's synthesis mixture: the cartesian
// product of every mutated site's codon options inside the fragment,
// filtered to drop combinations matching an avoided motif (checked on
// whichever strand the fragment is actually synthesized on) and
// renormalized to sum back to 1. When the fragment carries no mutated
// site, it returns the fragment's own (possibly reverse-complemented)
// sequence as a single, pure oligo. Redraws the mutant codon choices up
// to cfg.MixtureRetries times if every combination comes out banned.
func buildOligos(rng *rand.Rand, table *codonusage.Table, gene string, fragment Fragment, sites []*sitesplit.MutationSite, freqByPosition map[int]map[string]float64, cfg Config, motifs *regexp.Regexp) ([]Oligo, error) {
	var inFragment []*sitesplit.MutationSite
	for _, s := range sites {
		if s.Start() >= fragment.Start && s.End() <= fragment.End {
			inFragment = append(inFragment, s)
		}
	}

	template := fragment.Sequence(gene)

	if len(inFragment) == 0 {
		sequence := template
		if fragment.ReverseComplemented {
			sequence = transform.ReverseComplement(sequence)
		}
		if motifs != nil && motifs.MatchString(sequence) {
			return nil, engine.Wrapf(engine.Exhausted, "pas: fragment at %d matches an avoided motif and carries no mutated site to vary", fragment.Start)
		}
		return []Oligo{{Sequence: sequence, MixRatio: 1}}, nil
	}

	attempts := cfg.MixtureRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		perSite := make([][]siteOption, len(inFragment))
		for i, s := range inFragment {
			options, err := drawSiteOptions(rng, table, s, freqByPosition[s.Position], cfg.FrequencyThreshold)
			if err != nil {
				return nil, err
			}
			perSite[i] = options
		}

		var oligos []Oligo
		for _, combo := range cartesianMix(perSite) {
			bytes := []byte(template)
			ratio := 1.0
			for _, opt := range combo {
				offset := opt.position - fragment.Start
				copy(bytes[offset:offset+3], opt.codon)
				ratio *= opt.ratio
			}
			sequence := string(bytes)
			if fragment.ReverseComplemented {
				sequence = transform.ReverseComplement(sequence)
			}
			if motifs != nil && motifs.MatchString(sequence) {
				continue
			}
			oligos = append(oligos, Oligo{Sequence: sequence, MixRatio: ratio})
		}

		if len(oligos) == 0 {
			continue
		}

		total := 0.0
		for _, o := range oligos {
			total += o.MixRatio
		}
		for i := range oligos {
			oligos[i].MixRatio /= total
		}
		sort.Slice(oligos, func(i, j int) bool { return oligos[i].MixRatio > oligos[j].MixRatio })
		return oligos, nil
	}

	return nil, engine.Wrapf(engine.Exhausted, "pas: could not find an oligo mixture for the fragment at %d avoiding every configured motif within %d attempts", fragment.Start, attempts)
}

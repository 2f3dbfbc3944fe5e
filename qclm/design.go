package qclm

import (
	"math"
	"math/rand"

	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/degeneracy"
	"github.com/bebop/mutmaker/engine"
	"github.com/bebop/mutmaker/primer"
	"github.com/bebop/mutmaker/sitesplit"
)

// SiteSequenceDesign is one degenerate-codon primer pair covering a
// MutationSiteSequence, together with the degenerate codon chosen for
// each of its sites.
type SiteSequenceDesign struct {
	SiteSequence *sitesplit.MutationSiteSequence
	Codons       map[int]string // site.Position -> chosen degenerate codon
	Forward      *primer.Primer
	Reverse      *primer.Primer
}

// chooseCodons picks one codon per site in siteSeq: a concrete
// frequency-weighted codon when only the wild-type amino acid is
// requested, otherwise the degenerate codon degeneracy.BestUnion finds for
// the site's amino acids, which may also encode amino acids that were not
// requested.
func chooseCodons(rng *rand.Rand, table *codonusage.Table, siteSeq *sitesplit.MutationSiteSequence, cfg Config) (map[int]string, error) {
	codons := make(map[int]string, len(siteSeq.OrderedMutations))
	for _, site := range siteSeq.OrderedMutations {
		if len(site.NewAminos) == 1 {
			// Only the wild-type amino acid requested: no mutation needed, keep a
			// concrete codon rather than paying for a degenerate search.
			codon, err := table.ChooseWeightedCodon(rng, site.NewAminos[0], cfg.FrequencyThreshold)
			if err != nil {
				return nil, err
			}
			codons[site.Position] = codon
			continue
		}
		codon, _, err := degeneracy.BestUnion(rng, table, site.NewAminos, cfg.Degeneracy)
		if err != nil {
			return nil, err
		}
		codons[site.Position] = codon
	}
	return codons, nil
}

// substitute returns template with each site's chosen codon spliced in at
// its position.
func substitute(template string, codons map[int]string) string {
	bytes := []byte(template)
	for position, codon := range codons {
		copy(bytes[position:position+len(codon)], codon)
	}
	return string(bytes)
}

// designSiteSequence builds a degenerate-codon primer pair for one
// MutationSiteSequence: choose a codon per site, splice them into the
// template, and grow a forward/reverse primer pair around the spliced
// region.
func designSiteSequence(rng *rand.Rand, table *codonusage.Table, template string, siteSeq *sitesplit.MutationSiteSequence, cfg Config, calc engine.TmCalculator) (*SiteSequenceDesign, error) {
	codons, err := chooseCodons(rng, table, siteSeq, cfg)
	if err != nil {
		return nil, err
	}
	designSequence := substitute(template, codons)

	fw, err := growForwardPrimer(cfg, designSequence, siteSeq, calc)
	if err != nil {
		return nil, err
	}
	rw, err := growReversePrimer(cfg, designSequence, siteSeq, calc)
	if err != nil {
		return nil, err
	}

	return &SiteSequenceDesign{SiteSequence: siteSeq, Codons: codons, Forward: fw, Reverse: rw}, nil
}

func closerTo(target, a, b float64) bool {
	return math.Abs(a-target) < math.Abs(b-target)
}

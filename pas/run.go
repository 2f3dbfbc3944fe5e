package pas

import (
	"math/rand"
	"sort"
	"time"

	"github.com/bebop/mutmaker/checks"
	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/engine"
	"github.com/bebop/mutmaker/sitesplit"
)

// Request is a full PCR-based accurate gene synthesis fragmentation
// request.
type Request struct {
	Gene      string
	Mutations []MutationRequest
	Config    Config
}

// Run splits req.Gene into a chain of overlapping fragments, never
// breaking a reserved mutation codon across two fragments, sweeping the
// overlap melting-temperature threshold T across [MinOverlapTemp,
// MaxOverlapTemp] in steps of TempThresholdStep and keeping whichever
// complete, even-fragment-count chain scores lowest, then synthesizes
// every fragment's oligo mixture from req.Mutations' requested
// substitution frequencies.
func Run(rng *rand.Rand, table *codonusage.Table, req Request, calc engine.TmCalculator) (*Solution, error) {
	if len(req.Gene) == 0 {
		return nil, engine.Wrapf(engine.Validation, "pas: gene sequence is required")
	}
	cfg := req.Config.WithDefaults()

	mutations := make([]sitesplit.AminoMutation, len(req.Mutations))
	freqByPosition := make(map[int]map[string]float64, len(req.Mutations))
	for i, m := range req.Mutations {
		mutations[i] = m.AminoMutation
		if freqByPosition[m.Position] == nil {
			freqByPosition[m.Position] = make(map[string]float64)
		}
		freqByPosition[m.Position][m.NewAmino] = m.Frequency
	}
	sort.Slice(mutations, func(i, j int) bool { return mutations[i].Position < mutations[j].Position })

	var sites []*sitesplit.MutationSite
	if len(mutations) > 0 {
		if table == nil {
			return nil, engine.Wrapf(engine.Validation, "pas: a codon usage table is required when mutations are requested")
		}
		var err error
		sites, err = sitesplit.GroupMutationsIntoSites(mutations)
		if err != nil {
			return nil, engine.Wrap(engine.Validation, err)
		}
	}

	if cfg.MaxOligoSize > len(req.Gene) {
		cfg.MaxOligoSize = len(req.Gene)
	}
	if cfg.MinOligoSize > cfg.MaxOligoSize {
		cfg.MinOligoSize = cfg.MaxOligoSize
	}

	motifs, err := checks.PatternsToRegexp(cfg.AvoidedMotifs, true)
	if err != nil {
		return nil, engine.Wrap(engine.Validation, err)
	}

	deadline := time.Now().Add(cfg.Budget)

	var best *Solution
	for t := cfg.MinOverlapTemp; t <= cfg.MaxOverlapTemp; t += cfg.TempThresholdStep {
		if time.Now().After(deadline) {
			break
		}
		ow := overlapWindow{Min: t, Max: t + cfg.TempRangeSize, Opt: cfg.OptOverlapTemp}

		protos, err := buildProtoFragments(req.Gene, sites, cfg, t, calc)
		if err != nil {
			return nil, err
		}

		fragments, ok := buildFragments(req.Gene, 0, protos, cfg, ow, calc, deadline)
		if !ok {
			continue
		}

		fragments, ok = enforceEvenFragmentCount(req.Gene, fragments, protos, cfg, ow, calc)
		if !ok {
			continue
		}

		score, err := scoreSolution(req.Gene, fragments, cfg, calc)
		if err != nil {
			return nil, err
		}
		if best == nil || score < best.Score {
			best = &Solution{Fragments: fragments, Score: score}
		}
	}

	if best == nil {
		return nil, engine.Wrapf(engine.Infeasible, "pas: no threshold in [%v, %v] admits a complete solution with an even number of fragments", cfg.MinOverlapTemp, cfg.MaxOverlapTemp)
	}

	for i := range best.Fragments {
		best.Fragments[i].ReverseComplemented = i%2 == 1
	}
	for i := range best.Fragments {
		oligos, err := buildOligos(rng, table, req.Gene, best.Fragments[i], sites, freqByPosition, cfg, motifs)
		if err != nil {
			return nil, err
		}
		best.Fragments[i].Oligos = oligos
	}

	return best, nil
}

// enforceEvenFragmentCount returns fragments unchanged if its count is
// already even, or if the gene needed no fragmentation at all (a single
// fragment synthesizes directly and never gets PCR-paired with anything,
// so the pairing invariant doesn't apply to it). An odd count of two or
// more, though, can't be PCR-assembled back into the gene: it looks for
// the largest fragment with room to split in two and splits it there,
// trying progressively smaller fragments until one admits a valid split,
// and reports ok=false if none do.
func enforceEvenFragmentCount(gene string, fragments []Fragment, protos []protoFragment, cfg Config, ow overlapWindow, calc engine.TmCalculator) ([]Fragment, bool) {
	if len(fragments) <= 1 || len(fragments)%2 == 0 {
		return fragments, true
	}

	order := make([]int, len(fragments))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		la := fragments[order[a]].End - fragments[order[a]].Start
		lb := fragments[order[b]].End - fragments[order[b]].Start
		return la > lb
	})

	for _, idx := range order {
		left, right, ok := splitInTwo(gene, fragments[idx], protos, cfg, ow, calc)
		if !ok {
			continue
		}
		out := make([]Fragment, 0, len(fragments)+1)
		out = append(out, fragments[:idx]...)
		out = append(out, left, right)
		out = append(out, fragments[idx+1:]...)
		return out, true
	}
	return nil, false
}

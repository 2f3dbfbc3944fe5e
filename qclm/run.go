package qclm

import (
	"math/rand"
	"sort"

	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/engine"
	"github.com/bebop/mutmaker/sitesplit"
)

// Request is a full QCLM/MSDM design request.
type Request struct {
	Sequence   string
	GeneOffset int
	Mutations  []sitesplit.AminoMutation
	Config     Config
}

// Solution is the best-scoring split of a request's mutation sites into
// site sequences, each covered by its own degenerate-codon primer pair.
type Solution struct {
	Designs          []*SiteSequenceDesign
	Score            float64
	MutationCoverage float64
}

// Run designs primers for every mutation site in req, grouping adjacent
// sites into site sequences in every way allowed by Config.
// MaxSplitGroupSize, and returns the split with the lowest total design
// score, where the total of a split whose mutation coverage is below 1 is
// multiplied by (2 - coverage).
func Run(rng *rand.Rand, table *codonusage.Table, req Request, calc engine.TmCalculator) (*Solution, error) {
	if len(req.Mutations) == 0 {
		return nil, engine.Wrapf(engine.Validation, "qclm: at least one mutation is required")
	}
	cfg := req.Config.WithDefaults()

	mutations := append([]sitesplit.AminoMutation(nil), req.Mutations...)
	sort.Slice(mutations, func(i, j int) bool { return mutations[i].Position < mutations[j].Position })

	sites, err := sitesplit.GroupMutationsIntoSites(mutations)
	if err != nil {
		return nil, engine.Wrap(engine.Validation, err)
	}

	boundaries := make(map[*sitesplit.MutationSite]sitesplit.Boundary, len(sites))
	for _, site := range sites {
		minStart := site.Position - cfg.MaxPrimerSize
		if minStart < 0 {
			minStart = 0
		}
		maxEnd := site.End() + cfg.MaxPrimerSize
		if maxEnd > len(req.Sequence) {
			maxEnd = len(req.Sequence)
		}
		boundaries[site] = sitesplit.Boundary{MinStart: minStart, MaxEnd: maxEnd}
	}

	splits, err := sitesplit.EnumerateSplits(sites, table, cfg.FrequencyThreshold, boundaries, cfg.MaxSplitGroupSize)
	if err != nil {
		return nil, engine.Wrap(engine.Internal, err)
	}

	totalRequested := 0
	for _, site := range sites {
		totalRequested += len(site.NewAminos) - 1
	}

	var best *Solution
	var lastErr error
	for _, split := range splits.All() {
		designs := make([]*SiteSequenceDesign, 0, len(split.SiteSequences))
		feasible := true
		for _, siteSeq := range split.SiteSequences {
			design, err := designSiteSequence(rng, table, req.Sequence, siteSeq, cfg, calc)
			if err != nil {
				lastErr = err
				feasible = false
				break
			}
			designs = append(designs, design)
		}
		if !feasible {
			continue
		}

		if cfg.NonOverlappingPrimers && hasAnyOverlap(designs) {
			continue
		}

		total := 0.0
		for _, d := range designs {
			score, err := scoreDesign(cfg, d, calc)
			if err != nil {
				lastErr = err
				feasible = false
				break
			}
			total += score
		}
		if !feasible {
			continue
		}

		coverage := mutationCoverage(designs, totalRequested)
		if coverage < 1 {
			total *= 2 - coverage
		}

		if best == nil || total < best.Score {
			best = &Solution{Designs: designs, Score: total, MutationCoverage: coverage}
		}
	}

	if best == nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, engine.Wrapf(engine.Infeasible, "qclm: no split of the requested mutation sites admits a feasible primer design")
	}
	return best, nil
}

func hasAnyOverlap(designs []*SiteSequenceDesign) bool {
	for i := 0; i < len(designs); i++ {
		for j := i + 1; j < len(designs); j++ {
			if primersOverlap(designs[i], designs[j]) {
				return true
			}
		}
	}
	return false
}

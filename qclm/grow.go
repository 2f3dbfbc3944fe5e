package qclm

import (
	"math"

	"github.com/bebop/mutmaker/engine"
	"github.com/bebop/mutmaker/primer"
	"github.com/bebop/mutmaker/sitesplit"
)

// growForwardPrimer grows a forward primer anchored at siteSeq's leftmost
// allowed primer start, lengthening it until either its melting
// temperature lands within half the configured temperature range of the
// target, or the search range is exhausted (in which case the closest
// candidate found is returned).
func growForwardPrimer(cfg Config, designSequence string, siteSeq *sitesplit.MutationSiteSequence, calc engine.TmCalculator) (*primer.Primer, error) {
	start := siteSeq.PrimerMinStart
	if start < 0 {
		start = 0
	}

	var best *primer.Primer
	var bestTm float64

	for length := cfg.MinPrimerSize; length <= cfg.MaxPrimerSize && start+length <= len(designSequence); length++ {
		p, err := primer.New(designSequence, primer.Forward, start, length)
		if err != nil {
			continue
		}
		if p.NormalEnd() < siteSeq.End()+cfg.MinThreeEndSize {
			continue
		}
		tm, err := p.MeltingTemp(calc)
		if err != nil {
			return nil, err
		}
		if best == nil || closerTo(cfg.TargetTemp, tm, bestTm) {
			best, bestTm = p, tm
		}
		if math.Abs(tm-cfg.TargetTemp) < cfg.HalfTempRange {
			break
		}
	}

	if best == nil {
		return nil, engine.Wrapf(engine.Infeasible, "qclm: could not grow a forward primer covering site sequence at %d", siteSeq.Position)
	}
	return best, nil
}

// growReversePrimer is growForwardPrimer's mirror image, anchored at
// siteSeq's rightmost allowed primer end.
func growReversePrimer(cfg Config, designSequence string, siteSeq *sitesplit.MutationSiteSequence, calc engine.TmCalculator) (*primer.Primer, error) {
	anchor := siteSeq.PrimerMaxEnd - 1
	if anchor >= len(designSequence) {
		anchor = len(designSequence) - 1
	}

	var best *primer.Primer
	var bestTm float64

	for length := cfg.MinPrimerSize; length <= cfg.MaxPrimerSize && anchor-length+1 >= 0; length++ {
		p, err := primer.New(designSequence, primer.Reverse, anchor, length)
		if err != nil {
			continue
		}
		if p.NormalStart() > siteSeq.Start()-cfg.MinThreeEndSize {
			continue
		}
		tm, err := p.MeltingTemp(calc)
		if err != nil {
			return nil, err
		}
		if best == nil || closerTo(cfg.TargetTemp, tm, bestTm) {
			best, bestTm = p, tm
		}
		if math.Abs(tm-cfg.TargetTemp) < cfg.HalfTempRange {
			break
		}
	}

	if best == nil {
		return nil, engine.Wrapf(engine.Infeasible, "qclm: could not grow a reverse primer covering site sequence at %d", siteSeq.Position)
	}
	return best, nil
}

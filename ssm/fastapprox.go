package ssm

import (
	"github.com/bebop/mutmaker/engine"
)

// findBestOverlaps finds one overlap per site such that every overlap's
// melting temperature lands as close as possible to overlapTemp, scanning
// overlap sizes from minOverlapSize to maxOverlapSize and stopping a
// site's scan early once a candidate lands within halfTempRange of the
// target.
func findBestOverlaps(sequence string, cfg Config, sites []Site, calc engine.TmCalculator) ([]PrimerSpec, error) {
	results := make([]PrimerSpec, 0, len(sites))

	for _, site := range sites {
		var bestOffset, bestLength int = -1, 0
		var bestTm float64
		found := false

	lengthLoop:
		for length := cfg.MinOverlapSize; length <= cfg.MaxOverlapSize; length++ {
			for offset := (site.Position + site.Length) - length; offset < site.Position-1; offset++ {
				if offset < 0 || offset+length > len(sequence) {
					continue
				}
				rightPadding := (offset + length) <= (site.Position + site.Length + cfg.MinFiveEndSize)
				leftPadding := (offset + cfg.MinFiveEndSize) >= site.Position
				if rightPadding || leftPadding {
					continue
				}

				overlap := sequence[offset : offset+length]
				tm, err := calc.DuplexTm(overlap)
				if err != nil {
					return nil, err
				}

				if !found || abs(tm-cfg.OverlapTemp) < abs(bestTm-cfg.OverlapTemp) {
					bestOffset, bestLength, bestTm = offset, length, tm
					found = true
				}
				if found && abs(bestTm-cfg.OverlapTemp) < cfg.HalfTempRange {
					break lengthLoop
				}
			}
		}

		if !found {
			return nil, engine.Wrapf(engine.Infeasible, "ssm: no possible overlap for site at %d; consider lowering the minimum 5' size", site.Position)
		}
		results = append(results, PrimerSpec{Offset: bestOffset, Length: bestLength, ThreeEndSize: 0, ThreeEndTemp: bestTm})
	}

	return results, nil
}

// growForwardPrimer grows a forward primer from overlap until its 3' end
// (defined by the site) clears tempThreshold, returning the shortest
// primer that does.
func growForwardPrimer(cfg Config, sequence string, site Site, overlap PrimerSpec, tempThreshold float64, calc engine.TmCalculator) (PrimerSpec, error) {
	mutationEnd := site.Position + site.Length
	for length := overlap.Length + 1; length < cfg.MaxPrimerSize; length++ {
		threeEndSize := (overlap.Offset + length) - mutationEnd
		if threeEndSize <= 0 || mutationEnd+threeEndSize > len(sequence) {
			continue
		}
		threeEndSeq := sequence[mutationEnd : mutationEnd+threeEndSize]
		tm, err := calc.DuplexTm(threeEndSeq)
		if err != nil {
			return PrimerSpec{}, err
		}
		if tm > tempThreshold && threeEndSize >= cfg.MinThreeEndSize {
			return PrimerSpec{Offset: overlap.Offset, Length: length, ThreeEndSize: threeEndSize, ThreeEndTemp: tm}, nil
		}
	}
	return PrimerSpec{}, engine.Wrapf(engine.Infeasible, "ssm: could not grow a forward primer past temperature threshold for site at %d", site.Position)
}

// growReversePrimer is growForwardPrimer's mirror image, growing the
// primer leftward from the overlap's start.
func growReversePrimer(cfg Config, sequence string, site Site, overlap PrimerSpec, tempThreshold float64, calc engine.TmCalculator) (PrimerSpec, error) {
	overlapEnd := overlap.Offset + overlap.Length
	minOffset := overlapEnd - cfg.MaxPrimerSize
	if minOffset < 0 {
		minOffset = 0
	}

	for offset := overlap.Offset - 1; offset >= minOffset; offset-- {
		if offset < 0 || site.Position > len(sequence) || offset > site.Position {
			continue
		}
		threeEndSeq := sequence[offset:site.Position]
		tm, err := calc.DuplexTm(threeEndSeq)
		if err != nil {
			return PrimerSpec{}, err
		}
		if tm > tempThreshold && len(threeEndSeq) >= cfg.MinThreeEndSize {
			return PrimerSpec{Offset: offset, Length: overlapEnd - offset, ThreeEndSize: site.Position - offset, ThreeEndTemp: tm}, nil
		}
	}
	return PrimerSpec{}, engine.Wrapf(engine.Infeasible, "ssm: could not grow a reverse primer past temperature threshold for site at %d", site.Position)
}

// growPrimers grows a forward and reverse primer from each site's overlap.
func growPrimers(cfg Config, sequence string, sites []Site, overlaps []PrimerSpec, calc engine.TmCalculator) ([]PrimerSpec, []PrimerSpec, error) {
	fwPrimers := make([]PrimerSpec, len(sites))
	rwPrimers := make([]PrimerSpec, len(sites))

	for i, site := range sites {
		fw, err := growForwardPrimer(cfg, sequence, site, overlaps[i], cfg.ForwardTempThreshold, calc)
		if err != nil {
			return nil, nil, err
		}
		rw, err := growReversePrimer(cfg, sequence, site, overlaps[i], cfg.ReverseTempThreshold, calc)
		if err != nil {
			return nil, nil, err
		}
		fwPrimers[i] = fw
		rwPrimers[i] = rw
	}

	return fwPrimers, rwPrimers, nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// RunFastApproximation is the default SSM search strategy: find one
// overlap per site near the target overlap temperature, then grow a
// forward and reverse primer from each, and wrap the result into a
// GrownSolution.
func RunFastApproximation(req Request, calc engine.TmCalculator) (*GrownSolution, error) {
	if len(req.Sites) == 0 {
		return nil, engine.Wrapf(engine.Validation, "ssm: at least one site is required")
	}
	cfg := req.Config.WithDefaults()

	overlaps, err := findBestOverlaps(req.Sequence, cfg, req.Sites, calc)
	if err != nil {
		return nil, err
	}
	fwPrimers, rwPrimers, err := growPrimers(cfg, req.Sequence, req.Sites, overlaps, calc)
	if err != nil {
		return nil, err
	}

	return &GrownSolution{
		Overlaps:    overlaps,
		FwPrimers:   fwPrimers,
		RwPrimers:   rwPrimers,
		FwTemp:      cfg.ForwardTempThreshold,
		RwTemp:      cfg.ReverseTempThreshold,
		OverlapTemp: cfg.OverlapTemp,
	}, nil
}

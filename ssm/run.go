package ssm

import "github.com/bebop/mutmaker/engine"

// Run designs one overlapping primer pair per requested site, using the
// fast-approximation strategy: a single overlap search followed by a
// single greedy primer growth per site. This is the default strategy and
// the one production designs should use.
func Run(req Request, calc engine.TmCalculator) (*GrownSolution, error) {
	return RunFastApproximation(req, calc)
}

// RunExhaustive re-derives a solution at several points across a small
// grid of target temperatures around the request's configured targets,
// and returns whichever scores best under computeGrownSolutionScore. It
// costs several times what Run does, and exists to verify Run's single
// greedy pass lands close to what a broader search would find, not to
// replace it in production use.
func RunExhaustive(req Request, calc engine.TmCalculator) (*GrownSolution, error) {
	if len(req.Sites) == 0 {
		return nil, engine.Wrapf(engine.Validation, "ssm: at least one site is required")
	}
	cfg := req.Config.WithDefaults()

	deltas := []float64{-cfg.HalfTempRange, 0, cfg.HalfTempRange}
	var candidates []GrownSolution

	for _, delta := range deltas {
		gridCfg := cfg
		gridCfg.OverlapTemp = cfg.OverlapTemp + delta
		gridCfg.ForwardTempThreshold = cfg.ForwardTempThreshold + delta
		gridCfg.ReverseTempThreshold = cfg.ReverseTempThreshold + delta

		overlaps, err := findBestOverlaps(req.Sequence, gridCfg, req.Sites, calc)
		if err != nil {
			continue
		}
		fwPrimers, rwPrimers, err := growPrimers(gridCfg, req.Sequence, req.Sites, overlaps, calc)
		if err != nil {
			continue
		}

		candidates = append(candidates, GrownSolution{
			Overlaps:    overlaps,
			FwPrimers:   fwPrimers,
			RwPrimers:   rwPrimers,
			FwTemp:      gridCfg.ForwardTempThreshold,
			RwTemp:      gridCfg.ReverseTempThreshold,
			OverlapTemp: gridCfg.OverlapTemp,
		})
	}

	if len(candidates) == 0 {
		return nil, engine.Wrapf(engine.Infeasible, "ssm: no point in the temperature grid yielded a feasible solution")
	}

	return pickBestGrownSolution(cfg, req.Sequence, candidates, req.Flanks, calc)
}

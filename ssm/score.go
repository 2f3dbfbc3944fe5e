package ssm

import (
	"math"

	"github.com/bebop/mutmaker/checks"
	"github.com/bebop/mutmaker/engine"
)

// computeHeterodimerErr scores how far off each primer's heterodimer Tm
// with the neighboring fragment's flank is from that primer's own target
// temperature. Returns 0 unless both flanks are set: with only one flank
// present, neither primer is scored against it.
func computeHeterodimerErr(fwSeq, rwSeq string, solution GrownSolution, flanks FlankingSequences, calc engine.TmCalculator) (float64, error) {
	if flanks.ForwardFlank == "" || flanks.ReverseFlank == "" {
		return 0, nil
	}
	fwHet, err := calc.HeterodimerTm(fwSeq, flanks.ReverseFlank)
	if err != nil {
		return 0, err
	}
	rwHet, err := calc.HeterodimerTm(rwSeq, flanks.ForwardFlank)
	if err != nil {
		return 0, err
	}
	return math.Pow(fwHet-solution.FwTemp, 2) + math.Pow(rwHet-solution.RwTemp, 2), nil
}

func getGCOverflow(sequence string, minGC, maxGC float64) float64 {
	percentage := checks.GcContent(sequence) * 100
	overflow := 0.0
	if minGC-percentage > 0 {
		overflow += minGC - percentage
	}
	if percentage-maxGC > 0 {
		overflow += percentage - maxGC
	}
	return overflow
}

// computeGrownSolutionScore scores each site of a grown solution: squared
// deviation of the 3' ends and overlap from their target temperatures
// (only penalized past half the configured temperature range), squared
// deviation of primer length from the minimum primer size, GC content
// outside the configured window, and - when enabled - hairpin, homodimer
// and heterodimer penalties.
func computeGrownSolutionScore(cfg Config, sequence string, solution GrownSolution, flanks FlankingSequences, calc engine.TmCalculator) ([]float64, error) {
	scores := make([]float64, len(solution.FwPrimers))
	maxTempRange := cfg.ThreeEndTempRange / 2

	for i := range solution.FwPrimers {
		fw, rw, overlap := solution.FwPrimers[i], solution.RwPrimers[i], solution.Overlaps[i]
		fwSeq := sequence[fw.Offset : fw.Offset+fw.Length]
		rwSeq := sequence[rw.Offset : rw.Offset+rw.Length]

		fwTempErr := squaredBeyondRange(fw.ThreeEndTemp, solution.FwTemp, maxTempRange)
		rwTempErr := squaredBeyondRange(rw.ThreeEndTemp, solution.RwTemp, maxTempRange)
		overlapTempErr := squaredBeyondRange(overlap.ThreeEndTemp, solution.OverlapTemp, maxTempRange)

		fwSizeErr := math.Pow(float64(fw.Length-cfg.MinPrimerSize), 2)
		rwSizeErr := math.Pow(float64(rw.Length-cfg.MinPrimerSize), 2)

		gcOverflowErr := math.Pow(getGCOverflow(fwSeq, cfg.MinGCContent, cfg.MaxGCContent), 2)
		gcOverflowErr += math.Pow(getGCOverflow(rwSeq, cfg.MinGCContent, cfg.MaxGCContent), 2)

		score := math.Sqrt(
			cfg.ThreeEndTempWeight*fwTempErr +
				cfg.ThreeEndTempWeight*rwTempErr +
				cfg.OverlapTempWeight*overlapTempErr +
				cfg.ThreeEndSizeWeight*fwSizeErr +
				cfg.ThreeEndSizeWeight*rwSizeErr +
				cfg.GCContentWeight*gcOverflowErr,
		)

		if cfg.ComputeHairpinHomodimer {
			fwHairpin, err := calc.HairpinTm(fwSeq)
			if err != nil {
				return nil, err
			}
			rwHairpin, err := calc.HairpinTm(rwSeq)
			if err != nil {
				return nil, err
			}
			fwHomodimer, err := calc.HomodimerTm(fwSeq)
			if err != nil {
				return nil, err
			}
			rwHomodimer, err := calc.HomodimerTm(rwSeq)
			if err != nil {
				return nil, err
			}
			heteroErr, err := computeHeterodimerErr(fwSeq, rwSeq, solution, flanks, calc)
			if err != nil {
				return nil, err
			}

			score += math.Sqrt(
				cfg.HairpinTemperatureWeight*math.Pow(solution.FwTemp-fwHairpin, 2) +
					cfg.HairpinTemperatureWeight*math.Pow(solution.RwTemp-rwHairpin, 2) +
					cfg.PrimerDimerTemperatureWeight*math.Pow(solution.FwTemp-fwHomodimer, 2) +
					cfg.PrimerDimerTemperatureWeight*math.Pow(solution.RwTemp-rwHomodimer, 2) +
					cfg.PrimerDimerTemperatureWeight*heteroErr,
			)
		}

		scores[i] = score
	}
	return scores, nil
}

func squaredBeyondRange(actual, target, maxRange float64) float64 {
	diff := math.Abs(actual - target)
	if diff < maxRange {
		return 0
	}
	return diff * diff
}

func totalScore(scores []float64) float64 {
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum
}

// pickBestGrownSolution scores every candidate solution and returns the
// one with the lowest total score.
func pickBestGrownSolution(cfg Config, sequence string, solutions []GrownSolution, flanks FlankingSequences, calc engine.TmCalculator) (*GrownSolution, error) {
	if len(solutions) == 0 {
		return nil, engine.Wrapf(engine.Internal, "ssm: no candidate solutions to choose from")
	}
	best := solutions[0]
	bestScores, err := computeGrownSolutionScore(cfg, sequence, best, flanks, calc)
	if err != nil {
		return nil, err
	}
	bestTotal := totalScore(bestScores)

	for _, candidate := range solutions[1:] {
		scores, err := computeGrownSolutionScore(cfg, sequence, candidate, flanks, calc)
		if err != nil {
			return nil, err
		}
		total := totalScore(scores)
		if total < bestTotal {
			best = candidate
			bestTotal = total
		}
	}
	return &best, nil
}

package pas

import (
	"math"

	"github.com/bebop/mutmaker/checks"
	"github.com/bebop/mutmaker/engine"
)

// scoreFragment penalizes a fragment's deviation from the optimal length,
// its GC content window, and (when enabled) its hairpin/homodimer
// stability relative to a threshold taken from the fragment's own duplex
// Tm.
func scoreFragment(gene string, f Fragment, cfg Config, calc engine.TmCalculator) (float64, error) {
	length := f.End - f.Start
	lengthErr := math.Pow(float64(length-cfg.OptOligoSize), 2)

	sequence := gene[f.Start:f.End]
	gcPercent := checks.GcContent(sequence) * 100
	gcErr := 0.0
	if cfg.MinGCContent-gcPercent > 0 {
		gcErr += cfg.MinGCContent - gcPercent
	}
	if gcPercent-cfg.MaxGCContent > 0 {
		gcErr += gcPercent - cfg.MaxGCContent
	}
	gcErr = gcErr * gcErr

	score := cfg.LengthWeight*lengthErr + gcErr

	if cfg.ComputeHairpinHomodimer {
		hairpin, err := calc.HairpinTm(sequence)
		if err != nil {
			return 0, err
		}
		homodimer, err := calc.HomodimerTm(sequence)
		if err != nil {
			return 0, err
		}
		duplex, err := calc.DuplexTm(sequence)
		if err != nil {
			return 0, err
		}
		if duplex-hairpin < cfg.SafeTempDifference {
			score += cfg.HairpinHomodimerWeight * math.Pow(cfg.SafeTempDifference-(duplex-hairpin), 2)
		}
		if duplex-homodimer < cfg.SafeTempDifference {
			score += cfg.HairpinHomodimerWeight * math.Pow(cfg.SafeTempDifference-(duplex-homodimer), 2)
		}
	}

	return score, nil
}

// scoreSolution is the average of its fragments' individual scores,
// mirroring the original tool's running-average tie-break between
// partial solutions of differing fragment counts.
func scoreSolution(gene string, fragments []Fragment, cfg Config, calc engine.TmCalculator) (float64, error) {
	if len(fragments) == 0 {
		return 0, nil
	}
	total := 0.0
	for _, f := range fragments {
		s, err := scoreFragment(gene, f, cfg, calc)
		if err != nil {
			return 0, err
		}
		total += s
	}
	return total / float64(len(fragments)), nil
}

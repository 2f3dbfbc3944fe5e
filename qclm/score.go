package qclm

import (
	"math"

	"github.com/bebop/mutmaker/engine"
	"github.com/bebop/mutmaker/primer"
)

// scorePrimer scores a single primer's deviation from the target
// temperature, its GC content window, its length, and (when enabled) its
// hairpin/homodimer stability.
func scorePrimer(cfg Config, p *primer.Primer, calc engine.TmCalculator) (float64, error) {
	tm, err := p.MeltingTemp(calc)
	if err != nil {
		return 0, err
	}
	tempErr := math.Pow(tm-cfg.TargetTemp, 2)

	gcPercent := p.GCContent() * 100
	gcErr := 0.0
	if cfg.MinGCContent-gcPercent > 0 {
		gcErr += cfg.MinGCContent - gcPercent
	}
	if gcPercent-cfg.MaxGCContent > 0 {
		gcErr += gcPercent - cfg.MaxGCContent
	}
	gcErr = gcErr * gcErr

	lengthErr := math.Pow(float64(p.Length-cfg.MinPrimerSize), 2)

	sum := cfg.TemperatureWeight*tempErr + cfg.GCContentWeight*gcErr + cfg.LengthWeight*lengthErr

	if cfg.UsePrimer3 {
		hairpin, err := calc.HairpinTm(p.Sequence)
		if err != nil {
			return 0, err
		}
		homodimer, err := calc.HomodimerTm(p.Sequence)
		if err != nil {
			return 0, err
		}
		sum += cfg.HairpinTemperatureWeight*math.Pow(tm-hairpin, 2) + cfg.PrimerDimerTemperatureWeight*math.Pow(tm-homodimer, 2)
	}

	return math.Sqrt(sum), nil
}

// scoreDesign scores a full site-sequence design: its forward and reverse
// primer scores, plus (when enabled) their heterodimer penalty.
func scoreDesign(cfg Config, design *SiteSequenceDesign, calc engine.TmCalculator) (float64, error) {
	fwScore, err := scorePrimer(cfg, design.Forward, calc)
	if err != nil {
		return 0, err
	}
	rwScore, err := scorePrimer(cfg, design.Reverse, calc)
	if err != nil {
		return 0, err
	}
	score := fwScore + rwScore

	if cfg.UsePrimer3 {
		het, err := calc.HeterodimerTm(design.Forward.Sequence, design.Reverse.Sequence)
		if err != nil {
			return 0, err
		}
		score += cfg.PrimerDimerTemperatureWeight * math.Pow(cfg.TargetTemp-het, 2)
	}
	return score, nil
}

// primersOverlap reports whether two designs' primers share any bases in
// normal-sequence coordinates.
func primersOverlap(a, b *SiteSequenceDesign) bool {
	overlaps := func(p, q *primer.Primer) bool {
		_, length := p.Overlap(q)
		return length > 0
	}
	return overlaps(a.Forward, b.Forward) || overlaps(a.Forward, b.Reverse) ||
		overlaps(a.Reverse, b.Forward) || overlaps(a.Reverse, b.Reverse)
}

// mutationCoverage is the fraction of all individually-requested amino
// acid substitutions that a solution's site sequences include: each site
// counts its requested amino acids other than the wild type, and the
// result is capped at 1. The chosen codons are not decoded, so a codon
// that does not encode a requested amino acid does not lower the
// coverage.
func mutationCoverage(designs []*SiteSequenceDesign, totalRequested int) float64 {
	if totalRequested == 0 {
		return 1
	}
	covered := 0
	for _, d := range designs {
		for _, site := range d.SiteSequence.OrderedMutations {
			covered += len(site.NewAminos) - 1 // exclude the wild-type entry included in NewAminos
		}
	}
	coverage := float64(covered) / float64(totalRequested)
	if coverage > 1 {
		coverage = 1
	}
	return coverage
}

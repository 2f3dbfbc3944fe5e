package qclm

import (
	"testing"

	"github.com/bebop/mutmaker/primer"
	"github.com/bebop/mutmaker/sitesplit"
	"github.com/bebop/mutmaker/thermo"
)

func TestScorePrimerPenalizesOffTargetTemp(t *testing.T) {
	calc := thermo.NewCalculator(thermo.Config{})
	cfg := Config{}.WithDefaults()
	seq := "ATGGATGAGAAGGATTTCTCAAGGCTAGCATGGCATCG"
	p, err := primer.New(seq, primer.Forward, 0, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	score, err := scorePrimer(cfg, p, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score < 0 {
		t.Errorf("expected a non-negative score, got %v", score)
	}

	tm, err := p.MeltingTemp(calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	onTarget := cfg
	onTarget.TargetTemp = tm
	offTarget := cfg
	offTarget.TargetTemp = tm + 20
	on, err := scorePrimer(onTarget, p, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	off, err := scorePrimer(offTarget, p, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off <= on {
		t.Errorf("expected an off-target temperature to score worse: on=%v off=%v", on, off)
	}
}

func TestScoreDesignSumsPrimerScores(t *testing.T) {
	calc := thermo.NewCalculator(thermo.Config{})
	cfg := Config{}.WithDefaults()
	seq := "ATGGATGAGAAGGATTTCTCAAGGCTAGCATGGCATCGATCGATCGATCGATCGATCGATGCATGCATGCATGC"
	fw, err := primer.New(seq, primer.Forward, 0, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rw, err := primer.New(seq, primer.Reverse, 50, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	design := &SiteSequenceDesign{Forward: fw, Reverse: rw}
	score, err := scoreDesign(cfg, design, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score <= 0 {
		t.Errorf("expected a positive combined score, got %v", score)
	}

	fwScore, err := scorePrimer(cfg, fw, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rwScore, err := scorePrimer(cfg, rw, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != fwScore+rwScore {
		t.Errorf("scoreDesign = %v, want the sum of primer scores %v", score, fwScore+rwScore)
	}
}

func TestPrimersOverlap(t *testing.T) {
	seq := "ATGGATGAGAAGGATTTCTCAAGGCTAGCATGGCATCG"
	a, err := primer.New(seq, primer.Forward, 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := primer.New(seq, primer.Forward, 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	designA := &SiteSequenceDesign{Forward: a, Reverse: a}
	designB := &SiteSequenceDesign{Forward: b, Reverse: b}
	if !primersOverlap(designA, designB) {
		t.Errorf("expected overlapping primers to be detected")
	}
}

func TestMutationCoverageFullWhenNothingRequested(t *testing.T) {
	if got := mutationCoverage(nil, 0); got != 1 {
		t.Errorf("mutationCoverage(nil, 0) = %v, want 1", got)
	}
}

func TestMutationCoverageReflectsSiteAminoCounts(t *testing.T) {
	table := smallCodonTable(t)
	m1, err := sitesplit.ParseMutation("E1L", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, err := sitesplit.ParseMutation("E1V", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	site, err := sitesplit.NewMutationSite([]sitesplit.AminoMutation{m1, m2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boundaries := map[*sitesplit.MutationSite]sitesplit.Boundary{site: {MinStart: 0, MaxEnd: 60}}
	siteSeq, err := sitesplit.NewMutationSiteSequence([]*sitesplit.MutationSite{site}, table, 0, boundaries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	design := &SiteSequenceDesign{SiteSequence: siteSeq}
	// the site requests 2 substitutions (L, V) beyond wild-type E.
	if got := mutationCoverage([]*SiteSequenceDesign{design}, 2); got != 1 {
		t.Errorf("mutationCoverage = %v, want 1 (full coverage)", got)
	}
	if got := mutationCoverage([]*SiteSequenceDesign{design}, 4); got != 0.5 {
		t.Errorf("mutationCoverage = %v, want 0.5", got)
	}
}

package qclm

import (
	"math/rand"
	"testing"

	"github.com/bebop/mutmaker/sitesplit"
	"github.com/bebop/mutmaker/thermo"
)

func TestGrowForwardAndReversePrimers(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	gene := randomGene(rng, 300)
	table := smallCodonTable(t)
	calc := thermo.NewCalculator(thermo.Config{})

	m, err := sitesplit.ParseMutation("E51L", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	geneBytes := []byte(gene)
	copy(geneBytes[m.Position:m.Position+3], "GAG")
	gene = string(geneBytes)

	site, err := sitesplit.NewMutationSite([]sitesplit.AminoMutation{m})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := Config{}.WithDefaults()
	boundaries := map[*sitesplit.MutationSite]sitesplit.Boundary{
		site: {MinStart: m.Position - cfg.MaxPrimerSize, MaxEnd: m.Position + 3 + cfg.MaxPrimerSize},
	}
	siteSeq, err := sitesplit.NewMutationSiteSequence([]*sitesplit.MutationSite{site}, table, 0, boundaries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fw, err := growForwardPrimer(cfg, gene, siteSeq, calc)
	if err != nil {
		t.Fatalf("unexpected error growing forward primer: %v", err)
	}
	if fw.NormalEnd() < siteSeq.End()+cfg.MinThreeEndSize {
		t.Errorf("expected the forward primer to clear the 3' end size past the site")
	}

	rw, err := growReversePrimer(cfg, gene, siteSeq, calc)
	if err != nil {
		t.Fatalf("unexpected error growing reverse primer: %v", err)
	}
	if rw.NormalStart() > siteSeq.Start()-cfg.MinThreeEndSize {
		t.Errorf("expected the reverse primer to clear the 3' end size before the site")
	}
}

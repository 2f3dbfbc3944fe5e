package pas

import (
	"math/rand"
	"testing"

	"github.com/bebop/mutmaker/sitesplit"
	"github.com/bebop/mutmaker/thermo"
)

func TestLengthsByOptimalityOrdersFromOptimum(t *testing.T) {
	cfg := Config{MinOligoSize: 40, MaxOligoSize: 90, OptOligoSize: 56}
	lengths := lengthsByOptimality(cfg)
	if lengths[0] != 56 {
		t.Fatalf("expected the optimal length first, got %d", lengths[0])
	}
	for i := 1; i < len(lengths); i++ {
		d1 := abs(lengths[i-1] - 56)
		d2 := abs(lengths[i] - 56)
		if d1 > d2 {
			t.Errorf("expected lengths sorted by distance from optimum, got %v", lengths[:5])
			break
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func singleSiteProto(t *testing.T, mutation string) protoFragment {
	t.Helper()
	m, err := sitesplit.ParseMutation(mutation, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	site, err := sitesplit.NewMutationSite([]sitesplit.AminoMutation{m})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return protoFragment{sites: []*sitesplit.MutationSite{site}}
}

func TestCrossesSite(t *testing.T) {
	proto := singleSiteProto(t, "A11L")
	protos := []protoFragment{proto}
	if !crossesSite(proto.Start()+1, protos) {
		t.Errorf("expected a boundary inside the site's codon to cross it")
	}
	if !crossesSite(proto.Start(), protos) {
		t.Errorf("expected a boundary at the site's start to count as crossing it")
	}
	if crossesSite(proto.End(), protos) {
		t.Errorf("expected a boundary exactly at the site's end to not count as crossing it")
	}
}

func defaultOverlapWindow(cfg Config) overlapWindow {
	return overlapWindow{Min: cfg.MinOverlapTemp, Max: cfg.MaxOverlapTemp, Opt: cfg.OptOverlapTemp}
}

func TestFindOverlapFindsATempNearOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	bases := "ACGT"
	geneBytes := make([]byte, 100)
	for i := range geneBytes {
		geneBytes[i] = bases[rng.Intn(4)]
	}
	gene := string(geneBytes)
	cfg := Config{}.WithDefaults()
	calc := thermo.NewCalculator(thermo.Config{})

	_, _, ok := findOverlap(gene, 80, defaultOverlapWindow(cfg), cfg, calc)
	if !ok {
		t.Fatalf("expected to find a valid overlap ending at 80 in a 100bp random gene")
	}
}

func TestFindOverlapFailsNearBeginning(t *testing.T) {
	cfg := Config{}.WithDefaults()
	calc := thermo.NewCalculator(thermo.Config{})
	if _, _, ok := findOverlap("ATGCATGCATGC", 5, defaultOverlapWindow(cfg), cfg, calc); ok {
		t.Errorf("expected no overlap to fit before the minimum overlap length is satisfiable")
	}
}

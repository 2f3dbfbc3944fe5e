package ssm

import (
	"math/rand"
	"testing"

	"github.com/bebop/mutmaker/thermo"
)

func randomGene(rng *rand.Rand, length int) string {
	bases := "ACGT"
	out := make([]byte, length)
	for i := range out {
		out[i] = bases[rng.Intn(4)]
	}
	return string(out)
}

func TestRunDesignsOnePairPerSite(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	gene := randomGene(rng, 300)
	calc := thermo.NewCalculator(thermo.Config{})

	req := Request{
		Sequence: gene,
		Sites:    []Site{{Position: 150, Length: 3}},
	}
	solution, err := Run(req, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solution.FwPrimers) != 1 || len(solution.RwPrimers) != 1 || len(solution.Overlaps) != 1 {
		t.Fatalf("expected one primer pair per site, got fw=%d rw=%d overlaps=%d",
			len(solution.FwPrimers), len(solution.RwPrimers), len(solution.Overlaps))
	}
}

func TestRunRejectsNoSites(t *testing.T) {
	calc := thermo.NewCalculator(thermo.Config{})
	if _, err := Run(Request{Sequence: "ATGGATGAG"}, calc); err == nil {
		t.Errorf("expected an error when no sites are requested")
	}
}

func TestRunMultipleSites(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gene := randomGene(rng, 400)
	calc := thermo.NewCalculator(thermo.Config{})

	req := Request{
		Sequence: gene,
		Sites:    []Site{{Position: 120, Length: 3}, {Position: 240, Length: 3}},
	}
	solution, err := Run(req, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solution.FwPrimers) != 2 {
		t.Fatalf("expected 2 primer pairs, got %d", len(solution.FwPrimers))
	}
}

func TestRunExhaustivePicksAScoredSolution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	gene := randomGene(rng, 300)
	calc := thermo.NewCalculator(thermo.Config{})

	req := Request{
		Sequence: gene,
		Sites:    []Site{{Position: 150, Length: 3}},
	}
	solution, err := RunExhaustive(req, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if solution == nil {
		t.Fatalf("expected a non-nil solution")
	}
}

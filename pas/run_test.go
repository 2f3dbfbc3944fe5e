package pas

import (
	"math/rand"
	"testing"

	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/sitesplit"
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

func testCodonTable(t *testing.T) *codonusage.Table {
	t.Helper()
	table, err := codonusage.NewTable(map[string][]codonusage.Triplet{
		"A": {{Codon: "GCG", Frequency: 0.4}, {Codon: "GCT", Frequency: 0.3}, {Codon: "GCC", Frequency: 0.3}},
		"L": {{Codon: "CTG", Frequency: 0.5}, {Codon: "TTA", Frequency: 0.5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table
}

func TestRunFragmentsAGeneEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	gene := randomGene(rng, 500)
	calc := thermo.NewCalculator(thermo.Config{})

	solution, err := Run(rng, nil, Request{Gene: gene}, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solution.Fragments) == 0 {
		t.Fatalf("expected at least one fragment")
	}
	if solution.Fragments[0].Start != 0 {
		t.Errorf("expected the first fragment to start at 0, got %d", solution.Fragments[0].Start)
	}
	if solution.Fragments[len(solution.Fragments)-1].End != len(gene) {
		t.Errorf("expected the last fragment to reach the end of the gene, got %d (gene length %d)",
			solution.Fragments[len(solution.Fragments)-1].End, len(gene))
	}
	// each fragment's overlap region is where the next fragment begins
	for i := 1; i < len(solution.Fragments); i++ {
		prev := solution.Fragments[i-1]
		wantStart := prev.End - len(prev.Overlap)
		if solution.Fragments[i].Start != wantStart {
			t.Errorf("fragment %d starts at %d, want %d (start of fragment %d's overlap)", i, solution.Fragments[i].Start, wantStart, i-1)
		}
	}
}

func TestRunProducesAnEvenFragmentCountOrASingleFragment(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	gene := randomGene(rng, 500)
	calc := thermo.NewCalculator(thermo.Config{})

	solution, err := Run(rng, nil, Request{Gene: gene}, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(solution.Fragments); n > 1 && n%2 != 0 {
		t.Errorf("expected an even fragment count for a gene requiring fragmentation, got %d", n)
	}
}

func TestRunRejectsEmptyGene(t *testing.T) {
	calc := thermo.NewCalculator(thermo.Config{})
	if _, err := Run(nil, nil, Request{Gene: ""}, calc); err == nil {
		t.Errorf("expected an error for an empty gene")
	}
}

func TestRunClampsOligoSizeToShortGene(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	gene := randomGene(rng, 45)
	calc := thermo.NewCalculator(thermo.Config{})

	solution, err := Run(rng, nil, Request{Gene: gene}, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solution.Fragments) != 1 {
		t.Fatalf("expected a gene shorter than the maximum oligo size to fit in a single fragment, got %d", len(solution.Fragments))
	}
}

func TestRunAvoidsSplittingReservedMutationSites(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	gene := randomGene(rng, 500)
	calc := thermo.NewCalculator(thermo.Config{})
	table := testCodonTable(t)

	m, err := sitesplit.ParseMutation("A51L", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	geneBytes := []byte(gene)
	copy(geneBytes[m.Position:m.Position+3], "GCG")
	gene = string(geneBytes)

	req := Request{Gene: gene, Mutations: []MutationRequest{{AminoMutation: m, Frequency: 1}}}
	solution, err := Run(rng, table, req, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range solution.Fragments {
		if f.End > m.Position && f.End < m.Position+3 {
			t.Errorf("fragment boundary at %d splits the reserved codon at %d", f.End, m.Position)
		}
	}
}

func TestRunPopulatesOligoMixturesSummingToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gene := randomGene(rng, 300)
	calc := thermo.NewCalculator(thermo.Config{})
	table := testCodonTable(t)

	m, err := sitesplit.ParseMutation("A21L", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	geneBytes := []byte(gene)
	copy(geneBytes[m.Position:m.Position+3], "GCG")
	gene = string(geneBytes)

	req := Request{Gene: gene, Mutations: []MutationRequest{{AminoMutation: m, Frequency: 0.6}}}
	solution, err := Run(rng, table, req, calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, f := range solution.Fragments {
		if len(f.Oligos) == 0 {
			t.Fatalf("fragment %d has no synthesized oligos", i)
		}
		total := 0.0
		for _, o := range f.Oligos {
			total += o.MixRatio
		}
		if total < 0.99 || total > 1.01 {
			t.Errorf("fragment %d oligo mix ratios sum to %v, want 1", i, total)
		}
	}
}

package codonusage

import (
	"math/rand"
	"testing"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(map[string][]Triplet{
		"L": {{Codon: "CTG", Frequency: 0.5}, {Codon: "CTC", Frequency: 0.3}, {Codon: "TTA", Frequency: 0.05}},
		"A": {{Codon: "GCC", Frequency: 0.4}},
	})
	if err != nil {
		t.Fatalf("unexpected error building table: %v", err)
	}
	return table
}

func TestNewTableRejectsEmpty(t *testing.T) {
	if _, err := NewTable(nil); err == nil {
		t.Errorf("expected an error for an empty table")
	}
}

func TestNewTableRejectsAminoWithNoCodons(t *testing.T) {
	if _, err := NewTable(map[string][]Triplet{"L": {}}); err == nil {
		t.Errorf("expected an error for an amino acid with no codons")
	}
}

func TestNewTableRejectsNonTriplet(t *testing.T) {
	if _, err := NewTable(map[string][]Triplet{"L": {{Codon: "CT", Frequency: 1}}}); err == nil {
		t.Errorf("expected an error for a non-triplet codon")
	}
}

func TestAminoForAndFrequencyOf(t *testing.T) {
	table := sampleTable(t)
	amino, ok := table.AminoFor("CTG")
	if !ok || amino != "L" {
		t.Errorf("AminoFor(CTG) = (%s, %v), want (L, true)", amino, ok)
	}
	freq, ok := table.FrequencyOf("CTG")
	if !ok || freq != 0.5 {
		t.Errorf("FrequencyOf(CTG) = (%v, %v), want (0.5, true)", freq, ok)
	}
	if _, ok := table.AminoFor("XXX"); ok {
		t.Errorf("expected AminoFor to report false for an unknown codon")
	}
}

func TestTripletsForAminoFiltersAndSorts(t *testing.T) {
	table := sampleTable(t)
	triplets, err := table.TripletsForAmino("L", 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(triplets) != 2 {
		t.Fatalf("expected 2 codons to survive the threshold, got %d", len(triplets))
	}
	if triplets[0].Codon != "CTG" || triplets[1].Codon != "CTC" {
		t.Errorf("expected descending frequency order, got %v", triplets)
	}
}

func TestTripletsForAminoUnknownAmino(t *testing.T) {
	table := sampleTable(t)
	if _, err := table.TripletsForAmino("Z", 0); err == nil {
		t.Errorf("expected an error for an unknown amino acid")
	}
}

func TestTripletsForAminoAllFilteredOut(t *testing.T) {
	table := sampleTable(t)
	if _, err := table.TripletsForAmino("L", 0.9); err == nil {
		t.Errorf("expected an error when no codon survives the threshold")
	}
}

func TestTripletsForAminos(t *testing.T) {
	table := sampleTable(t)
	triplets, err := table.TripletsForAminos([]string{"L", "A"}, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(triplets) != 3 {
		t.Errorf("expected 3 total codons across L and A, got %d", len(triplets))
	}
}

func TestChooseWeightedCodonOnlyPicksSurvivors(t *testing.T) {
	table := sampleTable(t)
	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		codon, err := table.ChooseWeightedCodon(rng, "L", 0.1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if codon != "CTG" && codon != "CTC" {
			t.Errorf("ChooseWeightedCodon picked %q, which should have been filtered out by the threshold", codon)
		}
		seen[codon] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected both surviving codons to be drawn at least once over 200 draws, saw %v", seen)
	}
}

func TestChooseWeightedCodonUnknownAmino(t *testing.T) {
	table := sampleTable(t)
	rng := rand.New(rand.NewSource(1))
	if _, err := table.ChooseWeightedCodon(rng, "Z", 0); err == nil {
		t.Errorf("expected an error for an unknown amino acid")
	}
}

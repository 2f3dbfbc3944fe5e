package main

import "testing"

func TestParseMutations(t *testing.T) {
	mutations, err := parseMutations([]string{"E51L", "A12G"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mutations) != 2 {
		t.Fatalf("expected 2 mutations, got %d", len(mutations))
	}
	if mutations[0].OldAmino != "E" || mutations[0].NewAmino != "L" {
		t.Errorf("unexpected first mutation: %+v", mutations[0])
	}
}

func TestParseMutationsEmpty(t *testing.T) {
	mutations, err := parseMutations(nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mutations) != 0 {
		t.Errorf("expected no mutations, got %d", len(mutations))
	}
}

func TestParseMutationsRejectsInvalid(t *testing.T) {
	if _, err := parseMutations([]string{"bad"}, 0); err == nil {
		t.Errorf("expected an error for an invalid mutation string")
	}
}

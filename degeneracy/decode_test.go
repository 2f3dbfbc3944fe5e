package degeneracy

import (
	"reflect"
	"testing"

	"github.com/bebop/mutmaker/codonusage"
)

func testTable(t *testing.T) *codonusage.Table {
	t.Helper()
	table, err := codonusage.NewTable(map[string][]codonusage.Triplet{
		"L": {{Codon: "CTG", Frequency: 0.5}, {Codon: "CTC", Frequency: 0.3}},
		"V": {{Codon: "GTG", Frequency: 0.5}, {Codon: "GTC", Frequency: 0.3}},
		"A": {{Codon: "GCG", Frequency: 0.4}},
	})
	if err != nil {
		t.Fatalf("unexpected error building table: %v", err)
	}
	return table
}

func TestDecodeConcreteCodon(t *testing.T) {
	table := testTable(t)
	aminos, err := Decode("CTG", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(aminos, []string{"L"}) {
		t.Errorf("Decode(CTG) = %v, want [L]", aminos)
	}
}

func TestDecodeDegenerateUnion(t *testing.T) {
	table := testTable(t)
	// position 1: C|G = S, position 2: T|T = T, position 3: G|G = G
	aminos, err := Decode("STG", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(aminos, []string{"L", "V"}) {
		t.Errorf("Decode(STG) = %v, want [L V]", aminos)
	}
}

func TestDecodeSkipsUnknownTriplets(t *testing.T) {
	table := testTable(t)
	// N at every position includes many triplets unknown to this small table.
	aminos, err := Decode("NNN", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, amino := range aminos {
		if amino != "L" && amino != "V" && amino != "A" {
			t.Errorf("Decode(NNN) produced an amino acid outside the table: %s", amino)
		}
	}
}

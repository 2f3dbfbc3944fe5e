package sequence

import (
	"fmt"
	"sort"

	"github.com/bebop/mutmaker/transform"
)

// DNASequenceForMutagenesis pins a template DNA sequence together with the
// zero-based codon-start offsets a design is allowed to touch, with the
// offsets checked once, at construction. The ssm, qclm and pas request
// types carry their template as a plain string and do not use this type.
type DNASequenceForMutagenesis struct {
	Sequence       string
	MutableOffsets []int
}

// NewDNASequenceForMutagenesis validates that every offset lands on a codon
// boundary inside sequence, and stores the offsets sorted and deduplicated.
func NewDNASequenceForMutagenesis(dnaSequence string, offsets []int) (*DNASequenceForMutagenesis, error) {
	if len(dnaSequence) == 0 {
		return nil, fmt.Errorf("sequence: template sequence must not be empty")
	}
	seen := make(map[int]bool, len(offsets))
	unique := make([]int, 0, len(offsets))
	for _, offset := range offsets {
		if offset < 0 || offset+CodonLength > len(dnaSequence) {
			return nil, fmt.Errorf("sequence: mutable offset %d is out of bounds for a sequence of length %d", offset, len(dnaSequence))
		}
		if offset%CodonLength != 0 {
			return nil, fmt.Errorf("sequence: mutable offset %d does not land on a codon boundary", offset)
		}
		if seen[offset] {
			continue
		}
		seen[offset] = true
		unique = append(unique, offset)
	}
	sort.Ints(unique)
	return &DNASequenceForMutagenesis{Sequence: dnaSequence, MutableOffsets: unique}, nil
}

// Codon returns the wild-type codon starting at offset.
func (d *DNASequenceForMutagenesis) Codon(offset int) (string, error) {
	if offset < 0 || offset+CodonLength > len(d.Sequence) {
		return "", fmt.Errorf("sequence: offset %d out of bounds", offset)
	}
	return d.Sequence[offset : offset+CodonLength], nil
}

// ReverseComplement returns the reverse complement of the full template,
// adapted from transform.ReverseComplement.
func (d *DNASequenceForMutagenesis) ReverseComplement() string {
	return transform.ReverseComplement(d.Sequence)
}

// IsMutable reports whether offset is one of the sequence's mutable codon
// starts.
func (d *DNASequenceForMutagenesis) IsMutable(offset int) bool {
	for _, o := range d.MutableOffsets {
		if o == offset {
			return true
		}
	}
	return false
}

package sitesplit

import (
	"fmt"
	"sort"

	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/sequence"
)

// ConcreteTripletMutation is a single concrete (or degenerate, once
// merged with another via DegenerateWith) codon mutation at a fixed
// position.
type ConcreteTripletMutation struct {
	Position int
	Codon    string
}

// DegenerateWith returns a mutation covering both c and other, by taking
// the componentwise union of their codons. Both must share the same
// position.
func (c ConcreteTripletMutation) DegenerateWith(other ConcreteTripletMutation) (ConcreteTripletMutation, error) {
	if c.Position != other.Position {
		return ConcreteTripletMutation{}, fmt.Errorf("sitesplit: cannot merge mutations at different positions (%d, %d)", c.Position, other.Position)
	}
	union, err := sequence.UnionCodon(c.Codon, other.Codon)
	if err != nil {
		return ConcreteTripletMutation{}, err
	}
	return ConcreteTripletMutation{Position: c.Position, Codon: union}, nil
}

// DifferentBases counts how many of the three codon positions differ
// between c and other.
func (c ConcreteTripletMutation) DifferentBases(other ConcreteTripletMutation) (int, error) {
	return sequence.DifferentBases(c.Codon, other.Codon)
}

// ConcreteTriplets returns one ConcreteTripletMutation per codon that
// encodes any of the site's requested amino acids, above
// frequencyThreshold.
func (s *MutationSite) ConcreteTriplets(table *codonusage.Table, frequencyThreshold float64) ([]ConcreteTripletMutation, error) {
	triplets, err := table.TripletsForAminos(s.NewAminos, frequencyThreshold)
	if err != nil {
		return nil, err
	}
	out := make([]ConcreteTripletMutation, len(triplets))
	for i, t := range triplets {
		out[i] = ConcreteTripletMutation{Position: s.Position, Codon: t.Codon}
	}
	return out, nil
}

// Boundary is the widest window, in parent-sequence coordinates, a primer
// covering a site may span: [MinStart, MaxEnd).
type Boundary struct {
	MinStart int
	MaxEnd   int
}

// MutationSiteSequence strings together one or more adjacent mutation
// sites that a single pair of QCLM/MSDM primers will mutate together.
type MutationSiteSequence struct {
	OrderedMutations []*MutationSite
	Position         int
	Length           int
	PrimerMinStart   int
	PrimerMaxEnd     int
	ConcreteMutations [][]ConcreteTripletMutation // cartesian product across sites
	AminosCount      int
}

// NewMutationSiteSequence combines mutations (sorted by position) into a
// single sequence, computing every combination of concrete triplet
// mutations across the sites (the cartesian product) and the overall
// amino acid combination count.
func NewMutationSiteSequence(mutations []*MutationSite, table *codonusage.Table, frequencyThreshold float64, boundaries map[*MutationSite]Boundary) (*MutationSiteSequence, error) {
	if len(mutations) == 0 {
		return nil, fmt.Errorf("sitesplit: a mutation site sequence needs at least one site")
	}
	ordered := append([]*MutationSite(nil), mutations...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	first, last := ordered[0], ordered[len(ordered)-1]
	firstBoundary, ok := boundaries[first]
	if !ok {
		return nil, fmt.Errorf("sitesplit: missing primer boundary for site at %d", first.Position)
	}
	lastBoundary, ok := boundaries[last]
	if !ok {
		return nil, fmt.Errorf("sitesplit: missing primer boundary for site at %d", last.Position)
	}

	perSite := make([][]ConcreteTripletMutation, len(ordered))
	aminosCount := 1
	for i, site := range ordered {
		triplets, err := site.ConcreteTriplets(table, frequencyThreshold)
		if err != nil {
			return nil, err
		}
		perSite[i] = triplets
		aminosCount *= len(site.NewAminos)
	}

	return &MutationSiteSequence{
		OrderedMutations:  ordered,
		Position:          first.Position,
		Length:            last.End() - first.Position,
		PrimerMinStart:    firstBoundary.MinStart,
		PrimerMaxEnd:      lastBoundary.MaxEnd,
		ConcreteMutations: cartesianTriplets(perSite),
		AminosCount:       aminosCount,
	}, nil
}

// HasOverlap reports whether s and other share any mutation site.
func (s *MutationSiteSequence) HasOverlap(other *MutationSiteSequence) bool {
	for _, m := range other.OrderedMutations {
		for _, mine := range s.OrderedMutations {
			if mine == m {
				return true
			}
		}
	}
	return false
}

// Start is the sequence's first site's codon start.
func (s *MutationSiteSequence) Start() int { return s.Position }

// End is just past the sequence's last site's codon.
func (s *MutationSiteSequence) End() int { return s.Position + s.Length }

// AminoCombinations returns every combination of target amino acids, one
// per site, in site order.
func (s *MutationSiteSequence) AminoCombinations() [][]string {
	perSite := make([][]string, len(s.OrderedMutations))
	for i, site := range s.OrderedMutations {
		perSite[i] = site.NewAminos
	}
	return cartesianStrings(perSite)
}

// MutationStrings returns the mutation code for each site given a chosen
// amino acid combination (as returned by AminoCombinations).
func (s *MutationSiteSequence) MutationStrings(combination []string) ([]string, error) {
	if len(combination) != len(s.OrderedMutations) {
		return nil, fmt.Errorf("sitesplit: amino combination has %d entries, expected %d", len(combination), len(s.OrderedMutations))
	}
	out := make([]string, len(combination))
	for i, amino := range combination {
		s, err := s.OrderedMutations[i].MutationString(amino)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func cartesianTriplets(lists [][]ConcreteTripletMutation) [][]ConcreteTripletMutation {
	result := [][]ConcreteTripletMutation{{}}
	for _, list := range lists {
		var next [][]ConcreteTripletMutation
		for _, prefix := range result {
			for _, item := range list {
				combo := append(append([]ConcreteTripletMutation{}, prefix...), item)
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}

func cartesianStrings(lists [][]string) [][]string {
	result := [][]string{{}}
	for _, list := range lists {
		var next [][]string
		for _, prefix := range result {
			for _, item := range list {
				combo := append(append([]string{}, prefix...), item)
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}

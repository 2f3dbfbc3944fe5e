/*
Package sitesplit models mutation sites and the ways they can be grouped
into contiguous "site sequences" and split across a set of QCLM/MSDM
primers: a MutationSite is one or more amino-acid substitutions requested
at the same codon; a MutationSiteSequence strings adjacent sites together
so a single primer pair can mutate all of them at once; a Split is one way
of carving an ordered list of sites into site sequences.
*/
package sitesplit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AminoMutation is a single requested substitution from one amino acid to
// another at a fixed codon position, parsed from a mutation string such
// as "E42L" (glutamate 42 to leucine).
type AminoMutation struct {
	Position         int // zero-based base offset of the codon within the gene of interest
	OldAmino         string
	NewAmino         string
	OriginalString   string
	OriginalPosition int // one-based codon position, as written in the mutation string
}

// ParseMutation parses a mutation string of the form "<old><position><new>"
// (e.g. "E42L", or "E42X" for "any amino acid") relative to geneOffset, the
// base offset at which the gene of interest begins within its parent
// sequence.
func ParseMutation(mutationString string, geneOffset int) (AminoMutation, error) {
	if len(mutationString) < 3 {
		return AminoMutation{}, fmt.Errorf("sitesplit: mutation string %q is too short", mutationString)
	}
	oldAmino := string(mutationString[0])
	newAmino := string(mutationString[len(mutationString)-1])
	onePosition, err := strconv.Atoi(mutationString[1 : len(mutationString)-1])
	if err != nil || onePosition < 1 {
		return AminoMutation{}, fmt.Errorf("sitesplit: mutation string %q must have a positive codon position", mutationString)
	}

	return AminoMutation{
		Position:         (onePosition-1)*3 + geneOffset,
		OldAmino:         oldAmino,
		NewAmino:         newAmino,
		OriginalString:   mutationString,
		OriginalPosition: onePosition,
	}, nil
}

// MutationSite groups every requested amino-acid substitution at a single
// codon position, since QCLM/MSDM design one degenerate (or concrete)
// codon per site to cover all of them at once.
type MutationSite struct {
	Position         int
	OriginalPosition int
	OldAmino         string
	NewAminos        []string // sorted, unique, includes OldAmino

	byTargetAmino map[string]AminoMutation
}

// NewMutationSite groups a set of single-amino mutations that must all
// share the same codon position and source amino acid.
func NewMutationSite(mutations []AminoMutation) (*MutationSite, error) {
	if len(mutations) == 0 {
		return nil, fmt.Errorf("sitesplit: a mutation site needs at least one mutation")
	}
	position := mutations[0].Position
	oldAmino := mutations[0].OldAmino
	byTarget := make(map[string]AminoMutation, len(mutations))
	newAminos := map[string]bool{oldAmino: true}

	for _, m := range mutations {
		if m.Position != position {
			return nil, fmt.Errorf("sitesplit: mutations for a multi-target site must be on the same position")
		}
		if m.OldAmino != oldAmino {
			return nil, fmt.Errorf("sitesplit: mutations on the same position must share the same source amino acid")
		}
		byTarget[m.NewAmino] = m
		newAminos[m.NewAmino] = true
	}

	sorted := make([]string, 0, len(newAminos))
	for amino := range newAminos {
		sorted = append(sorted, amino)
	}
	sort.Strings(sorted)

	return &MutationSite{
		Position:         position,
		OriginalPosition: mutations[0].OriginalPosition,
		OldAmino:         oldAmino,
		NewAminos:        sorted,
		byTargetAmino:    byTarget,
	}, nil
}

// Start is the site's codon start offset.
func (s *MutationSite) Start() int { return s.Position }

// End is the offset just past the site's codon.
func (s *MutationSite) End() int { return s.Position + 3 }

// MutationString returns the mutation code for targetAmino, e.g. "E42L".
// When targetAmino equals the site's source amino acid it synthesizes a
// (not originally requested) "no-op" mutation string like "E42E", since
// that combination is always a valid member of the site's amino set.
func (s *MutationSite) MutationString(targetAmino string) (string, error) {
	if targetAmino == s.OldAmino {
		return s.OldAmino + strconv.Itoa(s.OriginalPosition) + targetAmino, nil
	}
	m, ok := s.byTargetAmino[targetAmino]
	if !ok {
		return "", fmt.Errorf("sitesplit: %q is not one of this site's target amino acids", targetAmino)
	}
	return m.OriginalString, nil
}

// GroupMutationsIntoSites groups a list of single-amino mutations into
// sites by consecutive runs of equal position, mirroring groupby
// semantics: mutations must already be ordered by position for mutations
// at the same site to land in one group.
func GroupMutationsIntoSites(mutations []AminoMutation) ([]*MutationSite, error) {
	var sites []*MutationSite
	i := 0
	for i < len(mutations) {
		j := i + 1
		for j < len(mutations) && mutations[j].Position == mutations[i].Position {
			j++
		}
		site, err := NewMutationSite(mutations[i:j])
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
		i = j
	}
	return sites, nil
}

func (s *MutationSite) String() string {
	return s.OldAmino + strconv.Itoa(s.OriginalPosition) + strings.Join(s.NewAminos, "")
}

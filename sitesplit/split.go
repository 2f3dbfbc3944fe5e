package sitesplit

import (
	"strconv"
	"strings"

	"github.com/bebop/mutmaker/codonusage"
)

// Split is one way of carving an ordered list of mutation sites into
// contiguous MutationSiteSequences, each of which will be covered by its
// own pair of QCLM/MSDM primers.
type Split struct {
	SiteSequences []*MutationSiteSequence
}

// key returns a canonical string identifying which sites fall in which
// sequence, so that Splits can dedupe equivalent partitions.
func (s *Split) key() string {
	var b strings.Builder
	for i, seq := range s.SiteSequences {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, site := range seq.OrderedMutations {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(site.Position))
		}
	}
	return b.String()
}

// Splits is a deduplicated collection of Split values.
type Splits struct {
	all  []*Split
	seen map[string]bool
}

// NewSplits returns an empty Splits collection.
func NewSplits() *Splits {
	return &Splits{seen: make(map[string]bool)}
}

// Add inserts split if an equivalent partition hasn't already been added,
// and reports whether it was newly added.
func (s *Splits) Add(split *Split) bool {
	key := split.key()
	if s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.all = append(s.all, split)
	return true
}

// All returns every distinct split added so far.
func (s *Splits) All() []*Split {
	return s.all
}

// EnumerateSplits generates every way of partitioning the ordered sites
// into contiguous MutationSiteSequences of at most maxGroupSize sites
// each.
func EnumerateSplits(sites []*MutationSite, table *codonusage.Table, frequencyThreshold float64, boundaries map[*MutationSite]Boundary, maxGroupSize int) (*Splits, error) {
	splits := NewSplits()
	if len(sites) == 0 {
		return splits, nil
	}

	var partitions [][][]*MutationSite
	if err := enumeratePartitions(sites, maxGroupSize, nil, &partitions); err != nil {
		return nil, err
	}

	for _, groups := range partitions {
		split := &Split{}
		for _, group := range groups {
			seq, err := NewMutationSiteSequence(group, table, frequencyThreshold, boundaries)
			if err != nil {
				return nil, err
			}
			split.SiteSequences = append(split.SiteSequences, seq)
		}
		splits.Add(split)
	}
	return splits, nil
}

// enumeratePartitions recursively appends every way of splitting
// remaining into contiguous groups of size 1..maxGroupSize to *out, with
// prefix holding the groups chosen so far.
func enumeratePartitions(remaining []*MutationSite, maxGroupSize int, prefix [][]*MutationSite, out *[][][]*MutationSite) error {
	if len(remaining) == 0 {
		combo := append([][]*MutationSite{}, prefix...)
		*out = append(*out, combo)
		return nil
	}
	limit := maxGroupSize
	if limit > len(remaining) {
		limit = len(remaining)
	}
	for size := 1; size <= limit; size++ {
		group := remaining[:size]
		if err := enumeratePartitions(remaining[size:], maxGroupSize, append(prefix, group), out); err != nil {
			return err
		}
	}
	return nil
}

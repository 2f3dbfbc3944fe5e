/*
Package primer defines the Primer value type shared by the SSM and QCLM
engines: a primer is a position, length and direction within a parent
sequence, together with the handful of derived measurements (GC content,
GC clamp, 3'/5' end sizes relative to a mutation, melting temperature)
every engine needs to score one.
*/
package primer

import (
	"fmt"

	"github.com/bebop/mutmaker/checks"
)

// Direction is the strand a primer anneals to.
type Direction int

const (
	// Forward primers read in the same order as the parent sequence.
	Forward Direction = iota
	// Reverse primers read in the parent sequence's reverse complement.
	Reverse
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "reverse"
}

// TmCalculator is the minimal capability a caller must supply for
// MeltingTemp: nothing in this package depends on a concrete thermo
// implementation.
type TmCalculator interface {
	DuplexTm(seq string) (float64, error)
}

// Primer is a primer sequence together with its position, length and
// direction within a parent sequence, in the parent's normal (5'->3')
// order.
type Primer struct {
	Direction Direction
	Start     int // anchor position within parentSequence: the primer's 5' end (leftmost base if Forward, rightmost base if Reverse)
	Length    int
	Sequence  string // the primer's bases in the parent's normal order (not reverse-complemented for a Reverse primer)

	normalStart int
	normalEnd   int
}

// New builds a Primer anchored at start within parentSequence, running
// length bases in the given direction.
func New(parentSequence string, direction Direction, start, length int) (*Primer, error) {
	if length <= 0 {
		return nil, fmt.Errorf("primer: length must be greater than zero")
	}
	if start < 0 || start >= len(parentSequence) {
		return nil, fmt.Errorf("primer: start %d is not within the parent sequence", start)
	}

	p := &Primer{Direction: direction, Start: start, Length: length}

	switch direction {
	case Forward:
		end := start + length
		if end > len(parentSequence) {
			return nil, fmt.Errorf("primer: forward primer end %d is past the end of the parent sequence", end)
		}
		p.Sequence = parentSequence[start:end]
		p.normalStart = start
		p.normalEnd = end
	case Reverse:
		begin := start - length + 1
		if begin < 0 {
			return nil, fmt.Errorf("primer: reverse primer start %d is before the beginning of the parent sequence", begin)
		}
		p.Sequence = parentSequence[begin : start+1]
		p.normalStart = begin
		p.normalEnd = start + 1
	default:
		return nil, fmt.Errorf("primer: unknown direction %v", direction)
	}

	return p, nil
}

// NormalStart is the primer's start offset in the parent sequence's
// normal (left-to-right) coordinate system, regardless of direction.
func (p *Primer) NormalStart() int { return p.normalStart }

// NormalEnd is the primer's end offset (exclusive) in the parent
// sequence's normal coordinate system.
func (p *Primer) NormalEnd() int { return p.normalEnd }

// Len implements the Sized contract the original tool's Primer exposes.
func (p *Primer) Len() int { return p.Length }

// GCContent returns the fraction of G/C bases in the primer.
func (p *Primer) GCContent() float64 {
	return checks.GcContent(p.Sequence)
}

// GCClamp counts the run of G/C bases at the primer's 3' end (reading the
// normal-order sequence backwards for a forward primer, forwards for a
// reverse primer, since a reverse primer's normal-order sequence already
// ends at its 5' side).
func (p *Primer) GCClamp() int {
	clamp := 0
	scan := func(seq string) int {
		count := 0
		for i := 0; i < len(seq); i++ {
			if seq[i] == 'G' || seq[i] == 'C' {
				count++
			} else {
				break
			}
		}
		return count
	}
	if p.Direction == Forward {
		clamp = scan(reverseString(p.Sequence))
	} else {
		clamp = scan(p.Sequence)
	}
	return clamp
}

// FiveEndSizeFromMutation returns the number of bases between the
// primer's 5' end and a mutation occupying [mutationPosition,
// mutationPosition+mutationLength) in the parent sequence's normal
// coordinates.
func (p *Primer) FiveEndSizeFromMutation(mutationPosition, mutationLength int) int {
	if p.Direction == Forward {
		return mutationPosition - p.normalStart
	}
	return p.normalEnd - mutationPosition - mutationLength
}

// ThreeEndSizeFromMutation returns the number of bases between a mutation
// and the primer's 3' end.
func (p *Primer) ThreeEndSizeFromMutation(mutationPosition, mutationLength int) int {
	if p.Direction == Forward {
		return p.normalEnd - mutationPosition - mutationLength
	}
	return mutationPosition - p.normalStart
}

// ThreeEndWithSize returns the last `size` bases of the primer's 3' end,
// in the primer's own sequence order.
func (p *Primer) ThreeEndWithSize(size int) (string, error) {
	if size <= 0 || size > len(p.Sequence) {
		return "", fmt.Errorf("primer: invalid 3' end size %d for a primer of length %d", size, len(p.Sequence))
	}
	if p.Direction == Forward {
		return p.Sequence[len(p.Sequence)-size:], nil
	}
	return p.Sequence[:size], nil
}

// ThreeEndSequence returns the primer's 3' end sequence relative to a
// mutation at [mutationPosition, mutationPosition+mutationLength).
func (p *Primer) ThreeEndSequence(mutationPosition, mutationLength int) (string, error) {
	size := p.ThreeEndSizeFromMutation(mutationPosition, mutationLength)
	if size <= 0 {
		return "", nil
	}
	return p.ThreeEndWithSize(size)
}

// MeltingTemp returns the primer's full-length melting temperature.
func (p *Primer) MeltingTemp(calc TmCalculator) (float64, error) {
	return calc.DuplexTm(p.Sequence)
}

// Overlap returns the overlapping region (in this primer's own sequence
// order) and its length between p and other, or ("", 0) if they don't
// overlap in normal coordinates.
func (p *Primer) Overlap(other *Primer) (string, int) {
	start := max(p.normalStart, other.normalStart)
	end := min(p.normalEnd, other.normalEnd)
	if start >= end {
		return "", 0
	}
	startOffset := start - p.normalStart
	endOffset := end - p.normalStart
	return p.Sequence[startOffset:endOffset], endOffset - startOffset
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

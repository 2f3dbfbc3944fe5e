package pas

import (
	"math"
	"sort"
	"time"

	"github.com/bebop/mutmaker/engine"
)

// overlapWindow is the melting-temperature band a single Phase 3 sweep
// iteration allows an overlap to fall in: [Min, Max], biased toward Opt.
type overlapWindow struct {
	Min, Max, Opt float64
}

// lengthsByOptimality returns every length in [cfg.MinOligoSize,
// cfg.MaxOligoSize], ordered by distance from cfg.OptOligoSize so the
// search tries the most desirable fragment length first and only backs
// off when it fails to find a usable overlap.
func lengthsByOptimality(cfg Config) []int {
	lengths := make([]int, 0, cfg.MaxOligoSize-cfg.MinOligoSize+1)
	for l := cfg.MinOligoSize; l <= cfg.MaxOligoSize; l++ {
		lengths = append(lengths, l)
	}
	sort.SliceStable(lengths, func(i, j int) bool {
		return math.Abs(float64(lengths[i]-cfg.OptOligoSize)) < math.Abs(float64(lengths[j]-cfg.OptOligoSize))
	})
	return lengths
}

// crossesSite reports whether end falls within one of protos' reserved
// spans [Start, End) - a reserved mutation site, or a proto-fragment
// merging several adjacent ones. An end on a span's first base counts as
// within it.
func crossesSite(end int, protos []protoFragment) bool {
	for _, p := range protos {
		if p.Start() <= end && end < p.End() {
			return true
		}
	}
	return false
}

// findOverlap searches for the best overlap ending at end: the start
// offset in [end-MaxOverlapLength, end-MinOverlapLength] whose duplex
// melting temperature is closest to ow.Opt while remaining within
// [ow.Min, ow.Max].
func findOverlap(gene string, end int, ow overlapWindow, cfg Config, calc engine.TmCalculator) (start int, temp float64, ok bool) {
	lowest := end - cfg.MaxOverlapLength
	if lowest < 0 {
		lowest = 0
	}
	highest := end - cfg.MinOverlapLength
	if highest < 0 {
		return 0, 0, false
	}

	bestStart := -1
	bestTemp := 0.0
	bestDelta := math.Inf(1)
	for s := lowest; s <= highest; s++ {
		tm, err := calc.DuplexTm(gene[s:end])
		if err != nil {
			continue
		}
		if tm < ow.Min || tm > ow.Max {
			continue
		}
		delta := math.Abs(tm - ow.Opt)
		if delta < bestDelta {
			bestStart, bestTemp, bestDelta = s, tm, delta
		}
	}
	if bestStart < 0 {
		return 0, 0, false
	}
	return bestStart, bestTemp, true
}

// buildFragments recursively chains fragments covering gene[pos:], backing
// off to the next-best fragment length whenever the preferred length
// admits no valid overlap or runs into a reserved proto-fragment, and
// giving up once deadline passes.
func buildFragments(gene string, pos int, protos []protoFragment, cfg Config, ow overlapWindow, calc engine.TmCalculator, deadline time.Time) ([]Fragment, bool) {
	if pos >= len(gene) {
		return nil, true
	}
	if time.Now().After(deadline) {
		return nil, false
	}

	for _, length := range lengthsByOptimality(cfg) {
		end := pos + length
		if end > len(gene) {
			continue
		}
		if end < len(gene) && crossesSite(end, protos) {
			continue
		}

		if end == len(gene) {
			return []Fragment{{Start: pos, End: end}}, true
		}

		overlapStart, overlapTemp, ok := findOverlap(gene, end, ow, cfg, calc)
		if !ok {
			continue
		}

		remaining := make([]protoFragment, 0, len(protos))
		for _, p := range protos {
			if p.Start() >= overlapStart {
				remaining = append(remaining, p)
			}
		}

		rest, ok := buildFragments(gene, overlapStart, remaining, cfg, ow, calc, deadline)
		if !ok {
			continue
		}
		fragment := Fragment{Start: pos, End: end, Overlap: gene[overlapStart:end], OverlapTemp: overlapTemp}
		return append([]Fragment{fragment}, rest...), true
	}

	return nil, false
}

// splitInTwo looks for a single internal boundary in fragment that
// neither crosses a reserved proto-fragment nor falls outside the
// configured oligo size range, returning the two fragments that would
// result from cutting it there. Used to turn an odd-length solution even
// when the sweep's greedy chain happened to land on an odd count.
func splitInTwo(gene string, fragment Fragment, protos []protoFragment, cfg Config, ow overlapWindow, calc engine.TmCalculator) (Fragment, Fragment, bool) {
	length := fragment.End - fragment.Start
	if length < 2*cfg.MinOligoSize {
		return Fragment{}, Fragment{}, false
	}

	mid := fragment.Start + length/2
	bestDelta := math.Inf(1)
	var bestLeft, bestRight Fragment
	found := false

	for offset := 0; offset <= cfg.MaxOligoSize; offset++ {
		for _, candidate := range []int{mid + offset, mid - offset} {
			if candidate <= fragment.Start+cfg.MinOligoSize || candidate >= fragment.End-cfg.MinOligoSize {
				continue
			}
			if crossesSite(candidate, protos) {
				continue
			}
			overlapStart, overlapTemp, ok := findOverlap(gene, candidate, ow, cfg, calc)
			if !ok || overlapStart <= fragment.Start {
				continue
			}
			delta := math.Abs(float64(candidate - mid))
			if delta < bestDelta {
				bestDelta = delta
				bestLeft = Fragment{Start: fragment.Start, End: candidate, Overlap: gene[overlapStart:candidate], OverlapTemp: overlapTemp}
				bestRight = Fragment{Start: overlapStart, End: fragment.End, Overlap: fragment.Overlap, OverlapTemp: fragment.OverlapTemp}
				found = true
			}
		}
		if found {
			break
		}
	}

	return bestLeft, bestRight, found
}

package thermo

import "github.com/bebop/mutmaker/transform"

// HairpinTm estimates the melting temperature of the most stable hairpin a
// single-stranded sequence can fold into, by scanning for the longest
// self-complementary stretch (an arm that pairs with its own reverse
// complement elsewhere in the sequence, with room for an unpaired loop in
// between) and evaluating that stretch's duplex Tm. If no qualifying
// stretch of at least the configured minimum arm length exists, HairpinTm
// returns 0: "no stable structure" rather than failing.
func (c *Calculator) HairpinTm(seq string) (float64, error) {
	return c.cache.singleton("hairpin:"+seq, func() float64 {
		arm := longestHairpinArm(seq, c.config.MinArmLength)
		if arm == "" {
			return 0
		}
		return c.round(c.duplexTm(arm))
	}), nil
}

// HomodimerTm estimates the melting temperature of the most stable duplex
// two copies of seq can form with each other, by scanning for the longest
// run of seq that is complementary to a run elsewhere in seq (including
// itself, offset). Returns 0 when no qualifying run of at least the
// configured minimum arm length is found.
func (c *Calculator) HomodimerTm(seq string) (float64, error) {
	return c.cache.singleton("homodimer:"+seq, func() float64 {
		arm := longestCrossComplementaryArm(seq, seq, c.config.MinArmLength)
		if arm == "" {
			return 0
		}
		return c.round(c.duplexTm(arm))
	}), nil
}

// HeterodimerTm estimates the melting temperature of the most stable
// duplex a and b can form with each other. Returns 0 when no qualifying
// run of at least the configured minimum arm length is found.
func (c *Calculator) HeterodimerTm(a, b string) (float64, error) {
	return c.cache.pairSingleton("heterodimer:"+a, b, func() float64 {
		arm := longestCrossComplementaryArm(a, b, c.config.MinArmLength)
		if arm == "" {
			return 0
		}
		return c.round(c.duplexTm(arm))
	}), nil
}

// longestHairpinArm finds the longest stretch of seq's prefix that is
// complementary to a stretch of seq's suffix, leaving room for at least a
// 3-base loop between them, and returns that stretch (read 5'->3' on the
// strand), or "" if nothing of at least minArmLength qualifies.
func longestHairpinArm(seq string, minArmLength int) string {
	const minLoop = 3
	best := ""
	n := len(seq)
	for armLen := n / 2; armLen >= minArmLength; armLen-- {
		for start := 0; start+2*armLen+minLoop <= n; start++ {
			left := seq[start : start+armLen]
			rightStart := n - armLen
			for rightStart >= start+armLen+minLoop {
				right := seq[rightStart : rightStart+armLen]
				if left == transform.ReverseComplement(right) {
					if len(left) > len(best) {
						best = left
					}
				}
				rightStart--
			}
		}
		if best != "" {
			return best
		}
	}
	return best
}

// longestCrossComplementaryArm finds the longest run in a that is the
// reverse complement of some run in b, returning that run from a, or ""
// if nothing of at least minArmLength qualifies.
func longestCrossComplementaryArm(a, b string, minArmLength int) string {
	best := ""
	for armLen := min(len(a), len(b)); armLen >= minArmLength; armLen-- {
		for i := 0; i+armLen <= len(a); i++ {
			candidate := a[i : i+armLen]
			rc := transform.ReverseComplement(candidate)
			for j := 0; j+armLen <= len(b); j++ {
				if b[j:j+armLen] == rc {
					return candidate
				}
			}
		}
	}
	return best
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package degeneracy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/sequence"
)

// Config bounds the randomized set-cover search.
type Config struct {
	FrequencyThreshold float64
	SamplesPerRound    int           // candidate unions tried per combination, defaults to 50
	MaxRecursionDepth  int           // defaults to len(aminos), i.e. no artificial cap beyond the natural one
	Budget             time.Duration // wall-clock budget for the whole Cover call, defaults to 5s
}

func (c Config) withDefaults(aminoCount int) Config {
	if c.SamplesPerRound == 0 {
		c.SamplesPerRound = 50
	}
	if c.MaxRecursionDepth == 0 {
		c.MaxRecursionDepth = aminoCount
	}
	if c.Budget == 0 {
		c.Budget = 5 * time.Second
	}
	return c
}

// Cover finds a minimal set of degenerate codons whose concrete
// expansions decode to exactly aminos, following the original tool's
// randomized search: try progressively smaller combinations of amino
// acids, find the degenerate union that covers each combination with the
// fewest extra amino acids (over 50 random trials, tie-broken by maximum
// codon-frequency product), and recurse on whatever amino acids remain
// uncovered. Both recursion depth and wall-clock time are bounded; if
// either is exhausted, Cover falls back to one concrete, frequency-
// weighted codon per remaining amino acid rather than failing outright.
func Cover(rng *rand.Rand, table *codonusage.Table, aminos []string, cfg Config) (map[string][]string, error) {
	if len(aminos) == 0 {
		return nil, fmt.Errorf("degeneracy: aminos must not be empty")
	}
	cfg = cfg.withDefaults(len(aminos))
	deadline := time.Now().Add(cfg.Budget)
	return solve(rng, table, aminos, len(aminos), cfg, deadline, 0)
}

func solve(rng *rand.Rand, table *codonusage.Table, aminos []string, maxCombinationSize int, cfg Config, deadline time.Time, depth int) (map[string][]string, error) {
	if depth >= cfg.MaxRecursionDepth || time.Now().After(deadline) {
		return fallback(rng, table, aminos, cfg)
	}

	for size := maxCombinationSize; size >= 1; size-- {
		if size < 2 {
			return fallback(rng, table, aminos, cfg)
		}

		for _, combination := range combinations(aminos, size) {
			if time.Now().After(deadline) {
				return fallback(rng, table, aminos, cfg)
			}

			codon, generated, err := findBestUnion(rng, table, combination, cfg)
			if err != nil {
				return nil, err
			}
			solution := map[string][]string{codon: generated}

			difference := setDifference(aminos, combination)
			if len(difference) > 0 {
				rest, err := solve(rng, table, difference, size, cfg, deadline, depth+1)
				if err != nil {
					return nil, err
				}
				for k, v := range rest {
					solution[k] = v
				}
			}

			if coversExactly(solution, aminos) {
				return solution, nil
			}
		}
	}

	return fallback(rng, table, aminos, cfg)
}

// fallback assigns one concrete, frequency-weighted codon per amino acid,
// used once the search budget (depth or wall clock) is exhausted.
func fallback(rng *rand.Rand, table *codonusage.Table, aminos []string, cfg Config) (map[string][]string, error) {
	solution := make(map[string][]string, len(aminos))
	for _, amino := range aminos {
		codon, err := table.ChooseWeightedCodon(rng, amino, cfg.FrequencyThreshold)
		if err != nil {
			return nil, err
		}
		solution[codon] = []string{amino}
	}
	return solution, nil
}

// BestUnion runs a single round of the randomized union search (the
// inner loop Cover recurses on) and returns the best single degenerate
// codon found for aminos, without attempting to split aminos into
// smaller combinations when no single codon covers it purely. Useful
// when a caller wants exactly one codon per site (e.g. to keep a QCLM
// primer's degenerate stretch to a single triplet) and is willing to
// accept a codon that generates a few amino acids beyond what was asked
// for.
func BestUnion(rng *rand.Rand, table *codonusage.Table, aminos []string, cfg Config) (string, []string, error) {
	cfg = cfg.withDefaults(len(aminos))
	return findBestUnion(rng, table, aminos, cfg)
}

// findBestUnion runs cfg.SamplesPerRound random trials, each drawing one
// frequency-weighted concrete codon per amino in aminos and unioning them
// into a single degenerate codon, then returns the union that decodes to
// the fewest amino acids, tie-broken by the highest product of its
// concrete codons' usage frequencies.
func findBestUnion(rng *rand.Rand, table *codonusage.Table, aminos []string, cfg Config) (string, []string, error) {
	type candidate struct {
		codon     string
		generated []string
	}
	candidates := make(map[string]candidate)

	for i := 0; i < cfg.SamplesPerRound; i++ {
		union := ""
		for _, amino := range aminos {
			codon, err := table.ChooseWeightedCodon(rng, amino, cfg.FrequencyThreshold)
			if err != nil {
				return "", nil, err
			}
			if union == "" {
				union = codon
				continue
			}
			union, err = sequence.UnionCodon(union, codon)
			if err != nil {
				return "", nil, err
			}
		}
		if _, ok := candidates[union]; ok {
			continue
		}
		generated, err := Decode(union, table)
		if err != nil {
			return "", nil, err
		}
		candidates[union] = candidate{codon: union, generated: generated}
	}

	bestLen := -1
	for _, c := range candidates {
		if bestLen == -1 || len(c.generated) < bestLen {
			bestLen = len(c.generated)
		}
	}

	bestCodon := ""
	bestFreq := -1.0
	var bestGenerated []string
	for codon, c := range candidates {
		if len(c.generated) != bestLen {
			continue
		}
		freq, err := frequencyProduct(codon, table)
		if err != nil {
			return "", nil, err
		}
		if freq > bestFreq {
			bestFreq = freq
			bestCodon = codon
			bestGenerated = c.generated
		}
	}
	return bestCodon, bestGenerated, nil
}

func combinations(items []string, k int) [][]string {
	var out [][]string
	n := len(items)
	if k > n {
		return out
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	for {
		combo := make([]string, k)
		for i, idx := range indices {
			combo[i] = items[idx]
		}
		out = append(out, combo)

		pos := k - 1
		for pos >= 0 && indices[pos] == pos+n-k {
			pos--
		}
		if pos < 0 {
			break
		}
		indices[pos]++
		for i := pos + 1; i < k; i++ {
			indices[i] = indices[i-1] + 1
		}
	}
	return out
}

func setDifference(all, subset []string) []string {
	excluded := make(map[string]bool, len(subset))
	for _, s := range subset {
		excluded[s] = true
	}
	var out []string
	for _, a := range all {
		if !excluded[a] {
			out = append(out, a)
		}
	}
	return out
}

func coversExactly(solution map[string][]string, aminos []string) bool {
	covered := make(map[string]bool)
	for _, generated := range solution {
		for _, amino := range generated {
			covered[amino] = true
		}
	}
	if len(covered) != len(uniqueStrings(aminos)) {
		return false
	}
	for _, amino := range aminos {
		if !covered[amino] {
			return false
		}
	}
	return true
}

func uniqueStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

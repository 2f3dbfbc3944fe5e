/*
Package sequence provides the primitives the mutagenesis and gene synthesis
engines are built on: plain and degenerate DNA bases, degenerate codons, and
the mutable-template type that pins where a design is allowed to change a
gene.

A degenerate base is represented as the IUPAC letter that names it (A, C, G,
T, or one of the eleven ambiguity codes). The empty set - "no base at all" -
is represented by the GapBase sentinel, following the degenerate codon
algebra used throughout the rest of this module: union is the only binary
operation a caller needs, and GapBase is its identity element.
*/
package sequence

import "fmt"

// GapBase is the empty-set degenerate base: the identity element of Union.
const GapBase byte = '_'

// basesOf maps every IUPAC nucleotide letter to the set of concrete bases it
// stands for. GapBase maps to the empty set.
var basesOf = map[byte]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'R': "AG",
	'Y': "CT",
	'S': "CG",
	'W': "AT",
	'K': "GT",
	'M': "AC",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
	'N': "ACGT",
	GapBase: "",
}

// setToLetter is the inverse of basesOf: a sorted concrete base set maps
// back to the single IUPAC letter that names it.
var setToLetter = func() map[string]byte {
	m := make(map[string]byte, len(basesOf))
	for letter, set := range basesOf {
		m[set] = letter
	}
	return m
}()

// IsValidBase reports whether b is a recognized IUPAC letter or GapBase.
func IsValidBase(b byte) bool {
	_, ok := basesOf[b]
	return ok
}

// Bases decodes a degenerate base into the concrete bases it represents, in
// a fixed canonical order (A, C, G, T). GapBase decodes to the empty string.
func Bases(b byte) (string, error) {
	set, ok := basesOf[b]
	if !ok {
		return "", fmt.Errorf("sequence: %q is not a valid IUPAC base", b)
	}
	return set, nil
}

// UnionBase returns the degenerate base whose concrete-base set is the
// union of a and b's sets. GapBase unioned with anything returns the other
// operand unchanged, matching its role as the algebra's identity element.
func UnionBase(a, b byte) (byte, error) {
	aSet, err := Bases(a)
	if err != nil {
		return 0, err
	}
	bSet, err := Bases(b)
	if err != nil {
		return 0, err
	}
	merged := mergeSortedSets(aSet, bSet)
	letter, ok := setToLetter[merged]
	if !ok {
		// can only happen if merged is empty, i.e. both operands were GapBase
		return GapBase, nil
	}
	return letter, nil
}

// mergeSortedSets merges two strings of already-sorted, unique characters
// from {A,C,G,T} into one sorted, unique string.
func mergeSortedSets(a, b string) string {
	present := [4]bool{}
	idx := func(c byte) int {
		switch c {
		case 'A':
			return 0
		case 'C':
			return 1
		case 'G':
			return 2
		default: // 'T'
			return 3
		}
	}
	for i := 0; i < len(a); i++ {
		present[idx(a[i])] = true
	}
	for i := 0; i < len(b); i++ {
		present[idx(b[i])] = true
	}
	letters := "ACGT"
	out := make([]byte, 0, 4)
	for i, ok := range present {
		if ok {
			out = append(out, letters[i])
		}
	}
	return string(out)
}

package thermo

import (
	"math"
	"strings"

	"github.com/bebop/mutmaker/transform"
)

// thermodynamics stores enthalpy (dH, kcal/mol) and entropy (dS, cal/mol-K)
// values for a nearest-neighbor base pair step.
type thermodynamics struct{ H, S float64 }

// nearestNeighborsThermodynamics holds the unified SantaLucia/Hicks nearest
// neighbor parameters, indexed by dinucleotide step.
var nearestNeighborsThermodynamics = map[string]thermodynamics{
	"AA": {-7.6, -21.3},
	"TT": {-7.6, -21.3},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7},
	"TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4},
	"AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0},
	"AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2},
	"TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9},
	"CC": {-8.0, -19.9},
}

var initThermodynamics = thermodynamics{0.2, -5.7}
var symmetryThermodynamics = thermodynamics{0, -1.4}
var terminalATThermodynamics = thermodynamics{2.2, 6.9}

// santaLucia calculates the melting temperature of a short DNA sequence
// (roughly 15-200 bp) with the nearest-neighbor method [SantaLucia, J.
// (1998) PNAS, doi:10.1073/pnas.95.4.1460].
func santaLucia(seq string, cPrimer, cNa, cMg float64) (Tm, dH, dS float64) {
	const R = 1.9872 // gas constant (cal / mol - K)

	var x float64 // symmetry factor

	dH += initThermodynamics.H
	dS += initThermodynamics.S

	if seq == transform.ReverseComplement(seq) {
		dH += symmetryThermodynamics.H
		dS += symmetryThermodynamics.S
		x = 1
	} else {
		x = 4
	}

	if seq[len(seq)-1] == 'A' || seq[len(seq)-1] == 'T' {
		dH += terminalATThermodynamics.H
		dS += terminalATThermodynamics.S
	}

	saltEffect := cNa + (cMg * 140)
	dS += 0.368 * float64(len(seq)-1) * math.Log(saltEffect)

	for i := 0; i+1 < len(seq); i++ {
		dT := nearestNeighborsThermodynamics[seq[i:i+2]]
		dH += dT.H
		dS += dT.S
	}

	Tm = dH*1000/(dS+R*math.Log(cPrimer/x)) - 273.15
	return Tm, dH, dS
}

// marmurDoty estimates the melting temperature of a very short sequence
// (<15bp) with the Marmur-Doty rule of thumb [Marmur J & Doty P (1962). J
// Mol Biol, 5, 109-118].
func marmurDoty(seq string) float64 {
	aCount := float64(strings.Count(seq, "A"))
	tCount := float64(strings.Count(seq, "T"))
	cCount := float64(strings.Count(seq, "C"))
	gCount := float64(strings.Count(seq, "G"))
	return 2*(aCount+tCount) + 4*(cCount+gCount) - 7.0
}

// wallaceTm applies the classic "2(A+T) + 4(G+C)" Wallace rule, falling
// back to santaLucia-quality short-oligo behavior isn't attempted here: the
// rule is only meaningful, and only used, for short oligos (<14 bases),
// which is exactly marmurDoty's domain, so Wallace is that same formula
// under its traditional name.
func wallaceTm(seq string) float64 {
	return marmurDoty(seq)
}

// gcTm is the GC-content empirical formula, valid roughly in the 18-150bp
// range, corrected for monovalent salt concentration.
func gcTm(seq string, saltMolar float64) float64 {
	gcFraction := gcContent(seq)
	salt := saltMolar
	if salt <= 0 {
		salt = 50e-3
	}
	return 81.5 + 16.6*math.Log10(salt) + 0.41*(gcFraction*100) - 600/float64(len(seq))
}

func gcContent(seq string) float64 {
	g := strings.Count(seq, "G")
	c := strings.Count(seq, "C")
	return float64(g+c) / float64(len(seq))
}

// nebLikeOffset applies NEB's fixed +3C correction to a nearest-neighbor
// Tm, approximating the offset NEB's Tm calculator reports relative to
// plain SantaLucia for standard PCR conditions.
func nebLikeOffset(nnTm float64) float64 {
	return nnTm + 3
}

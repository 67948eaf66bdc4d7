package metrics

import (
	"github.com/wippyai/scorer-runtime/encstr"
	"github.com/wippyai/scorer-runtime/scorer"
)

// Jaro returns a scorer family computing Jaro similarity.
func Jaro() scorer.Family {
	return jaroFamily{}
}

type jaroFamily struct{}

func (jaroFamily) U8(p []uint8) (scorer.Cached, error)   { return newJaro(p), nil }
func (jaroFamily) U16(p []uint16) (scorer.Cached, error) { return newJaro(p), nil }
func (jaroFamily) U32(p []uint32) (scorer.Cached, error) { return newJaro(p), nil }
func (jaroFamily) U64(p []uint64) (scorer.Cached, error) { return newJaro(p), nil }

// jaroCached holds its own copy of the pattern units; the pattern view is
// not retained past construction.
type jaroCached[P encstr.Unit] struct {
	pattern []P
}

func newJaro[P encstr.Unit](p []P) *jaroCached[P] {
	return &jaroCached[P]{pattern: append([]P(nil), p...)}
}

func (s *jaroCached[P]) Ratio8(c []uint8, cutoff float64) (float64, error) {
	return jaroSimilarity(s.pattern, c, cutoff), nil
}

func (s *jaroCached[P]) Ratio16(c []uint16, cutoff float64) (float64, error) {
	return jaroSimilarity(s.pattern, c, cutoff), nil
}

func (s *jaroCached[P]) Ratio32(c []uint32, cutoff float64) (float64, error) {
	return jaroSimilarity(s.pattern, c, cutoff), nil
}

func (s *jaroCached[P]) Ratio64(c []uint64, cutoff float64) (float64, error) {
	return jaroSimilarity(s.pattern, c, cutoff), nil
}

func (s *jaroCached[P]) Close() {
	s.pattern = nil
}

// jaroSimilarity computes the Jaro similarity of p and c in [0, 1].
func jaroSimilarity[P, C encstr.Unit](p []P, c []C, cutoff float64) float64 {
	lp, lc := len(p), len(c)
	if lp == 0 && lc == 0 {
		return 1
	}
	if lp == 0 || lc == 0 {
		return cut(0, cutoff)
	}

	longest := lp
	if lc > longest {
		longest = lc
	}
	window := longest/2 - 1
	if window < 0 {
		window = 0
	}

	pFlags := make([]bool, lp)
	cFlags := make([]bool, lc)
	matches := 0

	for i, cu := range c {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > lp {
			hi = lp
		}
		for j := lo; j < hi; j++ {
			if !pFlags[j] && uint64(p[j]) == uint64(cu) {
				pFlags[j] = true
				cFlags[i] = true
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return cut(0, cutoff)
	}

	// count half-transpositions over the matched units, in order
	half := 0
	k := 0
	for i := range c {
		if !cFlags[i] {
			continue
		}
		for !pFlags[k] {
			k++
		}
		if uint64(c[i]) != uint64(p[k]) {
			half++
		}
		k++
	}
	transpositions := half / 2

	m := float64(matches)
	sim := (m/float64(lp) + m/float64(lc) + (m-float64(transpositions))/m) / 3
	return cut(sim, cutoff)
}

// cut applies the score cutoff: anything below reports 0.
func cut(score, cutoff float64) float64 {
	if score < cutoff {
		return 0
	}
	return score
}

package metrics

import (
	"github.com/wippyai/scorer-runtime/encstr"
	"github.com/wippyai/scorer-runtime/scorer"
)

// Indel returns a scorer family computing normalized insert/delete
// similarity: 1 - indel_distance / (len(pattern) + len(candidate)).
func Indel() scorer.Family {
	return indelFamily{}
}

type indelFamily struct{}

func (indelFamily) U8(p []uint8) (scorer.Cached, error)   { return newIndel(p), nil }
func (indelFamily) U16(p []uint16) (scorer.Cached, error) { return newIndel(p), nil }
func (indelFamily) U32(p []uint32) (scorer.Cached, error) { return newIndel(p), nil }
func (indelFamily) U64(p []uint64) (scorer.Cached, error) { return newIndel(p), nil }

type indelCached[P encstr.Unit] struct {
	pattern []P
}

func newIndel[P encstr.Unit](p []P) *indelCached[P] {
	return &indelCached[P]{pattern: append([]P(nil), p...)}
}

func (s *indelCached[P]) Ratio8(c []uint8, cutoff float64) (float64, error) {
	return indelSimilarity(s.pattern, c, cutoff), nil
}

func (s *indelCached[P]) Ratio16(c []uint16, cutoff float64) (float64, error) {
	return indelSimilarity(s.pattern, c, cutoff), nil
}

func (s *indelCached[P]) Ratio32(c []uint32, cutoff float64) (float64, error) {
	return indelSimilarity(s.pattern, c, cutoff), nil
}

func (s *indelCached[P]) Ratio64(c []uint64, cutoff float64) (float64, error) {
	return indelSimilarity(s.pattern, c, cutoff), nil
}

func (s *indelCached[P]) Close() {
	s.pattern = nil
}

// indelSimilarity derives the insert/delete distance from the length of
// the longest common subsequence, computed with a rolling two-row DP.
func indelSimilarity[P, C encstr.Unit](p []P, c []C, cutoff float64) float64 {
	total := len(p) + len(c)
	if total == 0 {
		return 1
	}
	if len(p) == 0 || len(c) == 0 {
		return cut(0, cutoff)
	}

	prev := make([]int, len(c)+1)
	curr := make([]int, len(c)+1)

	for _, pu := range p {
		for j, cu := range c {
			if uint64(pu) == uint64(cu) {
				curr[j+1] = prev[j] + 1
			} else if prev[j+1] >= curr[j] {
				curr[j+1] = prev[j+1]
			} else {
				curr[j+1] = curr[j]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(c)]
	distance := total - 2*lcs
	sim := 1 - float64(distance)/float64(total)
	return cut(sim, cutoff)
}

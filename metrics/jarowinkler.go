package metrics

import (
	"github.com/wippyai/scorer-runtime/encstr"
	"github.com/wippyai/scorer-runtime/errors"
	"github.com/wippyai/scorer-runtime/scorer"
)

const (
	// DefaultPrefixWeight is the conventional Winkler prefix weighting.
	DefaultPrefixWeight = 0.1

	// maxPrefixLength caps the common prefix considered for the bonus.
	maxPrefixLength = 4

	// bonusThreshold is the Jaro score above which the prefix bonus applies.
	bonusThreshold = 0.7

	// maxPrefixWeight keeps prefix*weight from pushing the score past 1.
	maxPrefixWeight = 0.25
)

// JaroWinkler returns a scorer family computing Jaro-Winkler similarity
// with the given prefix weight. Weights outside [0, 0.25] fail scorer
// construction with a value-kind error.
func JaroWinkler(prefixWeight float64) scorer.Family {
	return jwFamily{prefixWeight: prefixWeight}
}

type jwFamily struct {
	prefixWeight float64
}

func (f jwFamily) U8(p []uint8) (scorer.Cached, error)   { return newJaroWinkler(p, f.prefixWeight) }
func (f jwFamily) U16(p []uint16) (scorer.Cached, error) { return newJaroWinkler(p, f.prefixWeight) }
func (f jwFamily) U32(p []uint32) (scorer.Cached, error) { return newJaroWinkler(p, f.prefixWeight) }
func (f jwFamily) U64(p []uint64) (scorer.Cached, error) { return newJaroWinkler(p, f.prefixWeight) }

type jwCached[P encstr.Unit] struct {
	pattern      []P
	prefixWeight float64
}

func newJaroWinkler[P encstr.Unit](p []P, prefixWeight float64) (scorer.Cached, error) {
	if prefixWeight < 0 || prefixWeight > maxPrefixWeight {
		return nil, errors.Value(errors.PhaseConstruct,
			"prefix_weight %v out of range [0, %v]", prefixWeight, maxPrefixWeight)
	}
	return &jwCached[P]{
		pattern:      append([]P(nil), p...),
		prefixWeight: prefixWeight,
	}, nil
}

func (s *jwCached[P]) Ratio8(c []uint8, cutoff float64) (float64, error) {
	return jaroWinklerSimilarity(s.pattern, c, s.prefixWeight, cutoff), nil
}

func (s *jwCached[P]) Ratio16(c []uint16, cutoff float64) (float64, error) {
	return jaroWinklerSimilarity(s.pattern, c, s.prefixWeight, cutoff), nil
}

func (s *jwCached[P]) Ratio32(c []uint32, cutoff float64) (float64, error) {
	return jaroWinklerSimilarity(s.pattern, c, s.prefixWeight, cutoff), nil
}

func (s *jwCached[P]) Ratio64(c []uint64, cutoff float64) (float64, error) {
	return jaroWinklerSimilarity(s.pattern, c, s.prefixWeight, cutoff), nil
}

func (s *jwCached[P]) Close() {
	s.pattern = nil
}

func jaroWinklerSimilarity[P, C encstr.Unit](p []P, c []C, prefixWeight, cutoff float64) float64 {
	sim := jaroSimilarity(p, c, 0)

	if sim > bonusThreshold {
		prefix := commonPrefix(p, c)
		sim += float64(prefix) * prefixWeight * (1 - sim)
	}

	return cut(sim, cutoff)
}

func commonPrefix[P, C encstr.Unit](p []P, c []C) int {
	limit := len(p)
	if len(c) < limit {
		limit = len(c)
	}
	if limit > maxPrefixLength {
		limit = maxPrefixLength
	}
	n := 0
	for n < limit && uint64(p[n]) == uint64(c[n]) {
		n++
	}
	return n
}

// Package metrics provides the similarity algorithm families consumed by
// the scorer ABI: Jaro, Jaro-Winkler and a normalized Indel similarity.
//
// Each algorithm is written once as a generic body over both the pattern
// and candidate code-unit types; the scorer.Family and scorer.Cached
// method sets instantiate it statically for every width combination, so
// no width branching happens inside the comparison loops. Scores are
// normalized to [0, 1]; a result below the cutoff reports 0.
package metrics

// Package match implements the deterministic profile-matching engine:
// overlap scoring between string lists, career and course ranking, and the
// templated advice renderers consumed by the assistant and the
// recommendations endpoint. Everything here is a pure function of its
// inputs; catalogs and profiles are fetched by callers.
package match

import "strings"

// Score measures the overlap between two string lists as a percentage in
// [0,100]. A source item counts as matched when it is a case-insensitive
// substring of any target item. The denominator is the larger of the two
// list lengths, so a perfect match of a short source against a longer
// target stays fractional. That asymmetry is intentional and load-bearing:
// downstream thresholds and rendered percentages depend on it.
func Score(source, target []string) float64 {
	if len(source) == 0 || len(target) == 0 {
		return 0
	}
	matched := 0
	for _, s := range source {
		ls := strings.ToLower(s)
		for _, t := range target {
			if strings.Contains(strings.ToLower(t), ls) {
				matched++
				break
			}
		}
	}
	denom := len(source)
	if len(target) > denom {
		denom = len(target)
	}
	return float64(matched) / float64(denom) * 100
}

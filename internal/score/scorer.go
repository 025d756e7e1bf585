// Package score provides the deterministic local fallback for the
// fact-checking component. Demo scores are a degraded-mode substitute and are
// always flagged as such in the outcome; they must never pass as real
// consistency scores.
package score

import (
	"strings"

	"github.com/quocbao2303/duui-pipeline-test/internal/model"
)

// Demo computes a support estimate in [0, 1] from lexical overlap alone:
// Jaccard similarity over lower-cased whitespace tokens, recalibrated with
// min(jaccard*1.2 + 0.1, 1.0). Raw Jaccard skews low on short claim/fact
// pairs, so the gain and boost shift the distribution onto the same
// support-tier thresholds used for real service scores.
func Demo(claim, fact string) float64 {
	claimTokens := tokenSet(claim)
	factTokens := tokenSet(fact)

	union := len(claimTokens)
	overlap := 0
	for tok := range factTokens {
		if _, ok := claimTokens[tok]; ok {
			overlap++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0.0
	}

	jaccard := float64(overlap) / float64(union)
	final := jaccard*1.2 + 0.1
	if final > 1.0 {
		final = 1.0
	}
	return final
}

// DemoScores maps Demo over a pair list, parallel to the input.
func DemoScores(pairs []model.ClaimFactPair) []float64 {
	scores := make([]float64, len(pairs))
	for i, pair := range pairs {
		scores[i] = Demo(pair.Claim, pair.Fact)
	}
	return scores
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = struct{}{}
	}
	return set
}

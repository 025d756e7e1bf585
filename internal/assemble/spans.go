// Package assemble builds the combined document and the offset-annotated
// claim/fact records the fact-checking component consumes.
package assemble

import (
	"fmt"
	"strings"

	"github.com/quocbao2303/duui-pipeline-test/internal/model"
)

// Result is the assembled fact-checking input: one concatenated text plus
// parallel claim and fact records whose spans index into it.
type Result struct {
	CombinedText string
	Claims       []model.ClaimRecord
	Facts        []model.FactRecord
}

// Build lays the pairs out as "Claim N: <claim> Fact N: <fact>\n" lines and
// records half-open character spans for every claim and fact. Each claim
// record links to exactly one fact span (the same pair) and vice versa.
// An empty pair list is valid and yields an empty result.
func Build(pairs []model.ClaimFactPair) Result {
	var sb strings.Builder
	claims := make([]model.ClaimRecord, 0, len(pairs))
	facts := make([]model.FactRecord, 0, len(pairs))
	cursor := 0

	for i, pair := range pairs {
		claimPrefix := fmt.Sprintf("Claim %d: ", i+1)
		claimSpan := model.Span{
			Begin: cursor + len(claimPrefix),
			End:   cursor + len(claimPrefix) + len(pair.Claim),
			Text:  pair.Claim,
		}
		sb.WriteString(claimPrefix)
		sb.WriteString(pair.Claim)
		cursor = claimSpan.End

		factPrefix := fmt.Sprintf(" Fact %d: ", i+1)
		factSpan := model.Span{
			Begin: cursor + len(factPrefix),
			End:   cursor + len(factPrefix) + len(pair.Fact),
			Text:  pair.Fact,
		}
		sb.WriteString(factPrefix)
		sb.WriteString(pair.Fact)
		cursor = factSpan.End

		sb.WriteString("\n")
		cursor++

		claims = append(claims, model.ClaimRecord{
			Span:  claimSpan,
			Facts: []model.Span{factSpan},
		})
		facts = append(facts, model.FactRecord{
			Span:   factSpan,
			Claims: []model.Span{claimSpan},
		})
	}

	return Result{
		CombinedText: sb.String(),
		Claims:       claims,
		Facts:        facts,
	}
}

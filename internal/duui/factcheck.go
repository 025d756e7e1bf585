package duui

import (
	"context"

	"github.com/quocbao2303/duui-pipeline-test/internal/model"
)

// FactCheckRequest is the fact-checking component payload: the combined text
// plus the parallel claim/fact record arrays whose spans index into it.
type FactCheckRequest struct {
	Text      string              `json:"text"`
	Lang      string              `json:"lang"`
	ClaimsAll []model.ClaimRecord `json:"claims_all"`
	FactsAll  []model.FactRecord  `json:"facts_all"`
}

// FactCheckResponse is the fact-checking component response. Consistency is
// parallel to the submitted claim list.
type FactCheckResponse struct {
	Consistency []float64 `json:"consistency"`
}

// FactCheck runs the fact-checking component on the given payload.
func (c *Component) FactCheck(ctx context.Context, req FactCheckRequest) (*FactCheckResponse, error) {
	var resp FactCheckResponse
	if err := c.Process(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package duui

import "context"

// HateCheckRequest is the hate-speech component payload: the same text
// envelope as sentiment, without a model parameter.
type HateCheckRequest struct {
	Selections []Selection `json:"selections"`
	Lang       string      `json:"lang"`
	DocLen     int         `json:"doc_len"`
}

// HateCheckResponse is the hate-speech component response. Hate and NonHate
// are parallel score lists.
type HateCheckResponse struct {
	Hate    []float64 `json:"hate"`
	NonHate []float64 `json:"non_hate"`
	Meta    Meta      `json:"meta"`
}

// NewHateCheckRequest wraps the full text in a single text-selection envelope.
func NewHateCheckRequest(text, lang string) HateCheckRequest {
	return HateCheckRequest{
		Selections: []Selection{
			{
				Selection: "text",
				Sentences: []Sentence{{Text: text, Begin: 0, End: len(text)}},
			},
		},
		Lang:   lang,
		DocLen: len(text),
	}
}

// HateCheck runs the hate-speech component on the given payload.
func (c *Component) HateCheck(ctx context.Context, req HateCheckRequest) (*HateCheckResponse, error) {
	var resp HateCheckResponse
	if err := c.Process(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

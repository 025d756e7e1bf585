package duui

import "context"

// Sentence is one text segment with its character offsets.
type Sentence struct {
	Text  string `json:"text"`
	Begin int    `json:"begin"`
	End   int    `json:"end"`
}

// Selection wraps sentences under a named selection, matching the component
// typesystem.
type Selection struct {
	Selection string     `json:"selection"`
	Sentences []Sentence `json:"sentences"`
}

// Meta carries component metadata echoed back in responses.
type Meta struct {
	ModelName string `json:"modelName"`
	Version   string `json:"version"`
}

// SentimentRequest is the sentiment component payload.
type SentimentRequest struct {
	Selections []Selection `json:"selections"`
	Lang       string      `json:"lang"`
	DocLen     int         `json:"doc_len"`
	ModelName  string      `json:"model_name"`
	BatchSize  int         `json:"batch_size"`

	IgnoreMaxLengthTruncationPadding bool `json:"ignore_max_length_truncation_padding"`
}

// SentimentSentence is one scored sentence in the response.
type SentimentSentence struct {
	Text  string  `json:"text"`
	Begin int     `json:"begin"`
	End   int     `json:"end"`
	Pos   float64 `json:"pos"`
	Neu   float64 `json:"neu"`
	Neg   float64 `json:"neg"`
}

// SentimentSelection mirrors Selection with scored sentences.
type SentimentSelection struct {
	Selection string              `json:"selection"`
	Sentences []SentimentSentence `json:"sentences"`
}

// SentimentResponse is the sentiment component response.
type SentimentResponse struct {
	Selections []SentimentSelection `json:"selections"`
	Meta       Meta                 `json:"meta"`
}

// NewSentimentRequest wraps the full text in a single text-selection envelope,
// the shape the sentiment component expects for whole-document scoring.
func NewSentimentRequest(text, lang, modelName string, batchSize int) SentimentRequest {
	return SentimentRequest{
		Selections: []Selection{
			{
				Selection: "text",
				Sentences: []Sentence{{Text: text, Begin: 0, End: len(text)}},
			},
		},
		Lang:      lang,
		DocLen:    len(text),
		ModelName: modelName,
		BatchSize: batchSize,
	}
}

// Sentiment runs the sentiment component on the given payload.
func (c *Component) Sentiment(ctx context.Context, req SentimentRequest) (*SentimentResponse, error) {
	var resp SentimentResponse
	if err := c.Process(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

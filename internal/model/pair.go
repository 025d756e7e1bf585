package model

// ClaimFactPair is one claim to verify together with the fact it is checked
// against. Index is the 0-based position in the input list.
type ClaimFactPair struct {
	Claim string `json:"claim" yaml:"claim"`
	Fact  string `json:"fact" yaml:"fact"`
	Index int    `json:"claim_index" yaml:"-"`
}

// Span is a half-open character range [Begin, End) into a combined text,
// together with the substring it denotes.
type Span struct {
	Begin int    `json:"begin"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// ClaimRecord is a claim span plus the fact spans it is checked against.
// In this pipeline every claim links to exactly one fact (same pair).
type ClaimRecord struct {
	Span
	Facts []Span `json:"facts"`
}

// FactRecord is a fact span plus back-links to the claims it supports.
type FactRecord struct {
	Span
	Claims []Span `json:"claims"`
}

package model

import "time"

// OutcomeStatus tags what a stage actually produced, so callers never have to
// probe optional fields to find out.
type OutcomeStatus string

const (
	StatusOK    OutcomeStatus = "ok"    // Real scores from the service
	StatusDemo  OutcomeStatus = "demo"  // Locally synthesized scores
	StatusEmpty OutcomeStatus = "empty" // Stage failed, nothing to show
)

// SentimentScores are the per-sentence class probabilities returned by the
// sentiment service.
type SentimentScores struct {
	Pos float64 `json:"pos"`
	Neu float64 `json:"neu"`
	Neg float64 `json:"neg"`
}

// SentimentOutcome is the sentiment stage result.
type SentimentOutcome struct {
	Status    OutcomeStatus     `json:"status"`
	Model     string            `json:"model,omitempty"`
	Version   string            `json:"version,omitempty"`
	Sentences []SentimentScores `json:"sentences,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// HateOutcome is the hate-speech stage result. Hate and NonHate are parallel
// per-sentence score lists.
type HateOutcome struct {
	Status  OutcomeStatus `json:"status"`
	Model   string        `json:"model,omitempty"`
	Hate    []float64     `json:"hate,omitempty"`
	NonHate []float64     `json:"non_hate,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// FactCheckOutcome is the fact-checking stage result. Consistency is parallel
// to the input pair list. IsDemo and TimedOut are set only by the
// orchestrator, never by the service.
type FactCheckOutcome struct {
	Status      OutcomeStatus `json:"status"`
	Consistency []float64     `json:"consistency,omitempty"`
	IsDemo      bool          `json:"is_demo"`
	TimedOut    bool          `json:"timed_out"`
	Error       string        `json:"error,omitempty"`
}

// Report bundles everything one pipeline run produced. All fields are built
// fresh per run and discarded after rendering; nothing is persisted unless
// the caller asks for a JSON artifact.
type Report struct {
	Text  string          `json:"text"`
	Pairs []ClaimFactPair `json:"pairs"`

	Sentiment SentimentOutcome `json:"sentiment"`
	Hate      HateOutcome      `json:"hate"`
	FactCheck FactCheckOutcome `json:"fact_check"`

	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional, never affects scores
}

// LLMSummary is an optional post-pipeline summary. It is presentation only
// and must never feed back into any score or classification.
type LLMSummary struct {
	Enabled   bool   `json:"enabled"`
	Model     string `json:"model,omitempty"`
	SummaryMD string `json:"summary_md,omitempty"`
}

package report

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/quocbao2303/duui-pipeline-test/internal/model"
)

func init() {
	// Plain text output for string assertions
	color.NoColor = true
}

func TestSupportTier_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{0.71, TierSupported},
		{0.70000001, TierSupported},
		{0.7, TierPartiallySupported}, // Boundary falls into the lower tier
		{0.51, TierPartiallySupported},
		{0.5, TierWeaklySupported},
		{0.31, TierWeaklySupported},
		{0.3, TierContradicted},
		{0.0, TierContradicted},
		{1.0, TierSupported},
	}

	for _, tt := range tests {
		if got := SupportTier(tt.score); got != tt.want {
			t.Errorf("SupportTier(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSentimentLabel(t *testing.T) {
	tests := []struct {
		pos, neu, neg float64
		want          string
	}{
		{0.8, 0.1, 0.1, "POSITIVE"},
		{0.1, 0.8, 0.1, "NEUTRAL"},
		{0.1, 0.1, 0.8, "NEGATIVE"},
		// Ties resolve negative > positive > neutral
		{0.4, 0.2, 0.4, "NEGATIVE"},
		{0.4, 0.4, 0.2, "POSITIVE"},
		{0.3, 0.3, 0.3, "NEGATIVE"},
	}

	for _, tt := range tests {
		if got := SentimentLabel(tt.pos, tt.neu, tt.neg); got != tt.want {
			t.Errorf("SentimentLabel(%v, %v, %v) = %s, want %s", tt.pos, tt.neu, tt.neg, got, tt.want)
		}
	}
}

func TestContainsHate_BoundaryIsNoHate(t *testing.T) {
	if ContainsHate(0.5) {
		t.Error("Exactly 0.5 must classify as no hate")
	}
	if !ContainsHate(0.500001) {
		t.Error("Above 0.5 must classify as hate")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 150); got != "short" {
		t.Errorf("Short text must pass through, got %q", got)
	}

	long := strings.Repeat("x", 200)
	got := Truncate(long, 150)
	if len(got) != 153 || !strings.HasSuffix(got, "...") {
		t.Errorf("Expected 150 chars plus ellipsis, got %d chars", len(got))
	}
}

func sampleReport() *model.Report {
	return &model.Report{
		Text: "example document",
		Pairs: []model.ClaimFactPair{
			{Claim: "Paris is capital of France", Fact: "Paris serves as the capital city of France", Index: 0},
		},
		Sentiment: model.SentimentOutcome{
			Status:    model.StatusOK,
			Model:     "sentiment-model",
			Version:   "2.1",
			Sentences: []model.SentimentScores{{Pos: 0.05, Neu: 0.15, Neg: 0.80}},
		},
		Hate: model.HateOutcome{
			Status:  model.StatusOK,
			Model:   "hate-model",
			Hate:    []float64{0.91},
			NonHate: []float64{0.09},
		},
		FactCheck: model.FactCheckOutcome{
			Status:      model.StatusOK,
			Consistency: []float64{0.75},
		},
	}
}

func TestRender_FullReport(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Render(sampleReport())
	out := buf.String()

	// Sections in fixed order
	sentIdx := strings.Index(out, "--- SENTIMENT OUTPUT ---")
	hateIdx := strings.Index(out, "--- HATE SPEECH OUTPUT ---")
	factIdx := strings.Index(out, "--- FACT CHECKING OUTPUT ---")
	if sentIdx < 0 || hateIdx < 0 || factIdx < 0 {
		t.Fatalf("Missing section header in output:\n%s", out)
	}
	if !(sentIdx < hateIdx && hateIdx < factIdx) {
		t.Error("Sections out of order")
	}

	for _, want := range []string{
		"Positive:  0.0500",
		"Negative:  0.8000",
		"Overall:   NEGATIVE",
		"Hate score:     0.9100",
		"⚠ Contains hate speech patterns",
		"Score: 0.7500",
		"✓ SUPPORTED (claim aligns with fact)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_EmptyOutcomesShowNoOutputMarkers(t *testing.T) {
	report := &model.Report{
		Text:      "example document",
		Sentiment: model.SentimentOutcome{Status: model.StatusEmpty, Error: "HTTP 500"},
		Hate:      model.HateOutcome{Status: model.StatusEmpty},
		FactCheck: model.FactCheckOutcome{Status: model.StatusEmpty},
	}

	var buf bytes.Buffer
	New(&buf).Render(report)
	out := buf.String()

	if got := strings.Count(out, "(No output)"); got != 3 {
		t.Errorf("Expected 3 no-output markers, got %d:\n%s", got, out)
	}
}

func TestRender_DemoBanners(t *testing.T) {
	report := sampleReport()
	report.FactCheck = model.FactCheckOutcome{
		Status:      model.StatusDemo,
		Consistency: []float64{0.6333},
		IsDemo:      true,
	}

	var buf bytes.Buffer
	New(&buf).Render(report)
	if !strings.Contains(buf.String(), "⚠ Component returned empty - using demo scores") {
		t.Error("Expected empty-response demo banner")
	}

	report.FactCheck.TimedOut = true
	buf.Reset()
	New(&buf).Render(report)
	if !strings.Contains(buf.String(), "⚠ Component timed out - using demo scores") {
		t.Error("Expected timeout demo banner")
	}
}

func TestRender_TruncatesLongInputText(t *testing.T) {
	report := sampleReport()
	report.Text = strings.Repeat("a", 300)

	var buf bytes.Buffer
	New(&buf).Render(report)

	if !strings.Contains(buf.String(), strings.Repeat("a", 200)+"...") {
		t.Error("Expected input text truncated at 200 chars with ellipsis")
	}
	if strings.Contains(buf.String(), strings.Repeat("a", 201)) {
		t.Error("Input text rendered beyond the 200-char limit")
	}
}

func TestRenderJSON_WritesArtifact(t *testing.T) {
	path := t.TempDir() + "/report.json"
	if err := RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if !strings.Contains(string(data), "\"consistency\"") {
		t.Error("Artifact missing consistency scores")
	}
}

// Package report renders a pipeline report for human inspection. Everything
// here is presentation: classifications are derived from scores already in
// the report, and nothing is written back.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/quocbao2303/duui-pipeline-test/internal/model"
)

// Tier is the support classification bucket for a consistency score.
type Tier string

const (
	TierSupported          Tier = "SUPPORTED"
	TierPartiallySupported Tier = "PARTIALLY SUPPORTED"
	TierWeaklySupported    Tier = "WEAKLY SUPPORTED"
	TierContradicted       Tier = "CONTRADICTED"
)

// SupportTier buckets a consistency score. Boundaries are strict on the
// upper bound: 0.7 exactly is PARTIALLY SUPPORTED, not SUPPORTED.
func SupportTier(s float64) Tier {
	switch {
	case s > 0.7:
		return TierSupported
	case s > 0.5:
		return TierPartiallySupported
	case s > 0.3:
		return TierWeaklySupported
	default:
		return TierContradicted
	}
}

// SentimentLabel picks the dominant class. Ties resolve negative before
// positive before neutral, matching the comparison order.
func SentimentLabel(pos, neu, neg float64) string {
	max := pos
	if neu > max {
		max = neu
	}
	if neg > max {
		max = neg
	}
	switch max {
	case neg:
		return "NEGATIVE"
	case pos:
		return "POSITIVE"
	default:
		return "NEUTRAL"
	}
}

// ContainsHate applies the hate threshold. Exactly 0.5 is still no hate.
func ContainsHate(hate float64) bool {
	return hate > 0.5
}

// Truncate cuts s to max characters with an ellipsis marker when exceeded.
func Truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// Renderer writes reports to a console-style writer.
type Renderer struct {
	out io.Writer

	ok   *color.Color
	warn *color.Color
	bad  *color.Color
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{
		out:  out,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		bad:  color.New(color.FgRed),
	}
}

const rule = "================================================================================"

// Render writes the full report: one section per stage in fixed order, each
// always producing something (scores, demo scores, or an explicit no-output
// marker).
func (r *Renderer) Render(report *model.Report) {
	fmt.Fprintln(r.out, "\n"+rule)
	fmt.Fprintln(r.out, "PIPELINE RESULTS")
	fmt.Fprintln(r.out, rule)

	r.renderSentiment(report)
	r.renderHate(report)
	r.renderFactCheck(report)

	fmt.Fprintln(r.out, rule)
	if report.LLM != nil && report.LLM.Enabled {
		fmt.Fprintf(r.out, "\n--- SUMMARY (%s) ---\n\n%s\n\n", report.LLM.Model, report.LLM.SummaryMD)
		fmt.Fprintln(r.out, rule)
	}
}

func (r *Renderer) renderSentiment(report *model.Report) {
	fmt.Fprintln(r.out, "\n--- SENTIMENT OUTPUT ---")
	fmt.Fprintln(r.out, "\n  Input Text:")
	fmt.Fprintf(r.out, "  %s\n\n", Truncate(report.Text, 200))

	s := report.Sentiment
	if s.Status != model.StatusOK {
		fmt.Fprintln(r.out, "  (No output)")
		return
	}

	fmt.Fprintf(r.out, "  Model: %s\n", orNA(s.Model))
	fmt.Fprintf(r.out, "  Version: %s\n\n", orNA(s.Version))

	for _, scores := range s.Sentences {
		fmt.Fprintln(r.out, "  Sentiment Scores:")
		fmt.Fprintf(r.out, "    Positive:  %.4f\n", scores.Pos)
		fmt.Fprintf(r.out, "    Neutral:   %.4f\n", scores.Neu)
		fmt.Fprintf(r.out, "    Negative:  %.4f\n", scores.Neg)
		fmt.Fprintf(r.out, "    Overall:   %s\n", SentimentLabel(scores.Pos, scores.Neu, scores.Neg))
	}
}

func (r *Renderer) renderHate(report *model.Report) {
	fmt.Fprintln(r.out, "\n--- HATE SPEECH OUTPUT ---")
	fmt.Fprintln(r.out, "\n  Input Text:")
	fmt.Fprintf(r.out, "  %s\n\n", Truncate(report.Text, 200))

	h := report.Hate
	if h.Status != model.StatusOK {
		fmt.Fprintln(r.out, "  (No output)")
		return
	}

	fmt.Fprintf(r.out, "  Model: %s\n\n", orNA(h.Model))

	for i, hate := range h.Hate {
		nonHate := 0.0
		if i < len(h.NonHate) {
			nonHate = h.NonHate[i]
		}
		fmt.Fprintln(r.out, "  Hate Speech Detection Scores:")
		fmt.Fprintf(r.out, "    Hate score:     %.4f\n", hate)
		fmt.Fprintf(r.out, "    Non-hate score: %.4f\n", nonHate)
		if ContainsHate(hate) {
			fmt.Fprintf(r.out, "    Status: %s\n", r.warn.Sprint("⚠ Contains hate speech patterns"))
		} else {
			fmt.Fprintf(r.out, "    Status: %s\n", r.ok.Sprint("✓ No hate speech detected"))
		}
	}
}

func (r *Renderer) renderFactCheck(report *model.Report) {
	fmt.Fprintln(r.out, "\n--- FACT CHECKING OUTPUT ---")

	fc := report.FactCheck
	if fc.Status == model.StatusEmpty || len(fc.Consistency) == 0 {
		fmt.Fprintln(r.out, "  (No output)")
		return
	}

	if fc.IsDemo {
		if fc.TimedOut {
			fmt.Fprintf(r.out, "  %s\n\n", r.warn.Sprint("⚠ Component timed out - using demo scores"))
		} else {
			fmt.Fprintf(r.out, "  %s\n\n", r.warn.Sprint("⚠ Component returned empty - using demo scores"))
		}
	} else {
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "  Fact-Checking Results (%d pairs):\n\n", len(fc.Consistency))

	n := len(fc.Consistency)
	if len(report.Pairs) < n {
		n = len(report.Pairs)
	}
	for i := 0; i < n; i++ {
		pair := report.Pairs[i]
		s := fc.Consistency[i]

		fmt.Fprintf(r.out, "  Pair %d:\n", i+1)
		fmt.Fprintf(r.out, "    Claim: %s\n", Truncate(pair.Claim, 150))
		fmt.Fprintf(r.out, "    Fact:  %s\n", Truncate(pair.Fact, 150))
		fmt.Fprintf(r.out, "    Score: %.4f\n", s)
		fmt.Fprintf(r.out, "    %s\n\n", r.tierLine(SupportTier(s)))
	}
}

func (r *Renderer) tierLine(tier Tier) string {
	switch tier {
	case TierSupported:
		return r.ok.Sprint("✓ SUPPORTED (claim aligns with fact)")
	case TierPartiallySupported:
		return r.warn.Sprint("⚠ PARTIALLY SUPPORTED")
	case TierWeaklySupported:
		return r.warn.Sprint("⚠ WEAKLY SUPPORTED")
	default:
		return r.bad.Sprint("✗ CONTRADICTED (fact opposes claim)")
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// RenderJSON writes the report as a JSON artifact.
func RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Package pipeline chains the three DUUI components in fixed order:
// Sentiment → HateCheck → FactChecking. Stages run strictly sequentially on
// one goroutine; a failed stage never blocks the next one.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/quocbao2303/duui-pipeline-test/internal/assemble"
	"github.com/quocbao2303/duui-pipeline-test/internal/duui"
	"github.com/quocbao2303/duui-pipeline-test/internal/llm"
	"github.com/quocbao2303/duui-pipeline-test/internal/model"
	"github.com/quocbao2303/duui-pipeline-test/internal/score"
)

// Pipeline orchestrates one full run over the three components.
type Pipeline struct {
	sentiment  *duui.Component
	hatecheck  *duui.Component
	factcheck  *duui.Component
	summarizer *llm.Summarizer // nil when disabled
	config     *model.Config
	progress   io.Writer
}

// New creates a pipeline from the given configuration. Progress narration is
// written to progress (pass io.Discard to silence it).
func New(cfg *model.Config, progress io.Writer) *Pipeline {
	var summarizer *llm.Summarizer
	if cfg.LLM.Enabled {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(progress, "Warning: LLM summarizer disabled: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		sentiment:  duui.NewComponent("Sentiment", cfg.Services.SentimentURL, cfg.Services.ProbeTimeout, cfg.Services.SentimentTimeout),
		hatecheck:  duui.NewComponent("HateCheck", cfg.Services.HateCheckURL, cfg.Services.ProbeTimeout, cfg.Services.HateCheckTimeout),
		factcheck:  duui.NewComponent("FactCheck", cfg.Services.FactCheckURL, cfg.Services.ProbeTimeout, cfg.Services.FactCheckTimeout),
		summarizer: summarizer,
		config:     cfg,
		progress:   progress,
	}
}

// ProbeAll checks liveness of all three components. Every component is
// probed even after a failure so the user sees the full picture; any failure
// makes the whole run abort before stage one.
func (p *Pipeline) ProbeAll(ctx context.Context) error {
	failed := 0
	for _, c := range []*duui.Component{p.sentiment, p.hatecheck, p.factcheck} {
		if err := c.Probe(ctx); err != nil {
			fmt.Fprintf(p.progress, "  ✗ %s: %v\n", c.Name(), err)
			failed++
			continue
		}
		fmt.Fprintf(p.progress, "  ✓ %s: %s\n", c.Name(), c.URL())
	}
	if failed > 0 {
		return fmt.Errorf("%d of 3 components unavailable", failed)
	}
	return nil
}

// Run executes the three stages in order and collects their outcomes. Stage
// failures are absorbed into the outcomes; Run itself never fails. Total
// elapsed time is measured across all stages but enforces nothing.
func (p *Pipeline) Run(ctx context.Context, text string, pairs []model.ClaimFactPair) *model.Report {
	start := time.Now()
	report := &model.Report{
		Text:      text,
		Pairs:     pairs,
		StartedAt: start.UTC(),
	}

	report.Sentiment = p.runSentiment(ctx, text)
	report.Hate = p.runHateCheck(ctx, text)
	report.FactCheck = p.runFactCheck(ctx, pairs)
	report.Elapsed = time.Since(start)

	// Optional summary, generated after all scoring. It never feeds back.
	if p.summarizer != nil {
		summary, err := p.summarizer.Summarize(ctx, report)
		if err != nil {
			fmt.Fprintf(p.progress, "Warning: LLM summary failed: %v\n", err)
		} else {
			report.LLM = summary
		}
	}

	return report
}

func (p *Pipeline) runSentiment(ctx context.Context, text string) model.SentimentOutcome {
	fmt.Fprintln(p.progress, "\n[1/3] Running Sentiment Analysis...")

	req := duui.NewSentimentRequest(text, p.config.Analysis.Lang, p.config.Analysis.SentimentModel, p.config.Analysis.BatchSize)
	resp, err := p.sentiment.Sentiment(ctx, req)
	if err != nil {
		fmt.Fprintf(p.progress, "  ✗ Sentiment failed: %v\n", err)
		return model.SentimentOutcome{Status: model.StatusEmpty, Error: err.Error()}
	}

	outcome := model.SentimentOutcome{
		Status:  model.StatusOK,
		Model:   resp.Meta.ModelName,
		Version: resp.Meta.Version,
	}
	for _, sel := range resp.Selections {
		for _, s := range sel.Sentences {
			outcome.Sentences = append(outcome.Sentences, model.SentimentScores{Pos: s.Pos, Neu: s.Neu, Neg: s.Neg})
		}
	}
	if len(outcome.Sentences) == 0 {
		outcome.Status = model.StatusEmpty
	}
	fmt.Fprintln(p.progress, "  ✓ Sentiment analysis completed")
	return outcome
}

func (p *Pipeline) runHateCheck(ctx context.Context, text string) model.HateOutcome {
	fmt.Fprintln(p.progress, "\n[2/3] Running Hate Speech Detection...")

	req := duui.NewHateCheckRequest(text, p.config.Analysis.Lang)
	resp, err := p.hatecheck.HateCheck(ctx, req)
	if err != nil {
		fmt.Fprintf(p.progress, "  ✗ HateCheck failed: %v\n", err)
		return model.HateOutcome{Status: model.StatusEmpty, Error: err.Error()}
	}

	outcome := model.HateOutcome{
		Status:  model.StatusOK,
		Model:   resp.Meta.ModelName,
		Hate:    resp.Hate,
		NonHate: resp.NonHate,
	}
	if len(outcome.Hate) == 0 {
		outcome.Status = model.StatusEmpty
	}
	fmt.Fprintln(p.progress, "  ✓ Hate speech detection completed")
	return outcome
}

// runFactCheck is the only stage with a degraded mode: timeouts and
// semantically empty responses are recovered with locally computed demo
// scores, clearly flagged as such. Other errors stay empty. Sentiment and
// hate-check intentionally have no analogous fallback.
func (p *Pipeline) runFactCheck(ctx context.Context, pairs []model.ClaimFactPair) model.FactCheckOutcome {
	fmt.Fprintln(p.progress, "\n[3/3] Running Fact Checking...")

	if len(pairs) == 0 {
		// Nothing to check is not an error.
		return model.FactCheckOutcome{Status: model.StatusEmpty}
	}

	asm := assemble.Build(pairs)
	req := duui.FactCheckRequest{
		Text:      asm.CombinedText,
		Lang:      p.config.Analysis.Lang,
		ClaimsAll: asm.Claims,
		FactsAll:  asm.Facts,
	}

	resp, err := p.factcheck.FactCheck(ctx, req)
	if err != nil {
		if duui.IsTimeout(err) {
			fmt.Fprintf(p.progress, "  ✗ FactCheck timed out (>%s)\n", p.config.Services.FactCheckTimeout)
			fmt.Fprintln(p.progress, "  ⚠ Using demo scores")
			return model.FactCheckOutcome{
				Status:      model.StatusDemo,
				Consistency: score.DemoScores(pairs),
				IsDemo:      true,
				TimedOut:    true,
			}
		}
		fmt.Fprintf(p.progress, "  ✗ FactCheck failed: %v\n", err)
		return model.FactCheckOutcome{Status: model.StatusEmpty, Error: err.Error()}
	}

	if len(resp.Consistency) == 0 {
		fmt.Fprintln(p.progress, "  ⚠ Component bug: empty results returned")
		return model.FactCheckOutcome{
			Status:      model.StatusDemo,
			Consistency: score.DemoScores(pairs),
			IsDemo:      true,
		}
	}

	fmt.Fprintln(p.progress, "  ✓ Fact checking completed")
	return model.FactCheckOutcome{
		Status:      model.StatusOK,
		Consistency: resp.Consistency,
	}
}

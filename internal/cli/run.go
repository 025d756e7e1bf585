package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quocbao2303/duui-pipeline-test/internal/model"
	"github.com/quocbao2303/duui-pipeline-test/internal/pipeline"
	"github.com/quocbao2303/duui-pipeline-test/internal/report"
)

var (
	pairsFile    string
	outJSON      string
	sentimentURL string
	hateCheckURL string
	factCheckURL string
	llmEnabled   bool
	llmModel     string
	llmBaseURL   string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline against the three components",
	Long: `Run probes all three components, then executes the pipeline stages in
order and prints a unified report. Without --pairs, the built-in demo
document and claim/fact pairs are used.

Pairs file format (YAML):

  text: |
    Document submitted to sentiment and hate speech detection.
  pairs:
    - claim: Paris is capital of France
      fact: Paris serves as the capital city of France

Example:
  duui-pipeline run
  duui-pipeline run --pairs pairs.yaml --json report.json
  duui-pipeline run --llm --llm-model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&pairsFile, "pairs", "", "YAML file with document text and claim/fact pairs")
	runCmd.Flags().StringVar(&outJSON, "json", "", "write the full report as JSON to this path")

	runCmd.Flags().StringVar(&sentimentURL, "sentiment-url", "", "sentiment component base URL")
	runCmd.Flags().StringVar(&hateCheckURL, "hatecheck-url", "", "hate speech component base URL")
	runCmd.Flags().StringVar(&factCheckURL, "factcheck-url", "", "fact checking component base URL")

	runCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM summary of the report")
	runCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	runCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "OpenAI-compatible base URL")
}

// applyURLOverrides lets the URL flags win over env and config file values.
func applyURLOverrides(cfg *model.Config) {
	if sentimentURL != "" {
		cfg.Services.SentimentURL = sentimentURL
	}
	if hateCheckURL != "" {
		cfg.Services.HateCheckURL = hateCheckURL
	}
	if factCheckURL != "" {
		cfg.Services.FactCheckURL = factCheckURL
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := configFromViper()
	applyURLOverrides(cfg)
	if cfg.Output.NoColor {
		color.NoColor = true
	}

	if llmEnabled {
		cfg.LLM.Enabled = true
		cfg.LLM.Model = llmModel
		cfg.LLM.BaseURL = llmBaseURL
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	text, pairs, err := loadInput(pairsFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	p := pipeline.New(cfg, os.Stderr)

	fmt.Fprintln(os.Stderr, "Checking component availability...")
	if err := p.ProbeAll(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "\nTo start all components:")
		fmt.Fprintln(os.Stderr, "  docker start duui-sentiment duui-hatecheck duui-factchecking")
		return fmt.Errorf("probe: %w", err)
	}
	fmt.Fprintln(os.Stderr, "\n✅ All components available!")
	fmt.Fprintf(os.Stderr, "\nProcessing document (%d chars), %d claim-fact pairs...\n", len(text), len(pairs))

	result := p.Run(ctx, text, pairs)

	if outJSON != "" {
		if err := report.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	report.New(os.Stdout).Render(result)

	elapsed := result.Elapsed.Seconds()
	fmt.Printf("✅ Pipeline completed in %.2f seconds\n", elapsed)
	fmt.Printf("   (%.1f minutes)\n", elapsed/60)
	return nil
}

// pairsDocument is the on-disk shape of a --pairs file.
type pairsDocument struct {
	Text  string                `yaml:"text"`
	Pairs []model.ClaimFactPair `yaml:"pairs"`
}

// loadInput returns the document text and pairs, falling back to the
// built-in demo fixture when no file is given.
func loadInput(path string) (string, []model.ClaimFactPair, error) {
	if path == "" {
		return model.DefaultText, model.DefaultPairs(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read pairs file: %w", err)
	}

	var doc pairsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("parse pairs file: %w", err)
	}

	text := doc.Text
	if text == "" {
		text = model.DefaultText
	}
	for i := range doc.Pairs {
		doc.Pairs[i].Index = i
	}
	return text, doc.Pairs, nil
}

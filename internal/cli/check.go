package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quocbao2303/duui-pipeline-test/internal/pipeline"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the three components without running the pipeline",
	Long: `Check sends a liveness probe (GET /v1/typesystem) to each configured
component and reports the result. Exit status is non-zero if any component
is unreachable.

Example:
  duui-pipeline check
  duui-pipeline check --sentiment-url http://localhost:9001`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&sentimentURL, "sentiment-url", "", "sentiment component base URL")
	checkCmd.Flags().StringVar(&hateCheckURL, "hatecheck-url", "", "hate speech component base URL")
	checkCmd.Flags().StringVar(&factCheckURL, "factcheck-url", "", "fact checking component base URL")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := configFromViper()
	applyURLOverrides(cfg)

	p := pipeline.New(cfg, os.Stderr)

	fmt.Fprintln(os.Stderr, "Checking component availability...")
	if err := p.ProbeAll(context.Background()); err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	fmt.Fprintln(os.Stderr, "\n✅ All components available!")
	return nil
}

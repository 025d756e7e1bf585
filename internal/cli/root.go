package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quocbao2303/duui-pipeline-test/internal/model"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "duui-pipeline",
	Short: "DUUI pipeline client: Sentiment → HateCheck → FactChecking",
	Long: `duui-pipeline chains three DUUI text-analysis components over REST:

  1. Sentiment analysis
  2. Hate speech detection
  3. Fact checking (claim/fact consistency)

The components are probed for liveness before anything runs. Stage failures
never abort the pipeline: each stage reports real scores, locally synthesized
demo scores (fact checking only), or an explicit empty result.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("duui-pipeline v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.duui-pipeline/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output.no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.duui-pipeline")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match DUUI_*
	viper.SetEnvPrefix("DUUI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults seeds viper with the built-in defaults so the hierarchy is
// flags > env > config file > defaults.
func setDefaults() {
	def := model.DefaultConfig()

	viper.SetDefault("services.sentiment_url", def.Services.SentimentURL)
	viper.SetDefault("services.hatecheck_url", def.Services.HateCheckURL)
	viper.SetDefault("services.factcheck_url", def.Services.FactCheckURL)
	viper.SetDefault("services.probe_timeout", def.Services.ProbeTimeout)
	viper.SetDefault("services.sentiment_timeout", def.Services.SentimentTimeout)
	viper.SetDefault("services.hatecheck_timeout", def.Services.HateCheckTimeout)
	viper.SetDefault("services.factcheck_timeout", def.Services.FactCheckTimeout)

	viper.SetDefault("analysis.sentiment_model", def.Analysis.SentimentModel)
	viper.SetDefault("analysis.batch_size", def.Analysis.BatchSize)
	viper.SetDefault("analysis.lang", def.Analysis.Lang)

	viper.SetDefault("llm.enabled", def.LLM.Enabled)
	viper.SetDefault("llm.model", def.LLM.Model)
	viper.SetDefault("llm.timeout", def.LLM.Timeout)
	viper.SetDefault("llm.max_tokens", def.LLM.MaxTokens)
}

// configFromViper materializes the effective configuration.
func configFromViper() *model.Config {
	cfg := model.DefaultConfig()

	cfg.Services.SentimentURL = viper.GetString("services.sentiment_url")
	cfg.Services.HateCheckURL = viper.GetString("services.hatecheck_url")
	cfg.Services.FactCheckURL = viper.GetString("services.factcheck_url")
	cfg.Services.ProbeTimeout = viper.GetDuration("services.probe_timeout")
	cfg.Services.SentimentTimeout = viper.GetDuration("services.sentiment_timeout")
	cfg.Services.HateCheckTimeout = viper.GetDuration("services.hatecheck_timeout")
	cfg.Services.FactCheckTimeout = viper.GetDuration("services.factcheck_timeout")

	cfg.Analysis.SentimentModel = viper.GetString("analysis.sentiment_model")
	cfg.Analysis.BatchSize = viper.GetInt("analysis.batch_size")
	cfg.Analysis.Lang = viper.GetString("analysis.lang")

	cfg.Output.Verbose = viper.GetBool("output.verbose")
	cfg.Output.NoColor = viper.GetBool("output.no_color")

	cfg.LLM.Enabled = viper.GetBool("llm.enabled")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Timeout = viper.GetInt("llm.timeout")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	return cfg
}

package cli

import (
	"fmt"
	"os"

	"github.com/citelint/citelint/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbose   bool
	corpusDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "citelint",
	Short: "Citelint - citation verification for quotation-heavy writing",
	Long: `Citelint verifies that quotations attributed to source documents
actually occur in those documents.

It checks each quote against a corpus of extracted paper text, tolerating
OCR noise, Unicode variation, and whitespace drift, and surfaces the
closest matching passage with line-accurate context when a quote cannot
be found verbatim.

Citelint performs lexical matching only: a quote is verified when it
appears as a substring of the normalized source text, or when a sliding
word window overlaps it at 85% or better. It does not judge whether the
quote is used fairly - only whether it is really there.`,
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
		fmt.Println("citelint v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.citelint/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&corpusDir, "corpus", "", "corpus directory of extracted source texts")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("corpus.dir", rootCmd.PersistentFlags().Lookup("corpus"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.citelint")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CITELINT_*
	viper.SetEnvPrefix("CITELINT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// engineConfig builds the effective configuration from defaults, the
// config file, environment, and global flags.
func engineConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("corpus.dir"); v != "" {
		cfg.Corpus.Dir = v
	}
	if viper.IsSet("corpus.text_extension") {
		cfg.Corpus.TextExtension = viper.GetString("corpus.text_extension")
	}
	if viper.IsSet("corpus.sources_table") {
		cfg.Corpus.SourcesTable = viper.GetString("corpus.sources_table")
	}
	if viper.IsSet("claims.dir") {
		cfg.Claims.Dir = viper.GetString("claims.dir")
	}
	if viper.IsSet("claims.legacy_file") {
		cfg.Claims.LegacyFile = viper.GetString("claims.legacy_file")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	if viper.IsSet("rate_limiting.reads_per_second") {
		cfg.RateLimiting.ReadsPerSecond = viper.GetFloat64("rate_limiting.reads_per_second")
	}

	cfg.Output.Verbose = verbose || viper.GetBool("output.verbose")
	return cfg
}

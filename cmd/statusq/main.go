package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnklee/aegis.utils/cmd/statusq/app"
	"github.com/johnklee/aegis.utils/internal/config"
	"github.com/johnklee/aegis.utils/internal/version"
	"github.com/johnklee/aegis.utils/pkg/input"
)

var (
	// Batch run flags
	inputFile   string
	outputFile  string
	errorFile   string
	apiHost     string
	apiPort     int
	apiPath     string
	workers     int
	format      string
	rateLimit   int
	timeout     time.Duration
	showStatus  bool
	noColor     bool
	verbosity   int
	showVersion bool
)

const (
	exitOK            = 0
	exitFailure       = 1
	exitInputNotFound = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, input.ErrNotFound) {
			os.Exit(exitInputNotFound)
		}
		os.Exit(exitFailure)
	}
	os.Exit(exitOK)
}

var rootCmd = &cobra.Command{
	Use:   "statusq [flags]",
	Short: "Query the account status API in batch",
	Long: `statusq v` + version.Version + `
========================================

A toolkit to query the account status API in batch. Identifiers are loaded
from a file (one easy_id per line, # for comments), posted concurrently to
the status endpoint, and the results are collected into success and failure
reports.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(version.Version)
			os.Exit(exitOK)
		}
	},
	RunE: runBatch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flag("full").Value.String() == "true" {
			fmt.Println(version.FullVersion())
		} else {
			fmt.Println(version.Version)
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path of input file with one easy_id per line (required)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "path to store the query result; logged to console if not given")
	rootCmd.Flags().StringVarP(&errorFile, "error-output", "e", "", "path to store error records; logged to console if not given")
	rootCmd.Flags().StringVar(&apiHost, "api-host", config.DefaultAPIHost, "API host to send requests to")
	rootCmd.Flags().IntVar(&apiPort, "api-port", config.DefaultAPIPort, "API port")
	rootCmd.Flags().StringVar(&apiPath, "api-path", config.DefaultAPIPath, "API path to query")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of concurrent workers")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "report format: json|yaml")
	rootCmd.Flags().IntVarP(&rateLimit, "rate-limit", "r", 0, "maximum lookups per second (0 = unlimited)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "per-request timeout (0 = none)")
	rootCmd.Flags().BoolVarP(&showStatus, "progress", "s", false, "show progress bar")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose output (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "print version information")

	versionCmd.Flags().Bool("full", false, "show full version information")

	rootCmd.AddCommand(versionCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	applyFlagOverrides(cmd, &cfg)

	if cfg.Input == "" {
		return fmt.Errorf("an input file is required (-i)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	application := app.New(&cfg)
	defer application.Shutdown()

	return application.Run()
}

// applyFlagOverrides lets explicitly set flags win over environment values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("input") || cfg.Input == "" {
		cfg.Input = inputFile
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFile
	}
	if cmd.Flags().Changed("error-output") {
		cfg.ErrorOutput = errorFile
	}
	if cmd.Flags().Changed("api-host") {
		cfg.APIHost = apiHost
	}
	if cmd.Flags().Changed("api-port") {
		cfg.APIPort = apiPort
	}
	if cmd.Flags().Changed("api-path") {
		cfg.APIPath = apiPath
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = rateLimit
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeout
	}
	if cmd.Flags().Changed("progress") {
		cfg.Progress = showStatus
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = noColor
	}
	if verbosity > 0 {
		cfg.Verbose = verbosity
	}
}

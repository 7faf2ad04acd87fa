/*
Package config provides configuration management for the statusq application.
It handles both environment variables and validation of all configuration
parameters.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Environment Variables:

	STATUSQ_WORKERS         Number of concurrent workers
	STATUSQ_API_HOST        API host to send requests to
	STATUSQ_API_PORT        API port
	STATUSQ_API_PATH        API status path
	STATUSQ_OUTPUT          Success report file path
	STATUSQ_ERROR_OUTPUT    Failure report file path
	STATUSQ_FORMAT          Report format: json|yaml
	STATUSQ_RATE_LIMIT      Rate limit for lookups (requests/sec)
	STATUSQ_TIMEOUT         Per-request timeout (0 = none)
	STATUSQ_PROGRESS        Show progress bar
	STATUSQ_NO_COLOR        Disable colored output
	STATUSQ_VERBOSE         Verbosity level (number of 'v's)

Default Values:

	Workers:   Number of CPU cores
	APIHost:   "http://localhost"
	APIPort:   8080
	APIPath:   "status"
	Format:    "json"
	RateLimit: 0 (unlimited)
	Timeout:   0 (none)
*/
package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Input is the path of the identifier file to load
	Input string

	// Output is the path to write the success report (empty to log it)
	Output string

	// ErrorOutput is the path to write the failure report (empty to log it)
	ErrorOutput string

	// APIHost is the API host to send requests to
	APIHost string

	// APIPort is the API port
	APIPort int

	// APIPath is the API status path
	APIPath string

	// Workers is the number of concurrent workers draining the queue
	Workers int

	// Format specifies the report format (json or yaml)
	Format string

	// RateLimit is the maximum number of lookups per second (0 for unlimited)
	RateLimit int

	// Timeout is the per-request timeout (0 for none)
	Timeout time.Duration

	// Progress enables the progress bar
	Progress bool

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int
}

// validReportFormats contains the list of supported report formats
var validReportFormats = map[string]bool{
	"json": true,
	"yaml": true,
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("api_host", DefaultAPIHost)
	v.SetDefault("api_port", DefaultAPIPort)
	v.SetDefault("api_path", DefaultAPIPath)
	v.SetDefault("format", "json")
	v.SetDefault("rate_limit", 0)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("progress", false)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	// Configure environment variables
	v.SetEnvPrefix("STATUSQ")
	v.AutomaticEnv()

	// Map environment variables to config fields
	v.BindEnv("input")
	v.BindEnv("output")
	v.BindEnv("error_output")
	v.BindEnv("api_host")
	v.BindEnv("api_port")
	v.BindEnv("api_path")
	v.BindEnv("workers")
	v.BindEnv("format")
	v.BindEnv("rate_limit")
	v.BindEnv("timeout")
	v.BindEnv("progress")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	// Process verbosity level from string of 'v's
	if verboseStr := v.GetString("verbose"); verboseStr != "" {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	cfg := Config{
		Input:       v.GetString("input"),
		Output:      v.GetString("output"),
		ErrorOutput: v.GetString("error_output"),
		APIHost:     v.GetString("api_host"),
		APIPort:     v.GetInt("api_port"),
		APIPath:     v.GetString("api_path"),
		Workers:     v.GetInt("workers"),
		Format:      v.GetString("format"),
		RateLimit:   v.GetInt("rate_limit"),
		Timeout:     v.GetDuration("timeout"),
		Progress:    v.GetBool("progress"),
		NoColor:     v.GetBool("no_color"),
		Verbose:     v.GetInt("verbose"),
	}

	// Handle special case for workers=0
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers count must be positive")
	}
	maxWorkers := runtime.NumCPU() * MaxWorkerMultiplier
	if c.Workers > maxWorkers {
		return fmt.Errorf("workers count cannot exceed system CPU count * %d", MaxWorkerMultiplier)
	}

	if c.APIHost == "" {
		return fmt.Errorf("api host must not be empty")
	}
	if c.APIPort <= 0 || c.APIPort > 65535 {
		return fmt.Errorf("api port must be between 1 and 65535")
	}

	if !validReportFormats[c.Format] {
		return fmt.Errorf("invalid report format: must be one of [json yaml]")
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	return nil
}

// URL combines host, port and path into the full status endpoint URL.
func (c Config) URL() string {
	return fmt.Sprintf("%s:%d/%s", c.APIHost, c.APIPort, strings.TrimPrefix(c.APIPath, "/"))
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, ErrorOutput: %s, URL: %s, Workers: %d, "+
			"Format: %s, RateLimit: %d, Timeout: %s, Progress: %v, NoColor: %v, Verbose: %d}",
		c.Input, c.Output, c.ErrorOutput, c.URL(), c.Workers,
		c.Format, c.RateLimit, c.Timeout, c.Progress, c.NoColor, c.Verbose,
	)
}

package config

// ReportFormat represents the supported report formats
type ReportFormat string

const (
	// ReportFormatJSON represents the indented JSON report format
	ReportFormatJSON ReportFormat = "json"

	// ReportFormatYAML represents the YAML report format
	ReportFormatYAML ReportFormat = "yaml"
)

// Constants for configuration limits and defaults
const (
	// DefaultAPIHost is the default API host to send requests to
	DefaultAPIHost = "http://localhost"

	// DefaultAPIPort is the default API port
	DefaultAPIPort = 8080

	// DefaultAPIPath is the default API status path
	DefaultAPIPath = "status"

	// MaxWorkerMultiplier is the maximum multiple of CPU cores for worker count
	MaxWorkerMultiplier = 8
)

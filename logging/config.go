package logging

// Config defines the logging configuration resolved from tool settings and
// HOOKMAN_* environment variables.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the HOOKMAN_LOG_LEVEL environment variable.
	Level string

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the HOOKMAN_LOG_CALLER=true environment variable.
	ReportCaller bool

	// Format configures the appearance of the log output.
	Format FormatConfig
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string
}

package logging

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/committools/hookman/settings"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger returns the logger for a component, creating and caching it on
// first use so repeated calls share configuration.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if entry, exists := loggers[component]; exists {
		return entry
	}

	var cfg Config
	if s, err := settings.Load(); err == nil {
		cfg.Level = s.LogLevel
	}

	logger := logrus.New()
	logger.SetLevel(resolveLevel(cfg))

	if os.Getenv("HOOKMAN_LOG_CALLER") == "true" || cfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch cfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: cfg.Format})
	}

	logger.SetOutput(pickOutput(cfg, logger.GetLevel()))

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// resolveLevel picks the log level: env override first, then settings,
// falling back to info.
func resolveLevel(cfg Config) logrus.Level {
	levelStr := os.Getenv("HOOKMAN_LOG_LEVEL")
	if levelStr == "" {
		levelStr = cfg.Level
	}
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// pickOutput decides where structured logs go. Command output always goes to
// stdout directly, never through the logger, so in normal interactive use the
// logger stays silent.
func pickOutput(cfg Config, level logrus.Level) io.Writer {
	mode := cfg.Format.StructuredToStderr
	if mode == "" {
		mode = "auto"
	}

	switch mode {
	case "always":
		return os.Stderr
	case "never":
		return io.Discard
	}

	// "auto": surface logs when debugging or when stderr is not a terminal
	// (piped output, CI).
	isDebug := os.Getenv("HOOKMAN_DEBUG") == "1" || level == logrus.DebugLevel
	isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if isDebug || !isInteractive {
		return os.Stderr
	}
	return io.Discard
}

package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

type Options struct {
	// Name is attached to every entry as the app field.
	Name string

	// Level is one of debug, info, warn, error, panic, fatal.
	// Unknown or empty levels fall back to info.
	Level string

	// Format selects json (production) or console (development)
	// encoding. Empty means production.
	Format string

	// OutputPaths overrides the sinks, stdout by default.
	OutputPaths []string
}

// New builds the process logger.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if opts.Name != "" {
		config.InitialFields = map[string]any{
			"app": opts.Name,
		}
	}

	config.Level = ParseLevel(opts.Level)

	// every click must produce its own line
	config.Sampling = nil

	config.OutputPaths = []string{"stdout"}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	return config.Build()
}

// ParseLevel parses lvl, defaulting to info.
func ParseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

package app

import (
	"errors"
	"fmt"
	"slices"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string
	LogLevel  string

	// PrefPaths are preference files or directories, loaded in order.
	PrefPaths []string
	// Overrides are "[process:]Option Name=value" assignments applied after
	// the preference files.
	Overrides []string
	// Process is the default process of overrides without a prefix.
	Process string
	// Intstyle, when set, wins over the preference files.
	Intstyle string

	// MaxDepth bounds sub-project nesting; zero uses the resolver default.
	MaxDepth int
	// Jobs bounds how many projects PlanAll works on at once; zero means
	// one per CPU.
	Jobs int
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	intstyles  = []string{"ise", "xflow", "silent"}
)

// DefaultIntstyle is used when neither the preferences nor Config set one.
const DefaultIntstyle = "silent"

func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if cfg.LogLevel != "" && !slices.Contains(logLevels, cfg.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log level %q: must be one of %q", cfg.LogLevel, logLevels))
	}
	if cfg.LogFormat != "" && !slices.Contains(logFormats, cfg.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log format %q: must be one of %q", cfg.LogFormat, logFormats))
	}
	if cfg.Intstyle != "" && !slices.Contains(intstyles, cfg.Intstyle) {
		errs = append(errs, fmt.Errorf("invalid intstyle %q: must be one of %q", cfg.Intstyle, intstyles))
	}
	if cfg.MaxDepth < 0 {
		errs = append(errs, errors.New("MaxDepth cannot be negative"))
	}
	if cfg.Jobs < 0 {
		errs = append(errs, errors.New("Jobs cannot be negative"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cfg, nil
}

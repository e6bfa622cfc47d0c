// Package logr builds the structured logger used by ghseed. Logs go to stderr
// so stdout carries only command output.
package logr

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
)

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

type (
	// Config holds the logging flags
	Config struct {
		Verbosity int
		Format    string
	}

	Format string
)

// LoadConfigFromFlags adds flags to the given flagset, and, after the
// flagset is parsed by the caller, the flags populate the returned logger
// config.
func LoadConfigFromFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.IntVarP(&cfg.Verbosity, "v", "v", 0, "Logging level")
	flags.StringVar(&cfg.Format, "log-format", string(TextFormat), "Logging format: text or json")
}

// New constructs a logr logger writing to w
func New(cfg *Config, w io.Writer) (logr.Logger, error) {
	var h slog.Handler
	opts := &slog.HandlerOptions{Level: toSlogLevel(cfg.Verbosity)}

	switch Format(cfg.Format) {
	case TextFormat, "":
		h = slog.NewTextHandler(w, opts)
	case JSONFormat:
		h = slog.NewJSONHandler(w, opts)
	default:
		return logr.Logger{}, fmt.Errorf("unrecognised logging format: %s", cfg.Format)
	}
	return logr.FromSlogHandler(h), nil
}

// toSlogLevel converts a logr v-level to a slog level.
func toSlogLevel(verbosity int) slog.Level {
	if verbosity <= 0 {
		return slog.LevelInfo
	}
	return slog.Level(-verbosity)
}

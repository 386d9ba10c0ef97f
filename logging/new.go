package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVar is the environment variable consulted for a log spec when no flag
// is given.
const EnvVar = "NETENFORCER_LOG"

// Format is the log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", s)
	}
}

// Options configures the logger factory.
type Options struct {
	// FlagSpec is the log spec given on the command line; it overrides
	// EnvSpec (flags beat environment, per Unix convention).
	FlagSpec string
	// EnvSpec is the log spec from EnvVar.
	EnvSpec string
	// Format selects text or JSON output.
	Format Format
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds a logger with component-level filtering.
func New(opts Options) (*slog.Logger, error) {
	specStr := opts.FlagSpec
	if specStr == "" {
		specStr = opts.EnvSpec
	}
	spec, err := ParseSpec(specStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log spec: %w", err)
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	// The inner handler admits everything; the filtering wrapper decides.
	handlerOpts := &slog.HandlerOptions{Level: LevelTrace.ToSlog()}
	var inner slog.Handler
	switch opts.Format {
	case FormatJSON:
		inner = slog.NewJSONHandler(output, handlerOpts)
	default:
		inner = slog.NewTextHandler(output, handlerOpts)
	}

	return slog.New(NewFilteringHandler(inner, &spec)), nil
}

// Default returns a text logger at info level on stdout.
func Default() *slog.Logger {
	logger, _ := New(Options{})
	return logger
}

// Package logging configures structured logging for the enforcement daemon.
// Loggers are slog loggers; components tag themselves with
// logger.With("component", name) and a log spec can raise or lower the level
// per component.
package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is a log level. Values match the slog.Level constants, with an extra
// trace level below debug.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

// ToSlog converts the level to a slog.Level.
func (l Level) ToSlog() slog.Level {
	return slog.Level(l)
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Spec is a parsed log specification: a base level plus per-component
// overrides.
//
// The string form is "<base-level>[,<component>=<level>]...", for example
// "info", "warn,enforcer=debug" or "info,tc=trace,enforcer=debug".
type Spec struct {
	BaseLevel  Level
	Components map[string]Level
}

// LevelFor returns the effective level for a component, falling back to the
// base level when the component has no override.
func (s *Spec) LevelFor(component string) Level {
	if level, ok := s.Components[component]; ok {
		return level
	}
	return s.BaseLevel
}

// ParseSpec parses a log specification string. The empty string means info
// with no overrides.
func ParseSpec(s string) (Spec, error) {
	spec := Spec{
		BaseLevel:  LevelInfo,
		Components: make(map[string]Level),
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return spec, nil
	}
	for i, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.Index(part, "=")
		if idx == -1 {
			if i != 0 {
				return spec, fmt.Errorf("base level must come first in %q", s)
			}
			level, err := ParseLevel(part)
			if err != nil {
				return spec, err
			}
			spec.BaseLevel = level
			continue
		}
		component := strings.TrimSpace(part[:idx])
		if component == "" {
			return spec, fmt.Errorf("empty component name in %q", part)
		}
		level, err := ParseLevel(part[idx+1:])
		if err != nil {
			return spec, fmt.Errorf("invalid level for component %q: %w", component, err)
		}
		spec.Components[component] = level
	}
	return spec, nil
}

package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netqos/netenforcer/logging"
)

func TestComponentFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{
		FlagSpec: "warn,enforcer=debug",
		Format:   logging.FormatText,
		Output:   &buf,
	})
	require.NoError(t, err)

	logger.Info("base info suppressed")
	logger.Warn("base warn kept")

	enf := logger.With("component", "enforcer")
	enf.Debug("enforcer debug kept")

	srv := logger.With("component", "server")
	srv.Info("server info suppressed")
	srv.Error("server error kept")

	out := buf.String()
	assert.NotContains(t, out, "base info suppressed")
	assert.Contains(t, out, "base warn kept")
	assert.Contains(t, out, "enforcer debug kept")
	assert.NotContains(t, out, "server info suppressed")
	assert.Contains(t, out, "server error kept")
}

func TestFlagSpecBeatsEnvSpec(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{
		FlagSpec: "error",
		EnvSpec:  "debug",
		Output:   &buf,
	})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Error("kept")

	assert.Equal(t, 1, strings.Count(buf.String(), "msg="))
	assert.Contains(t, buf.String(), "kept")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]logging.Format{
		"":     logging.FormatText,
		"text": logging.FormatText,
		"json": logging.FormatJSON,
		"JSON": logging.FormatJSON,
	} {
		got, err := logging.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := logging.ParseFormat("xml")
	assert.Error(t, err)
}

package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestNew_JSONWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Str("k", "v").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := WithComponent(WithContext(context.Background(), logger), "store")

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"store"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("dropped")
}

func TestNewWithFile_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabstash.log")
	var buf bytes.Buffer

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf},
		FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 1},
	)
	require.NoError(t, err)

	logger.Info().Msg("to both")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

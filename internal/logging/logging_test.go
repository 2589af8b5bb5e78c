package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "auto", Writer: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Str("pair", "ENGB-FRFR").Msg("extract written")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ENGB-FRFR", entry["pair"])
	assert.Equal(t, "extract written", entry["message"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "console", NoColor: true, Writer: &buf})

	logger.Debug().Msg("document opened")
	assert.Contains(t, buf.String(), "document opened")
	assert.Contains(t, buf.String(), "DBG")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langsplit.log")
	logger := New(Config{Level: "info", Format: "json", Output: path})
	logger.Warn().Msg("extract rejected")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "extract rejected")
}

func TestContext(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())

	logger := zerolog.New(nil).Level(zerolog.WarnLevel)
	ctx := WithLogger(context.Background(), &logger)
	assert.Same(t, &logger, FromContext(ctx))
}

package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ENGB", "ENGB"},
		{"en-gb", "ENGB"},
		{" EN_GB ", "ENGB"},
		{"fr.FR", "FRFR"},
		{"ＤＥＤＥ", "DEDE"}, // full-width letters fold to ASCII
		{"", ""},
		{"--", ""},
		{"zh-Hans", "ZHHANS"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestLookup(t *testing.T) {
	r := Default()

	tests := []struct {
		label string
		code  string
		ok    bool
	}{
		{"ENGB", "ENGB", true},
		{"en-gb", "ENGB", true},
		{"English UK", "ENGB", true},
		{"ZH-Hant", "ZHTW", true},
		{"Source", "", false},
		{"", "", false},
		{"EN", "", false},
	}

	for _, tt := range tests {
		code, ok := r.Lookup(tt.label)
		assert.Equal(t, tt.ok, ok, "Lookup(%q)", tt.label)
		assert.Equal(t, tt.code, code, "Lookup(%q)", tt.label)
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty", nil},
		{"blank code", []Entry{{Code: " - "}}},
		{"duplicate code", []Entry{{Code: "ENGB"}, {Code: "en-gb"}}},
		{"alias shadows other code", []Entry{{Code: "ENGB"}, {Code: "FRFR", Aliases: []string{"EN GB"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.ErrorIs(t, err, ErrInvalidRegistry)
		})
	}
}

func TestWithNormalizer(t *testing.T) {
	r, err := New([]Entry{{Code: "en"}, {Code: "fr"}}, WithNormalizer(strings.ToLower))
	require.NoError(t, err)

	code, ok := r.Lookup("EN")
	require.True(t, ok)
	assert.Equal(t, "en", code)
	assert.Equal(t, []string{"en", "fr"}, r.Codes())
}

func TestDefault(t *testing.T) {
	r := Default()
	code, ok := r.Lookup(DefaultSource)
	require.True(t, ok)
	assert.Equal(t, DefaultSource, code)
	assert.Equal(t, "French (France)", r.Name("fr-fr"))
	assert.Equal(t, "XXYY", r.Name("XXYY"))
	assert.Equal(t, len(defaultEntries), r.Len())
}

func TestParseAndLoadFile(t *testing.T) {
	data := []byte(`languages:
  - code: en-gb
    name: English
    aliases: ["British English"]
  - code: FRFR
`)
	r, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"ENGB", "FRFR"}, r.Codes())

	code, ok := r.Lookup("british english")
	require.True(t, ok)
	assert.Equal(t, "ENGB", code)

	out, err := r.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "languages.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.Codes(), loaded.Codes())
	assert.Equal(t, "English", loaded.Name("ENGB"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("languages: [\n"))
	require.ErrorIs(t, err, ErrInvalidRegistry)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

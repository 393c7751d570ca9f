package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hawkeyes-osint/pushtoken/internal/classifier"
)

func apnsResult(t *testing.T) classifier.Result {
	t.Helper()
	res, err := classifier.Classify("d4c3b2a1e5f6789012345678901234567890abcdef1234567890abcdef123456")
	require.NoError(t, err)
	return res
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "text", want: FormatText},
		{input: "json", want: FormatJSON},
		{input: "JSON", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_Text(t *testing.T) {
	res := apnsResult(t)

	var buf bytes.Buffer
	require.NoError(t, New(DefaultOptions()).Text(&buf, res))
	out := buf.String()

	assert.Contains(t, out, "PUSH TOKEN ANALYSIS")
	assert.Contains(t, out, "Provider: Apple Push Notification Service (APNs)")
	assert.Contains(t, out, "Platform: iOS/macOS/watchOS/tvOS")
	assert.Contains(t, out, "Token Type: Device Token")
	assert.Contains(t, out, "Token Length: 64 characters")
	assert.Contains(t, out, "Confidence: High")
	assert.Contains(t, out, "1. 32-byte binary value represented as hex")
	assert.Contains(t, out, "IMPORTANT NOTES:")

	// 64-char token is truncated to 50 with an ellipsis marker.
	assert.Contains(t, out, "Token: "+res.Token[:50]+"...")
	assert.NotContains(t, out, res.Token)
}

func TestRenderer_Text_ShortTokenNotTruncated(t *testing.T) {
	res, err := classifier.Classify("abc")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(DefaultOptions()).Text(&buf, res))

	assert.Contains(t, buf.String(), "Token: abc\n")
	assert.NotContains(t, buf.String(), "abc...")
}

func TestRenderer_Text_TruncatesOnRunes(t *testing.T) {
	res, err := classifier.Classify(strings.Repeat("é", 60))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(DefaultOptions()).Text(&buf, res))
	out := buf.String()

	// Cut after 50 characters, never mid-rune.
	assert.Contains(t, out, "Token: "+strings.Repeat("é", 50)+"...")
	assert.NotContains(t, out, strings.Repeat("é", 51))
	assert.True(t, utf8.ValidString(out))
}

func TestRenderer_Text_SkipsEmptyCharacteristics(t *testing.T) {
	res := apnsResult(t)
	res.Characteristics = []string{"first", "", "  ", "second"}

	var buf bytes.Buffer
	require.NoError(t, New(DefaultOptions()).Text(&buf, res))
	out := buf.String()

	assert.Contains(t, out, "  1. first\n")
	assert.Contains(t, out, "  2. second\n")
	assert.NotContains(t, out, "  3.")
}

func TestRenderer_JSON(t *testing.T) {
	res := apnsResult(t)

	var buf bytes.Buffer
	require.NoError(t, New(DefaultOptions()).JSON(&buf, res))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	for _, key := range []string{
		"token", "token_length", "provider", "platform",
		"environment", "token_type", "characteristics", "confidence",
	} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, "Unknown", doc["environment"])
	assert.Equal(t, float64(64), doc["token_length"])
	assert.Equal(t, "High", doc["confidence"])
}

func TestRenderer_YAML(t *testing.T) {
	res := apnsResult(t)

	var buf bytes.Buffer
	require.NoError(t, New(DefaultOptions()).YAML(&buf, res))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, res.Token, doc["token"])
	assert.Equal(t, "Apple Push Notification Service (APNs)", doc["provider"])
	assert.Equal(t, 64, doc["token_length"])
}

func TestRenderer_RenderError(t *testing.T) {
	r := New(DefaultOptions())

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderError(&buf, FormatText, "   "))
		assert.Contains(t, buf.String(), "ERROR: Invalid token provided")
	})

	t.Run("json carries only error and token", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderError(&buf, FormatJSON, ""))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, "Invalid token provided", doc["error"])
		assert.Len(t, doc, 2)
	})
}

func TestRenderer_Banner(t *testing.T) {
	var buf bytes.Buffer
	New(DefaultOptions()).Banner(&buf, "1.1")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Push Token Analyzer v1.1", lines[0])
	assert.Equal(t, "HawkEyes OSINT - https://hawk-eyes.io", lines[1])
	assert.Equal(t, strings.Repeat("=", 50), lines[2])
}

func TestFilterEmpty(t *testing.T) {
	assert.Empty(t, FilterEmpty(nil))
	assert.Equal(t, []string{"a", "b"}, FilterEmpty([]string{"", "a", " ", "b", ""}))
}

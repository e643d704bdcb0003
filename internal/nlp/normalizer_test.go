package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips http url",
			input:    "Bitcoin SURGES 10%!!! Check this link: https://example.com/news?id=1",
			expected: "Bitcoin SURGES 10%!!! Check this link:",
		},
		{
			name:     "strips www url",
			input:    "see www.example.com for details",
			expected: "see for details",
		},
		{
			name:     "strips email",
			input:    "contact tips@cryptodesk.io for more",
			expected: "contact for more",
		},
		{
			name:     "strips html tags",
			input:    "<p>Ethereum <b>rallies</b></p>",
			expected: "Ethereum rallies",
		},
		{
			name:     "collapses whitespace and trims",
			input:    "  BTC \t holds\n\nsteady  ",
			expected: "BTC holds steady",
		},
		{
			name:     "preserves casing",
			input:    "SEC Approves ETF",
			expected: "SEC Approves ETF",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_RemovesAllArtifacts(t *testing.T) {
	input := "Read <a href=\"x\">this</a> at https://coindesk.com or mail news@desk.com   now"
	cleaned := CleanText(input)

	assert.NotContains(t, cleaned, "https://")
	assert.NotContains(t, cleaned, "@")
	assert.NotContains(t, cleaned, "<")
	assert.NotContains(t, cleaned, ">")
	assert.NotContains(t, cleaned, "  ")
}

func TestNormalizeForModel(t *testing.T) {
	out := NormalizeForModel("Bitcoin SURGES after ETF approval", 512)
	assert.Equal(t, "bitcoin surges after etf approval", out)
}

func TestNormalizeForModel_Truncates(t *testing.T) {
	input := strings.Repeat("bitcoin ", 600)
	out := NormalizeForModel(input, 100)

	assert.LessOrEqual(t, len([]rune(out)), 100*approxCharsPerToken)
	assert.True(t, strings.HasPrefix(out, "bitcoin"))
}

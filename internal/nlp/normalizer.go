package nlp

import (
	"regexp"
	"strings"
)

// Pattern order matters: URLs first so their host parts are not later caught
// as emails, then emails, then HTML tags, then whitespace collapse.
var (
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// approxCharsPerToken is the character budget assumed per model token when
// pre-truncating classifier input. The model tokenizer applies the exact
// truncation afterwards.
const approxCharsPerToken = 4

// CleanText strips URLs, email addresses and HTML tags, collapses whitespace
// runs to single spaces and trims the result. Casing is preserved so
// character offsets computed against the cleaned text stay meaningful.
func CleanText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeForModel lowercases and cleans text for classifier input and
// truncates it to an approximate character budget for maxTokens tokens.
// Truncation is a silent length bound, not summarization.
func NormalizeForModel(text string, maxTokens int) string {
	cleaned := CleanText(strings.ToLower(text))
	if maxTokens <= 0 {
		return cleaned
	}

	budget := maxTokens * approxCharsPerToken
	runes := []rune(cleaned)
	if len(runes) > budget {
		return string(runes[:budget])
	}
	return cleaned
}

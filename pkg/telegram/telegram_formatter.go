package telegram

import (
	"fmt"
	"strings"
)

// FormatHighImpactAlert formats a Markdown alert message for a high-impact
// feed item.
func FormatHighImpactAlert(title, link, label string, sentiment float64) string {
	icon := "⚪"
	switch label {
	case "positive":
		icon = "🟢"
	case "negative":
		icon = "🔴"
	}

	var b strings.Builder
	b.WriteString("🚨 *High Impact Crypto News* 🚨\n\n")
	b.WriteString(fmt.Sprintf("%s *%s*\n", icon, escapeMarkdown(title)))
	b.WriteString(fmt.Sprintf("Sentiment: %s (%.2f)\n", label, sentiment))
	if link != "" {
		b.WriteString(fmt.Sprintf("\n[Read more](%s)", link))
	}
	return b.String()
}

// escapeMarkdown escapes the characters Telegram's Markdown parser treats as
// formatting.
func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"`", "\\`",
	)
	return replacer.Replace(text)
}

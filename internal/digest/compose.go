// Package digest renders the EARLYBIRD plain-text morning brief.
package digest

import (
	"strings"

	"github.com/beofficial/commandcenter/internal/domain"
)

const bulletGlyph = "• "

// Compose renders a subject, intro, bullet list, and footer into one
// plain-text body. Bullets that are empty or whitespace-only are dropped.
// Pure and deterministic: fixed inputs always produce identical output.
func Compose(subject, intro string, bullets []string, footer string) string {
	lines := []string{
		"Subject: " + subject,
		"",
		intro,
		"",
	}
	for _, b := range bullets {
		if strings.TrimSpace(b) == "" {
			continue
		}
		lines = append(lines, bulletGlyph+b)
	}
	lines = append(lines, "", footer)
	return strings.Join(lines, "\n")
}

// Render composes a draft.
func Render(d domain.EmailDraft) string {
	return Compose(d.Subject, d.Intro, d.Bullets, d.Footer)
}

// DefaultDraft returns the stock EARLYBIRD brief used as the preview and
// test-send starting point.
func DefaultDraft() domain.EmailDraft {
	return domain.EmailDraft{
		Subject: "Referee Daily Brief – Mon",
		Intro: "Good morning! Here are the top items for officials and assignors. " +
			"Each has a one line take on why it matters.",
		Bullets: []string{
			"NFHS updates guidance on concussion protocols; assignors should review pregame checklist.",
			"Referee.com feature on conflict de escalation – great for preseason training decks.",
			"NISOA adds spring clinic dates; consider cross posting for college refs.",
		},
		Footer: "Reply with topics you want tracked. BeOfficial · EarlyBird",
	}
}

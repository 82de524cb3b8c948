package bot

import (
	"strings"
	"time"
)

func ParseDueDate(raw string) (time.Time, bool) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// FormatDateBR renders a stored date as dd/mm/yyyy. Custom free-text dates
// that don't parse pass through untouched.
func FormatDateBR(raw string) string {
	parsed, ok := ParseDueDate(raw)
	if !ok {
		return raw
	}

	return parsed.Format("02/01/2006")
}

// statusEmoji: 🔴 vencido, 🟡 vence em até 3 dias, 🟢 em dia,
// ⚪ data não reconhecida.
func statusEmoji(raw string, now time.Time) string {
	due, ok := ParseDueDate(raw)
	if !ok {
		return "⚪"
	}

	days := int(due.Sub(now).Hours() / 24)

	switch {
	case days < 0:
		return "🔴"
	case days <= 3:
		return "🟡"
	default:
		return "🟢"
	}
}

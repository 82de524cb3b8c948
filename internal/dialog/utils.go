package dialog

import "strings"

func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ToLower(text)

	return text
}

func isSkipSignal(text string) bool {
	if text == NotesSkip {
		return true
	}

	switch NormalizeText(text) {
	case "pular", "skip":
		return true
	}

	return false
}

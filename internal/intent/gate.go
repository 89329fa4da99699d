package intent

import "strings"

// actionKeywords is the cheap pre-filter consulted before any parsing:
// an utterance containing none of these goes straight to conversation.
var actionKeywords = []string{
	"open", "search", "youtube",
	"send whatsapp", "send message",
	"shutdown", "shut down", "restart", "lock",
	"time", "date", "linkedin",
	"play music", "stop it", "stop music", "pause music",
}

// LooksLikeAction reports whether a normalized utterance plausibly
// contains a command worth running through the classifier.
func LooksLikeAction(text string) bool {
	if text == "ai" {
		return true
	}
	for _, kw := range actionKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

package dispatch

import (
	"log/slog"
	"strings"
	"time"

	"kaju/internal/intent"
)

const (
	// DefaultCooldown is the minimum gap between two dispatches of the
	// same de-duplicated action.
	DefaultCooldown = 2500 * time.Millisecond
	// StopMediaCooldown is shorter: "stop it" twice in a row is usually
	// the user meaning it, not recognizer noise.
	StopMediaCooldown = 1 * time.Second
)

// Result reports what one action sequence did.
type Result struct {
	// Executed is true when at least one non-Unknown action actually ran.
	// When it stays false the caller should hand the utterance to the
	// conversation fallback.
	Executed bool
	// Exit is true when an Exit action ended the session; any actions
	// after it in the sequence were abandoned.
	Exit bool
}

// Dispatcher runs an action sequence in order through the capability
// handlers, de-duplicating the side-effecting kinds that recognizer
// noise tends to repeat.
type Dispatcher struct {
	handlers *Handlers
	debounce *Debouncer
}

func NewDispatcher(handlers *Handlers) *Dispatcher {
	return &Dispatcher{handlers: handlers, debounce: NewDebouncer()}
}

// Dispatch executes each action in order. Failures of one action never
// block the next; only Exit cuts the sequence short.
func (d *Dispatcher) Dispatch(actions []intent.Action) Result {
	var res Result
	for _, a := range actions {
		if a.Kind == intent.KindUnknown {
			slog.Debug("skipping unknown chunk", "text", a.Raw)
			continue
		}

		if key, cooldown, ok := dedupKey(a); ok {
			if !d.debounce.Allow(key, cooldown) {
				slog.Debug("duplicate action suppressed", "key", key)
				continue
			}
		}

		slog.Info("dispatching", "kind", a.Kind.String())
		d.handlers.Handle(a)
		res.Executed = true

		if a.Kind == intent.KindExit {
			res.Exit = true
			return res
		}
	}
	return res
}

// dedupKey derives the de-duplication key for the kinds that get one.
// Search, WhatsApp, the clock queries and the power commands are never
// de-duplicated: repeating those is assumed intentional.
func dedupKey(a intent.Action) (string, time.Duration, bool) {
	norm := func(s string) string { return strings.TrimSpace(strings.ToLower(s)) }
	switch a.Kind {
	case intent.KindOpen:
		return "open:" + norm(a.Target), DefaultCooldown, true
	case intent.KindYouTubeSearch:
		return "youtube_search:" + norm(a.Query), DefaultCooldown, true
	case intent.KindYouTubeHome:
		return "youtube_home", DefaultCooldown, true
	case intent.KindOpenURL:
		return "open_url:" + norm(a.URL), DefaultCooldown, true
	case intent.KindLinkedIn:
		return "linkedin", DefaultCooldown, true
	case intent.KindPlayMusic:
		return "play_music", DefaultCooldown, true
	case intent.KindStopMedia:
		return "stop_media", StopMediaCooldown, true
	default:
		return "", 0, false
	}
}

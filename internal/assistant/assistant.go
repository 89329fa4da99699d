// Package assistant runs the read-eval-speak loop: one utterance in,
// either dispatched commands or a conversational reply out.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kaju/internal/brain"
	"kaju/internal/dispatch"
	"kaju/internal/intent"
)

const helpText = "Try: open firefox then search whatsapp then send whatsapp to 9477 123 4567 hi. " +
	"Also: time, date, lock, shutdown, restart, exit."

// Chatter is the conversational fallback collaborator.
type Chatter interface {
	Reply(ctx context.Context, text string) (string, error)
}

// Assistant wires the interpretation pipeline to speech output. One
// utterance is processed start to finish before the next one; nothing
// here is safe for concurrent callers.
type Assistant struct {
	speak      dispatch.SpeakFunc
	classifier *intent.Classifier
	dispatcher *dispatch.Dispatcher
	chat       Chatter
	utterances *dispatch.Debouncer
}

func New(classifier *intent.Classifier, dispatcher *dispatch.Dispatcher, chat Chatter, speak dispatch.SpeakFunc) *Assistant {
	return &Assistant{
		speak:      speak,
		classifier: classifier,
		dispatcher: dispatcher,
		chat:       chat,
		utterances: dispatch.NewDebouncer(),
	}
}

// Run processes utterances from next until the session ends or the
// context is cancelled.
func (a *Assistant) Run(ctx context.Context, next func(context.Context) (string, error)) {
	a.speak("Assistant started. Talk to me.")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		raw, err := next(ctx)
		if err != nil {
			slog.Error("listen failed", "err", err)
			continue
		}
		if a.HandleUtterance(ctx, raw) {
			return
		}
	}
}

var exitPhrases = map[string]bool{"exit": true, "quit": true, "stop": true}

// HandleUtterance processes one recognized text and reports whether the
// session should end. A panic anywhere below is caught here and spoken
// as a generic apology so one bad dispatch never kills the loop.
func (a *Assistant) HandleUtterance(ctx context.Context, raw string) (exit bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("dispatch panicked", "err", r)
			a.speak(fmt.Sprintf("Sorry, error: %v", r))
			exit = false
		}
	}()

	text := intent.Normalize(raw)
	if text == "" {
		return false
	}

	// The recognizer frequently hears the same utterance twice in quick
	// succession; drop the echo before it reaches the classifier.
	if !a.utterances.Allow("utterance:"+text, dispatch.DefaultCooldown) {
		slog.Debug("duplicate utterance suppressed", "text", text)
		return false
	}

	slog.Info("heard", "text", text)

	if exitPhrases[text] {
		a.speak("Goodbye.")
		return true
	}

	if text == "help" || text == "commands" {
		a.speak(helpText)
		return false
	}

	if intent.LooksLikeAction(text) {
		res := a.dispatcher.Dispatch(a.classifier.Parse(text))
		if res.Exit {
			return true
		}
		if res.Executed {
			return false
		}
	}

	a.converse(ctx, text)
	return false
}

func (a *Assistant) converse(ctx context.Context, text string) {
	reply, err := a.chat.Reply(ctx, text)
	if err != nil {
		var svcErr *brain.ServiceError
		if errors.As(err, &svcErr) {
			// Don't read raw service errors aloud.
			slog.Warn("chat service failed", "kind", svcErr.Kind.String(), "err", svcErr.Err)
			return
		}
		slog.Error("chat failed", "err", err)
		return
	}
	a.speak(reply)
}

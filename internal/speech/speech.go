// Package speech turns microphone audio into normalized text via an
// online or a local recognition engine.
package speech

import (
	"context"
	"errors"
	"log/slog"

	"kaju/internal/audio"
)

// ErrOnlineUnavailable reports that the online recognizer could not be
// reached; in auto mode the caller falls back to the offline engine.
var ErrOnlineUnavailable = errors.New("online recognizer unavailable")

// Mode selects which recognition engine handles an utterance.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeAuto    Mode = "auto"
)

// Recognizer converts one captured utterance into lowercase text.
// Empty text with a nil error means nothing intelligible was said.
type Recognizer interface {
	Transcribe(ctx context.Context, pcm []float32) (string, error)
}

// Listener owns one capture-and-recognize cycle.
type Listener struct {
	capture func() ([]float32, error)
	online  Recognizer
	offline Recognizer
	mode    Mode
}

func NewListener(rec *audio.Recorder, online, offline Recognizer, mode Mode) *Listener {
	return &Listener{
		capture: rec.Record,
		online:  online,
		offline: offline,
		mode:    mode,
	}
}

// Listen records one utterance and transcribes it per the configured
// mode. Auto mode tries online first and falls back to the offline
// engine only when the online one is unreachable.
func (l *Listener) Listen(ctx context.Context) (string, error) {
	pcm, err := l.capture()
	if err != nil {
		return "", err
	}
	if len(pcm) == 0 {
		return "", nil
	}

	switch l.mode {
	case ModeOnline:
		return l.online.Transcribe(ctx, pcm)
	case ModeOffline:
		return l.offline.Transcribe(ctx, pcm)
	default:
		text, err := l.online.Transcribe(ctx, pcm)
		if errors.Is(err, ErrOnlineUnavailable) && l.offline != nil {
			slog.Warn("online recognizer unreachable, using local engine")
			return l.offline.Transcribe(ctx, pcm)
		}
		return text, err
	}
}

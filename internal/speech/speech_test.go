package speech

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecognizer struct {
	text string
	err  error
}

func (s stubRecognizer) Transcribe(_ context.Context, _ []float32) (string, error) {
	return s.text, s.err
}

func testListener(online, offline Recognizer, mode Mode) *Listener {
	return &Listener{
		capture: func() ([]float32, error) { return make([]float32, 160), nil },
		online:  online,
		offline: offline,
		mode:    mode,
	}
}

func TestListenAutoFallsBackWhenOnlineUnreachable(t *testing.T) {
	l := testListener(
		stubRecognizer{err: fmt.Errorf("%w: dial failed", ErrOnlineUnavailable)},
		stubRecognizer{text: "open chrome"},
		ModeAuto,
	)

	text, err := l.Listen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "open chrome", text)
}

func TestListenAutoKeepsOnlineResult(t *testing.T) {
	l := testListener(
		stubRecognizer{text: "search cats"},
		stubRecognizer{text: "should not be used"},
		ModeAuto,
	)

	text, err := l.Listen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "search cats", text)
}

func TestListenAutoPropagatesOtherErrors(t *testing.T) {
	boom := errors.New("transcription: bad audio")
	l := testListener(stubRecognizer{err: boom}, stubRecognizer{text: "nope"}, ModeAuto)

	_, err := l.Listen(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestListenOfflineModeSkipsOnline(t *testing.T) {
	l := testListener(
		stubRecognizer{err: errors.New("must not be called")},
		stubRecognizer{text: "what time is it"},
		ModeOffline,
	)

	text, err := l.Listen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "what time is it", text)
}

func TestListenEmptyCapture(t *testing.T) {
	l := &Listener{
		capture: func() ([]float32, error) { return nil, nil },
		mode:    ModeOnline,
	}

	text, err := l.Listen(context.Background())
	require.NoError(t, err)
	assert.Empty(t, text)
}

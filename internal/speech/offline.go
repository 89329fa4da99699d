package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// OfflineRecognizer runs whisper.cpp locally, so recognition keeps
// working with no network at all.
type OfflineRecognizer struct {
	model    whisper.Model
	language string
}

func NewOfflineRecognizer(modelPath, language string) (*OfflineRecognizer, error) {
	if modelPath == "" {
		return nil, errors.New("empty model path")
	}
	if language == "" {
		language = "en"
	}
	m, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return &OfflineRecognizer{model: m, language: language}, nil
}

func (r *OfflineRecognizer) Close() error {
	if r.model == nil {
		return nil
	}
	return r.model.Close()
}

// Transcribe expects mono float32 PCM at 16kHz.
func (r *OfflineRecognizer) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	if len(pcm) == 0 {
		return "", nil
	}

	wctx, err := r.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("new context: %w", err)
	}
	if err := wctx.SetLanguage(r.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	wctx.SetThreads(uint(runtime.NumCPU()))

	if err := wctx.Process(pcm, nil, nil, nil); err != nil {
		return "", fmt.Errorf("process: %w", err)
	}

	var parts []string
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("next segment: %w", err)
		}
		parts = append(parts, seg.Text)
	}

	return strings.ToLower(strings.TrimSpace(strings.Join(parts, " "))), nil
}

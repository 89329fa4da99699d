package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"

	"kaju/internal/audio"
)

// OnlineRecognizer sends captured audio to the OpenAI transcription
// endpoint as a WAV upload.
type OnlineRecognizer struct {
	client openai.Client
	model  openai.AudioModel
}

func NewOnlineRecognizer(client openai.Client, model openai.AudioModel) *OnlineRecognizer {
	if model == "" {
		model = openai.AudioModelWhisper1
	}
	return &OnlineRecognizer{client: client, model: model}
}

func (r *OnlineRecognizer) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	blob, err := audio.EncodeWAV(pcm)
	if err != nil {
		return "", fmt.Errorf("encode wav: %w", err)
	}

	resp, err := r.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  openai.File(bytes.NewReader(blob), "utterance.wav", "audio/wav"),
		Model: r.model,
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			// The service answered; the audio just didn't transcribe.
			return "", fmt.Errorf("transcription: %w", err)
		}
		return "", fmt.Errorf("%w: %v", ErrOnlineUnavailable, err)
	}

	return strings.ToLower(strings.TrimSpace(resp.Text)), nil
}

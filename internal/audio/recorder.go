package audio

import (
	"math"
	"time"

	"github.com/gordonklaus/portaudio"
)

// SampleRate is the capture rate everything downstream expects.
const SampleRate = 16000

const (
	frameSize        = 320 // 20ms at 16kHz
	silenceThreshRMS = 0.015
	trailingSilence  = 600 * time.Millisecond
	maxUtterance     = 10 * time.Second
)

// Recorder captures one utterance from the default input device. Frames
// count as speech once their RMS level crosses the threshold; capture
// ends after a stretch of trailing silence or the hard length cap.
type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Init() error {
	return portaudio.Initialize()
}

func (r *Recorder) Close() {
	portaudio.Terminate()
}

// Record blocks until one utterance has been captured and returns mono
// float32 PCM at SampleRate. An empty slice means nothing was said.
func (r *Recorder) Record() ([]float32, error) {
	buf := make([]float32, frameSize)
	out := make([]float32, 0, SampleRate*3)

	stream, err := portaudio.OpenDefaultStream(1, 0, SampleRate, len(buf), buf)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, err
	}
	defer stream.Stop()

	const frameDur = time.Second * frameSize / SampleRate
	silentFrames := int(trailingSilence / frameDur)
	maxFrames := int(maxUtterance / frameDur)

	var speaking bool
	var quiet int

	for i := 0; i < maxFrames; i++ {
		if err := stream.Read(); err != nil {
			return nil, err
		}

		if frameRMS(buf) > silenceThreshRMS {
			speaking = true
			quiet = 0
			out = append(out, buf...)
			continue
		}

		if speaking {
			quiet++
			if quiet >= silentFrames {
				break
			}
			out = append(out, buf...)
		}
	}

	return out, nil
}

func frameRMS(f []float32) float64 {
	var s float64
	for _, x := range f {
		s += float64(x * x)
	}
	return math.Sqrt(s / float64(len(f)))
}

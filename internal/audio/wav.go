package audio

import (
	"errors"
	"io"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// EncodeWAV packs mono float32 PCM at SampleRate into a 16-bit WAV
// blob, the shape the online recognizer upload wants.
func EncodeWAV(pcm []float32) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, errors.New("no samples")
	}

	data := make([]int, len(pcm))
	for i, x := range pcm {
		if x > 1 {
			x = 1
		}
		if x < -1 {
			x = -1
		}
		data[i] = int(x * 32767)
	}

	var buf seekBuffer
	enc := wav.NewEncoder(&buf, SampleRate, 16, 1, 1)
	err := enc.Write(&gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: SampleRate},
		SourceBitDepth: 16,
		Data:           data,
	})
	if err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.data, nil
}

// seekBuffer is the minimal in-memory io.WriteSeeker the wav encoder
// needs to patch up chunk sizes after writing.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.data) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:], p)
	b.pos += len(p)
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, errors.New("bad whence")
	}
	if pos < 0 {
		return 0, errors.New("negative position")
	}
	b.pos = int(pos)
	return pos, nil
}

package audio

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var sinkVolumeRe = regexp.MustCompile(`(\d+)\s*%`)

// Ducker lowers the volume of other playback streams while the
// microphone is open, so music doesn't bleed into the recognizer, and
// restores them afterwards. PulseAudio/PipeWire via pactl.
type Ducker struct {
	factor   float64
	original map[int]int // sink-input id -> volume % before ducking
}

func NewDucker(factor float64) *Ducker {
	if factor <= 0 || factor >= 1 {
		factor = 0.3
	}
	return &Ducker{factor: factor}
}

// Duck lowers every current playback stream. No-op when already ducked.
func (d *Ducker) Duck(ctx context.Context) error {
	if d.original != nil {
		return nil
	}

	volumes, err := sinkInputVolumes(ctx)
	if err != nil {
		return err
	}

	d.original = volumes
	for id, vol := range volumes {
		target := int(float64(vol) * d.factor)
		if err := setSinkInputVolume(ctx, id, target); err != nil {
			return fmt.Errorf("duck sink-input %d: %w", id, err)
		}
	}
	return nil
}

// Restore puts every stream ducked earlier back to its old volume.
// Streams that disappeared in the meantime are skipped.
func (d *Ducker) Restore(ctx context.Context) error {
	if d.original == nil {
		return nil
	}

	current, err := sinkInputVolumes(ctx)
	if err != nil {
		return err
	}

	for id, vol := range d.original {
		if _, alive := current[id]; !alive {
			continue
		}
		if err := setSinkInputVolume(ctx, id, vol); err != nil {
			return fmt.Errorf("restore sink-input %d: %w", id, err)
		}
	}
	d.original = nil
	return nil
}

func sinkInputVolumes(ctx context.Context) (map[int]int, error) {
	out, err := exec.CommandContext(ctx, "pactl", "list", "sink-inputs").Output()
	if err != nil {
		return nil, fmt.Errorf("pactl list sink-inputs: %w", err)
	}

	volumes := make(map[int]int)
	blocks := strings.Split(string(out), "Sink Input #")
	for _, block := range blocks[1:] {
		nl := strings.IndexByte(block, '\n')
		if nl <= 0 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(block[:nl]))
		if err != nil {
			continue
		}
		for _, line := range strings.Split(block[nl+1:], "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "Volume:") {
				continue
			}
			if m := sinkVolumeRe.FindStringSubmatch(line); m != nil {
				if v, err := strconv.Atoi(m[1]); err == nil {
					volumes[id] = v
				}
			}
			break
		}
	}
	return volumes, nil
}

func setSinkInputVolume(ctx context.Context, id, percent int) error {
	if percent < 0 {
		percent = 0
	}
	return exec.CommandContext(ctx, "pactl", "set-sink-input-volume",
		strconv.Itoa(id), strconv.Itoa(percent)+"%").Run()
}

package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"no delimiter", "open chrome", []string{"open chrome"}},
		{"then", "open chrome then search cats", []string{"open chrome", "search cats"}},
		{"and then", "open chrome and then search cats", []string{"open chrome", "search cats"}},
		{"comma", "open chrome, search cats", []string{"open chrome", "search cats"}},
		{"semicolon", "open chrome; search cats", []string{"open chrome", "search cats"}},
		{"mixed", "open chrome then search cats, time", []string{"open chrome", "search cats", "time"}},
		{"empty chunks dropped", "then , ; then", nil},
		{"then inside a word stays", "open authentic app", []string{"open authentic app"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSplitIdempotentOnChunk(t *testing.T) {
	for _, chunk := range []string{"open chrome", "search tamil songs", "what time is it"} {
		assert.Equal(t, []string{chunk}, Split(chunk))
	}
}

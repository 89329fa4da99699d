package intent

import (
	"regexp"
	"strings"
)

// "and then" must come before "then" so the chaining word "and" does not
// leak into the preceding chunk.
var chunkDelim = regexp.MustCompile(`\band then\b|\bthen\b|,|;`)

// Split breaks a normalized utterance into ordered chunks on chaining
// delimiters. Empty chunks are dropped; with no delimiter present the
// result is the trimmed input alone.
func Split(text string) []string {
	parts := chunkDelim.Split(text, -1)
	chunks := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			chunks = append(chunks, p)
		}
	}
	return chunks
}

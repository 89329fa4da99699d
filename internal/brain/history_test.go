package brain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryTrimsToWindow(t *testing.T) {
	h := NewHistory(4)

	for i := 0; i < 5; i++ {
		h.Add("user", fmt.Sprintf("q%d", i))
		h.Add("assistant", fmt.Sprintf("a%d", i))
	}

	msgs := h.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, Message{Role: "user", Content: "q3"}, msgs[0])
	assert.Equal(t, Message{Role: "assistant", Content: "a4"}, msgs[3])
}

func TestHistoryBelowWindowKeepsEverything(t *testing.T) {
	h := NewHistory(10)
	h.Add("user", "hello")
	h.Add("assistant", "hi")
	assert.Len(t, h.Messages(), 2)
}

func TestServiceErrorKinds(t *testing.T) {
	err := classify(fmt.Errorf("dial tcp: connection refused"))
	require.NotNil(t, err)
	assert.Equal(t, KindUnreachable, err.Kind)
	assert.Equal(t, "unreachable", err.Kind.String())
}

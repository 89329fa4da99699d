package brain

// Message is one role-tagged entry of the conversation window.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// History keeps the short-term conversation context sent with every
// request: the most recent messages up to a fixed limit. The system
// preamble lives outside and is always prepended by the caller.
type History struct {
	limit int
	msgs  []Message
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

func (h *History) Add(role, content string) {
	h.msgs = append(h.msgs, Message{Role: role, Content: content})
	if len(h.msgs) > h.limit {
		h.msgs = h.msgs[len(h.msgs)-h.limit:]
	}
}

func (h *History) Messages() []Message {
	return h.msgs
}

package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLinks() Links {
	return Links{
		Repository:  "https://github.com/kaju-ai/kaju",
		Project:     "https://github.com/kaju-ai/kaju",
		ProjectName: "kaju",
	}
}

func TestClassifyRules(t *testing.T) {
	c := NewClassifier(testLinks())

	tests := []struct {
		name     string
		chunk    string
		expected Action
	}{
		{"play music exact", "play music", Action{Kind: KindPlayMusic}},
		{"play some music", "play some music", Action{Kind: KindPlayMusic}},
		{"play music via youtube", "play my music on youtube", Action{Kind: KindPlayMusic}},
		{"stop it", "stop it", Action{Kind: KindStopMedia}},
		{"pause music", "pause music", Action{Kind: KindStopMedia}},
		{"bare stop is exit not media", "stop", Action{Kind: KindExit}},
		{"linkedin open", "open my linkedin", Action{Kind: KindLinkedIn}},
		{"linkedin profile with firefox", "linkedin profile in firefox",
			Action{Kind: KindLinkedIn, Browser: "firefox"}},
		{"linkedin misheard firefox", "go to linkedin in fire fox",
			Action{Kind: KindLinkedIn, Browser: "firefox"}},
		{"repository phrase", "open my repo",
			Action{Kind: KindOpenURL, URL: "https://github.com/kaju-ai/kaju", Browser: "firefox"}},
		{"github project", "open kaju on github",
			Action{Kind: KindOpenURL, URL: "https://github.com/kaju-ai/kaju"}},
		{"whatsapp", "send whatsapp to 94771234567 hello there",
			Action{Kind: KindWhatsApp, To: "94771234567", Message: "hello there"}},
		{"whatsapp long form", "send a whatsapp message to amma call me back",
			Action{Kind: KindWhatsApp, To: "amma", Message: "call me back"}},
		{"whatsapp without message falls through", "send whatsapp to shalu",
			Action{Kind: KindUnknown, Raw: "send whatsapp to shalu"}},
		{"youtube search beats generic open", "open youtube play tamil songs",
			Action{Kind: KindYouTubeSearch, Query: "tamil songs"}},
		{"youtube search verb", "youtube search lo-fi beats",
			Action{Kind: KindYouTubeSearch, Query: "lo-fi beats"}},
		{"youtube home", "open youtube", Action{Kind: KindYouTubeHome}},
		{"youtube bare", "youtube", Action{Kind: KindYouTubeHome}},
		{"generic open", "open chrome", Action{Kind: KindOpen, Target: "chrome"}},
		{"open with politeness prefix", "please open downloads",
			Action{Kind: KindOpen, Target: "downloads"}},
		{"generic search", "search cats", Action{Kind: KindSearch, Query: "cats"}},
		{"time", "what time is it", Action{Kind: KindTime}},
		{"date", "what is the date today", Action{Kind: KindDate}},
		{"shutdown", "shutdown now", Action{Kind: KindShutdown}},
		{"shut down split", "shut down the computer", Action{Kind: KindShutdown}},
		{"restart", "restart please", Action{Kind: KindRestart}},
		{"lock", "lock the screen", Action{Kind: KindLock}},
		{"time beats date in one chunk", "time and date", Action{Kind: KindTime}},
		{"exit", "exit", Action{Kind: KindExit}},
		{"quit", "quit", Action{Kind: KindExit}},
		{"unknown", "blah blah nonsense", Action{Kind: KindUnknown, Raw: "blah blah nonsense"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.chunk))
		})
	}
}

func TestParseChainedUtterance(t *testing.T) {
	c := NewClassifier(testLinks())

	actions := c.Parse("Open chrome then search cats then time")
	require.Len(t, actions, 3)
	assert.Equal(t, Action{Kind: KindOpen, Target: "chrome"}, actions[0])
	assert.Equal(t, Action{Kind: KindSearch, Query: "cats"}, actions[1])
	assert.Equal(t, Action{Kind: KindTime}, actions[2])
}

func TestParseUnknownUtterance(t *testing.T) {
	c := NewClassifier(testLinks())

	actions := c.Parse("blah blah nonsense")
	require.Len(t, actions, 1)
	assert.Equal(t, Action{Kind: KindUnknown, Raw: "blah blah nonsense"}, actions[0])
}

func TestLooksLikeAction(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"ai", true},
		{"open chrome", true},
		{"search cats", true},
		{"send whatsapp to 94771234567 hi", true},
		{"what time is it", true},
		{"play music", true},
		{"tell me a joke", false},
		{"how are you today", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LooksLikeAction(tt.text), tt.text)
	}
}

package intent

import (
	"log/slog"
	"regexp"
	"strings"
)

// Links are the fixed destinations some rules resolve to.
type Links struct {
	Repository  string // "open my repository" target
	Project     string // github project page
	ProjectName string // word that, next to "github", means the project page
}

// whatsappRe: recipient is the shortest token run after "to"; the rest is
// the message. With no message text after the recipient there is no match.
var (
	whatsappRe = regexp.MustCompile(`send (?:a )?whatsapp (?:message )?to\s+(.+?)\s+(.+)$`)
	youtubeRe  = regexp.MustCompile(`\byoutube\b.*?\b(?:play|search)\s+(.+)$`)
	openRe     = regexp.MustCompile(`\bopen\s+(.+)$`)
	searchRe   = regexp.MustCompile(`\bsearch\s+(.+)$`)
)

var (
	playPhrases = []string{"play music", "play some music"}
	stopPhrases = []string{"stop it", "stop music", "stop the music", "pause music", "pause it"}
	repoPhrases = []string{
		"open my repository", "open my repo",
		"open the repository", "open repository", "open repo",
	}
	exitPhrases = []string{"exit", "quit", "stop"}
)

type rule struct {
	name  string
	match func(chunk string) (Action, bool)
}

// Classifier maps one chunk to exactly one Action by trying an ordered
// rule list; the first rule that matches wins. Order is load-bearing:
// specific phrasings (youtube play, linkedin, fixed URLs) sit above the
// generic "open"/"search" rules whose patterns would otherwise swallow
// them, and the quick substring intents come last among the matchers.
type Classifier struct {
	links Links
	rules []rule
}

func NewClassifier(links Links) *Classifier {
	c := &Classifier{links: links}
	c.rules = []rule{
		{"play-music", c.matchPlayMusic},
		{"stop-media", c.matchStopMedia},
		{"linkedin", c.matchLinkedIn},
		{"my-repository", c.matchRepository},
		{"github-project", c.matchProject},
		{"whatsapp", c.matchWhatsApp},
		{"youtube-search", c.matchYouTubeSearch},
		{"youtube-home", c.matchYouTubeHome},
		{"open", c.matchOpen},
		{"search", c.matchSearch},
		{"quick-intents", c.matchQuickIntent},
		{"exit", c.matchExit},
	}
	return c
}

// Classify runs the rule list over one chunk. A chunk no rule claims
// becomes an Unknown action carrying the original text.
func (c *Classifier) Classify(chunk string) Action {
	for _, r := range c.rules {
		if a, ok := r.match(chunk); ok {
			slog.Debug("rule matched", "rule", r.name, "kind", a.Kind.String())
			return a
		}
	}
	return Action{Kind: KindUnknown, Raw: chunk}
}

// Parse normalizes, splits and classifies a whole utterance.
func (c *Classifier) Parse(text string) []Action {
	chunks := Split(Normalize(text))
	actions := make([]Action, 0, len(chunks))
	for _, chunk := range chunks {
		actions = append(actions, c.Classify(chunk))
	}
	return actions
}

func (c *Classifier) matchPlayMusic(chunk string) (Action, bool) {
	for _, p := range playPhrases {
		if chunk == p {
			return Action{Kind: KindPlayMusic}, true
		}
	}
	if containsAll(chunk, "play", "music", "youtube") {
		return Action{Kind: KindPlayMusic}, true
	}
	return Action{}, false
}

func (c *Classifier) matchStopMedia(chunk string) (Action, bool) {
	for _, p := range stopPhrases {
		if chunk == p {
			return Action{Kind: KindStopMedia}, true
		}
	}
	return Action{}, false
}

func (c *Classifier) matchLinkedIn(chunk string) (Action, bool) {
	if !strings.Contains(chunk, "linkedin") {
		return Action{}, false
	}
	if !strings.Contains(chunk, "open") &&
		!strings.Contains(chunk, "go to") &&
		!strings.Contains(chunk, "profile") {
		return Action{}, false
	}
	return Action{Kind: KindLinkedIn, Browser: browserHint(chunk)}, true
}

func (c *Classifier) matchRepository(chunk string) (Action, bool) {
	for _, p := range repoPhrases {
		if chunk == p {
			return Action{Kind: KindOpenURL, URL: c.links.Repository, Browser: "firefox"}, true
		}
	}
	return Action{}, false
}

func (c *Classifier) matchProject(chunk string) (Action, bool) {
	if c.links.ProjectName == "" {
		return Action{}, false
	}
	if strings.Contains(chunk, "github") && strings.Contains(chunk, c.links.ProjectName) {
		return Action{Kind: KindOpenURL, URL: c.links.Project, Browser: browserHint(chunk)}, true
	}
	return Action{}, false
}

func (c *Classifier) matchWhatsApp(chunk string) (Action, bool) {
	m := whatsappRe.FindStringSubmatch(chunk)
	if m == nil {
		return Action{}, false
	}
	return Action{Kind: KindWhatsApp, To: m[1], Message: m[2]}, true
}

func (c *Classifier) matchYouTubeSearch(chunk string) (Action, bool) {
	m := youtubeRe.FindStringSubmatch(chunk)
	if m == nil {
		return Action{}, false
	}
	return Action{Kind: KindYouTubeSearch, Query: strings.TrimSpace(m[1])}, true
}

func (c *Classifier) matchYouTubeHome(chunk string) (Action, bool) {
	if chunk == "open youtube" || chunk == "youtube" {
		return Action{Kind: KindYouTubeHome}, true
	}
	return Action{}, false
}

func (c *Classifier) matchOpen(chunk string) (Action, bool) {
	m := openRe.FindStringSubmatch(chunk)
	if m == nil {
		return Action{}, false
	}
	return Action{Kind: KindOpen, Target: strings.TrimSpace(m[1])}, true
}

func (c *Classifier) matchSearch(chunk string) (Action, bool) {
	m := searchRe.FindStringSubmatch(chunk)
	if m == nil {
		return Action{}, false
	}
	return Action{Kind: KindSearch, Query: strings.TrimSpace(m[1])}, true
}

// matchQuickIntent covers the bare keyword intents; list position is the
// tie-break when a chunk mentions more than one.
func (c *Classifier) matchQuickIntent(chunk string) (Action, bool) {
	switch {
	case strings.Contains(chunk, "time"):
		return Action{Kind: KindTime}, true
	case strings.Contains(chunk, "date"):
		return Action{Kind: KindDate}, true
	case strings.Contains(chunk, "shutdown"), strings.Contains(chunk, "shut down"):
		return Action{Kind: KindShutdown}, true
	case strings.Contains(chunk, "restart"):
		return Action{Kind: KindRestart}, true
	case strings.Contains(chunk, "lock"):
		return Action{Kind: KindLock}, true
	}
	return Action{}, false
}

func (c *Classifier) matchExit(chunk string) (Action, bool) {
	for _, p := range exitPhrases {
		if chunk == p {
			return Action{Kind: KindExit}, true
		}
	}
	return Action{}, false
}

// browserHint picks firefox when the chunk names it; "fire fox" is what
// speech recognition tends to produce for it.
func browserHint(chunk string) string {
	if strings.Contains(chunk, "firefox") || strings.Contains(chunk, "fire fox") {
		return "firefox"
	}
	return ""
}

func containsAll(s string, words ...string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

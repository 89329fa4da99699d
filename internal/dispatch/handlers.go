package dispatch

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"kaju/internal/intent"
)

// SpeakFunc voices one line of feedback to the user.
type SpeakFunc func(text string)

// Options is the read-only configuration the handlers consult.
type Options struct {
	Apps       map[string]string // app name -> executable path
	Contacts   map[string]string // contact name -> phone number
	ProfileURL string            // LinkedIn profile
	MusicURL   string            // fixed media destination for "play music"
	Home       string            // user home, for folder shortcuts
	Now        func() time.Time
}

// Handlers binds each action kind to its one side effect. Recoverable
// problems (unknown app, short phone number, empty query) never escape:
// they turn into a spoken clarification and the loop moves on.
type Handlers struct {
	sys   System
	speak SpeakFunc
	opt   Options
}

func NewHandlers(sys System, speak SpeakFunc, opt Options) *Handlers {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Home == "" {
		opt.Home, _ = os.UserHomeDir()
	}
	return &Handlers{sys: sys, speak: speak, opt: opt}
}

func (h *Handlers) Handle(a intent.Action) {
	switch a.Kind {
	case intent.KindOpen:
		h.openTarget(a.Target)
	case intent.KindSearch:
		h.webSearch(a.Query)
	case intent.KindYouTubeSearch:
		h.youtubeSearch(a.Query)
	case intent.KindYouTubeHome:
		h.openLink("https://www.youtube.com", "", "Opening YouTube")
	case intent.KindOpenURL:
		h.openLink(a.URL, a.Browser, "Opening the page")
	case intent.KindLinkedIn:
		h.linkedIn(a.Browser)
	case intent.KindPlayMusic:
		h.openLink(h.opt.MusicURL, "", "Playing music")
	case intent.KindStopMedia:
		h.stopMedia()
	case intent.KindWhatsApp:
		h.whatsApp(a.To, a.Message)
	case intent.KindTime:
		h.speak("The time is " + h.opt.Now().Format("3:04 PM"))
	case intent.KindDate:
		h.speak("Today is " + h.opt.Now().Format("January 2, 2006"))
	case intent.KindLock:
		h.power("lock", "Locking the computer.")
	case intent.KindShutdown:
		h.power("shutdown", "Shutting down.")
	case intent.KindRestart:
		h.power("restart", "Restarting.")
	case intent.KindExit:
		h.speak("Goodbye.")
	}
}

var folderShortcuts = map[string]string{
	"documents": "Documents", "document": "Documents", "docs": "Documents",
	"downloads": "Downloads", "download": "Downloads",
	"desktop": "Desktop",
}

// browserCandidates lists fallback install locations tried after the
// configured path, plus the page opened when nothing is installed.
var browserCandidates = map[string]struct {
	paths    []string
	fallback string
}{
	"chrome": {
		paths:    []string{"/usr/bin/google-chrome", "/usr/bin/google-chrome-stable", "/usr/bin/chromium"},
		fallback: "https://www.google.com",
	},
	"firefox": {
		paths:    []string{"/usr/bin/firefox", "/usr/local/bin/firefox"},
		fallback: "https://www.mozilla.org/firefox/",
	},
}

func (h *Handlers) openTarget(target string) {
	t := strings.TrimSpace(strings.ToLower(target))

	if dir, ok := folderShortcuts[t]; ok {
		h.openPath(filepath.Join(h.opt.Home, dir), "Opening "+dir)
		return
	}

	name := t
	if name == "google chrome" {
		name = "chrome"
	}
	if name == "mozilla firefox" {
		name = "firefox"
	}
	if cand, ok := browserCandidates[name]; ok {
		paths := append([]string{h.opt.Apps[name]}, cand.paths...)
		for _, p := range paths {
			if p == "" {
				continue
			}
			if _, err := os.Stat(p); err != nil {
				continue
			}
			h.launch(p, "Opening "+name)
			return
		}
		h.openLink(cand.fallback, "", name+" is not installed. Opened the default page.")
		return
	}

	if path, ok := h.opt.Apps[t]; ok {
		h.launch(path, "Opening "+t)
		return
	}

	h.speak(fmt.Sprintf("I don't know %q. Add it to the apps list.", target))
}

func (h *Handlers) webSearch(query string) {
	q := strings.TrimSpace(query)
	if q == "" {
		h.speak("Tell me what to search.")
		return
	}
	h.openLink("https://www.google.com/search?q="+url.QueryEscape(q), "", "Searching "+q)
}

func (h *Handlers) youtubeSearch(query string) {
	q := strings.TrimSpace(query)
	if q == "" {
		h.speak("Tell me what to search on YouTube.")
		return
	}
	h.openLink("https://www.youtube.com/results?search_query="+url.QueryEscape(q), "",
		"Searching YouTube for "+q)
}

func (h *Handlers) linkedIn(browser string) {
	if h.opt.ProfileURL == "" {
		h.speak("No LinkedIn profile is configured.")
		return
	}
	h.openLink(h.opt.ProfileURL, browser, "Opening LinkedIn")
}

func (h *Handlers) stopMedia() {
	if err := h.sys.MediaKey("stop"); err != nil {
		slog.Warn("media key failed", "err", err)
		h.speak("I couldn't stop the music.")
		return
	}
	h.speak("Stopping the music.")
}

var nonDigits = regexp.MustCompile(`\D`)

func (h *Handlers) whatsApp(to, message string) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		h.speak("What message should I send?")
		return
	}

	number := strings.TrimSpace(strings.ToLower(to))
	if resolved, ok := h.opt.Contacts[number]; ok {
		number = resolved
	}
	digits := nonDigits.ReplaceAllString(number, "")
	if len(digits) < 10 {
		h.speak("For WhatsApp, say a phone number like 9477 123 4567, or add the name to contacts.")
		return
	}

	link := "https://wa.me/" + digits + "?text=" + url.QueryEscape(msg)
	h.openLink(link, "", "WhatsApp chat opened. Press send in WhatsApp.")
}

func (h *Handlers) power(action, confirmation string) {
	h.speak(confirmation)
	if err := h.sys.Power(action); err != nil {
		slog.Warn("power command failed", "action", action, "err", err)
		h.speak("That didn't work.")
	}
}

func (h *Handlers) launch(path, confirmation string) {
	if err := h.sys.Launch(path); err != nil {
		slog.Warn("launch failed", "path", path, "err", err)
		h.speak("I couldn't start that.")
		return
	}
	h.speak(confirmation)
}

func (h *Handlers) openPath(path, confirmation string) {
	if err := h.sys.Open(path); err != nil {
		slog.Warn("open failed", "path", path, "err", err)
		h.speak("I couldn't open that.")
		return
	}
	h.speak(confirmation)
}

func (h *Handlers) openLink(link, browser, confirmation string) {
	if err := h.sys.OpenURL(link, browser); err != nil {
		slog.Warn("open url failed", "url", link, "err", err)
		h.speak("I couldn't open that page.")
		return
	}
	h.speak(confirmation)
}

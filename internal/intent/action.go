package intent

// Kind identifies what an Action does when dispatched.
type Kind int

const (
	KindUnknown Kind = iota
	KindOpen
	KindSearch
	KindYouTubeSearch
	KindYouTubeHome
	KindOpenURL
	KindLinkedIn
	KindPlayMusic
	KindStopMedia
	KindWhatsApp
	KindTime
	KindDate
	KindLock
	KindShutdown
	KindRestart
	KindExit
)

var kindNames = map[Kind]string{
	KindUnknown:       "unknown",
	KindOpen:          "open",
	KindSearch:        "search",
	KindYouTubeSearch: "youtube_search",
	KindYouTubeHome:   "youtube_home",
	KindOpenURL:       "open_url",
	KindLinkedIn:      "linkedin",
	KindPlayMusic:     "play_music",
	KindStopMedia:     "stop_media",
	KindWhatsApp:      "whatsapp",
	KindTime:          "time",
	KindDate:          "date",
	KindLock:          "lock",
	KindShutdown:      "shutdown",
	KindRestart:       "restart",
	KindExit:          "exit",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Action is one dispatch-ready instruction derived from a chunk.
// Payload fields are meaningful only for the kinds that use them.
type Action struct {
	Kind    Kind
	Target  string // Open
	Query   string // Search, YouTubeSearch
	URL     string // OpenURL
	Browser string // OpenURL, LinkedIn: preferred browser, empty = default
	To      string // WhatsApp recipient (name or number)
	Message string // WhatsApp message body
	Raw     string // Unknown: the original chunk
}

package dispatch

import (
	"fmt"
	"os/exec"
)

// System is the OS capability surface the handlers call into. Everything
// here is a single fire-and-forget primitive; correctness beyond invoking
// it once is not this package's problem.
type System interface {
	// Launch starts an executable by path.
	Launch(path string) error
	// Open opens a file or folder with the desktop's default handler.
	Open(path string) error
	// OpenURL opens a URL, in the named browser when one is given.
	OpenURL(url, browser string) error
	// MediaKey sends a media control event ("stop", "play-pause").
	MediaKey(key string) error
	// Power issues a session power command: "lock", "shutdown", "restart".
	Power(action string) error
}

// ExecSystem performs the side effects with external commands, the same
// way the rest of the desktop tooling does.
type ExecSystem struct{}

func (ExecSystem) Launch(path string) error {
	return exec.Command(path).Start()
}

func (ExecSystem) Open(path string) error {
	return exec.Command("xdg-open", path).Start()
}

func (ExecSystem) OpenURL(url, browser string) error {
	if browser != "" {
		return exec.Command(browser, url).Start()
	}
	return exec.Command("xdg-open", url).Start()
}

func (ExecSystem) MediaKey(key string) error {
	return exec.Command("playerctl", key).Run()
}

func (ExecSystem) Power(action string) error {
	switch action {
	case "lock":
		return exec.Command("loginctl", "lock-session").Run()
	case "shutdown":
		return exec.Command("systemctl", "poweroff").Run()
	case "restart":
		return exec.Command("systemctl", "reboot").Run()
	default:
		return fmt.Errorf("unknown power action %q", action)
	}
}

package wallpaper

import (
	"strings"
)

func init() {
	Register("macos", "macOS via osascript (System Events)", func(opts Options) (Wallpaper, error) {
		return &MacOS{run: opts.runner()}, nil
	})
}

// MacOS sets the picture of every desktop through AppleScript.
type MacOS struct {
	run Runner
}

// Name returns "macos".
func (m *MacOS) Name() string { return "macos" }

func (m *MacOS) script(src string) (string, error) {
	out, err := m.run("osascript", "-e", src)
	return strings.TrimSpace(string(out)), err
}

// Current returns the picture path of the current desktop.
func (m *MacOS) Current() (string, error) {
	out, err := m.script(`tell application "System Events" to get picture of current desktop`)
	if err != nil {
		return "", adapterErr(m.Name(), "get", err)
	}
	return out, nil
}

// Set shows path on every desktop.
func (m *MacOS) Set(path string) error {
	src := `tell application "System Events" to tell every desktop to set picture to ` + appleString(path)
	if _, err := m.script(src); err != nil {
		return adapterErr(m.Name(), "set", err)
	}
	return nil
}

// appleString quotes s as an AppleScript string literal.
func appleString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

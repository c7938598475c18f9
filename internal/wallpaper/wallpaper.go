// Package wallpaper reads and sets the desktop background. Each platform is a
// backend registered by name; the platform layer picks one at startup.
package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Wallpaper is the capability every backend provides.
type Wallpaper interface {
	// Name returns the backend name used for selection (e.g. "gnome").
	Name() string

	// Current returns an identifier for the background in use, suitable for
	// passing back to Set to restore it. Empty means nothing to restore.
	Current() (string, error)

	// Set shows the image at path (or a previously returned identifier).
	Set(path string) error
}

// Styler is implemented by backends that support a scaling mode.
type Styler interface {
	Style() (string, error)
	SetStyle(style string) error
}

var (
	// ErrAdapter is wrapped by every failure talking to the desktop.
	ErrAdapter = errors.New("wallpaper: adapter failure")

	// ErrUnsupported is returned when a backend cannot run on this platform.
	ErrUnsupported = errors.New("wallpaper: backend not supported on this platform")
)

// AdapterError records which backend operation failed.
type AdapterError struct {
	Backend string
	Op      string
	Err     error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("wallpaper: %s %s: %v", e.Backend, e.Op, e.Err)
}

// Unwrap lets errors.Is match both ErrAdapter and the cause.
func (e *AdapterError) Unwrap() []error {
	return []error{ErrAdapter, e.Err}
}

func adapterErr(backend, op string, err error) error {
	return &AdapterError{Backend: backend, Op: op, Err: err}
}

// Runner executes an external command and returns its combined output.
type Runner func(name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return out, nil
}

// Options are passed to backend factories.
type Options struct {
	Runner Runner // Defaults to ExecRunner
}

func (o Options) runner() Runner {
	if o.Runner != nil {
		return o.Runner
	}
	return ExecRunner
}

// Detect picks the backend name for "auto".
func Detect() string {
	switch runtime.GOOS {
	case "windows":
		return "windows"
	case "darwin":
		return "macos"
	}

	desktop := strings.ToLower(os.Getenv("XDG_CURRENT_DESKTOP"))
	for _, d := range []string{"gnome", "unity", "ubuntu", "pantheon", "budgie"} {
		if strings.Contains(desktop, d) {
			if _, err := exec.LookPath("gsettings"); err == nil {
				return "gnome"
			}
		}
	}
	return "file"
}

// Open resolves name ("auto" or a registered backend) and creates it.
func Open(name string, opts Options) (Wallpaper, error) {
	if name == "" || name == "auto" {
		name = Detect()
	}
	return Create(name, opts)
}

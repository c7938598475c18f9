package wallpaper

import (
	"net/url"
	"path/filepath"
	"strings"
)

const gnomeSchema = "org.gnome.desktop.background"

func init() {
	Register("gnome", "GNOME and derivatives via gsettings", func(opts Options) (Wallpaper, error) {
		return &Gnome{run: opts.runner()}, nil
	})
}

// Gnome sets the background through gsettings. Both the light and dark
// picture URIs are updated so the board shows regardless of colour scheme.
type Gnome struct {
	run Runner

	savedLight string
	savedDark  string
}

// Name returns "gnome".
func (g *Gnome) Name() string { return "gnome" }

func (g *Gnome) get(key string) (string, error) {
	out, err := g.run("gsettings", "get", gnomeSchema, key)
	if err != nil {
		return "", err
	}
	return unquote(string(out)), nil
}

func (g *Gnome) set(key, value string) error {
	_, err := g.run("gsettings", "set", gnomeSchema, key, value)
	return err
}

// Current returns the picture URI in use.
func (g *Gnome) Current() (string, error) {
	light, err := g.get("picture-uri")
	if err != nil {
		return "", adapterErr(g.Name(), "get", err)
	}
	// Older GNOME has no dark key.
	dark, err := g.get("picture-uri-dark")
	if err != nil {
		dark = ""
	}

	g.savedLight, g.savedDark = light, dark
	return light, nil
}

// Set points both picture URIs at path. Restoring the identifier returned
// by Current also restores the dark URI that was saved with it.
func (g *Gnome) Set(path string) error {
	uri := fileURI(path)

	if err := g.set("picture-uri", uri); err != nil {
		return adapterErr(g.Name(), "set", err)
	}

	dark := uri
	if uri == g.savedLight && g.savedDark != "" {
		dark = g.savedDark
	}
	if err := g.set("picture-uri-dark", dark); err != nil {
		return adapterErr(g.Name(), "set", err)
	}
	return nil
}

// Style returns the picture-options value (e.g. "zoom").
func (g *Gnome) Style() (string, error) {
	s, err := g.get("picture-options")
	if err != nil {
		return "", adapterErr(g.Name(), "get style", err)
	}
	return s, nil
}

// SetStyle sets picture-options.
func (g *Gnome) SetStyle(style string) error {
	if err := g.set("picture-options", style); err != nil {
		return adapterErr(g.Name(), "set style", err)
	}
	return nil
}

// unquote strips the GVariant string quoting gsettings prints.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return s
}

// fileURI converts a filesystem path to a file:// URI. URIs pass through.
func fileURI(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

//go:build windows

package wallpaper

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	spiGetDeskWallpaper = 0x0073
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
	maxPath             = 260
)

var procSystemParametersInfoW = windows.NewLazySystemDLL("user32.dll").NewProc("SystemParametersInfoW")

// windowsStyles maps style names to WallpaperStyle / TileWallpaper values.
var windowsStyles = map[string][2]string{
	"center":  {"0", "0"},
	"tile":    {"0", "1"},
	"stretch": {"2", "0"},
	"fit":     {"6", "0"},
	"fill":    {"10", "0"},
	"span":    {"22", "0"},
}

func newWindows(Options) (Wallpaper, error) {
	if err := procSystemParametersInfoW.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return &Windows{}, nil
}

// Windows sets the background with SystemParametersInfoW and reads the
// scaling mode from the per-user desktop registry key.
type Windows struct{}

// Name returns "windows".
func (w *Windows) Name() string { return "windows" }

// Current returns the wallpaper path.
func (w *Windows) Current() (string, error) {
	buf := make([]uint16, maxPath)
	r, _, err := procSystemParametersInfoW.Call(
		spiGetDeskWallpaper,
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&buf[0])),
		0,
	)
	if r == 0 {
		return "", adapterErr(w.Name(), "get", err)
	}
	return windows.UTF16ToString(buf), nil
}

// Set shows the image at path and persists it to the user profile.
func (w *Windows) Set(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return adapterErr(w.Name(), "set", err)
	}
	r, _, err := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendChange,
	)
	if r == 0 {
		return adapterErr(w.Name(), "set", err)
	}
	return nil
}

// Style returns the current scaling mode name.
func (w *Windows) Style() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.QUERY_VALUE)
	if err != nil {
		return "", adapterErr(w.Name(), "get style", err)
	}
	defer k.Close()

	style, _, err := k.GetStringValue("WallpaperStyle")
	if err != nil {
		return "", adapterErr(w.Name(), "get style", err)
	}
	tile, _, _ := k.GetStringValue("TileWallpaper")

	for name, v := range windowsStyles {
		if v[0] == style && v[1] == tile {
			return name, nil
		}
	}
	return "fill", nil
}

// SetStyle writes the scaling mode. It takes effect on the next Set.
func (w *Windows) SetStyle(style string) error {
	v, ok := windowsStyles[style]
	if !ok {
		return adapterErr(w.Name(), "set style", fmt.Errorf("unknown style %q", style))
	}

	k, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.SET_VALUE)
	if err != nil {
		return adapterErr(w.Name(), "set style", err)
	}
	defer k.Close()

	if err := k.SetStringValue("WallpaperStyle", v[0]); err != nil {
		return adapterErr(w.Name(), "set style", err)
	}
	if err := k.SetStringValue("TileWallpaper", v[1]); err != nil {
		return adapterErr(w.Name(), "set style", err)
	}
	return nil
}

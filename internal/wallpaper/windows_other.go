//go:build !windows

package wallpaper

func newWindows(Options) (Wallpaper, error) {
	return nil, ErrUnsupported
}

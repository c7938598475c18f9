package wallpaper

func init() {
	Register("file", "Only write the PNG; point any wallpaper tool at it", func(Options) (Wallpaper, error) {
		return &File{}, nil
	})
}

// File leaves the desktop alone. The rendered PNG is the only output, which
// suits headless runs and desktops without a supported backend.
type File struct {
	last string
}

// Name returns "file".
func (f *File) Name() string { return "file" }

// Current returns "" since there is nothing to restore.
func (f *File) Current() (string, error) { return "", nil }

// Set records the most recent image path.
func (f *File) Set(path string) error {
	f.last = path
	return nil
}

// Last returns the most recent path passed to Set.
func (f *File) Last() string { return f.last }

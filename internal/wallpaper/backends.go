package wallpaper

func init() {
	Register("windows", "Windows via SystemParametersInfoW", newWindows)
}

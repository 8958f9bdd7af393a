package window

// Config is the sizing and feature configuration handed to the window host.
type Config struct {
	Title  string
	Width  int
	Height int

	// PreloadScript is a JS file executed in the main window once the DOM
	// is ready. Empty disables it.
	PreloadScript string

	// ExperimentalFeatures turns on the webview features the layout needs
	// (GPU compositing for CSS grid on Linux).
	ExperimentalFeatures bool

	// AutoHideMenuBar keeps the application menu off the main window.
	AutoHideMenuBar bool

	// StartHidden delays showing the window until the host reports ready.
	StartHidden bool
}

func DefaultConfig() Config {
	return Config{
		Title:                "Plant Viewer",
		Width:                1280,
		Height:               800,
		PreloadScript:        "preload.js",
		ExperimentalFeatures: true,
		AutoHideMenuBar:      false,
		StartHidden:          true,
	}
}

package snaphero

import "time"

// Options contains the capture configuration for a Capturer.
type Options struct {
	Engine                  string  // capture backend ("rod" or "chromedp")
	ViewportWidth           int     // width of the browser viewport (pixels)
	ViewportHeight          int     // height of the browser viewport (pixels)
	FullPage                bool    // capture the entire scrollable page instead of the viewport
	Delay                   float64 // wait after page load before capturing (seconds)
	Quality                 int     // JPEG quality, 1-100 (used for JPEG output only)
	Scale                   float64 // device scale factor
	Mobile                  bool    // emulate a mobile device
	DarkMode                bool    // request a dark color scheme
	HideCookieBanners       bool    // hide common cookie consent banners before capturing
	WaitSelector            string  // CSS selector to wait for before capturing
	Timeout                 int     // page load timeout (milliseconds)
	UserAgent               string  // custom user agent
	Format                  Format  // output image encoding
	IgnoreCertificateErrors bool    // ignore certificate errors
	DisableHTTP2            bool    // disable HTTP2
	Headless                bool    // run the browser in headless mode
}

// Viewport presets for common device classes.
const (
	MobileViewportWidth  = 375 // iPhone SE
	MobileViewportHeight = 667
	TabletViewportWidth  = 768 // iPad
	TabletViewportHeight = 1024
)

// DefaultOptions returns options with default values.
func DefaultOptions() Options {
	return Options{
		Engine:                  DefaultEngine,
		ViewportWidth:           1280,
		ViewportHeight:          720,
		FullPage:                false,
		Delay:                   0,
		Quality:                 80,
		Scale:                   1,
		Timeout:                 15000,
		Format:                  FormatPNG,
		IgnoreCertificateErrors: true,
		DisableHTTP2:            true,
		Headless:                true,
	}
}

// ApplyMobilePreset switches the viewport to mobile dimensions and enables
// mobile emulation.
func (o *Options) ApplyMobilePreset() {
	o.ViewportWidth = MobileViewportWidth
	o.ViewportHeight = MobileViewportHeight
	o.Mobile = true
}

// ApplyTabletPreset switches the viewport to tablet dimensions.
func (o *Options) ApplyTabletPreset() {
	o.ViewportWidth = TabletViewportWidth
	o.ViewportHeight = TabletViewportHeight
}

func (o Options) timeout() time.Duration {
	return time.Duration(o.Timeout) * time.Millisecond
}

func (o Options) delay() time.Duration {
	return time.Duration(o.Delay * float64(time.Second))
}

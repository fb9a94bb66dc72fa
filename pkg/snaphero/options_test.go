package snaphero

import (
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	options := DefaultOptions()

	if options.Engine != "rod" {
		t.Errorf("Expected default engine to be rod, got %s", options.Engine)
	}
	if options.ViewportWidth != 1280 || options.ViewportHeight != 720 {
		t.Errorf("Expected default viewport to be 1280x720, got %dx%d", options.ViewportWidth, options.ViewportHeight)
	}
	if options.FullPage {
		t.Error("Expected full page capture to be disabled by default")
	}
	if options.Delay != 0 {
		t.Errorf("Expected default delay to be 0, got %v", options.Delay)
	}
	if options.Quality != 80 {
		t.Errorf("Expected default quality to be 80, got %d", options.Quality)
	}
	if options.Scale != 1 {
		t.Errorf("Expected default scale to be 1, got %v", options.Scale)
	}
	if options.Timeout != 15000 {
		t.Errorf("Expected default timeout to be 15000, got %d", options.Timeout)
	}
	if options.Format != FormatPNG {
		t.Errorf("Expected default format to be png, got %s", options.Format)
	}
	if !options.Headless {
		t.Error("Expected headless mode to be enabled by default")
	}
	if !options.IgnoreCertificateErrors {
		t.Error("Expected certificate errors to be ignored by default")
	}
	if !options.DisableHTTP2 {
		t.Error("Expected HTTP2 to be disabled by default")
	}
}

func TestApplyMobilePreset(t *testing.T) {
	options := DefaultOptions()
	options.ApplyMobilePreset()

	if options.ViewportWidth != MobileViewportWidth || options.ViewportHeight != MobileViewportHeight {
		t.Errorf("Expected viewport to be %dx%d, got %dx%d",
			MobileViewportWidth, MobileViewportHeight, options.ViewportWidth, options.ViewportHeight)
	}
	if !options.Mobile {
		t.Error("Expected mobile emulation to be enabled")
	}
}

func TestApplyTabletPreset(t *testing.T) {
	options := DefaultOptions()
	options.ApplyTabletPreset()

	if options.ViewportWidth != TabletViewportWidth || options.ViewportHeight != TabletViewportHeight {
		t.Errorf("Expected viewport to be %dx%d, got %dx%d",
			TabletViewportWidth, TabletViewportHeight, options.ViewportWidth, options.ViewportHeight)
	}
	if options.Mobile {
		t.Error("Expected mobile emulation to stay disabled for tablet preset")
	}
}

func TestDurationHelpers(t *testing.T) {
	options := DefaultOptions()

	options.Timeout = 2500
	if got := options.timeout(); got != 2500*time.Millisecond {
		t.Errorf("Expected timeout duration 2.5s, got %v", got)
	}

	options.Delay = 1.5
	if got := options.delay(); got != 1500*time.Millisecond {
		t.Errorf("Expected delay duration 1.5s, got %v", got)
	}
}

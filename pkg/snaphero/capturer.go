// Package snaphero captures screenshots of web pages through a headless
// browser. A Capturer owns the capture options and delegates the browser work
// to one of the registered engines (rod by default, chromedp as an
// alternative).
package snaphero

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/root4loot/goutils/log"
	"github.com/root4loot/goutils/urlutil"
)

// Capturer performs captures using its configured options.
type Capturer struct {
	Options Options
}

// Init initializes the package logger. Call once before capturing.
func Init() {
	log.Init("snaphero")
	log.SetLevel(log.InfoLevel)
}

// NewCapturer creates a new Capturer with default options.
func NewCapturer() *Capturer {
	return &Capturer{Options: DefaultOptions()}
}

// NewCapturerWithOptions creates a new Capturer with the given options.
func NewCapturerWithOptions(options Options) *Capturer {
	return &Capturer{Options: options}
}

// CaptureScreenshot renders the URL in a headless browser and returns the
// captured image. The browser is launched and torn down within the call.
func (c *Capturer) CaptureScreenshot(parsedURL *url.URL) (*Result, error) {
	normalizeTargetPath(parsedURL)
	captureURL := parsedURL.String()

	engine, err := newEngine(c.Options.Engine)
	if err != nil {
		return nil, err
	}

	log.Debugf("Attempting capture on %s using %s", captureURL, engine.Name())

	result, err := engine.Capture(context.Background(), parsedURL, c.Options)
	if err != nil {
		return nil, fmt.Errorf("error capturing screenshot for %s: %w", captureURL, err)
	}

	result.TargetURL = captureURL
	if result.LandingURL == "" {
		result.LandingURL = captureURL
	}
	return result, nil
}

// normalizeTargetPath appends a trailing slash to bare directory paths so the
// requested URL matches what the browser reports after navigation.
func normalizeTargetPath(u *url.URL) {
	if !strings.HasSuffix(u.Path, "/") && !urlutil.HasFileExtension(u.Path) {
		u.Path += "/"
	}
}

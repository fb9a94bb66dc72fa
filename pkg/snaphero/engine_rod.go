package snaphero

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/root4loot/goutils/log"
	"github.com/ysmood/gson"
)

func init() {
	RegisterEngine("rod", func() Engine { return &rodEngine{} })
}

// rodEngine captures through go-rod. A fresh browser is launched for every
// capture and closed before returning.
type rodEngine struct{}

func (e *rodEngine) Name() string { return "rod" }

func (e *rodEngine) Capture(ctx context.Context, target *url.URL, options Options) (*Result, error) {
	captureURL := target.String()

	path, _ := launcher.LookPath()
	l := launcher.New().
		Headless(options.Headless).
		Bin(path).
		NoSandbox(true)

	if options.UserAgent != "" {
		l.Set("user-agent", options.UserAgent)
	}
	if options.IgnoreCertificateErrors {
		l.Set("ignore-certificate-errors", "true")
	}
	if options.DisableHTTP2 {
		l.Set("disable-http2", "true")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("error launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("error connecting to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return nil, fmt.Errorf("error creating page: %w", err)
	}

	if options.ViewportWidth != 0 && options.ViewportHeight != 0 {
		viewport := &proto.EmulationSetDeviceMetricsOverride{
			Width:             options.ViewportWidth,
			Height:            options.ViewportHeight,
			DeviceScaleFactor: options.Scale,
			Mobile:            options.Mobile,
		}
		if err := page.SetViewport(viewport); err != nil {
			return nil, fmt.Errorf("error setting viewport: %w", err)
		}
	}

	if options.DarkMode {
		emulatedMedia := proto.EmulationSetEmulatedMedia{
			Features: []*proto.EmulationMediaFeature{
				{Name: "prefers-color-scheme", Value: "dark"},
			},
		}
		if err := emulatedMedia.Call(page); err != nil {
			return nil, fmt.Errorf("error enabling dark mode: %w", err)
		}
	}

	// The load timeout covers navigation and readiness waits only. The
	// delay and the screenshot itself run unbounded afterwards.
	loadCtx, cancel := context.WithTimeout(ctx, options.timeout())
	defer cancel()

	var responseEvent proto.NetworkResponseReceived
	wait := page.Context(loadCtx).WaitEvent(&responseEvent)

	if err := page.Context(loadCtx).Navigate(captureURL); err != nil {
		return nil, fmt.Errorf("error navigating to %s: %w", captureURL, err)
	}
	wait()

	if err := page.Context(loadCtx).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%s timed out after %v: %w", captureURL, options.timeout(), err)
	}

	if options.WaitSelector != "" {
		element, err := page.Context(loadCtx).Element(options.WaitSelector)
		if err != nil {
			return nil, fmt.Errorf("error waiting for selector %q: %w", options.WaitSelector, err)
		}
		if err := element.WaitVisible(); err != nil {
			return nil, fmt.Errorf("error waiting for selector %q: %w", options.WaitSelector, err)
		}
	}

	if options.HideCookieBanners {
		if _, err := page.Eval("() => {" + hideCookieBannersJS + "}"); err != nil {
			log.Warnf("Could not hide cookie banners on %s: %v", captureURL, err)
		}
	}

	if options.Delay > 0 {
		time.Sleep(options.delay())
	}

	request := &proto.PageCaptureScreenshot{Format: proto.PageCaptureScreenshotFormatPng}
	if options.Format == FormatJPEG {
		request.Format = proto.PageCaptureScreenshotFormatJpeg
		request.Quality = gson.Int(options.Quality)
	}

	screenshot, err := page.Screenshot(options.FullPage, request)
	if err != nil {
		return nil, fmt.Errorf("error taking screenshot: %w", err)
	}

	result := &Result{
		TargetURL: captureURL,
		Image:     screenshot,
	}
	if responseEvent.Response != nil {
		result.StatusCode = responseEvent.Response.Status
	}
	if info, err := page.Info(); err == nil {
		result.LandingURL = info.URL
	}
	return result, nil
}

package snaphero

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/root4loot/goutils/log"
)

func init() {
	RegisterEngine("chromedp", func() Engine { return &chromedpEngine{} })
}

// chromedpEngine captures through chromedp. Like the rod engine it launches
// a dedicated browser per capture.
type chromedpEngine struct{}

func (e *chromedpEngine) Name() string { return "chromedp" }

func (e *chromedpEngine) Capture(ctx context.Context, target *url.URL, options Options) (*Result, error) {
	captureURL := target.String()

	allocatorOptions := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", options.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if options.IgnoreCertificateErrors {
		allocatorOptions = append(allocatorOptions, chromedp.Flag("ignore-certificate-errors", true))
	}
	if options.DisableHTTP2 {
		allocatorOptions = append(allocatorOptions, chromedp.Flag("disable-http2", true))
	}
	if options.UserAgent != "" {
		allocatorOptions = append(allocatorOptions, chromedp.UserAgent(options.UserAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Track the status code of the document response. Later document
	// responses win so client side redirects report the landing page.
	var statusCode atomic.Int64
	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		if response, ok := ev.(*network.EventResponseReceived); ok {
			if response.Type == network.ResourceTypeDocument {
				statusCode.Store(response.Response.Status)
			}
		}
	})

	setupTasks := chromedp.Tasks{network.Enable()}
	if options.ViewportWidth != 0 && options.ViewportHeight != 0 {
		setupTasks = append(setupTasks, emulation.SetDeviceMetricsOverride(
			int64(options.ViewportWidth),
			int64(options.ViewportHeight),
			options.Scale,
			options.Mobile,
		))
	}
	if options.DarkMode {
		setupTasks = append(setupTasks, emulation.SetEmulatedMedia().
			WithFeatures([]*emulation.MediaFeature{
				{Name: "prefers-color-scheme", Value: "dark"},
			}))
	}
	if err := chromedp.Run(browserCtx, setupTasks); err != nil {
		return nil, fmt.Errorf("error launching browser: %w", err)
	}

	// The load timeout covers navigation and readiness waits only, mirroring
	// the rod engine.
	loadCtx, cancelLoad := context.WithTimeout(browserCtx, options.timeout())
	defer cancelLoad()

	loadTasks := chromedp.Tasks{chromedp.Navigate(captureURL)}
	if options.WaitSelector != "" {
		loadTasks = append(loadTasks, chromedp.WaitVisible(options.WaitSelector, chromedp.ByQuery))
	}
	if err := chromedp.Run(loadCtx, loadTasks); err != nil {
		return nil, fmt.Errorf("error navigating to %s: %w", captureURL, err)
	}

	captureTasks := chromedp.Tasks{}
	if options.HideCookieBanners {
		captureTasks = append(captureTasks, chromedp.ActionFunc(func(ctx context.Context) error {
			if err := chromedp.Evaluate("(() => {"+hideCookieBannersJS+"})()", nil).Do(ctx); err != nil {
				log.Warnf("Could not hide cookie banners on %s: %v", captureURL, err)
			}
			return nil
		}))
	}
	if options.Delay > 0 {
		captureTasks = append(captureTasks, chromedp.Sleep(options.delay()))
	}

	var screenshot []byte
	var landingURL string
	captureTasks = append(captureTasks,
		screenshotAction(options, &screenshot),
		chromedp.Location(&landingURL),
	)
	if err := chromedp.Run(browserCtx, captureTasks); err != nil {
		return nil, fmt.Errorf("error taking screenshot: %w", err)
	}

	return &Result{
		TargetURL:  captureURL,
		LandingURL: landingURL,
		Image:      screenshot,
		StatusCode: int(statusCode.Load()),
	}, nil
}

// screenshotAction captures the viewport, or the full scrollable page when
// requested, honoring the configured format and quality.
func screenshotAction(options Options, res *[]byte) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		params := page.CaptureScreenshot()
		if options.Format == FormatJPEG {
			params = params.WithFormat(page.CaptureScreenshotFormatJpeg).
				WithQuality(int64(options.Quality))
		} else {
			params = params.WithFormat(page.CaptureScreenshotFormatPng)
		}

		if options.FullPage {
			contentSize, err := pageContentSize(ctx)
			if err != nil {
				return fmt.Errorf("error reading page metrics: %w", err)
			}
			params = params.WithCaptureBeyondViewport(true).
				WithClip(&page.Viewport{
					X:      contentSize.X,
					Y:      contentSize.Y,
					Width:  contentSize.Width,
					Height: contentSize.Height,
					Scale:  1,
				})
		}

		buf, err := params.Do(ctx)
		if err != nil {
			return err
		}
		*res = buf
		return nil
	})
}

func pageContentSize(ctx context.Context) (*dom.Rect, error) {
	_, _, contentSize, _, _, cssContentSize, err := page.GetLayoutMetrics().Do(ctx)
	if err != nil {
		return nil, err
	}
	if cssContentSize != nil {
		return cssContentSize, nil
	}
	if contentSize != nil {
		return contentSize, nil
	}
	return nil, fmt.Errorf("no content size reported")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coldman07/snaphero/pkg/snaphero"
	"github.com/root4loot/goscope"
	"github.com/root4loot/goutils/fileutil"
	"github.com/root4loot/goutils/log"
	"github.com/root4loot/goutils/urlutil"
)

// captureTo captures a single target and writes the image to output.
func (c *cli) captureTo(target, output string) error {
	target, err := urlutil.RemoveDefaultPort(target)
	if err != nil {
		return fmt.Errorf("error normalizing %s: %w", target, err)
	}

	if !urlutil.HasScheme(target) {
		log.Debugf("No scheme specified for %s: using HTTPS", target)
		target = "https://" + target
	}

	parsedURL, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid URL %s: %w", target, err)
	}

	c.Options.Format = snaphero.FormatFromPath(output)

	result, err := c.Capturer.CaptureScreenshot(parsedURL)
	if err != nil {
		return err
	}

	if result.StatusCode != 0 && result.StatusCode != http.StatusOK {
		log.Warnf("%s responded with status code %d", target, result.StatusCode)
	}
	if result.LandingURL != result.TargetURL {
		log.Debugf("%s redirected to %s", result.TargetURL, result.LandingURL)
	}

	if c.Imprint {
		c.imprintResult(result)
	}

	if err := result.Save(output); err != nil {
		return err
	}

	log.Resultf("Screenshot saved to %s (%d bytes)", output, len(result.Image))
	return nil
}

// imprintResult labels the image with the page origin. Labeling failures are
// logged and leave the image untouched.
func (c *cli) imprintResult(result *snaphero.Result) {
	origin, err := urlutil.GetOrigin(result.TargetURL)
	if err != nil {
		log.Errorf("Error processing result URL %s: %v", result.TargetURL, err)
		return
	}

	labeled, err := result.Image.AddTextToImage(origin, c.Options.Format, c.Options.Quality)
	if err != nil {
		log.Warnf("Could not label screenshot for %s: %v", origin, err)
		return
	}
	result.Image = labeled
}

// captureBatch captures every URL listed in the batch file, one at a time.
// Per target failures are logged and skipped; only an unusable batch file
// fails the run.
func (c *cli) captureBatch() error {
	targets, err := readBatchFile(c.Batch)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("no valid URLs found in %s", c.Batch)
	}

	scope := goscope.NewScope()
	for _, host := range strings.Split(c.Exclude, ",") {
		if host = strings.TrimSpace(host); host != "" {
			scope.AddExclude(host)
		}
	}

	log.Infof("Found %d URLs to capture", len(targets))

	captured := 0
	for i, target := range targets {
		log.Infof("[%d/%d] Processing %s", i+1, len(targets), target)

		if c.Exclude != "" && scope.IsTargetExcluded(target) {
			log.Infof("Skipping %s: excluded from scope", target)
			continue
		}

		output := batchFilename(c.BatchPrefix, target, time.Now())
		if err := c.captureTo(target, output); err != nil {
			handleCaptureError(target, err)
			continue
		}
		captured++
	}

	log.Resultf("Batch complete: %d/%d captured", captured, len(targets))
	return nil
}

// readBatchFile returns the URLs listed in path, skipping blank lines and
// comments.
func readBatchFile(path string) ([]string, error) {
	lines, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var targets []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	return targets, nil
}

// batchFilename derives an output filename from the target host and the
// capture time. Batch outputs are always PNG.
func batchFilename(prefix, target string, now time.Time) string {
	host := target
	if i := strings.Index(host, "//"); i != -1 {
		host = host[i+2:]
	}
	if i := strings.IndexByte(host, '/'); i != -1 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")
	host = strings.ReplaceAll(host, ":", "-")
	return prefix + host + "_" + now.Format("20060102_150405") + ".png"
}

func isDNSError(err error) bool {
	if err == nil {
		return false
	}

	errMessage := getFullErrorMessage(err)
	return strings.Contains(errMessage, "net::ERR_NAME_NOT_RESOLVED") ||
		strings.Contains(errMessage, "no such host")
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errMessage := getFullErrorMessage(err)
	return strings.Contains(errMessage, "context deadline exceeded") ||
		strings.Contains(errMessage, "timeout")
}

func getFullErrorMessage(err error) string {
	var sb strings.Builder
	for err != nil {
		sb.WriteString(err.Error())
		err = errors.Unwrap(err)
		if err != nil {
			sb.WriteString(" | ")
		}
	}
	return sb.String()
}

func unwrapError(err error) string {
	rootErr := err
	for {
		unwrappedErr := errors.Unwrap(rootErr)
		if unwrappedErr == nil {
			break
		}
		rootErr = unwrappedErr
	}
	return rootErr.Error()
}

func handleCaptureError(target string, err error) {
	switch {
	case isDNSError(err):
		log.Warnf("DNS lookup failed for %s", target)
	case isTimeoutError(err):
		log.Warnf("Timed out while capturing %s", target)
	default:
		log.Errorf("Error capturing screenshot for %s: %s", target, unwrapError(err))
	}
}

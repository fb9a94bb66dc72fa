package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/coldman07/snaphero/pkg/snaphero"
	"github.com/root4loot/goutils/log"
	"github.com/root4loot/goutils/sliceutil"
)

const (
	author = "coldman07"
	usage  = `USAGE:
  snaphero [options] -u <url> -o <file>
  snaphero [options] -b <urls.txt>

INPUT:
  -u,   --url                  URL of the page to capture
  -o,   --output               output image path (.png, .jpg, .jpeg)
  -b,   --batch                file with URLs to capture (one per line)

CAPTURE:
  -fp,  --full-page            capture the entire scrollable page       (Default: false)
  -d,   --delay                wait after page load (seconds)           (Default: 0)
  -vw,  --viewport-width       viewport width in pixels                 (Default: 1280)
  -vh,  --viewport-height      viewport height in pixels                (Default: 720)
  -m,   --mobile               mobile viewport (375x667)                (Default: false)
  -tb,  --tablet               tablet viewport (768x1024)               (Default: false)
  -q,   --quality              JPEG quality (1-100)                     (Default: 80)
  -sc,  --scale                device scale factor                      (Default: 1)
  -dm,  --dark-mode            request a dark color scheme              (Default: false)
  -hcb, --hide-cookie-banners  hide common cookie consent banners       (Default: false)
  -ws,  --wait-for-selector    CSS selector to wait for before capture
  -to,  --timeout              page load timeout (milliseconds)         (Default: 15000)
  -ua,  --user-agent           custom user agent                        (Default: Chrome UA)
  -eng, --engine               capture backend (rod, chromedp)          (Default: rod)

BATCH:
  -bp,  --batch-prefix         filename prefix for batch outputs        (Default: screenshot_)
  -x,   --exclude              comma separated hosts to skip

OUTPUT:
  -im,  --imprint              label the image with the page origin     (Default: false)
  -s,   --silence              silence output
  -v,   --verbose              verbose output
        --manual               show the full manual
        --examples             show usage examples
        --version              display version
  -h,   --help                 show this help
`
)

type cli struct {
	*snaphero.Capturer
	URL         string
	Output      string
	Batch       string
	BatchPrefix string
	Exclude     string
	Mobile      bool
	Tablet      bool
	Imprint     bool
	Silence     bool
	Verbose     bool
	Help        bool
	Version     bool
	Manual      bool
	Examples    bool
}

func NewCLI() *cli {
	return &cli{Capturer: snaphero.NewCapturerWithOptions(snaphero.DefaultOptions())}
}

func init() {
	log.Init("snaphero")
}

func main() {
	cli := NewCLI()
	cli.parseFlags()
	cli.checkForExits()

	cli.banner()
	cli.applyPresets()

	if err := cli.validateOptions(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if cli.hasBatch() {
		if err := cli.captureBatch(); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	if !cli.hasTarget() {
		log.Error("Missing --url (required for single capture)")
		fmt.Print(usage)
		os.Exit(1)
	}
	if !cli.hasOutput() {
		log.Error("Missing --output (required for single capture)")
		fmt.Print(usage)
		os.Exit(1)
	}

	if err := cli.captureTo(cli.URL, cli.Output); err != nil {
		handleCaptureError(cli.URL, err)
		os.Exit(1)
	}
}

func (c *cli) parseFlags() {
	defaults := snaphero.DefaultOptions()

	// INPUT
	flag.StringVar(&c.URL, "url", "", "")
	flag.StringVar(&c.URL, "u", "", "")
	flag.StringVar(&c.Output, "output", "", "")
	flag.StringVar(&c.Output, "o", "", "")
	flag.StringVar(&c.Batch, "batch", "", "")
	flag.StringVar(&c.Batch, "b", "", "")

	// CAPTURE
	flag.BoolVar(&c.Options.FullPage, "full-page", defaults.FullPage, "")
	flag.BoolVar(&c.Options.FullPage, "fp", defaults.FullPage, "")
	flag.Float64Var(&c.Options.Delay, "delay", defaults.Delay, "")
	flag.Float64Var(&c.Options.Delay, "d", defaults.Delay, "")
	flag.IntVar(&c.Options.ViewportWidth, "viewport-width", defaults.ViewportWidth, "")
	flag.IntVar(&c.Options.ViewportWidth, "vw", defaults.ViewportWidth, "")
	flag.IntVar(&c.Options.ViewportHeight, "viewport-height", defaults.ViewportHeight, "")
	flag.IntVar(&c.Options.ViewportHeight, "vh", defaults.ViewportHeight, "")
	flag.BoolVar(&c.Mobile, "mobile", false, "")
	flag.BoolVar(&c.Mobile, "m", false, "")
	flag.BoolVar(&c.Tablet, "tablet", false, "")
	flag.BoolVar(&c.Tablet, "tb", false, "")
	flag.IntVar(&c.Options.Quality, "quality", defaults.Quality, "")
	flag.IntVar(&c.Options.Quality, "q", defaults.Quality, "")
	flag.Float64Var(&c.Options.Scale, "scale", defaults.Scale, "")
	flag.Float64Var(&c.Options.Scale, "sc", defaults.Scale, "")
	flag.BoolVar(&c.Options.DarkMode, "dark-mode", defaults.DarkMode, "")
	flag.BoolVar(&c.Options.DarkMode, "dm", defaults.DarkMode, "")
	flag.BoolVar(&c.Options.HideCookieBanners, "hide-cookie-banners", defaults.HideCookieBanners, "")
	flag.BoolVar(&c.Options.HideCookieBanners, "hcb", defaults.HideCookieBanners, "")
	flag.StringVar(&c.Options.WaitSelector, "wait-for-selector", defaults.WaitSelector, "")
	flag.StringVar(&c.Options.WaitSelector, "ws", defaults.WaitSelector, "")
	flag.IntVar(&c.Options.Timeout, "timeout", defaults.Timeout, "")
	flag.IntVar(&c.Options.Timeout, "to", defaults.Timeout, "")
	flag.StringVar(&c.Options.UserAgent, "user-agent", defaults.UserAgent, "")
	flag.StringVar(&c.Options.UserAgent, "ua", defaults.UserAgent, "")
	flag.StringVar(&c.Options.Engine, "engine", defaults.Engine, "")
	flag.StringVar(&c.Options.Engine, "eng", defaults.Engine, "")

	// BATCH
	flag.StringVar(&c.BatchPrefix, "batch-prefix", "screenshot_", "")
	flag.StringVar(&c.BatchPrefix, "bp", "screenshot_", "")
	flag.StringVar(&c.Exclude, "exclude", "", "")
	flag.StringVar(&c.Exclude, "x", "", "")

	// OUTPUT
	flag.BoolVar(&c.Imprint, "imprint", false, "")
	flag.BoolVar(&c.Imprint, "im", false, "")
	flag.BoolVar(&c.Silence, "silence", false, "")
	flag.BoolVar(&c.Silence, "s", false, "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
	flag.BoolVar(&c.Verbose, "v", false, "")
	flag.BoolVar(&c.Manual, "manual", false, "")
	flag.BoolVar(&c.Examples, "examples", false, "")
	flag.BoolVar(&c.Help, "help", false, "")
	flag.BoolVar(&c.Help, "h", false, "")
	flag.BoolVar(&c.Version, "version", false, "")

	flag.Usage = func() {
		c.banner()
		fmt.Print(usage)
	}
	flag.Parse()

	if c.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if c.Silence {
		log.SetLevel(log.FatalLevel)
	}
}

// checkForExits handles the flags that print and exit without capturing.
func (c *cli) checkForExits() {
	if c.Help {
		c.banner()
		fmt.Print(usage)
		os.Exit(0)
	}
	if c.Version {
		fmt.Println("snaphero", snaphero.Version)
		os.Exit(0)
	}
	if c.Manual {
		fmt.Print(manual)
		os.Exit(0)
	}
	if c.Examples {
		fmt.Print(examples)
		os.Exit(0)
	}

	if !c.hasTarget() && !c.hasBatch() {
		fmt.Println("")
		fmt.Printf("%s\n\n", "Missing target URL")
		fmt.Print(usage)
		os.Exit(1)
	}
}

func (c *cli) banner() {
	if c.Silence {
		return
	}
	fmt.Println("\nsnaphero", snaphero.Version, "by", author)
}

// applyPresets overrides the viewport with the device presets. Tablet wins
// when both presets are given.
func (c *cli) applyPresets() {
	if c.Mobile {
		c.Options.ApplyMobilePreset()
		log.Infof("Using mobile viewport (%dx%d)", c.Options.ViewportWidth, c.Options.ViewportHeight)
	}
	if c.Tablet {
		c.Options.ApplyTabletPreset()
		log.Infof("Using tablet viewport (%dx%d)", c.Options.ViewportWidth, c.Options.ViewportHeight)
	}
}

func (c *cli) validateOptions() error {
	if c.Options.Quality < 1 || c.Options.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", c.Options.Quality)
	}
	if c.Options.ViewportWidth < 1 || c.Options.ViewportHeight < 1 {
		return fmt.Errorf("viewport dimensions must be positive, got %dx%d", c.Options.ViewportWidth, c.Options.ViewportHeight)
	}
	if c.Options.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %v", c.Options.Delay)
	}
	if c.Options.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Options.Scale)
	}
	if c.Options.Timeout < 1 {
		return fmt.Errorf("timeout must be positive, got %d", c.Options.Timeout)
	}
	if !sliceutil.Contains(snaphero.Engines(), strings.ToLower(c.Options.Engine)) {
		return fmt.Errorf("unknown engine %q (available: %s)", c.Options.Engine, strings.Join(snaphero.Engines(), ", "))
	}
	return nil
}

func (c *cli) hasTarget() bool {
	return c.URL != ""
}

func (c *cli) hasOutput() bool {
	return c.Output != ""
}

func (c *cli) hasBatch() bool {
	return c.Batch != ""
}

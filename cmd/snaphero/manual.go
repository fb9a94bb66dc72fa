package main

const manual = `
SNAPHERO MANUAL

NAME
  snaphero - capture webpage screenshots from the command line

SYNOPSIS
  snaphero -u <url> -o <file> [options]
  snaphero -b <urls.txt> [options]

DESCRIPTION
  snaphero loads a page in a headless browser, waits for it to settle and
  writes the rendered result to an image file. A single invocation captures
  a single page; batch mode walks a file of URLs and captures each in turn.

  URLs without a scheme are fetched over HTTPS. The output format follows
  the file extension: .jpg and .jpeg produce JPEG, everything else PNG.

TARGETS
  -u, --url
      The page to capture. Required unless --batch is given.

  -o, --output
      Where to write the image. Parent directories are created as needed
      and an existing file is overwritten. Required unless --batch is
      given.

  -b, --batch
      A file with one URL per line. Blank lines and lines starting with #
      are skipped. Filenames are derived from each host and a timestamp,
      so --output is not used. Failures are logged and the batch moves on.

VIEWPORT
  The default viewport is 1280x720. Use --viewport-width and
  --viewport-height for custom dimensions, or one of the presets:

  -m,  --mobile   375x667 with mobile emulation (iPhone SE)
  -tb, --tablet   768x1024 (iPad)

  Presets override custom dimensions. When both presets are given the
  tablet dimensions win.

  --scale sets the device scale factor. A scale of 2 doubles the pixel
  density of the output, useful for high DPI renderings.

TIMING
  -to, --timeout
      How long to wait for the page to load, in milliseconds. The timeout
      covers navigation and readiness waits. Default 15000.

  -d, --delay
      Extra seconds to wait after the page has loaded, for pages that
      finish rendering with JavaScript. Fractions are accepted.

  -ws, --wait-for-selector
      Wait until the element matching this CSS selector is visible before
      capturing.

APPEARANCE
  -fp,  --full-page            capture the entire scrollable page instead
                               of just the viewport
  -dm,  --dark-mode            ask the page for its dark color scheme
  -hcb, --hide-cookie-banners  hide elements that look like cookie or
                               consent banners before capturing
  -q,   --quality              JPEG quality from 1 to 100 (ignored for PNG)
  -im,  --imprint              append a strip below the image showing the
                               page origin

ENGINES
  -eng, --engine
      Which browser automation backend drives the capture. Both use a
      local Chrome or Chromium install. "rod" is the default; "chromedp"
      is provided as an alternative.

EXIT STATUS
  0 on success, 1 on failure. In batch mode only an unusable batch file
  fails the run; individual capture failures are logged and skipped.
`

const examples = `
EXAMPLES
  Basic capture:
    snaphero -u https://example.com -o example.png

  Full page JPEG at reduced quality:
    snaphero -u https://example.com -o example.jpg --full-page --quality 60

  Mobile viewport with a dark color scheme:
    snaphero -u https://example.com -o mobile.png --mobile --dark-mode

  Wait for a late rendering app before capturing:
    snaphero -u https://app.example.com -o app.png --wait-for-selector "#main" --delay 2

  Hide cookie banners and label the output:
    snaphero -u https://news.example.com -o news.png --hide-cookie-banners --imprint

  Batch capture with a custom prefix, skipping one host:
    snaphero -b urls.txt --batch-prefix site_ -x staging.example.com

  Capture through the chromedp backend:
    snaphero -u https://example.com -o example.png --engine chromedp
`

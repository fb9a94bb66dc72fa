package snaphero

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/url"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	imprintLabelHeight = 40
	imprintBorderSize  = 1
	imprintFontSize    = 14
)

// AddTextToImage appends a label strip beneath the image showing the page
// origin and returns the re-encoded result. The strip adds to the image
// height; the original pixels are left untouched.
func (i Image) AddTextToImage(rawURL string, format Format, quality int) (Image, error) {
	img, _, err := image.Decode(bytes.NewReader(i))
	if err != nil {
		return nil, fmt.Errorf("error decoding screenshot: %w", err)
	}

	label, err := imprintLabel(rawURL)
	if err != nil {
		return nil, err
	}

	labelFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("error loading label font: %w", err)
	}
	face := truetype.NewFace(labelFont, &truetype.Options{Size: imprintFontSize})

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	dc := gg.NewContext(width, height+imprintBorderSize+imprintLabelHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(img, 0, 0)

	dc.SetRGB(0.8, 0.8, 0.8)
	dc.DrawLine(0, float64(height), float64(width), float64(height))
	dc.Stroke()

	dc.SetFontFace(face)
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawStringAnchored(label, float64(width)/2, float64(height)+imprintBorderSize+imprintLabelHeight/2, 0.5, 0.5)

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(&buf, dc.Image())
	}
	if err != nil {
		return nil, fmt.Errorf("error encoding labeled screenshot: %w", err)
	}
	return buf.Bytes(), nil
}

// imprintLabel reduces a URL to scheme://host with default ports stripped.
func imprintLabel(rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("error parsing label URL: %w", err)
	}

	host := parsedURL.Host
	if strings.Contains(host, ":") {
		hostWithoutPort, port, _ := strings.Cut(host, ":")
		if (parsedURL.Scheme == "http" && port == "80") || (parsedURL.Scheme == "https" && port == "443") {
			host = hostWithoutPort
		}
	}
	if host == "" {
		return rawURL, nil
	}
	if parsedURL.Scheme == "" {
		return host, nil
	}
	return parsedURL.Scheme + "://" + host, nil
}

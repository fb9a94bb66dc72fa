package snaphero

import (
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a captured image.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// FormatFromPath derives the output format from the file extension.
// Only .jpg and .jpeg map to JPEG; any other extension means PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}

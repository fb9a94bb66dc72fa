package snaphero

import (
	"fmt"
	"os"
	"path/filepath"
)

// Result contains the outcome of a capture.
type Result struct {
	TargetURL  string // the URL that was requested
	LandingURL string // the URL the browser ended up on after redirects
	Image      Image  // the encoded screenshot
	StatusCode int    // HTTP status code of the document response
}

// Image is an encoded screenshot.
type Image []byte

// Save writes the image to path, creating parent directories as needed.
// An existing file at path is overwritten.
func (r *Result) Save(path string) error {
	if len(r.Image) == 0 {
		return fmt.Errorf("no image data for %s", r.TargetURL)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, r.Image, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

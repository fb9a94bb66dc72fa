package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBatchFilename(t *testing.T) {
	now := time.Date(2026, 8, 25, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		target string
		want   string
	}{
		{"https://www.example.com/path", "screenshot_example.com_20260825_143005.png"},
		{"http://example.com", "screenshot_example.com_20260825_143005.png"},
		{"example.com", "screenshot_example.com_20260825_143005.png"},
		{"https://example.com:8443/admin", "screenshot_example.com-8443_20260825_143005.png"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := batchFilename("screenshot_", tt.target, now); got != tt.want {
				t.Errorf("Expected filename %s, got %s", tt.want, got)
			}
		})
	}

	if got := batchFilename("site_", "example.com", now); got != "site_example.com_20260825_143005.png" {
		t.Errorf("Expected custom prefix in filename, got %s", got)
	}
}

func TestReadBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "# targets for tonight\nhttps://example.com\n\nexample.org\n  https://example.net  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	targets, err := readBatchFile(path)
	if err != nil {
		t.Fatalf("Failed to read batch file: %v", err)
	}

	want := []string{"https://example.com", "example.org", "https://example.net"}
	if len(targets) != len(want) {
		t.Fatalf("Expected %d targets, got %d: %v", len(want), len(targets), targets)
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("Expected target %d to be %s, got %s", i, want[i], targets[i])
		}
	}
}

func TestReadBatchFileMissing(t *testing.T) {
	if _, err := readBatchFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("Expected an error for a missing batch file")
	}
}

func TestApplyPresets(t *testing.T) {
	cli := NewCLI()
	cli.Mobile = true
	cli.applyPresets()

	if cli.Options.ViewportWidth != 375 || cli.Options.ViewportHeight != 667 {
		t.Errorf("Expected mobile viewport 375x667, got %dx%d", cli.Options.ViewportWidth, cli.Options.ViewportHeight)
	}
	if !cli.Options.Mobile {
		t.Error("Expected mobile emulation to be enabled")
	}

	// Tablet wins when both presets are given.
	cli = NewCLI()
	cli.Mobile = true
	cli.Tablet = true
	cli.applyPresets()

	if cli.Options.ViewportWidth != 768 || cli.Options.ViewportHeight != 1024 {
		t.Errorf("Expected tablet viewport 768x1024, got %dx%d", cli.Options.ViewportWidth, cli.Options.ViewportHeight)
	}
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*cli)
		wantErr bool
	}{
		{"defaults", func(c *cli) {}, false},
		{"chromedp engine", func(c *cli) { c.Options.Engine = "chromedp" }, false},
		{"mixed case engine", func(c *cli) { c.Options.Engine = "Rod" }, false},
		{"quality too low", func(c *cli) { c.Options.Quality = 0 }, true},
		{"quality too high", func(c *cli) { c.Options.Quality = 101 }, true},
		{"zero viewport width", func(c *cli) { c.Options.ViewportWidth = 0 }, true},
		{"negative viewport height", func(c *cli) { c.Options.ViewportHeight = -1 }, true},
		{"negative delay", func(c *cli) { c.Options.Delay = -1 }, true},
		{"zero scale", func(c *cli) { c.Options.Scale = 0 }, true},
		{"zero timeout", func(c *cli) { c.Options.Timeout = 0 }, true},
		{"unknown engine", func(c *cli) { c.Options.Engine = "phantomjs" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := NewCLI()
			tt.mutate(cli)

			err := cli.validateOptions()
			if tt.wantErr && err == nil {
				t.Fatal("Expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Expected options to validate, got %v", err)
			}
		})
	}
}

func TestIsDNSError(t *testing.T) {
	if !isDNSError(errors.New("page load error net::ERR_NAME_NOT_RESOLVED")) {
		t.Error("Expected chrome DNS errors to be detected")
	}
	if !isDNSError(fmt.Errorf("capture failed: %w", errors.New("lookup example.invalid: no such host"))) {
		t.Error("Expected wrapped resolver errors to be detected")
	}
	if isDNSError(errors.New("connection refused")) {
		t.Error("Expected unrelated errors to not be DNS errors")
	}
	if isDNSError(nil) {
		t.Error("Expected nil to not be a DNS error")
	}
}

func TestIsTimeoutError(t *testing.T) {
	if !isTimeoutError(context.DeadlineExceeded) {
		t.Error("Expected context.DeadlineExceeded to be a timeout")
	}
	if !isTimeoutError(fmt.Errorf("capture failed: %w", context.DeadlineExceeded)) {
		t.Error("Expected wrapped deadline errors to be a timeout")
	}
	if !isTimeoutError(errors.New("websocket timeout waiting for response")) {
		t.Error("Expected timeout messages to be detected")
	}
	if isTimeoutError(errors.New("connection refused")) {
		t.Error("Expected unrelated errors to not be timeouts")
	}
	if isTimeoutError(nil) {
		t.Error("Expected nil to not be a timeout")
	}
}

func TestUnwrapError(t *testing.T) {
	root := errors.New("root cause")
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", root))

	if got := unwrapError(wrapped); got != "root cause" {
		t.Errorf("Expected root cause, got %s", got)
	}
	if got := getFullErrorMessage(wrapped); got != "outer: inner: root cause | inner: root cause | root cause" {
		t.Errorf("Unexpected full error message: %s", got)
	}
}

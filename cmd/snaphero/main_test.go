package main

import (
	"os"
	"testing"
)

func TestParseFlags(t *testing.T) {
	cli := NewCLI()
	args := []string{
		"-u", "https://example.com",
		"-o", "shot.jpg",
		"-fp",
		"-d", "1.5",
		"-vw", "1920",
		"-vh", "1080",
		"-q", "90",
		"-eng", "chromedp",
		"-x", "staging.example.com",
	}
	os.Args = append([]string{"cmd"}, args...)
	cli.parseFlags()

	if cli.URL != "https://example.com" {
		t.Errorf("Expected URL to be 'https://example.com', got %s", cli.URL)
	}
	if cli.Output != "shot.jpg" {
		t.Errorf("Expected Output to be 'shot.jpg', got %s", cli.Output)
	}
	if !cli.Options.FullPage {
		t.Error("Expected FullPage to be enabled")
	}
	if cli.Options.Delay != 1.5 {
		t.Errorf("Expected Delay to be 1.5, got %v", cli.Options.Delay)
	}
	if cli.Options.ViewportWidth != 1920 || cli.Options.ViewportHeight != 1080 {
		t.Errorf("Expected viewport 1920x1080, got %dx%d", cli.Options.ViewportWidth, cli.Options.ViewportHeight)
	}
	if cli.Options.Quality != 90 {
		t.Errorf("Expected Quality to be 90, got %d", cli.Options.Quality)
	}
	if cli.Options.Engine != "chromedp" {
		t.Errorf("Expected Engine to be chromedp, got %s", cli.Options.Engine)
	}
	if cli.Exclude != "staging.example.com" {
		t.Errorf("Expected Exclude to be 'staging.example.com', got %s", cli.Exclude)
	}

	// Flags that were not passed keep their defaults.
	if cli.Options.Timeout != 15000 {
		t.Errorf("Expected default Timeout 15000, got %d", cli.Options.Timeout)
	}
	if cli.BatchPrefix != "screenshot_" {
		t.Errorf("Expected default BatchPrefix 'screenshot_', got %s", cli.BatchPrefix)
	}
	if cli.Options.Scale != 1 {
		t.Errorf("Expected default Scale 1, got %v", cli.Options.Scale)
	}
}

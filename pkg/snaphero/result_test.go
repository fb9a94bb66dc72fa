package snaphero

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSave(t *testing.T) {
	result := &Result{TargetURL: "https://example.com/", Image: Image("fake image data")}

	path := filepath.Join(t.TempDir(), "shots", "example.png")
	if err := result.Save(path); err != nil {
		t.Fatalf("Failed to save screenshot: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved screenshot: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("Expected saved file to match the image, got %q", data)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.png")

	result := &Result{TargetURL: "https://example.com/", Image: Image("first")}
	if err := result.Save(path); err != nil {
		t.Fatalf("Failed to save screenshot: %v", err)
	}

	result.Image = Image("second")
	if err := result.Save(path); err != nil {
		t.Fatalf("Failed to overwrite screenshot: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved screenshot: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected overwritten file to contain the new image, got %q", data)
	}
}

func TestSaveEmptyImage(t *testing.T) {
	result := &Result{TargetURL: "https://example.com/"}

	path := filepath.Join(t.TempDir(), "example.png")
	if err := result.Save(path); err == nil {
		t.Fatal("Expected an error when saving an empty image")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file to be written for an empty image")
	}
}

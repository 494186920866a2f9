package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deborahgu/serialicon/internal/constants"
	"github.com/deborahgu/serialicon/internal/iconset"
)

func TestRunWritesIconSet(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := run(&out, options{outDir: dir, manifest: true}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, size := range constants.DefaultSizes() {
		if _, err := os.Stat(filepath.Join(dir, constants.PNGFile(size))); err != nil {
			t.Errorf("missing frame %d: %v", size, err)
		}
	}
	for _, name := range []string{constants.ContainerFile, constants.ManifestFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	s := out.String()
	if !strings.HasPrefix(s, "Generating icons...\n") {
		t.Errorf("Unexpected output start: %q", s)
	}
	if strings.Count(s, "  Created ") != 6 {
		t.Errorf("Expected 6 progress lines, got:\n%s", s)
	}
	if strings.Index(s, "Created 16x16") > strings.Index(s, "Created 256x256") {
		t.Errorf("Expected ascending progress, got:\n%s", s)
	}
	if !strings.Contains(s, "app_icon_16.png to app_icon_256.png") {
		t.Errorf("Expected summary line, got:\n%s", s)
	}
}

func TestRunCustomSizes(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := run(&out, options{outDir: dir, sizes: "64,16"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "app_icon_16.png to app_icon_64.png") {
		t.Errorf("Expected sorted summary, got:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, constants.PNGFile(32))); !os.IsNotExist(err) {
		t.Errorf("Expected no 32px frame, stat returned %v", err)
	}
}

func TestRunRejectsBadSizesBeforeWriting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var out bytes.Buffer
	err := run(&out, options{outDir: dir, sizes: "16,0"})
	if !errors.Is(err, iconset.ErrInvalidSize) {
		t.Fatalf("Expected ErrInvalidSize, got %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Expected no output directory, stat returned %v", err)
	}
}

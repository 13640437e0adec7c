package tui

import (
	"bytes"
	"os"
	"testing"
)

func TestDetectMode_MSGETL_PLAIN(t *testing.T) {
	t.Setenv("MSGETL_PLAIN", "1")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	t.Setenv("MSGETL_PLAIN", "")
	t.Setenv("CI", "true")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_NO_COLOR(t *testing.T) {
	t.Setenv("MSGETL_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "1")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_NonFileWriter(t *testing.T) {
	t.Setenv("MSGETL_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if IsStyled(&bytes.Buffer{}) {
		t.Error("IsStyled(buffer) = true, want false")
	}
}

func TestDetectMode_RegularFile(t *testing.T) {
	t.Setenv("MSGETL_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := DetectMode(f); got != ModePlain {
		t.Errorf("DetectMode(file) = %d, want ModePlain", got)
	}
}

package commands

import (
	"path/filepath"
	"testing"
)

func TestSetupCompatFlags(t *testing.T) {
	fs, flags := SetupCompatFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Platform != "web" {
			t.Errorf("expected Platform 'web' by default, got '%s'", flags.Platform)
		}
		if flags.Format != FormatText {
			t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
		}
		if flags.NotReleased {
			t.Error("expected NotReleased to be false by default")
		}
		if flags.Quiet {
			t.Error("expected Quiet to be false by default")
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--platform", "ios", "--format", "json", "--not-released", "-q", "./schemas"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags.Platform != "ios" {
			t.Errorf("expected Platform 'ios', got '%s'", flags.Platform)
		}
		if flags.Format != FormatJSON {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
		if !flags.NotReleased {
			t.Error("expected NotReleased to be true")
		}
		if !flags.Quiet {
			t.Error("expected Quiet to be true")
		}
		if fs.Arg(0) != "./schemas" {
			t.Errorf("expected dir arg './schemas', got '%s'", fs.Arg(0))
		}
	})
}

func TestValidPlatform(t *testing.T) {
	tests := []struct {
		platform string
		want     bool
	}{
		{"web", true},
		{"ios", true},
		{"android", true},
		{"watchos", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			if got := validPlatform(tt.platform); got != tt.want {
				t.Errorf("validPlatform(%q) = %v, want %v", tt.platform, got, tt.want)
			}
		})
	}
}

func TestHandleCompat_NoArgs(t *testing.T) {
	if err := HandleCompat([]string{}); err == nil {
		t.Error("expected error when no directory argument given")
	}
}

func TestHandleCompat_InvalidPlatform(t *testing.T) {
	if err := HandleCompat([]string{"--platform", "watchos", t.TempDir()}); err == nil {
		t.Error("expected error for unknown platform")
	}
}

func TestHandleCompat_InvalidFormat(t *testing.T) {
	if err := HandleCompat([]string{"--format", "xml", t.TempDir()}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestHandleCompat_MissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")
	if err := HandleCompat([]string{"-q", missing}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestHandleCompat_ScansDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSchemaFile(t, dir, "button.json", map[string]any{
		"name": "Button",
		"releaseVersion": map[string]any{
			"web": "released",
		},
	})
	writeSchemaFile(t, dir, "drawer.json", map[string]any{
		"name": "Drawer",
	})

	if err := HandleCompat([]string{"-q", dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleCompat_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	writeSchemaFile(t, dir, "card.json", map[string]any{
		"name": "Card",
		"releaseVersion": map[string]any{
			"web": "1.4.0",
		},
	})

	if err := HandleCompat([]string{"-q", "--format", "json", dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

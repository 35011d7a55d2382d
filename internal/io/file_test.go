package ioutils

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/music-mining/tgmodels/internal/tg"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.txt", "normal-file.txt"},
		{"file:with:colons.txt", "file_with_colons.txt"},
		{"file<with>brackets.txt", "file_with_brackets.txt"},
		{"file/with\\slashes.txt", "file_with_slashes.txt"},
		{"file|with|pipes.txt", "file_with_pipes.txt"},
		{"file?with*wildcards.txt", "file_with_wildcards.txt"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
		{"Etúde", "Etúde"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteFile(ctx, path, []byte("first"), false); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := WriteFile(ctx, path, []byte("second"), false); !errors.Is(err, os.ErrExist) {
		t.Errorf("WriteFile without overwrite error = %v, want os.ErrExist", err)
	}

	if err := WriteFile(ctx, path, []byte("third"), true); err != nil {
		t.Fatalf("WriteFile with overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "third" {
		t.Errorf("file content = %q, want %q", data, "third")
	}
}

func TestWriteFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(ctx, path, []byte("data"), true); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be created after cancellation")
	}
}

func TestOutputConfig_Path(t *testing.T) {
	cfg := &OutputConfig{
		Dir:            "/out",
		FileNameFormat: "{artist} - {name}",
		Extension:      ".txt",
	}

	tests := []struct {
		name   string
		song   *tg.Song
		source string
		want   string
	}{
		{"name and artist", &tg.Song{Name: "Etude", Artist: "Anon"}, "/in/etude.json", "/out/Anon - Etude.txt"},
		{"invalid characters", &tg.Song{Name: "A/B", Artist: "C:D"}, "/in/x.json", "/out/C_D - A_B.txt"},
		{"empty falls back to source", &tg.Song{}, "/in/untitled.json", "/out/untitled.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Path(tt.song, tt.source); got != filepath.FromSlash(tt.want) {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Package ioutils provides file system utilities for tgdump.
//
// This package contains functions for:
//   - File writing
//   - Filename sanitization
//   - Directory creation
//   - Output path computation
package ioutils

import (
	"context"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists, it is
// truncated before writing, unless overwrite is false, in which case
// os.ErrExist is returned and the file is left untouched.
//
// The context is checked before writing; the write itself is not
// interruptible.
//
// Example:
//
//	err := WriteFile(ctx, "/renderings/Anon - Etude.txt", []byte(text), true)
func WriteFile(ctx context.Context, path string, data []byte, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Unicode composition → NFC, so accented names compare equal across platforms
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")      // Returns "Song_ Part 1_2"
//	SanitizeFileName("Etude...")            // Returns "Etude"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = norm.NFC.String(name)
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	name = strings.TrimRight(name, " ")

	return name
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Package ioutils provides file system utilities.
//
// # File Operations
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/path/to/file.txt", []byte("content"), true)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Output Paths
//
// OutputConfig computes where the rendering of a song is written:
//
//	cfg := &ioutils.OutputConfig{Dir: "/out", FileNameFormat: "{artist} - {name}", Extension: ".txt"}
//	path := cfg.Path(song, "/fixtures/etude.json")
package ioutils

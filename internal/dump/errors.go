package dump

import "errors"

var (
	// ErrNoSongs is returned by Initialize when no document could be loaded.
	ErrNoSongs = errors.New("no songs loaded")

	// ErrDumpFailed is returned by StartDumps when some renderings could not be written.
	ErrDumpFailed = errors.New("some songs failed to render")
)

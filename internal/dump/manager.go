package dump

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/music-mining/tgmodels/internal/config"
	ioutils "github.com/music-mining/tgmodels/internal/io"
	"github.com/music-mining/tgmodels/internal/render"
	"github.com/music-mining/tgmodels/internal/songfile"
	"github.com/music-mining/tgmodels/internal/tg"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// loadedSong is a parsed document and where it came from.
type loadedSong struct {
	source string
	song   *tg.Song
}

// Manager coordinates loading and rendering of song documents.
type Manager struct {
	settings *config.Settings
	parser   *songfile.Parser
	output   *ioutils.OutputConfig
	out      io.Writer

	songs    []loadedSong
	rendered int32
	failed   int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new Manager.
//
// Renderings go to files under settings.OutputPath, or to out when the
// output path is empty.
func NewManager(settings *config.Settings, out io.Writer, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		parser:     songfile.NewParser(tg.NewFactory()),
		output:     settings.ToOutputConfig(),
		out:        out,
		onProgress: onProgress,
	}
}

// Initialize loads the documents named by inputs.
//
// inputs is a comma or newline separated list of files and directories.
// Directories contribute their files with the configured input extension,
// in name order. Documents that fail to load are reported as error events
// and skipped.
func (m *Manager) Initialize(ctx context.Context, inputs string) error {
	var paths []string
	for _, input := range parseInputs(inputs) {
		expanded, err := m.expandInput(input)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading %s: %v", input, err), Level: LevelError})
			continue
		}
		paths = append(paths, expanded...)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.progress(ProgressEvent{Message: fmt.Sprintf("Loading: %s", path), Level: LevelVerbose})

		song, err := m.parser.LoadFile(path)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error loading %v", err), Level: LevelError})
			continue
		}

		m.songs = append(m.songs, loadedSong{source: path, song: song})
		m.progress(ProgressEvent{Message: fmt.Sprintf("Found song: %s - %s (%d tracks)", song.Artist, song.Name, song.CountTracks()), Level: LevelInfo})
	}

	if len(m.songs) == 0 {
		return ErrNoSongs
	}

	return nil
}

// StartDumps renders all loaded songs.
//
// Songs are rendered concurrently, at most settings.MaxConcurrentSongs at
// a time. Every song gets its own output file, see outputPaths. When
// writing to the manager's writer, renderings are written in load order
// once all of them are done.
func (m *Manager) StartDumps(ctx context.Context) error {
	if m.output.Dir != "" {
		if err := ioutils.EnsureDir(m.output.Dir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	texts := make([]string, len(m.songs))
	paths := m.outputPaths()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(m.settings.MaxConcurrentSongs, 1))

	for i, s := range m.songs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := m.dumpSong(ctx, s, paths[i])
			if err != nil {
				atomic.AddInt32(&m.failed, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing %s: %v", s.source, err), Level: LevelError})
				return nil // Continue with other songs
			}
			texts[i] = text
			atomic.AddInt32(&m.rendered, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.output.Dir == "" {
		if err := m.writeAll(texts); err != nil {
			return err
		}
	}

	if failed := atomic.LoadInt32(&m.failed); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrDumpFailed, failed, len(m.songs))
	}

	return nil
}

// GetProgress returns the number of rendered songs and loaded songs.
func (m *Manager) GetProgress() (rendered, total int32) {
	return atomic.LoadInt32(&m.rendered), int32(len(m.songs))
}

// GetSongNames returns the names of all loaded songs.
func (m *Manager) GetSongNames() []string {
	names := make([]string, len(m.songs))
	for i, s := range m.songs {
		names[i] = fmt.Sprintf("%s - %s (%d tracks)", s.song.Artist, s.song.Name, s.song.CountTracks())
	}
	return names
}

// dumpSong renders one song. With an output directory the rendering is
// written to path and the returned text is empty.
func (m *Manager) dumpSong(ctx context.Context, s loadedSong, path string) (string, error) {
	text := render.Song(s.song)

	if m.output.Dir == "" {
		return text, nil
	}

	if err := ioutils.WriteFile(ctx, path, []byte(text+"\n"), m.settings.OverwriteExisting); err != nil {
		return "", err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Rendered: %s", filepath.Base(path)), Level: LevelVerbose})
	return "", nil
}

// outputPaths returns one distinct output file per loaded song, in load
// order. A name already taken by an earlier song gets a " (2)", " (3)", ...
// suffix. Names are compared case-insensitively. Without an output
// directory every path is empty.
func (m *Manager) outputPaths() []string {
	paths := make([]string, len(m.songs))
	if m.output.Dir == "" {
		return paths
	}

	taken := make(map[string]bool, len(m.songs))
	for i, s := range m.songs {
		want := m.output.Path(s.song, s.source)
		base := strings.TrimSuffix(want, m.output.Extension)
		path := want
		for n := 2; taken[strings.ToLower(path)]; n++ {
			path = fmt.Sprintf("%s (%d)%s", base, n, m.output.Extension)
		}
		if path != want {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Name taken, writing %s as %s", s.source, filepath.Base(path)), Level: LevelWarning})
		}
		taken[strings.ToLower(path)] = true
		paths[i] = path
	}
	return paths
}

func (m *Manager) writeAll(texts []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, text := range texts {
		if text == "" {
			continue
		}
		if _, err := io.WriteString(m.out, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) expandInput(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), m.settings.InputExtension) {
			continue
		}
		paths = append(paths, filepath.Join(input, entry.Name()))
	}
	return paths, nil
}

// progress delivers events one at a time, so onProgress needs no locking.
func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onProgress(event)
}

func parseInputs(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	var inputs []string
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field != "" {
			inputs = append(inputs, field)
		}
	}
	return inputs
}

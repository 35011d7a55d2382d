package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/music-mining/tgmodels/internal/config"
	"github.com/music-mining/tgmodels/internal/dump"
)

// Styles for progress output
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	// Command line flags
	var (
		inputFlag       = flag.String("input", "", "Song document(s) or directories to render (comma-separated or newline-separated)")
		outputFlag      = flag.String("output", "", "Output directory (overrides config, stdout if empty)")
		configFlag      = flag.String("config", "", "Path to config file")
		concurrencyFlag = flag.Int("concurrency", 0, "Maximum songs rendered in parallel (overrides config)")
		verboseFlag     = flag.Bool("verbose", false, "Show verbose output")
		plainFlag       = flag.Bool("plain", false, "Disable styled output")
	)

	flag.Parse()

	if *inputFlag == "" && flag.NArg() == 0 {
		fmt.Println("tgdump - Print the debug rendering of song documents")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tgdump -input <file|dir> [options]")
		fmt.Println("  tgdump <file|dir> [options]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *concurrencyFlag > 0 {
		settings.MaxConcurrentSongs = *concurrencyFlag
	}
	if *plainFlag {
		settings.Styled = false
	}

	inputs := *inputFlag
	if inputs == "" {
		inputs = flag.Arg(0)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	style := func(s lipgloss.Style, text string) string {
		if !settings.Styled {
			return text
		}
		return s.Render(text)
	}

	// Progress goes to stderr so stdout only carries renderings.
	manager := dump.NewManager(settings, os.Stdout, func(event dump.ProgressEvent) {
		if event.Level == dump.LevelVerbose && !*verboseFlag {
			return
		}

		var line string
		switch event.Level {
		case dump.LevelError:
			line = style(errorStyle, "error: "+event.Message)
		case dump.LevelWarning:
			line = style(warningStyle, "warn:  "+event.Message)
		case dump.LevelSuccess:
			line = style(successStyle, "ok:    "+event.Message)
		case dump.LevelInfo:
			line = style(infoStyle, "info:  "+event.Message)
		default:
			line = style(dimStyle, "       "+event.Message)
		}

		fmt.Fprintln(os.Stderr, line)
	})

	fmt.Fprintln(os.Stderr, style(titleStyle, "tgdump"))

	if err := manager.Initialize(ctx, inputs); err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	if err := manager.StartDumps(ctx); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during rendering: %v\n", err)
		os.Exit(1)
	}

	rendered, total := manager.GetProgress()
	fmt.Fprintln(os.Stderr, style(successStyle, fmt.Sprintf("Rendered %d/%d songs", rendered, total)))
}

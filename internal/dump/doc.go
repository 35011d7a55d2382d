// Package dump loads song documents and writes their renderings.
//
// # Manager
//
// The Manager coordinates the whole run:
//
//  1. Expand input paths (files, and directories of documents)
//  2. Load every document into a song model
//  3. Render songs concurrently
//  4. Write each rendering to its own file, or all of them to a writer
//
// # Basic Usage
//
//	manager := dump.NewManager(settings, os.Stdout, func(event dump.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, "fixtures/,extra/song.json"); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.StartDumps(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// settings.MaxConcurrentSongs bounds how many songs are rendered and
// written at the same time. Progress callbacks are serialized.
package dump

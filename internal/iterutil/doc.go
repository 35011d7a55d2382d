// Package iterutil provides the host-style iterator used by the song model
// and helpers that materialize iterators into slices.
//
// The song model exposes some of its child collections (tracks, measures,
// measure headers) as iterators rather than slices. Rendering wants an
// ordered, finite list, so ListFromIterator drains an iterator into one:
//
//	tracks := iterutil.ListFromIterator(song.Tracks())
//	for _, track := range tracks {
//	    fmt.Println(track.Name)
//	}
//
// Iterators can also be consumed with range-over-func through Seq:
//
//	for measure := range iterutil.Seq(track.Measures()) {
//	    fmt.Println(measure.Number())
//	}
package iterutil

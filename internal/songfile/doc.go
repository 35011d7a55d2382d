// Package songfile reads song model documents.
//
// A document is the JSON form of a tg.Song as defined by package dto. It
// is a dump of the in-memory model meant for fixtures and debugging, not a
// tablature file format.
//
// # Parsing
//
//	parser := songfile.NewParser(tg.NewFactory())
//	song, err := parser.ParseSong(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(render.Song(song))
//
// # Loading from File
//
//	song, err := parser.LoadFile("/fixtures/etude.json")
//
// # Document Format
//
//	{
//	  "name": "Etude", "artist": "Anon",
//	  "measure_headers": [{"tempo": 90, "numerator": 3, "denominator": 4}],
//	  "tracks": [{
//	    "number": 1, "name": "Guitar",
//	    "strings": [{"number": 1, "value": 64}, {"number": 2, "value": 59}],
//	    "measures": [{"beats": [{"voices": [{"duration": 4, "notes": [{"value": 5, "string": 1}]}]}]}]
//	  }]
//	}
//
// Tracks without strings get a standard six string tuning. Notes name the
// string they are played on by number.
package songfile

// Package render produces the diagnostic text form of song model entities.
//
// Every entity kind has one rendering function. Container renderings embed
// the renderings of their children, so rendering a Song walks the whole
// containment tree:
//
//	fmt.Println(render.Song(song))
//	// Song [name=Intro,
//	//  artist=Someone,
//	//  tracks=[Track [number=1, measures=[...], strings=[...], name=Guitar]]]
//
// The text is meant for humans reading logs and test failures. It is not
// an interchange format and must not be parsed.
//
// Child collections are rendered with List: elements joined by ", "
// between square brackets, "[]" when empty. Children are visited in model
// order; beat voices are visited by index. A nil entity renders as "null".
// Rendering never mutates the model.
package render

// Package tgmodels extends the song model entities with a readable String.
//
// Each type embeds the matching tg entity and adds no state: the embedded
// entity keeps all of its fields and methods, and String returns the
// rendering of the entity and everything it contains. Constructors take
// the same arguments as the tg constructors they delegate to.
//
//	beat := tgmodels.NewBeat(f)
//	fmt.Println(beat) // Beat [voices=[Voice [...], Voice [...]]]
package tgmodels

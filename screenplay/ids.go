package screenplay

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// SceneID, LocationID, CharacterID and PageID are opaque identity tokens,
// generated at creation and globally unique within a Document. They are used
// as map keys everywhere a cross-reference is needed, rather than direct
// pointers, so the Location forest and scene/page cross-references never
// need a cyclic or back-pointer graph (see the Location forest notes on
// LocationNode).
type (
	SceneID     string
	LocationID  string
	CharacterID string
	PageID      string
)

func newSceneID() SceneID         { return SceneID(uuid.NewString()) }
func newLocationID() LocationID   { return LocationID(uuid.NewString()) }
func newCharacterID() CharacterID { return CharacterID(uuid.NewString()) }
func newPageID() PageID           { return PageID(uuid.NewString()) }

// DisplaySlug renders text as a stable, readable, ASCII label, for places
// where an opaque ID is unusable to a human. Nothing in this repository
// calls it; the export command names its entries from fixture file names.
// Non-ASCII slugline/character text is transliterated the way
// fb2.Transliterate folds foreign titles, rather than dropped.
func DisplaySlug(text string) string {
	return slug.Make(text)
}

package screenplay

import "screenplaydoc/common"

// Coordinate names a point in the Document: a page, a line within that page,
// and optionally a specific element within that line. ElementIndex is nil
// when the coordinate names a whole line.
type Coordinate struct {
	Page         int
	Line         int
	ElementIndex *int
}

// Less reports whether c sorts strictly before other in document order,
// comparing (Page, Line) only — the ordering query layer never needs to
// break ties on ElementIndex.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Page != other.Page {
		return c.Page < other.Page
	}
	return c.Line < other.Line
}

// LessOrEqual reports c <= other in document order.
func (c Coordinate) LessOrEqual(other Coordinate) bool {
	return c == other || c.Less(other)
}

// TextElement is one classified word on a Line.
type TextElement struct {
	Text                     string
	Tag                      common.Tag
	SceneHeadingKind         common.SceneHeadingKind // only meaningful when Tag == common.TagSceneHeading
	PrecedingWhitespaceChars int
	Position                 Coordinate
}

// Line is an ordered sequence of TextElements plus the promoted line-level
// classification and side-effects recorded against it during assembly.
type Line struct {
	Elements []TextElement

	LineTag          common.Tag
	HasLineTag       bool
	SceneHeadingKind common.SceneHeadingKind

	SceneNumber    string
	HasSceneNumber bool

	SceneID    SceneID
	HasSceneID bool

	PrecedingEmptyLines int
	Revised             bool
}

// Page is an ordered sequence of Lines plus header/revision side-effects.
type Page struct {
	Lines []Line

	PageNumber    string
	HasPageNumber bool

	PageID    PageID
	HasPageID bool

	Revised        bool
	RevisionLabel  string
	RevisionDate   string
	HasRevisionTag bool
}

// Scene is a single scene-heading occurrence.
type Scene struct {
	Start       Coordinate
	Number      string
	HasNumber   bool
	Environment common.Environment
	Revised     bool

	// StoryLocations enumerates the path root to leaf in the Location forest
	// for this scene's slugline.
	StoryLocations []LocationID

	StoryTimeOfDay    common.TimeOfDay
	HasStoryTimeOfDay bool
}

// LocationNode is one node in the hierarchical Location forest. The string
// is the fragment at that depth only, never the concatenated path; use
// FullLocationPath / FullLocationPathString to get the whole chain.
type LocationNode struct {
	String        string
	Sublocations  []LocationID
	Superlocation *LocationID
}

// Character is a distinct speaker, keyed by value-equal name.
type Character struct {
	Name string
	ID   CharacterID
}

// Document is the complete, immutable result of a single Parse call. Every
// entity is created during the left-to-right assembly pass and never
// mutated afterward by the query layer.
type Document struct {
	Pages []Page

	Scenes    map[SceneID]Scene
	Locations map[LocationID]LocationNode
	Characters []Character

	// PageNumbers maps a bound PageID to the page_number string recorded for
	// it, mirroring Page.PageNumber for callers that only hold the ID.
	PageNumbers map[PageID]string

	Revisions []Coordinate
}

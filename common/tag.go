// Package common holds the closed enumerations shared across the layout
// classifier, the structural reconstruction passes and the query layer, so
// that none of them needs to depend on the others just to compare tags.
package common

//go:generate go tool go-enum --marshal --names --values -f=$GOFILE

// Tag is the closed classification assigned to a word, and - by promotion -
// to the line it belongs to. SceneHeading is the only variant that carries a
// sub-variant (SceneHeadingKind); Go has no sum types, so the pairing is
// encoded as two sibling fields on TextElement/Line rather than as a nested
// union.
// ENUM(none, omitted, other, blank, action, character, characterExtension, parenthetical, dialogue, transition, moreContinued, sceneHeading, ddLCharacter, ddLCharacterExtension, ddLParenthetical, ddLDialogue, ddLMoreContinued, ddRCharacter, ddRCharacterExtension, ddRParenthetical, ddRDialogue, ddRMoreContinued, dualCharacters, dualDialogues, pageHeader, pagenum, pageRevisionLabel, lineRevisionMarker, scenenum, nonContentTop, nonContentBottom, nonContentLeft, nonContentRight, footer, title, byline, author, draftDate, contact)
type Tag int

// SceneHeadingKind distinguishes the sub-structure of a SceneHeading tag
// (either on a single word, or - when promoted - on the whole line).
// ENUM(line, environment, location, subLocation, timeOfDay, separator, timePeriod, continuity, sceneNumber, slugOther)
type SceneHeadingKind int

// Environment is the INT./EXT. marker at the head of a scene heading.
// ENUM(ext, int, combo)
type Environment int

// TimeOfDay is the closing token of a scene heading's slugline.
// ENUM(day, night, morning, evening, afternoon, other)
type TimeOfDay int

// IsDualDialogue reports whether t belongs to either dual-dialogue column.
func (t Tag) IsDualDialogue() bool {
	switch t {
	case TagDdLCharacter, TagDdLCharacterExtension, TagDdLParenthetical, TagDdLDialogue, TagDdLMoreContinued,
		TagDdRCharacter, TagDdRCharacterExtension, TagDdRParenthetical, TagDdRDialogue, TagDdRMoreContinued:
		return true
	default:
		return false
	}
}

// IsCharacterCue reports whether t names a speaker (either plain or dual-dialogue column).
func (t Tag) IsCharacterCue() bool {
	switch t {
	case TagCharacter, TagDdLCharacter, TagDdRCharacter:
		return true
	default:
		return false
	}
}

// IsCharacterExtension reports whether t is the parenthetical speaker qualifier, e.g. "(V.O.)".
func (t Tag) IsCharacterExtension() bool {
	switch t {
	case TagCharacterExtension, TagDdLCharacterExtension, TagDdRCharacterExtension:
		return true
	default:
		return false
	}
}

// IsDialogueLine reports whether a *line* tag (not a word tag) names spoken text.
func (t Tag) IsDialogueLine() bool {
	return t == TagDialogue || t == TagDualDialogues
}

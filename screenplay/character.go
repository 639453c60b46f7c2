package screenplay

import (
	"strings"

	"screenplaydoc/common"
)

// registerCharacter implements the Character Register: when a line's final
// tag is CHARACTER, concatenate the texts of its CHARACTER elements
// (space-joined, CHARACTER_EXTENSION excluded) and, if no existing
// Character has that name, insert one with a fresh CharacterID.
func (a *assembler) registerCharacter(line Line) {
	name := characterName(line.Elements, common.TagCharacter)
	if name == "" {
		return
	}
	if _, ok := a.characterIndex[name]; ok {
		return
	}
	id := newCharacterID()
	a.characterIndex[name] = id
	a.doc.Characters = append(a.doc.Characters, Character{Name: name, ID: id})
}

func characterName(elements []TextElement, tag common.Tag) string {
	var parts []string
	for _, e := range elements {
		if e.Tag == tag {
			parts = append(parts, e.Text)
		}
	}
	return strings.Join(parts, " ")
}

// IsLine reports whether c names the speaker of line: any contiguous run of
// same-tag CHARACTER / DD_L_CHARACTER / DD_R_CHARACTER elements in the line
// concatenates (space-joined) to c's name.
func (c Character) IsLine(line Line) bool {
	for _, tag := range [...]common.Tag{common.TagCharacter, common.TagDdLCharacter, common.TagDdRCharacter} {
		if run := characterName(line.Elements, tag); run == c.Name {
			return true
		}
	}
	return false
}

// Package report is the read-only query layer over a parsed
// screenplay.Document: orderings, range-to-scene mapping, filters and
// cross-cutting joins. Every function here is pure over an immutable
// Document; none allocates into it.
package report

import (
	"sort"
	"strings"

	"github.com/maruel/natural"

	"screenplaydoc/common"
	"screenplaydoc/screenplay"
)

// OrderedScenes returns scene IDs sorted by (start.page, start.line)
// ascending.
func OrderedScenes(doc *screenplay.Document) []screenplay.SceneID {
	ids := make([]screenplay.SceneID, 0, len(doc.Scenes))
	for id := range doc.Scenes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return doc.Scenes[ids[i]].Start.Less(doc.Scenes[ids[j]].Start)
	})
	return ids
}

// OrderedSceneLabels returns scene numbers sorted in natural order, so "2"
// precedes "10" the way a human-facing listing should. A scene that carries
// no number contributes an empty label.
func OrderedSceneLabels(doc *screenplay.Document) []string {
	labels := make([]string, 0, len(doc.Scenes))
	for _, s := range doc.Scenes {
		labels = append(labels, sceneLabel(s))
	}
	sort.Slice(labels, func(i, j int) bool { return natural.Less(labels[i], labels[j]) })
	return labels
}

func sceneLabel(s screenplay.Scene) string {
	if s.HasNumber && s.Number != "" {
		return s.Number
	}
	return ""
}

// SceneForCoordinate returns the most recent scene whose Start <= c in
// document order, walking backward through c.Page's lines then into prior
// pages. Returns false if no scene heading precedes c.
func SceneForCoordinate(doc *screenplay.Document, c screenplay.Coordinate) (screenplay.SceneID, bool) {
	for page := c.Page; page >= 0; page-- {
		startLine := len(doc.Pages[page].Lines) - 1
		if page == c.Page {
			startLine = c.Line
		}
		for line := startLine; line >= 0; line-- {
			l := doc.Pages[page].Lines[line]
			if l.HasSceneID {
				candidate := screenplay.Coordinate{Page: page, Line: line}
				if candidate.LessOrEqual(c) {
					return l.SceneID, true
				}
			}
		}
	}
	return "", false
}

// ScenesInRange returns, in document order, the distinct scene IDs whose
// start coordinate lies within the inclusive [a,b] range, plus the scene
// active at a (if any).
func ScenesInRange(doc *screenplay.Document, a, b screenplay.Coordinate) []screenplay.SceneID {
	seen := map[screenplay.SceneID]bool{}
	var out []screenplay.SceneID

	add := func(id screenplay.SceneID) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}

	if active, ok := SceneForCoordinate(doc, a); ok {
		add(active)
	}
	for _, id := range OrderedScenes(doc) {
		s := doc.Scenes[id]
		if a.LessOrEqual(s.Start) && s.Start.LessOrEqual(b) {
			add(id)
		}
	}
	return out
}

// FilterScenesByLocations returns the subset of scenes whose StoryLocations
// intersects locs.
func FilterScenesByLocations(doc *screenplay.Document, scenes []screenplay.SceneID, locs []screenplay.LocationID) []screenplay.SceneID {
	want := map[screenplay.LocationID]bool{}
	for _, l := range locs {
		want[l] = true
	}
	var out []screenplay.SceneID
	for _, id := range scenes {
		for _, l := range doc.Scenes[id].StoryLocations {
			if want[l] {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// FilterScenesByCharacterSpeaking returns the subset of scenes in which c
// speaks at least one line, scanning forward from each scene's start to the
// next scene's start (exclusive).
func FilterScenesByCharacterSpeaking(doc *screenplay.Document, scenes []screenplay.SceneID, c screenplay.Character) []screenplay.SceneID {
	var out []screenplay.SceneID
	for _, id := range scenes {
		if characterSpeaksInScene(doc, doc.Scenes[id], c) {
			out = append(out, id)
		}
	}
	return out
}

func characterSpeaksInScene(doc *screenplay.Document, s screenplay.Scene, c screenplay.Character) bool {
	start, end := PagesForScene(doc, s)
	for page := start; page <= end; page++ {
		for li, l := range doc.Pages[page].Lines {
			coord := screenplay.Coordinate{Page: page, Line: li}
			if coord.Less(s.Start) {
				continue
			}
			if page != s.Start.Page && l.HasSceneID {
				// reached the next scene heading on a later page; stop.
				return false
			}
			if page == s.Start.Page && l.HasSceneID && coord != s.Start {
				return false
			}
			if c.IsLine(l) {
				return true
			}
		}
	}
	return false
}

// DialogueLinesForCharacter returns all (coordinate, line) pairs whose
// line_tag is DIALOGUE or DUAL_DIALOGUES and that follow immediately (no
// intervening non-dialogue/non-parenthetical/non-extension line) a
// character-cue line matching c.
func DialogueLinesForCharacter(doc *screenplay.Document, c screenplay.Character) []ScenePosition {
	var out []ScenePosition
	for pi, p := range doc.Pages {
		speaking := false
		for li, l := range p.Lines {
			switch {
			case l.LineTag == common.TagCharacter || l.LineTag == common.TagDualCharacters:
				speaking = c.IsLine(l)
			case l.LineTag == common.TagParenthetical || isCharacterExtensionLine(l):
				// stays within the same cue's run
			case l.LineTag == common.TagDialogue || l.LineTag == common.TagDualDialogues:
				if speaking {
					out = append(out, ScenePosition{Coordinate: screenplay.Coordinate{Page: pi, Line: li}, Line: l})
				}
			default:
				speaking = false
			}
		}
	}
	return out
}

func isCharacterExtensionLine(l screenplay.Line) bool {
	for _, e := range l.Elements {
		if e.Tag.IsCharacterExtension() {
			return true
		}
	}
	return false
}

// ScenePosition pairs a coordinate with the Line found there, for query
// results that need both.
type ScenePosition struct {
	Coordinate screenplay.Coordinate
	Line       screenplay.Line
}

// FilterLinesByScenes returns the lines among `lines` whose SceneForCoordinate
// is in scenes.
func FilterLinesByScenes(doc *screenplay.Document, lines []ScenePosition, scenes []screenplay.SceneID) []ScenePosition {
	want := map[screenplay.SceneID]bool{}
	for _, id := range scenes {
		want[id] = true
	}
	var out []ScenePosition
	for _, lp := range lines {
		if id, ok := SceneForCoordinate(doc, lp.Coordinate); ok && want[id] {
			out = append(out, lp)
		}
	}
	return out
}

// LocationsOnPage returns the union of StoryLocations over scenes
// intersecting page i.
func LocationsOnPage(doc *screenplay.Document, i int) []screenplay.LocationID {
	seen := map[screenplay.LocationID]bool{}
	var out []screenplay.LocationID
	for _, id := range OrderedScenes(doc) {
		s := doc.Scenes[id]
		start, end := PagesForScene(doc, s)
		if i < start || i > end {
			continue
		}
		for _, l := range s.StoryLocations {
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	return out
}

// CharactersOnPage returns the union of characters speaking in scenes
// intersecting page i.
func CharactersOnPage(doc *screenplay.Document, i int) []screenplay.Character {
	var out []screenplay.Character
	for _, c := range doc.Characters {
		for _, id := range OrderedScenes(doc) {
			s := doc.Scenes[id]
			start, end := PagesForScene(doc, s)
			if i < start || i > end {
				continue
			}
			if characterSpeaksInScene(doc, s, c) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// PagesForScene returns the inclusive page-index range from s.Start.Page to
// the page of the next scene's start (or the document's last page, if s is
// the last scene).
func PagesForScene(doc *screenplay.Document, s screenplay.Scene) (start, end int) {
	start = s.Start.Page
	end = len(doc.Pages) - 1
	for _, id := range OrderedScenes(doc) {
		other := doc.Scenes[id]
		if s.Start.Less(other.Start) {
			end = other.Start.Page
			break
		}
	}
	if end < start {
		end = start
	}
	return start, end
}

// LocationRoot walks a LocationID up to its root (superlocation == nil).
func LocationRoot(doc *screenplay.Document, id screenplay.LocationID) screenplay.LocationID {
	for {
		node, ok := doc.Locations[id]
		if !ok || node.Superlocation == nil {
			return id
		}
		id = *node.Superlocation
	}
}

// LocationLeafs returns every location with no children.
func LocationLeafs(doc *screenplay.Document) []screenplay.LocationID {
	var out []screenplay.LocationID
	for id, node := range doc.Locations {
		if len(node.Sublocations) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// FullLocationPath returns the ordered root-to-leaf chain of IDs ending at leaf.
func FullLocationPath(doc *screenplay.Document, leaf screenplay.LocationID) []screenplay.LocationID {
	var path []screenplay.LocationID
	id := leaf
	for {
		path = append([]screenplay.LocationID{id}, path...)
		node, ok := doc.Locations[id]
		if !ok || node.Superlocation == nil {
			break
		}
		id = *node.Superlocation
	}
	return path
}

// FullLocationPathString renders FullLocationPath as a " - "-joined string.
func FullLocationPathString(doc *screenplay.Document, leaf screenplay.LocationID) string {
	path := FullLocationPath(doc, leaf)
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = doc.Locations[id].String
	}
	return strings.Join(parts, " - ")
}

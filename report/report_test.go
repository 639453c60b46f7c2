package report

import (
	"testing"

	"screenplaydoc/pdfdoc"
	"screenplaydoc/screenplay"
)

func word(text string, x, y float64) pdfdoc.Word {
	return pdfdoc.Word{Text: text, BBoxWidth: float64(len(text)) * 7.2, Position: pdfdoc.Position{X: x, Y: y}, FontCharacterWidth: 7.2}
}

func twoSceneDoc(t *testing.T) *screenplay.Document {
	t.Helper()
	input := &pdfdoc.Document{Pages: []pdfdoc.Page{
		{Lines: []pdfdoc.Line{
			{Words: []pdfdoc.Word{
				word("INT.", 108.0, 216.0), word("HOUSE", 144.0, 216.0),
				word("-", 200.0, 216.0), word("DAY", 216.0, 216.0),
			}},
			{Words: []pdfdoc.Word{word("CHARLIE", 266.4, 190.0)}},
			{Words: []pdfdoc.Word{word("Hello.", 180.0, 178.0)}},
		}},
		{Lines: []pdfdoc.Line{
			{Words: []pdfdoc.Word{
				word("EXT.", 108.0, 216.0), word("STREET", 144.0, 216.0),
				word("-", 210.0, 216.0), word("NIGHT", 226.0, 216.0),
			}},
		}},
	}}
	doc, err := screenplay.Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestOrderedScenes(t *testing.T) {
	doc := twoSceneDoc(t)
	ids := OrderedScenes(doc)
	if len(ids) != 2 {
		t.Fatalf("OrderedScenes = %d, want 2", len(ids))
	}
	if doc.Scenes[ids[0]].Start.Page != 0 || doc.Scenes[ids[1]].Start.Page != 1 {
		t.Fatalf("scenes not in document order: %+v", ids)
	}
}

func TestSceneForCoordinate(t *testing.T) {
	doc := twoSceneDoc(t)
	ids := OrderedScenes(doc)

	got, ok := SceneForCoordinate(doc, screenplay.Coordinate{Page: 0, Line: 2})
	if !ok || got != ids[0] {
		t.Fatalf("SceneForCoordinate(0,2) = %v,%v want %v", got, ok, ids[0])
	}

	if _, ok := SceneForCoordinate(doc, screenplay.Coordinate{Page: 0, Line: -1}); ok {
		t.Fatalf("expected no scene before any heading")
	}
}

func TestDialogueLinesForCharacter(t *testing.T) {
	doc := twoSceneDoc(t)
	if len(doc.Characters) != 1 {
		t.Fatalf("Characters = %d, want 1", len(doc.Characters))
	}
	lines := DialogueLinesForCharacter(doc, doc.Characters[0])
	if len(lines) != 1 {
		t.Fatalf("DialogueLinesForCharacter = %d, want 1", len(lines))
	}
}

func TestFullLocationPathString(t *testing.T) {
	doc := twoSceneDoc(t)
	ids := OrderedScenes(doc)
	leaf := doc.Scenes[ids[0]].StoryLocations[len(doc.Scenes[ids[0]].StoryLocations)-1]
	path := FullLocationPathString(doc, leaf)
	if path != "INT. HOUSE" {
		t.Fatalf("FullLocationPathString = %q, want %q", path, "INT. HOUSE")
	}
}

func TestPagesForScene(t *testing.T) {
	doc := twoSceneDoc(t)
	ids := OrderedScenes(doc)
	start, end := PagesForScene(doc, doc.Scenes[ids[0]])
	if start != 0 || end != 1 {
		t.Fatalf("PagesForScene(scene0) = [%d,%d], want [0,1]", start, end)
	}
}

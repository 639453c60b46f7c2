package screenplay

import (
	"testing"

	"screenplaydoc/common"
	"screenplaydoc/pdfdoc"
)

func word(text string, x, y float64) pdfdoc.Word {
	return pdfdoc.Word{
		Text:               text,
		BBoxWidth:          float64(len(text)) * 7.2,
		BBoxHeight:         12,
		Position:           pdfdoc.Position{X: x, Y: y},
		FontSize:           12,
		FontCharacterWidth: 7.2,
	}
}

func onePageDoc(lines ...pdfdoc.Line) *pdfdoc.Document {
	return &pdfdoc.Document{Pages: []pdfdoc.Page{{Lines: lines}}}
}

// Scenario A — ACTION line.
func TestScenarioA_ActionLine(t *testing.T) {
	input := onePageDoc(pdfdoc.Line{Words: []pdfdoc.Word{word("Action!", 108.0, 216.0)}})

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("Pages = %d, want 1", len(doc.Pages))
	}
	p := doc.Pages[0]
	if len(p.Lines) != 1 {
		t.Fatalf("Lines = %d, want 1", len(p.Lines))
	}
	line := p.Lines[0]
	if !line.HasLineTag || line.LineTag != common.TagAction {
		t.Fatalf("line tag = %v (set=%v), want ACTION", line.LineTag, line.HasLineTag)
	}
	if len(line.Elements) != 1 || line.Elements[0].Tag != common.TagAction {
		t.Fatalf("unexpected elements: %+v", line.Elements)
	}
	if len(doc.Scenes) != 0 {
		t.Fatalf("expected no scenes, got %d", len(doc.Scenes))
	}
	if len(doc.Characters) != 0 {
		t.Fatalf("expected no characters, got %d", len(doc.Characters))
	}
}

// Scenario B — Scene heading with sub-location and time.
func TestScenarioB_SceneHeadingWithSubLocationAndTime(t *testing.T) {
	input := onePageDoc(pdfdoc.Line{Words: []pdfdoc.Word{
		word("INT.", 108.0, 216.0),
		word("HOUSE", 144.0, 216.0),
		word("-", 200.0, 216.0),
		word("KITCHEN", 216.0, 216.0),
		word("-", 280.0, 216.0),
		word("DAY", 296.0, 216.0),
		word("1A", 540.0, 216.0),
	}})

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	line := doc.Pages[0].Lines[0]
	if line.LineTag != common.TagSceneHeading || line.SceneHeadingKind != common.SceneHeadingKindLine {
		t.Fatalf("line tag = %v/%v, want SCENE_HEADING(Line)", line.LineTag, line.SceneHeadingKind)
	}
	if !line.HasSceneNumber || line.SceneNumber != "1A" {
		t.Fatalf("scene_number = %q (set=%v), want 1A", line.SceneNumber, line.HasSceneNumber)
	}
	if !line.HasSceneID {
		t.Fatalf("expected scene_id bound on heading line")
	}
	scene := doc.Scenes[line.SceneID]
	if scene.Environment != common.EnvironmentInt {
		t.Fatalf("environment = %v, want Int", scene.Environment)
	}
	if len(scene.StoryLocations) != 2 {
		t.Fatalf("story_locations length = %d, want 2", len(scene.StoryLocations))
	}
	root := doc.Locations[scene.StoryLocations[0]]
	if root.String != "INT. HOUSE" {
		t.Fatalf("root location = %q, want %q", root.String, "INT. HOUSE")
	}
	sub := doc.Locations[scene.StoryLocations[1]]
	if sub.String != "KITCHEN" {
		t.Fatalf("sub location = %q, want %q", sub.String, "KITCHEN")
	}
	if !scene.HasStoryTimeOfDay || scene.StoryTimeOfDay != common.TimeOfDayDay {
		t.Fatalf("story_time_of_day = %v (set=%v), want Day", scene.StoryTimeOfDay, scene.HasStoryTimeOfDay)
	}
}

// Scenario C — Character cue + dialogue.
func TestScenarioC_CharacterCueAndDialogue(t *testing.T) {
	input := onePageDoc(
		pdfdoc.Line{Words: []pdfdoc.Word{
			word("CHARLIE", 266.4, 360.0),
			word("(V.O.)", 332.4, 360.0),
		}},
		pdfdoc.Line{Words: []pdfdoc.Word{
			word("I", 180.0, 348.0),
			word("always", 190.0, 348.0),
		}},
	)

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lines := doc.Pages[0].Lines
	if len(lines) != 2 {
		t.Fatalf("Lines = %d, want 2", len(lines))
	}
	cue, dialogue := lines[0], lines[1]

	if cue.LineTag != common.TagCharacter {
		t.Fatalf("cue line tag = %v, want CHARACTER", cue.LineTag)
	}
	if cue.Elements[0].Tag != common.TagCharacter || cue.Elements[1].Tag != common.TagCharacterExtension {
		t.Fatalf("unexpected cue elements: %+v", cue.Elements)
	}
	if dialogue.LineTag != common.TagDialogue {
		t.Fatalf("dialogue line tag = %v, want DIALOGUE", dialogue.LineTag)
	}

	if len(doc.Characters) != 1 || doc.Characters[0].Name != "CHARLIE" {
		t.Fatalf("unexpected characters: %+v", doc.Characters)
	}
	charlie := doc.Characters[0]

	report := dialogueLinesForCharacter(doc, charlie)
	if len(report) != 1 {
		t.Fatalf("dialogue_lines_for_character = %d, want 1", len(report))
	}
}

// Scenario D — Page header.
func TestScenarioD_PageHeader(t *testing.T) {
	input := onePageDoc(pdfdoc.Line{Words: []pdfdoc.Word{word("17A.", 520.0, 720.0)}})

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := doc.Pages[0]
	if !p.HasPageNumber || p.PageNumber != "17A." {
		t.Fatalf("page_number = %q (set=%v), want 17A.", p.PageNumber, p.HasPageNumber)
	}
	if p.Lines[0].LineTag != common.TagPageHeader {
		t.Fatalf("line tag = %v, want PAGE_HEADER", p.Lines[0].LineTag)
	}
}

// Scenario E — Revision marker.
func TestScenarioE_RevisionMarker(t *testing.T) {
	input := onePageDoc(pdfdoc.Line{Words: []pdfdoc.Word{
		word("INT.", 108.0, 216.0),
		word("HOUSE", 144.0, 216.0),
		word("-", 200.0, 216.0),
		word("KITCHEN", 216.0, 216.0),
		word("-", 280.0, 216.0),
		word("DAY", 296.0, 216.0),
		word("1A", 540.0, 216.0),
		word("*", 568.0, 216.0),
	}})

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	line := doc.Pages[0].Lines[0]
	if !line.Revised {
		t.Fatalf("expected line.revised = true")
	}
	if line.SceneNumber != "1A" {
		t.Fatalf("scene_number = %q, want 1A (unaffected by trailing marker)", line.SceneNumber)
	}
	scene := doc.Scenes[line.SceneID]
	if !scene.Revised {
		t.Fatalf("expected scene.revised = true")
	}
}

// Scenario F — Two scenes sharing the same root location.
func TestScenarioF_TwoScenesSameRootLocation(t *testing.T) {
	input := &pdfdoc.Document{Pages: []pdfdoc.Page{
		{Lines: []pdfdoc.Line{{Words: []pdfdoc.Word{
			word("INT.", 108.0, 216.0),
			word("HOUSE", 144.0, 216.0),
			word("-", 200.0, 216.0),
			word("KITCHEN", 216.0, 216.0),
			word("-", 280.0, 216.0),
			word("DAY", 296.0, 216.0),
		}}}},
		{Lines: []pdfdoc.Line{{Words: []pdfdoc.Word{
			word("INT.", 108.0, 216.0),
			word("HOUSE", 144.0, 216.0),
			word("-", 200.0, 216.0),
			word("LIVING", 216.0, 216.0),
			word("ROOM", 260.0, 216.0),
			word("-", 310.0, 216.0),
			word("NIGHT", 326.0, 216.0),
		}}}},
	}}

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var roots []LocationID
	for id, node := range doc.Locations {
		if node.Superlocation == nil {
			roots = append(roots, id)
		}
	}
	if len(roots) != 1 {
		t.Fatalf("distinct root locations = %d, want 1: %+v", len(roots), doc.Locations)
	}
	root := doc.Locations[roots[0]]
	if root.String != "INT. HOUSE" {
		t.Fatalf("root string = %q, want %q", root.String, "INT. HOUSE")
	}
	if len(root.Sublocations) != 2 {
		t.Fatalf("sublocations = %d, want 2", len(root.Sublocations))
	}

	scene1 := doc.Scenes[doc.Pages[0].Lines[0].SceneID]
	scene2 := doc.Scenes[doc.Pages[1].Lines[0].SceneID]
	if scene1.StoryLocations[0] != scene2.StoryLocations[0] {
		t.Fatalf("expected shared root location ID between scenes")
	}
}

func TestEmptyInputReturnsError(t *testing.T) {
	if _, err := Parse(&pdfdoc.Document{}); err != ErrEmptyInput {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := Parse(nil); err != ErrEmptyInput {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestBlankPageProducesNoPage(t *testing.T) {
	input := &pdfdoc.Document{Pages: []pdfdoc.Page{{Lines: nil}}}
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("err = %v, want nil for a present-but-blank page", err)
	}
	if len(doc.Pages) != 0 {
		t.Fatalf("len(doc.Pages) = %d, want 0", len(doc.Pages))
	}
}

// dialogueLinesForCharacter is a small local stand-in for the report
// package's query, exercised here to confirm Character/Line wiring; see
// report.DialogueLinesForCharacter for the full query-layer contract.
func dialogueLinesForCharacter(doc *Document, c Character) []Line {
	var out []Line
	for pi, p := range doc.Pages {
		for li, l := range p.Lines {
			if l.LineTag != common.TagDialogue && l.LineTag != common.TagDualDialogues {
				continue
			}
			if li == 0 {
				continue
			}
			prev := p.Lines[li-1]
			if prev.LineTag == common.TagCharacter && c.IsLine(prev) {
				out = append(out, l)
			}
			_ = pi
		}
	}
	return out
}

package report

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"screenplaydoc/common"
	"screenplaydoc/screenplay"
)

//go:embed templates/breakdown.tmpl
var breakdownTmpl string

// breakdownScene is the presentation-layer view of one Scene the template
// renders against; it adds no new semantic fields, only formatting of
// fields already on screenplay.Scene/Document.
type breakdownScene struct {
	Number            string
	Location          string
	TimeOfDay         string
	Characters        []string
	DialogueLineCount int
}

type breakdownData struct {
	Scenes []breakdownScene
}

// Render formats doc as a human-readable scene breakdown: scene list with
// environment/location/time-of-day, characters speaking, and dialogue line
// counts, via an embedded text/template using sprig's string-case helpers.
func Render(w io.Writer, doc *screenplay.Document) error {
	tmpl, err := template.New("breakdown").Funcs(sprig.TxtFuncMap()).Parse(breakdownTmpl)
	if err != nil {
		return fmt.Errorf("unable to parse breakdown template: %w", err)
	}

	data := breakdownData{}
	for _, id := range OrderedScenes(doc) {
		s := doc.Scenes[id]
		data.Scenes = append(data.Scenes, breakdownScene{
			Number:            s.Number,
			Location:          sceneLocationString(doc, s),
			TimeOfDay:         sceneTimeOfDayString(s),
			Characters:        speakingCharacterNames(doc, s),
			DialogueLineCount: len(DialogueLinesInScene(doc, s)),
		})
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("unable to render breakdown: %w", err)
	}
	return nil
}

func sceneLocationString(doc *screenplay.Document, s screenplay.Scene) string {
	if len(s.StoryLocations) == 0 {
		return "(unknown location)"
	}
	return FullLocationPathString(doc, s.StoryLocations[len(s.StoryLocations)-1])
}

func sceneTimeOfDayString(s screenplay.Scene) string {
	if !s.HasStoryTimeOfDay {
		return "(unspecified)"
	}
	return s.StoryTimeOfDay.String()
}

func speakingCharacterNames(doc *screenplay.Document, s screenplay.Scene) []string {
	var names []string
	for _, c := range doc.Characters {
		if characterSpeaksInScene(doc, s, c) {
			names = append(names, c.Name)
		}
	}
	return names
}

// DialogueLinesInScene returns the lines within s tagged DIALOGUE or
// DUAL_DIALOGUES.
func DialogueLinesInScene(doc *screenplay.Document, s screenplay.Scene) []ScenePosition {
	start, end := PagesForScene(doc, s)
	var out []ScenePosition
	for page := start; page <= end; page++ {
		for li, l := range doc.Pages[page].Lines {
			coord := screenplay.Coordinate{Page: page, Line: li}
			if coord.Less(s.Start) {
				continue
			}
			if coord != s.Start && l.HasSceneID {
				return out
			}
			if l.LineTag == common.TagDialogue || l.LineTag == common.TagDualDialogues {
				out = append(out, ScenePosition{Coordinate: coord, Line: l})
			}
		}
	}
	return out
}

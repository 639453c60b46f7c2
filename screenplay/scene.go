package screenplay

import (
	"strings"

	"screenplaydoc/common"
)

// buildScene implements the Scene/Location Builder: triggered when line's
// final tag is SCENE_HEADING(Line). It extracts environment, root/sub
// location path, interns Locations into the forest (structural sharing
// across scenes), binds a fresh SceneID onto the line, and records the
// Scene.
func (a *assembler) buildScene(pageIdx, lineIdx int, line *Line) {
	env, hasEnv := a.sceneEnvironment(line.Elements)
	if !hasEnv {
		env = common.EnvironmentExt
	}

	rootString, subStrings := sceneLocationPath(line.Elements)

	var storyLocations []LocationID
	if rootString != "" {
		rootID := a.internRoot(rootString)
		storyLocations = append(storyLocations, rootID)
		leaf := rootID
		for _, sub := range subStrings {
			leaf = a.internChild(leaf, sub)
			storyLocations = append(storyLocations, leaf)
		}
	}

	tod, hasTod := a.sceneTimeOfDay(line.Elements)

	idx := lineIdx
	scene := Scene{
		Start:             Coordinate{Page: pageIdx, Line: idx},
		Number:            line.SceneNumber,
		HasNumber:         line.HasSceneNumber,
		Environment:       env,
		Revised:           line.Revised,
		StoryLocations:    storyLocations,
		StoryTimeOfDay:    tod,
		HasStoryTimeOfDay: hasTod,
	}

	id := newSceneID()
	a.doc.Scenes[id] = scene
	line.SceneID = id
	line.HasSceneID = true
}

func (a *assembler) sceneEnvironment(elements []TextElement) (common.Environment, bool) {
	for _, e := range elements {
		if e.Tag == common.TagSceneHeading && e.SceneHeadingKind == common.SceneHeadingKindEnvironment {
			return a.vocab.Environment(e.Text)
		}
	}
	return 0, false
}

// sceneLocationPath walks the line's elements building the root string
// (space-joined Environment+Location run up to the first Separator) and the
// ordered sub-location strings (one per Separator-delimited SubLocation
// run).
func sceneLocationPath(elements []TextElement) (root string, subs []string) {
	var rootParts []string
	var subParts []string
	buildingRoot := true
	haveSeenSeparator := false

	flushSub := func() {
		if len(subParts) > 0 {
			subs = append(subs, strings.Join(subParts, " "))
			subParts = nil
		}
	}

	for _, e := range elements {
		if e.Tag != common.TagSceneHeading {
			if buildingRoot || haveSeenSeparator {
				break
			}
			continue
		}
		switch e.SceneHeadingKind {
		case common.SceneHeadingKindEnvironment, common.SceneHeadingKindLocation:
			if buildingRoot {
				rootParts = append(rootParts, e.Text)
			} else {
				return root, subs
			}
		case common.SceneHeadingKindSeparator:
			if buildingRoot {
				root = strings.Join(rootParts, " ")
				buildingRoot = false
			} else {
				flushSub()
			}
			haveSeenSeparator = true
		case common.SceneHeadingKindSubLocation:
			subParts = append(subParts, e.Text)
		default:
			if buildingRoot {
				root = strings.Join(rootParts, " ")
				buildingRoot = false
			}
			flushSub()
			return root, subs
		}
	}
	if buildingRoot {
		root = strings.Join(rootParts, " ")
	}
	flushSub()
	return root, subs
}

func (a *assembler) sceneTimeOfDay(elements []TextElement) (common.TimeOfDay, bool) {
	for _, e := range elements {
		if e.Tag == common.TagSceneHeading && e.SceneHeadingKind == common.SceneHeadingKindTimeOfDay {
			if tod, ok := a.vocab.TimeOfDay(e.Text); ok {
				return tod, true
			}
			return common.TimeOfDayOther, true
		}
	}
	return 0, false
}

// internRoot finds or creates a root LocationNode (superlocation == nil)
// with the given string, implementing the arena-map interning strategy that
// avoids cyclic/back pointers (§9 Design Notes).
func (a *assembler) internRoot(s string) LocationID {
	for _, id := range a.locationRoots {
		if node := a.doc.Locations[id]; node.String == s {
			return id
		}
	}
	id := newLocationID()
	a.doc.Locations[id] = LocationNode{String: s}
	a.locationRoots = append(a.locationRoots, id)
	return id
}

// internChild finds or creates a child of parent with the given string,
// reusing existing nodes so two scenes sharing a root+subpath share the same
// leaf ID (structural sharing).
func (a *assembler) internChild(parent LocationID, s string) LocationID {
	parentNode := a.doc.Locations[parent]
	for _, childID := range parentNode.Sublocations {
		if child := a.doc.Locations[childID]; child.String == s {
			return childID
		}
	}
	id := newLocationID()
	p := parent
	a.doc.Locations[id] = LocationNode{String: s, Superlocation: &p}
	parentNode.Sublocations = append(parentNode.Sublocations, id)
	a.doc.Locations[parent] = parentNode
	return id
}

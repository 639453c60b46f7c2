// Package vocabulary holds the user-overridable string sets the classifier
// consults to recognize environment markers, time-of-day tokens, the
// revision-marker glyph and MORE/CONTINUED callouts. Matching is
// case-insensitive, folded with golang.org/x/text/cases the way the teacher
// folds language-tagged text elsewhere in the corpus.
package vocabulary

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"screenplaydoc/common"
)

// fold lowercases vocabulary tokens for case-insensitive lookup, tagged
// language.AmericanEnglish the way the teacher tags book text elsewhere in
// the corpus (fb2/parse.go, content/text/sentences.go) - screenplay markup
// vocabulary is English-language text, not locale-neutral data.
var fold = cases.Lower(language.AmericanEnglish)

// Vocabulary is the full set of configurable token lists the classifier and
// scene/location builder consult. It is immutable once built.
type Vocabulary struct {
	environment map[string]common.Environment
	timeOfDay   map[string]common.TimeOfDay
	moreContinued []string

	revisionMarker string
}

// Default returns the English-language default Vocabulary: uppercase
// environment and time-of-day markers, "*" as the revision glyph, and the
// standard (MORE)/(CONTINUED)/(CONT'D) callouts.
func Default() Vocabulary {
	v := Vocabulary{
		environment:    map[string]common.Environment{},
		timeOfDay:      map[string]common.TimeOfDay{},
		moreContinued:  []string{"(MORE)", "(CONTINUED)", "(CONT'D)"},
		revisionMarker: "*",
	}
	v.setEnvironment(common.EnvironmentInt, "INT.")
	v.setEnvironment(common.EnvironmentExt, "EXT.")
	v.setEnvironment(common.EnvironmentCombo, "INT./EXT.", "EXT./INT.", "I./E.", "E./I.")

	v.setTimeOfDay(common.TimeOfDayDay, "DAY")
	v.setTimeOfDay(common.TimeOfDayNight, "NIGHT")
	v.setTimeOfDay(common.TimeOfDayMorning, "MORNING")
	v.setTimeOfDay(common.TimeOfDayEvening, "EVENING")
	v.setTimeOfDay(common.TimeOfDayAfternoon, "AFTERNOON")
	return v
}

func key(s string) string { return fold.String(strings.TrimSpace(s)) }

func (v *Vocabulary) setEnvironment(env common.Environment, words ...string) {
	for _, w := range words {
		v.environment[key(w)] = env
	}
}

func (v *Vocabulary) setTimeOfDay(tod common.TimeOfDay, words ...string) {
	for _, w := range words {
		v.timeOfDay[key(w)] = tod
	}
}

// WithEnvironmentWords replaces the word set mapped to env, in a copy of v.
func (v Vocabulary) WithEnvironmentWords(env common.Environment, words ...string) Vocabulary {
	v.environment = cloneEnv(v.environment)
	for k, val := range v.environment {
		if val == env {
			delete(v.environment, k)
		}
	}
	v.setEnvironment(env, words...)
	return v
}

// WithTimeOfDayWords replaces the word set mapped to tod, in a copy of v.
func (v Vocabulary) WithTimeOfDayWords(tod common.TimeOfDay, words ...string) Vocabulary {
	v.timeOfDay = cloneTod(v.timeOfDay)
	for k, val := range v.timeOfDay {
		if val == tod {
			delete(v.timeOfDay, k)
		}
	}
	v.setTimeOfDay(tod, words...)
	return v
}

// WithRevisionMarker overrides the revision-marker glyph, in a copy of v.
func (v Vocabulary) WithRevisionMarker(glyph string) Vocabulary {
	v.revisionMarker = glyph
	return v
}

// WithMoreContinued replaces the MORE/CONTINUED callout token set, in a copy of v.
func (v Vocabulary) WithMoreContinued(tokens ...string) Vocabulary {
	v.moreContinued = append([]string{}, tokens...)
	return v
}

func cloneEnv(m map[string]common.Environment) map[string]common.Environment {
	out := make(map[string]common.Environment, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneTod(m map[string]common.TimeOfDay) map[string]common.TimeOfDay {
	out := make(map[string]common.TimeOfDay, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// RevisionMarker returns the configured revision glyph.
func (v Vocabulary) RevisionMarker() string { return v.revisionMarker }

// IsRevisionMarker reports whether text is (case-sensitively) the revision glyph.
// The marker is a deliberate, exact-glyph match: folding it would let
// ordinary body text collide with the margin marker.
func (v Vocabulary) IsRevisionMarker(text string) bool {
	return text == v.revisionMarker
}

// Environment reports the Environment a token maps to and whether it matched.
func (v Vocabulary) Environment(text string) (common.Environment, bool) {
	env, ok := v.environment[key(text)]
	return env, ok
}

// TimeOfDay reports the TimeOfDay a token maps to and whether it matched.
func (v Vocabulary) TimeOfDay(text string) (common.TimeOfDay, bool) {
	tod, ok := v.timeOfDay[key(text)]
	return tod, ok
}

// IsMoreContinued reports whether text contains one of the configured
// MORE/CONTINUED callout tokens.
func (v Vocabulary) IsMoreContinued(text string) bool {
	folded := key(text)
	for _, tok := range v.moreContinued {
		if strings.Contains(folded, key(tok)) {
			return true
		}
	}
	return false
}

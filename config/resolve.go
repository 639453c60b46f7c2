package config

import (
	"screenplaydoc/common"
	"screenplaydoc/layout"
	"screenplaydoc/vocabulary"
)

// ResolveProfile builds a layout.Profile from the configured base profile
// plus any point overrides.
func (c *Config) ResolveProfile() layout.Profile {
	var p layout.Profile
	switch c.Profile.Base {
	case ProfileKindA4:
		p = layout.A4()
	default:
		p = layout.USLetter()
	}
	if c.Profile.Resolution > 0 {
		p = p.WithResolution(c.Profile.Resolution)
	}

	if c.Profile.Left > 0 {
		p = p.WithLeft(c.Profile.Left)
	}
	if c.Profile.Right > 0 {
		p = p.WithRight(c.Profile.Right)
	}
	if c.Profile.Top > 0 {
		p = p.WithTop(c.Profile.Top)
	}
	if c.Profile.Bottom > 0 {
		p = p.WithBottom(c.Profile.Bottom)
	}
	if c.Profile.Action > 0 {
		p = p.WithAction(c.Profile.Action)
	}
	if c.Profile.Character > 0 {
		p = p.WithCharacter(c.Profile.Character)
	}
	if c.Profile.Dialogue > 0 {
		p = p.WithDialogue(c.Profile.Dialogue)
	}
	if c.Profile.Parenthetical > 0 {
		p = p.WithParenthetical(c.Profile.Parenthetical)
	}
	if c.Profile.DDLeftCharacter > 0 {
		p = p.WithDDLeftCharacter(c.Profile.DDLeftCharacter)
	}
	if c.Profile.DDRightCharacter > 0 {
		p = p.WithDDRightCharacter(c.Profile.DDRightCharacter)
	}
	return p
}

// ResolveVocabulary builds a vocabulary.Vocabulary from the configured
// overrides, falling back to vocabulary.Default() for any unset word set.
func (c *Config) ResolveVocabulary() vocabulary.Vocabulary {
	v := vocabulary.Default()

	if c.Vocabulary.RevisionMarker != "" {
		v = v.WithRevisionMarker(c.Vocabulary.RevisionMarker)
	}
	if len(c.Vocabulary.MoreContinued) > 0 {
		v = v.WithMoreContinued(c.Vocabulary.MoreContinued...)
	}
	if len(c.Vocabulary.EnvironmentInt) > 0 {
		v = v.WithEnvironmentWords(common.EnvironmentInt, c.Vocabulary.EnvironmentInt...)
	}
	if len(c.Vocabulary.EnvironmentExt) > 0 {
		v = v.WithEnvironmentWords(common.EnvironmentExt, c.Vocabulary.EnvironmentExt...)
	}
	if len(c.Vocabulary.EnvironmentCombo) > 0 {
		v = v.WithEnvironmentWords(common.EnvironmentCombo, c.Vocabulary.EnvironmentCombo...)
	}
	if len(c.Vocabulary.TimeOfDayDay) > 0 {
		v = v.WithTimeOfDayWords(common.TimeOfDayDay, c.Vocabulary.TimeOfDayDay...)
	}
	if len(c.Vocabulary.TimeOfDayNight) > 0 {
		v = v.WithTimeOfDayWords(common.TimeOfDayNight, c.Vocabulary.TimeOfDayNight...)
	}
	if len(c.Vocabulary.TimeOfDayMorning) > 0 {
		v = v.WithTimeOfDayWords(common.TimeOfDayMorning, c.Vocabulary.TimeOfDayMorning...)
	}
	if len(c.Vocabulary.TimeOfDayEvening) > 0 {
		v = v.WithTimeOfDayWords(common.TimeOfDayEvening, c.Vocabulary.TimeOfDayEvening...)
	}
	if len(c.Vocabulary.TimeOfDayAfternoon) > 0 {
		v = v.WithTimeOfDayWords(common.TimeOfDayAfternoon, c.Vocabulary.TimeOfDayAfternoon...)
	}
	return v
}

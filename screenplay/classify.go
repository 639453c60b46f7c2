package screenplay

import (
	"strings"

	"screenplaydoc/common"
	"screenplaydoc/layout"
	"screenplaydoc/pdfdoc"
	"screenplaydoc/vocabulary"
)

// columnTolerance is the absolute tolerance, in points, used for every
// horizontal column-anchor comparison.
const columnTolerance = 0.01

// classified is the (Tag, SceneHeadingKind) pair the classifier produces for
// one word; ok is false when the word is left unresolved for the assembler's
// L4 fill-in pass to repair.
type classified struct {
	Tag  common.Tag
	Kind common.SceneHeadingKind
	ok   bool
}

func resolved(tag common.Tag) classified { return classified{Tag: tag, ok: true} }

func resolvedHeading(kind common.SceneHeadingKind) classified {
	return classified{Tag: common.TagSceneHeading, Kind: kind, ok: true}
}

func unresolved() classified { return classified{} }

// lineContext is the partially-built line state the classifier consults:
// whether the line tag has committed yet, and the tag of the most recently
// classified element on this line (if any).
type lineContext struct {
	HasLineTag bool
	LineTag    common.Tag

	HasPrev  bool
	PrevTag  common.Tag
	PrevKind common.SceneHeadingKind

	// HasBeforeSeparator/BeforeSeparatorKind track what scene-heading
	// sub-variant preceded the most recent Separator, so a second
	// continuation word after the separator can tell a sub-location chain
	// from a trailing time-of-day/slug remainder.
	HasBeforeSeparator bool
	BeforeSeparatorKind common.SceneHeadingKind
}

func startsWithParen(text string) bool { return strings.HasPrefix(text, "(") }

// classifyWord assigns a Tag (and, for scene headings, a SceneHeadingKind) to
// one positioned word, given the partially-built line it belongs to, the
// Indent Profile and the Vocabulary. The procedure is ordered: rule (A) line
// context override, then (B) previous-element continuation, then (C) fresh
// indent-based classification.
func classifyWord(word pdfdoc.Word, ctx lineContext, profile layout.Profile, vocab vocabulary.Vocabulary) classified {
	x, y := word.Position.X, word.Position.Y

	// (A) Line-context override.
	if ctx.HasLineTag && ctx.LineTag == common.TagSceneHeading && x >= profile.Right-columnTolerance {
		if vocab.IsRevisionMarker(word.Text) {
			return resolved(common.TagLineRevisionMarker)
		}
		return resolved(common.TagScenenum)
	}

	// (B) Previous-element continuation rules.
	if ctx.HasPrev {
		if c, ok := classifyContinuation(word, ctx, vocab); ok {
			return c
		}
	}

	// (C) Fresh indent-based classification.
	return classifyFresh(word, ctx, profile, vocab)
}

func classifyContinuation(word pdfdoc.Word, ctx lineContext, vocab vocabulary.Vocabulary) (classified, bool) {
	text := word.Text

	switch {
	case ctx.PrevTag == common.TagSceneHeading && ctx.PrevKind == common.SceneHeadingKindTimeOfDay:
		if text == "-" {
			return resolvedHeading(common.SceneHeadingKindSeparator), true
		}
		return unresolved(), true

	case ctx.PrevTag == common.TagSceneHeading && ctx.PrevKind == common.SceneHeadingKindSeparator:
		if _, ok := vocab.TimeOfDay(text); ok {
			return resolvedHeading(common.SceneHeadingKindTimeOfDay), true
		}
		if text == "-" {
			return resolvedHeading(common.SceneHeadingKindSeparator), true
		}
		if ctx.HasBeforeSeparator {
			switch ctx.BeforeSeparatorKind {
			case common.SceneHeadingKindLocation, common.SceneHeadingKindSubLocation:
				return resolvedHeading(common.SceneHeadingKindSubLocation), true
			case common.SceneHeadingKindTimeOfDay, common.SceneHeadingKindSlugOther:
				return resolvedHeading(common.SceneHeadingKindSlugOther), true
			}
		}
		return resolvedHeading(common.SceneHeadingKindSlugOther), true

	case ctx.PrevTag == common.TagSceneHeading && ctx.PrevKind == common.SceneHeadingKindLocation:
		if text == "-" {
			return resolvedHeading(common.SceneHeadingKindSeparator), true
		}
		return resolvedHeading(common.SceneHeadingKindLocation), true

	case ctx.PrevTag == common.TagSceneHeading && ctx.PrevKind == common.SceneHeadingKindSubLocation:
		if text == "-" {
			return resolvedHeading(common.SceneHeadingKindSeparator), true
		}
		return resolvedHeading(common.SceneHeadingKindSubLocation), true

	case ctx.PrevTag == common.TagSceneHeading && ctx.PrevKind == common.SceneHeadingKindEnvironment:
		return resolvedHeading(common.SceneHeadingKindLocation), true

	case ctx.PrevTag == common.TagParenthetical:
		return resolved(common.TagParenthetical), true

	case ctx.PrevTag == common.TagCharacter:
		if startsWithParen(text) {
			return resolved(common.TagCharacterExtension), true
		}
		if vocab.IsRevisionMarker(text) {
			return resolved(common.TagLineRevisionMarker), true
		}
		return resolved(common.TagCharacter), true

	case ctx.PrevTag == common.TagCharacterExtension,
		ctx.PrevTag == common.TagDdLCharacterExtension,
		ctx.PrevTag == common.TagDdRCharacterExtension:
		return resolved(ctx.PrevTag), true

	case ctx.PrevTag == common.TagDdLCharacter:
		if startsWithParen(text) {
			return resolved(common.TagDdLCharacterExtension), true
		}
		return resolved(common.TagDdLCharacter), true

	case ctx.PrevTag == common.TagDdRCharacter:
		if startsWithParen(text) {
			return resolved(common.TagDdRCharacterExtension), true
		}
		return resolved(common.TagDdRCharacter), true
	}

	return classified{}, false
}

func classifyFresh(word pdfdoc.Word, ctx lineContext, profile layout.Profile, vocab vocabulary.Vocabulary) classified {
	x, y := word.Position.X, word.Position.Y
	text := word.Text

	switch {
	case y > profile.Bottom && y < profile.Top:
		if x < profile.Left-columnTolerance {
			return resolved(common.TagScenenum)
		}
		if x >= profile.Right-columnTolerance {
			if vocab.IsRevisionMarker(text) {
				return resolved(common.TagLineRevisionMarker)
			}
			return resolved(common.TagScenenum)
		}
		if ctx.HasLineTag {
			return unresolved()
		}
		switch {
		case closeTo(x, profile.Action):
			if _, ok := vocab.Environment(text); ok {
				return resolvedHeading(common.SceneHeadingKindEnvironment)
			}
			return resolved(common.TagAction)
		case closeTo(x, profile.Character):
			return resolved(common.TagCharacter)
		case closeTo(x, profile.DDLeftCharacter):
			return resolved(common.TagDdLCharacter)
		case closeTo(x, profile.DDRightCharacter):
			return resolved(common.TagDdRCharacter)
		case closeTo(x, profile.Dialogue):
			return resolved(common.TagDialogue)
		case closeTo(x, profile.Parenthetical) && startsWithParen(text):
			return resolved(common.TagParenthetical)
		default:
			return unresolved()
		}

	case y >= profile.Top:
		if x < profile.PageWidth/3 {
			return resolved(common.TagNonContentTop)
		}
		if profile.PageWidth-x < profile.PageWidth/4 && strings.HasSuffix(text, ".") {
			return resolved(common.TagPagenum)
		}
		return resolved(common.TagNonContentTop)

	default: // y <= profile.Bottom
		if vocab.IsMoreContinued(text) {
			return resolved(common.TagMoreContinued)
		}
		return resolved(common.TagNonContentBottom)
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= columnTolerance
}

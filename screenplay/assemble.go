package screenplay

import (
	"math"
	"strings"

	"screenplaydoc/common"
	"screenplaydoc/layout"
	"screenplaydoc/pdfdoc"
	"screenplaydoc/vocabulary"
)

// defaultLineHeight is the single-spacing line height, in points, used for
// the vertical-gap calculation (12-pt monospace).
const defaultLineHeight = 12.0

// defaultCharWidth is used for the whitespace calculation when a word
// carries no FontCharacterWidth of its own.
const defaultCharWidth = 7.2

// assembler drives the classifier across the positioned-text input and
// builds the semantic Document. It owns state that lives across pages (the
// scene/location forest, the character register) plus per-page ephemeral
// state (the vertical-gap tracker), following the single left-to-right
// assembly pass described for Scene/Location/Character registration.
type assembler struct {
	profile layout.Profile
	vocab   vocabulary.Vocabulary

	doc *Document

	characterIndex map[string]CharacterID
	locationRoots  []LocationID
}

func newAssembler(profile layout.Profile, vocab vocabulary.Vocabulary) *assembler {
	return &assembler{
		profile: profile,
		vocab:   vocab,
		doc: &Document{
			Scenes:      map[SceneID]Scene{},
			Locations:   map[LocationID]LocationNode{},
			PageNumbers: map[PageID]string{},
		},
		characterIndex: map[string]CharacterID{},
	}
}

// assemble consumes input and returns the built Document. Empty pages and
// empty lines are dropped; an input whose every page is blank still yields
// a Document, just one with zero Pages - that is not the hard-failure case
// (see ErrEmptyInput, which only fires when the input itself has no pages).
func (a *assembler) assemble(input *pdfdoc.Document) *Document {
	for pageIdx, inPage := range input.Pages {
		a.assemblePage(pageIdx, inPage)
	}
	return a.doc
}

func (a *assembler) assemblePage(pageIdx int, inPage pdfdoc.Page) {
	page := Page{}
	prevLineY := 0.0
	lineHeight := defaultLineHeight

	for _, inLine := range inPage.Lines {
		line, ok := a.assembleLine(pageIdx, len(page.Lines), inLine, prevLineY, lineHeight)
		if !ok {
			continue
		}
		a.applyPageLineSideEffects(&page, line)
		page.Lines = append(page.Lines, line)
		if len(inLine.Words) > 0 {
			prevLineY = inLine.Words[0].Position.Y
		}

		if line.HasLineTag && line.LineTag == common.TagSceneHeading {
			a.buildScene(pageIdx, len(page.Lines)-1, &page.Lines[len(page.Lines)-1])
		}
		if line.HasLineTag && line.LineTag == common.TagCharacter {
			a.registerCharacter(page.Lines[len(page.Lines)-1])
		}
	}

	if len(page.Lines) == 0 {
		return
	}
	page.PageID = newPageID()
	page.HasPageID = true
	a.doc.Pages = append(a.doc.Pages, page)
	if page.HasPageNumber {
		a.doc.PageNumbers[page.PageID] = page.PageNumber
	}
}

func (a *assembler) assembleLine(pageIdx, lineIdx int, inLine pdfdoc.Line, prevLineY, lineHeight float64) (Line, bool) {
	if len(inLine.Words) == 0 {
		return Line{}, false
	}

	var line Line
	ctx := lineContext{}

	for wordIdx, word := range inLine.Words {
		c := classifyWord(word, ctx, a.profile, a.vocab)

		elem := TextElement{
			Text:     word.Text,
			Position: Coordinate{Page: pageIdx, Line: lineIdx, ElementIndex: &wordIdx},
		}
		if c.ok {
			elem.Tag = c.Tag
			elem.SceneHeadingKind = c.Kind
		}

		elem.PrecedingWhitespaceChars = a.whitespace(inLine.Words, wordIdx, ctx)

		// L1: line tag commitment (first body-category word wins).
		if !line.HasLineTag && c.ok {
			if tag, kind, ok := l1Promotion(c); ok {
				line.HasLineTag = true
				line.LineTag = tag
				line.SceneHeadingKind = kind
			}
		}

		// L2: page-header side-effect (page_number set in applyPageLineSideEffects,
		// here we only promote the line).
		if c.ok && c.Tag == common.TagPagenum && !line.HasLineTag {
			line.HasLineTag = true
			line.LineTag = common.TagPageHeader
		}

		// L3: scene number / revision marker.
		if c.ok && c.Tag == common.TagScenenum {
			stripped := stripSceneNumberText(word.Text, a.vocab.RevisionMarker())
			line.SceneNumber = stripped
			line.HasSceneNumber = true
			if strings.Contains(word.Text, a.vocab.RevisionMarker()) {
				line.Revised = true
			}
			if !line.HasLineTag {
				line.HasLineTag = true
				line.LineTag = common.TagSceneHeading
				line.SceneHeadingKind = common.SceneHeadingKindLine
			}
		}
		if c.ok && c.Tag == common.TagLineRevisionMarker {
			line.Revised = true
		}

		line.Elements = append(line.Elements, elem)

		// advance continuation context for the next word on this line.
		if c.ok && c.Tag == common.TagSceneHeading && c.Kind == common.SceneHeadingKindSeparator {
			ctx.HasBeforeSeparator = true
			ctx.BeforeSeparatorKind = ctx.PrevKind
		}
		ctx.HasPrev = true
		if c.ok {
			ctx.PrevTag = c.Tag
			ctx.PrevKind = c.Kind
		} else {
			ctx.PrevTag = common.TagNone
			ctx.PrevKind = common.SceneHeadingKind(0)
		}
		ctx.HasLineTag = line.HasLineTag
		ctx.LineTag = line.LineTag
	}

	if len(line.Elements) == 0 {
		return Line{}, false
	}

	if firstY := inLine.Words[0].Position.Y; prevLineY > 0 {
		gap := prevLineY - firstY
		if gap > lineHeight {
			line.PrecedingEmptyLines = int(math.Ceil(gap / lineHeight))
		}
	}

	applyL4(&line)

	return line, true
}

// l1Promotion maps a just-classified word's (Tag, Kind) to the line-level
// commitment it triggers, if any.
func l1Promotion(c classified) (common.Tag, common.SceneHeadingKind, bool) {
	switch c.Tag {
	case common.TagDialogue:
		return common.TagDialogue, 0, true
	case common.TagParenthetical:
		return common.TagParenthetical, 0, true
	case common.TagCharacter:
		return common.TagCharacter, 0, true
	case common.TagAction:
		return common.TagAction, 0, true
	case common.TagDdLParenthetical, common.TagDdLDialogue, common.TagDdRParenthetical, common.TagDdRDialogue:
		return common.TagDualDialogues, 0, true
	case common.TagDdLCharacter, common.TagDdRCharacter:
		return common.TagDualCharacters, 0, true
	case common.TagSceneHeading:
		if c.Kind == common.SceneHeadingKindEnvironment {
			return common.TagSceneHeading, common.SceneHeadingKindLine, true
		}
	}
	return 0, 0, false
}

// applyPageLineSideEffects implements the remainder of L2: a bound line
// page-number propagates to the page, and a page marked revised by L4's
// PAGE_REVISION_LABEL conversion propagates too.
func (a *assembler) applyPageLineSideEffects(page *Page, line Line) {
	for _, e := range line.Elements {
		switch e.Tag {
		case common.TagPagenum:
			page.PageNumber = e.Text
			page.HasPageNumber = true
		case common.TagPageRevisionLabel:
			page.Revised = true
		}
	}
}

// applyL4 is the untagged body fill-in pass, run once the line is complete.
func applyL4(line *Line) {
	if !line.HasLineTag {
		return
	}

	switch line.LineTag {
	case common.TagAction, common.TagCharacter, common.TagDialogue:
		for i := range line.Elements {
			if line.Elements[i].Tag != common.TagNone {
				continue
			}
			tag := line.LineTag
			if tag == common.TagCharacter && i > 0 && line.Elements[i-1].Tag == common.TagCharacterExtension {
				tag = common.TagCharacterExtension
			}
			line.Elements[i].Tag = tag
		}
	case common.TagPageHeader:
		for i := range line.Elements {
			if line.Elements[i].Tag == common.TagNonContentTop {
				line.Elements[i].Tag = common.TagPageRevisionLabel
			}
		}
	case common.TagSceneHeading:
		if line.SceneHeadingKind == common.SceneHeadingKindLine && line.HasSceneNumber {
			for i := range line.Elements {
				if line.Elements[i].Tag == common.TagNone && line.Elements[i].Text == line.SceneNumber {
					line.Elements[i].Tag = common.TagScenenum
				}
			}
		}
	}
}

func (a *assembler) whitespace(words []pdfdoc.Word, idx int, ctx lineContext) int {
	if idx == 0 {
		return 0
	}
	prev := words[idx-1]
	if ctx.HasPrev && (ctx.PrevTag == common.TagScenenum || ctx.PrevTag == common.TagLineRevisionMarker) {
		return 0
	}
	charWidth := words[idx].FontCharacterWidth
	if charWidth <= 0 {
		charWidth = defaultCharWidth
	}
	gap := words[idx].Position.X - (prev.Position.X + prev.BBoxWidth)
	n := int(math.Round(gap / charWidth))
	if n <= 0 {
		return 1
	}
	return n
}

// stripSceneNumberText strips leading/trailing "*", "." and the configured
// revision marker glyph from a scene-number word's raw text.
func stripSceneNumberText(text, marker string) string {
	s := text
	for {
		trimmed := s
		if marker != "" {
			trimmed = strings.TrimSuffix(trimmed, marker)
			trimmed = strings.TrimPrefix(trimmed, marker)
		}
		trimmed = strings.Trim(trimmed, "*.")
		if trimmed == s {
			break
		}
		s = trimmed
	}
	return s
}

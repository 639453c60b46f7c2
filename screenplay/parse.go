// Package screenplay is the layout-to-semantics classifier and structural
// reconstruction core: it consumes a positioned-text pdfdoc.Document and
// recovers a queryable Document of pages, lines, scenes, locations,
// characters and revision state. The core is strictly single-threaded,
// never logs, and never partially mutates its result on failure — a parse
// either returns a Document or returns nothing.
package screenplay

import (
	"errors"

	"screenplaydoc/layout"
	"screenplaydoc/pdfdoc"
	"screenplaydoc/vocabulary"
)

// ErrEmptyInput is returned when the positioned-text input has zero pages;
// it is the only hard failure the core recognizes (§7 Error Handling).
var ErrEmptyInput = errors.New("screenplay: input document has no pages")

// options holds the resolved configuration a Parse call runs with; built up
// by functional Options from the §4.2/§4.3 defaults.
type options struct {
	profile layout.Profile
	vocab   vocabulary.Vocabulary
}

// Option configures a Parse call, setting the indent profile, revision
// marker, or a vocabulary word set. All options fall back to defaults when
// omitted.
type Option func(*options)

// WithProfile overrides the Indent Profile (default: layout.USLetter()).
func WithProfile(p layout.Profile) Option {
	return func(o *options) { o.profile = p }
}

// WithVocabulary overrides the whole Vocabulary (default: vocabulary.Default()).
func WithVocabulary(v vocabulary.Vocabulary) Option {
	return func(o *options) { o.vocab = v }
}

// WithRevisionMarker overrides just the revision-marker glyph, default "*".
func WithRevisionMarker(glyph string) Option {
	return func(o *options) { o.vocab = o.vocab.WithRevisionMarker(glyph) }
}

// Parse reconstructs a semantic Document from positioned-text input pdf,
// applying any Options over the §4.2/§4.3 defaults (US-Letter indent
// profile, English uppercase vocabulary, "*" revision marker). Returns
// ErrEmptyInput if pdf has zero pages.
func Parse(pdf *pdfdoc.Document, opts ...Option) (*Document, error) {
	if pdf == nil || len(pdf.Pages) == 0 {
		return nil, ErrEmptyInput
	}

	o := options{
		profile: layout.USLetter(),
		vocab:   vocabulary.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	a := newAssembler(o.profile, o.vocab)
	return a.assemble(pdf), nil
}

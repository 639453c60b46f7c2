// Package layout holds the Indent Profile: the physical-unit column map that
// the word classifier compares fragment positions against. It has no
// dependency on the classifier itself, so the profile can be built,
// overridden and unit-tested in isolation.
package layout

// PointsPerInch is the conversion factor used throughout the profile; all
// Indent Profile fields are stored in points.
const PointsPerInch = 72.0

// Profile is the column/margin map in points. Field names mirror the
// screenplay layout grid directly: page geometry (pagewidth, pageheight),
// content margins (left, right, top, bottom) and column anchors (action,
// character, dialogue, parenthetical, dd_left_character, dd_right_character).
type Profile struct {
	PageWidth  float64
	PageHeight float64

	Left   float64
	Right  float64
	Top    float64
	Bottom float64

	Action        float64
	Character     float64
	Dialogue      float64
	Parenthetical float64

	// DDLeftCharacter and DDRightCharacter are the dual-dialogue character
	// column anchors. USLetter and A4 set them from the plain Character
	// column: half of Character's offset from Left, applied from Left for the
	// left column and from the midline of [Left, Right] for the right one.
	DDLeftCharacter  float64
	DDRightCharacter float64

	// Resolution is the points-per-inch factor this Profile's fields were
	// built at. It defaults to PointsPerInch; WithResolution rescales an
	// existing Profile to a different factor.
	Resolution float64
}

func inches(v float64) float64 { return v * PointsPerInch }

// USLetter returns the default profile for a US-Letter (8.5x11 in) screenplay.
func USLetter() Profile {
	p := Profile{
		PageWidth:     inches(8.5),
		PageHeight:    inches(11),
		Left:          inches(1.5),
		Right:         inches(7.5),
		Top:           inches(10),
		Bottom:        inches(1),
		Action:        inches(1.5),
		Character:     inches(3.7),
		Dialogue:      inches(2.5),
		Parenthetical: inches(3.1),
		Resolution:    PointsPerInch,
	}
	return p.withMirroredDualDialogueColumns()
}

// A4 returns the default profile for an A4 screenplay, scaled from the same
// margins and column offsets as USLetter but against A4 page dimensions
// (210x297 mm, expressed here in inches: 8.2677x11.6929).
func A4() Profile {
	p := Profile{
		PageWidth:     inches(8.2677),
		PageHeight:    inches(11.6929),
		Left:          inches(1.5),
		Right:         inches(7.2677),
		Top:           inches(10.6929),
		Bottom:        inches(1),
		Action:        inches(1.5),
		Character:     inches(3.7),
		Dialogue:      inches(2.5),
		Parenthetical: inches(3.1),
		Resolution:    PointsPerInch,
	}
	return p.withMirroredDualDialogueColumns()
}

// withMirroredDualDialogueColumns fills DDLeftCharacter/DDRightCharacter from
// Character: half of Character's offset from Left is added to Left for the
// left column and to the midline of [Left, Right] for the right column, so
// dual-dialogue columns are reachable before any explicit override is applied.
func (p Profile) withMirroredDualDialogueColumns() Profile {
	mid := (p.Left + p.Right) / 2
	offset := p.Character - p.Left
	p.DDLeftCharacter = p.Left + offset/2
	p.DDRightCharacter = mid + offset/2
	return p
}

// WithLeft overrides the left content margin, in points.
func (p Profile) WithLeft(v float64) Profile { p.Left = v; return p }

// WithRight overrides the right content margin, in points.
func (p Profile) WithRight(v float64) Profile { p.Right = v; return p }

// WithTop overrides the top content margin, in points.
func (p Profile) WithTop(v float64) Profile { p.Top = v; return p }

// WithBottom overrides the bottom content margin, in points.
func (p Profile) WithBottom(v float64) Profile { p.Bottom = v; return p }

// WithAction overrides the action column anchor, in points.
func (p Profile) WithAction(v float64) Profile { p.Action = v; return p }

// WithCharacter overrides the character column anchor, in points.
func (p Profile) WithCharacter(v float64) Profile { p.Character = v; return p }

// WithDialogue overrides the dialogue column anchor, in points.
func (p Profile) WithDialogue(v float64) Profile { p.Dialogue = v; return p }

// WithParenthetical overrides the parenthetical column anchor, in points.
func (p Profile) WithParenthetical(v float64) Profile { p.Parenthetical = v; return p }

// WithDDLeftCharacter overrides the left dual-dialogue character column anchor.
func (p Profile) WithDDLeftCharacter(v float64) Profile { p.DDLeftCharacter = v; return p }

// WithDDRightCharacter overrides the right dual-dialogue character column anchor.
func (p Profile) WithDDRightCharacter(v float64) Profile { p.DDRightCharacter = v; return p }

// WithResolution overrides the points-per-inch conversion factor the
// profile was built at (default PointsPerInch), rescaling every point
// value already set so a profile authored against one DPI assumption can
// be retargeted to another.
func (p Profile) WithResolution(dpi float64) Profile {
	if dpi <= 0 {
		return p
	}
	base := p.Resolution
	if base <= 0 {
		base = PointsPerInch
	}
	factor := dpi / base
	p.PageWidth *= factor
	p.PageHeight *= factor
	p.Left *= factor
	p.Right *= factor
	p.Top *= factor
	p.Bottom *= factor
	p.Action *= factor
	p.Character *= factor
	p.Dialogue *= factor
	p.Parenthetical *= factor
	p.DDLeftCharacter *= factor
	p.DDRightCharacter *= factor
	p.Resolution = dpi
	return p
}

// WithPageSize overrides the page dimensions, in points.
func (p Profile) WithPageSize(width, height float64) Profile {
	p.PageWidth, p.PageHeight = width, height
	return p
}

// InPoints converts a value expressed in inches to points, for callers
// building overrides from inch measurements the way the defaults above do.
func InPoints(inchValue float64) float64 { return inches(inchValue) }

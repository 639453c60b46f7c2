package layout

import "testing"

func TestUSLetterDefaults(t *testing.T) {
	p := USLetter()

	if got, want := p.Left, InPoints(1.5); got != want {
		t.Fatalf("Left = %v, want %v", got, want)
	}
	if got, want := p.Right, InPoints(7.5); got != want {
		t.Fatalf("Right = %v, want %v", got, want)
	}
	if got, want := p.Top, InPoints(10); got != want {
		t.Fatalf("Top = %v, want %v", got, want)
	}
	if got, want := p.Bottom, InPoints(1); got != want {
		t.Fatalf("Bottom = %v, want %v", got, want)
	}
	if got, want := p.Character, InPoints(3.7); got != want {
		t.Fatalf("Character = %v, want %v", got, want)
	}
}

func TestDualDialogueColumnsMirrorCharacter(t *testing.T) {
	p := USLetter()

	offset := p.Character - p.Left
	mid := (p.Left + p.Right) / 2

	if got, want := p.DDLeftCharacter, p.Left+offset/2; got != want {
		t.Fatalf("DDLeftCharacter = %v, want %v", got, want)
	}
	if got, want := p.DDRightCharacter, mid+offset/2; got != want {
		t.Fatalf("DDRightCharacter = %v, want %v", got, want)
	}
	if p.DDLeftCharacter >= p.Character {
		t.Fatalf("DDLeftCharacter %v should sit left of Character %v", p.DDLeftCharacter, p.Character)
	}
	if p.DDRightCharacter <= p.Character {
		t.Fatalf("DDRightCharacter %v should sit right of Character %v", p.DDRightCharacter, p.Character)
	}
}

func TestFluentOverrides(t *testing.T) {
	p := USLetter().WithLeft(InPoints(2)).WithCharacter(InPoints(4)).WithDDLeftCharacter(InPoints(3))

	if p.Left != InPoints(2) {
		t.Fatalf("Left override not applied: %v", p.Left)
	}
	if p.Character != InPoints(4) {
		t.Fatalf("Character override not applied: %v", p.Character)
	}
	if p.DDLeftCharacter != InPoints(3) {
		t.Fatalf("DDLeftCharacter override not applied: %v", p.DDLeftCharacter)
	}
	// overrides must not clobber unrelated fields
	if p.Right != InPoints(7.5) {
		t.Fatalf("Right should be untouched by unrelated override: %v", p.Right)
	}
}

func TestA4DiffersFromUSLetterPageSize(t *testing.T) {
	us, a4 := USLetter(), A4()
	if us.PageWidth == a4.PageWidth && us.PageHeight == a4.PageHeight {
		t.Fatalf("A4 profile should have distinct page dimensions from USLetter")
	}
	// content columns remain identical across paper sizes
	if us.Action != a4.Action || us.Character != a4.Character {
		t.Fatalf("column anchors should match between USLetter and A4 defaults")
	}
}

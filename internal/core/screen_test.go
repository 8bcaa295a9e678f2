package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '@', ColorBrightGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '@' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(3, 4).Color = %v, expected ColorBrightGreen", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(3, 4, '#')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set() should reset the cell to the default color")
	}

	// Out of bounds returns a default cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Error("Out of bounds GetCell should return a default space cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear() left %q/%v at (%d, %d)", cell.Rune, cell.Color, x, y)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'A')
	s.Set(9, 9, 'Z')

	// Grow: content preserved
	s.Resize(20, 15)
	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("Resize(20, 15) gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 3) != 'A' {
		t.Error("Resize should preserve content within old bounds")
	}
	if s.Get(9, 9) != 'Z' {
		t.Error("Resize should preserve content within old bounds")
	}

	// Shrink: out-of-range content dropped, in-range kept
	s.Resize(5, 5)
	if s.Get(2, 3) != 'A' {
		t.Error("Shrinking resize should keep content inside the new bounds")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello", ColorCyan)

	if s.Get(2, 1) != 'h' || s.Get(6, 1) != 'o' {
		t.Errorf("DrawText placed wrong runes: %q...%q", s.Get(2, 1), s.Get(6, 1))
	}
	if s.GetCell(4, 1).Color != ColorCyan {
		t.Error("DrawText should apply the given color")
	}

	// Clipped text should not panic
	s.DrawText(18, 1, "overflow", ColorDefault)
	if s.Get(19, 1) != 'v' {
		t.Errorf("Clipped DrawText wrote %q at right edge", s.Get(19, 1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorDefault)

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("DrawTextCentered misplaced text: row=%q", rowString(s, 1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 6, 4), ColorWhite)

	if s.Get(1, 1) != '┌' || s.Get(6, 1) != '┐' {
		t.Error("DrawBox corners wrong on top row")
	}
	if s.Get(1, 4) != '└' || s.Get(6, 4) != '┘' {
		t.Error("DrawBox corners wrong on bottom row")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges wrong")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", str)
	}
}

func rowString(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}

package font

import "testing"

func TestGlyphOutsideTable(t *testing.T) {
	for _, r := range []rune{128, 'é', '€', -1} {
		if _, ok := Glyph(r); ok {
			t.Errorf("Glyph(%q) ok = true, want false", r)
		}
	}
}

func TestSpaceAndControlCodesAreBlank(t *testing.T) {
	for _, r := range []rune{0, '\n', ' ', 0x7F} {
		rows, ok := Glyph(r)
		if !ok {
			t.Fatalf("Glyph(%d) ok = false", r)
		}
		if rows != [8]byte{} {
			t.Errorf("Glyph(%d) = %v, want blank", r, rows)
		}
	}
}

func TestPrintableGlyphsHaveInk(t *testing.T) {
	for r := rune('!'); r <= '~'; r++ {
		rows, _ := Glyph(r)
		if rows == [8]byte{} {
			t.Errorf("Glyph(%q) is blank", r)
		}
	}
}

func TestSetUsesLeastSignificantBitAsLeftColumn(t *testing.T) {
	// '_' is a full-width bar on the bottom row.
	rows, _ := Glyph('_')
	for col := 0; col < Width; col++ {
		if !Set(rows, col, 7) {
			t.Errorf("'_' column %d on row 7 not set", col)
		}
		if Set(rows, col, 0) {
			t.Errorf("'_' column %d on row 0 set", col)
		}
	}

	// '1' starts with 0x0C: columns 2 and 3 lit on the top row.
	rows, _ = Glyph('1')
	for col := 0; col < Width; col++ {
		want := col == 2 || col == 3
		if got := Set(rows, col, 0); got != want {
			t.Errorf("'1' row 0 column %d = %v, want %v", col, got, want)
		}
	}
}

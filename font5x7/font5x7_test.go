package font5x7

import "testing"

func TestLookupRange(t *testing.T) {
	tests := []struct {
		name   string
		code   byte
		wantOK bool
	}{
		{"space", ' ', true},
		{"digit", '7', true},
		{"upper", 'Q', true},
		{"lower", 'q', true},
		{"tilde (last)", '~', true},
		{"nul", 0x00, false},
		{"unit separator", 0x1F, false},
		{"del", 0x7F, false},
		{"high bit", 0xC8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := Lookup(tt.code)
			if ok != tt.wantOK {
				t.Errorf("Lookup(0x%02X) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if !ok && g != (Glyph{}) {
				t.Errorf("Lookup(0x%02X) = %v, want blank glyph", tt.code, g)
			}
		})
	}
}

func TestGlyphsFitSevenRows(t *testing.T) {
	for code := First; code <= Last; code++ {
		g, _ := Lookup(byte(code))
		for col, b := range g {
			if b&0x80 != 0 {
				t.Errorf("glyph 0x%02X column %d = 0x%02X uses row 7", code, col, b)
			}
		}
	}
}

func TestSpaceIsBlank(t *testing.T) {
	g, _ := Lookup(' ')
	if g != (Glyph{}) {
		t.Errorf("space glyph = %v, want all zero", g)
	}
}

func TestPrintableGlyphsNotBlank(t *testing.T) {
	for code := First + 1; code <= Last; code++ {
		g, _ := Lookup(byte(code))
		if g == (Glyph{}) {
			t.Errorf("glyph 0x%02X (%q) is blank", code, rune(code))
		}
	}
}

func TestGlyphBit(t *testing.T) {
	g, _ := Lookup('A')

	tests := []struct {
		col, row int
		want     bool
	}{
		{0, 0, false}, // rounded corner
		{1, 0, true},  // top bar
		{0, 1, true},  // left stroke
		{2, 4, true},  // crossbar
		{2, 5, false}, // inside below crossbar
		{4, 6, true},  // right stroke bottom
		{-1, 0, false},
		{5, 0, false},
		{0, 7, false},
	}

	for _, tt := range tests {
		if got := g.Bit(tt.col, tt.row); got != tt.want {
			t.Errorf("'A'.Bit(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

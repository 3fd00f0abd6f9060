package ks0108

import "testing"

func TestFillLength(t *testing.T) {
	tests := []struct {
		value, inner, want int
	}{
		{0, 20, 0},
		{50, 20, 10},
		{100, 20, 20},
		{150, 20, 20},
		{-10, 20, 0},
		{33, 10, 3},
		{50, 0, 0},
	}

	for _, tt := range tests {
		if got := fillLength(tt.value, tt.inner); got != tt.want {
			t.Errorf("fillLength(%d, %d) = %d, want %d", tt.value, tt.inner, got, tt.want)
		}
	}
}

func TestBarHorizontal(t *testing.T) {
	d, p := newTestDev(t)
	d.BarHorizontal(10, 10, 22, 6, 50)

	for x := 10; x <= 31; x++ {
		if !pixel(d, x, 10) || !pixel(d, x, 15) {
			t.Errorf("outline column %d not set", x)
		}
	}
	for y := 10; y <= 15; y++ {
		if !pixel(d, 10, y) || !pixel(d, 31, y) {
			t.Errorf("outline row %d not set", y)
		}
	}
	for y := 11; y <= 14; y++ {
		for x := 11; x <= 30; x++ {
			if got, want := pixel(d, x, y), x <= 20; got != want {
				t.Errorf("interior pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	assertMirrors(t, d, p)
}

func TestBarHorizontalRedraw(t *testing.T) {
	d, p := newTestDev(t)
	d.BarHorizontal(0, 40, 52, 8, 100)
	d.BarHorizontal(0, 40, 52, 8, 20)

	// inner = 50, 20% = 10 pixels
	for x := 1; x <= 50; x++ {
		if got, want := pixel(d, x, 43), x <= 10; got != want {
			t.Errorf("pixel (%d, 43) = %v, want %v", x, got, want)
		}
	}
	assertMirrors(t, d, p)
}

func TestBarHorizontalClamps(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int // filled interior pixels per row
	}{
		{"negative", -5, 0},
		{"over", 250, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDev(t)
			d.BarHorizontal(10, 10, 22, 6, tt.value)
			n := 0
			for x := 11; x <= 30; x++ {
				if pixel(d, x, 12) {
					n++
				}
			}
			if n != tt.want {
				t.Errorf("filled pixels = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestBarVertical(t *testing.T) {
	d, p := newTestDev(t)
	// Bottom-left corner at (10, 31): rows 10-31
	d.BarVertical(10, 31, 6, 22, 25)

	for y := 10; y <= 31; y++ {
		if !pixel(d, 10, y) || !pixel(d, 15, y) {
			t.Errorf("outline row %d not set", y)
		}
	}
	for y := 11; y <= 30; y++ {
		for x := 11; x <= 14; x++ {
			if got, want := pixel(d, x, y), y >= 26; got != want {
				t.Errorf("interior pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	assertMirrors(t, d, p)
}

func TestBarVerticalGrowsUpFromAnchor(t *testing.T) {
	d, _ := newTestDev(t)
	d.BarVertical(10, 50, 8, 30, 50)

	// Outline spans rows 21-50
	for y := 0; y < Height; y++ {
		if got, want := pixel(d, 10, y), y >= 21 && y <= 50; got != want {
			t.Errorf("left edge pixel (10, %d) = %v, want %v", y, got, want)
		}
	}
	for x := 10; x <= 17; x++ {
		if !pixel(d, x, 21) || !pixel(d, x, 50) {
			t.Errorf("top or bottom edge missing at x=%d", x)
		}
	}
	// inner = 28, 50% = 14 rows: 36-49
	for y := 22; y <= 49; y++ {
		if got, want := pixel(d, 13, y), y >= 36; got != want {
			t.Errorf("interior pixel (13, %d) = %v, want %v", y, got, want)
		}
	}
}

func TestBarVerticalRedraw(t *testing.T) {
	d, p := newTestDev(t)
	d.BarVertical(100, 39, 10, 40, 100)
	d.BarVertical(100, 39, 10, 40, 10)

	// inner = 38, 10% = 3 rows: 36-38
	for y := 1; y <= 38; y++ {
		if got, want := pixel(d, 104, y), y >= 36; got != want {
			t.Errorf("pixel (104, %d) = %v, want %v", y, got, want)
		}
	}
	assertMirrors(t, d, p)
}

func TestBarDegenerate(t *testing.T) {
	d, p := newTestDev(t)
	d.BarHorizontal(5, 5, 0, 10, 50)
	d.BarVertical(5, 5, 10, -1, 50)
	if p.data != 512 {
		t.Errorf("empty bars wrote %d data bytes after init", p.data-512)
	}

	d.BarHorizontal(20, 20, 2, 2, 50)
	for _, pt := range [][2]int{{20, 20}, {21, 20}, {20, 21}, {21, 21}} {
		if !pixel(d, pt[0], pt[1]) {
			t.Errorf("2x2 bar outline pixel %v not set", pt)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name  string
		value int
		text  string
	}{
		{"half", 50, " 50%"},
		{"full", 100, "100%"},
		{"clamped", 130, "100%"},
		{"zero", -4, "  0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, p := newTestDev(t)
			d.ProgressBar(4, 30, 60, 12, tt.value, true)

			ref, _ := newTestDev(t)
			ref.BarHorizontal(4, 30, 60, 12, tt.value)
			ref.drawText(4+60+2, 30+(12-CellHeight)/2, tt.text)

			for i := range d.buf.Pix {
				if d.buf.Pix[i] != ref.buf.Pix[i] {
					t.Fatalf("shadow byte %d = 0x%02X, want 0x%02X", i, d.buf.Pix[i], ref.buf.Pix[i])
				}
			}
			assertMirrors(t, d, p)
		})
	}
}

func TestProgressBarWithoutLabel(t *testing.T) {
	d, _ := newTestDev(t)
	d.ProgressBar(4, 30, 60, 12, 75, false)

	ref, _ := newTestDev(t)
	ref.BarHorizontal(4, 30, 60, 12, 75)

	for i := range d.buf.Pix {
		if d.buf.Pix[i] != ref.buf.Pix[i] {
			t.Fatalf("shadow byte %d = 0x%02X, want 0x%02X", i, d.buf.Pix[i], ref.buf.Pix[i])
		}
	}
}

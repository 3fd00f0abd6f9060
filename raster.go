package ks0108

import (
	"image"
	"math/bits"
)

// Mode is the operation applied to a pixel.
type Mode uint8

const (
	Off Mode = iota // Clear the pixel
	On              // Set the pixel
	Xor             // Invert the pixel
)

func (m Mode) String() string {
	switch m {
	case Off:
		return "Off"
	case On:
		return "On"
	case Xor:
		return "Xor"
	default:
		return "Mode(?)"
	}
}

// SetDrawMode sets the mode used by Line, Rectangle, RectangleFill, Circle,
// CircleFill and Triangle. The default is On.
//
// Xor shapes invert pixels they cover more than once an even number of times,
// e.g. the corners of a Rectangle outline.
func (d *Dev) SetDrawMode(m Mode) {
	d.mode = m
}

// DrawMode returns the mode used by shape primitives.
func (d *Dev) DrawMode() Mode {
	return d.mode
}

// pixelAddr maps a pixel to its segment, page, column and bit mask.
func pixelAddr(x, y int) (s Segment, page, column int, mask byte, ok bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, 0, 0, 0, false
	}
	return segmentOf(x), y / 8, x % SegmentWidth, 1 << uint(y%8), true
}

// SetPixel applies m to the pixel at (x, y). Pixels outside the display are
// ignored.
func (d *Dev) SetPixel(x, y int, m Mode) {
	s, page, column, mask, ok := pixelAddr(x, y)
	if !ok {
		return
	}
	b := d.getByte(s, page, column)
	switch m {
	case On:
		b |= mask
	case Off:
		b &^= mask
	case Xor:
		b ^= mask
	default:
		return
	}
	d.setByte(s, page, column, b)
}

// Line draws a line from (x1, y1) to (x2, y2), both endpoints included,
// using Bresenham's algorithm. Only the steps that land on the display along
// the major axis are walked, so far off-screen endpoints cost nothing extra.
func (d *Dev) Line(x1, y1, x2, y2 int) {
	d.line(x1, y1, x2, y2, d.mode)
}

func (d *Dev) line(x1, y1, x2, y2 int, m Mode) {
	dx, sx := abs(x2-x1), sign(x2-x1)
	dy, sy := abs(y2-y1), sign(y2-y1)

	if dx >= dy {
		// x is the major axis
		lo, hi := stepRange(x1, sx, dx, Width)
		for k := lo; k <= hi; k++ {
			d.SetPixel(x1+sx*k, y1+sy*minorSteps(k, dy, dx), m)
		}
		return
	}
	lo, hi := stepRange(y1, sy, dy, Height)
	for k := lo; k <= hi; k++ {
		d.SetPixel(x1+sx*minorSteps(k, dx, dy), y1+sy*k, m)
	}
}

// stepRange returns the steps k in [0, n] for which start+s*k lies in
// [0, limit). The range is empty when lo > hi.
func stepRange(start, s, n, limit int) (lo, hi int) {
	switch {
	case s > 0:
		lo, hi = -start, limit-1-start
	case s < 0:
		lo, hi = start-limit+1, start
	default:
		if start < 0 || start >= limit {
			return 0, -1
		}
		return 0, n
	}
	return max(lo, 0), min(hi, n)
}

// minorSteps returns how far the minor axis has moved after k steps along
// the major axis. It is the closed form of the Bresenham error term that
// starts at major/2: the smallest n >= 0 with major/2 - k*minor + n*major >= 0.
// The product is computed in 128 bits so huge coordinates do not overflow.
func minorSteps(k, minor, major int) int {
	if major == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(k), uint64(minor))
	lo, carry := bits.Add64(lo, uint64(major-1-major/2), 0)
	q, _ := bits.Div64(hi+carry, lo, uint64(major))
	return int(q)
}

// hline draws a horizontal run from x1 to x2 on row y, clipped to the display.
func (d *Dev) hline(x1, x2, y int, m Mode) {
	if y < 0 || y >= Height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x2 < 0 || x1 >= Width {
		return
	}
	x1 = clamp(x1, 0, Width-1)
	x2 = clamp(x2, 0, Width-1)
	for x := x1; x <= x2; x++ {
		d.SetPixel(x, y, m)
	}
}

// Rectangle draws the outline of the rectangle with corners (x1, y1) and
// (x2, y2). The corners may be given in any order.
func (d *Dev) Rectangle(x1, y1, x2, y2 int) {
	d.rectangle(x1, y1, x2, y2, d.mode)
}

func (d *Dev) rectangle(x1, y1, x2, y2 int, m Mode) {
	d.line(x1, y1, x2, y1, m)
	d.line(x2, y1, x2, y2, m)
	d.line(x2, y2, x1, y2, m)
	d.line(x1, y2, x1, y1, m)
}

// RectangleFill fills the rectangle with corners (x1, y1) and (x2, y2),
// edges included, one horizontal line per row.
func (d *Dev) RectangleFill(x1, y1, x2, y2 int) {
	d.fillRect(x1, y1, x2, y2, d.mode)
}

func (d *Dev) fillRect(x1, y1, x2, y2 int, m Mode) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if y2 < 0 || y1 >= Height {
		return
	}
	y1 = clamp(y1, 0, Height-1)
	y2 = clamp(y2, 0, Height-1)
	for y := y1; y <= y2; y++ {
		d.hline(x1, x2, y, m)
	}
}

// Circle draws a circle outline of radius r centered on (cx, cy) using the
// midpoint algorithm. A negative radius draws nothing.
func (d *Dev) Circle(cx, cy, r int) {
	if r < 0 {
		return
	}
	m := d.mode
	walkCircle(r, func(x, y int) {
		pts := [8]image.Point{
			image.Pt(cx+x, cy+y), image.Pt(cx-x, cy+y), image.Pt(cx+x, cy-y), image.Pt(cx-x, cy-y),
			image.Pt(cx+y, cy+x), image.Pt(cx-y, cy+x), image.Pt(cx+y, cy-x), image.Pt(cx-y, cy-x),
		}
		// On the axes and diagonals mirrored points coincide; touch each
		// pixel once so Xor outlines stay closed.
		for i, p := range pts {
			if !containsPoint(pts[:i], p) {
				d.SetPixel(p.X, p.Y, m)
			}
		}
	})
}

// CircleFill draws a filled circle of radius r centered on (cx, cy). Each
// row is filled once, between the left and right boundary found by the same
// midpoint recurrence as Circle.
func (d *Dev) CircleFill(cx, cy, r int) {
	if r < 0 {
		return
	}
	// half[dy] is the half-width of the row dy pixels away from the center.
	half := make([]int, r+1)
	walkCircle(r, func(x, y int) {
		half[y] = max(half[y], x)
		half[x] = max(half[x], y)
	})

	m := d.mode
	for dy, w := range half {
		d.hline(cx-w, cx+w, cy+dy, m)
		if dy != 0 {
			d.hline(cx-w, cx+w, cy-dy, m)
		}
	}
}

// walkCircle runs the midpoint recurrence over one octant, from (0, r) until
// x passes y, calling plot with each offset. dv = 1 - r is the decision
// variable.
func walkCircle(r int, plot func(x, y int)) {
	x, y := 0, r
	dv := 1 - r
	for x <= y {
		plot(x, y)
		if dv < 0 {
			dv += 2*x + 3
		} else {
			dv += 2*(x-y) + 5
			y--
		}
		x++
	}
}

func containsPoint(pts []image.Point, p image.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

// Triangle draws the outline of the triangle with the given vertices.
func (d *Dev) Triangle(x1, y1, x2, y2, x3, y3 int) {
	m := d.mode
	d.line(x1, y1, x2, y2, m)
	d.line(x2, y2, x3, y3, m)
	d.line(x3, y3, x1, y1, m)
}

// Bitmap draws a width x height monochrome bitmap with its top-left corner at
// (x, y). data is column-major in the display RAM byte format: each byte holds
// 8 vertically stacked pixels (bit 0 on top) and each column takes
// (height+7)/8 consecutive bytes, top band first, i.e. byte (col, row) is at
// data[col*((height+7)/8)+row/8]. Set bits turn pixels on; clear bits leave
// them untouched. Missing data and pixels outside the display are skipped.
func (d *Dev) Bitmap(x, y, width, height int, data []byte) {
	bands := (height + 7) / 8
	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			i := col*bands + row/8
			if i >= len(data) {
				return
			}
			if data[i]>>uint(row%8)&1 != 0 {
				d.SetPixel(x+col, y+row, On)
			}
		}
	}
}

// Icon8x8 draws an 8x8 icon with its top-left corner at (x, y). icon holds one
// byte per row, top row first, bit 7 being the leftmost pixel. Set bits turn
// pixels on.
func (d *Dev) Icon8x8(x, y int, icon [8]byte) {
	for row, bits := range icon {
		for col := 0; col < 8; col++ {
			if bits>>uint(7-col)&1 != 0 {
				d.SetPixel(x+col, y+row, On)
			}
		}
	}
}

// Common 8x8 icons for Icon8x8.
var (
	IconBattery   = [8]byte{0x3C, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x3C}
	IconTemp      = [8]byte{0x04, 0x0A, 0x0A, 0x0A, 0x0A, 0x1F, 0x1F, 0x0E}
	IconSignal    = [8]byte{0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}
	IconWiFi      = [8]byte{0x00, 0x0E, 0x11, 0x04, 0x0A, 0x00, 0x04, 0x00}
	IconHeart     = [8]byte{0x00, 0x66, 0x99, 0x81, 0x42, 0x24, 0x18, 0x00}
	IconStar      = [8]byte{0x08, 0x08, 0x2A, 0x1C, 0x1C, 0x2A, 0x08, 0x08}
	IconCheck     = [8]byte{0x00, 0x01, 0x02, 0x04, 0x48, 0x50, 0x20, 0x00}
	IconCross     = [8]byte{0x00, 0x41, 0x22, 0x14, 0x14, 0x22, 0x41, 0x00}
	IconArrowUp   = [8]byte{0x08, 0x1C, 0x2A, 0x49, 0x08, 0x08, 0x08, 0x00}
	IconArrowDown = [8]byte{0x00, 0x08, 0x08, 0x08, 0x49, 0x2A, 0x1C, 0x08}
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

package ks0108

import "fmt"

// fillLength scales a 0-100 value to a length within inner pixels.
func fillLength(value, inner int) int {
	if inner <= 0 {
		return 0
	}
	return clamp(value*inner/100, 0, inner)
}

// BarHorizontal draws a w x h bar with its top-left corner at (x, y), filled
// from the left in proportion to value (0-100). The unfilled part of the
// interior is cleared so the bar can be redrawn with a new value.
func (d *Dev) BarHorizontal(x, y, w, h, value int) {
	if w <= 0 || h <= 0 {
		return
	}
	d.rectangle(x, y, x+w-1, y+h-1, On)

	inner := w - 2
	if inner <= 0 || h <= 2 {
		return
	}
	n := fillLength(value, inner)
	if n > 0 {
		d.fillRect(x+1, y+1, x+n, y+h-2, On)
	}
	if n < inner {
		d.fillRect(x+1+n, y+1, x+w-2, y+h-2, Off)
	}
}

// BarVertical draws a w x h bar with its bottom-left corner at (x, y), so it
// spans rows y-h+1 to y. It is filled from the bottom in proportion to value
// (0-100) and the unfilled part of the interior is cleared.
func (d *Dev) BarVertical(x, y, w, h, value int) {
	if w <= 0 || h <= 0 {
		return
	}
	top := y - h + 1
	d.rectangle(x, top, x+w-1, y, On)

	inner := h - 2
	if inner <= 0 || w <= 2 {
		return
	}
	n := fillLength(value, inner)
	bottom := y - 1
	if n > 0 {
		d.fillRect(x+1, bottom-n+1, x+w-2, bottom, On)
	}
	if n < inner {
		d.fillRect(x+1, top+1, x+w-2, bottom-n, Off)
	}
}

// ProgressBar draws a horizontal bar like BarHorizontal. When label is set
// the percentage is printed to the right of the bar, vertically centered.
func (d *Dev) ProgressBar(x, y, w, h, value int, label bool) {
	d.BarHorizontal(x, y, w, h, value)
	if !label || w <= 0 || h <= 0 {
		return
	}
	d.drawText(x+w+2, y+(h-CellHeight)/2, fmt.Sprintf("%3d%%", clamp(value, 0, 100)))
}

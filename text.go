package ks0108

import "github.com/shavkatjon-o/ks0108/font5x7"

// Text grid. A character cell is the 5x7 glyph plus one spacing column and
// one spacing row.
const (
	CellWidth  = font5x7.Width + 1
	CellHeight = font5x7.Height + 1
	TextCols   = 20 // Full cells per row
	TextRows   = Height / CellHeight
)

const hexDigits = "0123456789ABCDEF"

// drawGlyph renders code with its top-left corner at pixel (x, y), each font
// pixel expanded to a scale x scale block. The whole cell is written: glyph
// pixels on, background and spacing off. Undefined codes render blank.
func (d *Dev) drawGlyph(x, y int, code byte, scale int) {
	g, _ := font5x7.Lookup(code)
	for col := 0; col < CellWidth; col++ {
		for row := 0; row < CellHeight; row++ {
			m := Off
			if g.Bit(col, row) {
				m = On
			}
			for sx := 0; sx < scale; sx++ {
				for sy := 0; sy < scale; sy++ {
					d.SetPixel(x+col*scale+sx, y+row*scale+sy, m)
				}
			}
		}
	}
}

// drawText renders s at pixel precision, one cell per byte.
func (d *Dev) drawText(x, y int, s string) {
	for i := 0; i < len(s); i++ {
		d.drawGlyph(x+i*CellWidth, y, s[i], 1)
	}
}

// DrawChar draws a character in the text cell at (row, col), row 0-7 and
// col 0-19.
func (d *Dev) DrawChar(row, col int, code byte) {
	d.drawGlyph(col*CellWidth, row*CellHeight, code, 1)
}

// DrawString draws text left to right starting at cell (row, col). It does
// not wrap; characters past the right edge are clipped. The text cursor is
// not used.
func (d *Dev) DrawString(row, col int, text string) {
	for i := 0; i < len(text); i++ {
		d.DrawChar(row, col+i, text[i])
	}
}

// WriteString is DrawString.
func (d *Dev) WriteString(row, col int, text string) {
	d.DrawString(row, col, text)
}

// DrawChar2x draws a character at twice the normal size in the 12x16 cell at
// (row, col), row 0-3 and col 0-9.
func (d *Dev) DrawChar2x(row, col int, code byte) {
	d.drawGlyph(col*CellWidth*2, row*CellHeight*2, code, 2)
}

// DrawString2x draws text at twice the normal size starting at 2x cell
// (row, col).
func (d *Dev) DrawString2x(row, col int, text string) {
	for i := 0; i < len(text); i++ {
		d.DrawChar2x(row, col+i, text[i])
	}
}

// GotoCell moves the text cursor used by PutChar and the number formatters.
// row is clamped to 0-7 and col to 0-19.
func (d *Dev) GotoCell(row, col int) {
	d.row = clamp(row, 0, TextRows-1)
	d.col = clamp(col, 0, TextCols-1)
}

// Cursor returns the text cursor position.
func (d *Dev) Cursor() (row, col int) {
	return d.row, d.col
}

// PutChar draws a character at the text cursor and advances it. Past the last
// column the cursor moves to the start of the next row, and past the last row
// back to the top.
func (d *Dev) PutChar(code byte) {
	d.DrawChar(d.row, d.col, code)
	d.setCursor(d.row, d.col+1)
}

// setCursor moves the text cursor, wrapping columns into rows.
func (d *Dev) setCursor(row, col int) {
	row += col / TextCols
	d.row = row % TextRows
	d.col = col % TextCols
}

// Decimal1 draws the last decimal digit of n at the cursor. When the digit is
// 0 and suppressZero is set, a blank is drawn instead; this lets callers
// suppress leading zeros digit by digit. It reports whether a digit was drawn.
func (d *Dev) Decimal1(n uint, suppressZero bool) bool {
	n %= 10
	if n == 0 && suppressZero {
		d.PutChar(' ')
		return false
	}
	d.PutChar('0' + byte(n))
	return true
}

// Decimal2 draws n as two zero-padded decimal digits (00-99) at the cursor.
func (d *Dev) Decimal2(n uint) {
	d.decimal(n, 2)
}

// Decimal3 draws n as three zero-padded decimal digits (000-999) at the cursor.
func (d *Dev) Decimal3(n uint) {
	d.decimal(n, 3)
}

// Decimal4 draws n as four zero-padded decimal digits (0000-9999) at the
// cursor.
func (d *Dev) Decimal4(n uint) {
	d.decimal(n, 4)
}

// decimal draws the low width digits of n, most significant first.
func (d *Dev) decimal(n uint, width int) {
	var digits [4]byte
	for i := width - 1; i >= 0; i-- {
		digits[i] = '0' + byte(n%10)
		n /= 10
	}
	for _, c := range digits[:width] {
		d.PutChar(c)
	}
}

// Hex2 draws v as two upper-case hexadecimal digits at the cursor.
func (d *Dev) Hex2(v byte) {
	d.PutChar(hexDigits[v>>4])
	d.PutChar(hexDigits[v&0x0F])
}

// Hex4 draws v as four upper-case hexadecimal digits at the cursor.
func (d *Dev) Hex4(v uint16) {
	d.Hex2(byte(v >> 8))
	d.Hex2(byte(v))
}

// DisplayValue draws label at cell (row, col) followed by value zero padded to
// digits (1-4) and leaves the cursor after the value.
func (d *Dev) DisplayValue(row, col int, label string, value uint, digits int) {
	d.DrawString(row, col, label)
	d.setCursor(row, col+len(label))
	digits = clamp(digits, 1, 4)
	if digits == 1 {
		d.Decimal1(value, false)
		return
	}
	d.decimal(value, digits)
}

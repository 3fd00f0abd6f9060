// Package ks0108 controls a 128x64 monochrome graphics LCD driven by two
// KS0108 segment controllers.
//
// Each controller owns 64 columns and 8 pages of 8 rows. Display RAM is write
// only, so the driver keeps a shadow copy of every page byte and performs
// read-modify-write on it to change single pixels.
//
// See the examples for how to use this package.
package ks0108

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Display geometry.
const (
	Width        = 128 // Pixels
	Height       = 64  // Pixels
	SegmentWidth = 64  // Columns per segment controller
	Pages        = 8   // 8-row bands of display RAM
)

var errHalted = errors.New("ks0108: halted")

// Opts is the configuration for the KS0108 display.
type Opts struct {
	// Optional hardware reset pin
	RST gpio.PinIO

	// Parallel bus settings, ignored by New
	CSActiveLow bool             // Chip selects are active low (default: active high)
	Clock       physic.Frequency // Enable strobe rate (default: DefaultClock)

	// First RAM line shown at the top of the display (0-63)
	StartLine int
}

// Dev is the device handle for the KS0108 display.
//
// Dev is not safe for concurrent use; a program must own the device and its
// bus for the whole lifetime of the handle.
type Dev struct {
	// Communication
	bus Bus
	rst gpio.PinIO

	// Display geometry
	rect      image.Rectangle
	startLine int

	// Pixel buffers
	buf  *image1bit.VerticalLSB // Shadow of display RAM
	next *image1bit.VerticalLSB // Staging frame for Draw

	// Hardware write address of each segment
	cursors [2]cursor

	// Drawing state
	mode     Mode
	row, col int // Text cursor

	// State
	err    error
	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewParallel creates a new KS0108 device driven by GPIO pins.
//
// opts can be nil to use defaults.
func NewParallel(p *Pins, opts *Opts) (*Dev, error) {
	b, err := NewParallelBus(p, opts)
	if err != nil {
		return nil, err
	}
	return New(b, opts)
}

// New creates a new KS0108 device on an arbitrary bus, initializes both
// segments and clears the display.
//
// opts can be nil to use defaults.
func New(b Bus, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("ks0108: bus is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	if opts.StartLine < 0 || opts.StartLine >= Height {
		return nil, errors.New("ks0108: start line must be between 0 and 63")
	}

	rect := image.Rect(0, 0, Width, Height)
	d := &Dev{
		bus:       b,
		rst:       opts.RST,
		rect:      rect,
		startLine: opts.StartLine,
		buf:       image1bit.NewVerticalLSB(rect),
		mode:      On,
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init runs the initialization sequence again: optional hardware reset, both
// segments on, start line, full clear. It also clears a halted state and any
// recorded bus error.
func (d *Dev) Init() error {
	return d.init()
}

// init sends the initialization sequence to both segments.
func (d *Dev) init() error {
	d.err = nil
	d.halted = false
	d.cursors = [2]cursor{}

	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ks0108: failed to pull RST low: %w", err)
		}
		time.Sleep(time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ks0108: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	d.command(SegmentBoth, cmdDisplayOn)
	d.command(SegmentBoth, cmdSetStartLine|byte(d.startLine))
	d.clear()
	d.row, d.col = 0, 0

	if d.err != nil {
		return fmt.Errorf("ks0108: init: %w", d.err)
	}
	return nil
}

// Clear turns every pixel off and homes the text cursor.
func (d *Dev) Clear() {
	d.clear()
	d.row, d.col = 0, 0
}

// Err returns the first bus error seen since initialization, if any. Drawing
// calls do not return errors; check Err after a batch of them.
// After Halt, Err reports that the device is halted.
func (d *Dev) Err() error {
	if d.err == nil && d.halted {
		return errHalted
	}
	return d.err
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes a raw frame to the display. The frame uses the display RAM
// layout: 8 pages of 128 bytes, bit 0 of each byte is the top row of the page.
// The data must be exactly Width * Pages bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.buf.Pix) {
		return 0, errors.New("ks0108: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update optimization.
// Only page bytes that differ from what the display currently shows are sent.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Lazy-initialize the staging frame
	if d.next == nil {
		d.next = image1bit.NewVerticalLSB(d.rect)
	}
	copy(d.next.Pix, d.buf.Pix)

	// Fast path: source already in display RAM layout at full size
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok && dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
		copy(d.next.Pix, srcImg.Pix)
	} else {
		draw.Draw(d.next, dst, src, sp, draw.Src)
	}

	return d.flush()
}

// flush sends every byte of the staging frame that differs from the shadow.
// It stops at the first bus error.
func (d *Dev) flush() error {
	minPage, maxPage, minX, maxX := d.calculateDiff()
	if minPage > maxPage {
		// No changes
		return nil
	}

	stride := d.next.Stride
	for page := minPage; page <= maxPage; page++ {
		for x := minX; x <= maxX; x++ {
			if err := d.setByte(segmentOf(x), page, x%SegmentWidth, d.next.Pix[page*stride+x]); err != nil {
				return err
			}
		}
	}
	return nil
}

// calculateDiff compares the shadow and staging buffers to find the minimal
// changed region. Returns (minPage, maxPage, minX, maxX) or
// (Pages, -1, Width, -1) if nothing changed.
func (d *Dev) calculateDiff() (minPage, maxPage, minX, maxX int) {
	stride := d.buf.Stride

	minPage, maxPage = Pages, -1
	minX, maxX = Width, -1

	// Scan page by page to find differences
	for page := 0; page < Pages; page++ {
		start := page * stride
		end := start + stride

		if bytes.Equal(d.buf.Pix[start:end], d.next.Pix[start:end]) {
			continue
		}
		if page < minPage {
			minPage = page
		}
		if page > maxPage {
			maxPage = page
		}

		// Scan columns within this page for precise boundaries
		for x := 0; x < stride; x++ {
			if d.buf.Pix[start+x] != d.next.Pix[start+x] {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	return
}

// writeFullFrame writes every page of both segments and replaces the shadow.
// It stops at the first bus error, leaving the shadow as far as it was sent.
func (d *Dev) writeFullFrame(pixels []byte) error {
	stride := d.buf.Stride
	for page := 0; page < Pages; page++ {
		for _, s := range []Segment{SegmentLeft, SegmentRight} {
			if err := d.setPageColumn(s, page, 0); err != nil {
				return err
			}
			start := page*stride + s.index()*SegmentWidth
			for i, v := range pixels[start : start+SegmentWidth] {
				if err := d.writeByte(s, v); err != nil {
					return err
				}
				d.buf.Pix[start+i] = v
			}
		}
	}
	return nil
}

// SetStartLine sets the display RAM line shown at the top of the screen
// (0-63), scrolling the whole display vertically in hardware.
func (d *Dev) SetStartLine(line int) error {
	if d.halted {
		return errHalted
	}
	if line < 0 || line >= Height {
		return errors.New("ks0108: start line out of range")
	}
	if err := d.command(SegmentBoth, cmdSetStartLine|byte(line)); err != nil {
		return err
	}
	d.startLine = line
	return nil
}

// StartLine returns the current hardware start line.
func (d *Dev) StartLine() int {
	return d.startLine
}

// Halt turns both segments off.
// After calling Halt, drawing calls are ignored and error-returning methods
// fail until Init is called.
func (d *Dev) Halt() error {
	d.halted = true
	return d.bus.Command(SegmentBoth, cmdDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ks0108.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// segmentOf returns the segment owning pixel column x.
func segmentOf(x int) Segment {
	if x < SegmentWidth {
		return SegmentLeft
	}
	return SegmentRight
}

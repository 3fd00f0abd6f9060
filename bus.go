package ks0108

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3/cpu"
)

// Segment selects one or both KS0108 segment controllers.
//
// Segments are bit flags so a single transaction can be broadcast to both
// halves of the display.
type Segment uint8

const (
	SegmentLeft  Segment = 1 << iota // Columns 0-63 (CS1)
	SegmentRight                     // Columns 64-127 (CS2)

	SegmentBoth = SegmentLeft | SegmentRight
)

func (s Segment) String() string {
	switch s {
	case SegmentLeft:
		return "left"
	case SegmentRight:
		return "right"
	case SegmentBoth:
		return "both"
	default:
		return fmt.Sprintf("Segment(%d)", uint8(s))
	}
}

// index returns 0 for the left segment and 1 for the right one.
func (s Segment) index() int {
	if s == SegmentRight {
		return 1
	}
	return 0
}

// Bus carries instruction and data transactions to the segment controllers.
//
// The KS0108 acknowledges nothing, so an error only reports that the
// transaction could not be put on the wire (e.g. a GPIO write failed).
type Bus interface {
	// Command writes an instruction byte to the selected segments.
	Command(s Segment, cmd byte) error
	// Data writes a display RAM byte to the selected segments at their current
	// page/column; the controller increments the column afterwards.
	Data(s Segment, b byte) error
}

// Pins lists the GPIO lines of the KS0108 parallel interface.
type Pins struct {
	DB  [8]gpio.PinOut // Data bus, DB[0] is the least significant bit
	RS  gpio.PinOut    // Register select (D/I): low = instruction, high = data
	RW  gpio.PinOut    // Read/write, optional; held low when provided
	E   gpio.PinOut    // Enable strobe, data latched on the falling edge
	CS1 gpio.PinOut    // Chip select for the left segment
	CS2 gpio.PinOut    // Chip select for the right segment
}

// ParallelBus drives a KS0108 panel over its 8-bit parallel interface using
// individual GPIO pins.
type ParallelBus struct {
	p        *Pins
	selected gpio.Level
	pulse    time.Duration
}

// NewParallelBus validates the pins and returns a bus ready for use.
//
// opts can be nil to use defaults (active-high chip selects, 1MHz strobe).
func NewParallelBus(p *Pins, opts *Opts) (*ParallelBus, error) {
	if p == nil {
		return nil, errors.New("ks0108: pins are required")
	}
	for i, pin := range p.DB {
		if pin == nil {
			return nil, fmt.Errorf("ks0108: data pin DB%d is required", i)
		}
	}
	if p.RS == nil || p.E == nil {
		return nil, errors.New("ks0108: RS and E pins are required")
	}
	if p.CS1 == nil || p.CS2 == nil {
		return nil, errors.New("ks0108: CS1 and CS2 pins are required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	clock := opts.Clock
	if clock == 0 {
		clock = DefaultClock
	}
	if clock < 0 {
		return nil, errors.New("ks0108: bus clock must be positive")
	}

	b := &ParallelBus{
		p:        p,
		selected: gpio.High,
		pulse:    clock.Period() / 2,
	}
	if opts.CSActiveLow {
		b.selected = gpio.Low
	}

	// Write-only interface
	if p.RW != nil {
		if err := p.RW.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("ks0108: failed to pull RW low: %w", err)
		}
	}
	if err := p.E.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("ks0108: failed to pull E low: %w", err)
	}
	return b, nil
}

// Command implements Bus.
func (b *ParallelBus) Command(s Segment, cmd byte) error {
	return b.write(s, gpio.Low, cmd)
}

// Data implements Bus.
func (b *ParallelBus) Data(s Segment, v byte) error {
	return b.write(s, gpio.High, v)
}

// String returns a string representation of the bus.
func (b *ParallelBus) String() string {
	return fmt.Sprintf("ks0108.ParallelBus{E: %s}", b.p.E)
}

// write performs one strobed transaction: select the chips, present RS and
// the data byte, then pulse E.
func (b *ParallelBus) write(s Segment, rs gpio.Level, v byte) error {
	if err := b.p.CS1.Out(b.chipLevel(s&SegmentLeft != 0)); err != nil {
		return err
	}
	if err := b.p.CS2.Out(b.chipLevel(s&SegmentRight != 0)); err != nil {
		return err
	}
	if err := b.p.RS.Out(rs); err != nil {
		return err
	}
	for i, pin := range b.p.DB {
		if err := pin.Out(gpio.Level(v>>uint(i)&1 != 0)); err != nil {
			return err
		}
	}
	if err := b.p.E.Out(gpio.High); err != nil {
		return err
	}
	cpu.Nanospin(b.pulse)
	if err := b.p.E.Out(gpio.Low); err != nil {
		return err
	}
	cpu.Nanospin(b.pulse)
	return nil
}

func (b *ParallelBus) chipLevel(on bool) gpio.Level {
	if on {
		return b.selected
	}
	return !b.selected
}

// DefaultClock is the enable strobe rate used when Opts.Clock is zero.
// The KS0108 needs E high for at least 450ns.
const DefaultClock = 1 * physic.MegaHertz

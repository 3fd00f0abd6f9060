package ks0108

// KS0108 instruction set.
const (
	cmdDisplayOff   = 0x3E
	cmdDisplayOn    = 0x3F
	cmdSetColumn    = 0x40 // Y address, 0-63
	cmdSetPage      = 0xB8 // X address, 0-7
	cmdSetStartLine = 0xC0 // Z address, 0-63
)

// cursor mirrors the write address of one segment controller.
type cursor struct {
	page, column int
	valid        bool
}

// command sends an instruction. Failures are also recorded for Err.
func (d *Dev) command(s Segment, cmd byte) error {
	if err := d.bus.Command(s, cmd); err != nil {
		d.fail(err)
		return err
	}
	return nil
}

// fail records the first bus error and forgets the hardware cursors, since a
// failed transaction leaves the controller address unknown.
func (d *Dev) fail(err error) {
	d.cursors = [2]cursor{}
	if d.err == nil {
		d.err = err
	}
}

// setPageColumn positions the write cursor of a single segment.
// page is clamped to 0-7 and column to 0-63.
func (d *Dev) setPageColumn(s Segment, page, column int) error {
	page = clamp(page, 0, Pages-1)
	column = clamp(column, 0, SegmentWidth-1)

	c := &d.cursors[s.index()]
	if c.valid && c.page == page && c.column == column {
		return nil
	}
	if err := d.command(s, cmdSetPage|byte(page)); err != nil {
		return err
	}
	if err := d.command(s, cmdSetColumn|byte(column)); err != nil {
		return err
	}
	*c = cursor{page: page, column: column, valid: true}
	return nil
}

// setPageColumnBoth positions both segments at the same page and column.
func (d *Dev) setPageColumnBoth(page, column int) error {
	page = clamp(page, 0, Pages-1)
	column = clamp(column, 0, SegmentWidth-1)

	if err := d.command(SegmentBoth, cmdSetPage|byte(page)); err != nil {
		return err
	}
	if err := d.command(SegmentBoth, cmdSetColumn|byte(column)); err != nil {
		return err
	}
	d.cursors[0] = cursor{page: page, column: column, valid: true}
	d.cursors[1] = d.cursors[0]
	return nil
}

// writeByte writes one page byte at the segment's cursor.
func (d *Dev) writeByte(s Segment, v byte) error {
	if err := d.bus.Data(s, v); err != nil {
		d.fail(err)
		return err
	}
	d.cursors[s.index()].advance()
	return nil
}

// writeByteBoth broadcasts one page byte to both segments.
func (d *Dev) writeByteBoth(v byte) error {
	if err := d.bus.Data(SegmentBoth, v); err != nil {
		d.fail(err)
		return err
	}
	d.cursors[0].advance()
	d.cursors[1].advance()
	return nil
}

// advance follows the controller's column auto-increment, which wraps at 64.
func (c *cursor) advance() {
	c.column = (c.column + 1) % SegmentWidth
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

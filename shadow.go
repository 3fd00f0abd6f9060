package ks0108

// The shadow buffer mirrors the display RAM of both segments, since the
// panel is never read back. It is stored as a 128x64 image1bit.VerticalLSB:
// byte (segment, page, column) lives at Pix[page*Stride + segment*64 + column].

// offset returns the index of a page byte in the shadow buffer, or false when
// the address is outside the display.
func (d *Dev) offset(s Segment, page, column int) (int, bool) {
	if s != SegmentLeft && s != SegmentRight {
		return 0, false
	}
	if page < 0 || page >= Pages || column < 0 || column >= SegmentWidth {
		return 0, false
	}
	return page*d.buf.Stride + s.index()*SegmentWidth + column, true
}

// getByte returns the last value written at (segment, page, column).
func (d *Dev) getByte(s Segment, page, column int) byte {
	off, ok := d.offset(s, page, column)
	if !ok {
		return 0
	}
	return d.buf.Pix[off]
}

// setByte forwards a page byte to the panel and stores it once sent.
// Unchanged bytes are not sent again; a byte the bus failed to send keeps its
// old value so a later call retries it.
func (d *Dev) setByte(s Segment, page, column int, v byte) error {
	if d.halted {
		return nil
	}
	off, ok := d.offset(s, page, column)
	if !ok || d.buf.Pix[off] == v {
		return nil
	}
	if err := d.setPageColumn(s, page, column); err != nil {
		return err
	}
	if err := d.writeByte(s, v); err != nil {
		return err
	}
	d.buf.Pix[off] = v
	return nil
}

// clear zeroes every byte of display RAM, page by page, and the shadow
// buffer along with it. It stops at the first bus error.
func (d *Dev) clear() error {
	if d.halted {
		return nil
	}
	stride := d.buf.Stride
	for page := 0; page < Pages; page++ {
		if err := d.setPageColumnBoth(page, 0); err != nil {
			return err
		}
		for column := 0; column < SegmentWidth; column++ {
			if err := d.writeByteBoth(0); err != nil {
				return err
			}
			d.buf.Pix[page*stride+column] = 0
			d.buf.Pix[page*stride+SegmentWidth+column] = 0
		}
	}
	return nil
}

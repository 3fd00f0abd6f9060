// Package ks0108 controls a 128×64 monochrome graphics LCD built from two
// KS0108 segment controllers.
//
// Each controller drives 64 columns of the panel; the left one is selected
// by CS1 and the right one by CS2. Display RAM is organised in 8 pages of 8
// rows, each byte holding one column of a page with bit 0 on top. This driver
// implements the display.Drawer interface from periph.io and adds pixel
// primitives, a 5×7 text layer and bar widgets on top of it.
//
// # Display Characteristics
//
// - 128×64 pixels, 1 bit per pixel
// - Two 64×64 segments, addressed independently or together
// - Write-only 8-bit parallel interface (RW held low)
// - Hardware vertical scrolling through the display start line
//
// # Hardware Connection
//
// Connect the module to GPIO pins:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 5V (most modules)
//	VO          → Contrast potentiometer wiper
//	DB0-DB7     → GPIO (8 pins)
//	RS (D/I)    → GPIO
//	RW          → GPIO or GND
//	E           → GPIO
//	CS1, CS2    → GPIO (2 pins)
//	RST         → Optional: GPIO for hardware reset
//
// Chip selects are active high on most modules. Set Opts.CSActiveLow for
// modules that invert them.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"github.com/shavkatjon-o/ks0108"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		pins := &ks0108.Pins{
//			RS:  gpioreg.ByName("GPIO17"),
//			E:   gpioreg.ByName("GPIO27"),
//			CS1: gpioreg.ByName("GPIO22"),
//			CS2: gpioreg.ByName("GPIO23"),
//		}
//		for i, name := range []string{"GPIO5", "GPIO6", "GPIO13", "GPIO19", "GPIO26", "GPIO16", "GPIO20", "GPIO21"} {
//			pins.DB[i] = gpioreg.ByName(name)
//		}
//
//		// Create device; it is initialized and cleared
//		dev, _ := ks0108.NewParallel(pins, nil)
//		defer dev.Halt()
//
//		dev.Rectangle(0, 0, 127, 63)
//		dev.WriteString(1, 1, "Hello")
//		dev.ProgressBar(6, 40, 80, 10, 42, true)
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If the module's RST pin is connected to a GPIO, provide it in Opts:
//
//	dev, _ := ks0108.NewParallel(pins, &ks0108.Opts{
//		RST: gpioreg.ByName("GPIO24"),
//	})
//
// The driver pulls RST low for 1ms, releases it and waits 10ms before the
// first command. Without RST the driver relies on power-on reset.
//
// # Shadow Buffer
//
// The KS0108 is driven write-only, so the driver keeps a copy of all 1024
// display RAM bytes. Changing a pixel reads the byte from the copy, modifies
// one bit and writes the byte back. Bytes that do not change are not sent,
// and the driver tracks each controller's address counter so consecutive
// bytes are written without re-addressing.
//
// # Drawing Modes
//
// ## Pixel Primitives
//
// SetPixel, Line, Rectangle, RectangleFill, Circle, CircleFill, Triangle,
// Bitmap and Icon8x8 draw directly on the display. Coordinates outside the
// panel are clipped. Shapes use the mode set with SetDrawMode:
//
//	dev.SetDrawMode(ks0108.Xor)
//	dev.Circle(64, 32, 20) // draw
//	dev.Circle(64, 32, 20) // erase
//
// ## Full-Frame Update
//
// Write raw display RAM: 1024 bytes, page-major, 128 columns per page:
//
//	pixels := make([]byte, ks0108.Width*ks0108.Pages)
//	// ... fill pixels ...
//	dev.Write(pixels)
//
// ## Differential Updates
//
// Draw converts any image to 1 bit and only updates the rectangle of pages
// and columns that changed:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// # Text
//
// The text layer uses a 5×7 font in 6×8 cells, giving a grid of 20 columns by
// 8 rows. DrawString and WriteString place text at a cell; PutChar and the
// Decimal and Hex formatters write at a cursor set with GotoCell, wrapping to
// the next row at the right edge. DrawChar2x and DrawString2x draw double
// size characters.
//
// # Errors
//
// Drawing calls return nothing. The first bus error is recorded and reported
// by Err until the next Init:
//
//	dev.Line(0, 0, 127, 63)
//	if err := dev.Err(); err != nil {
//		// ...
//	}
//
// # Hardware Scrolling
//
// SetStartLine selects which RAM line appears at the top of the panel,
// rolling the whole image vertically:
//
//	for line := 0; line < 64; line++ {
//		dev.SetStartLine(line)
//		time.Sleep(50 * time.Millisecond)
//	}
//
// # Performance
//
// Every byte costs one enable strobe. At the default 1MHz strobe rate:
// - Full-frame clear: 512 broadcast writes plus 16 addressing commands
// - Single pixel: 1 write, plus up to 2 addressing commands
// - Character on the text grid: at most 6 writes, one per cell column
//
// # Datasheet
//
// For instruction timing and the register description, see the Samsung
// KS0108B datasheet.
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package ks0108

package gb

// cyclesPerLine is the number of T-states the accumulator absorbs before LY
// advances by one scanline.
const cyclesPerLine = 456

// lineCount is the number of scanlines before LY wraps to 0. The hardware
// value is 154; an off-by-few bug using 157 is one of the documented source
// defects this emulator does not reproduce.
const lineCount = 154

// lyAddr is the bus address at which LY is exposed.
const lyAddr uint16 = 0xFF44

// Display owns the current scanline index (LY) and the sub-line cycle
// accumulator that drives it. It has no framebuffer or rendering behavior at
// this spec level; it exists purely to keep LY observable and correctly
// timed relative to CPU cycles.
type Display struct {
	ly          byte
	accumulator uint32
}

// NewDisplay returns a Display at scanline 0.
func NewDisplay() *Display {
	return &Display{}
}

// Tick advances the accumulator by cycles, rolling LY forward one line for
// every cyclesPerLine consumed, wrapping LY at lineCount.
func (d *Display) Tick(cycles uint32) {
	d.accumulator += cycles
	for d.accumulator >= cyclesPerLine {
		d.accumulator -= cyclesPerLine
		d.ly++
		if d.ly >= lineCount {
			d.ly = 0
		}
	}
}

// LY returns the current scanline index.
func (d *Display) LY() byte { return d.ly }

// ReadRegister services display-register reads in 0xFF40-0xFF4B. Only LY is
// meaningfully readable at this spec level; everything else reads as 0.
func (d *Display) ReadRegister(addr uint16) byte {
	if addr == lyAddr {
		return d.ly
	}
	return 0
}

// WriteRegister accepts and silently drops all display-register writes.
func (d *Display) WriteRegister(addr uint16, value byte) {}

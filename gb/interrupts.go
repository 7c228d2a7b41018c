package gb

// Interrupts owns the interrupt master enable flag. Full interrupt
// servicing (IE/IF routing, vectoring) is out of scope at this spec level;
// only IME's read/write behavior is tracked.
type Interrupts struct {
	ime bool
}

// NewInterrupts returns Interrupts with IME enabled, matching power-on.
func NewInterrupts() *Interrupts {
	return &Interrupts{ime: true}
}

func (i *Interrupts) Enabled() bool { return i.ime }

func (i *Interrupts) SetEnabled(on bool) { i.ime = on }

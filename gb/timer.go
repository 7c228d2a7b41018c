package gb

// Timer owns a free-running cycle counter with no other observable effect at
// this spec level. It never resets and never interrupts.
type Timer struct {
	cycles uint64
}

// NewTimer returns a Timer at zero.
func NewTimer() *Timer {
	return &Timer{}
}

// Tick adds cycles to the running counter.
func (t *Timer) Tick(cycles uint32) {
	t.cycles += uint64(cycles)
}

// Cycles returns the total number of cycles ticked since construction.
func (t *Timer) Cycles() uint64 { return t.cycles }

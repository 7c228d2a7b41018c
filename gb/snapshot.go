package gb

// Snapshot is an immutable copy of observable Cpu state, used by debug
// surfaces (the pixelgl inspector window, the terminal debugger) so they
// never need to share the live Cpu pointer across goroutines, per the
// single-threaded ownership model in the concurrency design.
type Snapshot struct {
	A, F, B, C, D, E, H, L byte
	SP, PC                 uint16
	LY                     byte
	Cycles                 uint64
	IME                    bool
}

// Snapshot captures the Cpu's current observable state.
func (c *Cpu) Snapshot() Snapshot {
	return Snapshot{
		A: c.Reg.A, F: c.Reg.F,
		B: c.Reg.B, C: c.Reg.C,
		D: c.Reg.D, E: c.Reg.E,
		H: c.Reg.H, L: c.Reg.L,
		SP: c.Reg.SP, PC: c.Reg.PC,
		LY:     c.Bus.Display.LY(),
		Cycles: c.Bus.Timer.Cycles(),
		IME:    c.Interrupts.Enabled(),
	}
}

package gb

// CurrentInstruction returns the mnemonic name and raw opcode byte(s) the
// Cpu is about to execute, without mutating any state. Used by debug
// surfaces that want to show "what's next" without duplicating the
// dispatch tables.
func (c *Cpu) CurrentInstruction() (name string, opcode byte, cbPrefixed bool) {
	pc := c.Reg.PC
	op := c.Bus.Read(pc)
	if op == 0xCB {
		cb := c.Bus.Read(pc + 1)
		return cbTable[cb].name, cb, true
	}
	return primaryTable[op].name, op, false
}

// ReadBytes returns a copy of count bytes starting at addr, for memory-page
// dumps in debug tooling.
func (c *Cpu) ReadBytes(addr uint16, count int) []byte {
	out := make([]byte, count)
	for i := 0; i < count; i++ {
		out[i] = c.Bus.Read(addr + uint16(i))
	}
	return out
}

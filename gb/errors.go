package gb

import "fmt"

// UnimplementedOpcodeError is the fatal condition raised when Step decodes
// an opcode outside the specified primary or CB-prefixed tables. There is no
// recovery path: the caller is expected to abort.
type UnimplementedOpcodeError struct {
	Opcode   byte
	CBPrefix bool
	PC       uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.CBPrefix {
		return fmt.Sprintf("gb: unimplemented CB opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("gb: unimplemented opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

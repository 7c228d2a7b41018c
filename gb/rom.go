package gb

import (
	"io/ioutil"

	"github.com/pkg/errors"
)

// romSize is the fixed cartridge ROM window mapped at 0x0000-0x7FFF.
// This spec level does not implement MBC bank switching; every cartridge
// is treated as a single no-bank 32 KiB image.
const romSize = 0x8000

// ROM is an immutable 32 KiB byte image, read-only from the CPU's
// perspective once loaded.
type ROM struct {
	data [romSize]byte
}

// NewROM returns an all-zero ROM, matching the state before any cartridge
// has been loaded.
func NewROM() *ROM {
	return &ROM{}
}

// Load populates the ROM buffer from bytes. Shorter images are zero-padded;
// longer images are truncated at romSize.
func (r *ROM) Load(data []byte) {
	r.data = [romSize]byte{}
	copy(r.data[:], data)
}

// LoadFile reads a cartridge image from the given path and loads it. The
// returned error wraps the underlying I/O failure so the host can report a
// load-time failure before any step runs.
func (r *ROM) LoadFile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "gb: failed to read ROM image %q", path)
	}
	r.Load(data)
	return nil
}

func (r *ROM) Read(addr uint16) byte {
	return r.data[addr]
}

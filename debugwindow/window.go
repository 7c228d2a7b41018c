// Package debugwindow adapts the teacher's pixelgl-backed debug overlay
// into a standalone live register inspector. There is no real
// framebuffer to render here (the core has no PPU at this spec level), so
// the window draws only text: registers, flags, LY, and cycle count,
// refreshed from Snapshots published by the stepping loop.
package debugwindow

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/n-ulricksen/gb-emulator/gb"
)

const (
	windowWidth  = 440
	windowHeight = 360
)

// Run opens the inspector window and redraws it on every Snapshot received
// from snapshots, until the window is closed or snapshots is closed; it
// closes done when it returns. It must
// be invoked via pixelgl.Run on the main thread, matching the teacher's own
// pixelgl.Run(nesEmulator.Run) entry point.
func Run(snapshots <-chan gb.Snapshot, done chan<- struct{}) {
	cfg := pixelgl.WindowConfig{
		Title:  "gb-emulator debug",
		Bounds: pixel.R(0, 0, windowWidth, windowHeight),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	regText := text.New(pixel.V(10, windowHeight-20), atlas)

	last := gb.Snapshot{}
	for !win.Closed() {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				close(done)
				return
			}
			last = snap
		default:
		}

		regText.Clear()
		writeSnapshot(regText, last)

		win.Clear(colornames.Black)
		regText.Draw(win, pixel.IM.Moved(pixel.V(0, 0)))
		win.Update()
	}
	close(done)
}

func writeSnapshot(t *text.Text, s gb.Snapshot) {
	fmt.Fprintf(t, "PC: $%04X   SP: $%04X\n", s.PC, s.SP)
	fmt.Fprintf(t, "A:  $%02X  F: $%02X\n", s.A, s.F)
	fmt.Fprintf(t, "B:  $%02X  C: $%02X\n", s.B, s.C)
	fmt.Fprintf(t, "D:  $%02X  E: $%02X\n", s.D, s.E)
	fmt.Fprintf(t, "H:  $%02X  L: $%02X\n", s.H, s.L)
	fmt.Fprintf(t, "\n")
	fmt.Fprintf(t, "LY:     %3d\n", s.LY)
	fmt.Fprintf(t, "Cycles: %d\n", s.Cycles)
	fmt.Fprintf(t, "IME:    %v\n", s.IME)
}

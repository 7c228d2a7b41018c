package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/n-ulricksen/gb-emulator/debugtui"
	"github.com/n-ulricksen/gb-emulator/debugwindow"
	"github.com/n-ulricksen/gb-emulator/gb"
)

var (
	flagROM      string
	flagUntilPC  string
	flagMaxSteps int
	flagDebug    bool
	flagTUI      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gb-emulator",
		Short: "A Sharp LR35902 core stepper",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a ROM and step the core until a stop condition",
		RunE:  runCore,
	}
	runCmd.Flags().StringVar(&flagROM, "rom", "", "path to a cartridge ROM image (required)")
	runCmd.Flags().StringVar(&flagUntilPC, "until-pc", "", "stop once PC reaches this hex address, e.g. 0x0150")
	runCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 10_000_000, "abort after this many steps, guarding against runaway ROMs")
	runCmd.Flags().BoolVar(&flagDebug, "debug", false, "open the live register inspector window")
	runCmd.Flags().BoolVar(&flagTUI, "tui", false, "open an interactive terminal step-debugger instead of free-running")
	runCmd.MarkFlagRequired("rom")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runCore(cmd *cobra.Command, args []string) error {
	cpu := gb.NewCpu()
	if err := cpu.Bus.ROM.LoadFile(flagROM); err != nil {
		return errors.Wrap(err, "failed to load ROM")
	}

	if flagTUI {
		return debugtui.Run(cpu)
	}

	var untilPC uint16
	hasTarget := flagUntilPC != ""
	if hasTarget {
		v, err := strconv.ParseUint(trimHexPrefix(flagUntilPC), 16, 16)
		if err != nil {
			return errors.Wrapf(err, "invalid --until-pc %q", flagUntilPC)
		}
		untilPC = uint16(v)
	}

	if flagDebug {
		snapshots := make(chan gb.Snapshot, 1)
		done := make(chan struct{})
		go stepLoop(cpu, hasTarget, untilPC, snapshots)
		pixelgl.Run(func() { debugwindow.Run(snapshots, done) })
		<-done
		return nil
	}

	stepLoop(cpu, hasTarget, untilPC, nil)
	snap := cpu.Snapshot()
	fmt.Printf("halted: PC=$%04X SP=$%04X A=$%02X cycles=%d\n", snap.PC, snap.SP, snap.A, snap.Cycles)
	return nil
}

// stepLoop runs the reference host driver loop from SPEC_FULL.md: call Step
// repeatedly until the target PC is hit or max-steps is exhausted. If
// snapshots is non-nil, a copy of Cpu state is offered after every step
// for the debug window to consume without sharing the Cpu pointer; the send
// does not block, so a snapshot is dropped while the channel is full.
func stepLoop(cpu *gb.Cpu, hasTarget bool, untilPC uint16, snapshots chan<- gb.Snapshot) {
	if flagDebug {
		defer gb.TimeTrack(time.Now())
	}

	for i := 0; i < flagMaxSteps; i++ {
		if hasTarget && cpu.Reg.PC == untilPC {
			break
		}
		if err := cpu.Step(); err != nil {
			log.Fatal(err)
		}
		if snapshots != nil {
			select {
			case snapshots <- cpu.Snapshot():
			default:
			}
		}
	}
	if snapshots != nil {
		close(snapshots)
	}
}

func trimHexPrefix(s string) string {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

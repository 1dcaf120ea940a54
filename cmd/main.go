package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pkg/profile"
	"golang.org/x/term"

	"github.com/dhippley/6502-ex/internal/cpu"
	"github.com/dhippley/6502-ex/internal/memory"
	"github.com/dhippley/6502-ex/internal/monitor"
	"github.com/dhippley/6502-ex/internal/rom"
	"github.com/dhippley/6502-ex/internal/ui"
)

// demoProgram stores 5 to $0200, computes 3+2 and stores it to $0201,
// then breaks. Used when no program file is given.
var demoProgram = []byte{
	0xa9, 0x05, // LDA #$05
	0x8d, 0x00, 0x02, // STA $0200
	0xa9, 0x03, // LDA #$03
	0x69, 0x02, // ADC #$02
	0x8d, 0x01, 0x02, // STA $0201
	0x00, // BRK
}

func main() {
	var (
		romFile    = flag.String("rom", "", "path to a program file, .prg or raw binary")
		loadAddr   = flag.String("addr", "0x0600", "load address for raw program files")
		mon        = flag.Bool("mon", false, "start the interactive machine monitor")
		gui        = flag.Bool("gui", false, "start the graphical debugger")
		trace      = flag.Bool("trace", false, "print every instruction while running headless")
		cpuprofile = flag.Bool("cpuprofile", false, "write a cpu profile to the working directory")
	)
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	start, err := strconv.ParseUint(*loadAddr, 0, 64)
	if err != nil || start > 0xffff {
		log.Fatalf("bad load address: %s", *loadAddr)
	}

	ram := memory.NewRAM()
	c := cpu.New(ram)
	c.Reset()

	if *romFile != "" {
		img, err := rom.NewImageFromFile(*romFile, uint16(start))
		if err != nil {
			log.Fatalf("couldn't load the program: %s", err)
		}
		c.LoadProgram(img.Data, img.Start)
		fmt.Printf("loaded %d bytes at $%04X\n", len(img.Data), img.Start)
	} else {
		c.LoadProgram(demoProgram, uint16(start))
		fmt.Printf("no program file given, loaded the built-in demo at $%04X\n", uint16(start))
	}

	switch {
	case *mon:
		if err := runMonitor(c, ram); err != nil {
			log.Fatalf("monitor failed: %s", err)
		}
	case *gui:
		if err := ui.RunUI(ui.New(c, ram)); err != nil {
			log.Fatalf("ui failed: %s", err)
		}
	default:
		runHeadless(c, ram, *trace)
	}
}

// runHeadless executes the loaded program until it halts, fails or the
// process is interrupted.
func runHeadless(c *cpu.CPU, ram *memory.RAM, trace bool) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if trace {
		runTrace(c, ram, sigCh)
	} else {
		go func() {
			<-sigCh
			c.Stop()
		}()
		if err := c.Run(); err != nil {
			log.Fatalf("run failed: %s", err)
		}
	}

	fmt.Println(c.Status())
}

// runTrace steps the cpu by hand to print every instruction, so it
// watches the signal channel itself instead of going through Stop.
func runTrace(c *cpu.CPU, ram *memory.RAM, sigCh <-chan os.Signal) {
	for {
		select {
		case <-sigCh:
			return
		default:
		}

		text, _ := cpu.Disassemble(ram, c.Status().PC)
		fmt.Println(text)
		halted, err := c.Step()
		if err != nil {
			log.Fatalf("step failed: %s", err)
		}
		if halted {
			return
		}
	}
}

// runMonitor drives the machine monitor over a raw terminal, so line
// editing works without the shell getting in the way.
func runMonitor(c *cpu.CPU, ram *memory.RAM) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("couldn't set the terminal to raw mode: %s", err)
	}
	defer term.Restore(fd, oldState)

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(screen, "> ")

	m := monitor.New(c, ram, t)
	fmt.Fprintln(t, "machine monitor, ? for help")
	for {
		line, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if m.Exec(line) {
			return nil
		}
	}
}

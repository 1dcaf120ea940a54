package monitor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhippley/6502-ex/internal/cpu"
	"github.com/dhippley/6502-ex/internal/memory"
	"github.com/dhippley/6502-ex/internal/rom"
)

const defaultLoadAddr = 0x0600

// Monitor is a line oriented machine monitor in the flavor of the
// classic Commodore ones: single letter commands, $hex addresses.
// Output goes to out. Exec is not safe for concurrent use; drive it
// from one goroutine.
type Monitor struct {
	cpu *cpu.CPU
	ram *memory.RAM
	out io.Writer

	// pending result of a backgrounded run
	runRes chan error
}

func New(c *cpu.CPU, r *memory.RAM, out io.Writer) *Monitor {
	return &Monitor{cpu: c, ram: r, out: out}
}

type command struct {
	name string
	args []string
}

func parseCommand(input string) command {
	input = strings.TrimSpace(input)
	if input == "" {
		return command{}
	}
	parts := strings.Fields(input)
	return command{
		name: strings.ToLower(parts[0]),
		args: parts[1:],
	}
}

// parseAddress parses a monitor number in various formats:
// $hex, 0xhex, bare hex, #decimal
func parseAddress(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 10, 64)
		return v, err == nil
	}

	if strings.HasPrefix(s, "$") {
		v, err := strconv.ParseUint(s[1:], 16, 64)
		return v, err == nil
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return v, err == nil
	}

	v, err := strconv.ParseUint(s, 16, 64)
	return v, err == nil
}

// Exec runs one input line and reports whether the monitor should
// exit.
func (m *Monitor) Exec(line string) bool {
	m.flushRun()

	cmd := parseCommand(line)
	if cmd.name == "" {
		return false
	}

	switch cmd.name {
	case "r", "status":
		fmt.Fprintln(m.out, m.cpu.Status())
	case "s":
		m.cmdStep(cmd)
	case "g", "run":
		m.cmdGo()
	case "stop":
		m.cmdStop()
	case "reset":
		m.cpu.Reset()
		fmt.Fprintln(m.out, m.cpu.Status())
	case "m":
		m.cmdMemoryDump(cmd)
	case "w":
		m.cmdWrite(cmd)
	case "h":
		m.cmdHunt(cmd)
	case "d":
		m.cmdDisassemble(cmd)
	case "load":
		m.cmdLoad(cmd)
	case "clear":
		m.cmdClear()
	case "x", "q", "quit":
		m.cpu.Stop()
		return true
	case "?", "help":
		m.cmdHelp()
	default:
		fmt.Fprintf(m.out, "unknown command: %s\n", cmd.name)
	}
	return false
}

// flushRun reports the outcome of a backgrounded run once it is over.
// It never blocks: a run still going is left alone and picked up by a
// later command.
func (m *Monitor) flushRun() {
	if m.runRes == nil {
		return
	}
	select {
	case err := <-m.runRes:
		m.runRes = nil
		if err != nil {
			fmt.Fprintf(m.out, "run failed: %v\n", err)
			return
		}
		fmt.Fprintln(m.out, m.cpu.Status())
	default:
	}
}

func (m *Monitor) cmdStep(cmd command) {
	count := 1
	if len(cmd.args) >= 1 {
		if v, ok := parseAddress(cmd.args[0]); ok {
			count = int(v)
		}
	}

	for i := 0; i < count; i++ {
		halted, err := m.cpu.Step()
		if err != nil {
			fmt.Fprintf(m.out, "step failed: %v\n", err)
			break
		}
		if halted {
			fmt.Fprintln(m.out, "cpu halted")
			break
		}
	}

	st := m.cpu.Status()
	fmt.Fprintln(m.out, st)
	text, _ := cpu.Disassemble(m.ram, st.PC)
	fmt.Fprintln(m.out, text)
}

func (m *Monitor) cmdGo() {
	if m.cpu.Status().Running {
		fmt.Fprintln(m.out, "already running")
		return
	}

	ch := make(chan error, 1)
	m.runRes = ch
	go func() {
		ch <- m.cpu.Run()
	}()
	fmt.Fprintln(m.out, "running, stop with 'stop'")
}

// cmdStop halts a backgrounded run and waits for it, so the outcome is
// printed right here instead of on some later command.
func (m *Monitor) cmdStop() {
	m.cpu.Stop()
	if m.runRes == nil {
		fmt.Fprintln(m.out, "not running")
		return
	}

	err := <-m.runRes
	m.runRes = nil
	if err != nil {
		fmt.Fprintf(m.out, "run failed: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "stopped")
	fmt.Fprintln(m.out, m.cpu.Status())
}

func (m *Monitor) cmdMemoryDump(cmd command) {
	addr := uint64(m.cpu.Status().PC)
	count := 64

	if len(cmd.args) >= 1 {
		v, ok := parseAddress(cmd.args[0])
		if !ok {
			fmt.Fprintf(m.out, "bad address: %s\n", cmd.args[0])
			return
		}
		addr = v
	}
	if len(cmd.args) >= 2 {
		if v, ok := parseAddress(cmd.args[1]); ok {
			count = int(v)
		}
	}

	cells := m.ram.Dump(uint16(addr), count)
	for i := 0; i < len(cells); i += 16 {
		row := cells[i:min(i+16, len(cells))]

		hexParts := make([]string, 16)
		ascii := make([]byte, 16)
		for j := 0; j < 16; j++ {
			if j < len(row) {
				hexParts[j] = fmt.Sprintf("%02X", row[j].Data)
				if row[j].Data >= 0x20 && row[j].Data < 0x7f {
					ascii[j] = row[j].Data
				} else {
					ascii[j] = '.'
				}
			} else {
				hexParts[j] = "  "
				ascii[j] = ' '
			}
		}

		hexStr := strings.Join(hexParts[:8], " ") + "  " + strings.Join(hexParts[8:], " ")
		fmt.Fprintf(m.out, "$%04X: %s  %s\n", row[0].Addr, hexStr, string(ascii))
	}
}

func (m *Monitor) cmdWrite(cmd command) {
	if len(cmd.args) < 2 {
		fmt.Fprintln(m.out, "usage: w <addr> <byte> [byte ...]")
		return
	}
	if m.cpu.Status().Running {
		fmt.Fprintln(m.out, "stop the cpu first")
		return
	}

	addr, ok := parseAddress(cmd.args[0])
	if !ok {
		fmt.Fprintf(m.out, "bad address: %s\n", cmd.args[0])
		return
	}

	for i, arg := range cmd.args[1:] {
		v, ok := parseAddress(arg)
		if !ok || v > 0xff {
			fmt.Fprintf(m.out, "bad byte: %s\n", arg)
			return
		}
		if err := m.ram.Poke(int(addr)+i, uint8(v)); err != nil {
			fmt.Fprintln(m.out, err)
			return
		}
	}
}

func (m *Monitor) cmdHunt(cmd command) {
	if len(cmd.args) < 3 {
		fmt.Fprintln(m.out, "usage: h <start> <end> <byte> [byte ...]")
		return
	}

	start, ok := parseAddress(cmd.args[0])
	if !ok {
		fmt.Fprintf(m.out, "bad address: %s\n", cmd.args[0])
		return
	}
	end, ok := parseAddress(cmd.args[1])
	if !ok {
		fmt.Fprintf(m.out, "bad address: %s\n", cmd.args[1])
		return
	}
	if end > 0xffff {
		end = 0xffff
	}

	pattern := make([]uint8, 0, len(cmd.args)-2)
	for _, arg := range cmd.args[2:] {
		v, ok := parseAddress(arg)
		if !ok || v > 0xff {
			fmt.Fprintf(m.out, "bad byte: %s\n", arg)
			return
		}
		pattern = append(pattern, uint8(v))
	}

	found := 0
	for addr := start; addr <= end; addr++ {
		match := true
		for i, want := range pattern {
			got, err := m.ram.Peek(int(addr) + i)
			if err != nil || got != want {
				match = false
				break
			}
		}
		if match {
			fmt.Fprintf(m.out, "$%04X\n", addr)
			found++
		}
	}
	if found == 0 {
		fmt.Fprintln(m.out, "not found")
	}
}

func (m *Monitor) cmdDisassemble(cmd command) {
	addr := uint64(m.cpu.Status().PC)
	count := 8

	if len(cmd.args) >= 1 {
		v, ok := parseAddress(cmd.args[0])
		if !ok {
			fmt.Fprintf(m.out, "bad address: %s\n", cmd.args[0])
			return
		}
		addr = v
	}
	if len(cmd.args) >= 2 {
		if v, ok := parseAddress(cmd.args[1]); ok {
			count = int(v)
		}
	}

	for i := 0; i < count && addr <= 0xffff; i++ {
		text, size := cpu.Disassemble(m.ram, uint16(addr))
		fmt.Fprintln(m.out, text)
		addr += uint64(size)
	}
}

func (m *Monitor) cmdLoad(cmd command) {
	if len(cmd.args) < 1 {
		fmt.Fprintln(m.out, "usage: load <file> [addr]")
		return
	}

	start := uint64(defaultLoadAddr)
	if len(cmd.args) >= 2 {
		v, ok := parseAddress(cmd.args[1])
		if !ok {
			fmt.Fprintf(m.out, "bad address: %s\n", cmd.args[1])
			return
		}
		start = v
	}

	img, err := rom.NewImageFromFile(cmd.args[0], uint16(start))
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}

	m.cpu.LoadProgram(img.Data, img.Start)
	fmt.Fprintf(m.out, "loaded %d bytes at $%04X\n", len(img.Data), img.Start)
}

func (m *Monitor) cmdClear() {
	if m.cpu.Status().Running {
		fmt.Fprintln(m.out, "stop the cpu first")
		return
	}
	m.ram.Clear()
	fmt.Fprintln(m.out, "memory cleared")
}

func (m *Monitor) cmdHelp() {
	helpLines := []string{
		"Commands:",
		"  r                  show registers and flags",
		"  s [count]          single step",
		"  g                  run until halt or stop",
		"  stop               stop a running cpu",
		"  reset              reset the cpu",
		"  m [addr] [count]   memory dump, hex and ascii",
		"  w <addr> <byte>..  write bytes to memory",
		"  h <s> <e> <byte>.. hunt for a byte pattern",
		"  d [addr] [count]   disassemble",
		"  load <file> [addr] load a program file (.prg or raw)",
		"  clear              zero all memory",
		"  x                  exit",
		"",
		"addresses: $hex, 0xhex, bare hex or #decimal",
	}
	for _, l := range helpLines {
		fmt.Fprintln(m.out, l)
	}
}

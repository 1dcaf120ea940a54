package ui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dhippley/6502-ex/internal/cpu"
	"github.com/dhippley/6502-ex/internal/memory"
)

// P - pause
// R - one step and stop
// C - reset

const (
	screenWidth  = 560
	screenHeight = 480

	// instructions executed per frame while not paused
	stepsPerFrame = 500

	disasmLines = 12
)

type UI struct {
	cpu *cpu.CPU
	ram *memory.RAM

	paused  bool
	lastErr error
}

func New(c *cpu.CPU, r *memory.RAM) *UI {
	return &UI{
		cpu: c,
		ram: r,
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.paused = !ui.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.paused = true
		ui.step()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ui.cpu.Reset()
		ui.lastErr = nil
	}

	if !ui.paused {
		for i := 0; i < stepsPerFrame; i++ {
			if !ui.step() {
				break
			}
		}
	}
	return nil
}

// step runs one instruction and reports whether stepping can go on.
func (ui *UI) step() bool {
	halted, err := ui.cpu.Step()
	if err != nil {
		if !errors.Is(err, cpu.ErrHalted) {
			ui.lastErr = err
		}
		ui.paused = true
		return false
	}
	if halted {
		ui.paused = true
		return false
	}
	return true
}

func (ui *UI) Draw(screen *ebiten.Image) {
	st := ui.cpu.Status()

	var info strings.Builder
	fmt.Fprintf(&info, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&info, " %s\n", st)
	if ui.paused {
		info.WriteString(" PAUSED (P resumes, R steps, C resets)\n")
	}
	if ui.lastErr != nil {
		fmt.Fprintf(&info, " ERR: %v\n", ui.lastErr)
	}
	info.WriteString("\n")

	addr := st.PC
	for i := 0; i < disasmLines; i++ {
		text, size := cpu.Disassemble(ui.ram, addr)
		marker := " "
		if i == 0 {
			marker = "*"
		}
		info.WriteString(marker + text + "\n")
		next := uint32(addr) + uint32(size)
		if next > 0xffff {
			break
		}
		addr = uint16(next)
	}
	info.WriteString("\n")

	ui.writeDump(&info, " ZERO PAGE", 0x0000, 32)
	ui.writeDump(&info, " STACK", 0x01f0, 16)
	ui.writeDump(&info, " $0200", 0x0200, 16)

	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, info.String(), 0, 0)
}

func (ui *UI) writeDump(w *strings.Builder, title string, start uint16, n int) {
	w.WriteString(title + "\n")
	cells := ui.ram.Dump(start, n)
	for i := 0; i < len(cells); i += 16 {
		row := cells[i:min(i+16, len(cells))]
		fmt.Fprintf(w, " $%04X:", row[0].Addr)
		for _, cell := range row {
			fmt.Fprintf(w, " %02X", cell.Data)
		}
		w.WriteString("\n")
	}
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}

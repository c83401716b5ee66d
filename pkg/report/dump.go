package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/machine"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

// DumpSignals prints every signal on the bus, one per line, alongside the
// name of the component that produced it.
func DumpSignals(w io.Writer, m *machine.Machine, signals signal.Map) {
	names := make([]string, 0, len(signals))
	for name := range signals {
		names = append(names, name)
	}
	sort.Strings(names)

	signalWidth := 8
	sourceWidth := 8
	for _, name := range names {
		if len(name) > signalWidth {
			signalWidth = len(name)
		}
		if s := m.OutputSource(name); len(s) > sourceWidth {
			sourceWidth = len(s)
		}
	}

	for _, name := range names {
		v := signals[name]
		value := valueText(v)
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", signalWidth, name, sourceWidth, m.OutputSource(name), value)
	}
}

func valueText(v signal.Value) string {
	switch v.Kind {
	case signal.KindBool:
		return Bool(v.IsTrue())
	case signal.KindWord:
		return Word(v.AsWord())
	default:
		return v.Text
	}
}

// DumpInputUsage prints, one per line, how many components declare each
// signal name as an input or power source, right-justified to the widest
// name, under a bold "Input usage count:" header.
func DumpInputUsage(w io.Writer, usage map[string]int) {
	names := make([]string, 0, len(usage))
	width := 0
	for name := range usage {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(w, Bold("Input usage count:", true))
	for _, name := range names {
		fmt.Fprintf(w, "%*s = %d\n", width, name, usage[name])
	}
	fmt.Fprintln(w)
}

// windowBefore and windowAfter bound how many ROM words to show before and
// after the current PC.
const (
	windowBefore = 15
	windowAfter  = 16
	windowFull   = windowBefore + windowAfter + 1
)

// DumpMachine prints a three-column trace frame: a ROM window around the
// current PC, the RAM cells most recently written, and a summary of the
// architecturally visible registers (current and previous-cycle).
func DumpMachine(w io.Writer, m *machine.Machine) error {
	pcC, ok := m.Get("PC")
	if !ok {
		return fmt.Errorf("report: machine has no PC component")
	}
	pc := pcC.(*component.Register)

	aregC, _ := m.Get("AREG")
	areg := aregC.(*component.Register)
	dregC, _ := m.Get("DREG")
	dreg := dregC.(*component.Register)

	romC, _ := m.Get("ROM")
	rom := romC.(*component.ROM)

	ramC, _ := m.Get("RAM")
	ram := ramC.(*component.RAM)

	resetC, _ := m.Get("RESET")
	reset := resetC.(*component.Reset)

	prevC, _ := m.Get("PREV")
	prev := prevC.(*component.Mocked)

	words := rom.Words()
	disasm := rom.Disassembly()
	symbols := rom.Symbols()

	curPC := pc.Value()
	curA := areg.Value()
	curD := dreg.Value()
	curM := ram.Peek(curA)

	romLo := 0
	if int(curPC)-windowBefore > 0 {
		romLo = int(curPC) - windowBefore
	}
	romHi := romLo + windowFull
	if romHi > len(words) {
		romHi = len(words)
	}
	if romLo > romHi-windowFull && romHi-windowFull > 0 {
		romLo = romHi - windowFull
	}

	romLines := make([]string, 0, romHi-romLo)
	for x := romLo; x < romHi; x++ {
		asm := ""
		if x < len(disasm) {
			asm = disasm[x]
		}
		romLines = append(romLines, fmt.Sprintf("%5d %016b %s", x, words[x], asm))
	}
	romWidth := maxLen(romLines)
	for i := range romLines {
		romLines[i] = padRight(romLines[i], romWidth)
	}
	if idx := int(curPC) - romLo; idx >= 0 && idx < len(romLines) {
		romLines[idx] = bold + romLines[idx] + end
	}

	type ramRow struct {
		addr uint16
		text string
	}
	var recent []struct {
		when uint64
		addr uint16
	}
	for addr := uint16(0); int(addr) < ram.Size(); addr++ {
		if when := ram.WrittenAt(addr); when > 0 {
			recent = append(recent, struct {
				when uint64
				addr uint16
			}{when, addr})
		}
	}
	sort.Slice(recent, func(i, j int) bool { return recent[i].when > recent[j].when })
	if len(recent) > windowFull {
		recent = recent[:windowFull]
	}
	addrs := make([]uint16, len(recent))
	for i, r := range recent {
		addrs[i] = r.addr
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	blank := strings.Repeat(" ", len(symbols[0]))
	ramRows := make([]ramRow, 0, len(addrs))
	for _, addr := range addrs {
		name, ok := symbols[addr]
		if !ok {
			name = blank
		}
		value := ram.Peek(addr)
		ramRows = append(ramRows, ramRow{addr, fmt.Sprintf("%5d %s%6d%7d", addr, name, value, Signed(value))})
	}
	ramWidth := 4
	for _, r := range ramRows {
		if len(r.text) > ramWidth {
			ramWidth = len(r.text)
		}
	}
	ramLines := make([]string, len(ramRows))
	for i, r := range ramRows {
		text := padRight(r.text, ramWidth)
		if r.addr == curA {
			text = bold + text + end
		}
		ramLines[i] = text
	}

	state := []string{
		fmt.Sprintf("PC  = %5d", curPC),
		fmt.Sprintf("A   = %5d", curA),
		fmt.Sprintf("M   = %5d %s %016b", curM, Word(curM), curM),
		fmt.Sprintf("D   = %5d %s %016b", curD, Word(curD), curD),
		"",
		fmt.Sprintf("RST = %v", reset.Asserted()),
		"",
		fmt.Sprintf("_PC = %5d", prev.State()["_PC"].AsWord()),
		fmt.Sprintf("_A  = %5d", prev.State()["_A"].AsWord()),
		fmt.Sprintf("_M  = %5d %s %016b", prev.State()["_M"].AsWord(), Word(prev.State()["_M"].AsWord()), prev.State()["_M"].AsWord()),
		fmt.Sprintf("_D  = %5d %s %016b", prev.State()["_D"].AsWord(), Word(prev.State()["_D"].AsWord()), prev.State()["_D"].AsWord()),
		"",
		fmt.Sprintf("_RST= %v", prev.State()["_RESET"].IsTrue()),
	}
	stateWidth := maxLen(state)
	for i := range state {
		state[i] = padRight(state[i], stateWidth)
	}
	state[1] = Bold(state[1], curA != prev.State()["_A"].AsWord())
	state[2] = Bold(state[2], curM != prev.State()["_M"].AsWord())
	state[3] = Bold(state[3], curD != prev.State()["_D"].AsWord())

	rows := len(romLines)
	fmt.Fprintf(w, "+- ROM %s--+- RAM %s--+--%s--+\n",
		strings.Repeat("-", romWidth-4), strings.Repeat("-", ramWidth-4), strings.Repeat("-", stateWidth))
	for i := 0; i < rows; i++ {
		ramLine := strings.Repeat(" ", ramWidth)
		if i < len(ramLines) {
			ramLine = ramLines[i]
		}
		stateLine := strings.Repeat(" ", stateWidth)
		if i < len(state) {
			stateLine = state[i]
		}
		fmt.Fprintf(w, "|  %s  |  %s  |  %s  |\n", romLines[i], ramLine, stateLine)
	}
	fmt.Fprintf(w, "+------%s--+------%s--+--%s--+\n",
		strings.Repeat("-", romWidth-4), strings.Repeat("-", ramWidth-4), strings.Repeat("-", stateWidth))
	fmt.Fprintln(w)
	return nil
}

func maxLen(lines []string) int {
	m := 0
	for _, l := range lines {
		if len(l) > m {
			m = len(l)
		}
	}
	return m
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

package machine

import (
	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/signal"
)

// ramSize covers the full 15-bit address space of the HACK memory map
// (0..32767), including the memory-mapped screen (16384) and keyboard
// (24576) cells.
const ramSize = 32768

// BuildV1 wires the ten-phase relay datapath: the ALU result is held in
// ALUOUT, PC+1 comes from a separate incrementor (INCR) latched into PCINC,
// and AREG/DREG/PC latch from AMUX, ALUOUT and PCMUX. words and asm are the
// loaded program and its parallel disassembly (asm may be nil).
func BuildV1(words []uint16, asm []string) (*Machine, *component.Reset, *component.Clock, error) {
	reset := component.NewReset("RESET", []string{"RESET", "~RESET"}, -100)
	clock := component.NewClock("CLOCK", []string{"CLOCK"}, 0)
	sequencer := component.NewSequencer("SEQUENCER", "CLOCK", "RESET", 10, 0)

	matrix := component.NewMatrix("MATRIX",
		sequencerNames(10),
		map[string][]string{
			"MEM":       {"S0"},
			"CLRIN":     {"S0A"},
			"STOIN":     {"S0"},
			"DECODEON":  {"S3", "S4", "S5", "S6", "S7", "S8"},
			"ALUMUXON":  {"S1", "S2", "S3"},
			"ALUON":     {"S2", "S3"},
			"ALUOUTON":  {"S3", "S4", "S5", "S6"},
			"ALUCCON":   {"S3", "S4", "S5", "S6", "S7", "S8"},
			"CLRALU":    {"S3A"},
			"STOALU":    {"S3"},
			"AMUXON":    {"S3", "S4", "S5", "S6"},
			"PCMUXON":   {"S6", "S7", "S8"},
			"CLRMEM":    {"S4A"},
			"STOMEM":    {"S4"},
			"CLRAD":     {"S6A"},
			"STOAD":     {"S6"},
			"CLRPC":     {"S8A"},
			"STOPC":     {"S8"},
		}, 0)

	decoder := component.NewDecoder("DECODE", []string{"INSTR"}, []string{"DECODEON"}, -60)

	rom, err := component.NewROM("ROM", []string{"PC"}, []string{"ROM", "ASM"}, words, asm, 0)
	if err != nil {
		return nil, nil, nil, err
	}
	ram := component.NewRAM("RAM", []string{"AREG", "ALUOUT", "CLRMEM", "STOMEM", "STOM"}, nil, ramSize, 0)

	areg := component.NewRegister("AREG", []string{"AMUX", "CLRAD", "STOAD", "STOA"}, nil, -90)
	dreg := component.NewRegister("DREG", []string{"ALUOUT", "CLRAD", "STOAD", "STOD"}, nil, -80)
	pc := component.NewRegister("PC", []string{"PCMUX", "CLRPC", "STOPC", "TRUE"}, []string{"~RESET"}, -70)

	alu := component.NewALU("ALU", []string{"DREG", "ALUMUX"}, []string{"ALU", "CCZR", "CCNG"}, []string{"ALUON"}, -50)
	aluout := component.NewRegister("ALUOUT", []string{"ALU", "CLRALU", "STOALU", "TRUE"}, []string{"ALUOUTON"}, -40)
	alucc := component.NewConditionCodes("ALUCC", []string{"CCZR", "CCNG", "CLRALU", "STOALU", "TRUE"}, []string{"ZR", "NG"}, []string{"ALUCCON"}, -30)

	instr := component.NewRegister("INSTR", []string{"ROM", "CLRIN", "STOIN", "TRUE"}, nil, 0)
	inm := component.NewRegister("INM", []string{"RAM", "CLRIN", "STOIN", "TRUE"}, nil, 0)

	amux := component.NewMultiplexer("AMUX", []string{"CINST", "ALUOUT", "INSTR"}, []string{"AMUXON"}, 0)
	alumux := component.NewMultiplexer("ALUMUX", []string{"A", "INM", "AREG"}, []string{"ALUMUXON"}, 0)

	incr := component.NewIncrementor("INCR", []string{"PC"}, []string{"ALUON"}, true, 0)
	pcinc := component.NewRegister("PCINC", []string{"INCR", "CLRALU", "STOALU", "TRUE"}, nil, 0)

	branch := component.NewBranch("BRANCH", []string{"ZR", "NG", "JLT", "JEQ", "JGT"}, []string{"PCMUXON"}, 0)
	pcmux := component.NewMultiplexer("PCMUX", []string{"BRANCH", "AREG", "PCINC"}, []string{"PCMUXON"}, 0)

	prev := component.NewMocked("PREV", initialPrevState(), 0)

	components := []component.Component{
		reset, clock, rom, ram,
		areg, dreg, pc,
		alu, aluout, alucc,
		instr, inm,
		sequencer, matrix, decoder,
		amux, alumux,
		incr, pcinc,
		branch, pcmux,
		prev,
	}

	m, err := New(components)
	if err != nil {
		return nil, nil, nil, err
	}
	return m, reset, clock, nil
}

// BuildV2 wires the five-phase datapath: AREG is snapshotted into ASAV
// before the ALU runs, so a branch or STOA instruction can use the
// original address even if the same instruction also recomputes AREG.
func BuildV2(words []uint16, asm []string) (*Machine, *component.Reset, *component.Clock, error) {
	reset := component.NewReset("RESET", []string{"RESET", "~RESET"}, -100)
	clock := component.NewClock("CLOCK", []string{"CLOCK"}, 0)
	sequencer := component.NewSequencer("SEQUENCER", "CLOCK", "RESET", 5, 0)

	matrix := component.NewMatrix("MATRIX",
		sequencerNames(5),
		map[string][]string{
			"CLRIN":  {"S0A"},
			"STOIN":  {"S0"},
			"DECON":  {"S1", "S2", "S3"},
			"CLRXY":  {"S1A"},
			"STOXY":  {"S1"},
			"ALUON":  {"S2", "S3"},
			"CLROUT": {"S3A"},
			"STOOUT": {"S3"},
		}, 0)

	decoder := component.NewDecoder("DECODE", []string{"INSTR"}, []string{"DECON"}, -60)

	rom, err := component.NewROM("ROM", []string{"PC"}, []string{"ROM", "ASM"}, words, asm, 0)
	if err != nil {
		return nil, nil, nil, err
	}
	ram := component.NewRAM("RAM", []string{"ADDRMUX", "ALU", "CLROUT", "STOOUT", "STOM"}, nil, ramSize, 0)

	areg := component.NewRegister("AREG", []string{"AMUX", "CLROUT", "STOOUT", "STOA"}, nil, -90)
	dreg := component.NewRegister("DREG", []string{"ALU", "CLROUT", "STOOUT", "STOD"}, nil, -80)
	pc := component.NewRegister("PC", []string{"PCMUX", "CLROUT", "STOOUT", "TRUE"}, []string{"~RESET"}, -70)

	alumux := component.NewMultiplexer("ALUMUX", []string{"A", "INM", "AREG"}, []string{"STOXY"}, 0)

	asav := component.NewRegister("ASAV", []string{"AREG", "CLRIN", "STOIN", "TRUE"}, nil, -67)
	xreg := component.NewRegister("XREG", []string{"DREG", "CLRXY", "STOXY", "TRUE"}, nil, -65)
	yreg := component.NewRegister("YREG", []string{"ALUMUX", "CLRXY", "STOXY", "TRUE"}, nil, -63)

	alu := component.NewALU("ALU", []string{"XREG", "YREG"}, []string{"ALU", "ZR", "NG"}, []string{"ALUON"}, -50)

	instr := component.NewRegister("INSTR", []string{"ROM", "CLRIN", "STOIN", "TRUE"}, nil, 0)
	inm := component.NewRegister("INM", []string{"RAM", "CLRIN", "STOIN", "TRUE"}, nil, 0)

	amux := component.NewMultiplexer("AMUX", []string{"CINST", "ALU", "INSTR"}, []string{"ALUON"}, 0)
	addrmux := component.NewMultiplexer("ADDRMUX", []string{"STOIN", "AREG", "ASAV"}, nil, 0)

	incr := component.NewIncrementor("INCR", []string{"PC"}, []string{"STOXY"}, true, 0)
	pcinc := component.NewRegister("PCINC", []string{"INCR", "CLRXY", "STOXY", "TRUE"}, []string{"DECON"}, 0)

	branch := component.NewBranch("BRANCH", []string{"ZR", "NG", "JLT", "JEQ", "JGT"}, []string{"ALUON"}, 0)

	jmpmux := component.NewMultiplexer("JMPMUX", []string{"STOA", "ALU", "ASAV"}, []string{"ALUON"}, 0)
	pcmux := component.NewMultiplexer("PCMUX", []string{"BRANCH", "JMPMUX", "PCINC"}, []string{"ALUON"}, 0)

	prev := component.NewMocked("PREV", initialPrevState(), 0)

	components := []component.Component{
		reset, clock, sequencer, matrix, decoder,
		rom, ram,
		areg, dreg, pc,
		asav, xreg, yreg,
		alu,
		instr, inm,
		amux, alumux, addrmux,
		incr,
		pcinc,
		branch,
		jmpmux,
		pcmux,
		prev,
	}

	m, err := New(components)
	if err != nil {
		return nil, nil, nil, err
	}
	return m, reset, clock, nil
}

func sequencerNames(ticks int) []string {
	return component.SequencerOutputNames(ticks)
}

// initialPrevState seeds the PREV snapshot register. The reference
// initializes _PC to -1 so a free-run loop's first halt check can never
// false-positive; our bus is natively unsigned 16-bit, so that guard is
// instead expressed as the driver loop's own control flow (see
// pkg/sim.RunUntilHalt), and _PC here starts at the same 0 every real
// cycle will promptly overwrite.
func initialPrevState() signal.Map {
	return signal.Map{
		"_A":     signal.Word(0),
		"_D":     signal.Word(0),
		"_PC":    signal.Word(0),
		"_RESET": signal.False,
		"_M":     signal.Word(0),
	}
}

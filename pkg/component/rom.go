package component

import (
	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/signal"
)

// ErrROMOutOfBounds is returned when PC addresses a location outside the
// loaded program.
var ErrROMOutOfBounds = errors.New("ROM address out of bounds")

// ROM holds the machine-code program and its parallel disassembly, indexed
// by PC, plus the symbol table derived from the assembly text (see
// BuildSymbolTable). Power-off returns the fixed ROM=0x0000, ASM="@0" pair,
// the encoding of an @0 instruction.
type ROM struct {
	Base
	addrName string
	romName  string
	asmName  string

	words  []uint16
	asm    []string
	symbol SymbolTable
}

// NewROM builds a ROM over the given program words and (optional, may be
// nil) parallel disassembly lines. If asm is non-nil its length must equal
// len(words); a symbol table is derived from it via BuildSymbolTable.
func NewROM(name string, inputs, outputs []string, words []uint16, asm []string, seq int) (*ROM, error) {
	if len(inputs) != 1 {
		panic("component: ROM requires exactly 1 input: PC")
	}
	if len(outputs) == 0 {
		outputs = []string{"ROM", "ASM"}
	}
	if len(outputs) != 2 {
		panic("component: ROM requires exactly 2 outputs: ROM, ASM")
	}

	var table SymbolTable
	if asm != nil {
		if len(asm) != len(words) {
			return nil, errors.Errorf("ROM: %d machine words but %d assembly lines", len(words), len(asm))
		}
		var err error
		table, err = BuildSymbolTable(asm)
		if err != nil {
			return nil, err
		}
	} else {
		asm = make([]string, len(words))
	}

	return &ROM{
		Base:     NewBase(name, inputs, outputs, nil, seq),
		addrName: inputs[0],
		romName:  outputs[0],
		asmName:  outputs[1],
		words:    words,
		asm:      asm,
		symbol:   table,
	}, nil
}

// Symbols returns the derived symbol table (address -> display name).
func (r *ROM) Symbols() SymbolTable { return r.symbol }

// Words returns the loaded program, lowest address first.
func (r *ROM) Words() []uint16 { return r.words }

// Disassembly returns the parallel assembly-text lines.
func (r *ROM) Disassembly() []string { return r.asm }

func (r *ROM) Update(signals signal.Map) error {
	if err := r.Read(signals); err != nil {
		return err
	}
	if !r.Powered() {
		r.SetWord(r.romName, 0x0000)
		r.SetText(r.asmName, "@0")
		return nil
	}

	pc := r.InputWord(r.addrName)
	if int(pc) >= len(r.words) {
		return errors.Wrapf(ErrROMOutOfBounds, "PC=%d (ROM holds %d words)", pc, len(r.words))
	}

	r.SetWord(r.romName, r.words[pc])
	r.SetText(r.asmName, r.asm[pc])
	return nil
}

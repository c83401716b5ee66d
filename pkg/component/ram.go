package component

import (
	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/signal"
)

// ErrRAMOutOfBounds is returned when ADDR addresses a cell outside the
// declared size.
var ErrRAMOutOfBounds = errors.New("RAM address out of bounds")

// RAM is a word-addressable bank of Register-shaped cells sharing one
// ADDR/DATA/CLRMEM/STOMEM/STOM input set. Only the addressed cell is ever
// touched; every other cell holds its latched value across the round.
// WHEN records the most recent write time for each address, purely for the
// reporter's "recent writes" framing - it has no effect on simulation.
type RAM struct {
	Base
	addrName, dataName, clrName, stoName, gateName string
	outputName                                     string

	cells []uint16
	when  []uint64
	clock uint64
}

// NewRAM builds a RAM of size words, reading inputs named
// [addr, data, clr, sto, gate] in that order.
func NewRAM(name string, inputs []string, power []string, size int, seq int) *RAM {
	if len(inputs) != 5 {
		panic("component: RAM requires exactly 5 inputs: ADDR, DATA, CLRMEM, STOMEM, STOM")
	}
	b := NewBase(name, inputs, nil, power, seq)
	return &RAM{
		Base:       b,
		addrName:   inputs[0],
		dataName:   inputs[1],
		clrName:    inputs[2],
		stoName:    inputs[3],
		gateName:   inputs[4],
		outputName: b.OutputNames()[0],
		cells:      make([]uint16, size),
		when:       make([]uint64, size),
	}
}

// Size returns the number of addressable words.
func (r *RAM) Size() int { return len(r.cells) }

// Peek returns the word latched at addr without going through Update.
func (r *RAM) Peek(addr uint16) uint16 { return r.cells[addr] }

// Poke sets the word at addr directly, bypassing gate logic, and stamps
// WHEN so the write shows up in the reporter's recently-written window.
// Used by the test interpreter's `set` command and machine bootstrap code.
func (r *RAM) Poke(addr, v uint16) {
	r.cells[addr] = v
	r.clock++
	r.when[addr] = r.clock
}

// WrittenAt returns the clock tick of the most recent write to addr, for
// the reporter's recent-writes framing.
func (r *RAM) WrittenAt(addr uint16) uint64 { return r.when[addr] }

func (r *RAM) Update(signals signal.Map) error {
	if err := r.Read(signals); err != nil {
		return err
	}
	r.clock++

	if !r.Powered() {
		for i := range r.cells {
			r.cells[i] = 0
		}
		r.SetWord(r.outputName, 0)
		return nil
	}

	addr := r.InputWord(r.addrName)
	if int(addr) >= len(r.cells) {
		return errors.Wrapf(ErrRAMOutOfBounds, "ADDR=%d (RAM holds %d words)", addr, len(r.cells))
	}

	if r.InputBool(r.gateName) {
		incoming := uint16(0)
		if r.InputBool(r.stoName) {
			incoming = r.InputWord(r.dataName)
		}
		if r.InputBool(r.clrName) {
			r.cells[addr] = incoming
		} else {
			r.cells[addr] = incoming | r.cells[addr]
		}
		if r.InputBool(r.stoName) || r.InputBool(r.clrName) {
			r.when[addr] = r.clock
		}
	}
	r.SetWord(r.outputName, r.cells[addr])
	return nil
}

// Package script interprets the flattened command list pkg/machine.Load
// produces from a .tst file, driving a machine.Machine through it and
// diffing its "output" commands against a parsed .cmp table.
package script

import (
	"io"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trebor-relay/hacksim/pkg/component"
	"github.com/trebor-relay/hacksim/pkg/machine"
	"github.com/trebor-relay/hacksim/pkg/report"
	"github.com/trebor-relay/hacksim/pkg/signal"
	"github.com/trebor-relay/hacksim/pkg/sim"
)

var (
	// ErrMalformedVariable is returned when a `set`/output-list token is
	// neither "pc" nor "name[index]".
	ErrMalformedVariable = errors.New("malformed or unknown variable")
	// ErrUnknownVariable is returned for a syntactically valid reference to
	// anything other than pc or ram[n].
	ErrUnknownVariable = errors.New("unknown variable")
	// ErrOutputListMismatch is returned when a script's output-list does not
	// match the header row of the supplied results table.
	ErrOutputListMismatch = errors.New("output-list does not match results header")
	// ErrEmptyLoopStack is returned by a `}` with no matching `repeat`.
	ErrEmptyLoopStack = errors.New("unmatched } with empty loop stack")
	// ErrUnknownCommand is returned for any script command this interpreter
	// does not recognize.
	ErrUnknownCommand = errors.New("unknown script command")
	// ErrMismatch is returned when an `output` command's values disagree
	// with the corresponding row of the results table.
	ErrMismatch = errors.New("output mismatch")
	// ErrTooManyOutputs is returned when the script emits more `output`
	// rows than the results table has entries for.
	ErrTooManyOutputs = errors.New("more outputs than test results")
)

// ref is a parsed variable reference: either the bare string "pc", or a
// ("ram", index) pair.
type ref struct {
	isPC  bool
	index int
}

var ramIndex = regexp.MustCompile(`^(.+?)\[(-?[0-9]+)\]$`)

func parseRef(token string) (ref, error) {
	if token == "pc" {
		return ref{isPC: true}, nil
	}
	m := ramIndex.FindStringSubmatch(token)
	if m == nil {
		return ref{}, errors.Wrapf(ErrMalformedVariable, "%q", token)
	}
	if m[1] != "ram" {
		return ref{}, errors.Wrapf(ErrUnknownVariable, "%q", token)
	}
	idx, err := strconv.Atoi(m[2])
	if err != nil {
		return ref{}, errors.Wrapf(ErrMalformedVariable, "%q", token)
	}
	return ref{index: idx}, nil
}

// signed reinterprets a 16-bit word as a 2's-complement display value:
// anything >= 32768 is negative.
func signed(v uint16) int {
	if v < 32768 {
		return int(v)
	}
	return int(v) - 65536
}

// Interpreter drives one machine through one test script.
type Interpreter struct {
	m      *machine.Machine
	clock  *component.Clock
	rng    *rand.Rand
	pc     *component.Register
	ram    *component.RAM
	output [][]string
	trace  io.Writer
}

// Trace directs Interpreter to print the full machine state frame after
// every ticktock. A nil w (the default) disables tracing.
func (in *Interpreter) Trace(w io.Writer) { in.trace = w }

// New builds an Interpreter bound to m. m must already have been bootstrapped
// (see sim.Bootstrap) so its PC, RAM and PREV components are live.
func New(m *machine.Machine, clock *component.Clock, rng *rand.Rand) (*Interpreter, error) {
	pcC, ok := m.Get("PC")
	if !ok {
		return nil, errors.New("script: machine has no PC component")
	}
	pc, ok := pcC.(*component.Register)
	if !ok {
		return nil, errors.New("script: PC is not a Register")
	}
	ramC, ok := m.Get("RAM")
	if !ok {
		return nil, errors.New("script: machine has no RAM component")
	}
	ram, ok := ramC.(*component.RAM)
	if !ok {
		return nil, errors.New("script: RAM is not a RAM component")
	}
	return &Interpreter{m: m, clock: clock, rng: rng, pc: pc, ram: ram}, nil
}

func (in *Interpreter) varGet(r ref) (uint16, error) {
	if r.isPC {
		return in.pc.Value(), nil
	}
	if r.index < 0 || r.index >= in.ram.Size() {
		return 0, errors.Errorf("RAM[%d] is out of range", r.index)
	}
	return in.ram.Peek(uint16(r.index)), nil
}

func (in *Interpreter) varSet(r ref, value uint16) error {
	if r.isPC {
		in.pc.Load(value)
		return nil
	}
	if r.index < 0 || r.index >= in.ram.Size() {
		return errors.Errorf("RAM[%d] is out of range", r.index)
	}
	in.ram.Poke(uint16(r.index), value)
	return nil
}

type loopFrame struct {
	pc     int
	remain int
}

// Run walks script (as produced by machine.Load) against results (the parsed
// .cmp table), mutating signals as it executes `ticktock` commands. It
// returns the final signal map and a non-nil error on the first mismatch or
// malformed command, stopping immediately rather than collecting every
// failure in one pass.
func (in *Interpreter) Run(script []string, results [][]string, signals signal.Map) (signal.Map, error) {
	var outputList []ref
	var header []string
	stack := make([]loopFrame, 0)

	testPC := 0
	for testPC < len(script) {
		line := script[testPC]
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			testPC++
			continue
		}
		cmd := strings.ToLower(tokens[0])

		switch cmd {
		case "load", "output-file", "compare-to":
			// Ignored: these are implied by the files already loaded.

		case "output-list":
			header = tokens[1:]
			if len(results) == 0 || !equalFields(header, results[0]) {
				return signals, errors.Wrapf(ErrOutputListMismatch, "script says %v, results header is %v", header, results)
			}
			in.output = append(in.output, header)
			outputList = make([]ref, len(header))
			for i, tok := range header {
				r, err := parseRef(tok)
				if err != nil {
					return signals, err
				}
				outputList[i] = r
			}

		case "set":
			if len(tokens) < 3 {
				return signals, errors.Wrapf(ErrMalformedVariable, "set %v", tokens)
			}
			r, err := parseRef(tokens[1])
			if err != nil {
				return signals, err
			}
			value, err := strconv.ParseInt(tokens[2], 10, 32)
			if err != nil {
				return signals, errors.Wrapf(ErrMalformedVariable, "set value %q", tokens[2])
			}
			if err := in.varSet(r, uint16(value)&0xFFFF); err != nil {
				return signals, err
			}

		case "repeat":
			if len(tokens) < 2 {
				return signals, errors.Wrapf(ErrMalformedVariable, "repeat %v", tokens)
			}
			count, err := strconv.Atoi(tokens[1])
			if err != nil {
				return signals, errors.Wrapf(ErrMalformedVariable, "repeat count %q", tokens[1])
			}
			stack = append(stack, loopFrame{pc: testPC, remain: count})

		case "}":
			halted, err := sim.Halted(in.m)
			if err != nil {
				return signals, err
			}
			switch {
			case halted:
				if len(stack) == 0 {
					return signals, ErrEmptyLoopStack
				}
				stack = stack[:len(stack)-1]
			case len(stack) == 0:
				return signals, ErrEmptyLoopStack
			case stack[len(stack)-1].remain > 1:
				stack[len(stack)-1].remain--
				testPC = stack[len(stack)-1].pc
			default:
				stack = stack[:len(stack)-1]
			}

		case "ticktock":
			var err error
			signals, err = sim.Cycle(in.m, in.clock, signals, in.rng)
			if err != nil {
				return signals, err
			}
			if in.trace != nil {
				report.DumpMachine(in.trace, in.m)
			}

		case "output":
			row := make([]string, len(outputList))
			for i, r := range outputList {
				v, err := in.varGet(r)
				if err != nil {
					return signals, err
				}
				row[i] = strconv.Itoa(signed(v))
			}
			in.output = append(in.output, row)
			rowIndex := len(in.output) - 1
			if rowIndex >= len(results) {
				return signals, errors.Wrapf(ErrTooManyOutputs, "row %d", rowIndex)
			}
			if !equalFields(row, results[rowIndex]) {
				return signals, errors.Wrapf(ErrMismatch, "row %d: got %v, want %v", rowIndex, row, results[rowIndex])
			}

		default:
			return signals, errors.Wrapf(ErrUnknownCommand, "%q", line)
		}

		testPC++
	}

	return signals, nil
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

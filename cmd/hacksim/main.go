package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/teris-io/cli"

	"github.com/trebor-relay/hacksim/pkg/machine"
	"github.com/trebor-relay/hacksim/pkg/report"
	"github.com/trebor-relay/hacksim/pkg/script"
	"github.com/trebor-relay/hacksim/pkg/sim"
)

var Description = strings.ReplaceAll(`
Hacksim validates a relay-based realization of the Hack computer by running
it, in software, against a test folder containing a compiled program and
(optionally) a validation script and expected results, in the style of the
Nand2Tetris CPU emulator.
`, "\n", " ")

var Hacksim = cli.New(Description).
	WithArg(cli.NewArg("testdir", "Folder holding NAME.hack (required) and NAME.asm/.tst/.cmp (optional)")).
	WithOption(cli.NewOption("v2", "Use the five-phase datapath instead of the default ten-phase one").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("trace", "Print the machine state frame after every instruction cycle").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("max-cycles", "Cycle budget for a free-run (no .tst script) program, default 100000").
		WithType(cli.TypeString)).
	WithAction(Handler)

func Handler(args []string, options map[string]string) int {
	if len(args) < 1 {
		fmt.Println("ERROR: missing test directory argument, use --help")
		return -1
	}
	dir := args[0]
	name := filepath.Base(strings.TrimRight(dir, string(filepath.Separator)))

	artifacts, err := machine.Load(dir, name)
	if err != nil {
		fmt.Printf("ERROR: loading %s: %s\n", dir, err)
		return -1
	}
	fmt.Printf("# Loaded %d words from %s.hack\n", len(artifacts.Words), name)

	build := machine.BuildV1
	if options["v2"] == "true" {
		build = machine.BuildV2
	}

	m, reset, clock, err := build(artifacts.Words, artifacts.ASM)
	if err != nil {
		fmt.Printf("ERROR: building machine: %s\n", err)
		return -1
	}

	rng := rand.New(rand.NewSource(1))
	signals, err := sim.Bootstrap(m, reset, clock, rng)
	if err != nil {
		fmt.Printf("ERROR: bootstrap: %s\n", err)
		return -1
	}

	if options["trace"] == "true" {
		report.DumpInputUsage(os.Stdout, m.InputUsage())
	}

	if artifacts.Script != nil {
		interp, err := script.New(m, clock, rng)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return -1
		}
		if options["trace"] == "true" {
			interp.Trace(os.Stdout)
		}
		if _, err := interp.Run(artifacts.Script, artifacts.Results, signals); err != nil {
			fmt.Println(report.Red(fmt.Sprintf("FAILED: %s", err)))
			return -1
		}
		fmt.Println(report.Green("# SCRIPT VALIDATED CORRECTLY"))
		return 0
	}

	maxCycles := 100000
	if s := options["max-cycles"]; s != "" {
		if n, err := fmt.Sscanf(s, "%d", &maxCycles); err != nil || n != 1 {
			fmt.Printf("ERROR: invalid --max-cycles %q\n", s)
			return -1
		}
	}

	count := 0
	traceOn := options["trace"] == "true"
	for {
		signals, err = sim.Cycle(m, clock, signals, rng)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return -1
		}
		count++
		if traceOn {
			report.DumpMachine(os.Stdout, m)
		}
		halted, err := sim.Halted(m)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return -1
		}
		if halted {
			break
		}
		if count >= maxCycles {
			fmt.Printf("ERROR: %s\n", sim.ErrRunawayExecution)
			return -1
		}
	}
	fmt.Printf("# Ran %d cycles and reached the terminating loop\n", count)
	if err := report.DumpMachine(os.Stdout, m); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return -1
	}
	return 0
}

func main() { os.Exit(Hacksim.Run(os.Args, os.Stdout)) }

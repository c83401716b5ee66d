package component

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	pc "github.com/prataprc/goparsec"
)

// SymbolTable maps a RAM address to the display name the reporter should
// use for it: the architectural R0..R15/SP/LCL/ARG/THIS/THAT/SCREEN/KBD
// names plus any user variable the assembly program references, right-
// padded to the widest entry. It never contains ROM line addresses -
// (LABEL) declarations resolve @ references but are not displayed here.
type SymbolTable map[uint16]string

// Parser combinators for the two token shapes BuildSymbolTable must
// recognize inside an already-located match: "@NAME" and "(NAME)", built on
// the same identifier grammar an assembler's parser would use, just
// retargeted from "build an AST to assemble" to "validate and extract a
// name to annotate a disassembly".
var (
	symbolAST  = pc.NewAST("rom-symbol-ref", 0)
	pSymbolTok = pc.Token(`[A-Za-z_.$:][0-9A-Za-z_.$:]*`, "SYMBOL")
	pAtRef     = symbolAST.And("at-ref", nil, pc.Atom("@", "@"), pSymbolTok)
	pLabelRef  = symbolAST.And("label-ref", nil, pc.Atom("(", "("), pSymbolTok, pc.Atom(")", ")"))
)

var (
	atPattern    = regexp.MustCompile(`@[A-Za-z_.$:][0-9A-Za-z_.$:]*`)
	labelPattern = regexp.MustCompile(`\([A-Za-z_.$:][0-9A-Za-z_.$:]*\)`)
)

func scanAtRef(match string) (string, error) {
	root, _ := symbolAST.Parsewith(pAtRef, pc.NewScanner([]byte(match)))
	if root == nil || root.GetName() != "at-ref" || len(root.GetChildren()) != 2 {
		return "", errors.Errorf("malformed @ reference %q", match)
	}
	return root.GetChildren()[1].GetValue(), nil
}

func scanLabelRef(match string) (string, error) {
	root, _ := symbolAST.Parsewith(pLabelRef, pc.NewScanner([]byte(match)))
	if root == nil || root.GetName() != "label-ref" || len(root.GetChildren()) != 3 {
		return "", errors.Errorf("malformed label reference %q", match)
	}
	return root.GetChildren()[1].GetValue(), nil
}

var builtinSymbols = map[uint16]string{
	0: "R0/SP", 1: "R1/LCL", 2: "R2/ARG", 3: "R3/THIS", 4: "R4/THAT",
	5: "R5", 6: "R6", 7: "R7", 8: "R8", 9: "R9", 10: "R10", 11: "R11",
	12: "R12", 13: "R13", 14: "R14", 15: "R15",
	16384: "SCREEN", 24576: "KBD",
}

var knownSymbolNames = []string{
	"R0", "SP", "R1", "LCL", "R2", "ARG", "R3", "THIS", "R4", "THAT",
	"R5", "R6", "R7", "R8", "R9", "R10", "R11", "R12", "R13", "R14", "R15",
	"SCREEN", "KBD",
}

type symbolRef struct {
	resolved bool
	addr     uint16
}

// BuildSymbolTable scans assembly source lines for @NAME references and
// (LABEL) definitions, seeds the architectural names, resolves forward
// references to labels, and allocates a fresh RAM address (starting at 16,
// in first-seen order) to every referenced name that is neither an
// architectural name nor a label. A name labeled twice is a fatal error.
func BuildSymbolTable(asmLines []string) (SymbolTable, error) {
	symbols := make(map[uint16]string, len(builtinSymbols))
	for addr, name := range builtinSymbols {
		symbols[addr] = name
	}
	known := make(map[string]bool, len(knownSymbolNames))
	for _, name := range knownSymbolNames {
		known[name] = true
	}

	found := map[string]symbolRef{}
	var order []string

	for addr, line := range asmLines {
		if m := atPattern.FindString(line); m != "" {
			name, err := scanAtRef(m)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", addr)
			}
			if _, seen := found[name]; !seen {
				found[name] = symbolRef{}
				order = append(order, name)
			}
		}
		if m := labelPattern.FindString(line); m != "" {
			name, err := scanLabelRef(m)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", addr)
			}
			existing, seen := found[name]
			switch {
			case !seen:
				found[name] = symbolRef{resolved: true, addr: uint16(addr)}
				order = append(order, name)
			case !existing.resolved:
				found[name] = symbolRef{resolved: true, addr: uint16(addr)}
			default:
				return nil, errors.Errorf("duplicate label %q redefined at line %d", name, addr)
			}
		}
	}

	next := uint16(16)
	for _, name := range order {
		if known[name] {
			continue
		}
		if !found[name].resolved {
			symbols[next] = name
			known[name] = true
			next++
		}
	}

	width := 0
	for _, name := range symbols {
		if len(name) > width {
			width = len(name)
		}
	}
	padded := make(SymbolTable, len(symbols))
	for addr, name := range symbols {
		padded[addr] = name + strings.Repeat(" ", width-len(name))
	}
	return padded, nil
}

package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// ALU is the six-control-bit HACK arithmetic-logic unit. Inputs are the two
// 16-bit operands (XREG, YREG) and the six control bits ZX, NX, ZY, NY, F,
// NO; outputs are the 16-bit result plus the ZR and NG flags. Gated by
// ALUON (or whatever power name the caller wires in).
type ALU struct {
	Base
	xName, yName string
	outName      string
	zrName       string
	ngName       string
}

// NewALU builds an ALU. inputs must be [xreg, yreg] (the six control bit
// names are always the literal ZX, NX, ZY, NY, F, NO per the HACK spec);
// outputs default to [alu-out, ZR, NG]-shaped triples taken from outputs.
func NewALU(name string, inputs, outputs []string, power []string, seq int) *ALU {
	if len(inputs) != 2 {
		panic("component: ALU requires exactly 2 operand inputs: XREG, YREG")
	}
	if len(outputs) == 0 {
		outputs = []string{"ALU", "ZR", "NG"}
	}
	if len(outputs) != 3 {
		panic("component: ALU requires exactly 3 outputs: value, ZR, NG")
	}
	allInputs := append(append([]string{}, inputs...), "ZX", "NX", "ZY", "NY", "F", "NO")
	return &ALU{
		Base:    NewBase(name, allInputs, outputs, power, seq),
		xName:   inputs[0],
		yName:   inputs[1],
		outName: outputs[0],
		zrName:  outputs[1],
		ngName:  outputs[2],
	}
}

func (a *ALU) Update(signals signal.Map) error {
	if err := a.Read(signals); err != nil {
		return err
	}
	if !a.Powered() {
		a.SetWord(a.outName, 0)
		a.SetBool(a.zrName, false)
		a.SetBool(a.ngName, false)
		return nil
	}

	x := a.InputWord(a.xName)
	y := a.InputWord(a.yName)

	if a.InputBool("ZX") {
		x = 0
	}
	if a.InputBool("NX") {
		x = ^x
	}
	if a.InputBool("ZY") {
		y = 0
	}
	if a.InputBool("NY") {
		y = ^y
	}

	var out uint16
	if a.InputBool("F") {
		out = x + y
	} else {
		out = x & y
	}
	if a.InputBool("NO") {
		out = ^out
	}

	a.SetWord(a.outName, out)
	a.SetBool(a.zrName, out == 0)
	a.SetBool(a.ngName, out&0x8000 != 0)
	return nil
}

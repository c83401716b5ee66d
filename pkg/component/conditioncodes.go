package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// ConditionCodes is a Register-shaped latch for the two ALU flag bits ZR and
// NG, gated the same way a Register is but per-bit and boolean-valued.
type ConditionCodes struct {
	Base
	zrInName, ngInName, clrName, stoName, gateName string
	zrOutName, ngOutName                           string
	zr, ng                                         bool
}

// NewConditionCodes builds the flag latch. inputs must be [ccZrIn, ccNgIn,
// clr, sto, gate]; outputs default to ["ZR", "NG"].
func NewConditionCodes(name string, inputs, outputs []string, power []string, seq int) *ConditionCodes {
	if len(inputs) != 5 {
		panic("component: ConditionCodes requires exactly 5 inputs: CCZR, CCNG, CLR, STO, GATE")
	}
	if len(outputs) == 0 {
		outputs = []string{"ZR", "NG"}
	}
	return &ConditionCodes{
		Base:      NewBase(name, inputs, outputs, power, seq),
		zrInName:  inputs[0],
		ngInName:  inputs[1],
		clrName:   inputs[2],
		stoName:   inputs[3],
		gateName:  inputs[4],
		zrOutName: outputs[0],
		ngOutName: outputs[1],
	}
}

func (c *ConditionCodes) Update(signals signal.Map) error {
	if err := c.Read(signals); err != nil {
		return err
	}
	if !c.Powered() {
		c.ZeroBoolOutputs()
		c.zr, c.ng = false, false
		return nil
	}

	if c.InputBool(c.gateName) {
		sto := c.InputBool(c.stoName)
		zrIn, ngIn := false, false
		if sto {
			zrIn = c.InputBool(c.zrInName)
			ngIn = c.InputBool(c.ngInName)
		}
		if c.InputBool(c.clrName) {
			c.zr, c.ng = zrIn, ngIn
		} else {
			c.zr = zrIn || c.zr
			c.ng = ngIn || c.ng
		}
	}
	c.SetBool(c.zrOutName, c.zr)
	c.SetBool(c.ngOutName, c.ng)
	return nil
}

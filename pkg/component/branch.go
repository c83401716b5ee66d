package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// Branch combines the ALU flags with the decoded jump bits into a single
// BRANCH decision: JEQ&&ZR || JLT&&NG || JGT&&!(NG||ZR).
type Branch struct {
	Base
	outputName string
}

// NewBranch builds a Branch over inputs [ZR, NG, JLT, JEQ, JGT].
func NewBranch(name string, inputs []string, power []string, seq int) *Branch {
	if len(inputs) != 5 {
		panic("component: Branch requires exactly 5 inputs: ZR, NG, JLT, JEQ, JGT")
	}
	b := NewBase(name, inputs, []string{"BRANCH"}, power, seq)
	return &Branch{Base: b, outputName: "BRANCH"}
}

func (br *Branch) Update(signals signal.Map) error {
	if err := br.Read(signals); err != nil {
		return err
	}
	if !br.Powered() {
		br.SetBool(br.outputName, false)
		return nil
	}
	zr := br.InputBool("ZR")
	ng := br.InputBool("NG")
	jlt := br.InputBool("JLT")
	jeq := br.InputBool("JEQ")
	jgt := br.InputBool("JGT")

	branch := (jeq && zr) || (jlt && ng) || (jgt && !(ng || zr))
	br.SetBool(br.outputName, branch)
	return nil
}

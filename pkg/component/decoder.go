package component

import "github.com/trebor-relay/hacksim/pkg/signal"

// Decoder splits a 16-bit instruction word into the control bits that drive
// the rest of the datapath. Gated by whichever sequencer phase the caller
// wires in as power (DECODEON in the ten-phase machine, DECON in the
// five-phase one); outside that window every control line drops.
type Decoder struct {
	Base
	instrName string
}

var decoderOutputs = []string{
	"CINST", "A",
	"ZX", "NX", "ZY", "NY", "F", "NO",
	"STOA", "STOD", "STOM",
	"JLT", "JEQ", "JGT",
}

// NewDecoder builds a Decoder reading the named instruction input.
func NewDecoder(name string, inputs []string, power []string, seq int) *Decoder {
	if len(inputs) != 1 {
		panic("component: Decoder requires exactly 1 input: INSTR")
	}
	return &Decoder{
		Base:      NewBase(name, inputs, decoderOutputs, power, seq),
		instrName: inputs[0],
	}
}

func (d *Decoder) Update(signals signal.Map) error {
	if err := d.Read(signals); err != nil {
		return err
	}
	if !d.Powered() {
		d.ZeroBoolOutputs()
		return nil
	}

	instr := d.InputWord(d.instrName)
	bit := func(n uint) bool { return instr&(1<<(15-n)) != 0 }

	cinst := bit(0)
	ainst := !cinst

	d.SetBool("CINST", cinst)
	d.SetBool("A", bit(3) && cinst)
	d.SetBool("ZX", bit(4) && cinst)
	d.SetBool("NX", bit(5) && cinst)
	d.SetBool("ZY", bit(6) && cinst)
	d.SetBool("NY", bit(7) && cinst)
	d.SetBool("F", bit(8) && cinst)
	d.SetBool("NO", bit(9) && cinst)
	d.SetBool("STOA", bit(10) || ainst)
	d.SetBool("STOD", bit(11) && cinst)
	d.SetBool("STOM", bit(12) && cinst)
	d.SetBool("JLT", bit(13) && cinst)
	d.SetBool("JEQ", bit(14) && cinst)
	d.SetBool("JGT", bit(15) && cinst)
	return nil
}

package fighter

import "github.com/nathoo/cancelcore/types"

// ResetInt sets an integer register to 0.
func ResetInt(f Fighter, id types.RegisterID) {
	f.SetInt(id, 0)
}

// ResetFloat sets a float register to 0.
func ResetFloat(f Fighter, id types.RegisterID) {
	f.SetFloat(id, 0)
}

// AddInt adds amount to an integer register.
func AddInt(f Fighter, id types.RegisterID, amount int) {
	f.SetInt(id, f.Int(id)+amount)
}

// AddFloat adds amount to a float register.
func AddFloat(f Fighter, id types.RegisterID, amount float32) {
	f.SetFloat(id, f.Float(id)+amount)
}

// CountDown subtracts amount from a float register, scaled by the fighter's
// own slow rate and the global one.
func CountDown(f Fighter, id types.RegisterID, amount, globalSlowRate float32) {
	f.SetFloat(id, f.Float(id)-amount*f.SlowRate()*globalSlowRate)
}

// UpdateMeter adds amount to a meter register and keeps it within [0, maxMeter].
func UpdateMeter(f Fighter, id types.RegisterID, amount, maxMeter float32) {
	meter := f.Float(id) + amount
	if meter < 0 {
		meter = 0
	}
	if meter > maxMeter {
		meter = maxMeter
	}
	f.SetFloat(id, meter)
}

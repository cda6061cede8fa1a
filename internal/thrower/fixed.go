package thrower

// Fixed knocks the same pins on every throw, limited to those still standing.
type Fixed struct {
	pins []int
}

func NewFixed(pins ...int) Fixed {
	return Fixed{pins: append([]int(nil), pins...)}
}

// Strike knocks every standing pin.
func Strike() Func {
	return func(standing []int) []int {
		return append([]int{}, standing...)
	}
}

// Gutter never knocks anything.
func Gutter() Fixed {
	return Fixed{}
}

func (f Fixed) ExecuteThrow(standing []int) []int {
	return keepStanding(standing, f.pins)
}

// Func adapts a plain function to bowling.Executor.
type Func func(standing []int) []int

func (f Func) ExecuteThrow(standing []int) []int {
	return f(standing)
}

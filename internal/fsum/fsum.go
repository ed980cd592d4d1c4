package fsum

import "math"

// Accumulator sums float64 values without intermediate rounding error.
// The zero value is ready to use. It is not safe for concurrent use.
type Accumulator struct {
	partials []float64

	// special collects infinities and NaNs, which cannot live in partials.
	special    float64
	hasSpecial bool
	n          int
}

// Add adds x to the running sum.
func (a *Accumulator) Add(x float64) {
	a.n++

	if math.IsInf(x, 0) || math.IsNaN(x) {
		a.special += x
		a.hasSpecial = true
		return
	}

	i := 0
	for _, y := range a.partials {
		if math.Abs(x) < math.Abs(y) {
			x, y = y, x
		}
		hi := x + y
		lo := y - (hi - x)
		if lo != 0 {
			a.partials[i] = lo
			i++
		}
		x = hi
	}

	if math.IsInf(x, 0) {
		// Intermediate overflow of finite inputs.
		a.special += x
		a.hasSpecial = true
		a.partials = a.partials[:i]
		return
	}

	a.partials = a.partials[:i]
	if x != 0 {
		a.partials = append(a.partials, x)
	}
}

// Len returns the number of values added so far.
func (a *Accumulator) Len() int {
	return a.n
}

// Reset clears the accumulator, keeping its allocated storage.
func (a *Accumulator) Reset() {
	a.partials = a.partials[:0]
	a.special = 0
	a.hasSpecial = false
	a.n = 0
}

// Sum returns the correctly rounded sum of all values added so far.
func (a *Accumulator) Sum() float64 {
	if a.hasSpecial {
		return a.special
	}

	p := a.partials
	n := len(p)
	if n == 0 {
		return 0
	}

	n--
	hi := p[n]
	var lo float64
	for n > 0 {
		x := hi
		n--
		y := p[n]
		hi = x + y
		yr := hi - x
		lo = y - yr
		if lo != 0 {
			break
		}
	}

	// Round half-even correction when the remaining partials push the
	// discarded low part past the halfway point.
	if n > 0 && ((lo < 0 && p[n-1] < 0) || (lo > 0 && p[n-1] > 0)) {
		y := lo * 2
		x := hi + y
		yr := x - hi
		if y == yr {
			hi = x
		}
	}

	return hi
}

// Sum returns the correctly rounded sum of values.
func Sum(values []float64) float64 {
	var a Accumulator
	for _, v := range values {
		a.Add(v)
	}
	return a.Sum()
}

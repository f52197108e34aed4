package series

import "math"

// Series is a one-dimensional sample vector, typically abundances or times
// on a model grid.
type Series []float64

func Zeros(n int) Series {
	return make(Series, n)
}

// Linspace returns n evenly spaced samples over [start, end] inclusive.
func Linspace(start, end float64, n int) Series {
	if n <= 0 {
		return nil
	}
	s := make(Series, n)
	if n == 1 {
		s[0] = start
		return s
	}
	step := (end - start) / float64(n-1)
	for i := range s {
		s[i] = start + float64(i)*step
	}
	return s
}

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

// Shift returns a copy with d added to every element.
func (s Series) Shift(d float64) Series {
	c := make(Series, len(s))
	for i, v := range s {
		c[i] = v + d
	}
	return c
}

func (s Series) Scale(f float64) Series {
	c := make(Series, len(s))
	for i, v := range s {
		c[i] = v * f
	}
	return c
}

func (s Series) Add(o Series) Series {
	c := make(Series, len(s))
	for i, v := range s {
		c[i] = v + o[i]
	}
	return c
}

func (s Series) Sub(o Series) Series {
	c := make(Series, len(s))
	for i, v := range s {
		c[i] = v - o[i]
	}
	return c
}

func (s Series) Log10() Series {
	c := make(Series, len(s))
	for i, v := range s {
		c[i] = math.Log10(v)
	}
	return c
}

func (s Series) IsFinite() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Series) Min() float64 {
	m := math.Inf(1)
	for _, v := range s {
		if v < m {
			m = v
		}
	}
	return m
}

func (s Series) Max() float64 {
	m := math.Inf(-1)
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}

package aggregation

// Bound is a linear min-max range for one field.
type Bound struct {
	Min float64
	Max float64
}

// Scale maps v onto [0,1] relative to the bound, clamping values outside it.
func (b Bound) Scale(v float64) float64 {
	if b.Max <= b.Min {
		return 0
	}
	s := (v - b.Min) / (b.Max - b.Min)
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// Flag maps a boolean onto {0,1}.
func Flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

package aggregation

import "github.com/shopspring/decimal"

// Review scores sit on the same 0.5..5 scale as community ratings, so the
// difference observed in practice ranges roughly from -3.5 to +2.0.
var (
	disagreementOffset = decimal.RequireFromString("3.5")
	disagreementRange  = decimal.RequireFromString("5.5")
)

// Disagreement computes score - rating in decimal arithmetic, so 4.0 - 3.2
// is exactly 0.8 rather than 0.7999999999999998.
func Disagreement(score, rating float64) float64 {
	d := decimal.NewFromFloat(score).Sub(decimal.NewFromFloat(rating))
	return d.InexactFloat64()
}

// ScaleDisagreement maps a raw disagreement onto (v + 3.5) / 5.5. The result
// is not clamped: extreme reviews may land slightly outside [0,1].
func ScaleDisagreement(v float64) float64 {
	d := decimal.NewFromFloat(v).Add(disagreementOffset).Div(disagreementRange)
	return d.InexactFloat64()
}

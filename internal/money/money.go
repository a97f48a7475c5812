// Package money provides cent-exact monetary arithmetic and the distribution
// algorithms used to split an expense total among participants without losing
// or fabricating value.
//
// Every operation rounds its result back to two decimal places, so no value
// that leaves this package carries sub-cent precision. Equality is defined at
// cent granularity (tolerance 0.01), which lets callers treat accumulated
// rounding noise as exactly zero.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidDistribution is returned by Distribute when the part count
	// is not positive or the total is negative.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrInvalidPercentageSum is returned by DistributeByPercentages when
	// the percentages do not sum to 100.
	ErrInvalidPercentageSum = errors.New("percentages must sum to 100")

	// ErrInvalidShareWeights is returned by DistributeByShares when a weight
	// is negative or the weights sum to zero.
	ErrInvalidShareWeights = errors.New("share weights must sum to a positive value")
)

var (
	// Tolerance is the cent-granularity equality band: two amounts closer
	// than this are the same money.
	Tolerance = decimal.New(1, -2) // 0.01

	hundred = decimal.NewFromInt(100)
)

// Round rounds to two decimal places, half away from zero.
func Round(x decimal.Decimal) decimal.Decimal {
	return x.Round(2)
}

// Add returns a + b at cent precision.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return Round(a.Add(b))
}

// Sub returns a - b at cent precision.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return Round(a.Sub(b))
}

// Mul returns a * b at cent precision.
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return Round(a.Mul(b))
}

// Div returns a / b at cent precision. It never produces Inf or NaN: a zero
// divisor is ErrDivisionByZero.
func Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return Round(a.Div(b)), nil
}

// Equal reports whether a and b are the same amount at cent granularity,
// i.e. |a-b| < 0.01.
func Equal(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(Tolerance)
}

// IsZero reports whether x is within the tolerance band of zero.
func IsZero(x decimal.Decimal) bool {
	return x.Abs().LessThan(Tolerance)
}

// Distribute splits total into n parts that sum back to total exactly.
// Every part gets the floor amount in cents; the leftover cents are handed
// out one each to the first parts in order, so earlier-listed participants
// absorb the rounding remainder.
func Distribute(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 || total.IsNegative() {
		return nil, ErrInvalidDistribution
	}

	cents := Round(total).Mul(hundred).IntPart()
	base := cents / int64(n)
	remainder := cents % int64(n)

	parts := make([]decimal.Decimal, n)
	for i := range parts {
		c := base
		if int64(i) < remainder {
			c++
		}
		parts[i] = decimal.New(c, -2)
	}
	return parts, nil
}

// DistributeByPercentages splits total according to percentages that must
// sum to 100 (within tolerance). Each part is total*pct/100 rounded to
// cents; any residual cent left by rounding is added in full to the largest
// part rather than smeared across several.
func DistributeByPercentages(total decimal.Decimal, percentages []decimal.Decimal) ([]decimal.Decimal, error) {
	if len(percentages) == 0 {
		return nil, ErrInvalidPercentageSum
	}

	sum := decimal.Zero
	for _, pct := range percentages {
		sum = sum.Add(pct)
	}
	if !Equal(sum, hundred) {
		return nil, ErrInvalidPercentageSum
	}

	parts := make([]decimal.Decimal, len(percentages))
	for i, pct := range percentages {
		parts[i] = Round(total.Mul(pct).Div(hundred))
	}
	correctResidual(total, parts)
	return parts, nil
}

// DistributeByShares splits total proportionally to non-negative weights
// with a positive sum, using the same residual-to-largest correction as
// DistributeByPercentages.
func DistributeByShares(total decimal.Decimal, weights []decimal.Decimal) ([]decimal.Decimal, error) {
	sum := decimal.Zero
	for _, w := range weights {
		if w.IsNegative() {
			return nil, ErrInvalidShareWeights
		}
		sum = sum.Add(w)
	}
	if !sum.IsPositive() {
		return nil, ErrInvalidShareWeights
	}

	parts := make([]decimal.Decimal, len(weights))
	for i, w := range weights {
		parts[i] = Round(total.Mul(w).Div(sum))
	}
	correctResidual(total, parts)
	return parts, nil
}

// correctResidual adds whatever the rounded parts are short (or over) to the
// largest part, so the parts sum back to total exactly.
func correctResidual(total decimal.Decimal, parts []decimal.Decimal) {
	distributed := decimal.Zero
	for _, p := range parts {
		distributed = distributed.Add(p)
	}
	residual := Round(total).Sub(distributed)
	if residual.IsZero() {
		return
	}

	largest := 0
	for i, p := range parts {
		if p.GreaterThan(parts[largest]) {
			largest = i
		}
	}
	parts[largest] = parts[largest].Add(residual)
}

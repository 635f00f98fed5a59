package domain

import (
	"github.com/shopspring/decimal"
)

// Hundred is used for percentage presentation of fee rates.
var Hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Sum adds the given amounts in order.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Side is the column a journal amount is posted to.
type Side int

const (
	Debit Side = iota
	Credit
)

// Opposite returns the other column.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

func (s Side) String() string {
	if s == Debit {
		return "debit"
	}
	return "credit"
}

// Place splits a signed value into debit and credit columns. A non-negative
// value lands on def, a negative one lands as |v| on the opposite side.
// The result is rounded to cents.
func Place(v decimal.Decimal, def Side) (debit, credit decimal.Decimal) {
	side := def
	if v.IsNegative() {
		side = def.Opposite()
	}
	amount := Round2(v.Abs())
	if side == Debit {
		return amount, decimal.Zero
	}
	return decimal.Zero, amount
}

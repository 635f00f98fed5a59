package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := map[string]string{
		"6.1725":  "6.17",
		"2.345":   "2.35",
		"-2.345":  "-2.35",
		"117.275": "117.28",
		"10":      "10.00",
	}
	for in, want := range tests {
		got := Round2(decimal.RequireFromString(in))
		assert.Equal(t, want, got.StringFixed(2), in)
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		def        Side
		wantDebit  string
		wantCredit string
	}{
		{"positive credit", "5.00", Credit, "0.00", "5.00"},
		{"negative credit flips", "-5.00", Credit, "5.00", "0.00"},
		{"positive debit", "1.40", Debit, "1.40", "0.00"},
		{"negative debit flips", "-1.40", Debit, "0.00", "1.40"},
		{"zero", "0", Debit, "0.00", "0.00"},
		{"rounds half up", "0.125", Credit, "0.00", "0.13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debit, credit := Place(decimal.RequireFromString(tt.value), tt.def)
			assert.Equal(t, tt.wantDebit, debit.StringFixed(2))
			assert.Equal(t, tt.wantCredit, credit.StringFixed(2))
			assert.True(t, debit.IsZero() || credit.IsZero())
		})
	}
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, Credit, Debit.Opposite())
	assert.Equal(t, Debit, Credit.Opposite())
	assert.Equal(t, "debit", Debit.String())
}

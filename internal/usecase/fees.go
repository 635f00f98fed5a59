package usecase

import (
	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/domain"
)

// FeeRates computes the pooled processor fee rate per MM/YYYY of payout
// creation: Σ fees / Σ gross, or zero when the month's gross is zero. Signs
// are kept as they appear in the register.
func FeeRates(payouts []domain.Payout) map[string]decimal.Decimal {
	gross := make(map[string]decimal.Decimal)
	fees := make(map[string]decimal.Decimal)
	for _, p := range payouts {
		key := domain.MonthKey(p.Created)
		gross[key] = gross[key].Add(p.Gross)
		fees[key] = fees[key].Add(p.Fees)
	}

	rates := make(map[string]decimal.Decimal, len(gross))
	for key, g := range gross {
		if g.IsZero() {
			rates[key] = decimal.Zero
			continue
		}
		rates[key] = fees[key].Div(g)
	}
	return rates
}

// splitFee applies rate to a gross redemption amount. The fee is rounded on
// its own and net is whatever remains, so fee + net == gross exactly.
func splitFee(gross, rate decimal.Decimal) (fee, net decimal.Decimal) {
	fee = domain.Round2(gross.Mul(rate))
	return fee, gross.Sub(fee)
}

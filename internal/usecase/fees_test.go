package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftcard-reconciliation/internal/domain"
)

func TestFeeRates(t *testing.T) {
	payouts := []domain.Payout{
		{Created: domain.Date(2024, 3, 6), Gross: dec("-1000"), Fees: dec("-50"), Total: dec("-950")},
		{Created: domain.Date(2024, 3, 20), Gross: dec("-500"), Fees: dec("-25"), Total: dec("-475")},
		{Created: domain.Date(2024, 4, 3), Gross: dec("0"), Fees: dec("0"), Total: dec("0")},
	}

	rates := FeeRates(payouts)

	require.Len(t, rates, 2)
	assert.True(t, rates["03/2024"].Equal(dec("0.05")), "march rate %s", rates["03/2024"])
	assert.True(t, rates["04/2024"].IsZero())
}

func TestSplitFee(t *testing.T) {
	tests := []struct {
		name    string
		gross   string
		rate    string
		wantFee string
		wantNet string
	}{
		{"rounds fee", "123.45", "0.05", "6.17", "117.28"},
		{"even split", "200", "0.05", "10.00", "190.00"},
		{"zero rate", "50", "0", "0.00", "50.00"},
		{"half cent rounds away from zero", "0.10", "0.05", "0.01", "0.09"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, net := splitFee(dec(tt.gross), dec(tt.rate))
			assertMoney(t, tt.wantFee, fee)
			assertMoney(t, tt.wantNet, net)
			assert.True(t, fee.Add(net).Equal(dec(tt.gross)))
		})
	}
}

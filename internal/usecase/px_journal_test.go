package usecase

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
)

func newPaytronixBuilder() *PaytronixJournalBuilder {
	return NewPaytronixJournalBuilder(config.Default(), runDay, zerolog.Nop())
}

var marchRates = map[string]decimal.Decimal{"03/2024": dec("0.05")}

func TestPaytronixJournalBuilder_RedemptionJournals(t *testing.T) {
	b := newPaytronixBuilder()
	rows := []domain.StoreMonth{{Store: "Brickell", Month: domain.Date(2024, 3, 1), Gross: dec("123.45")}}

	journals := b.RedemptionJournals(rows, marchRates)

	require.Len(t, journals, 1)
	j := journals[0]
	assert.Equal(t, "TRANSFER-PX032024-01", j.Number)
	assert.Equal(t, domain.Date(2024, 3, 31), j.Date)
	assert.Contains(t, j.Comment, "Deposit 04/11/2024")
	assert.Equal(t, "Carrot Leadership LLC", j.Location)

	want := []struct {
		account, debit, credit, detailLocation string
	}{
		{"Checking - Leadership (CNB 7301)", "0.00", "117.28", "Carrot Leadership LLC"},
		{AccountOnlineGiftCardFee, "0.00", "6.17", "Carrot Leadership LLC"},
		{AccountOnlineGiftCard, "123.45", "0.00", "Carrot Leadership LLC"},
		{"Checking - Brickell (CNB 4102)", "117.28", "0.00", "Carrot Express Brickell LLC"},
		{AccountMerchantFees, "6.17", "0.00", "Carrot Express Brickell LLC"},
		{AccountGiftCardsOutstanding, "0.00", "123.45", "Carrot Express Brickell LLC"},
	}
	require.Len(t, j.Lines, len(want))
	for i, w := range want {
		l := j.Lines[i]
		assert.Equal(t, w.account, l.Account, "line %d", i)
		assertMoney(t, w.debit, l.Debit, "line %d debit", i)
		assertMoney(t, w.credit, l.Credit, "line %d credit", i)
		assert.Equal(t, w.detailLocation, l.DetailLocation, "line %d", i)
		assert.Equal(t, j.Number, l.Number)
	}
	assert.True(t, j.Imbalance().IsZero())
}

func TestPaytronixJournalBuilder_RedemptionJournals_Numbering(t *testing.T) {
	b := newPaytronixBuilder()
	rows := []domain.StoreMonth{
		{Store: "Brickell", Month: domain.Date(2024, 2, 1), Gross: dec("10.00")},
		{Store: "Brickell", Month: domain.Date(2024, 3, 1), Gross: dec("20.00")},
		{Store: "Miami Shores", Month: domain.Date(2024, 3, 1), Gross: dec("100.00")},
	}

	journals := b.RedemptionJournals(rows, marchRates)

	require.Len(t, journals, 3)
	assert.Equal(t, "TRANSFER-PX022024-01", journals[0].Number)
	assert.Equal(t, "TRANSFER-PX032024-02", journals[1].Number)
	assert.Equal(t, "TRANSFER-PX032024-03", journals[2].Number)

	// February has no payouts, so no fee is taken.
	assertMoney(t, "10.00", journals[0].Lines[0].Credit)
	assertMoney(t, "0.00", journals[0].Lines[1].Credit)

	// ACH-external stores settle one business day later.
	assert.Contains(t, journals[2].Comment, "Deposit 04/12/2024")
	for _, j := range journals {
		assert.True(t, j.Imbalance().IsZero(), j.Number)
	}
}

func TestPaytronixJournalBuilder_PayoutJournals(t *testing.T) {
	payout := domain.Payout{Created: domain.Date(2024, 3, 20), Gross: dec("-1000.00"), Fees: dec("-50.00"), Total: dec("-950.00")}
	savings := "Savings - Leadership (CNB 7319)"

	tests := []struct {
		name     string
		deposits []domain.BankDeposit
		payouts  []domain.Payout
		want     []struct{ account, debit, credit, detail string }
	}{
		{
			name:     "deposit matches payout",
			deposits: []domain.BankDeposit{{PostingDate: domain.Date(2024, 3, 20), Amount: dec("950.00")}},
			payouts:  []domain.Payout{payout},
			want: []struct{ account, debit, credit, detail string }{
				{savings, "950.00", "0.00", "PX payout deposited 03/20/2024"},
				{AccountOnlineGiftCard, "0.00", "1000.00", "PX payout deposited 03/20/2024"},
				{AccountOnlineGiftCardFee, "50.00", "0.00", "PX payout deposited 03/20/2024"},
			},
		},
		{
			name:     "missing payout",
			deposits: []domain.BankDeposit{{PostingDate: domain.Date(2024, 4, 1), Amount: dec("500.00")}},
			want: []struct{ account, debit, credit, detail string }{
				{savings, "500.00", "0.00", PendingMissingPayout},
				{AccountExchange, "0.00", "500.00", PendingMissingPayout},
			},
		},
		{
			name:     "discrepancy above a cent",
			deposits: []domain.BankDeposit{{PostingDate: domain.Date(2024, 3, 20), Amount: dec("949.50")}},
			payouts:  []domain.Payout{payout},
			want: []struct{ account, debit, credit, detail string }{
				{savings, "949.50", "0.00", "PX payout deposited 03/20/2024"},
				{AccountOnlineGiftCard, "0.00", "1000.00", "PX payout deposited 03/20/2024"},
				{AccountOnlineGiftCardFee, "50.00", "0.00", "PX payout deposited 03/20/2024"},
				{AccountExchange, "0.50", "0.00", PendingDiscrepancy},
			},
		},
		{
			name:     "rounding difference",
			deposits: []domain.BankDeposit{{PostingDate: domain.Date(2024, 3, 20), Amount: dec("950.00")}},
			payouts: []domain.Payout{
				{Created: domain.Date(2024, 3, 20), Gross: dec("-1000.01"), Fees: dec("-50.00"), Total: dec("-950.00")},
			},
			want: []struct{ account, debit, credit, detail string }{
				{savings, "950.00", "0.00", "PX payout deposited 03/20/2024"},
				{AccountOnlineGiftCard, "0.00", "1000.01", "PX payout deposited 03/20/2024"},
				{AccountOnlineGiftCardFee, "50.00", "0.00", "PX payout deposited 03/20/2024"},
				{AccountExchange, "0.01", "0.00", roundingDifference},
			},
		},
		{
			name:     "returned deposit",
			deposits: []domain.BankDeposit{{PostingDate: domain.Date(2024, 3, 20), Amount: dec("-950.00")}},
			payouts:  []domain.Payout{payout},
			want: []struct{ account, debit, credit, detail string }{
				{savings, "0.00", "950.00", "PX payout deposited 03/20/2024"},
				{AccountOnlineGiftCard, "1000.00", "0.00", "PX payout deposited 03/20/2024"},
				{AccountOnlineGiftCardFee, "0.00", "50.00", "PX payout deposited 03/20/2024"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journals := newPaytronixBuilder().PayoutJournals(tt.deposits, tt.payouts)

			require.Len(t, journals, 1)
			j := journals[0]
			assert.Equal(t, "PxDep-"+domain.MonthYear(tt.deposits[0].PostingDate), j.Number)
			assert.Equal(t, domain.LastDayOfMonth(tt.deposits[0].PostingDate), j.Date)
			require.Len(t, j.Lines, len(tt.want))
			for i, w := range tt.want {
				l := j.Lines[i]
				assert.Equal(t, w.account, l.Account, "line %d", i)
				assertMoney(t, w.debit, l.Debit, "line %d debit", i)
				assertMoney(t, w.credit, l.Credit, "line %d credit", i)
				assert.Equal(t, w.detail, l.DetailComment, "line %d", i)
			}
			assert.True(t, j.Imbalance().IsZero())
		})
	}
}

func TestPaytronixJournalBuilder_PayoutJournals_SameMonth(t *testing.T) {
	deposits := []domain.BankDeposit{
		{PostingDate: domain.Date(2024, 3, 20), Amount: dec("500.00")},
		{PostingDate: domain.Date(2024, 3, 5), Amount: dec("100.00")},
		{PostingDate: domain.Date(2024, 3, 20), Amount: dec("450.00")},
	}
	payouts := []domain.Payout{
		{Created: domain.Date(2024, 3, 20), Gross: dec("-1000.00"), Fees: dec("-50.00"), Total: dec("-950.00")},
	}

	journals := newPaytronixBuilder().PayoutJournals(deposits, payouts)

	require.Len(t, journals, 2)
	assert.Equal(t, "PxDep-032024", journals[0].Number)
	assert.Equal(t, "PxDep-032024", journals[1].Number)
	assert.Contains(t, journals[0].Comment, "03/05/2024")
	assertMoney(t, "950.00", journals[1].Lines[0].Debit)
	assert.Len(t, journals[1].Lines, 3)
}

func TestPaytronixJournalBuilder_MonthlyTransfers(t *testing.T) {
	rows := []domain.StoreMonth{
		{Store: "Brickell", Month: domain.Date(2024, 2, 1), Gross: dec("10.00")},
		{Store: "Brickell", Month: domain.Date(2024, 3, 1), Gross: dec("123.45")},
		{Store: "Weston", Month: domain.Date(2024, 3, 1), Gross: dec("200.00")},
	}
	rates := map[string]decimal.Decimal{"02/2024": dec("0.1"), "03/2024": dec("0.05")}

	totals, grand, journals := newPaytronixBuilder().MonthlyTransfers(rows, rates)

	assertMoney(t, "9.00", totals["02/2024"])
	assertMoney(t, "307.28", totals["03/2024"])
	assertMoney(t, "316.28", grand)

	require.Len(t, journals, 2)
	assert.Equal(t, "PxTrf-022024", journals[0].Number)
	assert.Equal(t, "PxTrf-032024", journals[1].Number)
	march := journals[1]
	assert.Equal(t, domain.Date(2024, 4, 11), march.Date)
	require.Len(t, march.Lines, 2)
	assert.Equal(t, "Savings - Leadership (CNB 7319)", march.Lines[0].Account)
	assertMoney(t, "307.28", march.Lines[0].Credit)
	assert.Equal(t, "Checking - Leadership (CNB 7301)", march.Lines[1].Account)
	assertMoney(t, "307.28", march.Lines[1].Debit)
}

func TestPaytronixJournalBuilder_Build(t *testing.T) {
	agg := RedemptionAggregates{
		Regular: []domain.StoreMonth{{Store: "Brickell", Month: domain.Date(2024, 3, 1), Gross: dec("123.45")}},
	}
	deposits := []domain.BankDeposit{{PostingDate: domain.Date(2024, 3, 20), Amount: dec("950.00")}}
	payouts := []domain.Payout{{Created: domain.Date(2024, 3, 20), Gross: dec("-1000.00"), Fees: dec("-50.00"), Total: dec("-950.00")}}

	got := newPaytronixBuilder().Build(agg, FeeRates(payouts), deposits, payouts)

	assert.Len(t, got.Redemptions, 1)
	assert.Len(t, got.Payouts, 1)
	assert.Len(t, got.Transfers, 1)
	assertMoney(t, "117.28", got.MonthlyTotals["03/2024"])
	assertMoney(t, "117.28", got.GrandTotal)

	leadership := got.LeadershipLines()
	assert.Len(t, leadership, 5)
	assert.Empty(t, domain.Unbalanced(leadership, decimal.Zero))
	assert.Empty(t, domain.Unbalanced(domain.Flatten(got.Redemptions), decimal.Zero))
}

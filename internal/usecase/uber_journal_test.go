package usecase

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
)

const (
	brickellStore = "Carrot Express (Brickell)"
	flatironStore = "Carrot Express (Flatiron)"
)

var weekPayout = domain.Date(2024, 4, 8)

func newUberBuilder() *UberJournalBuilder {
	return NewUberJournalBuilder(config.Default(), zerolog.Nop())
}

func deliveryOrder(store string, orderDate time.Time, sales, salesInclTax, fee, payout string) domain.Order {
	return domain.Order{
		Store:          store,
		OrderDate:      orderDate,
		PayoutDate:     datePtr(weekPayout),
		DiningMode:     domain.DiningModeDelivery,
		Status:         domain.OrderStatusCompleted,
		SalesExclTax:   dec(sales),
		SalesInclTax:   dec(salesInclTax),
		MarketplaceFee: dec(fee),
		TotalPayout:    dec(payout),
	}
}

func buildOne(t *testing.T, orders []domain.Order, pos []domain.POSRecord) domain.Journal {
	t.Helper()
	groups := []PayoutGroup{{Store: orders[0].Store, Payout: weekPayout, Orders: orders}}
	journals := newUberBuilder().Build(groups, pos)
	require.Len(t, journals, 1)
	return journals[0]
}

func TestUberJournalBuilder_Header(t *testing.T) {
	j := buildOne(t, []domain.Order{
		deliveryOrder(brickellStore, domain.Date(2024, 4, 1), "20.00", "21.40", "-6.00", "14.00"),
	}, nil)

	assert.Equal(t, "UE040924-040124-01", j.Number)
	assert.Equal(t, domain.Date(2024, 4, 1), j.Date)
	assert.Equal(t, "Deposited 04/09/2024 // Orders 04/01/24", j.Comment)
	assert.Equal(t, "Carrot Express Brickell LLC", j.Location)
	require.Len(t, j.Lines, 16)

	cash := j.Lines[13]
	assert.Equal(t, AccountARUberEats, cash.Account)
	assert.Equal(t, "Cash to be deposited // Orders 04/01/24", cash.DetailComment)
	assertMoney(t, "14.00", cash.Debit)

	assertMoney(t, "20.00", j.Lines[1].Credit)
	assertMoney(t, "21.40", j.Lines[12].Credit)
	assertMoney(t, "21.40", j.Lines[14].Debit)
	assert.True(t, j.Imbalance().IsZero())
}

func TestUberJournalBuilder_TaxLine(t *testing.T) {
	tests := []struct {
		name           string
		order          domain.Order
		wantCommission string
		wantTaxDebit   string
		wantTaxCredit  string
		wantImbalance  string
	}{
		{
			name:           "drift corrected on delivery commission",
			order:          deliveryOrder(brickellStore, domain.Date(2024, 4, 1), "20.00", "21.40", "-6.00", "14.01"),
			wantCommission: "5.99",
			wantTaxDebit:   "0.00",
			wantTaxCredit:  "0.00",
			wantImbalance:  "0.00",
		},
		{
			name: "tax on promotion plugs the residual",
			order: func() domain.Order {
				o := deliveryOrder(brickellStore, domain.Date(2024, 4, 1), "20.00", "21.40", "-6.00", "14.50")
				o.TaxOnPromotion = dec("-0.50")
				return o
			}(),
			wantCommission: "6.00",
			wantTaxDebit:   "0.00",
			wantTaxCredit:  "0.50",
			wantImbalance:  "0.00",
		},
		{
			name:           "large imbalance left for review",
			order:          deliveryOrder(brickellStore, domain.Date(2024, 4, 1), "20.00", "21.40", "-6.00", "15.00"),
			wantCommission: "6.00",
			wantTaxDebit:   "0.00",
			wantTaxCredit:  "0.00",
			wantImbalance:  "1.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := buildOne(t, []domain.Order{tt.order}, nil)

			require.Len(t, j.Lines, 16)
			commission := j.Lines[5]
			assert.Equal(t, AccountUberDeliveryComm, commission.Account)
			assertMoney(t, tt.wantCommission, commission.Debit)
			assert.True(t, commission.Credit.IsZero())

			tax := j.Lines[15]
			assert.Equal(t, AccountSalesTaxPayable, tax.Account)
			assertMoney(t, tt.wantTaxDebit, tax.Debit)
			assertMoney(t, tt.wantTaxCredit, tax.Credit)
			assertMoney(t, tt.wantImbalance, j.Imbalance())
		})
	}
}

func TestUberJournalBuilder_SpecialLocationTaxes(t *testing.T) {
	o := deliveryOrder(flatironStore, domain.Date(2024, 4, 1), "20.00", "21.40", "-6.00", "14.00")
	o.TaxOnSales = dec("1.40")
	o.TaxOnPromotion = dec("-0.10")
	o.MarketplaceFacilitatorTax = dec("0.20")

	j := buildOne(t, []domain.Order{o}, nil)

	assert.Equal(t, "Carrot Express Flatiron LLC", j.Location)
	tax := j.Lines[15]
	assert.Equal(t, AccountSalesTaxPayable, tax.Account)
	assertMoney(t, "1.50", tax.Credit)
}

func TestUberJournalBuilder_ToastLines(t *testing.T) {
	pos := []domain.POSRecord{
		{Location: "Brickell", Opened: time.Date(2024, 4, 1, 12, 30, 0, 0, time.UTC), Channel: domain.POSChannelDelivery, Amount: dec("20.00"), Tax: dec("1.40")},
		{Location: " brickell ", Opened: time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC), Channel: domain.POSChannelPickup, Amount: dec("5.00"), Tax: dec("0.35")},
		{Location: "Brickell", Opened: time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC), Channel: domain.POSChannelDelivery, Amount: dec("99.00"), Tax: dec("6.93")},
		{Location: "Brickell", Opened: time.Date(2024, 4, 1, 13, 0, 0, 0, time.UTC), Channel: domain.POSChannelOther, Amount: dec("50.00"), Tax: dec("3.50")},
		{Location: "Doral", Opened: time.Date(2024, 4, 1, 13, 0, 0, 0, time.UTC), Channel: domain.POSChannelDelivery, Amount: dec("7.00"), Tax: dec("0.49")},
	}

	j := buildOne(t, []domain.Order{
		deliveryOrder(brickellStore, domain.Date(2024, 4, 1), "20.00", "21.40", "-6.00", "14.00"),
	}, pos)

	assert.Equal(t, AccountSalesTaxPayable, j.Lines[9].Account)
	assertMoney(t, "1.75", j.Lines[9].Debit)
	assert.Equal(t, AccountUberSales, j.Lines[10].Account)
	assertMoney(t, "5.00", j.Lines[10].Debit)
	assert.Equal(t, AccountUberSales, j.Lines[11].Account)
	assertMoney(t, "20.00", j.Lines[11].Debit)

	// Toast receivable 26.75 against Uber receivable 21.40.
	assertMoney(t, "5.35", j.Lines[14].Credit)
}

func TestUberJournalBuilder_Partitions(t *testing.T) {
	doralStore := "Carrot Express (Doral)"
	groups := []PayoutGroup{
		{Store: doralStore, Payout: weekPayout, Orders: []domain.Order{
			deliveryOrder(doralStore, domain.Date(2024, 4, 1), "10.00", "10.70", "-3.00", "7.00"),
		}},
		{Store: brickellStore, Payout: weekPayout, Orders: []domain.Order{
			deliveryOrder(brickellStore, domain.Date(2024, 4, 2), "10.00", "10.70", "-3.00", "7.00"),
			deliveryOrder(brickellStore, domain.Date(2024, 4, 1), "10.00", "10.70", "-3.00", "7.00"),
			deliveryOrder(brickellStore, domain.Date(2024, 4, 1), "5.00", "5.35", "-1.50", "3.50"),
		}},
		{Store: "Unknown Store", Payout: weekPayout, Orders: []domain.Order{
			deliveryOrder("Unknown Store", domain.Date(2024, 4, 1), "10.00", "10.70", "-3.00", "7.00"),
		}},
	}

	journals := newUberBuilder().Build(groups, nil)

	require.Len(t, journals, 3)
	assert.Equal(t, "UE040924-040124-01", journals[0].Number)
	assert.Equal(t, "Carrot Express Brickell LLC", journals[0].Location)
	assertMoney(t, "10.50", journals[0].Lines[13].Debit)
	assert.Equal(t, "UE040924-040124-02", journals[1].Number)
	assert.Equal(t, "Carrot Express Doral LLC", journals[1].Location)
	assert.Equal(t, "UE040924-040224-01", journals[2].Number)
	for _, j := range journals {
		assert.True(t, j.Imbalance().IsZero(), j.Number)
	}
}

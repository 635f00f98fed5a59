package usecase

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
)

func TestUberDepositBuilder_Build(t *testing.T) {
	doralStore := "Carrot Express (Doral)"
	gablesStore := "Carrot Express (Coral Gables)"
	groups := []PayoutGroup{
		{Store: brickellStore, Payout: weekPayout, Orders: []domain.Order{
			deliveryOrder(brickellStore, domain.Date(2024, 4, 1), "20.00", "21.40", "-6.00", "14.01"),
			deliveryOrder(brickellStore, domain.Date(2024, 4, 2), "15.00", "16.05", "-5.00", "10.00"),
		}},
		{Store: doralStore, Payout: weekPayout, Orders: []domain.Order{
			deliveryOrder(doralStore, domain.Date(2024, 4, 3), "8.00", "8.56", "-3.00", "5.00"),
		}},
		{Store: gablesStore, Payout: weekPayout, Orders: []domain.Order{
			deliveryOrder(gablesStore, domain.Date(2024, 4, 3), "0.00", "0.00", "0.00", "0.00"),
		}},
	}
	lines := domain.Flatten(newUberBuilder().Build(groups, nil))

	deposits := NewUberDepositBuilder(config.Default(), zerolog.Nop()).Build(lines)

	require.Len(t, deposits, 2)

	brickell := deposits[0]
	assert.Equal(t, "UE040924-01", brickell.Number)
	assert.Equal(t, domain.Date(2024, 4, 9), brickell.Date)
	assert.Equal(t, "Deposit for 04/01/24-04/02/24", brickell.Comment)
	assert.Equal(t, "Carrot Express Brickell LLC", brickell.Location)
	require.Len(t, brickell.Lines, 2)
	assert.Equal(t, "Checking - Brickell (CNB 4102)", brickell.Lines[0].Account)
	assertMoney(t, "24.01", brickell.Lines[0].Debit)
	assert.Equal(t, AccountARUberEats, brickell.Lines[1].Account)
	assertMoney(t, "24.01", brickell.Lines[1].Credit)

	doral := deposits[1]
	assert.Equal(t, "UE040924-02", doral.Number)
	assert.Equal(t, "Deposit for 04/03/24", doral.Comment)
	assertMoney(t, "5.00", doral.Lines[0].Debit)
}

func TestUberDepositBuilder_IgnoresOtherLines(t *testing.T) {
	lines := []domain.JournalLine{
		{
			Number:        "UE040924-040124-01",
			Comment:       "Deposited 04/09/2024 // Orders 04/01/24",
			Location:      "Carrot Express Brickell LLC",
			Account:       AccountARUberEats,
			Credit:        dec("21.40"),
			DetailComment: "Uber sales receivable // Orders 04/01/24",
		},
		{
			Number:        "UE-BROKEN",
			Comment:       "no dates here",
			Location:      "Carrot Express Brickell LLC",
			Account:       AccountARUberEats,
			Debit:         dec("14.00"),
			DetailComment: CashToBeDeposited,
		},
		{
			Number:        "UE040924-040124-02",
			Comment:       "Deposited 04/09/2024 // Orders 04/01/24",
			Location:      "Somewhere Else LLC",
			Account:       AccountARUberEats,
			Debit:         dec("14.00"),
			DetailComment: CashToBeDeposited,
		},
	}

	deposits := NewUberDepositBuilder(config.Default(), zerolog.Nop()).Build(lines)

	assert.Empty(t, deposits)
}

package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
)

// CashToBeDeposited marks the A/R line carrying the marketplace payout.
const CashToBeDeposited = "Cash to be deposited"

var (
	taxPlugTolerance = decimal.New(1, -2)
	maxDrift         = decimal.New(2, -2)
	// BalanceTolerance is the residual allowed on an UberEats journal.
	BalanceTolerance = decimal.New(1, -3)
)

// uberTotals are the summed marketplace columns of one partition.
type uberTotals struct {
	pickupSales, deliverySales     decimal.Decimal
	pickupAdjust, deliveryAdjust   decimal.Decimal
	pickupFee, deliveryFee         decimal.Decimal
	promotions, marketing, other   decimal.Decimal
	refunds, salesInclTax, payout  decimal.Decimal
	taxOnSales, taxOnRefunds       decimal.Decimal
	taxOnPromotion, facilitatorTax decimal.Decimal
	taxOnAdjust                    decimal.Decimal
}

func sumUber(orders []domain.Order) uberTotals {
	var t uberTotals
	for _, o := range orders {
		if o.IsPickup() {
			t.pickupSales = t.pickupSales.Add(o.SalesExclTax)
			t.pickupAdjust = t.pickupAdjust.Add(o.PriceAdjustment)
			t.pickupFee = t.pickupFee.Add(o.MarketplaceFee)
		} else {
			t.deliverySales = t.deliverySales.Add(o.SalesExclTax)
			t.deliveryAdjust = t.deliveryAdjust.Add(o.PriceAdjustment)
			t.deliveryFee = t.deliveryFee.Add(o.MarketplaceFee)
		}
		t.promotions = t.promotions.Add(o.Promotions)
		t.marketing = t.marketing.Add(o.MarketingAdjustment)
		t.other = t.other.Add(o.OtherPayments)
		t.refunds = t.refunds.Add(o.RefundsExclTax)
		t.salesInclTax = t.salesInclTax.Add(o.SalesInclTax)
		t.payout = t.payout.Add(o.TotalPayout)
		t.taxOnSales = t.taxOnSales.Add(o.TaxOnSales)
		t.taxOnRefunds = t.taxOnRefunds.Add(o.TaxOnRefunds)
		t.taxOnPromotion = t.taxOnPromotion.Add(o.TaxOnPromotion)
		t.facilitatorTax = t.facilitatorTax.Add(o.MarketplaceFacilitatorTax)
		t.taxOnAdjust = t.taxOnAdjust.Add(o.TaxOnPriceAdjustment)
	}
	return t
}

// receivable is what the marketplace owes for the partition's sales.
func (t uberTotals) receivable() decimal.Decimal {
	return domain.Sum(t.salesInclTax, t.pickupAdjust, t.deliveryAdjust, t.taxOnAdjust)
}

func (t uberTotals) allTaxes() decimal.Decimal {
	return domain.Sum(t.taxOnSales, t.taxOnRefunds, t.taxOnPromotion, t.facilitatorTax, t.taxOnAdjust)
}

// toastTotals are the POS amounts of one store and day, split by channel.
type toastTotals struct {
	pickupAmount, deliveryAmount decimal.Decimal
	pickupTax, deliveryTax       decimal.Decimal
}

func (t toastTotals) tax() decimal.Decimal {
	return t.pickupTax.Add(t.deliveryTax)
}

func (t toastTotals) receivable() decimal.Decimal {
	return domain.Sum(t.pickupTax, t.deliveryTax, t.pickupAmount, t.deliveryAmount)
}

type posKey struct {
	location string
	day      time.Time
}

func indexPOS(records []domain.POSRecord) map[posKey]toastTotals {
	index := make(map[posKey]toastTotals)
	for _, r := range records {
		if r.Channel != domain.POSChannelPickup && r.Channel != domain.POSChannelDelivery {
			continue
		}
		key := posKey{location: normalizeLocation(r.Location), day: domain.DateOnly(r.Opened)}
		t := index[key]
		if r.Channel == domain.POSChannelPickup {
			t.pickupAmount = t.pickupAmount.Add(r.Amount)
			t.pickupTax = t.pickupTax.Add(r.Tax)
		} else {
			t.deliveryAmount = t.deliveryAmount.Add(r.Amount)
			t.deliveryTax = t.deliveryTax.Add(r.Tax)
		}
		index[key] = t
	}
	return index
}

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UberJournalBuilder emits one balanced journal per (store, payout, order
// date) partition.
type UberJournalBuilder struct {
	dir *config.Directory
	log zerolog.Logger
}

// NewUberJournalBuilder creates a journal builder.
func NewUberJournalBuilder(dir *config.Directory, log zerolog.Logger) *UberJournalBuilder {
	return &UberJournalBuilder{dir: dir, log: log}
}

type uberPartition struct {
	store     config.UberStore
	payout    time.Time
	orderDate time.Time
	orders    []domain.Order
}

func (b *UberJournalBuilder) partitions(groups []PayoutGroup) []uberPartition {
	var parts []uberPartition
	for _, g := range groups {
		store, ok := b.dir.UberStore(g.Store)
		if !ok {
			b.log.Warn().Str("store", g.Store).Str("payout", g.Payout.Format(domain.LayoutISO)).Msg("unknown uber store, partition skipped")
			continue
		}
		var days []time.Time
		byDay := make(map[time.Time][]domain.Order)
		for _, o := range g.Orders {
			if _, seen := byDay[o.OrderDate]; !seen {
				days = append(days, o.OrderDate)
			}
			byDay[o.OrderDate] = append(byDay[o.OrderDate], o)
		}
		for _, day := range days {
			parts = append(parts, uberPartition{store: store, payout: g.Payout, orderDate: day, orders: byDay[day]})
		}
	}
	sort.SliceStable(parts, func(i, j int) bool {
		a, c := parts[i], parts[j]
		if !a.payout.Equal(c.payout) {
			return a.payout.Before(c.payout)
		}
		if !a.orderDate.Equal(c.orderDate) {
			return a.orderDate.Before(c.orderDate)
		}
		return a.store.ID < c.store.ID
	})
	return parts
}

// Build emits the journals for every partition of groups that resolves to a
// known store, using the Toast records to book POS sales and tax.
func (b *UberJournalBuilder) Build(groups []PayoutGroup, pos []domain.POSRecord) []domain.Journal {
	toast := indexPOS(pos)
	counters := make(map[string]int)

	var journals []domain.Journal
	for _, p := range b.partitions(groups) {
		deposit := p.payout.AddDate(0, 0, 1)
		counterKey := deposit.Format(domain.LayoutShort) + "-" + p.orderDate.Format(domain.LayoutShort)
		counters[counterKey]++

		j := domain.Journal{
			Number:   fmt.Sprintf("UE%s-%02d", counterKey, counters[counterKey]),
			Date:     p.orderDate,
			Comment:  fmt.Sprintf("Deposited %s // Orders %s", deposit.Format(domain.LayoutHuman), p.orderDate.Format(domain.LayoutShortUS)),
			Location: p.store.Location,
		}
		b.place(&j, p, sumUber(p.orders), toast[posKey{location: normalizeLocation(p.store.Toast), day: p.orderDate}])
		journals = append(journals, j)
	}
	return journals
}

func (b *UberJournalBuilder) place(j *domain.Journal, p uberPartition, u uberTotals, t toastTotals) {
	loc := p.store.Location
	orders := "Orders " + p.orderDate.Format(domain.LayoutShortUS)
	note := func(s string) string { return s + " // " + orders }

	j.Place(AccountUEPickup, u.pickupSales.Add(u.pickupAdjust), domain.Credit, loc, note("Uber pickup sales"))
	j.Place(AccountUEDelivery, u.deliverySales.Add(u.deliveryAdjust), domain.Credit, loc, note("Uber delivery sales"))
	j.Place(AccountUberDiscount, u.promotions, domain.Credit, loc, note("Promotions"))
	j.Place(AccountUberPromoAdjust, u.marketing, domain.Credit, loc, note("Marketing adjustment"))
	j.Place(AccountUberAdSpend, u.other, domain.Credit, loc, note("Other payments"))
	deliveryCommission := j.Place(AccountUberDeliveryComm, u.deliveryFee, domain.Credit, loc, note("Delivery marketplace fee"))
	j.Place(AccountUberPickupComm, u.pickupFee, domain.Credit, loc, note("Pickup marketplace fee"))
	j.Place(AccountRefunds, u.refunds, domain.Credit, loc, note("Refunds"))
	j.Place(AccountSalesTaxAdjustment, decimal.Zero, domain.Credit, loc, note("Sales tax adjustment"))
	j.Place(AccountSalesTaxPayable, t.tax(), domain.Debit, loc, note("Toast sales tax"))
	j.Place(AccountUberSales, t.pickupAmount, domain.Debit, loc, note("Toast pickup sales"))
	j.Place(AccountUberSales, t.deliveryAmount, domain.Debit, loc, note("Toast delivery sales"))
	j.Place(AccountARUberEats, u.receivable(), domain.Credit, loc, note("Uber sales receivable"))
	j.Place(AccountARUberEats, u.payout, domain.Debit, loc, note(CashToBeDeposited))
	j.Place(AccountARUberEats, t.receivable().Sub(u.receivable()), domain.Credit, loc, note("Toast to Uber variance"))

	if b.dir.IsSpecialLocation(p.store.Toast) {
		j.Place(AccountSalesTaxPayable, u.allTaxes(), domain.Credit, loc, note("Marketplace taxes"))
	} else {
		residual := j.Imbalance()
		if residual.Abs().Sub(u.taxOnPromotion.Abs()).Abs().LessThan(taxPlugTolerance) {
			j.Place(AccountSalesTaxPayable, u.taxOnPromotion.Abs(), domain.Credit, loc, note("Tax on promotion"))
		} else {
			j.Place(AccountSalesTaxPayable, decimal.Zero, domain.Credit, loc, note("Tax on promotion"))
		}
	}

	imbalance := j.Imbalance()
	switch {
	case imbalance.IsZero():
	case imbalance.Abs().LessThanOrEqual(maxDrift):
		j.Lines[deliveryCommission].Shift(imbalance.Neg())
	default:
		b.log.Warn().
			Str("journal", j.Number).
			Str("imbalance", imbalance.StringFixed(2)).
			Msg("journal imbalance too large for rounding correction")
	}
}

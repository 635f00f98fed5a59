package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/domain"
)

// PayoutGroup is the set of orders of one store settled by one (adjusted)
// payout.
type PayoutGroup struct {
	Store  string
	Payout time.Time
	Orders []domain.Order
}

// calculatedPayout is the payout the marketplace schedules for an order: the
// Monday on or after the order date, plus one week.
func calculatedPayout(orderDate time.Time) time.Time {
	return domain.NextMondayOnOrAfter(orderDate).AddDate(0, 0, 7)
}

// RepairPayoutDates fills in missing payout dates store by store. Regular
// rows get their calculated payout. Refund, Refund Disputed and Unfulfilled
// rows follow the regular rows of the same store: they take the latest
// calculated payout and the latest regular order date. A store with only
// such rows falls back to each row's own calculated payout. Rows that
// already carry a payout date are left untouched, so the repair is a fixed
// point on its own output.
func RepairPayoutDates(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	copy(out, orders)

	var stores []string
	missing := make(map[string][]int)
	for i, o := range out {
		if o.PayoutDate != nil {
			continue
		}
		if _, seen := missing[o.Store]; !seen {
			stores = append(stores, o.Store)
		}
		missing[o.Store] = append(missing[o.Store], i)
	}

	for _, store := range stores {
		var special []int
		var latestPayout, latestOrder time.Time
		haveRegular := false

		for _, i := range missing[store] {
			if out[i].Status.IsSpecial() {
				special = append(special, i)
				continue
			}
			p := calculatedPayout(out[i].OrderDate)
			out[i].PayoutDate = &p
			if !haveRegular || p.After(latestPayout) {
				latestPayout = p
			}
			if !haveRegular || out[i].OrderDate.After(latestOrder) {
				latestOrder = out[i].OrderDate
			}
			haveRegular = true
		}

		for _, i := range special {
			if !haveRegular {
				p := calculatedPayout(out[i].OrderDate)
				out[i].PayoutDate = &p
				continue
			}
			p := latestPayout
			out[i].PayoutDate = &p
			out[i].OrderDate = latestOrder
		}
	}
	return out
}

// IsProperPayout reports whether the seven days before p run Monday through
// Sunday.
func IsProperPayout(p time.Time) bool {
	return p.AddDate(0, 0, -7).Weekday() == time.Monday && p.AddDate(0, 0, -1).Weekday() == time.Sunday
}

// AdjustPayoutDate moves an improper payout date back by one day. The
// adjustment is applied once.
func AdjustPayoutDate(p time.Time) time.Time {
	p = domain.DateOnly(p)
	if IsProperPayout(p) {
		return p
	}
	return p.AddDate(0, 0, -1)
}

type payoutKey struct {
	store  string
	payout time.Time
}

// GroupByPayout groups orders by store and adjusted payout date, then
// repairs order dates inside each group: orders outside the payout window
// [payout-7, payout-1] move to the window start, and orders on a day whose
// total excl.-tax sales is zero move to the latest day with non-zero sales
// (or the latest day present when every day is zero). Groups come back
// ordered by payout then store.
func GroupByPayout(orders []domain.Order) []PayoutGroup {
	var keys []payoutKey
	grouped := make(map[payoutKey][]domain.Order)
	for _, o := range orders {
		if o.PayoutDate == nil {
			continue
		}
		key := payoutKey{store: o.Store, payout: AdjustPayoutDate(*o.PayoutDate)}
		if _, seen := grouped[key]; !seen {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], o)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if !keys[i].payout.Equal(keys[j].payout) {
			return keys[i].payout.Before(keys[j].payout)
		}
		return keys[i].store < keys[j].store
	})

	groups := make([]PayoutGroup, 0, len(keys))
	for _, key := range keys {
		rows := grouped[key]
		repairWindow(rows, key.payout)
		foldZeroSales(rows)
		groups = append(groups, PayoutGroup{Store: key.store, Payout: key.payout, Orders: rows})
	}
	return groups
}

func repairWindow(rows []domain.Order, payout time.Time) {
	start := payout.AddDate(0, 0, -7)
	end := payout.AddDate(0, 0, -1)
	for i := range rows {
		d := domain.DateOnly(rows[i].OrderDate)
		if d.Before(start) || d.After(end) {
			rows[i].OrderDate = start
		} else {
			rows[i].OrderDate = d
		}
	}
}

func foldZeroSales(rows []domain.Order) {
	sales := make(map[time.Time]decimal.Decimal)
	for _, o := range rows {
		sales[o.OrderDate] = sales[o.OrderDate].Add(o.SalesExclTax)
	}

	var target, latest time.Time
	haveTarget := false
	for day, total := range sales {
		if day.After(latest) {
			latest = day
		}
		if !total.IsZero() && (!haveTarget || day.After(target)) {
			target = day
			haveTarget = true
		}
	}
	if !haveTarget {
		target = latest
	}

	for i := range rows {
		if sales[rows[i].OrderDate].IsZero() {
			rows[i].OrderDate = target
		}
	}
}

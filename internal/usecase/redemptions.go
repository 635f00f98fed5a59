package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/domain"
)

// RedemptionAggregates holds eGift redemption totals split by store class.
type RedemptionAggregates struct {
	Regular []domain.StoreMonth
	Special []domain.StoreMonth
}

// All returns regular rows followed by special rows.
func (a RedemptionAggregates) All() []domain.StoreMonth {
	all := make([]domain.StoreMonth, 0, len(a.Regular)+len(a.Special))
	all = append(all, a.Regular...)
	return append(all, a.Special...)
}

// AggregateRedemptions keeps eGift redemptions, partitions them by
// isSpecial, and totals each (store, month) as the rounded absolute value of
// its summed dollars. Each partition is ordered by store then month.
func AggregateRedemptions(redemptions []domain.Redemption, isSpecial func(store string) bool) RedemptionAggregates {
	var regular, special []domain.Redemption
	for _, r := range redemptions {
		if r.Template != domain.CardTemplateEGift {
			continue
		}
		if isSpecial(r.Store) {
			special = append(special, r)
		} else {
			regular = append(regular, r)
		}
	}
	return RedemptionAggregates{
		Regular: groupStoreMonths(regular),
		Special: groupStoreMonths(special),
	}
}

type storeMonthKey struct {
	store string
	month time.Time
}

func groupStoreMonths(redemptions []domain.Redemption) []domain.StoreMonth {
	var order []storeMonthKey
	sums := make(map[storeMonthKey]decimal.Decimal)
	for _, r := range redemptions {
		key := storeMonthKey{store: r.Store, month: domain.MonthStart(r.Date)}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] = sums[key].Add(r.DollarsRedeemed)
	}

	out := make([]domain.StoreMonth, 0, len(order))
	for _, key := range order {
		out = append(out, domain.StoreMonth{
			Store: key.store,
			Month: key.month,
			Gross: domain.Round2(sums[key].Abs()),
		})
	}
	sortStoreMonths(out)
	return out
}

func sortStoreMonths(rows []domain.StoreMonth) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Store != rows[j].Store {
			return rows[i].Store < rows[j].Store
		}
		return rows[i].Month.Before(rows[j].Month)
	})
}

// monthsOf returns the distinct months of rows in ascending order.
func monthsOf(rows []domain.StoreMonth) []time.Time {
	seen := make(map[time.Time]bool)
	var months []time.Time
	for _, r := range rows {
		if !seen[r.Month] {
			seen[r.Month] = true
			months = append(months, r.Month)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}

// MonthRangeLabel renders "<Month YYYY>" for a single month and
// "<first>-<last>" otherwise. months must be sorted and non-empty.
func MonthRangeLabel(months []time.Time) string {
	first, last := months[0], months[len(months)-1]
	if domain.MonthKey(first) == domain.MonthKey(last) {
		return domain.MonthLabel(first)
	}
	return domain.MonthLabel(first) + "-" + domain.MonthLabel(last)
}

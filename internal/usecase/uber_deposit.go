package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
)

var (
	depositedPattern = regexp.MustCompile(`Deposited (\d{2}/\d{2}/\d{4})`)
	ordersPattern    = regexp.MustCompile(`Orders (\d{2}/\d{2}/\d{2})`)
	minDeposit       = decimal.New(1, -2)
)

// UberDepositBuilder collapses the "cash to be deposited" lines of the
// UberEats journals into one bank deposit journal per location and day.
type UberDepositBuilder struct {
	dir *config.Directory
	log zerolog.Logger
}

// NewUberDepositBuilder creates a deposit builder.
func NewUberDepositBuilder(dir *config.Directory, log zerolog.Logger) *UberDepositBuilder {
	return &UberDepositBuilder{dir: dir, log: log}
}

type depositKey struct {
	location string
	deposit  time.Time
}

type depositAccumulator struct {
	amount      decimal.Decimal
	first, last time.Time
}

// Build scans lines for A/R UberEats cash lines and emits a two-line deposit
// journal per (location, deposit date) whose total is at least a cent.
func (b *UberDepositBuilder) Build(lines []domain.JournalLine) []domain.Journal {
	var keys []depositKey
	acc := make(map[depositKey]*depositAccumulator)

	for _, l := range lines {
		if l.Account != AccountARUberEats || !strings.Contains(l.DetailComment, CashToBeDeposited) {
			continue
		}
		deposit, ok := parseCommentDate(depositedPattern, l.Comment, domain.LayoutHuman)
		if !ok {
			b.log.Warn().Str("journal", l.Number).Str("comment", l.Comment).Msg("no deposit date in journal comment")
			continue
		}
		order, ok := parseCommentDate(ordersPattern, l.Comment, domain.LayoutShortUS)
		if !ok {
			order = l.Date
		}

		key := depositKey{location: l.Location, deposit: deposit}
		a, seen := acc[key]
		if !seen {
			a = &depositAccumulator{first: order, last: order}
			acc[key] = a
			keys = append(keys, key)
		}
		a.amount = a.amount.Add(l.Net())
		if order.Before(a.first) {
			a.first = order
		}
		if order.After(a.last) {
			a.last = order
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if !keys[i].deposit.Equal(keys[j].deposit) {
			return keys[i].deposit.Before(keys[j].deposit)
		}
		return keys[i].location < keys[j].location
	})

	counters := make(map[string]int)
	var journals []domain.Journal
	for _, key := range keys {
		a := acc[key]
		if a.amount.Abs().LessThan(minDeposit) {
			continue
		}
		checking, ok := b.dir.UberCheckingForLocation(key.location)
		if !ok {
			b.log.Warn().Str("location", key.location).Msg("no checking account for location, deposit skipped")
			continue
		}

		stamp := key.deposit.Format(domain.LayoutShort)
		counters[stamp]++

		span := a.first.Format(domain.LayoutShortUS)
		if !a.first.Equal(a.last) {
			span += "-" + a.last.Format(domain.LayoutShortUS)
		}
		j := domain.Journal{
			Number:   fmt.Sprintf("UE%s-%02d", stamp, counters[stamp]),
			Date:     key.deposit,
			Comment:  "Deposit for " + span,
			Location: key.location,
		}
		detail := "UberEats deposit " + key.deposit.Format(domain.LayoutHuman)
		j.Place(checking, a.amount, domain.Debit, key.location, detail)
		j.Place(AccountARUberEats, a.amount, domain.Credit, key.location, detail)
		journals = append(journals, j)
	}
	return journals
}

func parseCommentDate(pattern *regexp.Regexp, comment, layout string) (time.Time, bool) {
	m := pattern.FindStringSubmatch(comment)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

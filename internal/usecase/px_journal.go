package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
)

// Detail comments flagging payout journals that need follow-up.
const (
	PendingMissingPayout = "Pending — Missing payout information"
	PendingDiscrepancy   = "Pending — Discrepancy"
	roundingDifference   = "Rounding difference"
)

var payoutTolerance = decimal.New(1, -2)

// PaytronixJournals is the output of the gift-card journal builder.
type PaytronixJournals struct {
	Redemptions   []domain.Journal
	Payouts       []domain.Journal
	Transfers     []domain.Journal
	MonthlyTotals map[string]decimal.Decimal
	GrandTotal    decimal.Decimal
}

// LeadershipLines returns the payout and transfer journals as one table.
func (p PaytronixJournals) LeadershipLines() []domain.JournalLine {
	return append(domain.Flatten(p.Payouts), domain.Flatten(p.Transfers)...)
}

// PaytronixJournalBuilder turns aggregated redemptions, payouts and bank
// deposits into balanced journals.
type PaytronixJournalBuilder struct {
	dir   *config.Directory
	today time.Time
	log   zerolog.Logger
}

// NewPaytronixJournalBuilder creates a builder for a run on today.
func NewPaytronixJournalBuilder(dir *config.Directory, today time.Time, log zerolog.Logger) *PaytronixJournalBuilder {
	return &PaytronixJournalBuilder{dir: dir, today: domain.DateOnly(today), log: log}
}

// Build emits every gift-card journal of a run.
func (b *PaytronixJournalBuilder) Build(agg RedemptionAggregates, rates map[string]decimal.Decimal, deposits []domain.BankDeposit, payouts []domain.Payout) PaytronixJournals {
	totals, grand, transfers := b.MonthlyTransfers(agg.All(), rates)
	return PaytronixJournals{
		Redemptions:   b.RedemptionJournals(agg.Regular, rates),
		Payouts:       b.PayoutJournals(deposits, payouts),
		Transfers:     transfers,
		MonthlyTotals: totals,
		GrandTotal:    grand,
	}
}

func (b *PaytronixJournalBuilder) rate(rates map[string]decimal.Decimal, month time.Time) decimal.Decimal {
	key := domain.MonthKey(month)
	r, ok := rates[key]
	if !ok {
		b.log.Warn().Str("month", key).Msg("no payouts for month, fee rate set to zero")
		return decimal.Zero
	}
	return r
}

func (b *PaytronixJournalBuilder) storeEntity(store string) string {
	if e, ok := b.dir.StoreEntity(store); ok {
		return e
	}
	b.log.Warn().Str("store", store).Msg("unknown store, using store name as detail location")
	return store
}

func (b *PaytronixJournalBuilder) storeChecking(store string) string {
	if c, ok := b.dir.StoreChecking(store); ok {
		return c
	}
	return checkingPrefix + " - " + store
}

// RedemptionJournals emits one six-line journal per (store, month) moving
// the net redemption from Leadership to the store. rows must already be
// ordered by store then month; that order fixes the journal counters.
func (b *PaytronixJournalBuilder) RedemptionJournals(rows []domain.StoreMonth, rates map[string]decimal.Decimal) []domain.Journal {
	leadership := b.dir.LeadershipEntity()
	journals := make([]domain.Journal, 0, len(rows))

	for i, row := range rows {
		fee, net := splitFee(row.Gross, b.rate(rates, row.Month))

		days := 1
		if b.dir.IsACHExternal(row.Store) {
			days = 2
		}
		depositDate := domain.NextBusinessDay(b.today, days)
		label := domain.MonthLabel(row.Month)

		j := domain.Journal{
			Number:   fmt.Sprintf("TRANSFER-PX%s-%02d", domain.MonthYear(row.Month), i+1),
			Date:     domain.LastDayOfMonth(row.Month),
			Comment:  fmt.Sprintf("PX gift card redemptions %s %s // Deposit %s", row.Store, label, depositDate.Format(domain.LayoutHuman)),
			Location: leadership,
		}
		entity := b.storeEntity(row.Store)
		detail := fmt.Sprintf("%s eGift redemptions %s", row.Store, label)

		j.Place(b.dir.LeadershipChecking(), net, domain.Credit, leadership, detail)
		j.Place(AccountOnlineGiftCardFee, fee, domain.Credit, leadership, detail)
		j.Place(AccountOnlineGiftCard, row.Gross, domain.Debit, leadership, detail)
		j.Place(b.storeChecking(row.Store), net, domain.Debit, entity, detail)
		j.Place(AccountMerchantFees, fee, domain.Debit, entity, detail)
		j.Place(AccountGiftCardsOutstanding, row.Gross, domain.Credit, entity, detail)

		journals = append(journals, j)
	}
	return journals
}

type payoutDay struct {
	gross, fees, total decimal.Decimal
}

// PayoutJournals emits one journal per bank posting date recording the
// processor deposit into Leadership savings. Deposits without a payout row
// on the same day, and deposits that disagree with the payout total by more
// than a cent, carry an Exchange line marked Pending.
func (b *PaytronixJournalBuilder) PayoutJournals(deposits []domain.BankDeposit, payouts []domain.Payout) []domain.Journal {
	byDay := make(map[time.Time]payoutDay)
	for _, p := range payouts {
		day := domain.DateOnly(p.Created)
		agg := byDay[day]
		agg.gross = agg.gross.Add(p.Gross)
		agg.fees = agg.fees.Add(p.Fees)
		agg.total = agg.total.Add(p.Total)
		byDay[day] = agg
	}

	var dates []time.Time
	amounts := make(map[time.Time]decimal.Decimal)
	for _, d := range deposits {
		day := domain.DateOnly(d.PostingDate)
		if _, seen := amounts[day]; !seen {
			dates = append(dates, day)
		}
		amounts[day] = amounts[day].Add(d.Amount)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	leadership := b.dir.LeadershipEntity()
	savings := b.dir.LeadershipSavings()
	journals := make([]domain.Journal, 0, len(dates))

	for _, day := range dates {
		raw := amounts[day]
		chase := domain.Round2(raw.Abs())
		savingsSide := domain.Debit
		if raw.IsNegative() {
			savingsSide = domain.Credit
		}

		j := domain.Journal{
			Number:   "PxDep-" + domain.MonthYear(day),
			Date:     domain.LastDayOfMonth(day),
			Comment:  "Paytronix deposit " + day.Format(domain.LayoutHuman),
			Location: leadership,
		}
		deposited := "PX payout deposited " + day.Format(domain.LayoutHuman)

		px, ok := byDay[day]
		if !ok {
			j.Place(savings, chase, savingsSide, leadership, PendingMissingPayout)
			j.Place(AccountExchange, chase, savingsSide.Opposite(), leadership, PendingMissingPayout)
			b.log.Warn().Str("date", day.Format(domain.LayoutISO)).Str("amount", raw.StringFixed(2)).Msg("deposit without payout row")
			journals = append(journals, j)
			continue
		}

		pxTotal := domain.Round2(px.total.Abs())
		j.Place(savings, chase, savingsSide, leadership, deposited)
		j.Place(AccountOnlineGiftCard, domain.Round2(px.gross.Abs()), savingsSide.Opposite(), leadership, deposited)
		j.Place(AccountOnlineGiftCardFee, domain.Round2(px.fees.Abs()), savingsSide, leadership, deposited)

		imbalance := j.Imbalance()
		switch {
		case chase.Sub(pxTotal).Abs().GreaterThan(payoutTolerance):
			j.Place(AccountExchange, imbalance, domain.Credit, leadership, PendingDiscrepancy)
			b.log.Warn().
				Str("date", day.Format(domain.LayoutISO)).
				Str("deposit", chase.StringFixed(2)).
				Str("payout_total", pxTotal.StringFixed(2)).
				Msg("deposit does not match payout total")
		case !imbalance.IsZero():
			j.Place(AccountExchange, imbalance, domain.Credit, leadership, roundingDifference)
		}
		journals = append(journals, j)
	}
	return journals
}

// MonthlyTransfers totals the net funds owed per month across every store,
// special stores included, and emits the savings-to-checking transfer for
// each month. Each store's net is rounded before summing.
func (b *PaytronixJournalBuilder) MonthlyTransfers(rows []domain.StoreMonth, rates map[string]decimal.Decimal) (map[string]decimal.Decimal, decimal.Decimal, []domain.Journal) {
	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	leadership := b.dir.LeadershipEntity()
	transferDate := domain.NextBusinessDay(b.today, 1)

	var journals []domain.Journal
	for _, month := range monthsOf(rows) {
		rate := b.rate(rates, month)
		total := decimal.Zero
		for _, r := range rows {
			if !r.Month.Equal(month) {
				continue
			}
			_, net := splitFee(r.Gross, rate)
			total = total.Add(net)
		}

		key := domain.MonthKey(month)
		totals[key] = total
		grand = grand.Add(total)

		label := domain.MonthLabel(month)
		j := domain.Journal{
			Number:   "PxTrf-" + domain.MonthYear(month),
			Date:     transferDate,
			Comment:  fmt.Sprintf("PX gift card funds %s // Transfer %s", label, transferDate.Format(domain.LayoutHuman)),
			Location: leadership,
		}
		detail := fmt.Sprintf("Transfer %s gift card funds on %s", label, transferDate.Format(domain.LayoutHuman))
		j.Place(b.dir.LeadershipSavings(), total, domain.Credit, leadership, detail)
		j.Place(b.dir.LeadershipChecking(), total, domain.Debit, leadership, detail)
		journals = append(journals, j)
	}
	return totals, grand, journals
}

package usecase

import (
	"context"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
	"giftcard-reconciliation/internal/logger"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// PaytronixUseCase orchestrates the gift-card reconciliation run.
type PaytronixUseCase struct {
	source PaytronixSource
	writer ArtifactWriter
	dir    *config.Directory
	clock  Clock
}

// NewPaytronixUseCase creates a new instance of the usecase.
func NewPaytronixUseCase(source PaytronixSource, writer ArtifactWriter, dir *config.Directory, clock Clock) *PaytronixUseCase {
	return &PaytronixUseCase{source: source, writer: writer, dir: dir, clock: clock}
}

// Run loads the inputs, builds the journals and dispatch artifacts, and
// writes them under "PX Gift Cards - <MMDDYYYY>".
func (uc *PaytronixUseCase) Run(ctx context.Context) (*domain.PaytronixReport, error) {
	log := logger.FromContext(ctx)
	today := domain.DateOnly(uc.clock())
	stamp := today.Format(domain.LayoutFileDate)

	// Step 1: Data Ingestion
	deposits, err := uc.source.BankDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get bank deposits: %w", err)
	}
	payouts, err := uc.source.Payouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get payouts: %w", err)
	}
	redemptions, err := uc.source.Redemptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get redemptions: %w", err)
	}

	// Step 2: Fee attribution and aggregation
	rates := FeeRates(payouts)
	agg := AggregateRedemptions(redemptions, uc.dir.IsSpecial)

	// Step 3: Journals
	journals := NewPaytronixJournalBuilder(uc.dir, today, log).Build(agg, rates, deposits, payouts)

	// Step 4: Dispatch artifacts
	dispatcher := NewPaytronixDispatcher(uc.dir, today, log)
	redemptionLines := domain.Flatten(journals.Redemptions)
	batches := dispatcher.BatchTransfers(dispatcher.CNBTransfers(redemptionLines))
	invoices, book := dispatcher.APInvoices(agg.Special, rates)
	achPayments := dispatcher.ACHPayments(redemptionLines)

	label := uc.monthLabel(agg, deposits, payouts, today)
	report := &domain.PaytronixReport{
		RunDate:       today,
		OutputDir:     "PX Gift Cards - " + stamp,
		MonthLabel:    label,
		MonthlyTotals: journals.MonthlyTotals,
		GrandTotal:    journals.GrandTotal,
	}

	// Step 5: Balance verification
	leadershipLines := journals.LeadershipLines()
	for _, lines := range [][]domain.JournalLine{redemptionLines, leadershipLines} {
		for _, number := range domain.Unbalanced(lines, decimal.Zero) {
			log.Warn().Str("journal", number).Msg("journal does not balance")
			report.Unbalanced = append(report.Unbalanced, number)
		}
	}

	// Step 6: Write artifacts
	write := func(name string, fn func(string) error) error {
		full := path.Join(report.OutputDir, name)
		if err := fn(full); err != nil {
			return fmt.Errorf("could not write %s: %w", name, err)
		}
		report.Files = append(report.Files, full)
		return nil
	}

	if err := write(fmt.Sprintf("PX_Redemptions_%s.csv", stamp), func(name string) error {
		return uc.writer.WriteJournal(ctx, name, redemptionLines, domain.LayoutHuman)
	}); err != nil {
		return nil, err
	}
	if err := write(fmt.Sprintf("PX_LeadershipPayouts_%s.csv", label), func(name string) error {
		return uc.writer.WriteJournal(ctx, name, leadershipLines, domain.LayoutHuman)
	}); err != nil {
		return nil, err
	}
	for _, batch := range batches {
		batch := batch
		if err := write(batch.FileName, func(name string) error {
			return uc.writer.WriteTransfers(ctx, name, batch.Rows)
		}); err != nil {
			return nil, err
		}
	}

	invoiceFile := dispatcher.InvoiceFileName(invoices)
	if len(invoices) == 0 {
		log.Info().Str("file", invoiceFile).Msg("no special store redemptions, no AP invoices required")
		report.Files = append(report.Files, invoiceFile)
	} else {
		if err := write(invoiceFile, func(name string) error {
			return uc.writer.WriteInvoices(ctx, name, invoices)
		}); err != nil {
			return nil, err
		}
		if err := write(fmt.Sprintf("MaduroPX_%s.xlsx", label), func(name string) error {
			return uc.writer.WriteSpecialSummary(ctx, name, book)
		}); err != nil {
			return nil, err
		}
	}

	if len(achPayments) > 0 {
		if err := write(dispatcher.ACHFileName(), func(name string) error {
			return uc.writer.WriteACH(ctx, name, achPayments)
		}); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int("redemption_journals", len(journals.Redemptions)).
		Int("payout_journals", len(journals.Payouts)).
		Int("transfer_batches", len(batches)).
		Int("invoices", len(invoices)).
		Int("ach_payments", len(achPayments)).
		Str("grand_total", journals.GrandTotal.StringFixed(2)).
		Msg("paytronix run complete")
	return report, nil
}

// monthLabel describes the months covered by the run's redemptions, falling
// back to the bank and payout dates, then to the run month.
func (uc *PaytronixUseCase) monthLabel(agg RedemptionAggregates, deposits []domain.BankDeposit, payouts []domain.Payout, today time.Time) string {
	months := monthsOf(agg.All())
	if len(months) == 0 {
		seen := make(map[time.Time]bool)
		add := func(t time.Time) {
			if t.IsZero() {
				return
			}
			m := domain.MonthStart(t)
			if !seen[m] {
				seen[m] = true
				months = append(months, m)
			}
		}
		for _, d := range deposits {
			add(d.PostingDate)
		}
		for _, p := range payouts {
			add(p.Created)
		}
		sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	}
	if len(months) == 0 {
		months = []time.Time{domain.MonthStart(today)}
	}
	return MonthRangeLabel(months)
}

package usecase

import (
	"context"
	"fmt"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
	"giftcard-reconciliation/internal/logger"
)

// UberEatsUseCase orchestrates the UberEats payout reconciliation run.
type UberEatsUseCase struct {
	source UberSource
	writer ArtifactWriter
	dir    *config.Directory
	clock  Clock
}

// NewUberEatsUseCase creates a new instance of the usecase.
func NewUberEatsUseCase(source UberSource, writer ArtifactWriter, dir *config.Directory, clock Clock) *UberEatsUseCase {
	return &UberEatsUseCase{source: source, writer: writer, dir: dir, clock: clock}
}

// Run builds the per-order-day journals and their deposit journals and
// writes them as one import file.
func (uc *UberEatsUseCase) Run(ctx context.Context) (*domain.UberReport, error) {
	log := logger.FromContext(ctx)
	today := domain.DateOnly(uc.clock())

	// Step 1: Data Ingestion
	orders, err := uc.source.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get uber orders: %w", err)
	}
	pos, err := uc.source.POSRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get toast orders: %w", err)
	}

	// Step 2: Payout grouping
	groups := GroupByPayout(RepairPayoutDates(orders))

	// Step 3: Journals
	journals := NewUberJournalBuilder(uc.dir, log).Build(groups, pos)
	journalLines := domain.Flatten(journals)
	deposits := NewUberDepositBuilder(uc.dir, log).Build(journalLines)

	lines := append(journalLines, domain.Flatten(deposits)...)
	report := &domain.UberReport{
		RunDate:  today,
		File:     fmt.Sprintf("UE_PayoutImport_%s.csv", today.Format(domain.LayoutFileDate)),
		Journals: len(journals),
		Deposits: len(deposits),
	}
	for _, number := range domain.Unbalanced(lines, BalanceTolerance) {
		log.Warn().Str("journal", number).Msg("journal does not balance")
		report.Unbalanced = append(report.Unbalanced, number)
	}

	if err := uc.writer.WriteJournal(ctx, report.File, lines, domain.LayoutISO); err != nil {
		return nil, fmt.Errorf("could not write %s: %w", report.File, err)
	}

	log.Info().
		Int("payout_groups", len(groups)).
		Int("journals", report.Journals).
		Int("deposits", report.Deposits).
		Int("unbalanced", len(report.Unbalanced)).
		Msg("uber run complete")
	return report, nil
}

package usecase

import (
	"context"

	"giftcard-reconciliation/internal/domain"
)

// PaytronixSource loads the gift-card pipeline inputs.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type PaytronixSource interface {
	BankDeposits(ctx context.Context) ([]domain.BankDeposit, error)
	Payouts(ctx context.Context) ([]domain.Payout, error)
	Redemptions(ctx context.Context) ([]domain.Redemption, error)
}

// UberSource loads the UberEats pipeline inputs.
type UberSource interface {
	Orders(ctx context.Context) ([]domain.Order, error)
	POSRecords(ctx context.Context) ([]domain.POSRecord, error)
}

// ArtifactWriter persists run outputs. Names are relative to the writer's
// output root.
type ArtifactWriter interface {
	WriteJournal(ctx context.Context, name string, lines []domain.JournalLine, dateLayout string) error
	WriteTransfers(ctx context.Context, name string, transfers []domain.CNBTransfer) error
	WriteInvoices(ctx context.Context, name string, invoices []domain.APInvoice) error
	WriteACH(ctx context.Context, name string, payments []domain.ACHPayment) error
	WriteSpecialSummary(ctx context.Context, name string, book domain.SpecialWorkbook) error
}

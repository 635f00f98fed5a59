package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"giftcard-reconciliation/internal/domain"
	"giftcard-reconciliation/internal/logger"
)

var journalHeader = []string{
	"Journal No", "Journal Date", "Journal Comment", "Journal Location",
	"Account", "Debit", "Credit", "Detail Location", "Detail Comment",
}

var transferHeader = []string{"Month", "From Account", "To Account", "Amount", "Description"}

var invoiceHeader = []string{
	"Record", "Invoice No", "Invoice Date", "Vendor", "Terms", "Location",
	"Amount", "Account", "Description",
}

// FileWriter writes run artifacts below a root directory. Names passed to it
// may contain sub-directories, which are created on demand.
type FileWriter struct {
	root string
}

// NewFileWriter creates a writer rooted at dir.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{root: dir}
}

func (w *FileWriter) path(name string) (string, error) {
	path := filepath.Join(w.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory for %s: %w", name, err)
	}
	return path, nil
}

// WriteJournal writes journal lines as a journal import CSV. Line dates are
// rendered with dateLayout.
func (w *FileWriter) WriteJournal(ctx context.Context, name string, lines []domain.JournalLine, dateLayout string) error {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.Number,
			l.Date.Format(dateLayout),
			l.Comment,
			l.Location,
			l.Account,
			l.Debit.StringFixed(2),
			l.Credit.StringFixed(2),
			l.DetailLocation,
			l.DetailComment,
		})
	}
	return w.writeCSV(ctx, name, journalHeader, rows)
}

// WriteTransfers writes one CNB internal-transfer batch.
func (w *FileWriter) WriteTransfers(ctx context.Context, name string, transfers []domain.CNBTransfer) error {
	rows := make([][]string, 0, len(transfers))
	for _, t := range transfers {
		rows = append(rows, []string{t.Month, t.FromAccount, t.ToAccount, t.Amount.StringFixed(2), t.Description})
	}
	return w.writeCSV(ctx, name, transferHeader, rows)
}

// WriteInvoices writes AP invoices as a header row followed by its detail
// rows.
func (w *FileWriter) WriteInvoices(ctx context.Context, name string, invoices []domain.APInvoice) error {
	var rows [][]string
	for _, inv := range invoices {
		date := inv.Date.Format(domain.LayoutHuman)
		rows = append(rows, []string{
			"Header", inv.Number, date, inv.Vendor, inv.Terms, inv.Location,
			inv.Amount.StringFixed(2), "", inv.Description,
		})
		for _, d := range inv.Details {
			rows = append(rows, []string{
				"Detail", inv.Number, date, inv.Vendor, inv.Terms, d.Location,
				d.Amount.StringFixed(2), d.Account, d.Description,
			})
		}
	}
	return w.writeCSV(ctx, name, invoiceHeader, rows)
}

func (w *FileWriter) writeCSV(ctx context.Context, name string, header []string, rows [][]string) (err error) {
	path, err := w.path(name)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}

	log := logger.FromContext(ctx)
	log.Info().Str("file", path).Int("rows", len(rows)).Msg("wrote artifact")
	return nil
}

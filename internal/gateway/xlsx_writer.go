package gateway

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"giftcard-reconciliation/internal/domain"
	"giftcard-reconciliation/internal/logger"
)

var achHeader = []interface{}{
	"Amount", "SEC Code", "Originator Account", "Originator Name",
	"Vendor Name", "Vendor Account", "Vendor Routing",
}

var summaryHeader = []interface{}{"Store", "Gross", "Fee", "Net", "Fee %"}

var detailHeader = []interface{}{"Store", "Month", "Gross", "Fee", "Net", "Fee Rate"}

// WriteACH writes an ACH payment batch workbook.
func (w *FileWriter) WriteACH(ctx context.Context, name string, payments []domain.ACHPayment) error {
	rows := make([][]interface{}, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []interface{}{
			p.Amount.InexactFloat64(), p.SECCode, p.OriginatorAccount, p.OriginatorLabel,
			p.VendorName, p.VendorAccount, p.VendorRouting,
		})
	}
	return w.writeWorkbook(ctx, name, []sheet{{name: "ACH", header: achHeader, rows: rows}})
}

// WriteSpecialSummary writes the two-sheet special-store workbook.
func (w *FileWriter) WriteSpecialSummary(ctx context.Context, name string, book domain.SpecialWorkbook) error {
	summary := make([][]interface{}, 0, len(book.Summary))
	for _, s := range book.Summary {
		summary = append(summary, []interface{}{
			s.Store,
			s.Gross.InexactFloat64(),
			s.Fee.InexactFloat64(),
			s.Net.InexactFloat64(),
			s.FeeRate.Mul(domain.Hundred).StringFixed(2) + "%",
		})
	}
	detail := make([][]interface{}, 0, len(book.Detail))
	for _, d := range book.Detail {
		detail = append(detail, []interface{}{
			d.Store,
			domain.MonthLabel(d.Month),
			d.Gross.InexactFloat64(),
			d.Fee.InexactFloat64(),
			d.Net.InexactFloat64(),
			d.Rate.InexactFloat64(),
		})
	}
	return w.writeWorkbook(ctx, name, []sheet{
		{name: "Summary", header: summaryHeader, rows: summary},
		{name: "Detail", header: detailHeader, rows: detail},
	})
}

type sheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
}

func (w *FileWriter) writeWorkbook(ctx context.Context, name string, sheets []sheet) (err error) {
	path, err := w.path(name)
	if err != nil {
		return err
	}

	book := excelize.NewFile()
	defer func() {
		if cerr := book.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook %s: %w", path, cerr)
		}
	}()

	for i, s := range sheets {
		if i == 0 {
			if err := book.SetSheetName(book.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", s.name, err)
			}
		} else if _, err := book.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", s.name, err)
		}

		header := s.header
		if err := book.SetSheetRow(s.name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header of %s: %w", s.name, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			row := row
			if err := book.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("failed to write row %d of %s: %w", r+2, s.name, err)
			}
		}
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	log := logger.FromContext(ctx)
	log.Info().Str("file", path).Int("sheets", len(sheets)).Msg("wrote workbook")
	return nil
}

package gateway

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/domain"
	"giftcard-reconciliation/internal/logger"
)

// PaytronixMarker identifies processor deposits in the bank log.
const PaytronixMarker = "ORIG CO NAME:Paytronix"

// CSVPaytronixRepository loads the gift-card inputs from CSV files.
type CSVPaytronixRepository struct {
	files PaytronixFiles
}

// NewCSVPaytronixRepository creates a repository over discovered files.
func NewCSVPaytronixRepository(files PaytronixFiles) *CSVPaytronixRepository {
	return &CSVPaytronixRepository{files: files}
}

// BankDeposits reads the Chase log and keeps only Paytronix deposits.
//
// Two column conventions are accepted. In the standard one "Posting Date"
// holds the date, "Amount" the amount and "Description" the text. In the
// shifted one (rows carrying an extra trailing field) the date sits under
// "Details", the amount under "Description" and the text under "Posting
// Date". The convention is chosen per row by whether "Posting Date" parses
// as a date.
func (r *CSVPaytronixRepository) BankDeposits(ctx context.Context) ([]domain.BankDeposit, error) {
	log := logger.FromContext(ctx)
	t, err := readTable(r.files.Chase, encodingUTF8, false)
	if err != nil {
		return nil, err
	}
	cells := cellReader{log: log, file: filepath.Base(r.files.Chase)}

	var deposits []domain.BankDeposit
	for i, record := range t.rows {
		row := i + 2
		posting := t.get(log, record, "Posting Date")

		var dateCell, amountCell, description string
		if _, err := parseTime(posting); err == nil {
			dateCell = posting
			amountCell = t.get(log, record, "Amount")
			description = t.get(log, record, "Description")
		} else {
			dateCell = t.get(log, record, "Details")
			amountCell = t.get(log, record, "Description")
			description = posting
		}

		if !strings.Contains(description, PaytronixMarker) {
			continue
		}
		deposits = append(deposits, domain.BankDeposit{
			PostingDate: cells.date(row, "Posting Date", dateCell),
			Amount:      cells.money(row, "Amount", amountCell),
			Description: description,
		})
	}
	log.Info().Str("file", cells.file).Int("deposits", len(deposits)).Msg("loaded bank deposits")
	return deposits, nil
}

// Payouts reads the processor payout register.
func (r *CSVPaytronixRepository) Payouts(ctx context.Context) ([]domain.Payout, error) {
	log := logger.FromContext(ctx)
	t, err := readTable(r.files.Payouts, encodingUTF8, false)
	if err != nil {
		return nil, err
	}
	cells := cellReader{log: log, file: filepath.Base(r.files.Payouts)}

	payouts := make([]domain.Payout, 0, len(t.rows))
	for i, record := range t.rows {
		row := i + 2
		payouts = append(payouts, domain.Payout{
			Created: cells.date(row, "Payout created date", t.get(log, record, "Payout created date", "Created", "Date")),
			Gross:   cells.money(row, "Gross", t.get(log, record, "Gross")),
			Fees:    cells.money(row, "Fees", t.get(log, record, "Fees", "Fee")),
			Total:   cells.money(row, "Total", t.get(log, record, "Total", "Net")),
		})
	}
	log.Info().Str("file", cells.file).Int("payouts", len(payouts)).Msg("loaded payouts")
	return payouts, nil
}

// Redemptions concatenates every Stored Value report. Each file starts with
// a banner row above the header.
func (r *CSVPaytronixRepository) Redemptions(ctx context.Context) ([]domain.Redemption, error) {
	log := logger.FromContext(ctx)

	var redemptions []domain.Redemption
	for _, path := range r.files.Stored {
		t, err := readTable(path, encodingUTF8, true)
		if err != nil {
			return nil, err
		}
		cells := cellReader{log: log, file: filepath.Base(path)}
		for i, record := range t.rows {
			row := i + 3
			template := domain.CardTemplateOther
			if strings.EqualFold(t.get(log, record, "Card Template", "Template"), string(domain.CardTemplateEGift)) {
				template = domain.CardTemplateEGift
			}
			redemptions = append(redemptions, domain.Redemption{
				Store:           t.get(log, record, "Store Name", "Store"),
				Template:        template,
				Date:            cells.date(row, "Date", t.get(log, record, "Date", "Transaction Date")),
				DollarsRedeemed: cells.money(row, "Dollars Redeemed", t.get(log, record, "Dollars Redeemed")),
			})
		}
		log.Info().Str("file", cells.file).Int("rows", len(t.rows)).Msg("loaded redemptions")
	}
	return redemptions, nil
}

// CSVUberRepository loads the UberEats payout detail and the Toast orders.
type CSVUberRepository struct {
	files UberFiles
}

// NewCSVUberRepository creates a repository over discovered files.
func NewCSVUberRepository(files UberFiles) *CSVUberRepository {
	return &CSVUberRepository{files: files}
}

// Orders reads the UberEats payment detail export, skipping its banner row.
func (r *CSVUberRepository) Orders(ctx context.Context) ([]domain.Order, error) {
	log := logger.FromContext(ctx)
	t, err := readTable(r.files.Payouts, encodingUTF8, true)
	if err != nil {
		return nil, err
	}
	cells := cellReader{log: log, file: filepath.Base(r.files.Payouts)}
	money := func(record []string, row int, names ...string) decimal.Decimal {
		return cells.money(row, names[0], t.get(log, record, names...))
	}

	orders := make([]domain.Order, 0, len(t.rows))
	for i, record := range t.rows {
		row := i + 3
		orders = append(orders, domain.Order{
			Store:      t.get(log, record, "Store Name", "Store"),
			OrderDate:  cells.date(row, "Order Date", t.get(log, record, "Order Date")),
			PayoutDate: cells.optionalDate(row, "Payout Date", t.get(log, record, "Payout Date")),
			DiningMode: parseDiningMode(t.get(log, record, "Dining Mode")),
			Status:     domain.OrderStatus(t.get(log, record, "Order Status")),

			SalesExclTax:              money(record, row, "Sales (excl. tax)"),
			SalesInclTax:              money(record, row, "Sales (incl. tax)"),
			Promotions:                money(record, row, "Promotions on items", "Promotions"),
			MarketingAdjustment:       money(record, row, "Marketing Adjustment"),
			OtherPayments:             money(record, row, "Other payments"),
			MarketplaceFee:            money(record, row, "Marketplace Fee"),
			RefundsExclTax:            money(record, row, "Refunds (excl tax)", "Refunds (excl. tax)"),
			TotalPayout:               money(record, row, "Total payout"),
			TaxOnSales:                money(record, row, "Tax on Sales"),
			TaxOnRefunds:              money(record, row, "Tax on Refunds"),
			TaxOnPromotion:            money(record, row, "Tax on Promotion on items", "Tax on Promotion"),
			MarketplaceFacilitatorTax: money(record, row, "Marketplace Facilitator Tax"),
			PriceAdjustment:           money(record, row, "Price adjustments (excl. tax)", "Price Adjustments"),
			TaxOnPriceAdjustment:      money(record, row, "Tax on Price Adjustments"),
		})
	}
	log.Info().Str("file", cells.file).Int("orders", len(orders)).Msg("loaded uber orders")
	return orders, nil
}

// POSRecords reads the Toast order export, which is cp1252 encoded.
func (r *CSVUberRepository) POSRecords(ctx context.Context) ([]domain.POSRecord, error) {
	log := logger.FromContext(ctx)
	t, err := readTable(r.files.Toast, encodingWindows1252, false)
	if err != nil {
		return nil, err
	}
	cells := cellReader{log: log, file: filepath.Base(r.files.Toast)}

	records := make([]domain.POSRecord, 0, len(t.rows))
	for i, record := range t.rows {
		row := i + 2
		option := t.get(log, record, "Dining Options")
		records = append(records, domain.POSRecord{
			Location:      t.get(log, record, "Location"),
			Opened:        cells.timestamp(row, "Opened", t.get(log, record, "Opened")),
			DiningOptions: option,
			Channel:       ClassifyDiningOption(option),
			Amount:        cells.money(row, "Amount", t.get(log, record, "Amount")),
			Tax:           cells.money(row, "Tax", t.get(log, record, "Tax")),
		})
	}
	log.Info().Str("file", cells.file).Int("orders", len(records)).Msg("loaded toast orders")
	return records, nil
}

func parseDiningMode(raw string) domain.DiningMode {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "pickup" || strings.Contains(s, "pick up") || strings.Contains(s, "pickup"):
		return domain.DiningModePickup
	case strings.Contains(s, "delivery"):
		return domain.DiningModeDelivery
	}
	return domain.DiningModeOther
}

// ClassifyDiningOption maps a Toast dining option to an UberEats channel.
// Options that do not mention Uber are never UberEats traffic.
func ClassifyDiningOption(option string) domain.POSChannel {
	s := strings.ToLower(option)
	if !strings.Contains(s, "uber") {
		return domain.POSChannelOther
	}
	switch {
	case strings.Contains(s, "pickup"), strings.Contains(s, "pick up"), strings.Contains(s, "takeout"), strings.Contains(s, "take out"):
		return domain.POSChannelPickup
	case strings.Contains(s, "delivery"):
		return domain.POSChannelDelivery
	}
	return domain.POSChannelOther
}

func (f PaytronixFiles) String() string {
	return fmt.Sprintf("chase=%s payouts=%s stored=%v", f.Chase, f.Payouts, f.Stored)
}

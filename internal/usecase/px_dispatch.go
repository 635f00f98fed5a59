package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"giftcard-reconciliation/internal/config"
	"giftcard-reconciliation/internal/domain"
)

// MaxTransfersPerBatch is the CNB upload limit per file.
const MaxTransfersPerBatch = 35

// NoInvoicesFileName is reported instead of an invoice file when no special
// store had redemptions. Nothing is written under this name.
const NoInvoicesFileName = "No_AP_Invoices_Required.txt"

const invoiceTerms = "Due Upon Receipt"

// PaytronixDispatcher derives the money-movement artifacts from the
// gift-card journals: CNB internal transfers, AP invoices and ACH payments.
type PaytronixDispatcher struct {
	dir   *config.Directory
	today time.Time
	log   zerolog.Logger
}

// NewPaytronixDispatcher creates a dispatcher for a run on today.
func NewPaytronixDispatcher(dir *config.Directory, today time.Time, log zerolog.Logger) *PaytronixDispatcher {
	return &PaytronixDispatcher{dir: dir, today: domain.DateOnly(today), log: log}
}

// CNBTransfers reads each redemption journal for the net amount credited to
// Leadership checking and the store checking account it is debited to.
// Stores whose account resolves to the ##N/A## sentinel are skipped; they
// are paid by ACH.
func (d *PaytronixDispatcher) CNBTransfers(lines []domain.JournalLine) []domain.CNBTransfer {
	leadership := d.dir.LeadershipEntity()
	from, ok := d.dir.AccountNumber(d.dir.LeadershipChecking())
	if !ok {
		d.log.Warn().Str("account", d.dir.LeadershipChecking()).Msg("no account number for leadership checking")
	}

	var transfers []domain.CNBTransfer
	for _, group := range groupByNumber(lines) {
		var net decimal.Decimal
		var dest *domain.JournalLine
		foundNet := false
		for i := range group {
			l := &group[i]
			if !foundNet && l.DetailLocation == leadership && l.Credit.IsPositive() && strings.HasPrefix(l.Account, checkingPrefix) {
				net = l.Credit
				foundNet = true
			}
			if dest == nil && l.DetailLocation != leadership && strings.HasPrefix(l.Account, checkingPrefix) {
				dest = l
			}
		}
		if !foundNet || dest == nil {
			d.log.Warn().Str("journal", group[0].Number).Msg("redemption journal without transfer lines")
			continue
		}

		to, ok := d.dir.AccountNumber(dest.Account)
		if !ok {
			d.log.Warn().Str("journal", group[0].Number).Str("account", dest.Account).Msg("no account number for checking label, transfer skipped")
			continue
		}
		if to == domain.AccountNotAvailable {
			continue
		}

		month := domain.MonthLabel(group[0].Date)
		transfers = append(transfers, domain.CNBTransfer{
			Month:       month,
			FromAccount: from,
			ToAccount:   to,
			Amount:      net,
			Description: fmt.Sprintf("PX Gift Cards %s - %s", month, dest.DetailLocation),
		})
	}
	return transfers
}

// BatchTransfers splits transfers into upload files of at most
// MaxTransfersPerBatch rows. A -NN suffix is added only when more than one
// file is needed.
func (d *PaytronixDispatcher) BatchTransfers(transfers []domain.CNBTransfer) []domain.TransferBatch {
	if len(transfers) == 0 {
		return nil
	}
	count := (len(transfers) + MaxTransfersPerBatch - 1) / MaxTransfersPerBatch
	stamp := d.today.Format(domain.LayoutFileDate)

	batches := make([]domain.TransferBatch, 0, count)
	for i := 0; i < count; i++ {
		end := min((i+1)*MaxTransfersPerBatch, len(transfers))
		name := fmt.Sprintf("PX_CNB_Transfer_%s.csv", stamp)
		if count > 1 {
			name = fmt.Sprintf("PX_CNB_Transfer_%s-%02d.csv", stamp, i+1)
		}
		batches = append(batches, domain.TransferBatch{
			FileName: name,
			Rows:     transfers[i*MaxTransfersPerBatch : end],
		})
	}
	return batches
}

// APInvoices bills each special store for its redemptions net of fees, one
// invoice per store across all months. The same figures feed the special
// store workbook.
func (d *PaytronixDispatcher) APInvoices(rows []domain.StoreMonth, rates map[string]decimal.Decimal) ([]domain.APInvoice, domain.SpecialWorkbook) {
	var book domain.SpecialWorkbook
	var invoices []domain.APInvoice
	stamp := d.today.Format(domain.LayoutFileDate)

	for _, store := range d.dir.SpecialStores() {
		var gross, fee decimal.Decimal
		var months []time.Time
		for _, r := range rows {
			if r.Store != store {
				continue
			}
			rate, ok := rates[r.MonthKey()]
			if !ok {
				rate = decimal.Zero
			}
			f, n := splitFee(r.Gross, rate)
			gross = gross.Add(r.Gross)
			fee = fee.Add(f)
			months = append(months, r.Month)
			book.Detail = append(book.Detail, domain.SpecialDetail{
				Store: store,
				Month: r.Month,
				Gross: r.Gross,
				Fee:   f.Neg(),
				Net:   n,
				Rate:  rate,
			})
		}
		if len(months) == 0 {
			continue
		}

		net := gross.Sub(fee)
		feeRate := decimal.Zero
		if !gross.IsZero() {
			feeRate = fee.Div(gross)
		}
		book.Summary = append(book.Summary, domain.SpecialSummary{
			Store:   store,
			Gross:   gross,
			Fee:     fee.Neg(),
			Net:     net,
			FeeRate: feeRate,
		})

		vendor, _ := d.dir.SpecialVendor(store)
		location, ok := d.dir.StoreEntity(store)
		if !ok {
			location = store
		}
		label := MonthRangeLabel(months)
		description := fmt.Sprintf("PX eGift redemptions %s %s", store, label)
		invoices = append(invoices, domain.APInvoice{
			Number:      fmt.Sprintf("PX5A-%s-%d", stamp, len(invoices)+1),
			Date:        d.today,
			Vendor:      vendor,
			Terms:       invoiceTerms,
			Store:       store,
			Location:    location,
			Amount:      net.Abs(),
			Description: description,
			Details: []domain.APInvoiceDetail{
				{Account: AccountOnlineGiftCard, Amount: gross, Location: location, Description: description},
				{Account: AccountOnlineGiftCardFee, Amount: fee.Neg(), Location: location, Description: description},
			},
		})
	}
	return invoices, book
}

// InvoiceFileName returns the AP invoice file name, or NoInvoicesFileName
// when there is nothing to bill.
func (d *PaytronixDispatcher) InvoiceFileName(invoices []domain.APInvoice) string {
	if len(invoices) == 0 {
		return NoInvoicesFileName
	}
	return fmt.Sprintf("AP_Invoices_Maduro_%s.csv", d.today.Format(domain.LayoutFileDate))
}

// ACHPayments sums, for each ACH-external store, the checking debits booked
// to its legal entity and emits one CCD payment when the total is positive.
func (d *PaytronixDispatcher) ACHPayments(lines []domain.JournalLine) []domain.ACHPayment {
	originator, _ := d.dir.AccountNumber(d.dir.LeadershipChecking())

	var payments []domain.ACHPayment
	for _, v := range d.dir.ACHExternals() {
		total := decimal.Zero
		for _, l := range lines {
			if strings.Contains(l.DetailLocation, v.Store) && strings.HasPrefix(l.Account, checkingPrefix) {
				total = total.Add(l.Debit)
			}
		}
		if !total.IsPositive() {
			continue
		}
		payments = append(payments, domain.ACHPayment{
			Amount:            total,
			SECCode:           domain.SECCodeCCD,
			OriginatorAccount: originator,
			OriginatorLabel:   d.dir.LeadershipEntity(),
			VendorName:        v.Vendor,
			VendorAccount:     v.Account,
			VendorRouting:     v.Routing,
			Store:             v.Store,
		})
	}
	return payments
}

// ACHFileName returns the ACH batch workbook name.
func (d *PaytronixDispatcher) ACHFileName() string {
	return fmt.Sprintf("ACHB_PX_%s.xlsx", d.today.Format(domain.LayoutFileDate))
}

// groupByNumber splits lines into runs sharing a journal number, in
// first-seen order.
func groupByNumber(lines []domain.JournalLine) [][]domain.JournalLine {
	index := make(map[string]int)
	var groups [][]domain.JournalLine
	for _, l := range lines {
		i, ok := index[l.Number]
		if !ok {
			i = len(groups)
			index[l.Number] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], l)
	}
	return groups
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountNotAvailable marks a checking account that lives outside the
// primary bank. Stores resolving to it are paid by ACH instead of by
// internal transfer.
const AccountNotAvailable = "##N/A##"

// CNBTransfer is one internal-transfer instruction. Amount is always positive.
type CNBTransfer struct {
	Month       string          `json:"month"`
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// TransferBatch is one CNB upload file.
type TransferBatch struct {
	FileName string        `json:"file_name"`
	Rows     []CNBTransfer `json:"rows"`
}

// APInvoiceDetail is a GL distribution line of a vendor invoice.
type APInvoiceDetail struct {
	Account     string          `json:"account"`
	Amount      decimal.Decimal `json:"amount"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
}

// APInvoice is a vendor invoice header with its two detail rows.
type APInvoice struct {
	Number      string            `json:"number"`
	Date        time.Time         `json:"date"`
	Vendor      string            `json:"vendor"`
	Terms       string            `json:"terms"`
	Store       string            `json:"store"`
	Location    string            `json:"location"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Details     []APInvoiceDetail `json:"details"`
}

// SECCodeCCD is the corporate credit/debit SEC code used for every ACH row.
const SECCodeCCD = "CCD"

// ACHPayment is one external ACH payment row.
type ACHPayment struct {
	Amount            decimal.Decimal `json:"amount"`
	SECCode           string          `json:"sec_code"`
	OriginatorAccount string          `json:"originator_account"`
	OriginatorLabel   string          `json:"originator_label"`
	VendorName        string          `json:"vendor_name"`
	VendorAccount     string          `json:"vendor_account"`
	VendorRouting     string          `json:"vendor_routing"`
	Store             string          `json:"store"`
}

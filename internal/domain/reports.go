package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreMonth is the eGift redemption total of one store in one month.
// Gross is the rounded absolute value of the summed redemptions.
type StoreMonth struct {
	Store string          `json:"store"`
	Month time.Time       `json:"month"`
	Gross decimal.Decimal `json:"gross"`
}

// MonthKey returns the MM/YYYY key of the row.
func (s StoreMonth) MonthKey() string {
	return MonthKey(s.Month)
}

// SpecialDetail is one (store, month) row of the special-store workbook.
type SpecialDetail struct {
	Store string          `json:"store"`
	Month time.Time       `json:"month"`
	Gross decimal.Decimal `json:"gross"`
	Fee   decimal.Decimal `json:"fee"`
	Net   decimal.Decimal `json:"net"`
	Rate  decimal.Decimal `json:"rate"`
}

// SpecialSummary is the per-store roll-up of SpecialDetail rows. Fee is
// reported as a negative amount.
type SpecialSummary struct {
	Store   string          `json:"store"`
	Gross   decimal.Decimal `json:"gross"`
	Fee     decimal.Decimal `json:"fee"`
	Net     decimal.Decimal `json:"net"`
	FeeRate decimal.Decimal `json:"fee_rate"`
}

// SpecialWorkbook is the content of the MaduroPX workbook.
type SpecialWorkbook struct {
	Summary []SpecialSummary `json:"summary"`
	Detail  []SpecialDetail  `json:"detail"`
}

// PaytronixReport describes a finished gift-card run.
type PaytronixReport struct {
	RunDate       time.Time                  `json:"run_date"`
	OutputDir     string                     `json:"output_dir"`
	MonthLabel    string                     `json:"month_label"`
	Files         []string                   `json:"files"`
	MonthlyTotals map[string]decimal.Decimal `json:"monthly_totals"`
	GrandTotal    decimal.Decimal            `json:"grand_total"`
	Unbalanced    []string                   `json:"unbalanced_journals"`
}

// UberReport describes a finished UberEats run.
type UberReport struct {
	RunDate    time.Time `json:"run_date"`
	File       string    `json:"file"`
	Journals   int       `json:"journals"`
	Deposits   int       `json:"deposits"`
	Unbalanced []string  `json:"unbalanced_journals"`
}

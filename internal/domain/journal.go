package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is one row of a journal import table.
type JournalLine struct {
	Number         string          `json:"journal_number"`
	Date           time.Time       `json:"date"`
	Comment        string          `json:"journal_comment"`
	Location       string          `json:"journal_location"`
	Account        string          `json:"account"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	DetailLocation string          `json:"detail_location"`
	DetailComment  string          `json:"detail_comment"`
}

// Net returns debit minus credit.
func (l JournalLine) Net() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// Shift moves the line's net by delta and re-places it so that at most one
// column is non-zero.
func (l *JournalLine) Shift(delta decimal.Decimal) {
	l.Debit, l.Credit = Place(l.Net().Add(delta), Debit)
}

// Journal accumulates the lines of one journal entry. Header fields are
// stamped onto every line placed through it.
type Journal struct {
	Number   string
	Date     time.Time
	Comment  string
	Location string
	Lines    []JournalLine
}

// Place appends a line for account holding value on side def (or |value| on
// the opposite side when value is negative) and returns its index.
func (j *Journal) Place(account string, value decimal.Decimal, def Side, detailLocation, detailComment string) int {
	debit, credit := Place(value, def)
	j.Lines = append(j.Lines, JournalLine{
		Number:         j.Number,
		Date:           j.Date,
		Comment:        j.Comment,
		Location:       j.Location,
		Account:        account,
		Debit:          debit,
		Credit:         credit,
		DetailLocation: detailLocation,
		DetailComment:  detailComment,
	})
	return len(j.Lines) - 1
}

// Imbalance returns Σ debit − Σ credit over the journal's lines.
func (j *Journal) Imbalance() decimal.Decimal {
	return Imbalance(j.Lines)
}

// Imbalance returns Σ debit − Σ credit over lines.
func Imbalance(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Net())
	}
	return total
}

// Flatten concatenates the lines of journals in order.
func Flatten(journals []Journal) []JournalLine {
	var lines []JournalLine
	for _, j := range journals {
		lines = append(lines, j.Lines...)
	}
	return lines
}

// Unbalanced returns, in first-seen order, the journal numbers whose
// |Σ debit − Σ credit| exceeds tolerance.
func Unbalanced(lines []JournalLine, tolerance decimal.Decimal) []string {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, l := range lines {
		if _, ok := totals[l.Number]; !ok {
			order = append(order, l.Number)
		}
		totals[l.Number] = totals[l.Number].Add(l.Net())
	}

	var out []string
	for _, number := range order {
		if totals[number].Abs().GreaterThan(tolerance) {
			out = append(out, number)
		}
	}
	return out
}

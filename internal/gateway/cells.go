package gateway

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var errEmptyCell = errors.New("empty cell")

var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 MST",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04 PM",
	"1/2/06 3:04 PM",
	"1/2/06 15:04",
}

// parseMoney accepts plain decimals as well as "$1,234.50", "-$12.00" and
// accounting negatives such as "(12.00)".
func parseMoney(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, errEmptyCell
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// parseTime tries every known layout and returns the first match.
func parseTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, errEmptyCell
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// cellReader converts cells of one file, logging and zeroing malformed values.
type cellReader struct {
	log  zerolog.Logger
	file string
}

func (c cellReader) warn(row int, column, raw string, err error) {
	c.log.Warn().
		Str("file", c.file).
		Int("row", row).
		Str("column", column).
		Str("value", raw).
		Err(err).
		Msg("malformed cell coerced to zero")
}

func (c cellReader) money(row int, column, raw string) decimal.Decimal {
	d, err := parseMoney(raw)
	if err != nil && !errors.Is(err, errEmptyCell) {
		c.warn(row, column, raw, err)
	}
	return d
}

// date returns the calendar day of the cell, or the zero time on failure.
func (c cellReader) date(row int, column, raw string) time.Time {
	t, err := parseTime(raw)
	if err != nil {
		c.warn(row, column, raw, err)
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// optionalDate is like date but an empty cell yields nil without a warning.
func (c cellReader) optionalDate(row int, column, raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t, err := parseTime(raw)
	if err != nil {
		c.warn(row, column, raw, err)
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// timestamp keeps the clock portion of the cell.
func (c cellReader) timestamp(row int, column, raw string) time.Time {
	t, err := parseTime(raw)
	if err != nil {
		c.warn(row, column, raw, err)
		return time.Time{}
	}
	return t
}

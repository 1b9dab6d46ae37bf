package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"inventory-manager/feature/inventory/models"
)

// monthIndex maps full English month names to their calendar index.
// Names are matched case-sensitively, same as the textual date grammar.
var monthIndex = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// ParsePrice normalizes a raw price string to integer cents.
//
// It strips one leading currency symbol and comma thousands separators, then
// parses the remainder as a non-negative decimal. Fractions beyond two digits
// are truncated toward zero, the canonical rounding rule for this store.
// The conversion is done entirely on the digit strings; no float is involved,
// so the result is exact.
func ParsePrice(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "." {
		return 0, fmt.Errorf("%w: %q", models.ErrMalformedPrice, raw)
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", models.ErrMalformedPrice, raw)
		}
	}

	var units int64
	if intPart != "" {
		var err error
		units, err = strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", models.ErrMalformedPrice, raw)
		}
	}

	// Two fraction digits make one cent unit; extra digits are truncated.
	frac := fracPart
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrMalformedPrice, raw)
	}

	return units*100 + cents, nil
}

// FormatPrice renders integer cents as a human decimal string ("12.34").
// It is the exact inverse of ParsePrice for two-digit decimals, which keeps
// export/import cycles drift-free.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// ParseDate parses a raw date string using the named grammar.
//
// DateFormatSlashMDY accepts "MM/DD/YYYY"; DateFormatMonthDMY accepts
// "MonthName DD, YYYY" with the comma optional. The result is the calendar
// date at UTC midnight. Out-of-range months/days and dates that do not exist
// on the calendar (e.g. February 30) are rejected, never silently adjusted.
func ParseDate(raw string, format models.DateFormat) (time.Time, error) {
	s := strings.TrimSpace(raw)

	var year, day int
	var month time.Month

	switch format {
	case models.DateFormatSlashMDY:
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("%w: %q", models.ErrMalformedDate, raw)
		}
		m, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		d, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		y, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, fmt.Errorf("%w: %q", models.ErrMalformedDate, raw)
		}
		month, day, year = time.Month(m), d, y

	case models.DateFormatMonthDMY:
		parts := strings.Fields(s)
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("%w: %q", models.ErrMalformedDate, raw)
		}
		m, ok := monthIndex[parts[0]]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: unknown month in %q", models.ErrMalformedDate, raw)
		}
		d, err1 := strconv.Atoi(strings.TrimSuffix(parts[1], ","))
		y, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil {
			return time.Time{}, fmt.Errorf("%w: %q", models.ErrMalformedDate, raw)
		}
		month, day, year = m, d, y

	default:
		return time.Time{}, fmt.Errorf("%w: unknown grammar %q", models.ErrMalformedDate, format)
	}

	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrMalformedDate, raw)
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes impossible dates (February 30 becomes March 1);
	// reject anything that did not survive the round trip unchanged.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", models.ErrMalformedDate, raw)
	}

	return t, nil
}

// FormatDate renders a date as "MM/DD/YYYY", the export shape. It matches the
// default import grammar so exported files re-import without conversion.
func FormatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// ParseQuantity parses a non-negative integer count.
func ParseQuantity(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", models.ErrMalformedQuantity, raw)
	}
	return n, nil
}

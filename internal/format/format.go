// Package format renders money and dates for emails, PDFs and SMS text.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats a dollar amount as "$1,500.00".
func Currency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	f, _ := rounded.Float64()
	return sign + "$" + printer.Sprintf("%.2f", f)
}

// Cents formats integer cents as dollars.
func Cents(cents int64) string {
	return Currency(decimal.New(cents, -2))
}

// Date formats a date as "Jan 2, 2006".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// DaysUntil returns whole calendar days from now until due. Negative when due
// is in the past.
func DaysUntil(due, now time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// DueLabel describes a due date relative to now, e.g. "due in 3 days" or
// "5 days overdue".
func DueLabel(due, now time.Time) string {
	days := DaysUntil(due, now)
	switch {
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	case days > 1:
		return printer.Sprintf("due in %d days", days)
	case days == -1:
		return "1 day overdue"
	default:
		return printer.Sprintf("%d days overdue", -days)
	}
}

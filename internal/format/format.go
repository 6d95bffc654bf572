// Package format converts stored invoice values into display strings.
// The locale is fixed to en-US and the currency to USD.
package format

import (
	"fmt"

	"github.com/ridwanfathin/invoice-dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currencySymbol = "$"
	minorUnits     = 100
	dateLayout     = "Jan 2, 2006"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount in minor units (cents) as a USD string,
// e.g. 100050 -> "$1,000.50" and -1234 -> "-$12.34".
func FormatCurrency(amount int64) string {
	sign := ""
	abs := uint64(amount)
	if amount < 0 {
		sign = "-"
		abs = uint64(-(amount + 1)) + 1
	}

	major := abs / minorUnits
	minor := abs % minorUnits

	return fmt.Sprintf("%s%s%s.%02d", sign, currencySymbol, printer.Sprintf("%d", major), minor)
}

// FormatDateToLocal renders a date as e.g. "Dec 6, 2022"
func FormatDateToLocal(date domain.DateOnly) string {
	return date.Time.Format(dateLayout)
}

// FormatAmountInput renders cents as a plain dollar value for form inputs, e.g. "1000.50"
func FormatAmountInput(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}

// Package currency renders amounts as human readable text for reports
// and summaries.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders the amount with the currency's symbol and grouped
// digits, for example $16,800.00. Codes that are no known ISO 4217
// currency are used as a plain prefix instead of a symbol.
func Format(amount decimal.Decimal, code string) string {
	printer := message.NewPrinter(language.AmericanEnglish)

	f, _ := amount.Float64()
	digits := printer.Sprintf("%v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	unit, err := currency.ParseISO(code)
	if err != nil {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return digits
		}

		return code + " " + digits
	}

	return printer.Sprintf("%v%s", currency.NarrowSymbol(unit), digits)
}

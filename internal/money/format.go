package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format renders amount as a display string for the given ISO 4217 currency
// tag, e.g. "€1,234.50". Unknown tags fall back to "<TAG> <amount>". Purely
// presentational: the numeric value always round-trips through Round.
func Format(amount decimal.Decimal, currencyTag string) string {
	rounded := Round(amount)

	unit, err := currency.ParseISO(currencyTag)
	if err != nil {
		return fmt.Sprintf("%s %s", currencyTag, rounded.StringFixed(2))
	}

	symbol := printer.Sprint(currency.NarrowSymbol(unit))
	f, _ := rounded.Abs().Float64()
	digits := printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if rounded.IsNegative() {
		return symbol + "-" + digits
	}
	return symbol + digits
}

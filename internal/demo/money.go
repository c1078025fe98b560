package demo

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyFormatter formats amounts in cents for one locale and currency.
type MoneyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewMoneyFormatter returns a formatter for the locale tag (for example
// "en-GB") and ISO currency code (for example "GBP").
func NewMoneyFormatter(locale, code string) (*MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, err
	}
	p := message.NewPrinter(tag)
	return &MoneyFormatter{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

// Format returns cents as a grouped decimal with two places, prefixed by
// the currency symbol: "£1,234.50".
func (f *MoneyFormatter) Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	amount := f.printer.Sprint(number.Decimal(float64(cents)/100, number.Scale(2)))
	return sign + f.symbol + amount
}

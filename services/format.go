package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-GB"

// CurrencyFormatter renders money amounts as display strings for a single
// locale: digit grouping per the locale and exactly 2 decimal places. No
// currency symbol is added; the report columns carry the meaning.
type CurrencyFormatter struct {
	printer *message.Printer
}

// NewCurrencyFormatter returns a formatter for a BCP 47 locale such as "en-GB".
func NewCurrencyFormatter(locale string) (CurrencyFormatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return CurrencyFormatter{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return CurrencyFormatter{printer: message.NewPrinter(tag)}, nil
}

// Format rounds amount half away from zero to 2 decimal places and formats it.
// The zero CurrencyFormatter formats for DefaultLocale.
func (f CurrencyFormatter) Format(amount decimal.Decimal) string {
	p := f.printer
	if p == nil {
		p = message.NewPrinter(language.BritishEnglish)
	}
	rounded := amount.Round(2)
	return p.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(2)))
}

package domain

import "github.com/shopspring/decimal"

// DefaultCurrencySymbol prefixes every formatted amount unless configured otherwise.
const DefaultCurrencySymbol = "R$"

// FormatCurrency renders amount with two decimal places behind symbol,
// e.g. "R$ 1000.00".
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return symbol + " " + amount.StringFixed(2)
}

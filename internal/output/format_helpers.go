package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/investment-projector/pkg/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal rate (0.15) as a percentage with one decimal ("15.0%").
func FormatPercentage(rate float64) string { return fmt.Sprintf("%.1f%%", rate*100) }

// FormatAmount formats a float dollar amount like FormatCurrency.
func FormatAmount(amount float64) string { return money.NewMoney(amount).Format() }

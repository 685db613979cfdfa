package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatMoney renders a prize amount in dollars: "$1,000", "$12.50".
// Целые суммы печатаются без копеек.
func FormatMoney(amount float64) string {
	cents := math.Round(amount * 100)
	if math.Mod(cents, 100) == 0 {
		return moneyPrinter.Sprintf("$%d", int64(cents/100))
	}
	return moneyPrinter.Sprintf("$%.2f", cents/100)
}

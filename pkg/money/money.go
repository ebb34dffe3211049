// Package money formatea importes en yuanes para notas, alertas y reportes.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Chinese)

// Format devuelve el importe con símbolo y separador de miles, p. ej. "¥12,345.60".
func Format(amount decimal.Decimal, places int32) string {
	f, _ := amount.Round(places).Float64()
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	return sign + "¥" + printer.Sprint(number.Decimal(f, number.Scale(int(places))))
}

// Percent formatea una fracción como porcentaje con los decimales indicados (0.1234 → "12.34%").
func Percent(fraction decimal.Decimal, places int32) string {
	return fraction.Shift(2).StringFixed(places) + "%"
}

// Package money formatea importes para los textos del tablero y del reporte PDF.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter convierte decimales en textos "1,500 DA" con separador de miles.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter construye el formateador. tag vacío usa inglés (separador ",").
func NewFormatter(currency, tag string) *Formatter {
	lang := language.English
	if tag != "" {
		if parsed, err := language.Parse(tag); err == nil {
			lang = parsed
		}
	}
	return &Formatter{printer: message.NewPrinter(lang), currency: currency}
}

// Amount redondea a unidades (mitad al par) y agrega la moneda: "45,000 DA".
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := f.printer.Sprintf("%d", d.RoundBank(0).IntPart())
	if f.currency == "" {
		return s
	}
	return s + " " + f.currency
}

// Units formatea una cantidad entera con separador de miles y sufijo opcional.
func (f *Formatter) Units(n int, suffix string) string {
	s := f.printer.Sprintf("%d", n)
	if suffix == "" {
		return s
	}
	return s + " " + suffix
}

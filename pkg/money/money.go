// Package money formatea montos para visualización (pesos chilenos por defecto).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formatea montos según una localidad BCP 47 (ej. "es-CL").
// El peso chileno no usa decimales: los montos se redondean al entero.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter construye el formateador. Una localidad inválida cae a español.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	if symbol == "" {
		symbol = "$"
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format devuelve el monto con separador de miles según la localidad,
// precedido del símbolo de moneda (ej. 125000 -> "$125.000" en es-CL).
func (f *Formatter) Format(d decimal.Decimal) string {
	return f.symbol + f.printer.Sprintf("%d", d.Round(0).IntPart())
}

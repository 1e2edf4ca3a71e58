package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders whole-unit prices with locale digit grouping.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

func (f *Formatter) Format(amount int64) string {
	if amount < 0 {
		return f.printer.Sprintf("-$%d", -amount)
	}
	return f.printer.Sprintf("$%d", amount)
}

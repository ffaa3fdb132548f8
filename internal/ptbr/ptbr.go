package ptbr

import (
	"fmt"
	"time"
)

var months = [13]string{
	"",
	"Janeiro",
	"Fevereiro",
	"Março",
	"Abril",
	"Maio",
	"Junho",
	"Julho",
	"Agosto",
	"Setembro",
	"Outubro",
	"Novembro",
	"Dezembro",
}

// Month returns the Brazilian-Portuguese month name.
func Month(m time.Month) string {
	return months[int(m)]
}

// FormatLong renders t in the long booking format used in notifications and
// emails, e.g. "dia 05 de Março, às 14:00h".
func FormatLong(t time.Time) string {
	return fmt.Sprintf(
		"dia %02d de %s, às %d:%02dh",
		t.Day(),
		Month(t.Month()),
		t.Hour(),
		t.Minute(),
	)
}

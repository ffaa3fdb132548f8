package ptbr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatLong(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			"afternoon slot",
			time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC),
			"dia 05 de Março, às 14:00h",
		},
		{
			"single digit hour keeps minutes padded",
			time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC),
			"dia 20 de Janeiro, às 9:00h",
		},
		{
			"day is zero padded",
			time.Date(2024, time.December, 1, 18, 30, 0, 0, time.UTC),
			"dia 01 de Dezembro, às 18:30h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatLong(tt.in))
		})
	}
}

func TestMonth(t *testing.T) {
	require.Equal(t, "Fevereiro", Month(time.February))
	require.Equal(t, "Agosto", Month(time.August))
}

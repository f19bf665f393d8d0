package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		label   string
		want    Weekday
		wantErr bool
	}{
		{label: "lunes", want: Monday},
		{label: "martes", want: Tuesday},
		{label: "miércoles", want: Wednesday},
		{label: "miercoles", want: Wednesday},
		{label: "MIÉRCOLES", want: Wednesday},
		{label: "Sábado", want: Saturday},
		{label: "sabado", want: Saturday},
		{label: "  domingo ", want: Sunday},
		{label: "Friday", want: Friday},
		{label: "SUNDAY", want: Sunday},
		{label: "feriado", wantErr: true},
		{label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseWeekday(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownWeekday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdayFromTime(t *testing.T) {
	// 2025-10-13 is a Monday
	date := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	for i, want := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday} {
		assert.Equal(t, want, WeekdayFromTime(date.AddDate(0, 0, i)))
	}
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "lunes", Monday.String())
	assert.Equal(t, "sábado", Saturday.String())
	assert.True(t, Sunday.Valid())
	assert.False(t, Weekday(0).Valid())
	assert.False(t, Weekday(8).Valid())
}

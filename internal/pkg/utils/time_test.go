package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate(" 2024-06-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, "2024-06-01", FormatDate(parsed))

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:30", want: "09:30:00"},
		{in: "09:30:15", want: "09:30:15"},
		{in: "23:59:59", want: "23:59:59"},
		{in: "24:00", wantErr: true},
		{in: "9am", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToday(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 6, 15, 23, 10, 0, 0, time.UTC) }
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), Today(now))
}

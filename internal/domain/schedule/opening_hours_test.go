package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func at(date time.Time, h, m int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

func TestParseOpeningHours(t *testing.T) {
	date := day(2027, time.January, 18)

	tests := []struct {
		name    string
		hours   string
		want    []time.Time
		wantErr bool
	}{
		{name: "closed", hours: "", want: nil},
		{name: "whitespace only", hours: "   ", want: nil},
		{name: "no separator", hours: "08:00", want: nil},
		{
			name:  "single interval",
			hours: "08:00-16:00",
			want:  []time.Time{at(date, 8, 0), at(date, 16, 0)},
		},
		{
			name:  "with break",
			hours: "08:00-12:00-12:30-16:00",
			want:  []time.Time{at(date, 8, 0), at(date, 12, 0), at(date, 12, 30), at(date, 16, 0)},
		},
		{name: "two separators", hours: "08:00-12:00-16:00", wantErr: true},
		{name: "four separators", hours: "08:00-10:00-11:00-12:00-16:00", wantErr: true},
		{name: "not a time", hours: "eight-16:00", wantErr: true},
		{name: "not zero padded", hours: "8:00-16:00", wantErr: true},
		{name: "hour out of range", hours: "08:00-24:30", wantErr: true},
		{name: "descending", hours: "16:00-08:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOpeningHours(tt.hours, date)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedSchedule))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOpeningHours_KeepsDateLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	date := time.Date(2027, time.March, 1, 22, 45, 0, 0, loc)

	got, err := ParseOpeningHours("09:00-10:00", date)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, loc, got[0].Location())
	assert.Equal(t, 1, got[0].Day())
	assert.Equal(t, 9, got[0].Hour())
}

func TestValidateOpeningHours(t *testing.T) {
	assert.NoError(t, ValidateOpeningHours(""))
	assert.NoError(t, ValidateOpeningHours("07:30-19:00"))
	assert.NoError(t, ValidateOpeningHours("07:30-12:00-13:00-19:00"))
	assert.ErrorIs(t, ValidateOpeningHours("07:30-12:00-19:00"), ErrMalformedSchedule)

	// stored rows without a separator are skipped, new writes are rejected
	for _, hours := range []string{"08:00", "closed", "0800", "08:00–16:00"} {
		assert.ErrorIs(t, ValidateOpeningHours(hours), ErrMalformedSchedule, hours)

		got, err := ParseOpeningHours(hours, day(2027, time.January, 18))
		assert.NoError(t, err, hours)
		assert.Nil(t, got, hours)
	}
	assert.NoError(t, ValidateOpeningHours("  "))
}

func TestWorkingIntervals(t *testing.T) {
	date := day(2027, time.January, 18)

	single := WorkingIntervals([]time.Time{at(date, 8, 0), at(date, 16, 0)})
	require.Len(t, single, 1)
	assert.True(t, single[0].Free)

	withBreak := WorkingIntervals([]time.Time{at(date, 8, 0), at(date, 12, 0), at(date, 12, 30), at(date, 16, 0)})
	require.Len(t, withBreak, 3)
	assert.True(t, withBreak[0].Free)
	assert.False(t, withBreak[1].Free)
	assert.True(t, withBreak[2].Free)
	assert.Equal(t, at(date, 12, 0), withBreak[1].Start)
	assert.Equal(t, at(date, 12, 30), withBreak[1].End)

	assert.Nil(t, WorkingIntervals(nil))
}

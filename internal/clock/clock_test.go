package clock_test

import (
	"testing"
	"time"

	"github.com/david-vardanov/teambie/internal/clock"

	"github.com/stretchr/testify/assert"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestClock_NowAppliesOffset(t *testing.T) {
	utc := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)
	c := clock.NewWithNowFn(4, fixedNow(utc))

	assert.Equal(t, "11:30", c.TimeOfDay())
	assert.Equal(t, "2025-03-10", c.Today())
	assert.Equal(t, time.Monday, c.Weekday())
	assert.False(t, c.IsFriday())
	assert.False(t, c.IsWeekend())
}

func TestClock_OffsetCrossesMidnight(t *testing.T) {
	utc := time.Date(2025, 3, 10, 22, 15, 0, 0, time.UTC)
	c := clock.NewWithNowFn(4, fixedNow(utc))

	assert.Equal(t, "2025-03-11", c.Today())
	assert.Equal(t, "02:15", c.TimeOfDay())
}

func TestClock_SetOffsetReloads(t *testing.T) {
	utc := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	c := clock.NewWithNowFn(0, fixedNow(utc))
	assert.Equal(t, "08:00", c.TimeOfDay())

	c.SetOffset(2)
	assert.Equal(t, "10:00", c.TimeOfDay())
	assert.True(t, c.IsFriday())
}

func TestClock_Weekend(t *testing.T) {
	sat := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	c := clock.NewWithNowFn(0, fixedNow(sat))
	assert.True(t, c.IsWeekend())
}

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:75", 0, true},
		{"nonsense", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := clock.ToMinutes(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := clock.AddMinutes("09:00", 90)
	assert.NoError(t, err)
	assert.Equal(t, "10:30", got)

	got, err = clock.AddMinutes("23:30", 45)
	assert.NoError(t, err)
	assert.Equal(t, "00:15", got)

	_, err = clock.AddMinutes("bad", 10)
	assert.Error(t, err)
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, "17:00", clock.FromMinutes(1020))
	assert.Equal(t, "00:05", clock.FromMinutes(5))
}

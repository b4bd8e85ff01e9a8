package leave_test

import (
	"testing"
	"time"

	"github.com/david-vardanov/teambie/internal/leave"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentPeriod_AnniversaryBoundary(t *testing.T) {
	start := date(2024, time.August, 1)

	// Day before the first anniversary: still the first period.
	p := leave.CurrentPeriod(start, date(2025, time.July, 31))
	assert.Equal(t, date(2024, time.August, 1), p.Start)
	assert.Equal(t, date(2025, time.July, 31), p.End)

	// Anniversary day: the next period begins.
	p = leave.CurrentPeriod(start, date(2025, time.August, 1))
	assert.Equal(t, date(2025, time.August, 1), p.Start)
	assert.Equal(t, date(2026, time.July, 31), p.End)
}

func TestCurrentPeriod_MidPeriod(t *testing.T) {
	start := date(2022, time.March, 15)
	p := leave.CurrentPeriod(start, date(2025, time.January, 10))
	assert.Equal(t, date(2024, time.March, 15), p.Start)
	assert.Equal(t, date(2025, time.March, 14), p.End)
}

func TestPeriod_ContainsStartDateOnly(t *testing.T) {
	p := leave.CurrentPeriod(date(2024, time.August, 1), date(2025, time.January, 1))

	assert.True(t, p.Contains(date(2024, time.August, 10)))
	assert.True(t, p.Contains(date(2024, time.August, 1)))
	assert.True(t, p.Contains(date(2025, time.July, 31)))
	assert.False(t, p.Contains(date(2024, time.July, 31)))
	assert.False(t, p.Contains(date(2025, time.August, 1)))

	// An event starting just inside the boundary belongs wholly to this
	// period regardless of where it ends.
	assert.True(t, p.Contains(date(2025, time.July, 30)))
}

func TestInclusiveDays(t *testing.T) {
	end := date(2024, time.August, 14)
	assert.Equal(t, 5, leave.InclusiveDays(date(2024, time.August, 10), &end))

	assert.Equal(t, 1, leave.InclusiveDays(date(2024, time.August, 10), nil))

	same := date(2024, time.August, 10)
	assert.Equal(t, 1, leave.InclusiveDays(same, &same))
}

func TestIsAnniversary(t *testing.T) {
	start := date(2024, time.August, 1)

	assert.True(t, leave.IsAnniversary(start, date(2025, time.August, 1)))
	assert.False(t, leave.IsAnniversary(start, date(2025, time.August, 2)))
	assert.False(t, leave.IsAnniversary(start, date(2024, time.August, 1)))
}

func TestYearsOfService(t *testing.T) {
	start := date(2022, time.June, 15)

	assert.Equal(t, 2, leave.YearsOfService(start, date(2025, time.June, 14)))
	assert.Equal(t, 3, leave.YearsOfService(start, date(2025, time.June, 15)))
	assert.Equal(t, 0, leave.YearsOfService(start, date(2022, time.July, 1)))
}

package clock

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Clock resolves "now" under a fixed UTC offset configured by the admins.
// The offset is cached here; settings updates call SetOffset to reload it.
type Clock struct {
	mu          sync.RWMutex
	offsetHours int
	nowFn       func() time.Time
}

func New(offsetHours int) *Clock {
	return &Clock{
		offsetHours: offsetHours,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

// NewWithNowFn allows tests to pin the current instant.
func NewWithNowFn(offsetHours int, nowFn func() time.Time) *Clock {
	return &Clock{offsetHours: offsetHours, nowFn: nowFn}
}

func (c *Clock) SetOffset(hours int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offsetHours = hours
}

func (c *Clock) Offset() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offsetHours
}

// Now returns the local wall-clock time: UTC now + configured offset.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	offset := c.offsetHours
	c.mu.RUnlock()
	return c.nowFn().Add(time.Duration(offset) * time.Hour)
}

func (c *Clock) Today() string {
	return c.Now().Format("2006-01-02")
}

func (c *Clock) TimeOfDay() string {
	return c.Now().Format("15:04")
}

func (c *Clock) Weekday() time.Weekday {
	return c.Now().Weekday()
}

func (c *Clock) IsFriday() bool {
	return c.Weekday() == time.Friday
}

func (c *Clock) IsWeekend() bool {
	wd := c.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ToMinutes parses "HH:MM" into minutes since midnight.
// All time-of-day comparisons go through this; there is no timezone
// arithmetic beyond the single fixed offset.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return h*60 + m, nil
}

// AddMinutes shifts an "HH:MM" time by the given minutes, wrapping at midnight.
func AddMinutes(hhmm string, minutes int) (string, error) {
	total, err := ToMinutes(hhmm)
	if err != nil {
		return "", err
	}
	total = (total + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return FromMinutes(total), nil
}

func FromMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// DateOnly strips the time portion, keeping the wall-clock date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func ParseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

package attendance

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	attendanceerrors "github.com/david-vardanov/teambie/internal/attendance/errors"
	"github.com/david-vardanov/teambie/internal/clock"
)

const maxBareMinutes = 300

var (
	reHourMin = regexp.MustCompile(`^in\s+(\d+)\s*h(?:our)?s?\s+(\d+)\s*m(?:in)?(?:ute)?s?$`)
	reHours   = regexp.MustCompile(`^in\s+(\d+)\s*h(?:our)?s?$`)
	reMinutes = regexp.MustCompile(`^in\s+(\d+)\s*m(?:in)?(?:ute)?s?$`)
	reClock   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	reBareInt = regexp.MustCompile(`^(\d+)$`)
)

// ParseDeferral turns free-text like "in 30 min", "in 1 hour 15 min",
// "10:45" or a bare minute count into the concrete instant the employee
// expects to arrive. Unparseable input returns an error and must not
// mutate any state.
func ParseDeferral(input string, now time.Time) (time.Time, error) {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return time.Time{}, attendanceerrors.ErrUnparseableTime
	}

	if m := reHourMin.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return now.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute), nil
	}
	if m := reHours.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(hours) * time.Hour), nil
	}
	if m := reMinutes.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(minutes) * time.Minute), nil
	}
	if m := reClock.FindStringSubmatch(text); m != nil {
		if _, err := clock.ToMinutes(text); err != nil {
			return time.Time{}, attendanceerrors.ErrUnparseableTime
		}
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		// A wall-clock time already behind us means tomorrow.
		if !at.After(now) {
			at = at.AddDate(0, 0, 1)
		}
		return at, nil
	}
	if m := reBareInt.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		if minutes < 1 || minutes > maxBareMinutes {
			return time.Time{}, attendanceerrors.ErrUnparseableTime
		}
		return now.Add(time.Duration(minutes) * time.Minute), nil
	}

	return time.Time{}, attendanceerrors.ErrUnparseableTime
}

// ResolveManualTime computes the HH:MM an admin or employee meant for a
// manual check-in/out: an explicit custom time wins, otherwise now minus
// the given offset. Both command surfaces share this path.
func ResolveManualTime(now time.Time, minutesAgo int, customTime string) (string, error) {
	if customTime != "" {
		if _, err := clock.ToMinutes(customTime); err != nil {
			return "", attendanceerrors.ErrInvalidTimeFormat
		}
		return customTime, nil
	}
	if minutesAgo < 0 {
		minutesAgo = 0
	}
	return now.Add(-time.Duration(minutesAgo) * time.Minute).Format("15:04"), nil
}

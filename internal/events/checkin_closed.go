package events

import "time"

const CheckInClosedTopic = "attendance.checkin.lifecycle.v1"

type CheckInClosedEvent struct {
	EventType      string    `json:"event_type"`
	EmployeeID     string    `json:"employee_id"`
	Date           string    `json:"date"`
	Status         string    `json:"status"`
	AutoCheckedOut bool      `json:"auto_checked_out"`
	OccurredAt     time.Time `json:"occurred_at"`
}

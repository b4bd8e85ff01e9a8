package events

import "time"

const LeaveModeratedTopic = "attendance.leave.moderation.v1"

const (
	DecisionApproved = "APPROVED"
	DecisionRejected = "REJECTED"
)

type LeaveModeratedEvent struct {
	EventType  string    `json:"event_type"`
	EventID    string    `json:"event_id"`
	EmployeeID string    `json:"employee_id,omitempty"`
	LeaveType  string    `json:"leave_type"`
	Decision   string    `json:"decision"`
	OccurredAt time.Time `json:"occurred_at"`
}

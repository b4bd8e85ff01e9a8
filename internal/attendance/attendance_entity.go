package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Status is the per-day check-in state machine position.
type Status string

const (
	StatusWaitingArrival           Status = "WAITING_ARRIVAL"
	StatusWaitingArrivalReminder   Status = "WAITING_ARRIVAL_REMINDER"
	StatusArrived                  Status = "ARRIVED"
	StatusWaitingDeparture         Status = "WAITING_DEPARTURE"
	StatusWaitingDepartureReminder Status = "WAITING_DEPARTURE_REMINDER"
	StatusLeft                     Status = "LEFT"
	// MISSED is terminal for the day; only a manual check-in overrides it.
	StatusMissed Status = "MISSED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusWaitingArrival, StatusWaitingArrivalReminder, StatusArrived,
		StatusWaitingDeparture, StatusWaitingDepartureReminder, StatusLeft,
		StatusMissed:
		return true
	}
	return false
}

// awaitingArrival reports whether the record still waits for an arrival answer.
func (s Status) awaitingArrival() bool {
	return s == StatusWaitingArrival || s == StatusWaitingArrivalReminder
}

// closed reports whether the day is finished for this record.
func (s Status) closed() bool {
	return s == StatusLeft || s == StatusMissed
}

// CheckIn is the state-machine instance: one row per (employee, date).
type CheckIn struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_checkin_employee_date"`
	Date       time.Time `gorm:"column:checkin_date;type:date;not null;uniqueIndex:uq_checkin_employee_date;index"`
	Status     Status    `gorm:"type:varchar(30);not null;index"`

	AskedArrivalAt        *time.Time `gorm:"column:asked_arrival_at"`
	ConfirmedArrivalAt    *time.Time `gorm:"column:confirmed_arrival_at"`
	ActualArrivalTime     *string    `gorm:"column:actual_arrival_time;type:varchar(5)"`
	ExpectedArrivalAt     *time.Time `gorm:"column:expected_arrival_at"`
	LastArrivalReminderAt *time.Time `gorm:"column:last_arrival_reminder_at"`

	AskedDepartureAt     *time.Time `gorm:"column:asked_departure_at"`
	ExpectedDepartureAt  *time.Time `gorm:"column:expected_departure_at"`
	ConfirmedDepartureAt *time.Time `gorm:"column:confirmed_departure_at"`
	ActualDepartureTime  *string    `gorm:"column:actual_departure_time;type:varchar(5)"`
	AutoCheckedOut       bool       `gorm:"column:auto_checked_out;not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (CheckIn) TableName() string {
	return "attendance_check_ins"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
	ChatID   *int64    `gorm:"column:chat_id"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

package event

import (
	"time"

	"github.com/google/uuid"
)

// Type is the leave/adjustment event kind.
type Type string

const (
	TypeVacation          Type = "VACATION"
	TypeSickDay           Type = "SICK_DAY"
	TypeHomeOffice        Type = "HOME_OFFICE"
	TypeHoliday           Type = "HOLIDAY"
	TypeLateLeftEarly     Type = "LATE_LEFT_EARLY"
	TypeDayOffPaid        Type = "DAY_OFF_PAID"
	TypeDayOffUnpaid      Type = "DAY_OFF_UNPAID"
	TypeStartWorking      Type = "START_WORKING"
	TypeProbationFinished Type = "PROBATION_FINISHED"
	TypeStopWorking       Type = "STOP_WORKING"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVacation, TypeSickDay, TypeHomeOffice, TypeHoliday,
		TypeLateLeftEarly, TypeDayOffPaid, TypeDayOffUnpaid,
		TypeStartWorking, TypeProbationFinished, TypeStopWorking:
		return true
	}
	return false
}

// Label returns the chat-facing emoji label for the type.
func (t Type) Label() string {
	switch t {
	case TypeVacation:
		return "🏖 Vacation"
	case TypeSickDay:
		return "🤒 Sick day"
	case TypeHomeOffice:
		return "🏠 Home office"
	case TypeHoliday:
		return "🎉 Holiday"
	case TypeLateLeftEarly:
		return "⏰ Late / left early"
	case TypeDayOffPaid:
		return "💰 Day off (paid)"
	case TypeDayOffUnpaid:
		return "🆓 Day off (unpaid)"
	case TypeStartWorking:
		return "🚀 Started working"
	case TypeProbationFinished:
		return "🎓 Probation finished"
	case TypeStopWorking:
		return "👋 Last day"
	default:
		return string(t)
	}
}

// Subtype disambiguates LATE_LEFT_EARLY annotations. It replaces the old
// practice of matching substrings in free-form notes; the notes stay
// human-readable, the subtype carries the machine meaning.
type Subtype string

const (
	SubtypeLateArrival Subtype = "LATE_ARRIVAL"
	SubtypeLeftEarly   Subtype = "LEFT_EARLY"
)

// LeaveTypes are the kinds that suppress attendance prompts for a covered day.
var LeaveTypes = []Type{TypeVacation, TypeSickDay, TypeHoliday, TypeHomeOffice}

// DayOffTypes are the kinds a generic day-off request may resolve to.
var DayOffTypes = []Type{TypeDayOffPaid, TypeDayOffUnpaid}

// Event is a leave/adjustment record. A nil EmployeeID means a global event
// (e.g. a company holiday). Only moderated events count toward balances,
// scheduling suppression, and team-status displays.
type Event struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  *uuid.UUID `gorm:"type:uuid;index:idx_events_employee_dates"`
	Type        Type       `gorm:"type:varchar(30);not null;index"`
	Subtype     *Subtype   `gorm:"type:varchar(20)"`
	StartDate   time.Time  `gorm:"type:date;not null;index:idx_events_employee_dates"`
	EndDate     *time.Time `gorm:"type:date"`
	Notes       string     `gorm:"type:text"`
	Moderated   bool       `gorm:"not null;default:false;index"`
	IsGlobal    bool       `gorm:"not null;default:false"`
	CreatedByID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

// Rejection is a hard delete, so Event carries no soft-delete column.
func (Event) TableName() string {
	return "events"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
	ChatID   *int64    `gorm:"column:chat_id"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// CoversDate checks whether date falls inside the event's [start, end] range.
func (e *Event) CoversDate(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(e.StartDate.Year(), e.StartDate.Month(), e.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := start
	if e.EndDate != nil {
		end = time.Date(e.EndDate.Year(), e.EndDate.Month(), e.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	return !d.Before(start) && !d.After(end)
}

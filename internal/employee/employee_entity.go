package employee

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"column:full_name;type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	ChatID   *int64    `gorm:"column:chat_id;uniqueIndex:uq_employee_chat_id"`

	ArrivalWindowStart string `gorm:"column:arrival_window_start;type:varchar(5);not null;default:'09:00'"`
	ArrivalWindowEnd   string `gorm:"column:arrival_window_end;type:varchar(5);not null;default:'10:00'"`
	WorkHoursPerDay    int    `gorm:"column:work_hours_per_day;not null;default:8"`
	HalfDayOnFridays   bool   `gorm:"column:half_day_on_fridays;not null;default:false"`
	WorkHoursOnFriday  int    `gorm:"column:work_hours_on_friday;not null;default:6"`
	// Weekday numbers 0-6 (Sunday=0) as CSV, e.g. "1,3"
	HomeOfficeDays     string `gorm:"column:home_office_days;type:varchar(20)"`
	ExemptFromTracking bool   `gorm:"column:exempt_from_tracking;not null;default:false"`

	VacationDaysPerYear int       `gorm:"column:vacation_days_per_year;not null;default:20"`
	HolidayDaysPerYear  int       `gorm:"column:holiday_days_per_year;not null;default:5"`
	StartDate           time.Time `gorm:"column:start_date;type:date;not null"`

	Archived   bool       `gorm:"column:archived;not null;default:false;index"`
	ArchivedAt *time.Time `gorm:"column:archived_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

// HomeOfficeWeekdays parses the CSV weekday list; malformed entries are skipped.
func (e *Employee) HomeOfficeWeekdays() []int {
	if e.HomeOfficeDays == "" {
		return nil
	}
	parts := strings.Split(e.HomeOfficeDays, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d < 0 || d > 6 {
			continue
		}
		days = append(days, d)
	}
	return days
}

func (e *Employee) HasHomeOfficeOn(wd time.Weekday) bool {
	for _, d := range e.HomeOfficeWeekdays() {
		if d == int(wd) {
			return true
		}
	}
	return false
}

// WorkHoursForDay honors the Friday half-day arrangement.
func (e *Employee) WorkHoursForDay(isFriday bool) int {
	if isFriday && e.HalfDayOnFridays {
		return e.WorkHoursOnFriday
	}
	return e.WorkHoursPerDay
}

package settings

import (
	"time"
)

// Settings is a singleton row; the bot always reads and writes ID 1.
type Settings struct {
	ID                        int       `gorm:"column:id;primaryKey"`
	TimezoneOffset            int       `gorm:"column:timezone_offset;not null;default:0"`
	MorningReportTime         string    `gorm:"column:morning_report_time;type:varchar(5);not null;default:'09:00'"`
	EndOfDayReportTime        string    `gorm:"column:end_of_day_report_time;type:varchar(5);not null;default:'18:00'"`
	MissedCheckInTime         string    `gorm:"column:missed_check_in_time;type:varchar(5);not null;default:'12:00'"`
	ArrivalReminderInterval   int       `gorm:"column:arrival_reminder_interval;not null;default:5"`
	AutoCheckoutBufferMinutes int       `gorm:"column:auto_checkout_buffer_minutes;not null;default:30"`
	BotEnabled                bool      `gorm:"column:bot_enabled;not null;default:true"`
	CreatedAt                 time.Time `gorm:"column:created_at"`
	UpdatedAt                 time.Time `gorm:"column:updated_at"`
}

func (Settings) TableName() string {
	return "bot_settings"
}

const singletonID = 1

func defaults() *Settings {
	return &Settings{
		ID:                        singletonID,
		TimezoneOffset:            0,
		MorningReportTime:         "09:00",
		EndOfDayReportTime:        "18:00",
		MissedCheckInTime:         "12:00",
		ArrivalReminderInterval:   5,
		AutoCheckoutBufferMinutes: 30,
		BotEnabled:                true,
	}
}

package settings

type UpdateSettingsRequest struct {
	TimezoneOffset            *int    `json:"timezone_offset"`
	MorningReportTime         *string `json:"morning_report_time"`
	EndOfDayReportTime        *string `json:"end_of_day_report_time"`
	MissedCheckInTime         *string `json:"missed_check_in_time"`
	ArrivalReminderInterval   *int    `json:"arrival_reminder_interval"`
	AutoCheckoutBufferMinutes *int    `json:"auto_checkout_buffer_minutes"`
	BotEnabled                *bool   `json:"bot_enabled"`
}

type SettingsResponse struct {
	TimezoneOffset            int    `json:"timezone_offset"`
	MorningReportTime         string `json:"morning_report_time"`
	EndOfDayReportTime        string `json:"end_of_day_report_time"`
	MissedCheckInTime         string `json:"missed_check_in_time"`
	ArrivalReminderInterval   int    `json:"arrival_reminder_interval"`
	AutoCheckoutBufferMinutes int    `json:"auto_checkout_buffer_minutes"`
	BotEnabled                bool   `json:"bot_enabled"`
}

func mapToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		TimezoneOffset:            s.TimezoneOffset,
		MorningReportTime:         s.MorningReportTime,
		EndOfDayReportTime:        s.EndOfDayReportTime,
		MissedCheckInTime:         s.MissedCheckInTime,
		ArrivalReminderInterval:   s.ArrivalReminderInterval,
		AutoCheckoutBufferMinutes: s.AutoCheckoutBufferMinutes,
		BotEnabled:                s.BotEnabled,
	}
}

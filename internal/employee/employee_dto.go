package employee

import "time"

type CreateEmployeeRequest struct {
	FullName            string `json:"full_name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	ArrivalWindowStart  string `json:"arrival_window_start"`
	ArrivalWindowEnd    string `json:"arrival_window_end"`
	WorkHoursPerDay     int    `json:"work_hours_per_day"`
	HalfDayOnFridays    bool   `json:"half_day_on_fridays"`
	WorkHoursOnFriday   int    `json:"work_hours_on_friday"`
	HomeOfficeDays      []int  `json:"home_office_days"`
	ExemptFromTracking  bool   `json:"exempt_from_tracking"`
	VacationDaysPerYear int    `json:"vacation_days_per_year"`
	HolidayDaysPerYear  int    `json:"holiday_days_per_year"`
	StartDate           string `json:"start_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName            *string `json:"full_name"`
	Email               *string `json:"email" binding:"omitempty,email"`
	ArrivalWindowStart  *string `json:"arrival_window_start"`
	ArrivalWindowEnd    *string `json:"arrival_window_end"`
	WorkHoursPerDay     *int    `json:"work_hours_per_day"`
	HalfDayOnFridays    *bool   `json:"half_day_on_fridays"`
	WorkHoursOnFriday   *int    `json:"work_hours_on_friday"`
	HomeOfficeDays      *[]int  `json:"home_office_days"`
	ExemptFromTracking  *bool   `json:"exempt_from_tracking"`
	VacationDaysPerYear *int    `json:"vacation_days_per_year"`
	HolidayDaysPerYear  *int    `json:"holiday_days_per_year"`
	StartDate           *string `json:"start_date"`
}

type EmployeeResponse struct {
	ID                  string  `json:"id"`
	FullName            string  `json:"full_name"`
	Email               string  `json:"email"`
	ChatLinked          bool    `json:"chat_linked"`
	ArrivalWindowStart  string  `json:"arrival_window_start"`
	ArrivalWindowEnd    string  `json:"arrival_window_end"`
	WorkHoursPerDay     int     `json:"work_hours_per_day"`
	HalfDayOnFridays    bool    `json:"half_day_on_fridays"`
	WorkHoursOnFriday   int     `json:"work_hours_on_friday"`
	HomeOfficeDays      []int   `json:"home_office_days"`
	ExemptFromTracking  bool    `json:"exempt_from_tracking"`
	VacationDaysPerYear int     `json:"vacation_days_per_year"`
	HolidayDaysPerYear  int     `json:"holiday_days_per_year"`
	StartDate           string  `json:"start_date"`
	Archived            bool    `json:"archived"`
	ArchivedAt          *string `json:"archived_at,omitempty"`
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                  e.ID.String(),
		FullName:            e.FullName,
		Email:               e.Email,
		ChatLinked:          e.ChatID != nil,
		ArrivalWindowStart:  e.ArrivalWindowStart,
		ArrivalWindowEnd:    e.ArrivalWindowEnd,
		WorkHoursPerDay:     e.WorkHoursPerDay,
		HalfDayOnFridays:    e.HalfDayOnFridays,
		WorkHoursOnFriday:   e.WorkHoursOnFriday,
		HomeOfficeDays:      e.HomeOfficeWeekdays(),
		ExemptFromTracking:  e.ExemptFromTracking,
		VacationDaysPerYear: e.VacationDaysPerYear,
		HolidayDaysPerYear:  e.HolidayDaysPerYear,
		StartDate:           e.StartDate.Format("2006-01-02"),
		Archived:            e.Archived,
	}
	if e.ArchivedAt != nil {
		v := e.ArchivedAt.Format(time.RFC3339)
		resp.ArchivedAt = &v
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToResponse(e)
	}
	return resp
}

package event

import "time"

type CreateEventRequest struct {
	EmployeeID *string `json:"employee_id" binding:"omitempty,uuid"`
	Type       string  `json:"type" binding:"required"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    *string `json:"end_date"`
	Notes      string  `json:"notes"`
	IsGlobal   bool    `json:"is_global"`
	Moderated  bool    `json:"moderated"`
}

type UpdateEventRequest struct {
	Type      *string `json:"type"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Notes     *string `json:"notes"`
}

type ApproveDayOffRequest struct {
	PaymentType string `json:"payment_type" binding:"required,oneof=PAID UNPAID"`
}

type EventResponse struct {
	ID           string  `json:"id"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	Subtype      *string `json:"subtype,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Moderated    bool    `json:"moderated"`
	IsGlobal     bool    `json:"is_global"`
	CreatedAt    string  `json:"created_at"`
}

type BalanceResponse struct {
	Type        string `json:"type"`
	DaysTaken   int    `json:"days_taken"`
	DaysLeft    int    `json:"days_left"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func mapToResponse(e Event) EventResponse {
	resp := EventResponse{
		ID:        e.ID.String(),
		Type:      string(e.Type),
		StartDate: e.StartDate.Format("2006-01-02"),
		Notes:     e.Notes,
		Moderated: e.Moderated,
		IsGlobal:  e.IsGlobal,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
	if e.EmployeeID != nil {
		v := e.EmployeeID.String()
		resp.EmployeeID = &v
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.FullName
	}
	if e.Subtype != nil {
		v := string(*e.Subtype)
		resp.Subtype = &v
	}
	if e.EndDate != nil {
		v := e.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	return resp
}

func mapToListResponse(rows []Event) []EventResponse {
	resp := make([]EventResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToResponse(e)
	}
	return resp
}

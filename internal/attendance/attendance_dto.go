package attendance

import "time"

// ManualTimeRequest backs the admin check-in/out endpoints. CustomTime wins
// over MinutesAgo when both are present.
type ManualTimeRequest struct {
	MinutesAgo int    `json:"minutes_ago" binding:"omitempty,min=0,max=1440"`
	CustomTime string `json:"custom_time" binding:"omitempty"`
}

type DeferRequest struct {
	Until string `json:"until" binding:"required"`
}

type CheckInResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`

	ArrivalTime       *string `json:"arrival_time,omitempty"`
	ExpectedArrival   *string `json:"expected_arrival,omitempty"`
	DepartureTime     *string `json:"departure_time,omitempty"`
	ExpectedDeparture *string `json:"expected_departure,omitempty"`
	AutoCheckedOut    bool    `json:"auto_checked_out"`

	CreatedAt string `json:"created_at"`
}

func mapToResponse(c CheckIn) CheckInResponse {
	resp := CheckInResponse{
		ID:             c.ID.String(),
		EmployeeID:     c.EmployeeID.String(),
		Date:           c.Date.Format("2006-01-02"),
		Status:         string(c.Status),
		ArrivalTime:    c.ActualArrivalTime,
		DepartureTime:  c.ActualDepartureTime,
		AutoCheckedOut: c.AutoCheckedOut,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
	if c.Employee != nil {
		resp.EmployeeName = c.Employee.FullName
	}
	if c.ExpectedArrivalAt != nil {
		v := c.ExpectedArrivalAt.Format("15:04")
		resp.ExpectedArrival = &v
	}
	if c.ExpectedDepartureAt != nil {
		v := c.ExpectedDepartureAt.Format("15:04")
		resp.ExpectedDeparture = &v
	}
	return resp
}

func mapToListResponse(rows []CheckIn) []CheckInResponse {
	resp := make([]CheckInResponse, len(rows))
	for i, c := range rows {
		resp[i] = mapToResponse(c)
	}
	return resp
}

package shift

type CreateShiftRequest struct {
	Name      string   `json:"name" binding:"required"`
	StartTime string   `json:"start_time" binding:"required"`
	EndTime   string   `json:"end_time" binding:"required"`
	Days      []string `json:"days" binding:"required,min=1"`
}

type AssignShiftRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ShiftID   string `json:"shift_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
}

type ShiftResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Days      []string `json:"days"`
}

type AssignmentResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ShiftID   string `json:"shift_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

type MyShiftResponse struct {
	Assignment AssignmentResponse `json:"assignment"`
	Shift      ShiftResponse      `json:"shift"`
}

func mapShift(s Shift) ShiftResponse {
	days := make([]string, len(s.Days))
	copy(days, s.Days)
	return ShiftResponse{ID: s.ID, Name: s.Name, StartTime: s.StartTime, EndTime: s.EndTime, Days: days}
}

func mapAssignment(a Assignment) AssignmentResponse {
	return AssignmentResponse{ID: a.ID, UserID: a.UserID, ShiftID: a.ShiftID, StartDate: a.StartDate, EndDate: a.EndDate}
}

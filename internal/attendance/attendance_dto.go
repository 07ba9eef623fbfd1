package attendance

type RecordResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out,omitempty"`
	Status    string `json:"status"`
	WorkHours string `json:"work_hours,omitempty"`
}

type ListQuery struct {
	Date     string `form:"date"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func mapToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      r.Date,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Status:    r.Status,
		WorkHours: r.WorkHours,
	}
}

func mapToResponses(rows []Record) []RecordResponse {
	res := make([]RecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

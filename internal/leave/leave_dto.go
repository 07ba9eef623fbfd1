package leave

type ApplyLeaveRequest struct {
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	ApprovedBy string `json:"approved_by,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func mapToResponse(r Request) LeaveResponse {
	return LeaveResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Type:       r.Type,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Reason:     r.Reason,
		Status:     r.Status,
		ApprovedBy: r.ApprovedBy,
		CreatedAt:  r.CreatedAt,
	}
}

func mapToResponses(rows []Request) []LeaveResponse {
	out := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		out[i] = mapToResponse(r)
	}
	return out
}

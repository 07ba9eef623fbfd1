package payroll

import "github.com/shopspring/decimal"

type ProcessPayrollRequest struct {
	UserID      string          `json:"user_id" binding:"required"`
	Month       string          `json:"month" binding:"required"`
	Year        int             `json:"year" binding:"required"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
}

type ListQuery struct {
	Month string `form:"month"`
	Year  int    `form:"year"`
}

type PayrollResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Month       string          `json:"month"`
	Year        int             `json:"year"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`
	Status      string          `json:"status"`
}

func mapToResponse(r Record) PayrollResponse {
	return PayrollResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Month:       r.Month,
		Year:        r.Year,
		BasicSalary: r.BasicSalary,
		Allowances:  r.Allowances,
		Deductions:  r.Deductions,
		NetSalary:   r.NetSalary,
		Status:      r.Status,
	}
}

func mapToListResponse(rows []Record) []PayrollResponse {
	out := make([]PayrollResponse, len(rows))
	for i, r := range rows {
		out[i] = mapToResponse(r)
	}
	return out
}

package department

type CreateDepartmentRequest struct {
	Value string `json:"value" binding:"required"`
	Label string `json:"label" binding:"required"`
}

type DepartmentResponse struct {
	Value         string `json:"value"`
	Label         string `json:"label"`
	EmployeeCount int    `json:"employee_count"`
}

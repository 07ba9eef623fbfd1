package employee

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Department   string `json:"department" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Avatar       string `json:"avatar"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	DateOfBirth  string `json:"date_of_birth"`
	CNIC         string `json:"cnic"`
	Gender       string `json:"gender"`
	JoinDate     string `json:"join_date" binding:"required"`
	IsDeleted    bool   `json:"is_deleted"`
	IsManager    bool   `json:"is_manager"`
	LeaveBalance string `json:"leave_balance"`
	ManagerID    string `json:"manager_id"`
}

type UpdateEmployeeRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Role         *string `json:"role"`
	Department   *string `json:"department"`
	Position     *string `json:"position"`
	Avatar       *string `json:"avatar"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	DateOfBirth  *string `json:"date_of_birth"`
	CNIC         *string `json:"cnic"`
	Gender       *string `json:"gender"`
	JoinDate     *string `json:"join_date"`
	IsManager    *bool   `json:"is_manager"`
	LeaveBalance *string `json:"leave_balance"`
	ManagerID    *string `json:"manager_id"`
}

type ListQuery struct {
	Q              string `form:"q"`
	Department     string `form:"department"`
	IncludeDeleted bool   `form:"include_deleted"`
	SortBy         string `form:"sort_by"`
	SortDir        string `form:"sort_dir"`
	Page           int    `form:"page"`
	PageSize       int    `form:"page_size"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Avatar       string `json:"avatar"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	DateOfBirth  string `json:"date_of_birth"`
	CNIC         string `json:"cnic"`
	Gender       string `json:"gender"`
	JoinDate     string `json:"join_date"`
	IsDeleted    bool   `json:"is_deleted"`
	IsManager    bool   `json:"is_manager"`
	LeaveBalance string `json:"leave_balance"`
	ManagerID    string `json:"manager_id,omitempty"`
}

type ImportResponse struct {
	Imported  int                `json:"imported"`
	Employees []EmployeeResponse `json:"employees"`
}

func toResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		Department:   e.Department,
		Position:     e.Position,
		Avatar:       e.Avatar,
		Phone:        e.Phone,
		Address:      e.Address,
		DateOfBirth:  e.DateOfBirth,
		CNIC:         e.CNIC,
		Gender:       e.Gender,
		JoinDate:     e.JoinDate,
		IsDeleted:    e.IsDeleted == flagTrue,
		IsManager:    e.IsManager == flagTrue,
		LeaveBalance: e.LeaveBalance,
		ManagerID:    e.ManagerID,
	}
}

func toResponses(items []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toResponse(e))
	}
	return out
}

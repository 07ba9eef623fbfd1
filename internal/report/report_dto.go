package report

type DashboardQuery struct {
	Date string `form:"date"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type AttendancePoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	Date                   string            `json:"date"`
	TotalEmployees         int               `json:"total_employees"`
	PresentToday           int               `json:"present_today"`
	PendingLeaves          int               `json:"pending_leaves"`
	DepartmentDistribution []DepartmentCount `json:"department_distribution"`
	AttendanceTrend        []AttendancePoint `json:"attendance_trend"`
	LeavesByMonth          []MonthCount      `json:"leaves_by_month"`
}

package department

// Department is an entry of the filter catalogue. Value is what employee
// records store in their department column.
type Department struct {
	Value string
	Label string
}

// DefaultDepartments is the catalogue the employee filter starts with.
var DefaultDepartments = []Department{
	{Value: "engineering", Label: "Engineering"},
	{Value: "hr", Label: "Human Resources"},
	{Value: "marketing", Label: "Marketing"},
	{Value: "sales", Label: "Sales"},
	{Value: "finance", Label: "Finance"},
	{Value: "operations", Label: "Operations"},
}

// Package seed holds the demo data set loaded into the in-memory stores
// at start-up.
package seed

import (
	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/payroll"
	"go-hrms/internal/shift"

	"github.com/shopspring/decimal"
)

type Data struct {
	Employees   []employee.Employee
	Attendance  []attendance.Record
	Leaves      []leave.Request
	Shifts      []shift.Shift
	Assignments []shift.Assignment
	Payroll     []payroll.Record
}

// Empty is used when SEED_DEMO_DATA is off. The demo accounts are kept so
// the service can still be logged into.
func Empty() Data {
	return Data{Employees: demoAccounts()}
}

func Demo() Data {
	return Data{
		Employees:   append(users(), demoAccounts()...),
		Attendance:  attendanceRecords(),
		Leaves:      leaveRequests(),
		Shifts:      shifts(),
		Assignments: shiftAssignments(),
		Payroll:     payrollRecords(),
	}
}

const placeholderAvatar = "/placeholder.svg?height=40&width=40"

func person(id, name, email, role, department, position, joinDate, managerID, phone, address string) employee.Employee {
	isManager := "false"
	if role == "manager" || role == "admin" {
		isManager = "true"
	}
	return employee.Employee{
		ID:           id,
		Name:         name,
		Email:        email,
		Role:         role,
		Department:   department,
		Position:     position,
		Avatar:       placeholderAvatar,
		Phone:        phone,
		Address:      address,
		JoinDate:     joinDate,
		IsDeleted:    "false",
		IsManager:    isManager,
		LeaveBalance: employee.DefaultLeaveBalance,
		ManagerID:    managerID,
	}
}

func users() []employee.Employee {
	return []employee.Employee{
		person("1", "John Doe", "john@example.com", "employee", "engineering", "Software Engineer", "2022-01-15", "2", "+1 (555) 123-4567", "123 Main St, Anytown, CA 12345"),
		person("2", "Jane Smith", "jane@example.com", "admin", "hr", "HR Manager", "2021-05-20", "", "+1 (555) 987-6543", "456 Elm St, Anytown, CA 12345"),
		person("3", "Robert Jones", "robert@example.com", "employee", "marketing", "Marketing Specialist", "2022-03-10", "2", "+1 (555) 555-7890", "789 Oak St, Anytown, CA 12345"),
		person("4", "Emily White", "emily@example.com", "manager", "sales", "Sales Manager", "2022-07-01", "2", "+1 (555) 111-2222", "101 Pine St, Anytown, CA 12345"),
		person("5", "David Green", "david@example.com", "finance", "finance", "Financial Analyst", "2023-01-05", "2", "+1 (555) 333-4444", "222 Maple St, Anytown, CA 12345"),
		person("6", "Linda Brown", "linda@example.com", "super_admin", "operations", "Operations Director", "2022-11-15", "", "+1 (555) 777-8888", "333 Cherry St, Anytown, CA 12345"),
	}
}

// demoAccounts log in with auth.DemoPassword. The demo employee reports
// to the demo manager so the manager's team views are not empty.
func demoAccounts() []employee.Employee {
	return []employee.Employee{
		person("demo-1", "Demo Super Admin", "demo.superadmin@demo.com", "super_admin", "operations", "Director", "2023-01-01", "", "", ""),
		person("demo-2", "Demo Admin", "demo.admin@demo.com", "admin", "hr", "HR Administrator", "2023-01-01", "demo-1", "", ""),
		person("demo-3", "Demo Manager", "demo.manager@demo.com", "manager", "engineering", "Engineering Manager", "2023-01-01", "demo-2", "", ""),
		person("demo-4", "Demo Finance", "demo.finance@demo.com", "finance", "finance", "Accountant", "2023-01-01", "demo-2", "", ""),
		person("demo-5", "Demo Employee", "demo.employee@demo.com", "employee", "engineering", "Developer", "2023-01-01", "demo-3", "", ""),
	}
}

func attendanceRecords() []attendance.Record {
	return []attendance.Record{
		{ID: "1", UserID: "1", Date: "2023-05-01", CheckIn: "08:00", CheckOut: "17:00", Status: attendance.StatusPresent, WorkHours: "9h 0m"},
		{ID: "2", UserID: "1", Date: "2023-05-02", CheckIn: "08:15", CheckOut: "17:30", Status: attendance.StatusPresent, WorkHours: "9h 15m"},
		{ID: "3", UserID: "1", Date: "2023-05-03", CheckIn: "09:00", CheckOut: "18:00", Status: attendance.StatusLate, WorkHours: "9h 0m"},
		{ID: "4", UserID: "2", Date: "2023-05-01", CheckIn: "08:30", CheckOut: "17:30", Status: attendance.StatusPresent, WorkHours: "9h 0m"},
		{ID: "5", UserID: "2", Date: "2023-05-02", CheckIn: "08:45", CheckOut: "17:45", Status: attendance.StatusPresent, WorkHours: "9h 0m"},
		{ID: "6", UserID: "3", Date: "2023-05-01", CheckIn: "08:00", CheckOut: "17:00", Status: attendance.StatusPresent, WorkHours: "9h 0m"},
	}
}

func leaveRequests() []leave.Request {
	return []leave.Request{
		{ID: "1", UserID: "1", Type: leave.TypeAnnual, StartDate: "2023-06-01", EndDate: "2023-06-05", Reason: "Vacation", Status: leave.StatusApproved, ApprovedBy: "2", CreatedAt: "2023-05-15"},
		{ID: "2", UserID: "1", Type: leave.TypeSick, StartDate: "2023-07-10", EndDate: "2023-07-12", Reason: "Feeling unwell", Status: leave.StatusPending, CreatedAt: "2023-06-25"},
		{ID: "3", UserID: "2", Type: leave.TypePersonal, StartDate: "2023-08-15", EndDate: "2023-08-16", Reason: "Family event", Status: leave.StatusApproved, ApprovedBy: "6", CreatedAt: "2023-07-20"},
		{ID: "4", UserID: "3", Type: leave.TypeAnnual, StartDate: "2023-09-05", EndDate: "2023-09-10", Reason: "Vacation", Status: leave.StatusPending, CreatedAt: "2023-08-15"},
	}
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

func shifts() []shift.Shift {
	return []shift.Shift{
		{ID: "1", Name: "Morning Shift", StartTime: "08:00", EndTime: "16:00", Days: weekdays},
		{ID: "2", Name: "Afternoon Shift", StartTime: "16:00", EndTime: "00:00", Days: weekdays},
		{ID: "3", Name: "Night Shift", StartTime: "00:00", EndTime: "08:00", Days: weekdays},
		{ID: "4", Name: "Weekend Shift", StartTime: "10:00", EndTime: "18:00", Days: []string{"saturday", "sunday"}},
	}
}

func shiftAssignments() []shift.Assignment {
	return []shift.Assignment{
		{ID: "1", UserID: "1", ShiftID: "1", StartDate: "2023-01-01"},
		{ID: "2", UserID: "2", ShiftID: "1", StartDate: "2023-01-01"},
		{ID: "3", UserID: "3", ShiftID: "2", StartDate: "2023-01-01"},
		{ID: "4", UserID: "4", ShiftID: "1", StartDate: "2023-01-01"},
		{ID: "5", UserID: "5", ShiftID: "1", StartDate: "2023-01-01"},
	}
}

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func payrollRecord(id, userID, month string, basic, allowances, deductions int64, status string) payroll.Record {
	b, a, d := money(basic), money(allowances), money(deductions)
	return payroll.Record{
		ID:          id,
		UserID:      userID,
		Month:       month,
		Year:        2023,
		BasicSalary: b,
		Allowances:  a,
		Deductions:  d,
		NetSalary:   payroll.NetSalary(b, a, d),
		Status:      status,
	}
}

func payrollRecords() []payroll.Record {
	return []payroll.Record{
		payrollRecord("1", "1", "May", 5000, 500, 1000, payroll.StatusPaid),
		payrollRecord("2", "1", "April", 5000, 500, 1000, payroll.StatusPaid),
		payrollRecord("3", "2", "May", 7000, 700, 1400, payroll.StatusPaid),
		payrollRecord("4", "2", "April", 7000, 700, 1400, payroll.StatusPaid),
		payrollRecord("5", "3", "May", 4500, 450, 900, payroll.StatusProcessed),
	}
}

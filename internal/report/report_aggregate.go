package report

import (
	"sort"

	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
)

func buildDashboard(date string, employees []employee.Employee, records []attendance.Record, leaves []leave.Request) DashboardResponse {
	out := DashboardResponse{
		Date:                   date,
		DepartmentDistribution: []DepartmentCount{},
		AttendanceTrend:        []AttendancePoint{},
		LeavesByMonth:          []MonthCount{},
	}

	departments := map[string]int{}
	for _, e := range employees {
		if e.Deleted() {
			continue
		}
		out.TotalEmployees++
		departments[e.Department]++
	}
	for name, n := range departments {
		out.DepartmentDistribution = append(out.DepartmentDistribution, DepartmentCount{Department: name, Count: n})
	}
	sort.Slice(out.DepartmentDistribution, func(i, j int) bool {
		a, b := out.DepartmentDistribution[i], out.DepartmentDistribution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Department < b.Department
	})

	trend := map[string]*AttendancePoint{}
	for _, r := range records {
		p, ok := trend[r.Date]
		if !ok {
			p = &AttendancePoint{Date: r.Date}
			trend[r.Date] = p
		}
		switch r.Status {
		case attendance.StatusPresent:
			p.Present++
		case attendance.StatusLate:
			p.Late++
		}
		if r.Date == date {
			out.PresentToday++
		}
	}
	for _, p := range trend {
		out.AttendanceTrend = append(out.AttendanceTrend, *p)
	}
	sort.Slice(out.AttendanceTrend, func(i, j int) bool {
		return out.AttendanceTrend[i].Date < out.AttendanceTrend[j].Date
	})

	months := map[string]int{}
	for _, l := range leaves {
		switch l.Status {
		case leave.StatusPending:
			out.PendingLeaves++
		case leave.StatusApproved:
			if len(l.StartDate) >= 7 {
				months[l.StartDate[:7]]++
			}
		}
	}
	for m, n := range months {
		out.LeavesByMonth = append(out.LeavesByMonth, MonthCount{Month: m, Count: n})
	}
	sort.Slice(out.LeavesByMonth, func(i, j int) bool {
		return out.LeavesByMonth[i].Month < out.LeavesByMonth[j].Month
	})

	return out
}

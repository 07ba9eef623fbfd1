package seed_test

import (
	"testing"

	"go-hrms/internal/auth"
	"go-hrms/internal/employee"
	"go-hrms/internal/rbac"
	"go-hrms/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byEmail(emps []employee.Employee) map[string]employee.Employee {
	out := make(map[string]employee.Employee, len(emps))
	for _, e := range emps {
		out[e.Email] = e
	}
	return out
}

func TestDemoAccountsAreSeeded(t *testing.T) {
	for _, data := range []seed.Data{seed.Demo(), seed.Empty()} {
		emps := byEmail(data.Employees)
		for email, role := range auth.DemoAccounts {
			e, ok := emps[email]
			require.True(t, ok, email)
			assert.Equal(t, role, e.Role, email)
		}
	}
}

func TestDemoDataIsConsistent(t *testing.T) {
	data := seed.Demo()

	ids := map[string]bool{}
	for _, e := range data.Employees {
		assert.False(t, ids[e.ID], "duplicate id %s", e.ID)
		ids[e.ID] = true
		_, ok := rbac.ParseRole(e.Role)
		assert.True(t, ok, e.Role)
	}
	for _, e := range data.Employees {
		if e.ManagerID != "" {
			assert.True(t, ids[e.ManagerID], "manager of %s", e.ID)
		}
	}

	for _, p := range data.Payroll {
		assert.True(t, p.NetSalary.Equal(p.BasicSalary.Add(p.Allowances).Sub(p.Deductions)))
	}

	shifts := map[string]bool{}
	for _, s := range data.Shifts {
		shifts[s.ID] = true
	}
	for _, a := range data.Assignments {
		assert.True(t, shifts[a.ShiftID])
		assert.True(t, ids[a.UserID])
	}
}

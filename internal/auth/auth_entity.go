package auth

import (
	"time"

	"go-hrms/internal/employee"
)

// SessionKeyPrefix namespaces stored sessions; the full key is
// hrms_user:<session id>.
const SessionKeyPrefix = "hrms_user:"

// DemoPassword is shared by every demo account.
const DemoPassword = "demo1234"

// DemoAccounts maps the demo login emails to their role.
var DemoAccounts = map[string]string{
	"demo.superadmin@demo.com": "super_admin",
	"demo.admin@demo.com":      "admin",
	"demo.manager@demo.com":    "manager",
	"demo.finance@demo.com":    "finance",
	"demo.employee@demo.com":   "employee",
}

func SessionKey(sessionID string) string {
	return SessionKeyPrefix + sessionID
}

// SessionUser is the stored copy of the logged-in user, password excluded.
type SessionUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Avatar     string `json:"avatar,omitempty"`
	ManagerID  string `json:"manager_id,omitempty"`
}

type Session struct {
	ID        string      `json:"id"`
	User      SessionUser `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func newSessionUser(e employee.Employee) SessionUser {
	return SessionUser{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		Department: e.Department,
		Position:   e.Position,
		Avatar:     e.Avatar,
		ManagerID:  e.ManagerID,
	}
}

package employee

// Employee is also the login user; every field except ManagerID is part
// of the CSV schema and kept as text.
type Employee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
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
	IsDeleted    string `json:"is_deleted"`
	IsManager    string `json:"is_manager"`
	LeaveBalance string `json:"leave_balance"`
	ManagerID    string `json:"manager_id,omitempty"`
}

const (
	DefaultLeaveBalance = "30"
	flagTrue            = "true"
	flagFalse           = "false"
)

func (e Employee) Deleted() bool { return e.IsDeleted == flagTrue }

func boolFlag(b bool) string {
	if b {
		return flagTrue
	}
	return flagFalse
}

// applyDefaults fills the fields that are never left blank in the store.
func (e *Employee) applyDefaults(newID func() string) {
	if e.ID == "" {
		e.ID = newID()
	}
	if e.IsDeleted == "" {
		e.IsDeleted = flagFalse
	}
	if e.IsManager == "" {
		e.IsManager = flagFalse
	}
	if e.LeaveBalance == "" {
		e.LeaveBalance = DefaultLeaveBalance
	}
}

package leave

const (
	TypeAnnual   = "annual"
	TypeSick     = "sick"
	TypePersonal = "personal"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	DateLayout = "2006-01-02"
)

type Request struct {
	ID         string
	UserID     string
	Type       string
	StartDate  string
	EndDate    string
	Reason     string
	Status     string
	ApprovedBy string
	CreatedAt  string
}

func validType(t string) bool {
	switch t {
	case TypeAnnual, TypeSick, TypePersonal:
		return true
	}
	return false
}

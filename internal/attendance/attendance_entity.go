package attendance

const (
	StatusPresent = "present"
	StatusLate    = "late"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// lateFrom is the first minute of the day counted as late (09:00).
	lateFrom = 9 * 60
)

type Record struct {
	ID        string
	UserID    string
	Date      string
	CheckIn   string
	CheckOut  string
	Status    string
	WorkHours string
}

func (r Record) Open() bool { return r.CheckOut == "" }

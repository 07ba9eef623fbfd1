package shift

import (
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Shift struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
	Days      []string
}

// Assignment is open while EndDate is empty.
type Assignment struct {
	ID        string
	UserID    string
	ShiftID   string
	StartDate string
	EndDate   string
}

func (a Assignment) Open() bool { return a.EndDate == "" }

// ActiveOn reports whether the assignment covers date (YYYY-MM-DD).
func (a Assignment) ActiveOn(date string) bool {
	if date < a.StartDate {
		return false
	}
	return a.Open() || date <= a.EndDate
}

func validDay(d string) bool {
	for w := time.Sunday; w <= time.Saturday; w++ {
		if d == strings.ToLower(w.String()) {
			return true
		}
	}
	return false
}

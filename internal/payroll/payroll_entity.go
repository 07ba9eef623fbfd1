package payroll

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

type Record struct {
	ID          string
	UserID      string
	Month       string
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Status      string
}

// NetSalary is basic + allowances - deductions.
func NetSalary(basic, allowances, deductions decimal.Decimal) decimal.Decimal {
	return basic.Add(allowances).Sub(deductions)
}

// ParseMonth accepts a full English month name in any case and returns
// its canonical spelling.
func ParseMonth(s string) (string, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m.String(), true
		}
	}
	return "", false
}

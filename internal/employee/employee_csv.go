package employee

import (
	"regexp"
	"strings"

	employeeerrors "go-hrms/internal/employee/errors"
)

// CSVColumns is the fixed column order of the employee file.
var CSVColumns = []string{
	"id", "name", "email", "password", "role", "department", "position",
	"avatar", "phone", "address", "date_of_birth", "cnic", "gender",
	"join_date", "is_deleted", "is_manager", "leave_balance",
}

const CSVContentType = "text/csv"

var (
	csvLineBreak = regexp.MustCompile(`\r?\n`)
	// A field is a quoted run without quotes or a run without commas.
	// Empty unquoted fields never match and `""` escapes are not understood.
	csvField = regexp.MustCompile(`("[^"]*"|[^,]+)`)
)

func csvValues(e Employee) []string {
	return []string{
		e.ID, e.Name, e.Email, e.Password, e.Role, e.Department, e.Position,
		e.Avatar, e.Phone, e.Address, e.DateOfBirth, e.CNIC, e.Gender,
		e.JoinDate, e.IsDeleted, e.IsManager, e.LeaveBalance,
	}
}

func quoteRow(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ",")
}

// WriteCSV renders the header and one row per employee. Every field is
// quoted and rows are joined by "\n" without a trailing newline.
func WriteCSV(items []Employee) string {
	rows := make([]string, 0, len(items)+1)
	rows = append(rows, quoteRow(CSVColumns))
	for _, e := range items {
		rows = append(rows, quoteRow(csvValues(e)))
	}
	return strings.Join(rows, "\n")
}

// ParseCSV reads an employee file. newID supplies ids for rows whose id
// is blank. Nothing is returned unless the whole file is accepted.
func ParseCSV(text string, newID func() string) ([]Employee, error) {
	lines := make([]string, 0)
	for _, l := range csvLineBreak.Split(text, -1) {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, employeeerrors.ErrInvalidCSV
	}

	header := strings.Split(lines[0], ",")
	position := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, `"`, "")))
		if _, seen := position[name]; !seen {
			position[name] = i
		}
	}
	for _, col := range CSVColumns {
		if _, ok := position[col]; !ok {
			return nil, employeeerrors.MissingColumns(CSVColumns)
		}
	}

	out := make([]Employee, 0, len(lines)-1)
	for _, line := range lines[1:] {
		tokens := csvField.FindAllString(line, -1)
		values := make([]string, len(tokens))
		for i, tok := range tokens {
			values[i] = strings.ReplaceAll(tok, `"`, "")
		}
		get := func(col string) string {
			if idx := position[col]; idx < len(values) {
				return values[idx]
			}
			return ""
		}

		e := Employee{
			ID:           get("id"),
			Name:         get("name"),
			Email:        get("email"),
			Password:     get("password"),
			Role:         get("role"),
			Department:   get("department"),
			Position:     get("position"),
			Avatar:       get("avatar"),
			Phone:        get("phone"),
			Address:      get("address"),
			DateOfBirth:  get("date_of_birth"),
			CNIC:         get("cnic"),
			Gender:       get("gender"),
			JoinDate:     get("join_date"),
			IsDeleted:    get("is_deleted"),
			IsManager:    get("is_manager"),
			LeaveBalance: get("leave_balance"),
		}
		e.applyDefaults(newID)
		out = append(out, e)
	}
	return out, nil
}

package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

const payslipContentType = "application/pdf"

func payslipLines(r Record, employeeName string) []string {
	if employeeName == "" {
		employeeName = "Employee " + r.UserID
	}
	return []string{
		"Payslip",
		fmt.Sprintf("%s %d", r.Month, r.Year),
		"",
		"Employee: " + employeeName,
		"Employee ID: " + r.UserID,
		"",
		"Basic salary: " + r.BasicSalary.StringFixed(2),
		"Allowances: " + r.Allowances.StringFixed(2),
		"Deductions: " + r.Deductions.StringFixed(2),
		"Net salary: " + r.NetSalary.StringFixed(2),
		"",
		"Status: " + r.Status,
	}
}

// renderPDF lays the lines out top-down on one A4 page in Helvetica.
func renderPDF(lines []string) []byte {
	var text strings.Builder
	text.WriteString("BT\n/F1 12 Tf\n16 TL\n50 800 Td\n")
	for i, line := range lines {
		if i > 0 {
			text.WriteString("T* ")
		}
		fmt.Fprintf(&text, "(%s) Tj\n", pdfEscape(line))
	}
	text.WriteString("ET")
	stream := text.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)
	return out.Bytes()
}

var pdfEscaper = strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)

func pdfEscape(v string) string { return pdfEscaper.Replace(v) }

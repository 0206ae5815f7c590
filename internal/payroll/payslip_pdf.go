package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

type pdfRow struct {
	label string
	value string
}

// renderPayslipPDF lays out a single A4 page with the employee header and
// the earnings and deductions table.
func renderPayslipPDF(p Payslip) ([]byte, error) {
	period := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+period, true)
	pdf.SetCreationDate(p.GeneratedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Payslip", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, period, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	header := []pdfRow{{"Employee ID", p.EmployeeID.String()}}
	if p.Employee != nil {
		header = []pdfRow{
			{"Employee", p.Employee.FullName()},
			{"Employee Number", p.Employee.EmployeeNumber},
			{"Email", p.Employee.Email},
		}
	}
	for _, row := range header {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 6, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, row.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	lines := []pdfRow{
		{"Basic Salary", money(p.BasicSalary)},
		{"Allowances", money(p.Allowances)},
		{"Gross Salary", money(p.GrossSalary)},
		{"Deductions", money(p.Deductions)},
		{"Tax Deducted", money(p.TaxDeducted)},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range lines {
		pdf.CellFormat(120, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, row.value, "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(120, 9, "Net Salary", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 9, money(p.NetSalary), "1", 1, "R", true, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Generated "+p.GeneratedAt.UTC().Format(time.RFC3339), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func payslipFilename(p Payslip) string {
	ref := p.EmployeeID.String()
	if p.Employee != nil && p.Employee.EmployeeNumber != "" {
		ref = p.Employee.EmployeeNumber
	}
	return fmt.Sprintf("payslip_%s_%04d_%02d.pdf", ref, p.Year, p.Month)
}

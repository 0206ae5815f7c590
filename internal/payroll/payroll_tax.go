package payroll

import "go-hrms/internal/salary"

const taxRate = 0.05

// Monthly gross income exempt from withholding under each regime.
const (
	oldRegimeExemption = 20833.33
	newRegimeExemption = 25000.00
)

// ComputeTax returns the monthly withholding for gross under regime.
// Employees without tax information are not withheld.
func ComputeTax(regime string, gross float64) float64 {
	var exemption float64
	switch regime {
	case salary.RegimeOld:
		exemption = oldRegimeExemption
	case salary.RegimeNew:
		exemption = newRegimeExemption
	default:
		return 0
	}

	taxable := gross - exemption
	if taxable <= 0 {
		return 0
	}
	return salary.Round2(taxable * taxRate)
}

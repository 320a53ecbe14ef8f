package utils

import "strings"

// Loan product codes understood by the loan API.
const (
	LoanTypeHome            = "HL"
	LoanTypeAgainstProperty = "LAP"
	LoanTypePersonal        = "PL"
	LoanTypeBusiness        = "BL"
	LoanTypeCar             = "CL"
	LoanTypeEducation       = "EL"
)

// loanTypeCodes is keyed by NormalizeLoanType output.
var loanTypeCodes = map[string]string{
	"home_loan":             LoanTypeHome,
	"loan_against_property": LoanTypeAgainstProperty,
	"lap":                   LoanTypeAgainstProperty,
	"personal_loan":         LoanTypePersonal,
	"business_loan":         LoanTypeBusiness,
	"car_loan":              LoanTypeCar,
	"education_loan":        LoanTypeEducation,
}

// NormalizeLoanType folds case and separators so "Home Loan", "home_loan"
// and "HOME-LOAN" compare equal.
func NormalizeLoanType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "_")
	return s
}

// LoanTypeCode maps a human-entered loan product name to its code.
func LoanTypeCode(s string) (string, bool) {
	code, ok := loanTypeCodes[NormalizeLoanType(s)]
	return code, ok
}

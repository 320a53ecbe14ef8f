package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/models"
)

var (
	panPattern    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
	pinPattern    = regexp.MustCompile(`^[0-9]{6}$`)

	validate = validator.New()
)

func ValidPAN(pan string) bool {
	return panPattern.MatchString(pan)
}

func ValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

func ValidPinCode(pin string) bool {
	return pinPattern.MatchString(pin)
}

func ValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidateLead checks a lead before any remote call is made and returns
// the first violation as a validation error.
func ValidateLead(lead models.LeadRequest) error {
	if _, ok := LoanTypeCode(lead.LoanType); !ok {
		return apperrors.New(apperrors.CodeValidation, "Invalid loan type")
	}
	if !lead.LoanAmount.IsPositive() {
		return apperrors.New(apperrors.CodeValidation, "Loan amount must be greater than 0")
	}
	if lead.LoanTenure <= 0 {
		return apperrors.New(apperrors.CodeValidation, "Loan tenure must be greater than 0")
	}
	if !ValidPAN(lead.PANNumber) {
		return apperrors.New(apperrors.CodeValidation, "PAN number must be in format: ABCDE1234F")
	}
	if !ValidMobile(lead.MobileNumber) {
		return apperrors.New(apperrors.CodeValidation, "Mobile number must be 10 digits")
	}
	if !ValidPinCode(lead.PinCode) {
		return apperrors.New(apperrors.CodeValidation, "PIN code must be 6 digits")
	}
	if !ValidEmail(lead.Email) {
		return apperrors.New(apperrors.CodeValidation, "Email address is invalid")
	}
	return nil
}

// ValidateStatusRequest requires at least one identifier and a well-formed
// mobile number when one is given.
func ValidateStatusRequest(req models.LeadStatusRequest) error {
	if req.MobileNumber == "" && req.BasicApplicationID == "" {
		return apperrors.New(apperrors.CodeBadRequest, "Either mobile number or basic application ID must be provided")
	}
	if req.MobileNumber != "" && !ValidMobile(req.MobileNumber) {
		return apperrors.New(apperrors.CodeValidation, "Mobile number must be 10 digits")
	}
	return nil
}

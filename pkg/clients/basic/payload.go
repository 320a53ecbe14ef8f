package basic

import (
	"github.com/google/uuid"

	"lead-gateway/pkg/models"
	"lead-gateway/pkg/utils"
)

// Values the loan API requires but this gateway does not collect.
const (
	defaultGender     = "Male"
	defaultCustomerID = "234"
	defaultCity       = "Gurgaon"
	defaultState      = "Haryana"
	defaultRemarks    = "GOOD"
)

// newApplicationPayload is the body of FullfilmentByBasic.
type newApplicationPayload struct {
	Gender                  string  `json:"gender"`
	DateOfBirth             *string `json:"dateOfBirth"`
	AnnualIncome            int     `json:"annualIncome"`
	ID                      string  `json:"id"`
	LoanType                string  `json:"loanType"`
	LoanAmountReq           int64   `json:"loanAmountReq"`
	CustomerID              string  `json:"customerId"`
	FirstName               string  `json:"firstName"`
	LastName                string  `json:"lastName"`
	Mobile                  string  `json:"mobile"`
	Email                   string  `json:"email"`
	Pincode                 string  `json:"pincode"`
	City                    string  `json:"city"`
	District                string  `json:"district"`
	State                   string  `json:"state"`
	CreatedFromPemID        string  `json:"createdFromPemId"`
	PAN                     string  `json:"pan"`
	Remarks                 string  `json:"remarks"`
	ApplicationAssignedToRm string  `json:"applicationAssignedToRm"`
	IsLeadPrefilled         bool    `json:"isLeadPrefilled"`
	IncludeCreditScore      bool    `json:"includeCreditScore"`
	LoanTenure              int     `json:"loanTenure"`
}

// buildPayload maps a validated lead onto the remote schema.
// An unknown loan type falls back to home loan; validation rejects those earlier.
func buildPayload(lead models.LeadRequest) newApplicationPayload {
	loanType, ok := utils.LoanTypeCode(lead.LoanType)
	if !ok {
		loanType = utils.LoanTypeHome
	}

	gender := lead.Gender
	if gender == "" {
		gender = defaultGender
	}

	var dob *string
	if lead.DOB != "" {
		formatted := utils.RemoteDOB(lead.DOB)
		dob = &formatted
	}

	return newApplicationPayload{
		Gender:             gender,
		DateOfBirth:        dob,
		ID:                 uuid.NewString(),
		LoanType:           loanType,
		LoanAmountReq:      lead.LoanAmount.IntPart(),
		CustomerID:         defaultCustomerID,
		FirstName:          lead.FirstName,
		LastName:           lead.LastName,
		Mobile:             lead.MobileNumber,
		Email:              lead.Email,
		Pincode:            lead.PinCode,
		City:               defaultCity,
		District:           defaultCity,
		State:              defaultState,
		PAN:                lead.PANNumber,
		Remarks:            defaultRemarks,
		IsLeadPrefilled:    true,
		IncludeCreditScore: true,
		LoanTenure:         lead.LoanTenure,
	}
}

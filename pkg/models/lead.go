package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// LeadRequest is the loan application submitted by a customer.
type LeadRequest struct {
	LoanType     string          `json:"loan_type" binding:"required"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	LoanTenure   int             `json:"loan_tenure"`
	PANNumber    string          `json:"pan_number" binding:"required"`
	FirstName    string          `json:"first_name" binding:"required"`
	LastName     string          `json:"last_name" binding:"required"`
	Gender       string          `json:"gender,omitempty"`
	MobileNumber string          `json:"mobile_number" binding:"required"`
	Email        string          `json:"email" binding:"required"`
	DOB          string          `json:"dob" binding:"required"`
	PinCode      string          `json:"pin_code" binding:"required"`
}

// FullName joins first and last name the way notifications address the customer.
func (r LeadRequest) FullName() string {
	return r.FirstName + " " + r.LastName
}

// LeadStatusRequest identifies a lead by mobile number, application id, or both.
type LeadStatusRequest struct {
	MobileNumber       string `json:"mobile_number,omitempty"`
	BasicApplicationID string `json:"basic_application_id,omitempty"`
}

// LeadCreateResponse is returned after a lead is created, recorded and announced.
type LeadCreateResponse struct {
	BasicApplicationID string `json:"basic_application_id"`
	Message            string `json:"message"`
}

// LeadStatusResponse carries the remote status, or the manual tracking hint.
type LeadStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LeadRecord is the locally persisted copy of a lead.
// BasicApplicationID is assigned by the loan API and never empty.
type LeadRecord struct {
	ID                 string          `json:"id"`
	BasicApplicationID string          `json:"basic_application_id"`
	CustomerID         *string         `json:"customer_id"`
	RelationID         *string         `json:"relation_id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	MobileNumber       string          `json:"mobile_number"`
	Email              string          `json:"email"`
	PANNumber          string          `json:"pan_number"`
	LoanType           string          `json:"loan_type"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	LoanTenure         int             `json:"loan_tenure"`
	Gender             string          `json:"gender"`
	DOB                *string         `json:"dob"`
	PinCode            string          `json:"pin_code"`
	BasicAPIResponse   json.RawMessage `json:"basic_api_response"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}

// FullName returns the display name used in status notifications.
func (r LeadRecord) FullName() string {
	return r.FirstName + " " + r.LastName
}

// InitialLeadStatus is the status of every freshly saved record.
const InitialLeadStatus = "created"

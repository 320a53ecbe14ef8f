package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/models"
)

func validLead() models.LeadRequest {
	return models.LeadRequest{
		LoanType:     "Home Loan",
		LoanAmount:   decimal.NewFromInt(2500000),
		LoanTenure:   240,
		PANNumber:    "ABCDE1234F",
		FirstName:    "Asha",
		LastName:     "Verma",
		MobileNumber: "9876543210",
		Email:        "asha@example.com",
		DOB:          "15/03/1990",
		PinCode:      "122001",
	}
}

func TestLoanTypeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Home Loan", "HL"},
		{"home_loan", "HL"},
		{"HOME LOAN", "HL"},
		{"  home loan ", "HL"},
		{"Loan Against Property", "LAP"},
		{"loan_against_property", "LAP"},
		{"LAP", "LAP"},
		{"personal_loan", "PL"},
		{"business_loan", "BL"},
		{"car_loan", "CL"},
		{"education_loan", "EL"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code, ok := LoanTypeCode(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, code)
		})
	}

	_, ok := LoanTypeCode("scooter_loan")
	assert.False(t, ok)
	_, ok = LoanTypeCode("")
	assert.False(t, ok)
}

func TestValidPAN(t *testing.T) {
	assert.True(t, ValidPAN("ABCDE1234F"))
	assert.False(t, ValidPAN("abcde1234f"))
	assert.False(t, ValidPAN("ABCDE123F"))
	assert.False(t, ValidPAN("ABCDE1234FG"))
}

func TestValidMobileAndPin(t *testing.T) {
	assert.True(t, ValidMobile("9876543210"))
	assert.False(t, ValidMobile("987654321"))
	assert.False(t, ValidMobile("+919876543210"))
	assert.True(t, ValidPinCode("122001"))
	assert.False(t, ValidPinCode("12200"))
}

func TestValidateLead(t *testing.T) {
	require.NoError(t, ValidateLead(validLead()))

	tests := []struct {
		name    string
		mutate  func(*models.LeadRequest)
		message string
	}{
		{"unknown loan type", func(l *models.LeadRequest) { l.LoanType = "scooter_loan" }, "Invalid loan type"},
		{"zero amount", func(l *models.LeadRequest) { l.LoanAmount = decimal.Zero }, "Loan amount must be greater than 0"},
		{"negative tenure", func(l *models.LeadRequest) { l.LoanTenure = -1 }, "Loan tenure must be greater than 0"},
		{"lower-case pan", func(l *models.LeadRequest) { l.PANNumber = "abcde1234f" }, "PAN number must be in format: ABCDE1234F"},
		{"short mobile", func(l *models.LeadRequest) { l.MobileNumber = "98765" }, "Mobile number must be 10 digits"},
		{"bad pin", func(l *models.LeadRequest) { l.PinCode = "12A001" }, "PIN code must be 6 digits"},
		{"bad email", func(l *models.LeadRequest) { l.Email = "not-an-email" }, "Email address is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := validLead()
			tt.mutate(&lead)
			err := ValidateLead(lead)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateLeadReportsFirstViolation(t *testing.T) {
	lead := validLead()
	lead.LoanType = "scooter_loan"
	lead.PANNumber = "bad"

	err := ValidateLead(lead)
	require.Error(t, err)
	assert.Equal(t, "Invalid loan type", err.Error())
}

func TestValidateStatusRequest(t *testing.T) {
	err := ValidateStatusRequest(models.LeadStatusRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequest))

	err = ValidateStatusRequest(models.LeadStatusRequest{MobileNumber: "123"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	assert.NoError(t, ValidateStatusRequest(models.LeadStatusRequest{BasicApplicationID: "BA-1"}))
	assert.NoError(t, ValidateStatusRequest(models.LeadStatusRequest{MobileNumber: "9876543210"}))
}

func TestRemoteDOB(t *testing.T) {
	assert.Equal(t, "1990-03-15T00:00:00Z", RemoteDOB("15/03/1990"))
	assert.Equal(t, "1990-03-05T00:00:00Z", RemoteDOB("5/3/1990"))
	assert.Equal(t, "1990-03-15T00:00:00Z", RemoteDOB("1990-03-15"))
	assert.Equal(t, "not-a-date", RemoteDOB("not-a-date"))
	assert.Equal(t, "31/02/1990", RemoteDOB("31/02/1990"))
}

func TestRemoteDOBDateTimeAndPadding(t *testing.T) {
	assert.Equal(t, "1990-03-15T10:00:00Z", RemoteDOB("1990-03-15 10:00:00"))
	assert.Equal(t, "1990-03-15T10:00:00Z", RemoteDOB("1990-03-15T10:00:00Z"))
	assert.Equal(t, "1990-03-15T00:00:00Z", RemoteDOB(" 15/03/1990 "))
	assert.Equal(t, "1990-03-15T00:00:00Z", RemoteDOB("1990-03-15\n"))
}

func TestStorageDOB(t *testing.T) {
	got := StorageDOB("15/03/1990")
	require.NotNil(t, got)
	assert.Equal(t, "1990-03-15", *got)

	got = StorageDOB("1990-03-15T00:00:00Z")
	require.NotNil(t, got)
	assert.Equal(t, "1990-03-15", *got)

	got = StorageDOB("1990-03-15")
	require.NotNil(t, got)
	assert.Equal(t, "1990-03-15", *got)

	got = StorageDOB("1990-03-15 10:00:00")
	require.NotNil(t, got)
	assert.Equal(t, "1990-03-15", *got)

	got = StorageDOB(" 15/03/1990")
	require.NotNil(t, got)
	assert.Equal(t, "1990-03-15", *got)

	assert.Nil(t, StorageDOB("1990-03-15x10:00"))
	assert.Nil(t, StorageDOB("not-a-date"))
	assert.Nil(t, StorageDOB(""))
}

func TestHashing(t *testing.T) {
	assert.Len(t, HashString("9876543210"), 64)
	assert.Equal(t, HashString("a"), HashString("a"))
	assert.Equal(t, "", MD5Hex(nil))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", MD5Hex([]byte("abc")))
}

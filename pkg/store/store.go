package store

import (
	"context"
	"encoding/json"
	"time"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/models"
	"lead-gateway/pkg/utils"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// LeadStore persists local copies of leads created through the loan API.
// Lookups never return errors: a store failure is logged and reads as absent.
type LeadStore interface {
	// Save records a lead alongside the loan API response it produced and
	// returns the stored record id.
	Save(ctx context.Context, lead models.LeadRequest, remote map[string]any) (string, error)
	FindByMobile(ctx context.Context, mobile string) *models.LeadRecord
	FindByApplicationID(ctx context.Context, applicationID string) *models.LeadRecord
	// UpdateStatus sets the status of every record with the given application id.
	UpdateStatus(ctx context.Context, applicationID, status string) bool
	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) []models.LeadRecord
}

// NormalizeLimit clamps a requested page size to (0, MaxListLimit].
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

// BuildRecord maps a lead and the loan API response onto the stored shape.
// The response must carry result.basicAppId.
func BuildRecord(lead models.LeadRequest, remote map[string]any, now time.Time) (models.LeadRecord, error) {
	applicationID := models.RemoteApplicationID(remote)
	if applicationID == "" {
		return models.LeadRecord{}, apperrors.New(apperrors.CodePersistence,
			"Basic Application ID not found in Basic API response")
	}

	raw, err := json.Marshal(remote)
	if err != nil {
		return models.LeadRecord{}, apperrors.Wrap(err, apperrors.CodePersistence, "error encoding basic api response")
	}

	return models.LeadRecord{
		BasicApplicationID: applicationID,
		CustomerID:         models.RemoteCustomerID(remote),
		RelationID:         models.RemoteRelationID(remote),
		FirstName:          lead.FirstName,
		LastName:           lead.LastName,
		MobileNumber:       lead.MobileNumber,
		Email:              lead.Email,
		PANNumber:          lead.PANNumber,
		LoanType:           lead.LoanType,
		LoanAmount:         lead.LoanAmount,
		LoanTenure:         lead.LoanTenure,
		Gender:             lead.Gender,
		DOB:                utils.StorageDOB(lead.DOB),
		PinCode:            lead.PinCode,
		BasicAPIResponse:   raw,
		Status:             models.InitialLeadStatus,
		CreatedAt:          now.UTC(),
	}, nil
}

package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lead-gateway/pkg/models"
)

// MemoryStore keeps leads in process. Records are kept in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.LeadRecord
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) Save(_ context.Context, lead models.LeadRequest, remote map[string]any) (string, error) {
	record, err := BuildRecord(lead, remote, m.now())
	if err != nil {
		return "", err
	}
	record.ID = uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return record.ID, nil
}

func (m *MemoryStore) FindByMobile(_ context.Context, mobile string) *models.LeadRecord {
	return m.latest(func(r models.LeadRecord) bool { return r.MobileNumber == mobile })
}

func (m *MemoryStore) FindByApplicationID(_ context.Context, applicationID string) *models.LeadRecord {
	return m.latest(func(r models.LeadRecord) bool { return r.BasicApplicationID == applicationID })
}

func (m *MemoryStore) latest(match func(models.LeadRecord) bool) *models.LeadRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.records) - 1; i >= 0; i-- {
		if match(m.records[i]) {
			record := m.records[i]
			return &record
		}
	}
	return nil
}

func (m *MemoryStore) UpdateStatus(_ context.Context, applicationID, status string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	updated := false
	for i := range m.records {
		if m.records[i].BasicApplicationID == applicationID {
			m.records[i].Status = status
			updated = true
		}
	}
	return updated
}

func (m *MemoryStore) List(_ context.Context, limit int) []models.LeadRecord {
	limit = NormalizeLimit(limit)

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.LeadRecord, 0, min(limit, len(m.records)))
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out
}

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"lead-gateway/migrations"
	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/models"
	"lead-gateway/pkg/utils"
)

// Columns are selected as text where the Go type has no direct pgx mapping.
const leadColumns = `id::text, basic_application_id, customer_id, relation_id,
	first_name, last_name, mobile_number, email, pan_number, loan_type,
	loan_amount::text, loan_tenure, gender, to_char(dob, 'YYYY-MM-DD'), pin_code,
	basic_api_response::text, status, created_at`

type PostgresStore struct {
	Db  *pgxpool.Pool
	log *slog.Logger
	now func() time.Time
}

// NewPostgresStore connects to connString and verifies the connection.
func NewPostgresStore(ctx context.Context, connString string, log *slog.Logger) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if log == nil {
		log = slog.Default()
	}
	return &PostgresStore{Db: pool, log: log, now: time.Now}, nil
}

func (s *PostgresStore) Close() {
	s.Db.Close()
}

// Migrate applies every embedded *.up.sql file in name order.
// The schema statements are idempotent.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := s.Db.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("execute migration %s: %w", file, err)
		}
		s.log.Info("migration applied", "file", file)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, lead models.LeadRequest, remote map[string]any) (string, error) {
	record, err := BuildRecord(lead, remote, s.now())
	if err != nil {
		return "", err
	}

	var id string
	err = s.Db.QueryRow(ctx, `
		INSERT INTO leads (
			basic_application_id, customer_id, relation_id, first_name, last_name,
			mobile_number, email, pan_number, loan_type, loan_amount, loan_tenure,
			gender, dob, pin_code, basic_api_response, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10::text::numeric, $11,
			$12, $13::text::date, $14, $15::text::jsonb, $16, $17
		) RETURNING id::text`,
		record.BasicApplicationID, record.CustomerID, record.RelationID, record.FirstName, record.LastName,
		record.MobileNumber, record.Email, record.PANNumber, record.LoanType, record.LoanAmount.String(), record.LoanTenure,
		record.Gender, record.DOB, record.PinCode, string(record.BasicAPIResponse), record.Status, record.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodePersistence,
			fmt.Sprintf("Failed to save lead %s to database", record.BasicApplicationID))
	}

	s.log.Info("lead saved", "id", id, "application_id", record.BasicApplicationID)
	return id, nil
}

func (s *PostgresStore) FindByMobile(ctx context.Context, mobile string) *models.LeadRecord {
	return s.findOne(ctx, "mobile_number", mobile,
		`SELECT `+leadColumns+` FROM leads WHERE mobile_number = $1 ORDER BY created_at DESC LIMIT 1`)
}

func (s *PostgresStore) FindByApplicationID(ctx context.Context, applicationID string) *models.LeadRecord {
	return s.findOne(ctx, "basic_application_id", applicationID,
		`SELECT `+leadColumns+` FROM leads WHERE basic_application_id = $1 ORDER BY created_at DESC LIMIT 1`)
}

func (s *PostgresStore) findOne(ctx context.Context, field, value, query string) *models.LeadRecord {
	record, err := scanLead(s.Db.QueryRow(ctx, query, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		key := value
		if field == "mobile_number" {
			key = utils.HashString(value)
		}
		s.log.Error("lead lookup failed", "field", field, "key", key, "error", err)
		return nil
	}
	return &record
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, applicationID, status string) bool {
	tag, err := s.Db.Exec(ctx,
		`UPDATE leads SET status = $1 WHERE basic_application_id = $2`, status, applicationID)
	if err != nil {
		s.log.Error("lead status update failed", "application_id", applicationID, "error", err)
		return false
	}
	return tag.RowsAffected() > 0
}

func (s *PostgresStore) List(ctx context.Context, limit int) []models.LeadRecord {
	rows, err := s.Db.Query(ctx,
		`SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC LIMIT $1`, NormalizeLimit(limit))
	if err != nil {
		s.log.Error("lead list failed", "error", err)
		return []models.LeadRecord{}
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LeadRecord, error) {
		return scanLead(row)
	})
	if err != nil {
		s.log.Error("lead list scan failed", "error", err)
		return []models.LeadRecord{}
	}
	return records
}

func scanLead(row pgx.Row) (models.LeadRecord, error) {
	var (
		r      models.LeadRecord
		amount string
		raw    string
	)
	err := row.Scan(
		&r.ID, &r.BasicApplicationID, &r.CustomerID, &r.RelationID,
		&r.FirstName, &r.LastName, &r.MobileNumber, &r.Email, &r.PANNumber, &r.LoanType,
		&amount, &r.LoanTenure, &r.Gender, &r.DOB, &r.PinCode,
		&raw, &r.Status, &r.CreatedAt,
	)
	if err != nil {
		return models.LeadRecord{}, err
	}

	r.LoanAmount, err = decimal.NewFromString(amount)
	if err != nil {
		return models.LeadRecord{}, fmt.Errorf("error parsing loan amount: %w", err)
	}
	r.BasicAPIResponse = []byte(raw)
	return r, nil
}

package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/logger"
	"lead-gateway/pkg/models"
)

type recorded struct {
	method string
	path   string
	query  map[string][]string
	header http.Header
	body   []byte
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *[]recorded) {
	t.Helper()
	var calls []recorded
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			header: r.Header.Clone(),
			body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

const row = `{
	"id": "6f1c2b9e-0000-4000-8000-000000000001",
	"basic_application_id": "BA-1",
	"customer_id": "C-9",
	"relation_id": "4411",
	"first_name": "Ravi",
	"last_name": "Kumar",
	"mobile_number": "9876543210",
	"email": "ravi@example.com",
	"pan_number": "ABCDE1234F",
	"loan_type": "home_loan",
	"loan_amount": 1500000.5,
	"loan_tenure": 180,
	"gender": "Male",
	"dob": "1988-07-05",
	"pin_code": "560001",
	"basic_api_response": {"result": {"basicAppId": "BA-1"}},
	"status": "created",
	"created_at": "2024-05-01T10:00:00.123456+00:00"
}`

func sampleLead() models.LeadRequest {
	return models.LeadRequest{
		LoanType:     "home_loan",
		LoanAmount:   decimal.RequireFromString("1500000.50"),
		LoanTenure:   180,
		PANNumber:    "ABCDE1234F",
		FirstName:    "Ravi",
		LastName:     "Kumar",
		MobileNumber: "9876543210",
		Email:        "ravi@example.com",
		DOB:          "05/07/1988",
		PinCode:      "560001",
	}
}

func TestSave(t *testing.T) {
	server, calls := newServer(t, http.StatusCreated, "["+row+"]")
	client := NewClient(server.URL+"/", "sb-key", WithLogger(logger.Discard()))

	remote := map[string]any{"result": map[string]any{"basicAppId": "BA-1", "id": float64(4411)}}
	id, err := client.Save(context.Background(), sampleLead(), remote)
	require.NoError(t, err)
	assert.Equal(t, "6f1c2b9e-0000-4000-8000-000000000001", id)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/rest/v1/leads", call.path)
	assert.Equal(t, "sb-key", call.header.Get("apikey"))
	assert.Equal(t, "Bearer sb-key", call.header.Get("Authorization"))
	assert.Equal(t, "return=representation", call.header.Get("Prefer"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(call.body, &sent))
	assert.Equal(t, "BA-1", sent["basic_application_id"])
	assert.Equal(t, "4411", sent["relation_id"])
	assert.Nil(t, sent["customer_id"])
	assert.Equal(t, "1988-07-05", sent["dob"])
	assert.Equal(t, "created", sent["status"])
	assert.Equal(t, remote, sent["basic_api_response"])
	assert.NotContains(t, sent, "id")
}

func TestSaveWithoutApplicationIDSendsNothing(t *testing.T) {
	server, calls := newServer(t, http.StatusCreated, "[]")
	client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))

	_, err := client.Save(context.Background(), sampleLead(), map[string]any{"result": map[string]any{}})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodePersistence))
	assert.Empty(t, *calls)
}

func TestSaveFailures(t *testing.T) {
	remote := map[string]any{"result": map[string]any{"basicAppId": "BA-1"}}

	t.Run("rejected insert", func(t *testing.T) {
		server, _ := newServer(t, http.StatusConflict, `{"message":"duplicate"}`)
		client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))
		_, err := client.Save(context.Background(), sampleLead(), remote)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.CodePersistence))
		assert.Contains(t, err.Error(), "BA-1")
	})
	t.Run("empty representation", func(t *testing.T) {
		server, _ := newServer(t, http.StatusCreated, `[]`)
		client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))
		_, err := client.Save(context.Background(), sampleLead(), remote)
		assert.True(t, apperrors.HasCode(err, apperrors.CodePersistence))
	})
	t.Run("not configured", func(t *testing.T) {
		client := NewClient("", "", WithLogger(logger.Discard()))
		_, err := client.Save(context.Background(), sampleLead(), remote)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeConfiguration))
	})
}

func TestFindByMobile(t *testing.T) {
	server, calls := newServer(t, http.StatusOK, "["+row+"]")
	client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))

	record := client.FindByMobile(context.Background(), "9876543210")
	require.NotNil(t, record)
	assert.Equal(t, "BA-1", record.BasicApplicationID)
	assert.True(t, record.LoanAmount.Equal(decimal.RequireFromString("1500000.5")))
	require.NotNil(t, record.DOB)
	assert.Equal(t, "1988-07-05", *record.DOB)
	assert.JSONEq(t, `{"result":{"basicAppId":"BA-1"}}`, string(record.BasicAPIResponse))

	query := (*calls)[0].query
	assert.Equal(t, []string{"eq.9876543210"}, query["mobile_number"])
	assert.Equal(t, []string{"created_at.desc"}, query["order"])
	assert.Equal(t, []string{"1"}, query["limit"])
}

func TestFindByApplicationIDNotFound(t *testing.T) {
	server, calls := newServer(t, http.StatusOK, "[]")
	client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))

	assert.Nil(t, client.FindByApplicationID(context.Background(), "BA-404"))
	assert.Equal(t, []string{"eq.BA-404"}, (*calls)[0].query["basic_application_id"])
}

func TestLookupErrorsReadAsAbsent(t *testing.T) {
	server, _ := newServer(t, http.StatusInternalServerError, `{"message":"down"}`)
	client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))

	assert.Nil(t, client.FindByMobile(context.Background(), "9876543210"))
	assert.Nil(t, client.FindByApplicationID(context.Background(), "BA-1"))
	assert.Empty(t, client.List(context.Background(), 10))
	assert.False(t, client.UpdateStatus(context.Background(), "BA-1", "Login"))
}

func TestUpdateStatus(t *testing.T) {
	server, calls := newServer(t, http.StatusOK, "["+row+"]")
	client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))

	assert.True(t, client.UpdateStatus(context.Background(), "BA-1", "Sanctioned"))

	call := (*calls)[0]
	assert.Equal(t, http.MethodPatch, call.method)
	assert.Equal(t, []string{"eq.BA-1"}, call.query["basic_application_id"])
	assert.JSONEq(t, `{"status":"Sanctioned"}`, string(call.body))
}

func TestListClampsLimit(t *testing.T) {
	server, calls := newServer(t, http.StatusOK, "["+row+","+row+"]")
	client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))

	leads := client.List(context.Background(), 10000)
	assert.Len(t, leads, 2)
	assert.Equal(t, []string{"500"}, (*calls)[0].query["limit"])
	assert.Equal(t, []string{"created_at.desc"}, (*calls)[0].query["order"])
}

func TestListEmptyBodyIsEmptySlice(t *testing.T) {
	for _, body := range []string{"", "null", "[]"} {
		server, _ := newServer(t, http.StatusOK, body)
		client := NewClient(server.URL, "sb-key", WithLogger(logger.Discard()))

		leads := client.List(context.Background(), 10)
		require.NotNil(t, leads, "body %q", body)
		assert.Empty(t, leads)

		encoded, err := json.Marshal(leads)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(encoded))
	}
}

package inquiry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/psychsphere/backend/config/router"
	"github.com/psychsphere/backend/internal/log"
	apperrors "github.com/psychsphere/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInquiryService struct {
	submitCalls  int
	lastRequest  *CreateInquiryRequest
	submitResult *SubmitInquiryResponse
	submitErr    error

	listCalls  int
	lastLimit  int64
	listResult *ListInquiriesResponse
	listErr    error
}

func (s *stubInquiryService) Submit(_ context.Context, req *CreateInquiryRequest) (*SubmitInquiryResponse, error) {
	s.submitCalls++
	s.lastRequest = req
	return s.submitResult, s.submitErr
}

func (s *stubInquiryService) List(_ context.Context, limit int64) (*ListInquiriesResponse, error) {
	s.listCalls++
	s.lastLimit = limit
	return s.listResult, s.listErr
}

func newInquiryTestRouter(service InquiryService) http.Handler {
	routerService := router.CreateRouterService(log.NewJSONLogger(), &router.RouterConfig{
		RequestTimeout: 5 * time.Second,
	})
	routerService.MountController(NewInquiryController(service))
	return routerService.GetEngine()
}

func performJSONRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeDetailFields(t *testing.T, body []byte) []string {
	t.Helper()

	var envelope struct {
		Detail []apperrors.ValidationErrorResponse `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	fields := make([]string, 0, len(envelope.Detail))
	for _, d := range envelope.Detail {
		fields = append(fields, d.Field)
	}
	return fields
}

func TestSubmitInquiryHandler_Validation(t *testing.T) {
	cases := []struct {
		name          string
		payload       string
		expectedField string
	}{
		{
			name:          "name too short",
			payload:       `{"name":"J","email":"jo@example.com","message":"Hello there"}`,
			expectedField: "name",
		},
		{
			name:          "invalid email",
			payload:       `{"name":"Jo","email":"not-an-email","message":"Hello there"}`,
			expectedField: "email",
		},
		{
			name:          "missing message",
			payload:       `{"name":"Jo","email":"jo@example.com"}`,
			expectedField: "message",
		},
		{
			name:          "message too short",
			payload:       `{"name":"Jo","email":"jo@example.com","message":"Hi"}`,
			expectedField: "message",
		},
		{
			name:          "wrong type for name",
			payload:       `{"name":42,"email":"jo@example.com","message":"Hello there"}`,
			expectedField: "name",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := &stubInquiryService{}
			handler := newInquiryTestRouter(service)

			recorder := performJSONRequest(t, handler, http.MethodPost, "/inquiries", tc.payload)

			assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
			assert.Contains(t, decodeDetailFields(t, recorder.Body.Bytes()), tc.expectedField)
			assert.Zero(t, service.submitCalls, "a rejected payload must never reach the service")
		})
	}
}

func TestSubmitInquiryHandler_MalformedJSON(t *testing.T) {
	service := &stubInquiryService{}
	handler := newInquiryTestRouter(service)

	recorder := performJSONRequest(t, handler, http.MethodPost, "/inquiries", `{"name":`)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "detail")
	assert.Zero(t, service.submitCalls)
}

func TestSubmitInquiryHandler_Success(t *testing.T) {
	service := &stubInquiryService{
		submitResult: &SubmitInquiryResponse{Status: "ok", ID: "507f1f77bcf86cd799439011"},
	}
	handler := newInquiryTestRouter(service)

	recorder := performJSONRequest(t, handler, http.MethodPost, "/inquiries",
		`{"name":"Jo","email":"jo@example.com","message":"Hello there","newsletter_opt_in":true}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response SubmitInquiryResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "507f1f77bcf86cd799439011", response.ID)

	assert.Equal(t, 1, service.submitCalls)
	require.NotNil(t, service.lastRequest)
	assert.True(t, service.lastRequest.NewsletterOptIn)
}

func TestSubmitInquiryHandler_StorageFailure(t *testing.T) {
	service := &stubInquiryService{
		submitErr: apperrors.NewDatabaseError("unable to store inquiry", nil),
	}
	handler := newInquiryTestRouter(service)

	recorder := performJSONRequest(t, handler, http.MethodPost, "/inquiries",
		`{"name":"Jo","email":"jo@example.com","message":"Hello there"}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Contains(t, envelope, "detail")
	assert.NotContains(t, recorder.Body.String(), "mongo", "driver internals must not leak")
}

func TestListInquiriesHandler(t *testing.T) {
	t.Run("uses the default limit when absent", func(t *testing.T) {
		service := &stubInquiryService{listResult: &ListInquiriesResponse{Items: []InquiryRecord{}}}
		handler := newInquiryTestRouter(service)

		recorder := performJSONRequest(t, handler, http.MethodGet, "/inquiries", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, int64(50), service.lastLimit)
		assert.JSONEq(t, `{"items":[]}`, recorder.Body.String())
	})

	t.Run("passes an explicit limit through", func(t *testing.T) {
		service := &stubInquiryService{listResult: &ListInquiriesResponse{Items: []InquiryRecord{}}}
		handler := newInquiryTestRouter(service)

		recorder := performJSONRequest(t, handler, http.MethodGet, "/inquiries?limit=2", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, int64(2), service.lastLimit)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		service := &stubInquiryService{}
		handler := newInquiryTestRouter(service)

		recorder := performJSONRequest(t, handler, http.MethodGet, "/inquiries?limit=abc", "")

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Contains(t, decodeDetailFields(t, recorder.Body.Bytes()), "limit")
		assert.Zero(t, service.listCalls)
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		service := &stubInquiryService{}
		handler := newInquiryTestRouter(service)

		recorder := performJSONRequest(t, handler, http.MethodGet, "/inquiries?limit=-1", "")

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Zero(t, service.listCalls)
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		service := &stubInquiryService{listErr: apperrors.NewDatabaseError("unable to fetch inquiries", nil)}
		handler := newInquiryTestRouter(service)

		recorder := performJSONRequest(t, handler, http.MethodGet, "/inquiries", "")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "detail")
	})
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk-backend/internal/domain"
)

type stubLookupService struct {
	record    *domain.RentalRecord
	err       error
	lastPhone string
}

func (s *stubLookupService) LookupByPhone(ctx context.Context, phone string) (*domain.RentalRecord, error) {
	s.lastPhone = phone
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

func strptr(s string) *string { return &s }

func activeRecord() *domain.RentalRecord {
	return &domain.RentalRecord{
		RenterName:  strptr("김하늘"),
		StartDate:   strptr("2024-04-18"),
		EndDate:     strptr("2024-04-25"),
		ProductName: strptr("유모차 B"),
	}
}

func TestHandleLookup_Found(t *testing.T) {
	stub := &stubLookupService{record: activeRecord()}
	handler := NewLookupHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/get-user-info?phone=010-1234-5678", nil)
	rec := httptest.NewRecorder()
	handler.HandleLookup(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "010-1234-5678", stub.lastPhone)

	var got domain.RentalRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "김하늘", *got.RenterName)
	assert.Equal(t, "유모차 B", *got.ProductName)
}

func TestHandleLookup_NotFoundIsOK(t *testing.T) {
	stub := &stubLookupService{record: &domain.RentalRecord{}}
	handler := NewLookupHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/get-user-info?phone=010-0000-0000", nil)
	rec := httptest.NewRecorder()
	handler.HandleLookup(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Nil(t, got["renter_name"])
	assert.Nil(t, got["product_name"])
}

func TestHandleLookup_MissingPhone(t *testing.T) {
	handler := NewLookupHandler(&stubLookupService{})

	req := httptest.NewRequest(http.MethodGet, "/get-user-info", nil)
	rec := httptest.NewRecorder()
	handler.HandleLookup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLookup_UpstreamFailureIsUnavailable(t *testing.T) {
	stub := &stubLookupService{err: errors.New("token exchange failed (status 500)")}
	handler := NewLookupHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/get-user-info?phone=010-1234-5678", nil)
	rec := httptest.NewRecorder()
	handler.HandleLookup(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	// Internal details never leak to the caller.
	assert.NotContains(t, rec.Body.String(), "token exchange")
	assert.Contains(t, rec.Body.String(), "temporarily unavailable")
}

func TestHandleFulfillment_Found(t *testing.T) {
	stub := &stubLookupService{record: activeRecord()}
	handler := NewLookupHandler(stub)

	body := `{"queryResult":{"parameters":{"phone_number":"010-1234-5678"}}}`
	req := httptest.NewRequest(http.MethodPost, "/get-user-info", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleFulfillment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got fulfillmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got.FulfillmentText, "대여자명: 김하늘")
	assert.Contains(t, got.FulfillmentText, "대여시작일: 2024-04-18")
	assert.Contains(t, got.FulfillmentText, "제품명: 유모차 B")
}

func TestHandleFulfillment_PhoneNumberList(t *testing.T) {
	stub := &stubLookupService{record: activeRecord()}
	handler := NewLookupHandler(stub)

	body := `{"queryResult":{"parameters":{"phone_number":["010-1234-5678","010-9999-0000"]}}}`
	req := httptest.NewRequest(http.MethodPost, "/get-user-info", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleFulfillment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "010-1234-5678", stub.lastPhone)
}

func TestHandleFulfillment_NotFoundCopy(t *testing.T) {
	stub := &stubLookupService{record: &domain.RentalRecord{}}
	handler := NewLookupHandler(stub)

	body := `{"queryResult":{"parameters":{"phone_number":"010-0000-0000"}}}`
	req := httptest.NewRequest(http.MethodPost, "/get-user-info", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleFulfillment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got fulfillmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, msgNotFound, got.FulfillmentText)
}

func TestHandleFulfillment_FailureStillReturns200(t *testing.T) {
	stub := &stubLookupService{err: errors.New("worksheet range read failed")}
	handler := NewLookupHandler(stub)

	body := `{"queryResult":{"parameters":{"phone_number":"010-1234-5678"}}}`
	req := httptest.NewRequest(http.MethodPost, "/get-user-info", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleFulfillment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got fulfillmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, msgSystemError, got.FulfillmentText)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk-backend/internal/domain"
)

type stubMessageService struct {
	saved []domain.Message
	list  []domain.Message
	err   error
}

func (s *stubMessageService) SaveMessage(ctx context.Context, userID, sender, content string) (*domain.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	msg := domain.Message{
		ID:        int32(len(s.saved) + 1),
		UserID:    userID,
		Sender:    sender,
		Content:   content,
		Timestamp: "2024-05-01 09:30:00",
	}
	s.saved = append(s.saved, msg)
	return &msg, nil
}

func (s *stubMessageService) ListMessages(ctx context.Context, userID string, limit, offset int32) ([]domain.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func TestHandleCreateMessage(t *testing.T) {
	stub := &stubMessageService{}
	handler := NewMessageHandler(stub)

	body := `{"user_id":"user-7","sender":"user","content":"유모차 대여 가능한가요?"}`
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, stub.saved, 1)
	assert.Equal(t, "user-7", stub.saved[0].UserID)

	var got domain.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int32(1), got.ID)
}

func TestHandleCreateMessage_Validation(t *testing.T) {
	handler := NewMessageHandler(&stubMessageService{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing user_id", `{"sender":"user","content":"hi"}`},
		{"missing content", `{"user_id":"user-7","sender":"user"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.HandleCreate(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleListMessages(t *testing.T) {
	stub := &stubMessageService{
		list: []domain.Message{
			{ID: 1, UserID: "user-7", Sender: "user", Content: "유모차 대여 가능한가요?"},
			{ID: 2, UserID: "user-7", Sender: "bot", Content: "네, 가능합니다."},
		},
	}
	handler := NewMessageHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/messages?user_id=user-7", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestHandleListMessages_EmptyIsArray(t *testing.T) {
	handler := NewMessageHandler(&stubMessageService{})

	req := httptest.NewRequest(http.MethodGet, "/messages?user_id=user-9", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandleListMessages_MissingUserID(t *testing.T) {
	handler := NewMessageHandler(&stubMessageService{})

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

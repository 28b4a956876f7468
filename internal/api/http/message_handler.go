package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/service"
)

// MessageHandler persists and lists the chat transcript. Pass-through CRUD,
// no business rules.
type MessageHandler struct {
	messages service.MessageService
}

func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type createMessageRequest struct {
	UserID  string `json:"user_id"`
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// HandleCreate handles POST /messages
func (h *MessageHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "user_id and content are required")
		return
	}

	msg, err := h.messages.SaveMessage(r.Context(), req.UserID, req.Sender, req.Content)
	if err != nil {
		logger.Error("Failed to save message", "error", err)
		writeUnavailable(w)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// HandleList handles GET /messages?user_id=...&limit=...&offset=...
func (h *MessageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	limit := parseInt32(r.URL.Query().Get("limit"), 0)
	offset := parseInt32(r.URL.Query().Get("offset"), 0)

	msgs, err := h.messages.ListMessages(r.Context(), userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list messages", "error", err)
		writeUnavailable(w)
		return
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}

	writeJSON(w, http.StatusOK, msgs)
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/service"
)

// LookupHandler serves rental lookups by phone number, both as a plain query
// endpoint for the storefront widget and as a Dialogflow fulfillment webhook.
type LookupHandler struct {
	lookup service.LookupService
}

func NewLookupHandler(lookup service.LookupService) *LookupHandler {
	return &LookupHandler{lookup: lookup}
}

// HandleLookup handles GET /get-user-info?phone=...
// The response is the rental record as JSON; all fields are null when no
// active rental exists, which is still a 200.
func (h *LookupHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		writeError(w, http.StatusBadRequest, "phone query parameter is required")
		return
	}

	record, err := h.lookup.LookupByPhone(r.Context(), phone)
	if err != nil {
		logger.Error("Lookup failed", "error", err)
		writeUnavailable(w)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// fulfillmentRequest mirrors the Dialogflow webhook payload. phone_number
// arrives as a string or as a list of strings depending on the intent.
type fulfillmentRequest struct {
	QueryResult *struct {
		Parameters struct {
			PhoneNumber any `json:"phone_number"`
		} `json:"parameters"`
	} `json:"queryResult"`
}

type fulfillmentResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

// HandleFulfillment handles POST /get-user-info from the conversational
// agent. The agent expects a 200 with fulfillmentText in every case, so
// failures render the system-error copy instead of an error status.
func (h *LookupHandler) HandleFulfillment(w http.ResponseWriter, r *http.Request) {
	var req fulfillmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, fulfillmentResponse{FulfillmentText: msgSystemError})
		return
	}

	var phone string
	if req.QueryResult != nil {
		phone = firstString(req.QueryResult.Parameters.PhoneNumber)
	}

	record, err := h.lookup.LookupByPhone(r.Context(), phone)
	if err != nil {
		logger.Error("Fulfillment lookup failed", "error", err)
		writeJSON(w, http.StatusOK, fulfillmentResponse{FulfillmentText: msgSystemError})
		return
	}

	if !record.Found() {
		writeJSON(w, http.StatusOK, fulfillmentResponse{FulfillmentText: msgNotFound})
		return
	}

	text := fmt.Sprintf("📦 대여자명: %s\n📅 대여시작일: %s\n⏳ 대여종료일: %s\n🔧 제품명: %s",
		*record.RenterName, *record.StartDate, *record.EndDate, *record.ProductName)
	writeJSON(w, http.StatusOK, fulfillmentResponse{FulfillmentText: text})
}

// firstString unwraps a string-or-list-of-strings parameter value.
func firstString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		if len(val) > 0 {
			if s, ok := val[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

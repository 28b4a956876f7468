package http

import (
	"encoding/json"
	"net/http"
)

// Korean user-facing copy, kept identical to what the chat widget and the
// Dialogflow agent already display.
const (
	msgNotFound    = "고객 정보를 찾을 수 없습니다.\n대여 시 등록한 정확한 전화번호를 입력해 주세요."
	msgSystemError = "시스템 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUnavailable hides any internal failure behind a generic
// temporarily-unavailable response.
func writeUnavailable(w http.ResponseWriter) {
	writeError(w, http.StatusServiceUnavailable, "service temporarily unavailable")
}

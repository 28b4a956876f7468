package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentdesk-backend/internal/service"
)

// NewRouter wires all HTTP routes with the CORS and request-log middleware.
func NewRouter(lookup service.LookupService, messages service.MessageService, allowedOrigins []string) *mux.Router {
	router := mux.NewRouter()
	router.Use(CORS(allowedOrigins))
	router.Use(RequestLogger)

	lookupHandler := NewLookupHandler(lookup)
	messageHandler := NewMessageHandler(messages)

	router.HandleFunc("/", handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/get-user-info", lookupHandler.HandleLookup).Methods(http.MethodGet)
	router.HandleFunc("/get-user-info", lookupHandler.HandleFulfillment).Methods(http.MethodPost)
	router.HandleFunc("/messages", messageHandler.HandleCreate).Methods(http.MethodPost)
	router.HandleFunc("/messages", messageHandler.HandleList).Methods(http.MethodGet)

	// Preflight requests for any path are terminated by the CORS middleware.
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "rentdesk backend OK"})
}

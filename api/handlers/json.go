package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/salt/log"
)

// ErrorResponse defines the JSON message returned
// from handlers when an error occurs
type ErrorResponse struct {
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func WriteJSONError(w http.ResponseWriter, status int, msg string) error {
	response := &ErrorResponse{
		Reason: msg,
	}
	return writeJSON(w, status, response)
}

func internalServerError(w http.ResponseWriter, logger log.Logger, msg string) error {
	ref := time.Now().Unix()

	logger.Error(msg, "ref", ref)
	response := &ErrorResponse{
		Reason: fmt.Sprintf(
			"%s - ref (%d)",
			http.StatusText(http.StatusInternalServerError),
			ref,
		),
	}

	return writeJSON(w, http.StatusInternalServerError, response)
}

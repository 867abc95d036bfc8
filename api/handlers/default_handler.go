package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NotFound is the fallback for requests that match no route, keeping
// the error body JSON like every other response.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusNotFound, mux.ErrNotFound.Error())
}

// MethodNotAllowed is the fallback for a known path with a wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusMethodNotAllowed, mux.ErrMethodMismatch.Error())
}

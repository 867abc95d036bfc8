package handlers

import (
	"fmt"
	"net/http"
)

// Heartbeat responds HTTP 200 to signal that the service is up.
func Heartbeat(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "pong")
}

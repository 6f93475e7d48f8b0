package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the success envelope: a success flag, the HTTP status and
// the payload.
type Envelope struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    any  `json:"data,omitempty"`
}

// JSON writes a success envelope with the given payload
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{
		Success: true,
		Status:  status,
		Data:    data,
	})
}

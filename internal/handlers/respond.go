// pix-broker/internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"net/http"

	apperr "github.com/example/pix-broker/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperr.HTTPStatus(err), CreatePixOut{Success: false, Error: apperr.Message(err)})
}

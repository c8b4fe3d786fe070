package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"cm-madeira/go_backend/internal/infra/store/csvstore"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail surfaces the error as a visible message: validation problems are
// the user's to correct (400), a broken collection file is not (500).
func (h *Handlers) fail(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	var storageErr *csvstore.StorageError
	if errors.As(err, &storageErr) {
		status = http.StatusInternalServerError
	}
	http.Error(w, err.Error(), status)
}

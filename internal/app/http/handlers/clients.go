package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"cm-madeira/go_backend/internal/domain/quote"
)

type clientPayload struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Address  string `json:"address"`
}

func (h *Handlers) RegisterClient(w http.ResponseWriter, r *http.Request) {
	var req clientPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "client name is required", http.StatusBadRequest)
		return
	}

	c := quote.Client{
		Name:     req.Name,
		Phone:    req.Phone,
		Document: req.Document,
		Address:  req.Address,
	}
	if err := h.Store.AppendClient(c); err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "client saved"})
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Store.LoadClients()
	if err != nil {
		h.fail(w, err)
		return
	}
	rows := make([]clientPayload, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, clientPayload{
			Name:     c.Name,
			Phone:    c.Phone,
			Document: c.Document,
			Address:  c.Address,
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

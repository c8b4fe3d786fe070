package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"cm-madeira/go_backend/internal/domain/quote"
	"cm-madeira/go_backend/internal/domain/quote/pdf"
)

type CreateQuoteRequest struct {
	ClientName string `json:"client_name"`
	Items      []struct {
		Product string `json:"product"`
		Qty     int    `json:"qty"`
	} `json:"items"`
	DiscountPercent float64 `json:"discount_percent"`
	Number          string  `json:"number"`
	ValidityTerm    string  `json:"validity_term"`
	PaymentMethod   string  `json:"payment_method"`
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	clients, err := h.Store.LoadClients()
	if err != nil {
		h.fail(w, err)
		return
	}
	client, ok := findClient(clients, req.ClientName)
	if !ok {
		http.Error(w, "unknown client "+req.ClientName, http.StatusBadRequest)
		return
	}

	products, err := h.Store.LoadProducts()
	if err != nil {
		h.fail(w, err)
		return
	}

	selection := make([]quote.Selection, 0, len(req.Items))
	for _, it := range req.Items {
		selection = append(selection, quote.Selection{Product: it.Product, Qty: it.Qty})
	}
	lines, err := quote.BuildLines(selection, products)
	if err != nil {
		h.fail(w, err)
		return
	}
	subtotal, discount, total, err := quote.ApplyDiscount(lines, req.DiscountPercent)
	if err != nil {
		h.fail(w, err)
		return
	}

	q := quote.Quote{
		Number:          quoteNumber(req.Number),
		CreatedAt:       time.Now(),
		Client:          client,
		Lines:           lines,
		DiscountPercent: req.DiscountPercent,
		Subtotal:        subtotal,
		DiscountAmount:  discount,
		Total:           total,
		ValidityTerm:    req.ValidityTerm,
		PaymentMethod:   req.PaymentMethod,
	}

	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		if errors.Is(err, pdf.ErrNoLines) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="orcamento.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// Name is a soft key: the first record in file order wins.
func findClient(clients []quote.Client, name string) (quote.Client, bool) {
	for _, c := range clients {
		if c.Name == name {
			return c, true
		}
	}
	return quote.Client{}, false
}

func quoteNumber(requested string) string {
	if strings.TrimSpace(requested) != "" {
		return requested
	}
	return "ORC-" + strings.ToUpper(uuid.NewString()[:8])
}

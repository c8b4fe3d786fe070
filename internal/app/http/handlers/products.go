package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	"cm-madeira/go_backend/internal/domain/catalog"
)

type productPayload struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"unit_price"`
	Stock int     `json:"stock"`
}

func (h *Handlers) RegisterProduct(w http.ResponseWriter, r *http.Request) {
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "product name is required", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		http.Error(w, "unit_price must be >= 0", http.StatusBadRequest)
		return
	}
	if req.Stock < 0 {
		http.Error(w, "stock must be >= 0", http.StatusBadRequest)
		return
	}

	p := catalog.Product{
		Name:  req.Name,
		Unit:  req.Unit,
		Price: req.Price,
		Stock: req.Stock,
	}
	if err := h.Store.AppendProduct(p); err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "product saved"})
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.LoadProducts()
	if err != nil {
		h.fail(w, err)
		return
	}
	rows := make([]productPayload, 0, len(products))
	for _, p := range products {
		rows = append(rows, productPayload{
			Name:  p.Name,
			Unit:  p.Unit,
			Price: p.Price,
			Stock: p.Stock,
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) ExportProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.LoadProducts()
	if err != nil {
		h.fail(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Products"
	_ = f.SetSheetName("Sheet1", sheet)
	_ = f.SetSheetRow(sheet, "A1", &[]any{"Product", "Unit", "Price", "Stock"})
	for i, p := range products {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(sheet, cell, &[]any{p.Name, p.Unit, p.Price, p.Stock})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}

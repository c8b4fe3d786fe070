package handlers

import (
	"cm-madeira/go_backend/internal/app/config"
	"cm-madeira/go_backend/internal/domain/quote/pdf"
	pdfgen "cm-madeira/go_backend/internal/domain/quote/pdf/gofpdf"
	"cm-madeira/go_backend/internal/infra/store/csvstore"
)

type Handlers struct {
	Store *csvstore.Store
	Cfg   config.Config
	PDF   pdf.Generator
}

func New(store *csvstore.Store, cfg config.Config) *Handlers {
	return &Handlers{
		Store: store,
		Cfg:   cfg,
		PDF:   pdfgen.New(cfg.LogoPath, cfg.CompanyName),
	}
}

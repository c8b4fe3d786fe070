package app

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"cm-madeira/go_backend/internal/app/config"
	apphttp "cm-madeira/go_backend/internal/app/http"
	"cm-madeira/go_backend/internal/infra/store/csvstore"
)

func Run() {
	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.MustLoad()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		zlog.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("data dir")
	}
	store := csvstore.New(
		filepath.Join(cfg.DataDir, cfg.ClientsFile),
		filepath.Join(cfg.DataDir, cfg.ProductsFile),
	)

	router := apphttp.NewRouter(cfg, store)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	zlog.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	DataDir         string
	ClientsFile     string
	ProductsFile    string
	LogoPath        string
	CompanyName     string
	CORSAllowOrigin string
}

func MustLoad() Config {
	// Missing .env is fine; config may come from the environment directly.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DataDir:         env("DATA_DIR", "data"),
		ClientsFile:     env("CLIENTS_FILE", "clients.csv"),
		ProductsFile:    env("PRODUCTS_FILE", "products.csv"),
		LogoPath:        env("LOGO_PATH", ""),
		CompanyName:     env("COMPANY_NAME", "CM Casa da Madeira"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

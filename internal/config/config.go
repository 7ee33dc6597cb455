package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// API da matriz (modo espelho). Vazio = backend local (Postgres).
	CentralAPIURL string
	CentralAPIKey string
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=distribuidora port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		CentralAPIURL: getEnv("CENTRAL_API_URL", ""),
		CentralAPIKey: getEnv("CENTRAL_API_KEY", ""),
	}

	// Checagens de segurança para produção
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET não definido! Obrigatório para produção.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET precisa ter pelo menos 32 caracteres! Risco de segurança.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=distribuidora port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN usando valor padrão; defina a conexão do seu Postgres em produção.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS usando valor padrão; defina o domínio do console em produção.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

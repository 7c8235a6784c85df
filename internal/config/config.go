package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Store         string // sqlite | redis
	DBDSN         string
	RedisAddr     string
	PDFDir        string
	LogFile       string
	SessionSecret []byte
}

func Load() Config {
	// Optional .env in the project root; real env wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	store := os.Getenv("STORE")
	if store == "" {
		store = "sqlite"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "salesapp.db" // sqlite file in project root
	}
	raddr := os.Getenv("REDIS_ADDR")
	if raddr == "" {
		raddr = "localhost:6379"
	}
	pdfDir := os.Getenv("PDF_DIR")
	if pdfDir == "" {
		pdfDir = "./web/static/pdf"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./salesapp.log"
	}

	// The signing secret is fixed for the life of the process. Set
	// SESSION_SECRET to keep sessions across restarts.
	secret := []byte(os.Getenv("SESSION_SECRET"))
	if len(secret) == 0 {
		secret = newSecret()
		log.Printf("[config] SESSION_SECRET not set; generated ephemeral secret")
	}

	cfg := Config{Port: port, Store: store, DBDSN: dsn, RedisAddr: raddr, PDFDir: pdfDir, LogFile: logFile, SessionSecret: secret}
	log.Printf("[config] PORT=%s STORE=%s DB_DSN=%s REDIS_ADDR=%s PDF_DIR=%s LOG_FILE=%s", cfg.Port, cfg.Store, cfg.DBDSN, cfg.RedisAddr, cfg.PDFDir, cfg.LogFile)
	return cfg
}

func newSecret() []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("[config] secret generation failed: %v", err)
	}
	out := make([]byte, base64.RawURLEncoding.EncodedLen(len(b)))
	base64.RawURLEncoding.Encode(out, b)
	return out
}

package config

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/hkdf"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Media store names.
const (
	MediaNone = "none"
	MediaB2   = "b2"
	MediaS3   = "s3"
)

// Config errors
var (
	ErrSecretRequired = errors.New("RCSC_SECRET is required in production")
	ErrSecretTooShort = errors.New("RCSC_SECRET must be at least 64 hex characters (32 bytes)")
	ErrBadBackendURL  = errors.New("RCSC_BACKEND_URL must be an absolute http(s) URL")
	ErrUnknownMedia   = errors.New("RCSC_MEDIA must be one of: none, b2, s3")
)

// Config is the process configuration. BackendURL is fixed for the process lifetime.
type Config struct {
	Addr          string
	BackendURL    string
	Env           string
	DBPath        string
	RedirectDelay time.Duration
	LoginDelay    time.Duration

	ResendKey string
	MailFrom  string

	Media          string
	B2KeyID        string
	B2AppKey       string
	B2Bucket       string
	S3Bucket       string
	S3PublicBase   string
	MaxUploadBytes int64

	secret []byte
}

// Load reads .env (when present) and the process environment.
// PRE: none
// POST: Returns a validated Config or the first configuration error
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("dotenv_load_failed", "error", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function. Tests pass a map lookup.
func FromEnv(getenv func(string) string) (Config, error) {
	or := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Addr:           or("RCSC_ADDR", ":8080"),
		BackendURL:     strings.TrimRight(or("RCSC_BACKEND_URL", "http://localhost:4000"), "/"),
		Env:            or("RCSC_ENV", EnvDevelopment),
		DBPath:         or("RCSC_DB_PATH", "clubadmin.db"),
		RedirectDelay:  time.Duration(intOr(getenv("RCSC_REDIRECT_DELAY_MS"), 1000)) * time.Millisecond,
		LoginDelay:     time.Duration(intOr(getenv("RCSC_LOGIN_DELAY_MS"), 1500)) * time.Millisecond,
		ResendKey:      getenv("RCSC_RESEND_KEY"),
		MailFrom:       or("RCSC_MAIL_FROM", "RUET Cyber Security Club <noreply@rcsc.ruet.ac.bd>"),
		Media:          strings.ToLower(or("RCSC_MEDIA", MediaNone)),
		B2KeyID:        getenv("B2_KEY_ID"),
		B2AppKey:       getenv("B2_APP_KEY"),
		B2Bucket:       getenv("B2_BUCKET"),
		S3Bucket:       getenv("S3_BUCKET"),
		S3PublicBase:   getenv("S3_PUBLIC_BASE_URL"),
		MaxUploadBytes: int64(intOr(getenv("RCSC_MAX_UPLOAD_MB"), 5)) << 20,
	}

	u, err := url.Parse(cfg.BackendURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Config{}, ErrBadBackendURL
	}

	switch cfg.Media {
	case MediaNone, MediaB2, MediaS3:
	default:
		return Config{}, ErrUnknownMedia
	}

	secret, err := loadSecret(getenv("RCSC_SECRET"), cfg.IsProduction())
	if err != nil {
		return Config{}, err
	}
	cfg.secret = secret
	return cfg, nil
}

// IsProduction reports whether the panel runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// CSRFKey derives the 32-byte gorilla/csrf key from the master secret.
func (c Config) CSRFKey() []byte {
	return c.derive("rcsc-admin csrf", 32)
}

// FlashKeys derives the hash and block keys for the flash cookie store.
func (c Config) FlashKeys() (hashKey, blockKey []byte) {
	return c.derive("rcsc-admin flash hash", 32), c.derive("rcsc-admin flash block", 32)
}

func (c Config) derive(info string, n int) []byte {
	key := make([]byte, n)
	r := hkdf.New(sha256.New, c.secret, nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		// hkdf only fails past 255*hash size, far beyond n
		panic(fmt.Sprintf("hkdf derive %q: %v", info, err))
	}
	return key
}

// loadSecret decodes the hex master secret. Development gets a random one per start.
func loadSecret(hexSecret string, production bool) ([]byte, error) {
	if hexSecret != "" {
		secret, err := hex.DecodeString(hexSecret)
		if err != nil || len(secret) < 32 {
			return nil, ErrSecretTooShort
		}
		return secret, nil
	}
	if production {
		return nil, ErrSecretRequired
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	slog.Warn("random_secret", "detail", "sessions and flashes won't survive restart; set RCSC_SECRET")
	return secret, nil
}

func intOr(v string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
		return n
	}
	return fallback
}

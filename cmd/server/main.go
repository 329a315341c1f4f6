package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	emailPkg "clubadmin/internal/adapters/email"
	web "clubadmin/internal/adapters/http"
	"clubadmin/internal/adapters/http/perf"
	"clubadmin/internal/adapters/media"
	"clubadmin/internal/adapters/storage"
	auditStore "clubadmin/internal/adapters/storage/audit"
	"clubadmin/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Local audit log: WAL mode and busy timeout as for any SQLite store here
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.MigrateDB(db, cfg.DBPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Contact replies: Resend when configured, otherwise the backend mailer
	var mailer emailPkg.Sender
	if cfg.ResendKey != "" {
		mailer = emailPkg.NewResendSender(cfg.ResendKey, cfg.MailFrom)
		log.Println("Contact replies delivered through Resend")
	} else {
		log.Println("Contact replies delivered through the backend mailer (set RCSC_RESEND_KEY for Resend)")
	}

	uploader, err := newUploader(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to configure media store: %v", err)
	}

	mux := web.NewMux(web.Options{
		Config:     cfg,
		AuditStore: auditStore.NewSQLiteStore(timedDB),
		Collector:  collector,
		Mailer:     mailer,
		Uploader:   uploader,
	})

	log.Printf("RCSC admin panel %s starting on %s (env=%s, backend=%s, schema=%d)",
		version, cfg.Addr, cfg.Env, cfg.BackendURL, storage.LatestSchemaVersion())

	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// newUploader returns the configured image store, or nil when uploads are disabled.
func newUploader(ctx context.Context, cfg config.Config) (media.Uploader, error) {
	switch cfg.Media {
	case config.MediaB2:
		log.Printf("Image uploads go to B2 bucket %s", cfg.B2Bucket)
		return media.NewB2Uploader(ctx, cfg.B2KeyID, cfg.B2AppKey, cfg.B2Bucket)
	case config.MediaS3:
		log.Printf("Image uploads go to S3 bucket %s", cfg.S3Bucket)
		return media.NewS3Uploader(ctx, cfg.S3Bucket, cfg.S3PublicBase)
	default:
		return nil, nil
	}
}

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailmerge"
	"github.com/dmitrymomot/mailmerge/pkg/logger"
)

func main() {
	// Flag defaults may come from the environment or a local .env file.
	_ = godotenv.Load()

	var cfg mailmerge.Config
	flag.StringVar(&cfg.ContactsPath, "contacts", envOr("MAILMERGE_CONTACTS", ""),
		"path to the CSV contacts file (header must include an email column)")
	flag.StringVar(&cfg.MessagePath, "message", envOr("MAILMERGE_MESSAGE", ""),
		"path to the message template with {{field}} placeholders")
	flag.StringVar(&cfg.Subject, "subject", envOr("MAILMERGE_SUBJECT", ""),
		"email subject line (overrides template frontmatter)")
	flag.StringVar(&cfg.OutputPath, "output", envOr("MAILMERGE_OUTPUT", ""),
		"path for the output HTML file (stdout when empty)")
	flag.StringVar(&cfg.CC, "cc", envOr("MAILMERGE_CC", ""),
		"comma-separated list of CC addresses")
	flag.BoolVar(&cfg.HTMLBody, "html-body", false,
		"render the message as markdown and put HTML in the mailto body")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(level)

	if err := mailmerge.Run(cfg, log); err != nil {
		log.Error("mail merge failed", "err", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

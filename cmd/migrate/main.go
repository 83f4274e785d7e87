package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"fourdx-backend/internal/config"
	"fourdx-backend/internal/database/migrations"
	"fourdx-backend/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const usage = `usage: migrate [-timeout 1m] up|down|version

Applies the embedded SQL migrations to DATABASE_URL (or DB_* settings).`

func main() {
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	logger.Setup(cfg.LogLevel, os.Stdout)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, db, flag.Arg(0)); err != nil {
		logrus.Fatal(err)
	}
}

func run(ctx context.Context, db *sql.DB, command string) error {
	switch command {
	case "up":
		if err := migrations.Apply(ctx, db); err != nil {
			return err
		}
	case "down":
		if err := migrations.Rollback(ctx, db); err != nil {
			return err
		}
	case "version":
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}

	version, err := migrations.Version(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logrus.WithField("version", version).Info("Schema version")
	return nil
}

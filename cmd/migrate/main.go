package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fundilink.backend/internal/config"
	"fundilink.backend/internal/infrastructure/datasources/postgres"
	"fundilink.backend/internal/infrastructure/migrations"
	"fundilink.backend/pkg/logger"
)

var (
	loadCfg                    = config.Load
	newConnection              = postgres.NewConnection
	runMigration               = migrations.Run
	migrateToVersion           = migrations.MigrateToVersion
	stdout           io.Writer = os.Stdout
)

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	cmd := fs.String("cmd", "up", "migration command: up|down|status|version|validate")
	version := fs.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := loadCfg()
	logger.Init(cfg.Server.Env)
	ctx = logger.ContextWithRequestID(ctx, "migrate")

	// validate only inspects the embedded files
	if *cmd == "validate" {
		if err := migrations.Validate(migrations.FS, migrations.Dir); err != nil {
			return fmt.Errorf("migration validation failed: %w", err)
		}
		fmt.Fprintln(stdout, "migration validation passed")
		return nil
	}

	switch *cmd {
	case "up", "down", "status", "version":
	default:
		return fmt.Errorf("unknown -cmd value: %s", *cmd)
	}
	if *cmd == "version" && *version == "" {
		return errors.New("missing -version for version command")
	}

	db, err := newConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	logger.Info(ctx, "migrate ready", zap.String("cmd", *cmd), zap.String("db", cfg.Database.DBName))

	if *cmd == "version" {
		return migrateToVersion(ctx, db, *version)
	}
	return runMigration(ctx, db, *cmd)
}

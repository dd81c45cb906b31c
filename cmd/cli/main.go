package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/localauth/internal/cli"
	"github.com/dmitrijs2005/localauth/internal/config"
	"github.com/dmitrijs2005/localauth/internal/cryptox"
	"github.com/dmitrijs2005/localauth/internal/database"
	"github.com/dmitrijs2005/localauth/internal/logging"
	"github.com/dmitrijs2005/localauth/internal/metrics"
	"github.com/dmitrijs2005/localauth/internal/repositories/auth"
	"github.com/dmitrijs2005/localauth/internal/repositories/metadata"
	"github.com/dmitrijs2005/localauth/internal/services"
	"github.com/dmitrijs2005/localauth/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Out:    os.Stderr,
	})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	db, err := database.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logging.LogError(ctx, logger, "error initializing database", err, "path", cfg.DatabasePath)
		return err
	}
	defer db.Close()

	hasher, err := cryptox.NewHasherForAlgorithm(cfg.HashAlgorithm, []byte(cfg.HashPepper))
	if err != nil {
		return err
	}

	store := storage.New(metadata.NewSQLiteRepository(db), logger)
	recorder := metrics.NewRecorder()
	as := services.NewAuthService(auth.NewStorageRepository(store), hasher, logger, services.WithMetrics(recorder))

	logger.Debug(ctx, "starting", "database", cfg.DatabasePath, "hash_algorithm", cfg.HashAlgorithm)

	cli.NewApp(as, recorder, logger, os.Stdin, os.Stdout).Run(ctx)
	return nil
}

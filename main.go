package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ptplan/ai"
	"ptplan/config"
	"ptplan/intake"
	"ptplan/logger"
)

func main() {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	log = log.With(zap.String("run_id", uuid.NewString()))

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	apiKey, err := config.LoadAPIKey(cfg.APIKeyFile)
	if err != nil {
		return err
	}

	provider, err := ai.NewAiServiceProvider(cfg.ServiceType(), cfg.Model)
	if err != nil {
		return err
	}
	if err := provider.Prepare(apiKey); err != nil {
		return err
	}
	log.Info("provider ready", zap.Stringer("provider", provider))

	session := NewPlanSession(
		provider,
		intake.NewCollector(os.Stdin, os.Stdout),
		os.Stdout,
		cfg.OutputFile,
		NewProgress(os.Stderr),
		log,
	)
	return session.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"resume-evaluator-api/config"
	"resume-evaluator-api/internal"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
	"resume-evaluator-api/internal/infrastructure/logger"
	"resume-evaluator-api/internal/infrastructure/mq"
)

const app = "resumectl"

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "resumectl is an operator cli for the resume evaluator database",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("database-url", "", "postgres url (default is built from POSTGRES_* variables)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")

	if err := viper.BindPFlag("database-url", rootCmd.PersistentFlags().Lookup("database-url")); err != nil {
		log.Fatalf("binding database-url flag: %v", err)
	}
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindEnv("database-url", "DATABASE_URL"); err != nil {
		log.Fatalf("binding DATABASE_URL environment variable: %v", err)
	}
}

// env is what every subcommand needs: config, a logger and a pool.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	db     *pgxpool.Pool
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return nil, err
	}
	if url := viper.GetString("database-url"); url != "" {
		cfg.DB.URL = url
	}

	logEnv := "prod"
	if viper.GetBool("debug") {
		logEnv = "dev"
	}
	l, err := logger.New(logEnv)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	dsn, err := cfg.DBDSN()
	if err != nil {
		return nil, err
	}
	db, err := postgres.New(ctx, l, dsn, 2)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: l, db: db}, nil
}

func (e *env) Close() {
	e.db.Close()
	_ = e.logger.Sync()
}

// logPublisher stands in for the broker: events raised by operator actions
// are logged, not delivered.
type logPublisher struct {
	logger *zap.Logger
}

func (p logPublisher) Publish(e mq.Event) {
	p.logger.Info("event not delivered from cli",
		zap.String("event_type", e.Type),
		zap.String("user_id", e.UserID),
	)
}

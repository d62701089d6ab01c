package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resume-evaluator-api/internal/application/services"
	"resume-evaluator-api/internal/infrastructure/db/postgres/user"
	"resume-evaluator-api/internal/infrastructure/jwt"
)

var tokenCmd = &cobra.Command{
	Use:   "token <external-id>",
	Short: "Issue a shared-secret bearer token for an existing user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ttl, err := cmd.Flags().GetDuration("ttl")
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		if e.cfg.App.JWTSecret == "" {
			return errors.New("SERVICE_JWT_SECRET is not set")
		}

		as := services.NewAuthService(user.NewRepository(e.db), jwt.New(e.cfg.App.JWTSecret))
		tok, err := as.IssueToken(cmd.Context(), args[0], ttl)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().Duration("ttl", time.Hour, "token lifetime")
}

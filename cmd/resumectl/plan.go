package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-evaluator-api/internal/application/services"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/infrastructure/db/postgres/usage"
	"resume-evaluator-api/internal/infrastructure/db/postgres/user"
	"resume-evaluator-api/internal/infrastructure/db/postgres/user_file"
	"resume-evaluator-api/internal/infrastructure/metrics"
)

var setPlanCmd = &cobra.Command{
	Use:   "set-plan <external-id> <plan>",
	Short: "Change a user's plan without going through billing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := plan.Parse(args[1])
		if !ok {
			return fmt.Errorf("unknown plan %q", args[1])
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		us := services.NewUserService(
			user.NewRepository(e.db),
			usage.NewRepository(e.db),
			user_file.NewRepository(e.db),
			nil,
			logPublisher{logger: e.logger},
			e.logger,
			metrics.NewCounter(),
		)
		u, err := us.ChangePlan(cmd.Context(), args[0], p)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now on %s\n", u.ExternalID, u.Plan)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setPlanCmd)
}

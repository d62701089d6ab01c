package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"resume-evaluator-api/internal/application/services"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/infrastructure/db/postgres/usage"
	"resume-evaluator-api/internal/infrastructure/db/postgres/user"
	"resume-evaluator-api/internal/infrastructure/metrics"
)

var usageCmd = &cobra.Command{
	Use:   "usage <external-id>",
	Short: "Print monthly usage counters for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		months, err := cmd.Flags().GetInt("months")
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		es := services.NewEntitlementService(
			user.NewRepository(e.db),
			usage.NewRepository(e.db),
			plan.DefaultCatalog,
			e.logger,
			metrics.NewCounter(),
		)
		st, err := es.Status(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		records, err := es.History(cmd.Context(), args[0], months)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "plan: %s\n\n", st.Plan)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MONTH\tSCANS\tCOVER LETTERS\tINTERVIEW QUESTIONS")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.Month, r.ScansUsed, r.CoverLettersGenerated, r.InterviewQuestionsGenerated)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)

	usageCmd.Flags().IntP("months", "m", 12, "number of months to show")
}

package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var errAborted = errors.New("reset aborted")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every row from every application table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		if !yes {
			prompt := promptui.Select{
				Label: fmt.Sprintf("Delete all data in %s?", e.cfg.DB.Name),
				Items: []string{PromptNo, PromptYes},
			}
			_, answer, err := prompt.Run()
			if err != nil {
				return err
			}
			if answer != PromptYes {
				return errAborted
			}
		}

		if err = postgres.Reset(cmd.Context(), e.db); err != nil {
			return err
		}
		e.logger.Info("all tables cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

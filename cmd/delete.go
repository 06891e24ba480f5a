package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd removes a stored file
var deleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Delete a stored file by its full key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, u, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if _, err := u.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listFolder string

// listCmd lists stored files
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, u, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		objects, err := u.List(cmd.Context(), listFolder)
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tLAST MODIFIED\tKEY")
		for _, obj := range objects {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", obj.Name, obj.Size, obj.LastModified, obj.Key)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "sub folder below the configured prefix")
	RootCmd.AddCommand(listCmd)
}

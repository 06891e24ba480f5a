package cmd

import (
	"fmt"
	"path/filepath"

	"s3-uploader/core/uploader"

	"github.com/spf13/cobra"
)

var (
	addFolder string
	addName   string
)

// addCmd uploads a local file
var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Upload a local file",
	Long:  `Uploads a file under the configured folder prefix. The object name is the sanitized filename prefixed with the upload time.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, u, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		name := addName
		if name == "" {
			name = filepath.Base(args[0])
		}

		res, err := u.Add(cmd.Context(), uploader.File{DisplayName: name, SourcePath: args[0]}, addFolder)
		if err != nil {
			return fmt.Errorf("add %s: %w", args[0], err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Key())
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addFolder, "folder", "f", "", "sub folder below the configured prefix")
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "display name to store the file as (defaults to the file's base name)")
	RootCmd.AddCommand(addCmd)
}

// Package cli implements the metablob command line tool.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arloliu/metablob/blob"
)

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

// New returns the root command with all subcommands attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metablob [sub-command]",
		Short: "Inspect and convert blob point files",
		Long: `metablob works with blob files: a textual "Key = Value" header
  followed by ASCII or binary point records in the same file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: setupLogger,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	RegisterLoggingFlags(cmd.PersistentFlags())
	cmd.AddCommand(newInfoCommand())
	cmd.AddCommand(newDumpCommand())
	cmd.AddCommand(newConvertCommand())

	return cmd
}

// openBlob reads path with the command's logger attached to the blob.
func openBlob(cmd *cobra.Command, path string) (*blob.Blob, error) {
	logger := zerolog.Ctx(cmd.Context())

	return blob.Open(path, blob.WithLogger(*logger))
}

package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/metablob/internal/hash"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the header summary of a blob file.",
		Args:  cobra.ExactArgs(1),
		Example: `  # Show dimension, point count and encoding of a blob
  metablob info points.mhd`,
		RunE:              runInfo,
		DisableAutoGenTag: true,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	b, err := openBlob(cmd, path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s failed: %w", path, err)
	}

	out := cmd.OutOrStdout()
	b.WriteInfo(out)
	fmt.Fprintf(out, "FileSize    = %s\n", humanize.IBytes(uint64(len(data))))
	fmt.Fprintf(out, "Fingerprint = %016x\n", hash.Fingerprint(data))

	return nil
}

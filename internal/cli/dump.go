package cli

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/metablob/format"
	"github.com/arloliu/metablob/section"
)

const (
	FlagLimit    = "limit"
	defaultLimit = 20
)

func newDumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the points of a blob file as a table.",
		Args:  cobra.ExactArgs(1),
		Example: `  # Show the first 20 points
  metablob dump points.mhd

  # Show every point
  metablob dump points.mhd --limit 0`,
		RunE:              runDump,
		DisableAutoGenTag: true,
	}

	cmd.Flags().Int(FlagLimit, defaultLimit, "maximum number of points to print, 0 prints all")

	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt(FlagLimit)
	if err != nil {
		return fmt.Errorf("getting limit flag failed: %w", err)
	}

	if limit < 0 {
		return fmt.Errorf("invalid limit %d, must not be negative", limit)
	}

	b, err := openBlob(cmd, args[0])
	if err != nil {
		return err
	}

	header := table.Row{"#"}
	for _, name := range section.CoordinateNames(b.Dimension()) {
		header = append(header, name)
	}
	for _, name := range b.AuxFields() {
		header = append(header, name)
	}

	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetOutputMirror(&buf)
	t.AppendHeader(header)

	elemType := b.ElementType()
	for i, p := range b.Points().All() {
		if limit > 0 && i >= limit {
			break
		}

		row := table.Row{i}
		for _, v := range p.Coords {
			row = append(row, formatValue(elemType, v))
		}
		for _, v := range p.Aux {
			row = append(row, formatValue(elemType, v))
		}
		t.AppendRow(row)
	}

	if limit > 0 && b.PointCount() > limit {
		t.AppendFooter(table.Row{fmt.Sprintf("%d of %d points", limit, b.PointCount())})
	}

	t.Render()
	_, err = cmd.OutOrStdout().Write(buf.Bytes())

	return err
}

func formatValue(t format.ElementType, v float64) string {
	switch t {
	case format.TypeFloat:
		return strconv.FormatFloat(v, 'g', -1, 32)
	case format.TypeDouble:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

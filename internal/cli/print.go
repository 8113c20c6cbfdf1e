package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazyclaw/dashboard/dashboard"
)

func (a *App) printCmd() *cobra.Command {
	var (
		width    int
		height   int
		selected int
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the dashboard once to stdout",
		Long: `Render the dashboard into a fixed size area and print it without
starting the interactive screen.

Example:
  dashboard print --width 100 --height 30 --select 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
			}

			_, _, dash, err := a.load(false)
			if err != nil {
				return err
			}

			st := dashboard.NewTableState(selected)
			fmt.Fprintln(cmd.OutOrStdout(), dash.View(width, height, &st))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", 80, "Width in cells")
	cmd.Flags().IntVarP(&height, "height", "H", 24, "Height in rows")
	cmd.Flags().IntVarP(&selected, "select", "s", 0, "Highlighted row, negative for none")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	hl "github.com/db47h/nandsim/hwlib"
)

// NewTableCommand creates the table command.
func NewTableCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table X Y",
		Short: "Print the result of every canonical ALU operation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := opts.parseXY(args)
			if err != nil {
				return err
			}
			opts.Log.WithFields(logrus.Fields{"x": x.Int16(), "y": y.Int16()}).Debug("table")

			w := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(w, "%-4s %-6s %-16s %6s %-2s %s\n", "op", "ctrl", "out", "dec", "zr", "ng"); err != nil {
				return err
			}
			for _, op := range hl.Ops {
				out, zr, ng := op.Apply(x, y)
				_, err = fmt.Fprintf(w, "%-4s %-6s %-16s %6d %-2s %s\n", op.Name, op.Control, out, out.Int16(), zr, ng)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

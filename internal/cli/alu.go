package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	hl "github.com/db47h/nandsim/hwlib"
)

// ALUOptions holds flags for the alu command.
type ALUOptions struct {
	*RootOptions
	Op   string
	Ctrl string
}

// NewALUCommand creates the alu command.
func NewALUCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ALUOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "alu X Y",
		Short: "Run the ALU on two words",
		Long: `Run the ALU on words X and Y with the operation selected either by its
mnemonic (--op) or by its six control bits zx nx zy ny f no (--ctrl).

Example:
  nandsim alu --op x-y 0000000000000111 0000000000000010
  nandsim alu -d --ctrl 000010 -- 7 -2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runALU(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", "x+y", "operation mnemonic")
	cmd.Flags().StringVar(&opts.Ctrl, "ctrl", "", "control bits zx nx zy ny f no, e.g. 000010 (overrides --op)")

	return cmd
}

func runALU(opts *ALUOptions, args []string, cmd *cobra.Command) error {
	x, y, err := opts.parseXY(args)
	if err != nil {
		return err
	}

	var ctrl hl.Control
	if opts.Ctrl != "" {
		ctrl, err = hl.ParseControl(opts.Ctrl)
	} else {
		ctrl, err = hl.LookupOp(opts.Op)
	}
	if err != nil {
		return errors.Wrap(err, "alu")
	}

	out, zr, ng := ctrl.Apply(x, y)
	opts.Log.WithFields(logrus.Fields{
		"x":    x.Int16(),
		"y":    y.Int16(),
		"ctrl": ctrl.String(),
	}).Debug("alu")

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "out=%s (%d) zr=%s ng=%s\n", out, out.Int16(), zr, ng)
	return err
}

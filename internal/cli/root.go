// Package cli implements the nandsim command line interface.
package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	hw "github.com/db47h/nandsim"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Decimal bool // words on the command line are signed decimals

	Log *logrus.Logger
}

// NewRootCommand creates the root command for the nandsim CLI. Logs go to
// stderr.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Log: newLogger(os.Stderr)})
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nandsim",
		Short: "nandsim - a 16 bits ALU built out of NAND gates",
		Long: `A digital logic simulator where every gate, the adders and the ALU
are derived from a single NAND primitive, plus two-phase clocked registers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose {
				opts.Log.SetLevel(logrus.DebugLevel)
			} else {
				opts.Log.SetLevel(logrus.InfoLevel)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.Decimal, "decimal", "d", false, "read words as signed decimal numbers instead of 16 binary digits")

	cmd.AddCommand(NewALUCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))

	return cmd
}

// parseWord parses a command line word argument.
func (o *RootOptions) parseWord(s string) (hw.Word, error) {
	if !o.Decimal {
		return hw.ParseWord(s)
	}
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return hw.Word{}, errors.Wrapf(err, "invalid decimal word %q", s)
	}
	return hw.WordOf(int16(v)), nil
}

func (o *RootOptions) parseXY(args []string) (x, y hw.Word, err error) {
	if x, err = o.parseWord(args[0]); err != nil {
		return x, y, errors.Wrap(err, "x")
	}
	if y, err = o.parseWord(args[1]); err != nil {
		return x, y, errors.Wrap(err, "y")
	}
	return x, y, nil
}

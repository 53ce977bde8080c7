// Command nandsim runs the NAND based ALU and registers from the command line.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/db47h/nandsim/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("nandsim failed")
		os.Exit(1)
	}
}

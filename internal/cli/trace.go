package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	hw "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
)

// Script is a sequence of inputs fed to a 16 bits register, one step per
// clock cycle.
type Script struct {
	// Name identifies the script in logs.
	Name string `yaml:"name"`

	// Steps are run in order, starting from a register holding 0.
	Steps []Step `yaml:"steps"`
}

// Step is one clock cycle of a Script.
type Step struct {
	// In is the register input as 16 binary digits.
	In string `yaml:"in"`

	// Load is 0 or 1. When 1, In is latched.
	Load int `yaml:"load"`

	// Expect is the optional expected register output once the cycle
	// completes.
	Expect string `yaml:"expect,omitempty"`
}

type step struct {
	in, expect hw.Word
	load       hw.Bit
	check      bool
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parse script %s", path)
	}
	return &s, nil
}

func (s *Script) compile() ([]step, error) {
	if len(s.Steps) == 0 {
		return nil, errors.New("script has no steps")
	}
	steps := make([]step, len(s.Steps))
	for i, st := range s.Steps {
		var err error
		if steps[i].in, err = hw.ParseWord(st.In); err != nil {
			return nil, errors.Wrapf(err, "step %d: in", i)
		}
		if steps[i].load, err = hw.NewBit(st.Load); err != nil {
			return nil, errors.Wrapf(err, "step %d: load", i)
		}
		if st.Expect != "" {
			if steps[i].expect, err = hw.ParseWord(st.Expect); err != nil {
				return nil, errors.Wrapf(err, "step %d: expect", i)
			}
			steps[i].check = true
		}
	}
	return steps, nil
}

// Run feeds the script to a fresh register mounted in its own circuit and
// writes one line per step to w: the step number, the inputs, then the
// register output as seen during Tick and during Tock.
func (s *Script) Run(w io.Writer, log logrus.FieldLogger) error {
	steps, err := s.compile()
	if err != nil {
		return err
	}

	var (
		reg        hl.Register
		cur        step
		tick, tock hw.Word
	)
	c, err := hw.NewCircuit(
		reg.Part(func() hw.Word { return cur.in }, func() hw.Bit { return cur.load }),
		hl.Output(reg.Output, func(p hw.Phase, v hw.Word) {
			if p == hw.Tick {
				tick = v
			} else {
				tock = v
			}
		}),
	)
	if err != nil {
		return errors.Wrap(err, "build circuit")
	}

	log.WithFields(logrus.Fields{"script": s.Name, "steps": len(steps)}).Info("running script")
	if _, err = fmt.Fprintf(w, "%-4s %-16s %-4s %-16s %s\n", "step", "in", "load", "tick", "tock"); err != nil {
		return err
	}
	for i, st := range steps {
		cur = st
		c.TickTock()
		log.WithFields(logrus.Fields{
			"step":  i,
			"cycle": c.Clock().Cycle(),
			"out":   tock.Int16(),
		}).Debug("step")
		if _, err = fmt.Fprintf(w, "%-4d %-16s %-4s %-16s %s\n", i, st.in, st.load, tick, tock); err != nil {
			return err
		}
		if st.check && tock != st.expect {
			return errors.Errorf("step %d: expected %s, got %s", i, st.expect, tock)
		}
	}
	return nil
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <script.yaml>",
		Short: "Run a register trace script",
		Long: `Run a YAML script through a 16 bits register driven by a two-phase clock.

Script format:
  name: load-then-hold
  steps:
    - in: "0000000000000101"
      load: 1
      expect: "0000000000000101"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScript(args[0])
			if err != nil {
				return err
			}
			return errors.Wrap(s.Run(cmd.OutOrStdout(), opts.Log), s.Name)
		},
	}
}

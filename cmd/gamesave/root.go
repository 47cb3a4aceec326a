package main

import (
	"io"
	"os"

	"github.com/arloliu/gamesave/internal/logging"
	"github.com/arloliu/gamesave/obfs"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// app carries the global flags and the logger built from them.
type app struct {
	logLevel string
	seed     uint64
	input    string
	output   string
	logger   hclog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:           "gamesave",
		Short:         "Encode, decode and inspect game save entries",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = logging.NewLogger("gamesave", a.logLevel, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", logging.GetLogLevel(), "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "Seed for deterministic obfuscation keys (0 = random)")
	rootCmd.PersistentFlags().StringVarP(&a.input, "input", "i", "", "Input file (default stdin)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newInspectCmd(a),
		newStatsCmd(a),
	)

	return rootCmd
}

func (a *app) encoderOptions() []obfs.EncoderOption {
	if a.seed == 0 {
		return nil
	}

	return []obfs.EncoderOption{obfs.WithSeed(a.seed)}
}

func (a *app) readInput(cmd *cobra.Command) ([]byte, error) {
	if a.input == "" || a.input == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(a.input)
}

func (a *app) writeOutput(cmd *cobra.Command, data []byte) error {
	if a.output == "" || a.output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	return os.WriteFile(a.output, data, 0o644)
}

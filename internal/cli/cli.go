// Package cli wires the rlestep commands.
package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/rlestep/codec"
	"github.com/arloliu/rlestep/internal/config"
	"github.com/arloliu/rlestep/internal/hash"
)

// app carries state shared by all commands of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

// input flags shared by every command that reads a buffer
type inputFlags struct {
	text   string
	hexStr string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.text, "text", "", "use the UTF-8 bytes of this string as input")
	cmd.Flags().StringVar(&f.hexStr, "hex", "", "use hex-encoded bytes as input")
	cmd.MarkFlagsMutuallyExclusive("text", "hex")
}

// NewRootCommand builds the rlestep command tree reading from in and writing
// to out and errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "rlestep",
		Short:         "run-length encoding with step-by-step traces",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file path (yaml)")
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")

	root.AddCommand(
		a.encodeCommand(),
		a.decodeCommand(),
		a.pairsCommand(),
		a.traceCommand(),
		a.compareCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if f := cmd.Flags().Lookup("verbose"); f != nil && f.Changed {
		v, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		cfg.Verbose = v
	}
	a.cfg = cfg

	if cfg.Verbose {
		a.logger = newLogger(a.errOut)
	}
	a.logger.Debug("config resolved",
		zap.String("config", a.configPath),
		zap.String("format", cfg.Format),
		zap.Int("max_steps", cfg.MaxSteps),
	)

	return nil
}

func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)

	return zap.New(core)
}

// readInput resolves the input buffer and logs its size and xxhash.
func (a *app) readInput(f *inputFlags, args []string) ([]byte, error) {
	data, err := a.resolveInput(f, args)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("input loaded",
		zap.Int("bytes", len(data)),
		zap.String("input_hash", fmt.Sprintf("%016x", hash.Sum(data))),
	)

	return data, nil
}

// resolveInput reads from flags, a file argument or stdin, in that order.
func (a *app) resolveInput(f *inputFlags, args []string) ([]byte, error) {
	switch {
	case f.text != "":
		return codec.StringToBytes(f.text), nil
	case f.hexStr != "":
		data, err := hex.DecodeString(f.hexStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --hex input: %w", err)
		}

		return data, nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		a.logger.Debug("read input file", zap.String("path", args[0]), zap.Int("bytes", len(data)))

		return data, nil
	default:
		data, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}
}

// writeOutput writes data raw to path, or hex-encoded to stdout when path is empty.
func (a *app) writeOutput(path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		a.logger.Debug("wrote output file", zap.String("path", path), zap.Int("bytes", len(data)))

		return nil
	}

	_, err := fmt.Fprintln(a.out, hex.EncodeToString(data))

	return err
}

// Execute runs the root command with the process streams and returns the exit code.
func Execute() int {
	cmd := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		var decErr *codec.DecodeError
		if errors.As(err, &decErr) {
			return 2
		}

		return 1
	}

	return 0
}

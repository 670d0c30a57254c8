package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/rlestep/codec"
	"github.com/arloliu/rlestep/compress"
	"github.com/arloliu/rlestep/format"
	"github.com/arloliu/rlestep/internal/config"
	"github.com/arloliu/rlestep/internal/render"
	"github.com/arloliu/rlestep/trace"
)

func (a *app) encodeCommand() *cobra.Command {
	var in inputFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "run-length encode a buffer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInput(&in, args)
			if err != nil {
				return err
			}

			encoded := codec.Encode(data)
			a.logger.Debug("encoded",
				zap.Int("input_bytes", len(data)),
				zap.Int("output_bytes", len(encoded)),
				zap.Int("runs", len(encoded)/2),
			)

			return a.writeOutput(outPath, encoded)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write raw output to file instead of hex to stdout")

	return cmd
}

func (a *app) decodeCommand() *cobra.Command {
	var in inputFlags
	var outPath string
	var asString bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "expand a run-length encoded buffer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInput(&in, args)
			if err != nil {
				return err
			}

			decoded, err := codec.Decode(data)
			if err != nil {
				return err
			}
			a.logger.Debug("decoded", zap.Int("input_bytes", len(data)), zap.Int("output_bytes", len(decoded)))

			if asString {
				s, err := codec.BytesToString(decoded)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, s)

				return err
			}

			return a.writeOutput(outPath, decoded)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write raw output to file instead of hex to stdout")
	cmd.Flags().BoolVar(&asString, "string", false, "print the decoded bytes as UTF-8 text")

	return cmd
}

func (a *app) pairsCommand() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "pairs [file]",
		Short: "list the (count, value) pairs of an encoded buffer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInput(&in, args)
			if err != nil {
				return err
			}
			if err := codec.Validate(data); err != nil {
				return err
			}

			for off, p := range codec.Pairs(data) {
				if _, err := fmt.Fprintf(a.out, "%d\t%d x %d\n", off, p.Count, p.Value); err != nil {
					return err
				}
			}

			return nil
		},
	}
	in.register(cmd)

	return cmd
}

func (a *app) traceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "record the steps of encoding or decoding",
	}
	cmd.AddCommand(
		a.traceSubcommand("encode", "trace run-length encoding", trace.Encode),
		a.traceSubcommand("decode", "trace run-length decoding", trace.Decode),
	)

	return cmd
}

type traceFunc func(data []byte, opts ...trace.Option) (trace.Sequence, error)

func (a *app) traceSubcommand(name, short string, fn traceFunc) *cobra.Command {
	var in inputFlags
	var outFormat string
	var maxSteps int
	var noDesc bool

	cmd := &cobra.Command{
		Use:   name + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// flags override the config file
			if cmd.Flags().Changed("format") {
				a.cfg.Format = outFormat
			}
			if cmd.Flags().Changed("max-steps") {
				a.cfg.MaxSteps = maxSteps
			}
			if noDesc {
				a.cfg.Descriptions = false
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			data, err := a.readInput(&in, args)
			if err != nil {
				return err
			}

			seq, err := fn(data,
				trace.WithMaxSteps(a.cfg.MaxSteps),
				trace.WithDescriptions(a.cfg.Descriptions),
			)
			if err != nil {
				return err
			}
			a.logger.Debug("traced",
				zap.Stringer("kind", seq.Kind),
				zap.Int("steps", seq.Len()),
				zap.Uint64("fingerprint", seq.Fingerprint()),
			)

			return render.WriteSequence(a.out, seq, a.cfg.Format)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&outFormat, "format", "f", config.DefaultFormat, fmt.Sprintf("output format %v", config.Formats))
	cmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "abort when the trace exceeds this many steps (0 = unlimited)")
	cmd.Flags().BoolVar(&noDesc, "no-descriptions", false, "omit step descriptions")

	return cmd
}

func (a *app) compareCommand() *cobra.Command {
	var in inputFlags
	var only []string

	cmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "compare RLE against general purpose compressors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInput(&in, args)
			if err != nil {
				return err
			}

			if len(only) == 0 {
				stats, err := compress.MeasureAll(data)
				if err != nil {
					return err
				}

				return render.WriteStats(a.out, stats)
			}

			stats := make([]compress.CompressionStats, 0, len(only))
			for _, name := range only {
				ct, err := format.ParseCompressionType(name)
				if err != nil {
					return err
				}
				s, err := compress.Measure(ct, data)
				if err != nil {
					return err
				}
				a.logger.Debug("measured", zap.Stringer("algorithm", ct), zap.Int64("compressed", s.CompressedSize))
				stats = append(stats, s)
			}

			return render.WriteStats(a.out, stats)
		},
	}
	in.register(cmd)
	cmd.Flags().StringSliceVar(&only, "codec", nil, "limit to these codecs (rle, none, lz4, s2, zstd)")

	return cmd
}

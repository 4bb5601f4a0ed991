// Command npconv convolves two number sequences the way numpy.convolve does.
//
// Usage:
//
//	npconv [flags]
//	npconv axis --shape 2,3,4 [--axis N]
//
// Examples:
//
//	npconv --signal 1,2,3 --kernel 0,1,0.5 --mode same
//	npconv --config job.yaml --backend fft --repeat 100 -v
//	npconv axis --shape 2,3,4 --axis -1
//
// A config file holds the same fields as the flags:
//
//	signal: [1, 2, 3]
//	kernel: [0, 1, 0.5]
//	mode: full
//	backend: fft
//	repeat: 10
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-numrs/dsp/axis"
	"github.com/cwbudde/algo-numrs/dsp/conv"
)

type app struct {
	logger  *zap.Logger
	verbose bool

	configPath string
	signal     string
	kernel     string
	mode       string
	backend    string
	repeat     int
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "npconv",
		Short: "numpy-compatible 1-D convolution",
		Long: `npconv computes the linear convolution of a signal with a kernel using
either the direct or the FFT backend, trimmed to the full, same or valid mode.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runConvolve,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	flags := root.Flags()
	flags.StringVar(&a.configPath, "config", "", "YAML job file")
	flags.StringVar(&a.signal, "signal", "", "signal samples, comma separated")
	flags.StringVar(&a.kernel, "kernel", "", "kernel samples, comma separated")
	flags.StringVar(&a.mode, "mode", "", "output mode: full, same or valid")
	flags.StringVar(&a.backend, "backend", "", "backend: direct or fft (default direct)")
	flags.IntVar(&a.repeat, "repeat", 0, "run the convolution this many times (timing)")

	root.AddCommand(newAxisCmd(a))
	return root
}

// buildJob merges the config file with the flags that were set explicitly.
func (a *app) buildJob(cmd *cobra.Command) (job, error) {
	var j job
	if a.configPath != "" {
		loaded, err := loadJob(a.configPath)
		if err != nil {
			return j, err
		}
		j = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("signal") {
		xs, err := parseNumbers(a.signal)
		if err != nil {
			return j, fmt.Errorf("--signal: %w", err)
		}
		j.Signal = xs
	}
	if flags.Changed("kernel") {
		xs, err := parseNumbers(a.kernel)
		if err != nil {
			return j, fmt.Errorf("--kernel: %w", err)
		}
		j.Kernel = xs
	}
	if flags.Changed("mode") {
		j.Mode = a.mode
	}
	if flags.Changed("backend") {
		j.Backend = a.backend
	}
	if flags.Changed("repeat") {
		j.Repeat = a.repeat
	}
	return j, nil
}

func (a *app) runConvolve(cmd *cobra.Command, args []string) error {
	j, err := a.buildJob(cmd)
	if err != nil {
		return err
	}
	mode, err := j.validate()
	if err != nil {
		return err
	}

	a.logger.Debug("Convolving",
		zap.Int("signal_len", len(j.Signal)),
		zap.Int("kernel_len", len(j.Kernel)),
		zap.Stringer("mode", mode),
		zap.String("backend", j.Backend),
		zap.String("direct_kernel", conv.DirectKernel()))

	var proc *conv.FFTProcessor
	if j.Backend == backendFFT {
		proc = conv.NewFFTProcessor()
	}

	var out []float64
	start := time.Now()
	for range j.Repeat {
		if proc != nil {
			out, err = conv.ConvolveFFT(j.Signal, j.Kernel, mode, proc)
		} else {
			out, err = conv.Convolve(j.Signal, j.Kernel, mode)
		}
		if err != nil {
			a.logger.Error("Convolution failed", zap.Error(err))
			return err
		}
	}
	elapsed := time.Since(start)

	a.logger.Debug("Convolution done",
		zap.Int("output_len", len(out)),
		zap.Int("repeat", j.Repeat),
		zap.Duration("elapsed", elapsed),
		zap.Duration("per_call", elapsed/time.Duration(j.Repeat)))

	fmt.Fprintln(cmd.OutOrStdout(), formatNumbers(out))
	return nil
}

func newAxisCmd(a *app) *cobra.Command {
	var (
		shape   string
		axisArg string
	)

	cmd := &cobra.Command{
		Use:   "axis",
		Short: "Resolve a possibly negative axis index against an array shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := parseInts(shape)
			if err != nil {
				return fmt.Errorf("--shape: %w", err)
			}

			spec := axis.Last
			if axisArg != "" {
				i, err := strconv.Atoi(axisArg)
				if err != nil {
					return fmt.Errorf("--axis: %w", err)
				}
				spec = axis.At(i)
			}

			idx, err := axis.ResolveShape(spec, dims)
			if err != nil {
				a.logger.Debug("Axis rejected", zap.Stringer("axis", spec), zap.Ints("shape", dims))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "axis %s -> %d (length %d)\n", spec, idx, dims[idx])
			return nil
		},
	}

	cmd.Flags().StringVar(&shape, "shape", "", "array shape, comma separated")
	cmd.Flags().StringVar(&axisArg, "axis", "", "axis index, negative counts from the end (default last)")
	return cmd
}

func formatNumbers(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"min_triangle_path/internal/config"
	"min_triangle_path/internal/logging"
	"min_triangle_path/internal/source"
	"min_triangle_path/internal/triangle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const commandName = "min-triangle-path"

type Runner struct {
	options  Options
	logSetup *logging.Setup
	source   *source.Client
}

func NewRunner(cfg config.Config, logSetup *logging.Setup, src *source.Client) *Runner {
	return &Runner{
		options:  optionsFromConfig(cfg),
		logSetup: logSetup,
		source:   src,
	}
}

func (r *Runner) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return r.Run(ctx, os.Args[1:], os.Stdin, os.Stdout)
}

// Run executes the command with args, reading "-" input from stdin and
// writing the result to stdout. Nothing is written to stdout on error.
func (r *Runner) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if args == nil {
		args = []string{}
	}

	opts := r.options
	cmd := r.newCommand(&opts, stdin, stdout)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func (r *Runner) newCommand(opts *Options, stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   commandName + " [flags]",
		Short: "Find the minimal top-to-bottom path through a triangle of numbers",
		Long: "Reads a triangle of integers, one row per line, until the end marker or end of input,\n" +
			"and prints the minimal path from the apex to the base row together with its sum.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd.Context(), opts, stdin, stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)

	flags := cmd.Flags()
	flags.StringVar(&opts.EndMarker, "end-marker", opts.EndMarker, "Line that ends the input (END_MARKER)")
	flags.StringVar(&opts.Separator, "separator", opts.Separator, "Separator between numbers in a row (SEPARATOR)")
	flags.StringVarP(&opts.Input, "input", "i", opts.Input, "Input file, http(s) URL or - for stdin (INPUT)")
	flags.StringVarP(&opts.Format, "format", "f", opts.Format, "Output format: text, json or yaml (FORMAT)")
	flags.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "Timeout for fetching remote input (TIMEOUT)")
	flags.StringVarP(&opts.Verbosity, "verbosity", "v", opts.Verbosity, "Log level: off, error, warn, info or debug (VERBOSITY)")
	flags.StringVar(&opts.LogFile, "log-file", opts.LogFile, "Log file path (LOG_FILE)")

	return cmd
}

func (r *Runner) run(ctx context.Context, opts *Options, stdin io.Reader, stdout io.Writer) error {
	write, err := writerFor(opts.Format)
	if err != nil {
		return err
	}

	logger, err := r.logSetup.Logger(opts.Verbosity, opts.LogFile)
	if err != nil {
		return err
	}
	logger = logger.Named("cli")
	defer func() {
		_ = logger.Sync()
	}()

	tri, err := r.readTriangle(ctx, opts, stdin, logger)
	if err != nil {
		return err
	}
	logger.Info("triangle read", zap.Int("rows", tri.Rows()))
	logger.Debug("triangle", zap.Stringer("values", tri))

	path, _ := timed(logger, "solve", func() (triangle.Path, error) {
		return tri.Solve(), nil
	})
	res := newResult(tri.Rows(), path)
	logResult(logger, res)

	return write(stdout, res)
}

func (r *Runner) readTriangle(ctx context.Context, opts *Options, stdin io.Reader, logger *zap.Logger) (*triangle.Triangle, error) {
	src := r.source.WithStdin(stdin).WithLogger(logger).WithTimeout(opts.Timeout)
	in, err := src.Open(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	parseOpts := triangle.ParseOptions{
		EndMarker: opts.EndMarker,
		Separator: opts.Separator,
		OnLine: func(line int, text string) {
			logger.Debug("line read", zap.Int("line", line), zap.String("text", text))
		},
	}

	tri, err := timed(logger, "parse", func() (*triangle.Triangle, error) {
		return triangle.Parse(in, parseOpts)
	})
	if err != nil {
		return nil, fmt.Errorf("parse triangle: %w", err)
	}
	return tri, nil
}

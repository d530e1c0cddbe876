// Package cli builds the cobra command shared by the benchmark programs.
// The programs differ only in the codec they plug in.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/Sokol111/avro-codec-bench/pkg/bench"
	"github.com/Sokol111/avro-codec-bench/pkg/core"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// Program describes one benchmark binary.
type Program struct {
	Name    string
	Short   string
	Version string
	Codec   bench.CodecFactory
}

type flags struct {
	configPath string
	warmup     bool
	verbose    bool
}

// NewRootCommand returns `<name> [encode|decode|container] [count] [compression]`.
// The result line goes to the command's output stream; usage and errors go to its error stream.
func NewRootCommand(p Program) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   usage(p.Name),
		Short: p.Short,
		Long: p.Short + `

Operations:
  encode     time encoding count generated records
  decode     time decoding count pre-encoded records
  container  time writing and reading a container file (null or deflate compression)

count defaults to 10000, compression to null. An invalid count falls back to the default
and unknown compression names fall back to null. Flags must precede the operation.`,
		Version:       p.Version,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, p, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (defaults to $CONFIG_FILE)")
	cmd.Flags().BoolVarP(&f.warmup, "warmup", "w", false, "Run warmup rounds before the measured run")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	// Flags go before the operation; everything after it is positional, so a count like -5 reaches the parser.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func usage(name string) string {
	return name + " [encode|decode|container] [count] [compression]"
}

func printUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s\n", usage(name))
}

func run(cmd *cobra.Command, p Program, f *flags, args []string) error {
	if len(args) > 0 {
		if _, err := bench.ParseOperation(args[0]); err != nil {
			printUsage(cmd.ErrOrStderr(), p.Name)
			return err
		}
	}

	var (
		driver *bench.Driver
		cfg    bench.Config
	)

	app := fx.New(
		core.NewCoreModule(core.WithConfigPath(f.configPath), core.WithVerbose(f.verbose)),
		bench.NewBenchModule(p.Codec),
		fx.Populate(&driver, &cfg),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to initialize benchmark")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start benchmark")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	req, err := bench.ParseRequest(args, cfg)
	if err != nil {
		printUsage(cmd.ErrOrStderr(), p.Name)
		return err
	}
	req.Warmup = f.warmup

	result, err := driver.Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

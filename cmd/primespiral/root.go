package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/primespiral"
	"github.com/gogpu/primespiral/internal/config"
)

// options holds the command-line flags.
type options struct {
	configPath  string
	width       int
	height      int
	spiralWidth float64
	offset      float64
	output      string
	workers     int
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	defaults := primespiral.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "primespiral",
		Short: "Render integers on an Archimedean spiral with the primes highlighted",
		Long: `primespiral places the integers 0..n on an Archimedean spiral, weights
the primes, bins the points into a histogram, blurs it and writes the result
as a two-color image.

Run without flags to write a 6000x6000 prime.png.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				primespiral.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			res, err := primespiral.Generate(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			return writeSummary(stdout, res)
		},
	}

	// Persistent so the config subcommand sees the same overrides.
	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.IntVar(&opts.width, "width", defaults.Width, "image width in pixels")
	f.IntVar(&opts.height, "height", defaults.Height, "image height in pixels")
	f.Float64Var(&opts.spiralWidth, "spiral-width", defaults.SpiralWidth, "distance between spiral arms in pixels")
	f.Float64Var(&opts.offset, "offset", defaults.Offset, "weight added to every integer before binning")
	f.StringVarP(&opts.output, "output", "o", defaults.Output, "output file (.png, .bmp, .tif, .tiff)")
	f.IntVar(&opts.workers, "workers", defaults.Workers, "parallel workers, 0 for GOMAXPROCS")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline stages to stderr")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.AddCommand(newConfigCmd(stdout, opts), newVersionCmd(stdout))
	return cmd
}

// writeSummary prints the prime count and bound with grouped digits.
func writeSummary(w io.Writer, res *primespiral.Result) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "Found %d prime numbers smaller than %d.\n", res.Primes, res.Bound)
	return err
}

// resolveConfig layers defaults, the config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *options) (primespiral.Config, error) {
	cfg := primespiral.DefaultConfig()

	if path := opts.configPath; path != "" {
		file, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		if err := file.Apply(&cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("spiral-width") {
		cfg.SpiralWidth = opts.spiralWidth
	}
	if flags.Changed("offset") {
		cfg.Offset = opts.offset
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	return cfg, cfg.Validate()
}

func newConfigCmd(stdout io.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = stdout.Write(data)
			return err
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(stdout, "primespiral", primespiral.Version)
		},
	}
}

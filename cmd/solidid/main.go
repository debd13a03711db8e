package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ivan-a-souza/solid-id/internal/config"
	"github.com/ivan-a-souza/solid-id/internal/debug"
	"github.com/ivan-a-souza/solid-id/internal/version"
	"github.com/ivan-a-souza/solid-id/pkg/solidid"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var Version = version.Info() // Use centralized version management

func init() {
	// Full build details on --version instead of the bare semver.
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, version.FullInfo())
	}
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("count") {
		cfg.Generate.Count = c.Int("count")
	}
	if c.IsSet("parallel") {
		cfg.Generate.Parallel = c.Int("parallel")
	}
	if c.Bool("verbose") {
		cfg.Output.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	debug.SetEnabled(cfg.Output.Verbose)
	return cfg, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "solidid",
		Usage:                  "Generate and validate compact, time-sortable identifiers",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
			&cli.BoolFlag{
				// No short alias: -v belongs to the auto-registered
				// version flag.
				Name:  "verbose",
				Usage: "Show debug information",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "generate",
				Aliases: []string{"gen", "new"},
				Usage:   "Mint identifiers, one per line",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of identifiers to mint",
					},
					&cli.IntFlag{
						Name:    "parallel",
						Aliases: []string{"p"},
						Usage:   "Worker goroutines (0=sequential, negative invalid)",
					},
				},
				Action: runGenerate,
			},
			{
				Name:      "inspect",
				Aliases:   []string{"i"},
				Usage:     "Decode identifiers and print their fields",
				ArgsUsage: "ID [ID...]",
				Action:    runInspect,
			},
			{
				Name:      "validate",
				Usage:     "Check identifiers; exits non-zero if any is invalid",
				ArgsUsage: "ID [ID...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Suppress per-identifier output",
					},
				},
				Action: runValidate,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	count := cfg.Generate.Count
	workers := cfg.Generate.Parallel
	debug.LogGen("minting %d identifiers with %d workers\n", count, workers)

	gen := solidid.NewGenerator()

	if workers == 0 || count == 1 {
		ids, err := gen.Batch(count)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(c.App.Writer, id)
		}
		return nil
	}

	if workers > count {
		workers = count
	}
	if workers > runtime.NumCPU()*4 {
		workers = runtime.NumCPU() * 4
	}

	// Generation is coordination-free, so workers just split the count;
	// results land in a preallocated slice to keep output deterministic
	// in length (order across workers is not meaningful).
	ids := make([]solidid.ID, count)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * count / workers
		hi := (w + 1) * count / workers
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				id, err := gen.Generate()
				if err != nil {
					return err
				}
				ids[i] = id
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(c.App.Writer, id)
	}
	return nil
}

func runInspect(c *cli.Context) error {
	if _, err := loadConfigWithOverrides(c); err != nil {
		return err
	}
	if c.NArg() == 0 {
		return fmt.Errorf("inspect requires at least one identifier")
	}

	for _, arg := range c.Args().Slice() {
		result := solidid.Parse(arg)
		if !result.Valid {
			debug.LogParse("%s rejected: %s\n", arg, result.Status)
			fmt.Fprintf(c.App.Writer, "%s -> invalid (%s)\n", arg, result.Status)
			if result.Status == solidid.StatusInvalidChecksum {
				fmt.Fprintf(c.App.Writer, "  checksum stored=0x%04x computed=0x%04x\n",
					result.Checksum, result.WantChecksum)
			}
			continue
		}

		fmt.Fprintf(c.App.Writer, "%s -> valid\n", arg)
		fmt.Fprintf(c.App.Writer, "  time     %s\n", result.ID.Time().Format("2006-01-02T15:04:05.000Z07:00"))
		fmt.Fprintf(c.App.Writer, "  elapsed  %d ms since epoch\n", result.ID.Timestamp())
		fmt.Fprintf(c.App.Writer, "  entropy  0x%016x\n", result.Entropy)
		fmt.Fprintf(c.App.Writer, "  checksum 0x%04x\n", result.Checksum)
	}
	return nil
}

func runValidate(c *cli.Context) error {
	if _, err := loadConfigWithOverrides(c); err != nil {
		return err
	}
	if c.NArg() == 0 {
		return fmt.Errorf("validate requires at least one identifier")
	}

	quiet := c.Bool("quiet")
	invalid := 0

	for _, arg := range c.Args().Slice() {
		result := solidid.Parse(arg)
		if !result.Valid {
			invalid++
			debug.LogParse("%s rejected: %s\n", arg, result.Status)
		}
		if !quiet {
			fmt.Fprintf(c.App.Writer, "%s\t%s\n", arg, result.Status)
		}
	}

	if invalid > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d identifiers invalid", invalid, c.NArg()), 1)
	}
	return nil
}

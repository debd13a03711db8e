// Package config loads CLI configuration from an optional .solidid.kdl
// file. Configuration covers only the command-line wrapper (batch sizes,
// parallelism, verbosity); the identifier format itself has no knobs, since
// the epoch, field widths, and alphabet are fixed constants of the format.
package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = ".solidid.kdl"

type Config struct {
	Generate Generate
	Output   Output
}

type Generate struct {
	Count    int // identifiers minted per invocation
	Parallel int // worker goroutines for batch generation; 0 = sequential
}

type Output struct {
	Verbose bool // echo parse diagnostics to stderr
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generate: Generate{Count: 1, Parallel: 0},
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist. An unreadable or malformed file is an error; a
// missing one is not.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Generate.Count < 1 {
		return fmt.Errorf("generate count must be at least 1, got %d", c.Generate.Count)
	}
	if c.Generate.Parallel < 0 {
		return fmt.Errorf("generate parallel must not be negative, got %d", c.Generate.Parallel)
	}
	return nil
}

func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "generate":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "count":
					if v, ok := firstIntArg(cn); ok {
						cfg.Generate.Count = v
					}
				case "parallel":
					if v, ok := firstIntArg(cn); ok {
						cfg.Generate.Parallel = v
					}
				}
			}
		case "output":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "verbose":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Output.Verbose = b
					}
				}
			}
		}
	}

	return cfg, nil
}

// Helper functions leveraging the kdl-go document model.
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/vecdraw/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r.subcommand("config"), fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		_, err := io.WriteString(c.stdout, c.config.String())
		return err
	case "save":
		return c.runSave(args[1:])
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runSave(args []string) error {
	var path string
	switch len(args) {
	case 0:
		// Save over the file that was loaded, else the default location.
		path = config.NewLoader(version, configPathOverride).GetConfigPath()
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("failed to get user home dir: %w", err)
			}
			path = p
		}
	case 1:
		path = args[0]
	default:
		return &UsageError{of: c}
	}
	if err := config.Save(c.config, path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/vecdraw/internal/appstate"
	"github.com/example/vecdraw/internal/theme"
)

type colorsCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r.subcommand("colors"), fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *colorsCmd) Run() error {
	fmt.Fprintln(c.stdout, "colors:")
	for i, p := range appstate.Palette() {
		fmt.Fprintf(c.stdout, "  %2d %-8s %s\n", i, p.Name, theme.FormatColor(p.Color))
	}
	fmt.Fprintln(c.stdout, "widths:")
	for _, w := range appstate.LineWidths() {
		fmt.Fprintf(c.stdout, "  %g\n", w)
	}
	return nil
}

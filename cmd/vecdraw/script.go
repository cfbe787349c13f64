package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/vecdraw/internal/export"
)

type scriptCmd struct {
	*root
	fs     *flag.FlagSet
	file   string
	output string
	stdin  io.Reader
	stdout io.Writer
}

func parseScriptCmd(args []string, r *root) (*scriptCmd, error) {
	fs := flag.NewFlagSet("script", flag.ExitOnError)
	s := &scriptCmd{root: r.subcommand("script"), fs: fs, stdin: os.Stdin, stdout: os.Stdout}
	fs.Usage = usageFunc(s)
	fs.StringVar(&s.output, "o", "", "export the result to this file (.png or .pdf)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: s}
	}
	s.file = fs.Arg(0)
	if s.output != "" {
		if _, err := export.FormatFromPath(s.output); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *scriptCmd) FlagSet() *flag.FlagSet { return s.fs }

func (s *scriptCmd) Run() error {
	in := s.stdin
	if s.file != "-" {
		f, err := os.Open(s.file)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	sess, err := s.newSession()
	if err != nil {
		return err
	}
	interp := newInterpreter(sess, s.stdout, s.background(), s.notifier)
	if err := runScript(interp, s.file, in); err != nil {
		return err
	}
	if s.output != "" {
		return interp.export([]string{s.output})
	}
	return nil
}

// runScript executes every line of r, stopping at the first failure or an
// exit command.
func runScript(interp *interpreter, name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		done, err := interp.executeLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		if done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/example/vecdraw/internal/appstate"
)

type editCmd struct {
	*root
	fs     *flag.FlagSet
	output string
	image  string
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	e := &editCmd{root: r.subcommand("edit"), fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.output, "o", "", "export file for Ctrl+S (.png or .pdf)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		e.image = fs.Arg(0)
	default:
		return nil, &UsageError{of: e}
	}
	return e, nil
}

func (e *editCmd) FlagSet() *flag.FlagSet { return e.fs }

func (e *editCmd) Run() error {
	sess, err := e.newSession()
	if err != nil {
		return err
	}
	if e.image != "" {
		if _, err := sess.ImportFile(e.image); err != nil {
			return fmt.Errorf("import %s: %w", e.image, err)
		}
	}
	output := e.output
	if output == "" {
		output = appstate.DefaultOutput(e.config.ExportDir, sess.ID)
	}
	st := appstate.New(sess,
		appstate.WithTheme(e.activeTheme),
		appstate.WithOutput(output),
		appstate.WithNotifier(e.notifier),
		appstate.WithOnClose(func() {
			if e.verbose {
				log.Printf("session %s: window closed with %d shapes", sess.ID, sess.Document().Len())
			}
		}),
	)
	st.Run()
	return nil
}

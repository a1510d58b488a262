package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/takoeight0821/rdp/internal/config"
	"github.com/takoeight0821/rdp/internal/driver"
	"github.com/takoeight0821/rdp/internal/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetIn(stdin)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath  string
		implicitEnd bool
		trace       bool
		verbose     bool
		repl        bool
	)

	cmd := &cobra.Command{
		Use:           "rdp [flags] <token-file | ->",
		Short:         "Check a file of tokens, one per line, against the call/compute grammar",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// flags given on the command line win over the config file
			flags := cmd.Flags()
			if flags.Changed("implicit-end") {
				opts.ImplicitEnd = implicitEnd
			}
			if flags.Changed("trace") {
				opts.Trace = trace
			}
			if flags.Changed("verbose") {
				opts.Verbose = verbose
			}

			runner := driver.NewRunner(opts, stderr)

			if repl {
				if len(args) > 0 {
					return fmt.Errorf("--repl reads tokens from the prompt and takes no token file, got %q", args[0])
				}

				return RunPrompt(runner, opts, stdout, stderr)
			}
			if len(args) == 0 {
				return cmd.Usage()
			}
			if args[0] == "-" {
				return RunStdin(runner, opts, cmd.InOrStdin(), stdout, stderr)
			}

			return RunFile(runner, opts, args[0], stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "TOML file with default options")
	flags.BoolVar(&implicitEnd, "implicit-end", false, "accept the end of the file in place of a $ line")
	flags.BoolVar(&trace, "trace", false, "log every rule entered and token consumed to stderr")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print why the input was rejected to stderr")
	flags.BoolVar(&repl, "repl", false, "read token lines interactively; no token file may be given")

	return cmd
}

const (
	successMessage = "the code has been successfully parsed!"
	errorMessage   = "the code contains a syntax mistake!"
)

func report(w io.Writer, result parser.Result) {
	if result == parser.Accept {
		fmt.Fprintf(w, "%s: %s\n", result, successMessage)
	} else {
		fmt.Fprintf(w, "%s: %s\n", result, errorMessage)
	}
}

// RunFile prints the verdict for a token file.
// Only failures to read the file are returned as errors.
func RunFile(r *driver.Runner, opts config.Options, path string, stdout, stderr io.Writer) error {
	result, err := r.RunFile(path)

	return printVerdict(opts, result, err, stdout, stderr)
}

// RunStdin is RunFile for tokens piped to standard input.
func RunStdin(r *driver.Runner, opts config.Options, stdin io.Reader, stdout, stderr io.Writer) error {
	result, err := r.RunReader(stdin)
	if err != nil && !parser.IsSyntaxError(err) {
		err = fmt.Errorf("stdin: %w", err)
	}

	return printVerdict(opts, result, err, stdout, stderr)
}

func printVerdict(opts config.Options, result parser.Result, err error, stdout, stderr io.Writer) error {
	if err != nil && !parser.IsSyntaxError(err) {
		return err
	}

	report(stdout, result)
	if err != nil && opts.Verbose {
		fmt.Fprintln(stderr, err)
	}

	return nil
}

func RunPrompt(r *driver.Runner, opts config.Options, stdout, stderr io.Writer) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(opts.History), os.ModePerm); err != nil {
			fmt.Fprintln(stderr, err)
		}
		if f, err := os.Create(opts.History); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(opts.History); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		result, err := r.RunLine(input)
		if err != nil && !parser.IsSyntaxError(err) {
			fmt.Fprintf(stderr, "Error: %v\n", err)

			continue
		}
		report(stdout, result)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}
}

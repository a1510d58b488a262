package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/takoeight0821/rdp/internal/config"
	"github.com/takoeight0821/rdp/internal/lexer"
	"github.com/takoeight0821/rdp/internal/parser"
)

type Runner struct {
	opts  config.Options
	trace *slog.Logger
}

// NewRunner returns a runner configured by opts.
// Trace records, if enabled, are written to log.
func NewRunner(opts config.Options, log io.Writer) *Runner {
	r := &Runner{opts: opts, trace: nil}
	if opts.Trace {
		r.trace = slog.New(slog.NewTextHandler(log, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}

				return a
			},
		}))
	}

	return r
}

func (r *Runner) parserOptions() []parser.Option {
	opts := []parser.Option{parser.WithImplicitEnd(r.opts.ImplicitEnd)}
	if r.trace != nil {
		opts = append(opts, parser.WithTrace(r.trace))
	}

	return opts
}

// Run parses the whole of src.
func (r *Runner) Run(src lexer.Source) (parser.Result, error) {
	return parser.Parse(src, r.parserOptions()...)
}

// RunFile parses a token file. The file is closed on every path.
func (r *Runner) RunFile(path string) (result parser.Result, err error) {
	file, err := os.Open(path)
	if err != nil {
		return parser.Reject, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			result, err = parser.Reject, fmt.Errorf("close: %w", closeErr)
		}
	}()

	result, err = r.RunReader(file)
	if err != nil && !parser.IsSyntaxError(err) {
		return result, fmt.Errorf("%s: %w", path, err)
	}

	return result, err
}

// RunReader parses tokens written one per line, such as a token file or stdin.
func (r *Runner) RunReader(in io.Reader) (parser.Result, error) {
	return r.Run(lexer.NewReader(in))
}

// RunLine parses tokens separated by white space.
func (r *Runner) RunLine(line string) (parser.Result, error) {
	return r.Run(lexer.Fields(line))
}

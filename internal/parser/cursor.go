package parser

import (
	"fmt"
	"log/slog"

	"github.com/takoeight0821/rdp/internal/lexer"
	"github.com/takoeight0821/rdp/internal/token"
	"github.com/takoeight0821/rdp/internal/utils"
)

// cursor owns the lookahead. It is passed to every rule and is the only
// place where the source is read.
type cursor struct {
	src     lexer.Source
	current token.Token
	index   int // tokens read so far

	readErr   error
	syntaxErr error

	trace *slog.Logger
}

func newCursor(src lexer.Source, trace *slog.Logger) *cursor {
	return &cursor{src: src, trace: trace}
}

func (c cursor) peek() token.Token {
	return c.current
}

func (c cursor) match(kind token.Kind) bool {
	return c.current.Kind == kind
}

// advance replaces the lookahead with the next token.
// A read error is kept and the stream is treated as exhausted from then on.
func (c *cursor) advance() {
	if c.index > 0 && c.trace != nil {
		c.trace.Debug("consume", slog.String("token", c.current.Lexeme), slog.Int("line", c.current.Line))
	}

	if c.readErr != nil {
		c.current = token.Token{Kind: token.EOF, Lexeme: "", Line: c.current.Line}

		return
	}

	tok, err := c.src.Next()
	if err != nil {
		c.readErr = fmt.Errorf("next token: %w", err)
		tok = token.Token{Kind: token.EOF, Lexeme: "", Line: tok.Line}
	}
	c.index++
	c.current = tok

	if tok.Kind == token.EOF && c.trace != nil {
		c.trace.Debug("end of file reached", slog.Int("index", c.index))
	}
}

func (c *cursor) consume(rule string, kind token.Kind) Result {
	if !c.match(kind) {
		return c.reject(rule, kind)
	}
	c.advance()

	return Accept
}

// reject records the first syntax error. Later calls come from rules that are
// unwinding and keep it.
func (c *cursor) reject(rule string, expected ...token.Kind) Result {
	if c.syntaxErr == nil {
		c.syntaxErr = utils.ErrorAt{
			Where: c.current,
			Err:   SyntaxError{Rule: rule, Index: c.index, Expected: expected},
		}
	}

	return Reject
}

func (c cursor) enter(rule string) {
	if c.trace != nil {
		c.trace.Debug("enter", slog.String("rule", rule), slog.String("lookahead", c.current.Lexeme))
	}
}

// err prefers the read error, since a syntax error after it is only a symptom.
func (c cursor) err() error {
	if c.readErr != nil {
		return c.readErr
	}

	return c.syntaxErr
}

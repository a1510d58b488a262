// Package parser decides whether a token stream is a program of the call/compute language.
//
// Every nonterminal of the grammar has its own function. Each one looks at the
// single lookahead token held by a cursor, picks a production without
// backtracking, and reports Accept or Reject. A Reject is returned unchanged by
// every caller, so no token is read after the first mistake.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/takoeight0821/rdp/internal/lexer"
	"github.com/takoeight0821/rdp/internal/token"
)

type Result int

const (
	Reject Result = iota
	Accept
)

func (r Result) String() string {
	if r == Accept {
		return "SUCCESS"
	}

	return "ERROR"
}

type options struct {
	implicitEnd bool
	trace       *slog.Logger
}

type Option func(*options)

// WithImplicitEnd makes the end of the stream count as the `$` sentinel.
func WithImplicitEnd(enabled bool) Option {
	return func(o *options) {
		o.implicitEnd = enabled
	}
}

// WithTrace logs every rule entered and every token consumed at debug level.
func WithTrace(logger *slog.Logger) Option {
	return func(o *options) {
		o.trace = logger
	}
}

// Parse reads src from its first token and reports whether it derives a program
// followed by the `$` sentinel.
//
// On Reject the error is a SyntaxError wrapped in utils.ErrorAt, or the error
// returned by src if reading failed.
func Parse(src lexer.Source, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := newCursor(src, o.trace)
	c.advance()

	if program(c) == Reject {
		return Reject, c.err()
	}
	if c.readErr != nil {
		return Reject, c.readErr
	}

	if c.match(token.END) || (o.implicitEnd && c.match(token.EOF)) {
		return Accept, nil
	}

	c.reject("end of input", token.END)

	return Reject, c.err()
}

// program = "{" statementList "}" ;
func program(c *cursor) Result {
	c.enter("program")
	if c.consume("program", token.LEFTBRACE) == Reject {
		return Reject
	}
	if statementList(c) == Reject {
		return Reject
	}

	return c.consume("program", token.RIGHTBRACE)
}

// statementList = statement ";" statementList' ;
func statementList(c *cursor) Result {
	c.enter("statementList")
	if statement(c) == Reject {
		return Reject
	}
	if c.consume("statementList", token.SEMICOLON) == Reject {
		return Reject
	}

	return statementListPrime(c)
}

// statementList' = statementList | ε ;
// FOLLOW(statementList') = { "}" }
func statementListPrime(c *cursor) Result {
	c.enter("statementList'")
	if c.match(token.RIGHTBRACE) {
		return Accept
	}

	return statementList(c)
}

// statement = "call" ":" procedureCall | "compute" ":" expression ;
func statement(c *cursor) Result {
	c.enter("statement")

	//exhaustive:ignore
	switch c.peek().Kind {
	case token.CALL:
		c.advance()
		if c.consume("statement", token.COLON) == Reject {
			return Reject
		}

		return procedureCall(c)
	case token.COMPUTE:
		c.advance()
		if c.consume("statement", token.COLON) == Reject {
			return Reject
		}

		return expression(c)
	default:
		return c.reject("statement", token.CALL, token.COMPUTE)
	}
}

// procedureCall = "id" "(" parameters ")" ;
func procedureCall(c *cursor) Result {
	c.enter("procedureCall")
	if c.consume("procedureCall", token.ID) == Reject {
		return Reject
	}
	if c.consume("procedureCall", token.LEFTPAREN) == Reject {
		return Reject
	}
	if parameters(c) == Reject {
		return Reject
	}

	return c.consume("procedureCall", token.RIGHTPAREN)
}

// parameters = factor parameters' ;
func parameters(c *cursor) Result {
	c.enter("parameters")
	if factor(c) == Reject {
		return Reject
	}

	return parametersPrime(c)
}

// parameters' = "," parameters | ε ;
// FOLLOW(parameters') = { ")" }
func parametersPrime(c *cursor) Result {
	c.enter("parameters'")

	//exhaustive:ignore
	switch c.peek().Kind {
	case token.COMMA:
		c.advance()

		return parameters(c)
	case token.RIGHTPAREN:
		return Accept
	default:
		return c.reject("parameters'", token.COMMA, token.RIGHTPAREN)
	}
}

// expression = "id" "=" factor expression' ;
func expression(c *cursor) Result {
	c.enter("expression")
	if c.consume("expression", token.ID) == Reject {
		return Reject
	}
	if c.consume("expression", token.EQUAL) == Reject {
		return Reject
	}
	if factor(c) == Reject {
		return Reject
	}

	return expressionPrime(c)
}

// expression' = "+" factor | "-" factor | ε ;
// FOLLOW(expression') = { ";" }
func expressionPrime(c *cursor) Result {
	c.enter("expression'")

	//exhaustive:ignore
	switch c.peek().Kind {
	case token.PLUS, token.MINUS:
		c.advance()

		return factor(c)
	case token.SEMICOLON:
		return Accept
	default:
		return c.reject("expression'", token.PLUS, token.MINUS, token.SEMICOLON)
	}
}

// factor = "id" | "num" ;
func factor(c *cursor) Result {
	c.enter("factor")
	if c.match(token.ID) || c.match(token.NUM) {
		c.advance()

		return Accept
	}

	return c.reject("factor", token.ID, token.NUM)
}

type SyntaxError struct {
	Rule     string
	Index    int // 1-based position of the offending token in the stream
	Expected []token.Kind
}

func (e SyntaxError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		expected[i] = "`" + k.Text() + "`"
	}

	return fmt.Sprintf("unexpected token in %s: expected %s", e.Rule, strings.Join(expected, ", "))
}

// IsSyntaxError reports whether err is a rejection by the grammar,
// as opposed to a failure to read the tokens.
func IsSyntaxError(err error) bool {
	var syntaxErr SyntaxError

	return errors.As(err, &syntaxErr)
}

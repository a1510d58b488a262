package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	// EOF is reported once the source has no more lines.
	// It is not the same as END, which is the `$` written in the input.
	EOF Kind = iota
	ILLEGAL

	// Punctuation.
	LEFTBRACE
	RIGHTBRACE
	LEFTPAREN
	RIGHTPAREN
	COLON
	SEMICOLON
	COMMA
	EQUAL
	PLUS
	MINUS

	// Keywords.
	CALL
	COMPUTE

	// Token classes.
	ID
	NUM

	// END is the `$` sentinel.
	END
)

var terminals = map[string]Kind{
	"{":       LEFTBRACE,
	"}":       RIGHTBRACE,
	"(":       LEFTPAREN,
	")":       RIGHTPAREN,
	":":       COLON,
	";":       SEMICOLON,
	",":       COMMA,
	"=":       EQUAL,
	"+":       PLUS,
	"-":       MINUS,
	"call":    CALL,
	"compute": COMPUTE,
	"id":      ID,
	"num":     NUM,
	"$":       END,
}

// Lookup returns the kind of a token text.
// Matching is exact: "Call" or " id" are ILLEGAL.
func Lookup(text string) Kind {
	if k, ok := terminals[text]; ok {
		return k
	}

	return ILLEGAL
}

// Text returns the terminal as it is written in the input.
func (k Kind) Text() string {
	for text, kind := range terminals {
		if kind == k {
			return text
		}
	}
	if k == EOF {
		return "end of input"
	}

	return k.String()
}

type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

func New(text string, line int) Token {
	return Token{Kind: Lookup(text), Lexeme: text, Line: line}
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d}", t.Kind, t.Lexeme, t.Line)
}

package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/takoeight0821/rdp/internal/token"
)

// Source yields tokens one at a time, left to right.
// Once the input is exhausted, Next keeps returning an EOF token.
type Source interface {
	Next() (token.Token, error)
}

// Reader reads one token per line.
// A line is taken as it is, without its line ending; `call ` is not `call`.
type Reader struct {
	reader *bufio.Reader
	line   int // number of lines read so far
	done   bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r), line: 0, done: false}
}

func (r *Reader) eof() token.Token {
	return token.Token{Kind: token.EOF, Lexeme: "", Line: r.line + 1}
}

func (r *Reader) Next() (token.Token, error) {
	if r.done {
		return r.eof(), nil
	}

	text, err := r.reader.ReadString('\n')
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			return r.eof(), fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		// last line without a line ending
		if text == "" {
			return r.eof(), nil
		}
	}

	r.line++
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	return token.New(text, r.line), nil
}

// Slice is a Source over token texts held in memory.
type Slice struct {
	texts   []string
	current int
}

func NewSlice(texts ...string) *Slice {
	return &Slice{texts: texts, current: 0}
}

// Fields splits a line on white space, so that a whole program can be
// written as "{ call : id ( id ) ; } $".
func Fields(line string) *Slice {
	return NewSlice(strings.Fields(line)...)
}

func (s *Slice) Next() (token.Token, error) {
	if s.current >= len(s.texts) {
		return token.Token{Kind: token.EOF, Lexeme: "", Line: len(s.texts) + 1}, nil
	}
	s.current++

	return token.New(s.texts[s.current-1], s.current), nil
}

package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/elan-voss/schemalink/srcrange"
)

// SyntaxError is returned by [Tokenize] when it encounters input it cannot
// classify into any token. It carries the source path and the offending
// byte range, per spec.md §7: every error carries at least one source
// range for diagnostic rendering.
type SyntaxError struct {
	Path string
	Span srcrange.Range
	Text string // the unrecognized rune(s), for the message
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s@%s: unrecognized input %q", e.Path, e.Span, e.Text)
}

// Tokenize converts source text into an ordered sequence of tokens.
// Whitespace and '#' line comments are skipped. The final token is always
// EOF, with a zero-length span at the end of the input.
func Tokenize(path string, src string) ([]Token, error) {
	t := &tokenizer{path: path, src: src}
	var tokens []Token

	for {
		t.skipTrivia()
		if t.atEnd() {
			tokens = append(tokens, Token{Kind: EOF, Span: srcrange.New(t.pos, t.pos)})
			return tokens, nil
		}

		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

type tokenizer struct {
	path string
	src  string
	pos  int
}

func (t *tokenizer) atEnd() bool {
	return t.pos >= len(t.src)
}

func (t *tokenizer) peek() rune {
	r, _ := utf8.DecodeRuneInString(t.src[t.pos:])
	return r
}

func (t *tokenizer) skipTrivia() {
	for !t.atEnd() {
		r := t.peek()
		switch {
		case unicode.IsSpace(r):
			t.pos += utf8.RuneLen(r)
		case r == '#':
			for !t.atEnd() && t.peek() != '\n' {
				_, size := utf8.DecodeRuneInString(t.src[t.pos:])
				t.pos += size
			}
		default:
			return
		}
	}
}

func (t *tokenizer) next() (Token, error) {
	start := t.pos
	r := t.peek()

	switch r {
	case '{':
		t.pos++
		return Token{Kind: LBrace, Text: "{", Span: srcrange.New(start, t.pos)}, nil
	case '}':
		t.pos++
		return Token{Kind: RBrace, Text: "}", Span: srcrange.New(start, t.pos)}, nil
	case ':':
		t.pos++
		return Token{Kind: Colon, Text: ":", Span: srcrange.New(start, t.pos)}, nil
	case '=':
		t.pos++
		return Token{Kind: Equals, Text: "=", Span: srcrange.New(start, t.pos)}, nil
	case '.':
		t.pos++
		return Token{Kind: Dot, Text: ".", Span: srcrange.New(start, t.pos)}, nil
	case '\'':
		return t.lexString()
	}

	switch {
	case unicode.IsDigit(r):
		return t.lexInt()
	case isIdentStart(r):
		return t.lexIdentOrKeyword()
	}

	size := utf8.RuneLen(r)
	if size < 1 {
		size = 1
	}
	t.pos += size
	return Token{}, &SyntaxError{
		Path: t.path,
		Span: srcrange.New(start, t.pos),
		Text: t.src[start:t.pos],
	}
}

// lexString reads a single-quote-delimited import path. There is no escape
// syntax; a literal run ends at the next single quote or end of input.
func (t *tokenizer) lexString() (Token, error) {
	start := t.pos
	t.pos++ // opening quote
	contentStart := t.pos
	for !t.atEnd() && t.peek() != '\'' {
		_, size := utf8.DecodeRuneInString(t.src[t.pos:])
		t.pos += size
	}
	if t.atEnd() {
		return Token{}, &SyntaxError{
			Path: t.path,
			Span: srcrange.New(start, t.pos),
			Text: t.src[start:t.pos],
		}
	}
	contentEnd := t.pos
	t.pos++ // closing quote
	return Token{Kind: String, Text: t.src[contentStart:contentEnd], Span: srcrange.New(start, t.pos)}, nil
}

func (t *tokenizer) lexInt() (Token, error) {
	start := t.pos
	for !t.atEnd() && unicode.IsDigit(t.peek()) {
		t.pos++
	}
	return Token{Kind: Int, Text: t.src[start:t.pos], Span: srcrange.New(start, t.pos)}, nil
}

func (t *tokenizer) lexIdentOrKeyword() (Token, error) {
	start := t.pos
	for !t.atEnd() && isIdentContinue(t.peek()) {
		_, size := utf8.DecodeRuneInString(t.src[t.pos:])
		t.pos += size
	}
	text := t.src[start:t.pos]
	kind, ok := keywords[text]
	if !ok {
		kind = Ident
	}
	return Token{Kind: kind, Text: text, Span: srcrange.New(start, t.pos)}, nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

package parse

import (
	"fmt"

	"github.com/elan-voss/schemalink/schema"
	"github.com/elan-voss/schemalink/srcrange"
	"github.com/elan-voss/schemalink/token"
)

// Error reports a parse failure: a token the grammar did not expect, at
// its source position.
type Error struct {
	Path string
	Span srcrange.Range
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s@%s: %s", e.Path, e.Span, e.Text)
}

// Parse runs the tokenizer and then the recursive-descent parser over
// src, returning the schema it describes.
func Parse(path string, src string) (*schema.Schema, error) {
	tokens, err := token.Tokenize(path, src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(path, tokens)
}

// ParseTokens parses an already-tokenized source. Exposed separately so
// callers that tokenize once (e.g. for diagnostics on lex failure) don't
// need to re-lex.
func ParseTokens(path string, tokens []token.Token) (*schema.Schema, error) {
	p := &parser{path: path, tokens: tokens}
	return p.parseFile()
}

type parser struct {
	path   string
	tokens []token.Token
	pos    int
}

func (p *parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) check(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *parser) expect(kind token.Kind) (token.Token, error) {
	if !p.check(kind) {
		return token.Token{}, p.errorf("expected %s, found %s", kind, p.cur().Kind)
	}
	return p.advance(), nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &Error{Path: p.path, Span: p.cur().Span, Text: fmt.Sprintf(format, args...)}
}

func (p *parser) parseFile() (*schema.Schema, error) {
	var imports []*schema.Import
	for p.check(token.Import) {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}

	var decls []*schema.Declaration
	for !p.check(token.EOF) {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	return schema.NewSchema(imports, decls), nil
}

func (p *parser) parseImport() (*schema.Import, error) {
	start := p.cur().Span

	if _, err := p.expect(token.Import); err != nil {
		return nil, err
	}
	path, err := p.expect(token.String)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.As); err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	return schema.NewImport(path.Text, name.Text, start.Cover(name.Span)), nil
}

func (p *parser) parseDeclaration() (*schema.Declaration, error) {
	start := p.cur().Span

	var kind schema.DeclKind
	switch p.cur().Kind {
	case token.Struct:
		kind = schema.StructKind
	case token.Choice:
		kind = schema.ChoiceKind
	default:
		return nil, p.errorf("expected 'struct' or 'choice', found %s", p.cur().Kind)
	}
	p.advance()

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	var fields []*schema.Field
	for !p.check(token.RBrace) {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	end, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}

	return schema.NewDeclaration(kind, name.Text, fields, start.Cover(end.Span)), nil
}

func (p *parser) parseField() (*schema.Field, error) {
	start := p.cur().Span

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}

	restricted := false
	if p.check(token.Restricted) {
		restricted = true
		p.advance()
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.Equals); err != nil {
		return nil, err
	}
	index, err := p.expect(token.Int)
	if err != nil {
		return nil, err
	}

	var n uint64
	if _, err := fmt.Sscanf(index.Text, "%d", &n); err != nil {
		return nil, &Error{Path: p.path, Span: index.Span, Text: fmt.Sprintf("invalid field index %q", index.Text)}
	}

	return schema.NewField(name.Text, restricted, typ, n, start.Cover(index.Span)), nil
}

func (p *parser) parseType() (schema.TypeRef, error) {
	if p.check(token.Bool) {
		tok := p.advance()
		return schema.BoolTypeRef(tok.Span), nil
	}

	first, err := p.expect(token.Ident)
	if err != nil {
		return schema.TypeRef{}, err
	}

	if p.check(token.Dot) {
		p.advance()
		name, err := p.expect(token.Ident)
		if err != nil {
			return schema.TypeRef{}, err
		}
		return schema.QualifiedTypeRef(first.Text, name.Text, first.Span.Cover(name.Span)), nil
	}

	return schema.LocalTypeRef(first.Text, first.Span), nil
}

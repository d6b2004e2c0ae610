package hintparse

import (
	"fmt"
	"strings"

	"github.com/hacklite/hintc/internal/hint"
)

// ParseError reports a syntax error in a hint expression.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hint syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Parser turns hint expressions into hint trees. Bare class names are
// namespace-qualified; names in the alias table are rewritten to their
// qualified form; in-scope generic parameter names stay verbatim.
type Parser struct {
	l       *lexer
	cur     token
	peek    token
	tparams []string
	aliases map[string]string
}

// Parse parses a single hint expression.
func Parse(input string, tparams []string, aliases map[string]string) (hint.Hint, error) {
	p := &Parser{l: newLexer(input), tparams: tparams, aliases: aliases}
	p.next()
	p.next()
	h, err := p.parseHint()
	if err != nil {
		return nil, err
	}
	if p.cur.typ != tokEOF {
		return nil, p.errorf("unexpected %s after hint", p.cur.describe())
	}
	return h, nil
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.nextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Pos: p.cur.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(t tokenType, what string) error {
	if p.cur.typ != t {
		return p.errorf("expected %s, got %s", what, p.cur.describe())
	}
	p.next()
	return nil
}

var primKeywords = map[string]hint.PrimKind{
	"null":     hint.PrimNull,
	"void":     hint.PrimVoid,
	"int":      hint.PrimInt,
	"bool":     hint.PrimBool,
	"float":    hint.PrimFloat,
	"string":   hint.PrimString,
	"resource": hint.PrimResource,
	"num":      hint.PrimNum,
	"arraykey": hint.PrimArraykey,
	"noreturn": hint.PrimNoreturn,
}

func (p *Parser) parseHint() (hint.Hint, error) {
	switch p.cur.typ {
	case tokQMark:
		p.next()
		inner, err := p.parseHint()
		if err != nil {
			return nil, err
		}
		return &hint.Option{Inner: inner}, nil
	case tokAt:
		p.next()
		inner, err := p.parseHint()
		if err != nil {
			return nil, err
		}
		return &hint.Soft{Inner: inner}, nil
	case tokTilde:
		p.next()
		inner, err := p.parseHint()
		if err != nil {
			return nil, err
		}
		return &hint.Like{Inner: inner}, nil
	case tokLParen:
		return p.parseParenthesized()
	case tokIdent:
		return p.parseNamed()
	}
	return nil, p.errorf("expected a hint, got %s", p.cur.describe())
}

// parseParenthesized reads function types, tuples, unions, and
// intersections, which all start with '('.
func (p *Parser) parseParenthesized() (hint.Hint, error) {
	p.next() // (
	if p.cur.typ == tokIdent && p.cur.lexeme == "function" {
		return p.parseFunction()
	}
	first, err := p.parseHint()
	if err != nil {
		return nil, err
	}
	switch p.cur.typ {
	case tokComma:
		elems, err := p.parseSeparated(first, tokComma)
		if err != nil {
			return nil, err
		}
		return &hint.Tuple{Required: elems}, nil
	case tokPipe:
		members, err := p.parseSeparated(first, tokPipe)
		if err != nil {
			return nil, err
		}
		return &hint.Union{Members: members}, nil
	case tokAmp:
		members, err := p.parseSeparated(first, tokAmp)
		if err != nil {
			return nil, err
		}
		return &hint.Intersection{Members: members}, nil
	}
	return nil, p.errorf("expected ',', '|' or '&' in parenthesized hint, got %s", p.cur.describe())
}

func (p *Parser) parseSeparated(first hint.Hint, sep tokenType) ([]hint.Hint, error) {
	elems := []hint.Hint{first}
	for p.cur.typ == sep {
		p.next()
		h, err := p.parseHint()
		if err != nil {
			return nil, err
		}
		elems = append(elems, h)
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return elems, nil
}

func (p *Parser) parseFunction() (hint.Hint, error) {
	p.next() // function
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var params []hint.Hint
	for p.cur.typ != tokRParen {
		h, err := p.parseHint()
		if err != nil {
			return nil, err
		}
		params = append(params, h)
		if p.cur.typ != tokComma {
			break
		}
		p.next()
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if err := p.expect(tokColon, "':'"); err != nil {
		return nil, err
	}
	ret, err := p.parseHint()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return &hint.Fun{Params: params, Return: ret}, nil
}

func (p *Parser) parseNamed() (hint.Hint, error) {
	name := p.cur.lexeme

	switch {
	case name == "_":
		p.next()
		return &hint.Wildcard{}, nil
	case name == "shape" && p.peek.typ == tokLParen:
		return p.parseShape()
	case (name == "class" || name == "enum") && p.peek.typ == tokLT:
		return p.parseClassPtr(name)
	}

	p.next()

	// Keywords only apply to bare, unqualified, non-generic names.
	if p.cur.typ != tokLT && !strings.HasPrefix(name, "\\") && !p.isTParam(name) {
		if k, ok := primKeywords[name]; ok {
			return &hint.Prim{Kind: k}, nil
		}
		switch name {
		case "mixed":
			return &hint.Mixed{}, nil
		case "dynamic":
			return &hint.Dynamic{}, nil
		case "nonnull":
			return &hint.Nonnull{}, nil
		case "nothing":
			return &hint.Nothing{}, nil
		case "this":
			return &hint.This{}, nil
		}
	}

	ap := &hint.Apply{Name: p.qualify(name)}
	if p.cur.typ == tokLT {
		p.next()
		for {
			arg, err := p.parseHint()
			if err != nil {
				return nil, err
			}
			ap.Args = append(ap.Args, arg)
			if p.cur.typ != tokComma {
				break
			}
			p.next()
		}
		if err := p.expect(tokGT, "'>'"); err != nil {
			return nil, err
		}
	}

	if p.cur.typ == tokDColon {
		var path []string
		for p.cur.typ == tokDColon {
			p.next()
			if p.cur.typ != tokIdent {
				return nil, p.errorf("expected type constant name, got %s", p.cur.describe())
			}
			path = append(path, p.cur.lexeme)
			p.next()
		}
		return &hint.Access{Root: ap, Path: path}, nil
	}
	return ap, nil
}

func (p *Parser) parseClassPtr(kw string) (hint.Hint, error) {
	p.next() // class / enum
	p.next() // <
	inner, err := p.parseHint()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokGT, "'>'"); err != nil {
		return nil, err
	}
	kind := hint.ClassPtrClass
	if kw == "enum" {
		kind = hint.ClassPtrEnum
	}
	return &hint.ClassPtr{Kind: kind, Inner: inner}, nil
}

func (p *Parser) parseShape() (hint.Hint, error) {
	p.next() // shape
	p.next() // (
	sh := &hint.Shape{}
	for p.cur.typ != tokRParen {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		sh.Fields = append(sh.Fields, f)
		if p.cur.typ != tokComma {
			break
		}
		p.next()
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return sh, nil
}

func (p *Parser) parseField() (hint.Field, error) {
	var f hint.Field
	if p.cur.typ == tokQMark {
		f.Optional = true
		p.next()
	}
	switch p.cur.typ {
	case tokString:
		f.Name = &hint.FieldStr{Value: p.cur.lexeme}
		p.next()
	case tokIdent:
		class := p.qualify(p.cur.lexeme)
		p.next()
		if p.cur.typ == tokDColon {
			p.next()
			if p.cur.typ != tokIdent {
				return f, p.errorf("expected class constant name, got %s", p.cur.describe())
			}
			f.Name = &hint.FieldClassConst{Class: class, Const: p.cur.lexeme}
			p.next()
		} else {
			f.Name = &hint.FieldClass{Name: class}
		}
	default:
		return f, p.errorf("expected shape field name, got %s", p.cur.describe())
	}
	if err := p.expect(tokArrow, "'=>'"); err != nil {
		return f, err
	}
	h, err := p.parseHint()
	if err != nil {
		return f, err
	}
	f.Hint = h
	return f, nil
}

func (p *Parser) isTParam(name string) bool {
	for _, t := range p.tparams {
		if t == name {
			return true
		}
	}
	return false
}

// qualify resolves a surface name to its elaborated form.
func (p *Parser) qualify(name string) string {
	if strings.HasPrefix(name, "\\") || p.isTParam(name) {
		return name
	}
	if q, ok := p.aliases[name]; ok {
		return q
	}
	return "\\" + name
}

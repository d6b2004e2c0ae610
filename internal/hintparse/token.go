// Package hintparse reads the textual surface syntax for type hints
// used by the hintc command line and batch manifests. It produces the
// hint tree the lowering engine consumes; it performs no validation
// beyond what parsing itself requires.
package hintparse

import "fmt"

type tokenType int

const (
	tokEOF tokenType = iota
	tokIllegal
	tokIdent  // Foo, \HH\Awaitable, :x:frag, int, shape, function
	tokString // 'x'
	tokLT     // <
	tokGT     // >
	tokLParen // (
	tokRParen // )
	tokComma  // ,
	tokColon  // :
	tokDColon // ::
	tokQMark  // ?
	tokAt     // @
	tokTilde  // ~
	tokPipe   // |
	tokAmp    // &
	tokArrow  // =>
)

type token struct {
	typ    tokenType
	lexeme string
	pos    int
}

func (t token) describe() string {
	switch t.typ {
	case tokEOF:
		return "end of input"
	case tokString:
		return fmt.Sprintf("'%s'", t.lexeme)
	default:
		return fmt.Sprintf("%q", t.lexeme)
	}
}

package hintparse

import "unicode"

type lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *lexer) nextToken() token {
	l.skipWhitespace()

	pos := l.position
	switch l.ch {
	case 0:
		return token{typ: tokEOF, pos: pos}
	case '<':
		l.readChar()
		return token{typ: tokLT, lexeme: "<", pos: pos}
	case '>':
		l.readChar()
		return token{typ: tokGT, lexeme: ">", pos: pos}
	case '(':
		l.readChar()
		return token{typ: tokLParen, lexeme: "(", pos: pos}
	case ')':
		l.readChar()
		return token{typ: tokRParen, lexeme: ")", pos: pos}
	case ',':
		l.readChar()
		return token{typ: tokComma, lexeme: ",", pos: pos}
	case '?':
		l.readChar()
		return token{typ: tokQMark, lexeme: "?", pos: pos}
	case '@':
		l.readChar()
		return token{typ: tokAt, lexeme: "@", pos: pos}
	case '~':
		l.readChar()
		return token{typ: tokTilde, lexeme: "~", pos: pos}
	case '|':
		l.readChar()
		return token{typ: tokPipe, lexeme: "|", pos: pos}
	case '&':
		l.readChar()
		return token{typ: tokAmp, lexeme: "&", pos: pos}
	case '=':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return token{typ: tokArrow, lexeme: "=>", pos: pos}
		}
		l.readChar()
		return token{typ: tokIllegal, lexeme: "=", pos: pos}
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			l.readChar()
			return token{typ: tokDColon, lexeme: "::", pos: pos}
		}
		// A colon starting a letter begins an XHP element name (:x:frag);
		// otherwise it is the function-type return separator.
		if isIdentStart(l.peekChar()) {
			return l.readIdent()
		}
		l.readChar()
		return token{typ: tokColon, lexeme: ":", pos: pos}
	case '\'':
		return l.readString()
	}
	if isIdentStart(l.ch) || l.ch == '\\' {
		return l.readIdent()
	}
	ch := l.ch
	l.readChar()
	return token{typ: tokIllegal, lexeme: string(ch), pos: pos}
}

// readIdent consumes a name. Names may be namespace-qualified with
// backslashes; XHP names additionally contain ':' and '-'.
func (l *lexer) readIdent() token {
	pos := l.position
	xhp := l.ch == ':'
	for isIdentPart(l.ch) || l.ch == '\\' || (xhp && (l.ch == ':' || l.ch == '-')) {
		l.readChar()
	}
	return token{typ: tokIdent, lexeme: l.input[pos:l.position], pos: pos}
}

func (l *lexer) readString() token {
	pos := l.position
	l.readChar() // opening quote
	start := l.position
	for l.ch != '\'' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		return token{typ: tokIllegal, lexeme: l.input[pos:l.position], pos: pos}
	}
	lit := l.input[start:l.position]
	l.readChar() // closing quote
	return token{typ: tokString, lexeme: lit, pos: pos}
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || unicode.IsLetter(rune(ch))
}

func isIdentPart(ch byte) bool {
	return ch == '_' || unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch))
}

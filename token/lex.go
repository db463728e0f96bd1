package token

import (
	"fmt"
	"unicode/utf8"

	"github.com/semtexzv/graphql-parser/position"
)

// LexKind classifies a LexError so callers can map it onto their own
// error taxonomy without sniffing the message text.
type LexKind int

const (
	BadCharacter LexKind = iota
	BadNumber
	UnterminatedString
	UnterminatedBlockString
)

// LexError is fatal: the tokenizer never emits a partial stream past the
// point of failure.
type LexError struct {
	Pos     position.Pos
	Kind    LexKind
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

const bom = '\uFEFF'

// lexer is a hand-written, single-pass scanner over UTF-8 source text. It
// does not allocate per-token strings: every Token.Value is a slice of
// src.
type lexer struct {
	src     string
	pos     int // byte offset of the next unread rune
	tracker *position.Tracker
}

// Lex scans src completely and returns its token vector, terminated by a
// single EOF token, or the first LexError encountered.
func Lex(src string) ([]Token, *LexError) {
	l := &lexer{src: src, tracker: position.NewTracker()}
	var out []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == EOF {
			return out, nil
		}
	}
}

func (l *lexer) peekRune() (rune, int) {
	if l.pos >= len(l.src) {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	return r, size
}

func (l *lexer) advanceRune() rune {
	r, size := l.peekRune()
	if size == 0 {
		return utf8.RuneError
	}
	l.pos += size
	l.tracker.Advance(r)
	return r
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (l *lexer) errf(kind LexKind, at position.Pos, format string, args ...any) (Token, *LexError) {
	return Token{}, &LexError{Pos: at, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (l *lexer) skipIgnored() {
	for {
		r, size := l.peekRune()
		if size == 0 {
			return
		}
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == ',' || r == bom:
			l.advanceRune()
		case r == '#':
			l.advanceRune()
			for {
				r, size := l.peekRune()
				if size == 0 || r == '\r' || r == '\n' {
					break
				}
				l.advanceRune()
			}
		default:
			return
		}
	}
}

// next scans a single token, skipping insignificant whitespace and
// comments first.
func (l *lexer) next() (Token, *LexError) {
	l.skipIgnored()

	start := l.tracker.Pos()
	r, size := l.peekRune()
	if size == 0 {
		return Token{Kind: EOF, Start: start, End: start}, nil
	}

	switch {
	case r == '.':
		if len(l.src) >= l.pos+3 && l.src[l.pos:l.pos+3] == "..." {
			l.pos += 3
			l.tracker.Advance('.')
			l.tracker.Advance('.')
			l.tracker.Advance('.')
			return Token{Kind: Punctuator, Value: l.src[l.pos-3 : l.pos], Start: start, End: l.tracker.Pos()}, nil
		}
		return l.errf(BadCharacter, start, "unexpected character %q", r)

	case isPunctuator(r):
		startByte := l.pos
		l.advanceRune()
		return Token{Kind: Punctuator, Value: l.src[startByte:l.pos], Start: start, End: l.tracker.Pos()}, nil

	case isNameStart(r):
		startByte := l.pos
		for {
			r, size := l.peekRune()
			if size == 0 || !isNameContinue(r) {
				break
			}
			l.advanceRune()
		}
		return Token{Kind: Name, Value: l.src[startByte:l.pos], Start: start, End: l.tracker.Pos()}, nil

	case r == '-' || isDigit(r):
		return l.lexNumber(start)

	case r == '"':
		if len(l.src) >= l.pos+3 && l.src[l.pos:l.pos+3] == `"""` {
			return l.lexBlockString(start)
		}
		return l.lexString(start)

	default:
		l.advanceRune()
		return l.errf(BadCharacter, start, "unexpected character %q", r)
	}
}

func isPunctuator(r rune) bool {
	switch r {
	case '!', '$', '(', ')', ':', '=', '@', '[', ']', '{', '|', '}', '&':
		return true
	}
	return false
}

func (l *lexer) lexNumber(start position.Pos) (Token, *LexError) {
	startByte := l.pos

	if r, _ := l.peekRune(); r == '-' {
		l.advanceRune()
	}

	r, size := l.peekRune()
	if size == 0 || !isDigit(r) {
		return l.errf(BadNumber, start, "invalid number literal")
	}
	if r == '0' {
		l.advanceRune()
		if r2, _ := l.peekRune(); isDigit(r2) {
			return l.errf(BadNumber, start, "invalid number, unexpected digit after 0")
		}
	} else {
		for {
			r, size := l.peekRune()
			if size == 0 || !isDigit(r) {
				break
			}
			l.advanceRune()
		}
	}

	isFloat := false

	if r, _ := l.peekRune(); r == '.' {
		isFloat = true
		l.advanceRune()
		r2, size2 := l.peekRune()
		if size2 == 0 || !isDigit(r2) {
			return l.errf(BadNumber, start, "invalid number, expected digit after decimal point")
		}
		for {
			r, size := l.peekRune()
			if size == 0 || !isDigit(r) {
				break
			}
			l.advanceRune()
		}
	}

	if r, _ := l.peekRune(); r == 'e' || r == 'E' {
		isFloat = true
		l.advanceRune()
		if r2, _ := l.peekRune(); r2 == '+' || r2 == '-' {
			l.advanceRune()
		}
		r2, size2 := l.peekRune()
		if size2 == 0 || !isDigit(r2) {
			return l.errf(BadNumber, start, "invalid number, expected digit after exponent")
		}
		for {
			r, size := l.peekRune()
			if size == 0 || !isDigit(r) {
				break
			}
			l.advanceRune()
		}
	}

	if r, size := l.peekRune(); size != 0 && (isNameStart(r) || isDigit(r) || r == '.') {
		return l.errf(BadNumber, start, "invalid number, unexpected trailing character %q", r)
	}

	kind := IntValue
	if isFloat {
		kind = FloatValue
	}
	return Token{Kind: kind, Value: l.src[startByte:l.pos], Start: start, End: l.tracker.Pos()}, nil
}

// lexString scans a `"…"` token. It stores the raw span, delimiters
// included, and only validates enough to find the terminator: any
// backslash escapes the following rune, whatever it is. Whether that
// escape is one GraphQL actually recognizes is checked later, at
// token-consumption time in the grammar.
func (l *lexer) lexString(start position.Pos) (Token, *LexError) {
	startByte := l.pos
	l.advanceRune() // opening quote

	for {
		r, size := l.peekRune()
		if size == 0 {
			return l.errf(UnterminatedString, start, "unterminated string")
		}
		if r == '\n' || r == '\r' {
			return l.errf(UnterminatedString, start, "unterminated string (newline in single-line string)")
		}
		if r == '"' {
			l.advanceRune()
			return Token{Kind: StringValue, Value: l.src[startByte:l.pos], Start: start, End: l.tracker.Pos()}, nil
		}
		if r == '\\' {
			l.advanceRune()
			if r2, size2 := l.peekRune(); size2 == 0 {
				return l.errf(UnterminatedString, start, "unterminated string")
			} else if r2 == '\n' || r2 == '\r' {
				return l.errf(UnterminatedString, start, "unterminated string (newline in single-line string)")
			}
			l.advanceRune()
			continue
		}
		l.advanceRune()
	}
}

// lexBlockString scans a `"""…"""` token, which may contain any
// character including newlines. `\"""` escapes the delimiter.
func (l *lexer) lexBlockString(start position.Pos) (Token, *LexError) {
	startByte := l.pos
	l.pos += 3
	l.tracker.Advance('"')
	l.tracker.Advance('"')
	l.tracker.Advance('"')

	for {
		r, size := l.peekRune()
		if size == 0 {
			return l.errf(UnterminatedBlockString, start, "unterminated block string")
		}
		if r == '\\' && len(l.src) >= l.pos+4 && l.src[l.pos+1:l.pos+4] == `"""` {
			l.advanceRune()
			l.advanceRune()
			l.advanceRune()
			l.advanceRune()
			continue
		}
		if r == '"' && len(l.src) >= l.pos+3 && l.src[l.pos:l.pos+3] == `"""` {
			l.advanceRune()
			l.advanceRune()
			l.advanceRune()
			return Token{Kind: BlockString, Value: l.src[startByte:l.pos], Start: start, End: l.tracker.Pos()}, nil
		}
		l.advanceRune()
	}
}

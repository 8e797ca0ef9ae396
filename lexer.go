// Package htmllex is a lenient, single-pass lexer for simplified HTML
// snippets. It scans an input string left to right exactly once and emits a
// token per recognized construct (start and end tags, comments, doctype-like
// declarations) with the unmatched stretches in between emitted as literal
// text. It is not a validating parser: malformed markup never produces an
// error, it simply degrades to text.
package htmllex

import (
	"iter"

	"golang.org/x/net/html/atom"

	"github.com/lexkit/htmllex/loc"
)

// A Lexer turns HTML-like text into a stream of Tokens.
//
// The zero value is ready to use. A Lexer holds no state between calls and
// the matching rules it relies on are compiled once and never mutated, so a
// single instance may be shared across goroutines lexing distinct inputs.
type Lexer struct{}

// New returns a Lexer.
func New() *Lexer {
	return &Lexer{}
}

// Read scans html and calls emit once per token, synchronously and in
// document order. It never fails: any '<' that does not open a recognizable
// construct dissolves into the surrounding text run.
func (l *Lexer) Read(html string, emit func(Token)) {
	l.scan([]rune(html), func(t Token) bool {
		emit(t)
		return true
	})
}

// Tokenize scans html and returns all tokens eagerly.
func (l *Lexer) Tokenize(html string) []Token {
	var tokens []Token
	l.Read(html, func(t Token) {
		tokens = append(tokens, t)
	})
	return tokens
}

// Tokens returns a lazy iterator over the tokens of html. Breaking out of
// the iteration stops the scan.
func (l *Lexer) Tokens(html string) iter.Seq[Token] {
	src := []rune(html)
	return func(yield func(Token) bool) {
		l.scan(src, yield)
	}
}

// scan is the tokenizing loop shared by all three shapes. It tracks the
// cursor and the end of the last recognized construct; everything between
// the two when a construct matches (or when input runs out) is a text run.
func (l *Lexer) scan(src []rune, yield func(Token) bool) {
	pos := 0
	// textStart is the boundary of the last recognized construct, i.e.
	// the start of the pending text run.
	textStart := 0
	flush := func(end int) bool {
		if end <= textStart {
			// Zero-length gaps emit no token.
			return true
		}
		return yield(Token{
			Type: TextToken,
			Data: string(src[textStart:end]),
			Raw:  loc.Span{Start: textStart, End: end},
		})
	}
	for pos < len(src) {
		if src[pos] != '<' {
			pos++
			continue
		}
		tok, ok := l.matchConstruct(src, pos)
		if !ok {
			// No boundary change: the '<' is swallowed into the
			// eventual text run.
			pos++
			continue
		}
		if !flush(pos) || !yield(tok) {
			return
		}
		if tok.Type == StartTagToken && tok.SelfClosing {
			// The lexer closes self-closing elements itself, so
			// consumers always see a begin/end pair for them. The
			// synthetic end tag has no source extent of its own.
			end := Token{
				Type:     EndTagToken,
				DataAtom: tok.DataAtom,
				Data:     tok.Data,
				Raw:      loc.Span{Start: tok.Raw.End, End: tok.Raw.End},
			}
			if !yield(end) {
				return
			}
		}
		pos = tok.Raw.End
		textStart = pos
	}
	flush(len(src))
}

// matchConstruct attempts to recognize a construct anchored at pos, which is
// known to hold a '<'. The lookahead character picks the one category tried
// at this position: '!' routes to the comment rule and then the doctype
// rule, anything else to the tag rule.
func (l *Lexer) matchConstruct(src []rune, pos int) (Token, bool) {
	if pos+1 < len(src) && src[pos+1] == '!' {
		if m := matchAt(commentRule, src, pos); m != nil {
			return Token{
				Type: CommentToken,
				Data: m.GroupByName("text").String(),
				Raw:  loc.Span{Start: pos, End: pos + m.Length},
			}, true
		}
		if m := matchAt(doctypeRule, src, pos); m != nil {
			tok := Token{
				Type: DoctypeToken,
				Data: m.GroupByName("name").String(),
				Raw:  loc.Span{Start: pos, End: pos + m.Length},
			}
			if text := m.GroupByName("text"); len(text.Captures) > 0 {
				tok.Text = text.String()
			}
			return tok, true
		}
		return Token{}, false
	}
	m := matchAt(tagRule, src, pos)
	if m == nil {
		return Token{}, false
	}
	name := m.GroupByName("name").String()
	tok := Token{
		Type:     StartTagToken,
		DataAtom: atom.Lookup([]byte(name)),
		Data:     name,
		Raw:      loc.Span{Start: pos, End: pos + m.Length},
	}
	if m.GroupByName("close").Length > 0 {
		// End tags carry no attributes; anything between the name and
		// the '>' is ignored.
		tok.Type = EndTagToken
		return tok, true
	}
	if attrs := m.GroupByName("attrs"); attrs.Length > 0 {
		tok.Attr = parseAttributes(src, loc.Span{
			Start: attrs.Index,
			End:   attrs.Index + attrs.Length,
		})
	}
	tok.SelfClosing = m.GroupByName("self").Length > 0
	return tok, true
}

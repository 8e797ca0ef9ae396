// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmllex

import (
	"bytes"
	"strconv"

	"github.com/lexkit/htmllex/loc"
	"golang.org/x/net/html/atom"
)

// A TokenType is the type of a Token.
type TokenType uint32

const (
	// TextToken means a non-empty run of literal characters between
	// recognized constructs.
	TextToken TokenType = iota
	// A StartTagToken looks like <a>.
	StartTagToken
	// An EndTagToken looks like </a>.
	EndTagToken
	// A CommentToken looks like <!--x-->.
	CommentToken
	// A DoctypeToken looks like <!DOCTYPE x>.
	DoctypeToken
)

// String returns a string representation of the TokenType.
func (t TokenType) String() string {
	switch t {
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// An Attribute is a key-value pair inside a start tag. Key is a run of word
// characters and Val is the text between the quotes, which may be empty and
// may use either quote style. Keys are unique within a tag; when the input
// repeats a key, the last occurrence wins.
type Attribute struct {
	Key    string
	KeyLoc loc.Loc
	Val    string
	ValLoc loc.Loc
}

// A Token consists of a TokenType and some Data (tag name for start and end
// tags, declaration name for doctypes, content for text and comments). A
// start tag Token may also contain a slice of Attributes. For tag Tokens,
// DataAtom is the atom for Data, or zero if Data is not a known tag name.
type Token struct {
	Type     TokenType
	DataAtom atom.Atom
	Data     string
	// Text is the remainder of a doctype declaration after its name,
	// e.g. the "html" in <!DOCTYPE html>. Empty for every other type.
	Text string
	Attr []Attribute
	// SelfClosing reports whether a start tag was written <name/>. A
	// self-closing start tag is always followed in the stream by a
	// synthetic EndTagToken with the same Data.
	SelfClosing bool
	// Raw is the extent of the token in the input, in runes. The Raw
	// spans of a token stream tile the input exactly, except that
	// synthetic end tags carry a zero-length span at their start tag's
	// end.
	Raw loc.Span
}

// Attribute returns the value of the named attribute and whether it was
// present on the tag.
func (t Token) Attribute(key string) (string, bool) {
	for _, a := range t.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// tagString returns a string representation of a tag Token's Data and Attr.
func (t Token) tagString() string {
	if len(t.Attr) == 0 {
		return t.Data
	}
	buf := bytes.NewBufferString(t.Data)
	for _, a := range t.Attr {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		buf.WriteString(a.Val)
		buf.WriteByte('"')
	}
	return buf.String()
}

// String returns a string representation of the Token.
func (t Token) String() string {
	switch t.Type {
	case TextToken:
		return t.Data
	case StartTagToken:
		if t.SelfClosing {
			return "<" + t.tagString() + "/>"
		}
		return "<" + t.tagString() + ">"
	case EndTagToken:
		return "</" + t.Data + ">"
	case CommentToken:
		return "<!--" + t.Data + "-->"
	case DoctypeToken:
		if t.Text == "" {
			return "<!" + t.Data + ">"
		}
		return "<!" + t.Data + " " + t.Text + ">"
	}
	return "Invalid(" + strconv.Itoa(int(t.Type)) + ")"
}

package htmllex

import "testing"

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tt   TokenType
		want string
	}{
		{TextToken, "Text"},
		{StartTagToken, "StartTag"},
		{EndTagToken, "EndTag"},
		{CommentToken, "Comment"},
		{DoctypeToken, "Doctype"},
		{TokenType(99), "Invalid(99)"},
	}
	for _, tt := range tests {
		if got := tt.tt.String(); got != tt.want {
			t.Errorf("TokenType(%d).String() = %q, want %q", uint32(tt.tt), got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{
			"text",
			Token{Type: TextToken, Data: "a < b"},
			"a < b",
		},
		{
			"start tag",
			Token{Type: StartTagToken, Data: "div", Attr: []Attribute{{Key: "id", Val: "x"}}},
			`<div id="x">`,
		},
		{
			"self-closing",
			Token{Type: StartTagToken, Data: "br", SelfClosing: true},
			"<br/>",
		},
		{
			"end tag",
			Token{Type: EndTagToken, Data: "div"},
			"</div>",
		},
		{
			"comment",
			Token{Type: CommentToken, Data: " hi "},
			"<!-- hi -->",
		},
		{
			"doctype",
			Token{Type: DoctypeToken, Data: "DOCTYPE", Text: "html"},
			"<!DOCTYPE html>",
		},
		{
			"bare doctype",
			Token{Type: DoctypeToken, Data: "DOCTYPE"},
			"<!DOCTYPE>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenAttribute(t *testing.T) {
	tok := Token{
		Type: StartTagToken,
		Data: "a",
		Attr: []Attribute{{Key: "href", Val: "/home"}},
	}
	if val, ok := tok.Attribute("href"); !ok || val != "/home" {
		t.Errorf(`Attribute("href") = %q, %v`, val, ok)
	}
	if _, ok := tok.Attribute("class"); ok {
		t.Error(`Attribute("class") found on a tag without it`)
	}
}

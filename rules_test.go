package htmllex

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/lexkit/htmllex/loc"
)

// Matches must begin exactly at the position handed to matchAt; a construct
// further along the input is not found from an earlier position.
func TestMatchAtIsAnchored(t *testing.T) {
	src := []rune("xx<b>")
	if m := matchAt(tagRule, src, 0); m != nil {
		t.Errorf("tagRule matched at 0 in %q", string(src))
	}
	m := matchAt(tagRule, src, 2)
	if m == nil {
		t.Fatalf("tagRule did not match at 2 in %q", string(src))
	}
	if m.Index != 2 || m.Length != 3 {
		t.Errorf("match at %d len %d, want 2 len 3", m.Index, m.Length)
	}
}

func TestParseAttributesSkipsJunk(t *testing.T) {
	src := []rune(` foo="bar" ?!? baz=qux q='1'`)
	got := parseAttributes(src, loc.Span{Start: 0, End: len(src)})
	assert.DeepEqual(t, got, []Attribute{
		{Key: "foo", KeyLoc: loc.Loc{Start: 1}, Val: "bar", ValLoc: loc.Loc{Start: 6}},
		{Key: "q", KeyLoc: loc.Loc{Start: 23}, Val: "1", ValLoc: loc.Loc{Start: 26}},
	})
}

func TestParseAttributesQuoteStyles(t *testing.T) {
	src := []rune(`a="double" b='single' c=""`)
	got := parseAttributes(src, loc.Span{Start: 0, End: len(src)})
	assert.Equal(t, len(got), 3)
	assert.Equal(t, got[0].Val, "double")
	assert.Equal(t, got[1].Val, "single")
	assert.Equal(t, got[2].Val, "")
}

func TestParseAttributesEmptySpan(t *testing.T) {
	var src []rune
	if got := parseAttributes(src, loc.Span{}); got != nil {
		t.Errorf("parseAttributes on empty span = %v, want nil", got)
	}
}

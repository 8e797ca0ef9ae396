package htmllex

import (
	"time"

	"github.com/dlclark/regexp2"

	"github.com/lexkit/htmllex/loc"
)

// matchTimeout caps any single match attempt. The grammars below are
// near-linear, but regexp2 is a backtracking engine, so adversarial input
// hits a hard stop instead of scanning superlinearly. A timed-out attempt
// counts as no match and the '<' degrades to text.
const matchTimeout = 2 * time.Second

// The rules are compiled once at package init and never mutated afterwards,
// which is what makes a Lexer safe to share across goroutines. The patterns
// are fixed, so a compile failure is a programming fault: MustCompile panics.
//
// Every rule except attrRule starts with \G so that a match must begin
// exactly at the position handed to FindRunesMatchStartingAt; the scan never
// skips ahead to a later construct.
var (
	// <tag>, </tag>, <tag a="b" c='d'>, <tag/>. The attrs span excludes
	// angle brackets so a tag can never swallow a later construct, and it
	// is non-greedy up to the first closing '>'. A leading slash marks an
	// end tag, a trailing slash a self-closing one.
	tagRule = mustCompileRule(`\G<(?<close>/?)(?<name>\w+)(?<attrs>[^<>]*?)(?<self>/?)>`, regexp2.None)

	// <!-- ... -->, non-greedy, may span newlines.
	commentRule = mustCompileRule(`\G<!--(?<text>.*?)-->`, regexp2.Singleline)

	// <!NAME> or <!NAME text>, the text non-greedy up to '>' and allowed
	// to span newlines.
	doctypeRule = mustCompileRule(`\G<!(?<name>\w+)(?:>|\s+(?<text>.*?)>)`, regexp2.Singleline)

	// name="value" or name='value', value possibly empty. Scanned
	// repeatedly over a tag's attrs span; anything between matches is
	// skipped silently.
	attrRule = mustCompileRule(`(?<key>\w+)=(?:"(?<dval>[^"]*)"|'(?<sval>[^']*)')`, regexp2.None)
)

func mustCompileRule(pattern string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, opts)
	re.MatchTimeout = matchTimeout
	return re
}

// matchAt runs rule anchored at pos in src. regexp2 reports rune indices, so
// src is the one rune slice the whole scan shares. Returns nil on no match,
// on a match that drifted past pos, and on timeout.
func matchAt(rule *regexp2.Regexp, src []rune, pos int) *regexp2.Match {
	m, err := rule.FindRunesMatchStartingAt(src, pos)
	if err != nil || m == nil || m.Index != pos {
		return nil
	}
	return m
}

// parseAttributes scans a tag's attrs span for quoted key-value pairs.
// Malformed stretches between pairs are skipped without error, and a
// repeated key keeps only its last occurrence, in place.
func parseAttributes(src []rune, attrs loc.Span) []Attribute {
	if attrs.Len() == 0 {
		return nil
	}
	section := src[attrs.Start:attrs.End]
	var out []Attribute
	var byKey map[string]int
	m, err := attrRule.FindRunesMatch(section)
	for err == nil && m != nil {
		key := m.GroupByName("key")
		val := m.GroupByName("dval")
		if len(val.Captures) == 0 {
			val = m.GroupByName("sval")
		}
		a := Attribute{
			Key:    key.String(),
			KeyLoc: loc.Loc{Start: attrs.Start + key.Index},
			Val:    val.String(),
			ValLoc: loc.Loc{Start: attrs.Start + val.Index},
		}
		if byKey == nil {
			byKey = make(map[string]int)
		}
		if i, ok := byKey[a.Key]; ok {
			out[i] = a
		} else {
			byKey[a.Key] = len(out)
			out = append(out, a)
		}
		m, err = attrRule.FindNextMatch(m)
	}
	return out
}

package main

import (
	"strconv"
	"strings"

	"github.com/gogpu/barfont/text"
)

// parseMarkup splits s into text blocks at %{Tn} and %{T-} tags.
// %{Tn} makes font n (1-based) the preferred font of the text that
// follows, %{T-} drops the preference. Other tags are removed; an
// unterminated tag is kept as text.
func parseMarkup(s string) []text.TextBlock {
	var (
		blocks []text.TextBlock
		cur    strings.Builder
		font   int
	)
	flush := func() {
		if cur.Len() > 0 {
			blocks = append(blocks, text.Block(cur.String(), font))
			cur.Reset()
		}
	}

	for {
		i := strings.Index(s, "%{")
		if i < 0 {
			cur.WriteString(s)
			break
		}
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			cur.WriteString(s)
			break
		}
		cur.WriteString(s[:i])
		tag := s[i+2 : i+end]
		s = s[i+end+1:]

		if n, ok := fontTag(tag); ok && n != font {
			flush()
			font = n
		}
	}
	flush()
	return blocks
}

// fontTag parses the body of a font tag: "T-" or "T" followed by a
// positive index.
func fontTag(tag string) (int, bool) {
	rest, ok := strings.CutPrefix(tag, "T")
	if !ok {
		return 0, false
	}
	if rest == "-" {
		return 0, true
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Package content converts feed and provider markup into the text forms the
// pipeline stores: plain text, excerpts, slugs and sanitized HTML.
package content

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"
)

// blockElements end the current line when they open or close.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "hr": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "blockquote": true, "pre": true, "table": true,
	"tr": true, "section": true, "article": true, "header": true, "footer": true,
	"figure": true, "figcaption": true, "dt": true, "dd": true,
}

// skipElements contribute no text.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
	"template": true,
	"head":     true,
}

// PlainText strips markup from s, decodes entities and normalizes whitespace.
// Block elements become line breaks; blank lines are dropped.
func PlainText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	// feeds often double-escape markup inside CDATA-less descriptions
	if !strings.Contains(s, "<") && strings.Contains(s, "&lt;") {
		s = html.UnescapeString(s)
	}

	var b strings.Builder
	z := nethtml.NewTokenizer(strings.NewReader(s))
	skipDepth := 0
	for {
		tt := z.Next()
		switch tt {
		case nethtml.ErrorToken:
			return normalizeLines(b.String())
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipElements[tag] && tt == nethtml.StartTagToken {
				skipDepth++
				continue
			}
			if blockElements[tag] {
				b.WriteByte('\n')
			}
		case nethtml.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipElements[tag] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if blockElements[tag] {
				b.WriteByte('\n')
			}
		case nethtml.TextToken:
			if skipDepth == 0 {
				b.WriteString(strings.ReplaceAll(string(z.Text()), "\n", " "))
			}
		}
	}
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.FieldsFunc(line, unicode.IsSpace), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Flatten collapses all whitespace, newlines included, into single spaces.
func Flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns at most n runes of s without splitting a multi-byte rune.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return strings.TrimRightFunc(s[:i], unicode.IsSpace)
		}
		count++
	}
	return s
}

package content

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultSlug  = "post"
	maxSlugRunes = 96
)

// letters NFD cannot decompose into a base letter plus mark
var foldReplacer = strings.NewReplacer(
	"đ", "d", "Đ", "d",
	"ł", "l", "Ł", "l",
	"ø", "o", "Ø", "o",
	"ß", "ss",
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
	"þ", "th", "Þ", "th",
)

// Slugify lowercases title, folds diacritics to ASCII and joins the remaining
// alphanumeric runs with hyphens. An empty result yields DefaultSlug.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, foldReplacer.Replace(title))
	if err != nil {
		folded = title
	}

	var b strings.Builder
	pendingDash := false
	count := 0
	for _, r := range strings.ToLower(folded) {
		if count >= maxSlugRunes {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				if count+1 >= maxSlugRunes {
					break
				}
				b.WriteByte('-')
				count++
			}
			b.WriteRune(r)
			count++
			pendingDash = false
			continue
		}
		pendingDash = true
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

package ai

import "strings"

var languageNames = map[string]string{
	"en":    "English",
	"en-us": "English",
	"en-gb": "British English",
	"zh-cn": "简体中文",
	"zh-tw": "繁體中文",
	"ja":    "日本語",
	"ko":    "한국어",
	"de":    "Deutsch",
	"fr":    "Français",
	"es":    "Español",
	"pt-br": "Português (Brasil)",
	"it":    "Italiano",
	"ru":    "Русский",
	"vi":    "Tiếng Việt",
	"id":    "Bahasa Indonesia",
}

// LanguageName returns the display name for a BCP 47 tag, or the tag itself
// when unknown.
func LanguageName(tag string) string {
	key := strings.ToLower(strings.TrimSpace(tag))
	if name, ok := languageNames[key]; ok {
		return name
	}
	if i := strings.IndexByte(key, '-'); i > 0 {
		if name, ok := languageNames[key[:i]]; ok {
			return name
		}
	}
	return tag
}

package content

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcOnce   sync.Once
	ugcPolicy *bluemonday.Policy

	pageOnce   sync.Once
	pagePolicy *bluemonday.Policy
)

// SanitizeHTML keeps user-generated-content markup and drops scripts, styles
// and event handlers. It is applied to generated bodies before storage.
func SanitizeHTML(s string) string {
	ugcOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy.Sanitize(s)
}

// SanitizePage prepares a fetched page for readability extraction. Layout
// elements survive so the extractor can score them.
func SanitizePage(s string) string {
	pageOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
		p.AllowAttrs("id", "class", "lang", "dir").Globally()
		pagePolicy = p
	})
	return pagePolicy.Sanitize(s)
}

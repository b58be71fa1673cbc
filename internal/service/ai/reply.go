package ai

import (
	"strings"

	"quill/backend/internal/content"
	"quill/backend/internal/model"
)

const (
	DefaultTitle       = "Untitled Article"
	maxFallbackExcerpt = 150
)

// ParseReply splits a templated reply into title, excerpt and body. Missing
// fields fall back to values derived from the body. ok is false when the
// reply carries no body text at all.
func ParseReply(reply string) (model.Generated, bool) {
	reply = strings.TrimSpace(stripCodeFence(reply))
	if reply == "" {
		return model.Generated{}, false
	}

	var gen model.Generated
	var body []string
	inBody := false
	for _, line := range strings.Split(reply, "\n") {
		if inBody {
			body = append(body, line)
			continue
		}
		key, value, isField := fieldLine(line)
		switch {
		case isField && key == "TITLE" && gen.Title == "":
			gen.Title = value
		case isField && key == "EXCERPT" && gen.Excerpt == "":
			gen.Excerpt = value
		case isField && key == "CONTENT":
			inBody = true
			if value != "" {
				body = append(body, value)
			}
		default:
			body = append(body, line)
		}
	}

	gen.Body = strings.TrimSpace(stripCodeFence(strings.Join(body, "\n")))
	if gen.Body == "" {
		return model.Generated{}, false
	}

	gen.Title = content.Flatten(content.PlainText(gen.Title))
	if gen.Title == "" {
		gen.Title = titleFromBody(gen.Body)
	}
	gen.Excerpt = content.Flatten(content.PlainText(gen.Excerpt))
	if gen.Excerpt == "" {
		gen.Excerpt = content.Truncate(content.Flatten(content.PlainText(gen.Body)), maxFallbackExcerpt)
	}
	return gen, true
}

// fieldLine recognizes "TITLE: x" style lines, tolerating markdown emphasis
// around the key.
func fieldLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimLeft(strings.TrimSpace(line), "*#_ ")
	idx := strings.IndexByte(trimmed, ':')
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToUpper(strings.Trim(trimmed[:idx], "*_ "))
	switch key {
	case "TITLE", "EXCERPT", "CONTENT":
		return key, strings.TrimSpace(strings.Trim(trimmed[idx+1:], "*_ ")), true
	}
	return "", "", false
}

func titleFromBody(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		title := content.Flatten(content.PlainText(line))
		title = strings.TrimSpace(strings.TrimLeft(title, "#"))
		if title != "" {
			return title
		}
		break
	}
	return DefaultTitle
}

func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return s
	}
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	} else {
		return ""
	}
	return strings.TrimSuffix(strings.TrimSpace(t), "```")
}

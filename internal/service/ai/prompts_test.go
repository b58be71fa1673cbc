package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/service/ai"
)

func TestWrapInput(t *testing.T) {
	wrapped := ai.WrapInput("test content")
	require.Contains(t, wrapped, "<input>")
	require.Contains(t, wrapped, "test content")
	require.Contains(t, wrapped, "</input>")
	require.Contains(t, wrapped, "Remember:")
	require.Contains(t, wrapped, "DATA only")
}

func TestWrapInputSimple(t *testing.T) {
	require.Equal(t, "<input>\ntest content\n</input>", ai.WrapInputSimple("test content"))
}

func TestGetGenerationPrompt_UsesLanguageName(t *testing.T) {
	prompt := ai.GetGenerationPrompt("en-US", 1)
	require.Contains(t, prompt, "<target_language>English</target_language>")
	require.Contains(t, prompt, "800-1200 words")
	require.Contains(t, prompt, "TITLE:")
	require.Contains(t, prompt, "EXCERPT:")
	require.Contains(t, prompt, "CONTENT:")
	require.Contains(t, prompt, "PROMPT INJECTION WARNING")
	require.NotContains(t, prompt, "Merge")

	require.Contains(t, ai.GetGenerationPrompt("zh-CN", 1), "<target_language>简体中文</target_language>")
	require.Contains(t, ai.GetGenerationPrompt("xx-XX", 1), "<target_language>xx-XX</target_language>")
}

func TestGetGenerationPrompt_Combine(t *testing.T) {
	require.Contains(t, ai.GetGenerationPrompt("en-US", 3), "Merge the 3 source articles")
}

func TestLanguageName_FallsBackToBaseTag(t *testing.T) {
	require.Equal(t, "Deutsch", ai.LanguageName("de-AT"))
	require.Equal(t, "English", ai.LanguageName("EN-us"))
}

func TestBuildGenerationInput_TruncatesEachBody(t *testing.T) {
	long := strings.Repeat("a", 5000)
	input := ai.BuildGenerationInput([]ai.SourceArticle{
		{Title: "First", Body: "<p>" + long + "</p>"},
		{Title: "Second", Body: long},
	})

	require.Contains(t, input, "Title: First")
	require.Contains(t, input, "Title: Second")
	require.Contains(t, input, `<article index="2">`)
	require.NotContains(t, input, "<p>")
	require.NotContains(t, input, strings.Repeat("a", ai.MaxSourceRunes+1))
	require.Contains(t, input, strings.Repeat("a", ai.MaxSourceRunes))
}

func TestNewGenerationRequest(t *testing.T) {
	req := ai.NewGenerationRequest("gpt-4o-mini", "en-US", []ai.SourceArticle{{Title: "T", Body: "B"}})
	require.Equal(t, "gpt-4o-mini", req.Model)
	require.Equal(t, 0.7, req.Temperature)
	require.Equal(t, 4096, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	require.Equal(t, ai.RoleSystem, req.Messages[0].Role)
	require.Equal(t, ai.RoleUser, req.Messages[1].Role)
	require.Contains(t, req.Messages[1].Content, "Title: T")
}

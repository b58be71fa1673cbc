package content_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/content"
)

func TestPlainText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "   ", ""},
		{"plain", "just text", "just text"},
		{"entities", "Tom &amp; Jerry &quot;live&quot;", `Tom & Jerry "live"`},
		{"blocks", "<p>First <b>bold</b></p><p>Second</p>", "First bold\nSecond"},
		{"script dropped", "<p>Keep</p><script>alert(1)</script><style>p{}</style>", "Keep"},
		{"double escaped", "&lt;p&gt;Hello &amp;amp; bye&lt;/p&gt;", "Hello & bye"},
		{"whitespace", "<div>  a \n\t b  </div><br/><div>c</div>", "a b\nc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, content.PlainText(tc.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "hello", content.Truncate("hello", 10))
	require.Equal(t, "hel", content.Truncate("hello", 3))
	require.Equal(t, "", content.Truncate("hello", 0))
	require.Equal(t, "ab", content.Truncate("ab cd", 3))

	s := strings.Repeat("é", 400)
	out := content.Truncate(s, 300)
	require.True(t, utf8.ValidString(out))
	require.Equal(t, 300, utf8.RuneCountInString(out))
}

func TestFlatten(t *testing.T) {
	require.Equal(t, "a b c", content.Flatten("a\nb\n\n  c "))
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Crème brûlée à la carte", "creme-brulee-a-la-carte"},
		{"Đà Nẵng mở cửa", "da-nang-mo-cua"},
		{"Straße über Łódź", "strasse-uber-lodz"},
		{"2026: the year -- in review", "2026-the-year-in-review"},
		{"日本語", content.DefaultSlug},
		{"", content.DefaultSlug},
		{"!!!", content.DefaultSlug},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, content.Slugify(tc.in), tc.in)
	}

	long := content.Slugify(strings.Repeat("word ", 60))
	require.LessOrEqual(t, len(long), 96)
	require.False(t, strings.HasSuffix(long, "-"))
}

func TestSanitizeHTML(t *testing.T) {
	out := content.SanitizeHTML(`<h2>Title</h2><p onclick="x()">Body</p><script>alert(1)</script>`)
	require.Contains(t, out, "<h2>Title</h2>")
	require.Contains(t, out, "<p>Body</p>")
	require.NotContains(t, out, "script")
	require.NotContains(t, out, "onclick")
}

func TestSanitizePageKeepsLayout(t *testing.T) {
	out := content.SanitizePage(`<article class="post"><p>Hi</p></article><script>x</script>`)
	require.Contains(t, out, `<article class="post">`)
	require.NotContains(t, out, "<script>")
}

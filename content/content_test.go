package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whitebox/assets"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, "Welcome to Whitebox", p.Title)
	assert.Equal(t, "Transform your space with our innovative design solutions", p.Subtitle)
	assert.Equal(t, assets.BuiltinLogo, p.Logo)
	assert.Equal(t, assets.BuiltinBefore, p.Before)
	assert.Equal(t, assets.BuiltinAfter, p.After)
	assert.Contains(t, p.Body, "Drag the handle")
	assert.Empty(t, p.Source)
	assert.Empty(t, p.Files(), "the built-in page depends on no files")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Page
	}{
		{
			name:  "yaml front matter",
			input: "---\ntitle: Kitchen\nsubtitle: Open plan\nbefore: k1.jpg\nafter: k2.jpg\n---\n\n# Notes\n",
			want: Page{
				Title: "Kitchen", Subtitle: "Open plan", Logo: assets.BuiltinLogo,
				Before: "k1.jpg", After: "k2.jpg", Body: "# Notes",
			},
		},
		{
			name:  "toml front matter",
			input: "+++\ntitle = \"Loft\"\n+++\nbody",
			want: Page{
				Title: "Loft", Subtitle: DefaultSubtitle, Logo: assets.BuiltinLogo,
				Before: assets.BuiltinBefore, After: assets.BuiltinAfter, Body: "body",
			},
		},
		{
			name:  "no front matter keeps defaults",
			input: "just markdown",
			want: Page{
				Title: DefaultTitle, Subtitle: DefaultSubtitle, Logo: assets.BuiltinLogo,
				Before: assets.BuiltinBefore, After: assets.BuiltinAfter, Body: "just markdown",
			},
		},
		{
			name:  "blank fields fall back",
			input: "---\ntitle: \"  \"\nafter: \"\"\n---\n",
			want: Page{
				Title: DefaultTitle, Subtitle: DefaultSubtitle, Logo: assets.BuiltinLogo,
				Before: assets.BuiltinBefore, After: assets.BuiltinAfter,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseInvalidFrontMatter(t *testing.T) {
	_, err := Parse(strings.NewReader("---\ntitle: [unclosed\n---\n"))
	assert.ErrorContains(t, err, "failed to parse front matter")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.md")
	require.NoError(t, os.WriteFile(path, []byte("---\nbefore: img/a.png\nafter: /abs/b.png\nlogo: img/a.png\n---\nhello"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Source)
	assert.Equal(t, dir, p.Dir())
	assert.Equal(t, filepath.Join(dir, "img/a.png"), p.Resolver().Path(p.Before))
	assert.Equal(t, []string{
		path,
		filepath.Join(dir, "img/a.png"),
		"/abs/b.png",
	}, p.Files())

	_, err = Load(filepath.Join(dir, "missing.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, p.Title)
}

func TestWithImages(t *testing.T) {
	p := Default()
	cp := p.WithImages("before.png", "")

	assert.Equal(t, "before.png", cp.Before)
	assert.Equal(t, assets.BuiltinAfter, cp.After)
	assert.Equal(t, assets.BuiltinBefore, p.Before, "the original page is unchanged")
}

func TestRenderBody(t *testing.T) {
	out, err := RenderBody("", "dark", 40)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = RenderBody("Drag the **handle** to compare.", "ascii", 40)
	require.NoError(t, err)
	assert.Contains(t, out, "handle")
	assert.False(t, strings.HasPrefix(out, "\n"))

	_, err = RenderBody("text", "no-such-style", 40)
	assert.Error(t, err)
}

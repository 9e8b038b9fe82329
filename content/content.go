// Package content loads the page shown around the comparison slider: a
// markdown file whose front matter names the title, subtitle and images.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"whitebox/assets"
)

//go:embed default.md
var defaultPage []byte

const (
	DefaultTitle    = "Welcome to Whitebox"
	DefaultSubtitle = "Transform your space with our innovative design solutions"
)

// Page is a parsed content file.
type Page struct {
	Title    string
	Subtitle string
	// Logo, Before and After are image refs: a builtin: name or a path
	// relative to the content file.
	Logo   string
	Before string
	After  string
	// Body is the markdown below the front matter.
	Body string
	// Source is the file the page came from, empty for the built-in page.
	Source string
}

type matter struct {
	Title    string `yaml:"title" toml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Logo     string `yaml:"logo" toml:"logo" json:"logo"`
	Before   string `yaml:"before" toml:"before" json:"before"`
	After    string `yaml:"after" toml:"after" json:"after"`
}

// Default returns the built-in welcome page.
func Default() *Page {
	p, err := Parse(bytes.NewReader(defaultPage))
	if err != nil {
		// The embedded page is part of the binary.
		panic(fmt.Sprintf("content: built-in page is invalid: %v", err))
	}
	return p
}

// Parse reads a page from r. Missing front matter fields fall back to the
// built-in page's values.
func Parse(r io.Reader) (*Page, error) {
	var m matter
	body, err := frontmatter.Parse(r, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}

	return &Page{
		Title:    orDefault(m.Title, DefaultTitle),
		Subtitle: orDefault(m.Subtitle, DefaultSubtitle),
		Logo:     orDefault(m.Logo, assets.BuiltinLogo),
		Before:   orDefault(m.Before, assets.BuiltinBefore),
		After:    orDefault(m.After, assets.BuiltinAfter),
		Body:     strings.TrimSpace(string(body)),
	}, nil
}

// Load reads the page at path. An empty path yields the built-in page.
func Load(path string) (*Page, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// Dir is the directory image paths resolve against.
func (p *Page) Dir() string {
	if p.Source == "" {
		return ""
	}
	return filepath.Dir(p.Source)
}

// Resolver returns an image resolver rooted at the page's directory.
func (p *Page) Resolver() *assets.Resolver {
	return assets.NewResolver(p.Dir())
}

// Files lists the files the page depends on: the content file itself and
// every image that is not built in.
func (p *Page) Files() []string {
	var files []string
	if p.Source != "" {
		files = append(files, p.Source)
	}
	r := p.Resolver()
	seen := make(map[string]bool)
	for _, ref := range []string{p.Logo, p.Before, p.After} {
		if path := r.Path(ref); path != "" && !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}
	return files
}

// WithImages overrides the before and after images, keeping the rest.
// Empty values leave the page's own refs in place.
func (p *Page) WithImages(before, after string) *Page {
	cp := *p
	if before != "" {
		cp.Before = before
	}
	if after != "" {
		cp.After = after
	}
	return &cp
}

func orDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}

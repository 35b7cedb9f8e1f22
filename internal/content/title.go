package content

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// PageTitle returns the title of the markdown file at file: the front matter
// "title" when present, otherwise the text of the first level-one heading.
// It returns "" when the page has neither.
func PageTitle(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return TitleOf(data), nil
}

// TitleOf extracts the page title from markdown source.
func TitleOf(src []byte) string {
	fm, body := splitFrontMatter(src)
	if len(fm) > 0 {
		var meta struct {
			Title string `yaml:"title"`
		}
		if err := yaml.Unmarshal(fm, &meta); err == nil && strings.TrimSpace(meta.Title) != "" {
			return strings.TrimSpace(meta.Title)
		}
	}
	return firstHeading(body)
}

// splitFrontMatter separates a leading "---" delimited YAML block from the body.
func splitFrontMatter(src []byte) (fm, body []byte) {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(src, []byte("---\n")) {
		return nil, src
	}
	rest := src[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):]
	}
	idx := bytes.Index(rest, []byte("\n---\n"))
	if idx < 0 {
		return nil, src
	}
	return rest[:idx+1], rest[idx+len("\n---\n"):]
}

func firstHeading(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			var b strings.Builder
			inlineText(&b, h, body)
			title = strings.TrimSpace(b.String())
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

// inlineText concatenates the text segments below n.
func inlineText(b *strings.Builder, n gmast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(t.Value)
		default:
			inlineText(b, c, src)
		}
	}
}

// DeriveLabel turns a file or directory name into a human label, for
// example "binary-search" becomes "Binary Search".
func DeriveLabel(name string) string {
	name = strings.TrimSuffix(strings.Trim(name, "/"), ".md")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

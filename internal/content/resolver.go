// Package content maps site paths used in navigation and sidebar entries to
// the markdown files of the documentation tree.
//
// The generator resolves targets by convention: a path ending in "/" is a
// directory served from its README.md (or index.md), "/x.html" and "/x" are
// served from x.md, and links ending in ".md" name the file directly.
package content

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// indexFiles are tried in order for directory paths.
var indexFiles = []string{"README.md", "readme.md", "index.md"}

// Resolver resolves site paths against a documentation root.
type Resolver struct {
	Root string
}

// NewResolver returns a resolver rooted at dir.
func NewResolver(dir string) *Resolver {
	return &Resolver{Root: dir}
}

// Candidates lists the files, relative to the root, that may serve sitePath.
// It returns nil for external links and empty paths.
func Candidates(sitePath string) []string {
	if sitePath == "" || !strings.HasPrefix(sitePath, "/") {
		return nil
	}
	if i := strings.IndexAny(sitePath, "#?"); i >= 0 {
		sitePath = sitePath[:i]
	}

	// Cleaning a rooted path never climbs above the root.
	rel := strings.TrimPrefix(path.Clean(sitePath), "/")

	if strings.HasSuffix(sitePath, "/") || rel == "" {
		out := make([]string, 0, len(indexFiles))
		for _, f := range indexFiles {
			out = append(out, path.Join(rel, f))
		}
		return out
	}

	switch ext := path.Ext(rel); ext {
	case ".md":
		return []string{rel}
	case ".html":
		return []string{strings.TrimSuffix(rel, ext) + ".md"}
	case "":
		return []string{rel + ".md", path.Join(rel, "README.md")}
	default:
		// Static asset served as-is.
		return []string{rel}
	}
}

// Resolve returns the file that serves sitePath. ok is false when none of
// the candidates exist.
func (r *Resolver) Resolve(sitePath string) (file string, ok bool, err error) {
	for _, c := range Candidates(sitePath) {
		p := filepath.Join(r.Root, filepath.FromSlash(c))
		info, statErr := os.Stat(p)
		switch {
		case statErr == nil && !info.IsDir():
			return p, true, nil
		case statErr == nil, errors.Is(statErr, os.ErrNotExist):
			continue
		default:
			return "", false, statErr
		}
	}
	return "", false, nil
}

// Relative returns the path of the file serving sitePath relative to the
// root, using forward slashes. When the file does not exist the first
// candidate is returned so that edit links still point somewhere sensible.
func (r *Resolver) Relative(sitePath string) string {
	if file, ok, err := r.Resolve(sitePath); err == nil && ok {
		if rel, relErr := filepath.Rel(r.Root, file); relErr == nil {
			return filepath.ToSlash(rel)
		}
	}
	if c := Candidates(sitePath); len(c) > 0 {
		return c[0]
	}
	return ""
}

package editlink

import (
	"path"
	"strings"
)

// Build returns the web edit URL of pagePath, a file path relative to
// docsDir, in the repository repo on branch. It returns "" when the forge
// cannot be determined or an input is missing.
func Build(repo, docsDir, branch, pagePath string) string {
	return BuildWith(DefaultChain(), repo, docsDir, branch, pagePath)
}

// BuildWith is Build with a custom detector chain.
func BuildWith(chain *DetectorChain, repo, docsDir, branch, pagePath string) string {
	repo = strings.TrimSpace(repo)
	pagePath = strings.TrimPrefix(pagePath, "/")
	if repo == "" || pagePath == "" {
		return ""
	}
	res := chain.Detect(repo)
	if !res.Found {
		return ""
	}
	file := pagePath
	if d := strings.Trim(docsDir, "/"); d != "" && d != "." {
		file = path.Join(d, pagePath)
	}
	return GenerateEditURL(res.ForgeType, res.BaseURL, res.FullName, branch, file)
}

const pageMarker = "__sitecfg_page__"

// Prefix returns the edit URL with the page path left off, for generators
// that append the page themselves. Forges that put the page path elsewhere
// in the URL yield "".
func Prefix(repo, docsDir, branch string) string {
	u := Build(repo, docsDir, branch, pageMarker)
	if !strings.HasSuffix(u, pageMarker) {
		return ""
	}
	return strings.TrimSuffix(u, pageMarker)
}

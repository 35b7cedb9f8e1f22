// Package editlink builds "edit this page" URLs from the repository metadata
// of the site configuration.
package editlink

import (
	"fmt"
	"strings"
)

// ForgeType identifies a hosting platform with a web editor.
type ForgeType string

const (
	ForgeGitHub    ForgeType = "github"
	ForgeGitLab    ForgeType = "gitlab"
	ForgeForgejo   ForgeType = "forgejo" // also Gitea and Codeberg
	ForgeBitbucket ForgeType = "bitbucket"
)

// GenerateEditURL constructs a web UI edit URL for a repository file given the forge type.
// baseURL should be the canonical web base, fullName is "owner/repo" and
// filePath uses forward slashes. Returns "" if any input is missing.
func GenerateEditURL(forgeType ForgeType, baseURL, fullName, branch, filePath string) string {
	if forgeType == "" || baseURL == "" || fullName == "" || branch == "" || filePath == "" {
		return ""
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	switch forgeType {
	case ForgeGitHub:
		return fmt.Sprintf("%s/%s/edit/%s/%s", baseURL, fullName, branch, filePath)
	case ForgeGitLab:
		return fmt.Sprintf("%s/%s/-/edit/%s/%s", baseURL, fullName, branch, filePath)
	case ForgeForgejo:
		return fmt.Sprintf("%s/%s/_edit/%s/%s", baseURL, fullName, branch, filePath)
	case ForgeBitbucket:
		return fmt.Sprintf("%s/%s/src/%s/%s?mode=edit", baseURL, fullName, branch, filePath)
	default:
		return ""
	}
}

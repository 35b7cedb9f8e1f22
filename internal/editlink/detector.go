package editlink

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var shorthand = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// DetectionResult describes the forge hosting a repository.
type DetectionResult struct {
	ForgeType ForgeType
	BaseURL   string
	FullName  string
	Found     bool
}

// ForgeDetector determines the forge of a repository reference.
type ForgeDetector interface {
	// Detect returns a result with Found=true when it recognizes repo.
	Detect(repo string) DetectionResult

	// Name returns a human-readable name for logging.
	Name() string
}

// DetectorChain tries detectors in order until one succeeds.
type DetectorChain struct {
	detectors []ForgeDetector
}

// NewDetectorChain creates an empty chain.
func NewDetectorChain() *DetectorChain {
	return &DetectorChain{detectors: make([]ForgeDetector, 0)}
}

// DefaultChain recognizes owner/repo shorthands and well-known hosts.
func DefaultChain() *DetectorChain {
	return NewDetectorChain().Add(ShorthandDetector{}).Add(HostDetector{})
}

// Add appends a detector to the chain.
func (dc *DetectorChain) Add(detector ForgeDetector) *DetectorChain {
	dc.detectors = append(dc.detectors, detector)
	return dc
}

// Detect runs through the chain of detectors until one succeeds.
func (dc *DetectorChain) Detect(repo string) DetectionResult {
	for _, d := range dc.detectors {
		if res := d.Detect(repo); res.Found {
			return res
		}
	}
	return DetectionResult{}
}

// ShorthandDetector treats "owner/repo" as a GitHub repository, the way the
// generator's default theme does.
type ShorthandDetector struct{}

// Name returns the detector name.
func (ShorthandDetector) Name() string { return "shorthand" }

// Detect recognizes repo references without a scheme or host.
func (ShorthandDetector) Detect(repo string) DetectionResult {
	if !shorthand.MatchString(repo) {
		return DetectionResult{}
	}
	owner, name, _ := strings.Cut(strings.TrimSuffix(repo, ".git"), "/")
	if strings.Trim(owner, ".") == "" || strings.Trim(name, ".") == "" {
		return DetectionResult{}
	}
	return DetectionResult{
		ForgeType: ForgeGitHub,
		BaseURL:   "https://github.com",
		FullName:  owner + "/" + name,
		Found:     true,
	}
}

// HostDetector recognizes forges by hostname. SSH remotes of the form
// git@host:owner/repo are accepted as well.
type HostDetector struct{}

// Name returns the detector name.
func (HostDetector) Name() string { return "host" }

// Detect determines the forge from the host of repo.
func (HostDetector) Detect(repo string) DetectionResult {
	u, err := url.Parse(normalizeSSHURL(repo))
	if err != nil || u.Host == "" {
		return DetectionResult{}
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "ssh" {
		return DetectionResult{}
	}

	forge := forgeFromHost(u.Hostname())
	if forge == "" {
		return DetectionResult{}
	}

	fullName := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if !strings.Contains(fullName, "/") {
		return DetectionResult{}
	}

	scheme := u.Scheme
	if scheme == "ssh" {
		scheme = "https"
	}
	return DetectionResult{
		ForgeType: forge,
		BaseURL:   fmt.Sprintf("%s://%s", scheme, u.Hostname()),
		FullName:  fullName,
		Found:     true,
	}
}

func forgeFromHost(host string) ForgeType {
	host = strings.ToLower(host)
	switch {
	case strings.HasPrefix(host, "github.") || strings.Contains(host, ".github."):
		return ForgeGitHub
	case strings.HasPrefix(host, "gitlab.") || strings.Contains(host, ".gitlab."):
		return ForgeGitLab
	case host == "bitbucket.org":
		return ForgeBitbucket
	case host == "codeberg.org", strings.Contains(host, "forgejo"), strings.Contains(host, "gitea"):
		return ForgeForgejo
	default:
		return ""
	}
}

// normalizeSSHURL converts git@host:path remotes to ssh://git@host/path.
func normalizeSSHURL(repo string) string {
	if !strings.HasPrefix(repo, "git@") {
		return repo
	}
	host, path, ok := strings.Cut(strings.TrimPrefix(repo, "git@"), ":")
	if !ok {
		return repo
	}
	return "ssh://git@" + host + "/" + path
}

package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"

	"cran-recipes/internal/ports"
	"cran-recipes/internal/shared"
)

// GitHubForgeAdapter answers ref queries through the GitHub REST API.
// Tag lists are memoized per repository so a resolve request queries
// the forge at most once.
type GitHubForgeAdapter struct {
	HTTP    ports.HTTPPort
	APIBase string

	mu   sync.Mutex
	tags map[string][]string
}

const defaultGitHubAPIBase = "https://api.github.com"

func NewGitHubForgeAdapter(httpPort ports.HTTPPort) *GitHubForgeAdapter {
	return &GitHubForgeAdapter{
		HTTP:    httpPort,
		APIBase: defaultGitHubAPIBase,
		tags:    map[string][]string{},
	}
}

type githubTag struct {
	Name string `json:"name"`
}

type githubRelease struct {
	TagName string `json:"tag_name"`
}

// LatestRef prefers the published latest release; repositories that
// tag without releases fall back to the highest tag by version order.
func (a *GitHubForgeAdapter) LatestRef(ctx context.Context, repoURL string) (string, error) {
	slug, err := repoSlug(repoURL)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/repos/%s/releases/latest", a.APIBase, slug)
	status, body, err := a.HTTP.Get(ctx, url)
	if err != nil {
		return "", err
	}
	if status >= 200 && status < 300 {
		var release githubRelease
		if err := json.Unmarshal(body, &release); err == nil && release.TagName != "" {
			return release.TagName, nil
		}
	}
	tags, err := a.repoTags(ctx, repoURL)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no tags found at %s", repoURL))
	}
	return highestTag(tags), nil
}

func (a *GitHubForgeAdapter) RefExists(ctx context.Context, repoURL string, candidate string) (bool, error) {
	tags, err := a.repoTags(ctx, repoURL)
	if err != nil {
		return false, err
	}
	for _, tag := range tags {
		if tag == candidate {
			return true, nil
		}
	}
	return false, nil
}

func (a *GitHubForgeAdapter) repoTags(ctx context.Context, repoURL string) ([]string, error) {
	slug, err := repoSlug(repoURL)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	cached, ok := a.tags[slug]
	a.mu.Unlock()
	if ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s/repos/%s/tags?per_page=100", a.APIBase, slug)
	status, body, err := a.HTTP.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("forge query failed").
			WithCause(shared.HTTPStatusError(status, url))
	}
	var parsed []githubTag
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse forge tag list").
			WithCause(err)
	}
	var names []string
	for _, tag := range parsed {
		names = append(names, tag.Name)
	}
	a.mu.Lock()
	a.tags[slug] = names
	a.mu.Unlock()
	return names, nil
}

// highestTag orders tags by upstream version semantics, ignoring a
// leading "v". Tags that do not parse as versions sort last.
func highestTag(tags []string) string {
	ordered := append([]string(nil), tags...)
	sort.SliceStable(ordered, func(i, j int) bool {
		v1, err1 := debversion.NewVersion(strings.TrimPrefix(ordered[i], "v"))
		v2, err2 := debversion.NewVersion(strings.TrimPrefix(ordered[j], "v"))
		if err1 != nil || err2 != nil {
			return err2 != nil && err1 == nil
		}
		return v1.GreaterThan(v2)
	})
	return ordered[0]
}

// repoSlug returns the "owner/repo" part of a forge repository URL,
// the last two path segments by convention.
func repoSlug(repoURL string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(repoURL), "/")
	segments := strings.Split(trimmed, "/")
	if len(segments) < 2 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("not a forge repository url: %s", repoURL))
	}
	owner := segments[len(segments)-2]
	repo := segments[len(segments)-1]
	if owner == "" || repo == "" || strings.Contains(owner, ":") {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("not a forge repository url: %s", repoURL))
	}
	return owner + "/" + repo, nil
}

var _ ports.ForgeQueryPort = (*GitHubForgeAdapter)(nil)

package cli

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
)

// AutoDetectGitTarget fills empty fields of target from the git
// repository in the current directory: branch from HEAD, owner and
// repo from the origin remote URL. Fields that are already set are
// kept as is.
func AutoDetectGitTarget(ctx context.Context, target *model.Target) error {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository")
	}

	if target.Branch == "" {
		head, err := repo.Head()
		if err != nil {
			return goerr.Wrap(err, "failed to get HEAD")
		}
		if head.Name().IsBranch() {
			target.Branch = types.BranchName(head.Name().Short())
		}
	}

	if target.Owner == "" || target.RepoName == "" {
		remote, err := repo.Remote("origin")
		if err != nil {
			return goerr.Wrap(err, "failed to get remote origin")
		}

		if len(remote.Config().URLs) == 0 {
			return goerr.New("no remote URL found")
		}

		owner, repoName, ok := parseGitHubRemote(remote.Config().URLs[0])
		if !ok {
			return goerr.New("failed to parse GitHub owner/repo from git remote URL",
				goerr.V("url", remote.Config().URLs[0]))
		}

		if target.Owner == "" {
			target.Owner = owner
		}
		if target.RepoName == "" {
			target.RepoName = repoName
		}
	}

	return nil
}

// parseGitHubRemote understands the two usual remote URL shapes:
// git@github.com:owner/repo.git and https://github.com/owner/repo.git
func parseGitHubRemote(url string) (owner, repoName string, ok bool) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		parts := strings.SplitN(url, "github.com/", 2)
		path = parts[1]
	default:
		return "", "", false
	}

	path = strings.TrimSuffix(path, ".git")
	ownerRepo := strings.Split(path, "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return "", "", false
	}

	return ownerRepo[0], ownerRepo[1], true
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// GitHub holds the repository target and the credential source. Owner,
// repo and branch left empty here are resolved later (git auto-detect,
// then built-in defaults).
type GitHub struct {
	owner     string
	repoName  string
	branch    string
	tokenFile string
	baseURL   string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "GitHub repository owner",
			Category:    "GitHub",
			Sources:     cli.EnvVars("CIWATCH_GITHUB_OWNER"),
			Destination: &x.owner,
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "GitHub repository name",
			Category:    "GitHub",
			Sources:     cli.EnvVars("CIWATCH_GITHUB_REPO"),
			Destination: &x.repoName,
		},
		&cli.StringFlag{
			Name:        "branch",
			Aliases:     []string{"b"},
			Usage:       "Branch whose latest workflow run is watched",
			Category:    "GitHub",
			Sources:     cli.EnvVars("CIWATCH_BRANCH"),
			Destination: &x.branch,
		},
		&cli.StringFlag{
			Name:        "token-file",
			Usage:       "Path to file holding a GitHub personal access token",
			Category:    "GitHub",
			Sources:     cli.EnvVars("CIWATCH_TOKEN_FILE"),
			Value:       filepath.Join(".secrets", "gh_pat"),
			Destination: &x.tokenFile,
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise or tests)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("CIWATCH_GITHUB_API_URL"),
			Destination: &x.baseURL,
		},
	}
}

// Token reads the personal access token from the configured file and
// trims surrounding whitespace. A missing file is ErrNoCredential.
func (x *GitHub) Token() (types.GitHubToken, error) {
	raw, err := os.ReadFile(filepath.Clean(x.tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", goerr.Wrap(types.ErrNoCredential, "PAT file not found", goerr.V("path", x.tokenFile))
		}
		return "", goerr.Wrap(err, "failed to read PAT file", goerr.V("path", x.tokenFile))
	}

	return types.GitHubToken(strings.TrimSpace(string(raw))), nil
}

func (x *GitHub) Target() model.Target {
	return model.Target{
		Owner:    x.owner,
		RepoName: x.repoName,
		Branch:   types.BranchName(x.branch),
	}
}

func (x *GitHub) BaseURL() string {
	return x.baseURL
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("owner", x.owner),
		slog.String("repo", x.repoName),
		slog.String("branch", x.branch),
		slog.String("token_file", x.tokenFile),
		slog.String("base_url", x.baseURL),
	)
}

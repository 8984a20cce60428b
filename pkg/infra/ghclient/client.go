package ghclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tbmobb813/ciwatch/pkg/domain/interfaces"
	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
)

const userAgent = "ciwatch"

// Client calls the GitHub Actions REST API with a personal access
// token. Every request carries the token scheme Authorization header,
// the GitHub JSON media type and a fixed User-Agent.
type Client struct {
	gh *github.Client
}

var _ interfaces.ActionsAPI = (*Client)(nil)

type tokenTransport struct {
	token types.GitHubToken
	base  http.RoundTripper
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "token "+string(x.token))
	r.Header.Set("Accept", "application/vnd.github+json")
	r.Header.Set("User-Agent", userAgent)
	return x.base.RoundTrip(r)
}

type config struct {
	baseURL string
	timeout time.Duration
}

type Option func(*config)

// WithBaseURL points the client at a different API endpoint, mainly
// for tests. The URL must end with a slash.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	cfg := &config{timeout: 30 * time.Second}
	for _, opt := range options {
		opt(cfg)
	}

	httpClient := &http.Client{
		Transport: &tokenTransport{token: token, base: http.DefaultTransport},
		Timeout:   cfg.timeout,
	}

	gh := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid base URL", goerr.V("url", cfg.baseURL))
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

func (x *Client) ListWorkflowRuns(ctx context.Context, target *model.Target, perPage int) ([]*model.WorkflowRun, error) {
	opts := &github.ListWorkflowRunsOptions{
		Branch:      string(target.Branch),
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	result, _, err := x.gh.Actions.ListRepositoryWorkflowRuns(ctx, target.Owner, target.RepoName, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs",
			goerr.V("repo", target.FullName()),
			goerr.V("branch", target.Branch),
		)
	}

	runs := make([]*model.WorkflowRun, 0, len(result.WorkflowRuns))
	for _, run := range result.WorkflowRuns {
		runs = append(runs, &model.WorkflowRun{
			ID:         types.RunID(run.GetID()),
			Status:     run.GetStatus(),
			Conclusion: run.GetConclusion(),
			CreatedAt:  formatTimestamp(run.GetCreatedAt()),
		})
	}

	return runs, nil
}

func (x *Client) ListWorkflowJobs(ctx context.Context, target *model.Target, runID types.RunID) ([]*model.WorkflowJob, error) {
	result, _, err := x.gh.Actions.ListWorkflowJobs(ctx, target.Owner, target.RepoName, int64(runID), &github.ListWorkflowJobsOptions{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow jobs",
			goerr.V("repo", target.FullName()),
			goerr.V("run_id", runID),
		)
	}

	jobs := make([]*model.WorkflowJob, 0, len(result.Jobs))
	for _, job := range result.Jobs {
		jobs = append(jobs, &model.WorkflowJob{
			ID:         types.JobID(job.GetID()),
			Name:       job.GetName(),
			Status:     types.JobStatus(job.GetStatus()),
			Conclusion: job.GetConclusion(),
		})
	}

	return jobs, nil
}

// GetLogsURL resolves the short-lived download URL of the run's log
// archive. GitHub answers with a redirect; the archive itself is
// fetched by the caller.
//
// https://docs.github.com/en/rest/actions/workflow-runs#download-workflow-run-logs
func (x *Client) GetLogsURL(ctx context.Context, target *model.Target, runID types.RunID) (*url.URL, error) {
	logsURL, r, err := x.gh.Actions.GetWorkflowRunLogs(ctx, target.Owner, target.RepoName, int64(runID), false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get workflow run logs URL",
			goerr.V("repo", target.FullName()),
			goerr.V("run_id", runID),
		)
	}
	if r.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(r.Body)
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "unexpected status for run logs URL",
			goerr.V("status", r.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	return logsURL, nil
}

func formatTimestamp(ts github.Timestamp) string {
	if ts.Time.IsZero() {
		return ""
	}
	return ts.Time.UTC().Format(time.RFC3339)
}

package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
	"github.com/tbmobb813/ciwatch/pkg/infra"
	"github.com/tbmobb813/ciwatch/pkg/utils/logging"
	"github.com/tbmobb813/ciwatch/pkg/utils/safe"
)

// excerptLimit caps how much of one file's failure excerpt is printed.
const excerptLimit = 8000

var excerptHeader = color.New(color.FgYellow, color.Bold)

// FetchCILogs runs one watch pass: find the most recent workflow run
// on the target branch, wait for its build job to complete, download
// and extract the run's log archive, then print failure excerpts from
// the build job's logs.
func (x *UseCase) FetchCILogs(ctx context.Context, input *model.WatchInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	input.Normalize()

	out := x.clients.Output()
	target := &input.Target

	fmt.Fprintf(out, "Querying workflow runs for branch %s\n", target.Branch)
	runs, err := x.clients.Actions().ListWorkflowRuns(ctx, target, input.PerPage)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintf(out, "No workflow runs found for branch %s\n", target.Branch)
		return goerr.Wrap(types.ErrNoWorkflowRuns, "no runs on branch",
			goerr.V("repo", target.FullName()),
			goerr.V("branch", target.Branch),
		)
	}

	run := model.LatestRun(runs)
	fmt.Fprintf(out, "Found run id %d status %s conclusion %s\n", run.ID, run.Status, run.Conclusion)

	if _, err := x.waitForBuildJob(ctx, target, run.ID, input); err != nil {
		return err
	}

	zipPath := filepath.Join(input.ZipDir, fmt.Sprintf("run-%d-logs.zip", run.ID))
	if err := x.downloadRunLogs(ctx, target, run.ID, zipPath); err != nil {
		return err
	}

	extractDir := filepath.Join(input.OutDir, fmt.Sprintf("run-%d", run.ID))
	if err := extractZipFile(zipPath, extractDir); err != nil {
		return err
	}
	fmt.Fprintf(out, "Extracted to %s\n", extractDir)

	excerpts := scanForFailures(extractDir)
	x.reportExcerpts(excerpts)

	fmt.Fprintf(out, "\nDone\n")
	logging.From(ctx).Info("watch pass finished",
		"run_id", run.ID,
		"excerpts", len(excerpts),
	)

	return nil
}

func (x *UseCase) downloadRunLogs(ctx context.Context, target *model.Target, runID types.RunID, zipPath string) error {
	out := x.clients.Output()
	fmt.Fprintf(out, "Downloading logs to %s\n", zipPath)

	logsURL, err := x.clients.Actions().GetLogsURL(ctx, target, runID)
	if err != nil {
		return err
	}

	fd, err := os.Create(filepath.Clean(zipPath))
	if err != nil {
		return goerr.Wrap(err, "failed to create log archive file", goerr.V("path", zipPath))
	}

	size, err := downloadZipFile(ctx, x.clients.HTTPClient(), logsURL, fd)
	if err != nil {
		safe.Close(fd)
		return err
	}
	if err := fd.Close(); err != nil {
		return goerr.Wrap(err, "failed to close log archive file", goerr.V("path", zipPath))
	}

	fmt.Fprintf(out, "Saved %s size=%d\n", zipPath, size)
	return nil
}

func (x *UseCase) reportExcerpts(excerpts []*model.Excerpt) {
	out := x.clients.Output()

	if len(excerpts) == 0 {
		fmt.Fprintln(out, "No obvious failure lines found in build-test logs; job may have succeeded.")
		return
	}

	fmt.Fprintln(out, "\nFound failure excerpts:")
	for _, ex := range excerpts {
		fmt.Fprintln(out)
		excerptHeader.Fprintf(out, "--- %s ---\n", ex.Path)
		fmt.Fprintln(out, model.TruncateText(ex.Text, excerptLimit))
	}
}

func downloadZipFile(ctx context.Context, httpClient infra.HTTPClient, zipURL *url.URL, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, zipURL.String(), nil)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create request for log archive", goerr.V("url", zipURL))
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to download log archive", goerr.V("url", zipURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, goerr.Wrap(types.ErrInvalidGitHubData, "failed to download log archive",
			goerr.V("url", zipURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	size, err := io.Copy(w, resp.Body)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to write log archive", goerr.V("url", zipURL))
	}

	return size, nil
}

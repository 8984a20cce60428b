package model

import (
	"sort"
	"strings"

	"github.com/tbmobb813/ciwatch/pkg/domain/types"
)

// WorkflowRun is a single GitHub Actions run as returned by the
// list-runs endpoint. CreatedAt keeps the raw RFC3339 string so that
// run ordering is defined by string comparison, not parsed time.
type WorkflowRun struct {
	ID         types.RunID
	Status     string
	Conclusion string
	CreatedAt  string
}

// WorkflowJob is a single job snapshot within a run. Only the latest
// snapshot matters; no poll history is kept.
type WorkflowJob struct {
	ID         types.JobID
	Name       string
	Status     types.JobStatus
	Conclusion string
}

// buildJobKeywords are matched against the lowercased job name. A job
// whose name contains any of them is treated as the build job.
var buildJobKeywords = []string{"build", "build-test", "build apk"}

// LatestRun returns the run with the greatest CreatedAt string, or nil
// when runs is empty. Runs without a timestamp sort last and are never
// preferred over a run that has one. The sort is stable so that ties
// keep the API's original order.
func LatestRun(runs []*WorkflowRun) *WorkflowRun {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]*WorkflowRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})

	return sorted[0]
}

// FindBuildJob returns the first job in list order whose name matches
// the build keywords, or nil. Callers re-run this on every poll
// attempt, so when several jobs match, whichever comes first in the
// current listing wins; this intentionally follows the listing order
// rather than locking onto a job ID.
func FindBuildJob(jobs []*WorkflowJob) *WorkflowJob {
	for _, job := range jobs {
		name := strings.ToLower(job.Name)
		for _, kw := range buildJobKeywords {
			if strings.Contains(name, kw) {
				return job
			}
		}
	}
	return nil
}

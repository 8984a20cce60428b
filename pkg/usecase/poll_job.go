package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
)

// waitForBuildJob polls the run's job list until the build job reports
// "completed" or the attempt budget runs out. Each attempt re-scans
// the listing from the top, so the tracked job is whatever matches
// first on that attempt; the sleep happens after every attempt that
// does not end the loop.
func (x *UseCase) waitForBuildJob(ctx context.Context, target *model.Target, runID types.RunID, input *model.WatchInput) (*model.WorkflowJob, error) {
	out := x.clients.Output()

	for attempt := 1; attempt <= input.MaxAttempts; attempt++ {
		jobs, err := x.clients.Actions().ListWorkflowJobs(ctx, target, runID)
		if err != nil {
			return nil, err
		}

		if job := model.FindBuildJob(jobs); job != nil {
			fmt.Fprintf(out, "Attempt %d: job id=%d name=%s status=%s conclusion=%s\n",
				attempt, job.ID, job.Name, job.Status, job.Conclusion)
			if job.Status.Completed() {
				return job, nil
			}
		} else {
			fmt.Fprintf(out, "No build job found yet; jobs count=%d\n", len(jobs))
		}

		if err := sleep(ctx, input.PollInterval); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(out, "Timed out waiting for build job to complete")
	return nil, goerr.Wrap(types.ErrPollTimeout, "build job did not complete",
		goerr.V("run_id", runID),
		goerr.V("attempts", input.MaxAttempts),
	)
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "interrupted while waiting for build job")
	case <-time.After(d):
		return nil
	}
}

package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/tbmobb813/ciwatch/pkg/domain/mock"
	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
	"github.com/tbmobb813/ciwatch/pkg/infra"
	"github.com/tbmobb813/ciwatch/pkg/usecase"
)

func pollFixture(t *testing.T, jobsFunc func(attempt int) []*model.WorkflowJob) (*mock.ActionsAPIMock, *bytes.Buffer, *usecase.UseCase) {
	t.Helper()

	attempt := 0
	mockActions := &mock.ActionsAPIMock{
		ListWorkflowRunsFunc: func(ctx context.Context, target *model.Target, perPage int) ([]*model.WorkflowRun, error) {
			return []*model.WorkflowRun{
				{ID: 7, Status: "in_progress", CreatedAt: "2024-05-01T00:00:00Z"},
			}, nil
		},
		ListWorkflowJobsFunc: func(ctx context.Context, target *model.Target, runID types.RunID) ([]*model.WorkflowJob, error) {
			attempt++
			return jobsFunc(attempt), nil
		},
		GetLogsURLFunc: func(ctx context.Context, target *model.Target, runID types.RunID) (*url.URL, error) {
			return url.Parse("https://example.com/logs.zip")
		},
	}

	var out bytes.Buffer
	emptyArchive := makeZip(t, nil)
	mockHTTP := &httpMock{
		mockDo: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(emptyArchive)),
			}, nil
		},
	}

	uc := usecase.New(infra.New(
		infra.WithActions(mockActions),
		infra.WithHTTPClient(mockHTTP),
		infra.WithOutput(&out),
	))

	return mockActions, &out, uc
}

func TestWaitForBuildJob(t *testing.T) {
	t.Run("stops polling on first completed attempt", func(t *testing.T) {
		mockActions, out, uc := pollFixture(t, func(attempt int) []*model.WorkflowJob {
			status := types.JobStatusInProgress
			if attempt >= 3 {
				status = types.JobStatusCompleted
			}
			return []*model.WorkflowJob{{ID: 11, Name: "build apk", Status: status, Conclusion: "success"}}
		})

		gt.NoError(t, uc.FetchCILogs(context.Background(), &model.WatchInput{
			Target:       testTarget(),
			PollInterval: time.Millisecond,
			ZipDir:       t.TempDir(),
			OutDir:       t.TempDir(),
		}))

		gt.V(t, len(mockActions.ListWorkflowJobsCalls())).Equal(3)
		gt.V(t, strings.Contains(out.String(), "Attempt 3: job id=11 name=build apk status=completed conclusion=success")).Equal(true)
	})

	t.Run("exhausted attempt budget is a timeout", func(t *testing.T) {
		mockActions, out, uc := pollFixture(t, func(attempt int) []*model.WorkflowJob {
			return []*model.WorkflowJob{{ID: 11, Name: "build-test", Status: types.JobStatusInProgress}}
		})

		err := uc.FetchCILogs(context.Background(), &model.WatchInput{
			Target:       testTarget(),
			MaxAttempts:  4,
			PollInterval: time.Millisecond,
			ZipDir:       t.TempDir(),
			OutDir:       t.TempDir(),
		})
		gt.True(t, errors.Is(err, types.ErrPollTimeout))

		gt.V(t, len(mockActions.ListWorkflowJobsCalls())).Equal(4)
		gt.V(t, strings.Contains(out.String(), "Timed out waiting for build job to complete")).Equal(true)
	})

	t.Run("reports job count while no build job matches", func(t *testing.T) {
		_, out, uc := pollFixture(t, func(attempt int) []*model.WorkflowJob {
			if attempt == 1 {
				return []*model.WorkflowJob{{ID: 1, Name: "lint"}, {ID: 2, Name: "deploy"}}
			}
			return []*model.WorkflowJob{{ID: 3, Name: "build-test", Status: types.JobStatusCompleted}}
		})

		gt.NoError(t, uc.FetchCILogs(context.Background(), &model.WatchInput{
			Target:       testTarget(),
			PollInterval: time.Millisecond,
			ZipDir:       t.TempDir(),
			OutDir:       t.TempDir(),
		}))

		gt.V(t, strings.Contains(out.String(), "No build job found yet; jobs count=2")).Equal(true)
	})

	t.Run("canceled context stops the poll", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, uc := pollFixture(t, func(attempt int) []*model.WorkflowJob {
			return []*model.WorkflowJob{{ID: 11, Name: "build-test", Status: types.JobStatusInProgress}}
		})

		err := uc.FetchCILogs(ctx, &model.WatchInput{
			Target:       testTarget(),
			PollInterval: time.Minute,
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
	})
}

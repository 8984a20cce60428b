package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ActionsAPI

import (
	"context"
	"net/url"

	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
)

// ActionsAPI is the part of the GitHub Actions REST API the watcher
// needs: list runs on a branch, list jobs of a run, and resolve the
// download URL of a run's log archive.
type ActionsAPI interface {
	ListWorkflowRuns(ctx context.Context, target *model.Target, perPage int) ([]*model.WorkflowRun, error)
	ListWorkflowJobs(ctx context.Context, target *model.Target, runID types.RunID) ([]*model.WorkflowJob, error)
	GetLogsURL(ctx context.Context, target *model.Target, runID types.RunID) (*url.URL, error)
}

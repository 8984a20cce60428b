package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken string
	BranchName  string
	RunID       int64
	JobID       int64
	JobStatus   string
	RequestID   string
)

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

func (x JobStatus) Completed() bool {
	return x == JobStatusCompleted
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

package model

import "time"

// WatchInput is the configuration of one watch pass: which repository
// and branch to inspect, how to poll, and where artifacts land.
type WatchInput struct {
	Target Target

	// PerPage is the page size of the list-runs request.
	PerPage int

	// MaxAttempts bounds the job poll loop; PollInterval is the fixed
	// sleep between attempts.
	MaxAttempts  int
	PollInterval time.Duration

	// ZipDir receives the downloaded run-<id>-logs.zip archive and
	// OutDir the extracted logs/run-<id> tree.
	ZipDir string
	OutDir string
}

func (x *WatchInput) Validate() error {
	return x.Target.Validate()
}

// Normalize fills unset fields with the standard values.
func (x *WatchInput) Normalize() {
	if x.PerPage == 0 {
		x.PerPage = 10
	}
	if x.MaxAttempts == 0 {
		x.MaxAttempts = 120
	}
	if x.PollInterval == 0 {
		x.PollInterval = 6 * time.Second
	}
	if x.ZipDir == "" {
		x.ZipDir = "."
	}
	if x.OutDir == "" {
		x.OutDir = "logs"
	}
}

package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrNoCredential      = goerr.New("credential file not found")
	ErrNoWorkflowRuns    = goerr.New("no workflow runs found")
	ErrPollTimeout       = goerr.New("timed out waiting for build job to complete")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
)

// ExitCode is the process exit status reported by the ciwatch binary.
type ExitCode int

const (
	ExitOK ExitCode = iota
	ExitNoWorkflowRuns
	ExitNoCredential
	ExitPollTimeout
	ExitFailure
)

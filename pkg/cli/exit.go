package cli

import (
	"errors"

	"github.com/tbmobb813/ciwatch/pkg/domain/types"
)

// ExitCodeOf maps a pipeline error to the process exit status. The
// anticipated conditions get their own codes; everything else is the
// generic failure code.
func ExitCodeOf(err error) types.ExitCode {
	switch {
	case err == nil:
		return types.ExitOK
	case errors.Is(err, types.ErrNoWorkflowRuns):
		return types.ExitNoWorkflowRuns
	case errors.Is(err, types.ErrNoCredential):
		return types.ExitNoCredential
	case errors.Is(err, types.ErrPollTimeout):
		return types.ExitPollTimeout
	default:
		return types.ExitFailure
	}
}

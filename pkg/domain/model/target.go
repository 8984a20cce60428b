package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
)

// Target identifies the repository and branch to watch.
type Target struct {
	Owner    string
	RepoName string
	Branch   types.BranchName
}

func (x *Target) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidOption, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repo name is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrInvalidOption, "branch is empty")
	}
	return nil
}

func (x *Target) FullName() string {
	return fmt.Sprintf("%s/%s", x.Owner, x.RepoName)
}

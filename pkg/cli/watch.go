package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/gots/slice"
	"github.com/tbmobb813/ciwatch/pkg/cli/config"
	"github.com/tbmobb813/ciwatch/pkg/domain/model"
	"github.com/tbmobb813/ciwatch/pkg/infra"
	"github.com/tbmobb813/ciwatch/pkg/infra/ghclient"
	"github.com/tbmobb813/ciwatch/pkg/usecase"
	"github.com/tbmobb813/ciwatch/pkg/utils/errutil"
	"github.com/tbmobb813/ciwatch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Fallback target when neither flags nor the local git repository
// provide one.
const (
	defaultOwner  = "tbmobb813"
	defaultRepo   = "blurapp"
	defaultBranch = "comp/implement"
)

func watchCommand() *cli.Command {
	var (
		github       config.GitHub
		sentryCfg    config.Sentry
		perPage      int
		maxAttempts  int
		pollInterval time.Duration
		zipDir       string
		outDir       string
	)

	return &cli.Command{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Wait for the build job of the latest run on a branch, then fetch and scan its logs",
		Flags: slice.Flatten([]cli.Flag{
			&cli.IntFlag{
				Name:        "per-page",
				Usage:       "Page size of the workflow run listing",
				Value:       10,
				Destination: &perPage,
			},
			&cli.IntFlag{
				Name:        "max-attempts",
				Usage:       "Maximum number of job poll attempts",
				Sources:     cli.EnvVars("CIWATCH_MAX_ATTEMPTS"),
				Value:       120,
				Destination: &maxAttempts,
			},
			&cli.DurationFlag{
				Name:        "poll-interval",
				Usage:       "Sleep between job poll attempts",
				Sources:     cli.EnvVars("CIWATCH_POLL_INTERVAL"),
				Value:       6 * time.Second,
				Destination: &pollInterval,
			},
			&cli.StringFlag{
				Name:        "zip-dir",
				Usage:       "Directory receiving the downloaded log archive",
				Value:       ".",
				Destination: &zipDir,
			},
			&cli.StringFlag{
				Name:        "out-dir",
				Usage:       "Root directory of extracted log trees",
				Value:       "logs",
				Destination: &outDir,
			},
		}, github.Flags(), sentryCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			target := github.Target()
			resolveTarget(ctx, &target)

			input := &model.WatchInput{
				Target:       target,
				PerPage:      perPage,
				MaxAttempts:  maxAttempts,
				PollInterval: pollInterval,
				ZipDir:       zipDir,
				OutDir:       outDir,
			}

			if err := runWatch(ctx, &github, input); err != nil {
				errutil.HandleError(ctx, "watch pass failed", err)
				return err
			}
			return nil
		},
	}
}

// resolveTarget fills empty target fields from the local git repository
// and finally from the built-in defaults. Explicit flag and env values
// always win.
func resolveTarget(ctx context.Context, target *model.Target) {
	if target.Owner == "" || target.RepoName == "" || target.Branch == "" {
		if err := AutoDetectGitTarget(ctx, target); err != nil {
			logging.From(ctx).Debug("git auto-detect unavailable", "error", err)
		}
	}

	if target.Owner == "" {
		target.Owner = defaultOwner
	}
	if target.RepoName == "" {
		target.RepoName = defaultRepo
	}
	if target.Branch == "" {
		target.Branch = defaultBranch
	}
}

func runWatch(ctx context.Context, github *config.GitHub, input *model.WatchInput) error {
	reqID, ctx := logging.CtxRequestID(ctx)
	logging.From(ctx).Info("Starting watch",
		"request_id", reqID,
		"target", input.Target.FullName(),
		"branch", input.Target.Branch,
		"github", github,
	)

	token, err := github.Token()
	if err != nil {
		return err
	}

	var ghOptions []ghclient.Option
	if github.BaseURL() != "" {
		ghOptions = append(ghOptions, ghclient.WithBaseURL(github.BaseURL()))
	}
	client, err := ghclient.New(token, ghOptions...)
	if err != nil {
		return err
	}

	uc := usecase.New(infra.New(infra.WithActions(client)))

	return uc.FetchCILogs(ctx, input)
}
